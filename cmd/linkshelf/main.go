// Command linkshelf curates a directory of websites, files and
// notifications stored as local JSON documents.
package main

import "github.com/mesh-intelligence/linkshelf/internal/cli"

func main() {
	cli.Execute()
}
