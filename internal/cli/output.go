package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/mesh-intelligence/linkshelf/internal/jsondoc"
)

// printJSON writes v in the document encoding: two-space indent, HTML
// and non-ASCII characters unescaped.
func printJSON(w io.Writer, v any) error {
	data, err := jsondoc.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal output: %w", err)
	}
	_, err = w.Write(data)
	return err
}

// printTable writes rows under header with aligned columns. Trailing
// padding is trimmed from every line.
func printTable(w io.Writer, header []string, rows [][]string) {
	var sb strings.Builder
	tw := tabwriter.NewWriter(&sb, 0, 0, 2, ' ', 0)

	fmt.Fprintln(tw, strings.Join(header, "\t"))
	dashes := make([]string, len(header))
	for i, h := range header {
		dashes[i] = strings.Repeat("-", len(h))
	}
	fmt.Fprintln(tw, strings.Join(dashes, "\t"))
	for _, r := range rows {
		fmt.Fprintln(tw, strings.Join(r, "\t"))
	}
	tw.Flush()

	for _, line := range strings.Split(strings.TrimSuffix(sb.String(), "\n"), "\n") {
		fmt.Fprintln(w, strings.TrimRight(line, " "))
	}
}

// truncate shortens s to at most n runes.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}

// emit prints v as JSON in --json mode and calls text otherwise.
func (a *app) emit(w io.Writer, v any, text func()) error {
	if a.flags.jsonMode {
		return printJSON(w, v)
	}
	text()
	return nil
}
