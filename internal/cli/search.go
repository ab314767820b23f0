package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/linkshelf/pkg/types"
)

func newSearchCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "search [term...]",
		Short: "Find websites by name or description",
		Long: `Search matches a case-insensitive substring against website names and
descriptions. Results are grouped by category; categories without a match
are omitted. Without a term every category is listed.`,
		Example: `  linkshelf search docs
  linkshelf search 开发 --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.openStore()
			if err != nil {
				return err
			}
			cats := s.Search(strings.Join(args, " "))
			out := cmd.OutOrStdout()
			return a.emit(out, types.CategoriesDoc{Categories: cats}, func() {
				var entries []types.WebsiteEntry
				for _, c := range cats {
					for _, w := range c.Websites {
						entries = append(entries, types.WebsiteEntry{Website: w, CategoryID: c.ID, CategoryName: c.Name})
					}
				}
				if len(entries) == 0 {
					fmt.Fprintln(out, "No matching websites.")
					return
				}
				printWebsites(out, entries)
			})
		},
	}
}
