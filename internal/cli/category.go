package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/linkshelf/pkg/types"
)

func newCategoryCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "category",
		Aliases: []string{"cat"},
		Short:   "Manage website categories",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "add <name>",
			Short: "Create an empty category",
			Example: `  linkshelf category add "学习资源"
  linkshelf category add Tools --json`,
			Args: cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				s, err := a.openStore()
				if err != nil {
					return err
				}
				c, err := s.AddCategory(args[0])
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				return a.emit(out, c, func() {
					fmt.Fprintf(out, "Created category %d: %s\n", c.ID, c.Name)
				})
			},
		},
		&cobra.Command{
			Use:   "delete <id>",
			Short: "Delete a category and every website in it",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				id, err := parseID(args[0])
				if err != nil {
					return err
				}
				s, err := a.openStore()
				if err != nil {
					return err
				}
				c, err := s.GetCategory(id)
				if err != nil {
					return err
				}
				if err := s.DeleteCategory(id); err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				return a.emit(out, c, func() {
					fmt.Fprintf(out, "Deleted category %d: %s (%d website(s))\n", c.ID, c.Name, len(c.Websites))
				})
			},
		},
		&cobra.Command{
			Use:   "list",
			Short: "List categories",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				s, err := a.openStore()
				if err != nil {
					return err
				}
				cats := s.ListCategories()
				out := cmd.OutOrStdout()
				return a.emit(out, types.CategoriesDoc{Categories: cats}, func() {
					printCategories(out, cats)
				})
			},
		},
	)
	return cmd
}

func printCategories(w io.Writer, cats []types.Category) {
	if len(cats) == 0 {
		fmt.Fprintln(w, "No categories found.")
		return
	}
	rows := make([][]string, 0, len(cats))
	for _, c := range cats {
		rows = append(rows, []string{strconv.Itoa(c.ID), c.Name, strconv.Itoa(len(c.Websites))})
	}
	printTable(w, []string{"ID", "NAME", "WEBSITES"}, rows)
	fmt.Fprintf(w, "Total: %d category(ies)\n", len(cats))
}
