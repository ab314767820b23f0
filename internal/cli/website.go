package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/mesh-intelligence/linkshelf/internal/controller"
	"github.com/mesh-intelligence/linkshelf/pkg/types"
)

// websiteFlags binds the website form fields to command flags.
type websiteFlags struct {
	name        string
	url         string
	description string
	category    int
}

func (f *websiteFlags) register(fs *pflag.FlagSet) {
	fs.StringVar(&f.name, "name", "", "website name")
	fs.StringVar(&f.url, "url", "", "address starting with http:// or https://")
	fs.StringVar(&f.description, "description", "", "short description")
	fs.IntVar(&f.category, "category", 0, "id of the owning category")
}

// apply overwrites the fields of in whose flags were given.
func (f *websiteFlags) apply(fs *pflag.FlagSet, in types.WebsiteInput) types.WebsiteInput {
	if fs.Changed("name") {
		in.Name = f.name
	}
	if fs.Changed("url") {
		in.URL = f.url
	}
	if fs.Changed("description") {
		in.Description = f.description
	}
	if fs.Changed("category") {
		in.CategoryID = f.category
	}
	return in
}

func newWebsiteCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "website",
		Aliases: []string{"site"},
		Short:   "Manage websites",
	}
	cmd.AddCommand(
		newWebsiteAddCmd(a),
		newWebsiteUpdateCmd(a),
		newWebsiteDeleteCmd(a),
		newWebsiteListCmd(a),
		newWebsiteShowCmd(a),
	)
	return cmd
}

func newWebsiteAddCmd(a *app) *cobra.Command {
	var f websiteFlags
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a website to a category",
		Example: `  linkshelf website add --category 1 --name "MDN" --url https://developer.mozilla.org
  linkshelf website add --category 2 --name Go --url https://go.dev --description "The Go language"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.openStore()
			if err != nil {
				return err
			}
			w, err := controller.NewWebsiteForm(s).Submit(f.apply(cmd.Flags(), types.WebsiteInput{}))
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			return a.emit(out, w, func() {
				fmt.Fprintf(out, "Created website %d: %s\n", w.ID, w.Name)
			})
		},
	}
	f.register(cmd.Flags())
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("url")
	_ = cmd.MarkFlagRequired("category")
	return cmd
}

func newWebsiteUpdateCmd(a *app) *cobra.Command {
	var f websiteFlags
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a website",
		Long: `Update overwrites the given fields and keeps the others.

When --category names a different category, the website moves to the end
of that category's list.`,
		Example: `  linkshelf website update 3 --description "Reference docs"
  linkshelf website update 3 --category 2`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			s, err := a.openStore()
			if err != nil {
				return err
			}
			form := controller.NewWebsiteForm(s)
			current, err := form.Edit(id)
			if err != nil {
				return err
			}
			w, err := form.Submit(f.apply(cmd.Flags(), current))
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			return a.emit(out, w, func() {
				fmt.Fprintf(out, "Updated website %d: %s\n", w.ID, w.Name)
			})
		},
	}
	f.register(cmd.Flags())
	return cmd
}

func newWebsiteDeleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a website",
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
			e, err := s.GetWebsite(id)
			if err != nil {
				return err
			}
			if err := s.DeleteWebsite(id); err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			return a.emit(out, e, func() {
				fmt.Fprintf(out, "Deleted website %d: %s\n", e.ID, e.Name)
			})
		},
	}
}

func newWebsiteListCmd(a *app) *cobra.Command {
	var category int
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List websites in category order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.openStore()
			if err != nil {
				return err
			}
			entries := s.ListWebsites()
			if category != 0 {
				if _, err := s.GetCategory(category); err != nil {
					return err
				}
				filtered := entries[:0]
				for _, e := range entries {
					if e.CategoryID == category {
						filtered = append(filtered, e)
					}
				}
				entries = filtered
			}
			out := cmd.OutOrStdout()
			return a.emit(out, entries, func() { printWebsites(out, entries) })
		},
	}
	cmd.Flags().IntVar(&category, "category", 0, "only list websites of this category id")
	return cmd
}

func newWebsiteShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show one website",
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
			e, err := s.GetWebsite(id)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			return a.emit(out, e, func() {
				fmt.Fprintf(out, "ID:          %d\n", e.ID)
				fmt.Fprintf(out, "Name:        %s\n", e.Name)
				fmt.Fprintf(out, "URL:         %s\n", e.URL)
				fmt.Fprintf(out, "Description: %s\n", e.Description)
				fmt.Fprintf(out, "Category:    %s (%d)\n", e.CategoryName, e.CategoryID)
			})
		},
	}
}

func printWebsites(w io.Writer, entries []types.WebsiteEntry) {
	if len(entries) == 0 {
		fmt.Fprintln(w, "No websites found.")
		return
	}
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []string{
			strconv.Itoa(e.ID),
			truncate(e.Name, 30),
			truncate(e.URL, 50),
			e.CategoryName,
		})
	}
	printTable(w, []string{"ID", "NAME", "URL", "CATEGORY"}, rows)
	fmt.Fprintf(w, "Total: %d website(s)\n", len(entries))
}
