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

type fileFlags struct {
	name     string
	size     string
	preview  string
	download string
}

func (f *fileFlags) register(fs *pflag.FlagSet) {
	fs.StringVar(&f.name, "name", "", "file name")
	fs.StringVar(&f.size, "size", "", `free-text size, e.g. "12 MB"`)
	fs.StringVar(&f.preview, "preview", "", "preview URL")
	fs.StringVar(&f.download, "download", "", "download URL")
}

func (f *fileFlags) apply(fs *pflag.FlagSet, in types.FileInput) types.FileInput {
	if fs.Changed("name") {
		in.Name = f.name
	}
	if fs.Changed("size") {
		in.Size = f.size
	}
	if fs.Changed("preview") {
		in.PreviewURL = f.preview
	}
	if fs.Changed("download") {
		in.DownloadURL = f.download
	}
	return in
}

func newFileCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "file",
		Short: "Manage downloadable files",
	}

	var addFlags fileFlags
	add := &cobra.Command{
		Use:     "add",
		Short:   "Add a file entry",
		Example: `  linkshelf file add --name manual.pdf --size "2 MB" --download https://example.com/manual.pdf`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.openStore()
			if err != nil {
				return err
			}
			f, err := controller.NewFileForm(s).Submit(addFlags.apply(cmd.Flags(), types.FileInput{}))
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			return a.emit(out, f, func() {
				fmt.Fprintf(out, "Created file %d: %s\n", f.ID, f.Name)
			})
		},
	}
	addFlags.register(add.Flags())
	_ = add.MarkFlagRequired("name")

	var updateFlags fileFlags
	update := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a file entry; the time stamp is renewed",
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
			form := controller.NewFileForm(s)
			current, err := form.Edit(id)
			if err != nil {
				return err
			}
			f, err := form.Submit(updateFlags.apply(cmd.Flags(), current))
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			return a.emit(out, f, func() {
				fmt.Fprintf(out, "Updated file %d: %s\n", f.ID, f.Name)
			})
		},
	}
	updateFlags.register(update.Flags())

	del := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a file entry",
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
			f, err := s.GetFile(id)
			if err != nil {
				return err
			}
			if err := s.DeleteFile(id); err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			return a.emit(out, f, func() {
				fmt.Fprintf(out, "Deleted file %d: %s\n", f.ID, f.Name)
			})
		},
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List file entries",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.openStore()
			if err != nil {
				return err
			}
			files := s.ListFiles()
			out := cmd.OutOrStdout()
			return a.emit(out, types.FilesDoc{Files: files}, func() { printFiles(out, files) })
		},
	}

	cmd.AddCommand(add, update, del, list)
	return cmd
}

func printFiles(w io.Writer, files []types.FileEntry) {
	if len(files) == 0 {
		fmt.Fprintln(w, "No files found.")
		return
	}
	rows := make([][]string, 0, len(files))
	for _, f := range files {
		rows = append(rows, []string{strconv.Itoa(f.ID), truncate(f.Name, 40), f.Size, f.Time})
	}
	printTable(w, []string{"ID", "NAME", "SIZE", "TIME"}, rows)
	fmt.Fprintf(w, "Total: %d file(s)\n", len(files))
}
