package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/linkshelf/internal/mirror"
	"github.com/mesh-intelligence/linkshelf/pkg/types"
)

func newMirrorCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "mirror <categories|files|notifications>",
		Short: "Copy one document to the configured GitHub repository",
		Long: `Mirror uploads the current text of one document to remote.owner/remote.repo.
The remote file is created when missing and updated otherwise. Local files
are never modified.

The token is read from remote.token, LINKSHELF_REMOTE_TOKEN, or a .env file
in the config directory.`,
		Example: `  linkshelf mirror categories
  LINKSHELF_REMOTE_TOKEN=ghp_xxx linkshelf mirror notifications --json`,
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{string(types.DocCategories), string(types.DocFiles), string(types.DocNotifications)},
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := types.ParseDocumentKind(args[0])
			if err != nil {
				return err
			}
			if err := a.openDocuments(); err != nil {
				return err
			}
			local, err := a.docs.Path(kind)
			if err != nil {
				return err
			}
			m, err := mirror.New(a.cfg.Remote, a.log)
			if err != nil {
				return err
			}
			res, err := m.Push(cmd.Context(), local, m.RemotePath(local))
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			return a.emit(out, res, func() {
				verb := "Updated"
				if res.Created {
					verb = "Created"
				}
				fmt.Fprintf(out, "%s %s/%s:%s (commit %s)\n", verb, a.cfg.Remote.Owner, a.cfg.Remote.Repo, res.RemotePath, res.CommitSHA)
			})
		},
	}
}
