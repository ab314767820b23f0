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

type notifyFlags struct {
	title      string
	content    string
	attachment string
	link       string
}

func (f *notifyFlags) register(fs *pflag.FlagSet) {
	fs.StringVar(&f.title, "title", "", "notification title")
	fs.StringVar(&f.content, "content", "", "notification body")
	fs.StringVar(&f.attachment, "attachment", "", "attachment name or reference")
	fs.StringVar(&f.link, "link", "", "related URL")
}

func (f *notifyFlags) apply(fs *pflag.FlagSet, in types.NotificationInput) types.NotificationInput {
	if fs.Changed("title") {
		in.Title = f.title
	}
	if fs.Changed("content") {
		in.Content = f.content
	}
	if fs.Changed("attachment") {
		in.Attachment = f.attachment
	}
	if fs.Changed("link") {
		in.Link = f.link
	}
	return in
}

func newNotifyCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "notify",
		Aliases: []string{"notification"},
		Short:   "Manage notifications",
	}

	var addFlags notifyFlags
	add := &cobra.Command{
		Use:     "add",
		Short:   "Publish a notification",
		Example: `  linkshelf notify add --title "Maintenance" --content "Sunday 02:00" --link https://status.example.com`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.openStore()
			if err != nil {
				return err
			}
			n, err := controller.NewNotificationForm(s).Submit(addFlags.apply(cmd.Flags(), types.NotificationInput{}))
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			return a.emit(out, n, func() {
				fmt.Fprintf(out, "Created notification %d: %s\n", n.ID, n.Title)
			})
		},
	}
	addFlags.register(add.Flags())
	_ = add.MarkFlagRequired("title")

	var updateFlags notifyFlags
	update := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a notification; the pin flag is kept",
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
			form := controller.NewNotificationForm(s)
			current, err := form.Edit(id)
			if err != nil {
				return err
			}
			n, err := form.Submit(updateFlags.apply(cmd.Flags(), current))
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			return a.emit(out, n, func() {
				fmt.Fprintf(out, "Updated notification %d: %s\n", n.ID, n.Title)
			})
		},
	}
	updateFlags.register(update.Flags())

	del := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a notification",
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
			n, err := s.GetNotification(id)
			if err != nil {
				return err
			}
			if err := s.DeleteNotification(id); err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			return a.emit(out, n, func() {
				fmt.Fprintf(out, "Deleted notification %d: %s\n", n.ID, n.Title)
			})
		},
	}

	pin := &cobra.Command{
		Use:   "pin <id>",
		Short: "Toggle the pin flag of a notification",
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
			pinned, err := s.ToggleNotificationPin(id)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			result := struct {
				ID     int  `json:"id"`
				Pinned bool `json:"pinned"`
			}{id, pinned}
			return a.emit(out, result, func() {
				if pinned {
					fmt.Fprintf(out, "Pinned notification %d\n", id)
				} else {
					fmt.Fprintf(out, "Unpinned notification %d\n", id)
				}
			})
		},
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List notifications, pinned first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.openStore()
			if err != nil {
				return err
			}
			ns := s.ListNotificationsOrdered()
			out := cmd.OutOrStdout()
			return a.emit(out, types.NotificationsDoc{Notifications: ns}, func() { printNotifications(out, ns) })
		},
	}

	cmd.AddCommand(add, update, del, pin, list)
	return cmd
}

func printNotifications(w io.Writer, ns []types.Notification) {
	if len(ns) == 0 {
		fmt.Fprintln(w, "No notifications found.")
		return
	}
	rows := make([][]string, 0, len(ns))
	for _, n := range ns {
		mark := ""
		if n.Pinned {
			mark = "*"
		}
		rows = append(rows, []string{strconv.Itoa(n.ID), mark, truncate(n.Title, 40), n.Time})
	}
	printTable(w, []string{"ID", "PIN", "TITLE", "TIME"}, rows)
	fmt.Fprintf(w, "Total: %d notification(s)\n", len(ns))
}
