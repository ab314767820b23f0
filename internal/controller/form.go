// Package controller holds the edit-mode state behind the record forms.
// A form is either creating a new record or editing an existing one;
// Submit dispatches to the matching store operation.
package controller

import (
	"fmt"

	"github.com/mesh-intelligence/linkshelf/pkg/types"
)

// ModeKind distinguishes creating from editing.
type ModeKind int

const (
	ModeCreate ModeKind = iota
	ModeEditing
)

func (k ModeKind) String() string {
	switch k {
	case ModeCreate:
		return "create"
	case ModeEditing:
		return "editing"
	}
	return fmt.Sprintf("ModeKind(%d)", int(k))
}

// Mode is the current form mode. ID is set only while editing.
type Mode struct {
	Kind ModeKind
	ID   int
}

// Editing reports whether the form targets an existing record.
func (m Mode) Editing() bool { return m.Kind == ModeEditing }

func (m Mode) String() string {
	if m.Editing() {
		return fmt.Sprintf("editing(%d)", m.ID)
	}
	return m.Kind.String()
}

// Form drives one record type. In is the raw form payload, Out the stored
// record.
type Form[In, Out any] struct {
	mode   Mode
	values In

	load   func(id int) (In, error)
	add    func(In) (Out, error)
	update func(id int, in In) (Out, error)
}

// Mode returns the current mode.
func (f *Form[In, Out]) Mode() Mode { return f.mode }

// Values returns the payload loaded by the last Edit, or the zero value in
// create mode.
func (f *Form[In, Out]) Values() In { return f.values }

// Edit loads the record into the form and switches to editing it. On
// failure the mode is unchanged.
func (f *Form[In, Out]) Edit(id int) (In, error) {
	in, err := f.load(id)
	if err != nil {
		return in, err
	}
	f.mode = Mode{Kind: ModeEditing, ID: id}
	f.values = in
	return in, nil
}

// Submit adds in create mode and updates in editing mode. Success returns
// the form to create mode; failure leaves the mode as it was.
func (f *Form[In, Out]) Submit(in In) (Out, error) {
	var (
		out Out
		err error
	)
	if f.mode.Editing() {
		out, err = f.update(f.mode.ID, in)
	} else {
		out, err = f.add(in)
	}
	if err != nil {
		return out, err
	}
	f.Cancel()
	return out, nil
}

// Cancel discards the loaded values and returns to create mode.
func (f *Form[In, Out]) Cancel() {
	var zero In
	f.mode = Mode{Kind: ModeCreate}
	f.values = zero
}

// WebsiteForm edits websites.
type WebsiteForm = Form[types.WebsiteInput, types.Website]

// FileForm edits file entries.
type FileForm = Form[types.FileInput, types.FileEntry]

// NotificationForm edits notifications.
type NotificationForm = Form[types.NotificationInput, types.Notification]

// NewWebsiteForm returns a website form in create mode.
func NewWebsiteForm(s types.Store) *WebsiteForm {
	return &WebsiteForm{
		load: func(id int) (types.WebsiteInput, error) {
			e, err := s.GetWebsite(id)
			if err != nil {
				return types.WebsiteInput{}, err
			}
			return types.WebsiteInput{
				Name:        e.Name,
				URL:         e.URL,
				Description: e.Description,
				CategoryID:  e.CategoryID,
			}, nil
		},
		add:    s.AddWebsite,
		update: s.UpdateWebsite,
	}
}

// NewFileForm returns a file form in create mode.
func NewFileForm(s types.Store) *FileForm {
	return &FileForm{
		load: func(id int) (types.FileInput, error) {
			f, err := s.GetFile(id)
			if err != nil {
				return types.FileInput{}, err
			}
			return types.FileInput{
				Name:        f.Name,
				Size:        f.Size,
				PreviewURL:  f.PreviewURL,
				DownloadURL: f.DownloadURL,
			}, nil
		},
		add:    s.AddFile,
		update: s.UpdateFile,
	}
}

// NewNotificationForm returns a notification form in create mode.
func NewNotificationForm(s types.Store) *NotificationForm {
	return &NotificationForm{
		load: func(id int) (types.NotificationInput, error) {
			n, err := s.GetNotification(id)
			if err != nil {
				return types.NotificationInput{}, err
			}
			return types.NotificationInput{
				Title:      n.Title,
				Content:    n.Content,
				Attachment: n.Attachment,
				Link:       n.Link,
			}, nil
		},
		add:    s.AddNotification,
		update: s.UpdateNotification,
	}
}
