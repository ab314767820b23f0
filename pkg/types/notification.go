package types

import "strings"

// Notification is an announcement. Pinned notifications are listed before
// unpinned ones.
type Notification struct {
	ID         int    `json:"id"`
	Title      string `json:"title"`
	Content    string `json:"content"`
	Time       string `json:"time"`
	Attachment string `json:"attachment"` // Optional.
	Link       string `json:"link"`       // Optional.
	Pinned     bool   `json:"pinned"`
}

// NotificationInput carries the fields for adding or updating a
// notification. It has no pin flag: pin state changes only through
// ToggleNotificationPin.
type NotificationInput struct {
	Title      string
	Content    string
	Attachment string
	Link       string
}

// Normalize returns a copy with surrounding whitespace trimmed.
func (in NotificationInput) Normalize() NotificationInput {
	in.Title = strings.TrimSpace(in.Title)
	in.Content = strings.TrimSpace(in.Content)
	in.Attachment = strings.TrimSpace(in.Attachment)
	in.Link = strings.TrimSpace(in.Link)
	return in
}

// Validate requires a title. A link, when present, must use a web scheme.
func (in NotificationInput) Validate() error {
	if in.Title == "" {
		return &ValidationError{Field: "title", Err: ErrRequired}
	}
	if in.Link != "" && !HasWebScheme(in.Link) {
		return &ValidationError{Field: "link", Err: ErrInvalidURL}
	}
	return nil
}

// PinnedFirst returns the notifications with every pinned item before every
// unpinned one. Relative order inside each group is preserved.
func PinnedFirst(ns []Notification) []Notification {
	out := make([]Notification, 0, len(ns))
	for _, n := range ns {
		if n.Pinned {
			out = append(out, n)
		}
	}
	for _, n := range ns {
		if !n.Pinned {
			out = append(out, n)
		}
	}
	return out
}
