package types

import "strings"

// TimeLayout is the minute-precision local timestamp format used for
// FileEntry.Time and Notification.Time.
const TimeLayout = "2006-01-02 15:04"

// FileEntry is a downloadable file listed in the directory.
type FileEntry struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Size        string `json:"size"` // Free text, e.g. "12 MB".
	PreviewURL  string `json:"previewUrl"`
	DownloadURL string `json:"downloadUrl"`
	Time        string `json:"time"` // Stamped on add and update.
}

// FileInput carries the user-editable fields of a FileEntry.
type FileInput struct {
	Name        string
	Size        string
	PreviewURL  string
	DownloadURL string
}

// Normalize returns a copy with surrounding whitespace trimmed.
func (in FileInput) Normalize() FileInput {
	in.Name = strings.TrimSpace(in.Name)
	in.Size = strings.TrimSpace(in.Size)
	in.PreviewURL = strings.TrimSpace(in.PreviewURL)
	in.DownloadURL = strings.TrimSpace(in.DownloadURL)
	return in
}

// Validate requires a name. URLs, when present, must use a web scheme.
func (in FileInput) Validate() error {
	if in.Name == "" {
		return &ValidationError{Field: "name", Err: ErrRequired}
	}
	if in.PreviewURL != "" && !HasWebScheme(in.PreviewURL) {
		return &ValidationError{Field: "previewUrl", Err: ErrInvalidURL}
	}
	if in.DownloadURL != "" && !HasWebScheme(in.DownloadURL) {
		return &ValidationError{Field: "downloadUrl", Err: ErrInvalidURL}
	}
	return nil
}
