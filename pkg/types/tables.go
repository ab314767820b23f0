package types

// DocumentKind names one of the three persisted JSON documents.
type DocumentKind string

// Standard document kinds. Each kind is stored in its own file.
const (
	DocCategories    DocumentKind = "categories"
	DocFiles         DocumentKind = "files"
	DocNotifications DocumentKind = "notifications"
)

// StandardDocuments lists all document kinds in save order.
var StandardDocuments = []DocumentKind{
	DocCategories,
	DocFiles,
	DocNotifications,
}

// ParseDocumentKind maps a user-supplied name to a DocumentKind.
// Anything else is a ValidationError wrapping ErrUnknownDocument.
func ParseDocumentKind(name string) (DocumentKind, error) {
	for _, k := range StandardDocuments {
		if string(k) == name {
			return k, nil
		}
	}
	return "", &ValidationError{Field: "document " + name, Err: ErrUnknownDocument}
}
