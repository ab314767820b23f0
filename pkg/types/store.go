package types

// Snapshot is a point-in-time copy of all three collections.
type Snapshot struct {
	Categories    []Category
	Files         []FileEntry
	Notifications []Notification
}

// CategoriesDoc is the on-disk shape of the categories document.
type CategoriesDoc struct {
	Categories []Category `json:"categories"`
}

// FilesDoc is the on-disk shape of the files document.
type FilesDoc struct {
	Files []FileEntry `json:"files"`
}

// NotificationsDoc is the on-disk shape of the notifications document.
type NotificationsDoc struct {
	Notifications []Notification `json:"notifications"`
}

// Store is the record store used by the presentation layer. Every method
// returns plain copies; callers never hold references into the store's
// containers. Mutations persist all documents before returning. A
// mutation whose persist step fails returns a SaveError but keeps the
// in-memory change.
type Store interface {
	AddCategory(name string) (Category, error)
	DeleteCategory(id int) error
	GetCategory(id int) (Category, error)
	ListCategories() []Category

	AddWebsite(in WebsiteInput) (Website, error)
	UpdateWebsite(id int, in WebsiteInput) (Website, error)
	DeleteWebsite(id int) error
	GetWebsite(id int) (WebsiteEntry, error)
	ListWebsites() []WebsiteEntry

	// Search returns categories holding only websites whose name or
	// description contains term, case-insensitively. Categories with no
	// match are omitted. An empty term returns every category.
	Search(term string) []Category

	AddFile(in FileInput) (FileEntry, error)
	UpdateFile(id int, in FileInput) (FileEntry, error)
	DeleteFile(id int) error
	GetFile(id int) (FileEntry, error)
	ListFiles() []FileEntry

	AddNotification(in NotificationInput) (Notification, error)
	UpdateNotification(id int, in NotificationInput) (Notification, error)
	DeleteNotification(id int) error
	GetNotification(id int) (Notification, error)
	// ToggleNotificationPin flips the pin flag and returns the new value.
	ToggleNotificationPin(id int) (bool, error)
	ListNotificationsOrdered() []Notification
}
