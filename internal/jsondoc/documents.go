package jsondoc

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/mesh-intelligence/linkshelf/pkg/types"
)

// Documents binds the three document paths of one data directory.
type Documents struct {
	dir   string
	paths map[types.DocumentKind]string
	log   logrus.FieldLogger
}

// New returns the document set described by cfg. Relative file names are
// resolved against cfg.DataDir.
func New(cfg types.Config, log logrus.FieldLogger) (*Documents, error) {
	cfg = cfg.WithDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if log == nil {
		log = logrus.StandardLogger()
	}
	resolve := func(name string) string {
		if filepath.IsAbs(name) {
			return name
		}
		return filepath.Join(cfg.DataDir, name)
	}
	return &Documents{
		dir: cfg.DataDir,
		paths: map[types.DocumentKind]string{
			types.DocCategories:    resolve(cfg.CategoriesFile),
			types.DocFiles:         resolve(cfg.FilesFile),
			types.DocNotifications: resolve(cfg.NotificationsFile),
		},
		log: log,
	}, nil
}

// Path returns the file path of the given document.
func (d *Documents) Path(kind types.DocumentKind) (string, error) {
	p, ok := d.paths[kind]
	if !ok {
		return "", &types.ValidationError{Field: "document " + string(kind), Err: types.ErrUnknownDocument}
	}
	return p, nil
}

// Init creates the data directory and writes an empty document for every
// file that does not exist yet. Existing documents are left untouched.
func (d *Documents) Init() error {
	if err := os.MkdirAll(d.dir, 0o755); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}
	empty := map[types.DocumentKind]any{
		types.DocCategories:    types.CategoriesDoc{Categories: []types.Category{}},
		types.DocFiles:         types.FilesDoc{Files: []types.FileEntry{}},
		types.DocNotifications: types.NotificationsDoc{Notifications: []types.Notification{}},
	}
	for _, kind := range types.StandardDocuments {
		path := d.paths[kind]
		if _, err := os.Stat(path); err == nil {
			continue
		} else if !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("stat %s: %w", path, err)
		}
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return fmt.Errorf("creating document directory: %w", err)
		}
		if err := Save(path, empty[kind]); err != nil {
			return err
		}
		d.log.WithField("path", path).Info("created empty document")
	}
	return nil
}

// LoadAll reads all three documents. A document that cannot be loaded is
// replaced by an empty collection; the returned error joins one
// *types.LoadError per failed document and is nil when all loaded.
func (d *Documents) LoadAll() (types.Snapshot, error) {
	var errs []error

	cats, err := Load(d.paths[types.DocCategories], types.CategoriesDoc{})
	if err != nil {
		errs = append(errs, err)
	}
	files, err := Load(d.paths[types.DocFiles], types.FilesDoc{})
	if err != nil {
		errs = append(errs, err)
	}
	notes, err := Load(d.paths[types.DocNotifications], types.NotificationsDoc{})
	if err != nil {
		errs = append(errs, err)
	}

	for _, e := range errs {
		d.log.WithError(e).Warn("document replaced by empty default")
	}

	return normalize(types.Snapshot{
		Categories:    cats.Categories,
		Files:         files.Files,
		Notifications: notes.Notifications,
	}), errors.Join(errs...)
}

// SaveAll writes all three documents. Every document is attempted even if
// an earlier one fails; the returned error joins one *types.SaveError per
// failed document.
func (d *Documents) SaveAll(s types.Snapshot) error {
	s = normalize(s)
	docs := map[types.DocumentKind]any{
		types.DocCategories:    types.CategoriesDoc{Categories: s.Categories},
		types.DocFiles:         types.FilesDoc{Files: s.Files},
		types.DocNotifications: types.NotificationsDoc{Notifications: s.Notifications},
	}

	var errs []error
	for _, kind := range types.StandardDocuments {
		if err := Save(d.paths[kind], docs[kind]); err != nil {
			d.log.WithError(err).WithField("document", kind).Error("save failed")
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// normalize replaces nil slices with empty ones so documents always hold
// JSON arrays rather than null.
func normalize(s types.Snapshot) types.Snapshot {
	s.Categories = types.CloneCategories(s.Categories)
	if s.Files == nil {
		s.Files = []types.FileEntry{}
	}
	if s.Notifications == nil {
		s.Notifications = []types.Notification{}
	}
	return s
}
