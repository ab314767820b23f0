package types

import "errors"

// Default document file names inside the data directory. The categories
// document keeps the name the web viewers fetch.
const (
	DefaultCategoriesFile    = "data.json"
	DefaultFilesFile         = "files.json"
	DefaultNotificationsFile = "notifications.json"
)

// Config holds the data location and the optional remote mirror settings.
type Config struct {
	DataDir           string       `json:"data_dir" yaml:"data_dir"`
	CategoriesFile    string       `json:"categories_file" yaml:"categories_file"`
	FilesFile         string       `json:"files_file" yaml:"files_file"`
	NotificationsFile string       `json:"notifications_file" yaml:"notifications_file"`
	Remote            RemoteConfig `json:"remote" yaml:"remote"`
}

// RemoteConfig addresses a GitHub repository used as a mirror target.
// An empty Branch means the repository default branch, Prefix is a
// directory inside the repository, and an empty BaseURL means
// api.github.com. Token is never written to config files.
type RemoteConfig struct {
	Owner   string `json:"owner" yaml:"owner"`
	Repo    string `json:"repo" yaml:"repo"`
	Branch  string `json:"branch" yaml:"branch"`
	Prefix  string `json:"prefix" yaml:"prefix"`
	Token   string `json:"-" yaml:"-"`
	BaseURL string `json:"base_url" yaml:"base_url"`
}

// Config validation errors.
var (
	ErrDataDirEmpty  = errors.New("data directory must not be empty")
	ErrFileNameEmpty = errors.New("document file names must not be empty")
)

// WithDefaults fills empty document names with the defaults.
func (c Config) WithDefaults() Config {
	if c.CategoriesFile == "" {
		c.CategoriesFile = DefaultCategoriesFile
	}
	if c.FilesFile == "" {
		c.FilesFile = DefaultFilesFile
	}
	if c.NotificationsFile == "" {
		c.NotificationsFile = DefaultNotificationsFile
	}
	return c
}

// Validate checks that the Config is well-formed.
func (c Config) Validate() error {
	if c.DataDir == "" {
		return ErrDataDirEmpty
	}
	if c.CategoriesFile == "" || c.FilesFile == "" || c.NotificationsFile == "" {
		return ErrFileNameEmpty
	}
	return nil
}

// Configured reports whether owner, repo and token are all set.
func (r RemoteConfig) Configured() bool {
	return r.Owner != "" && r.Repo != "" && r.Token != ""
}
