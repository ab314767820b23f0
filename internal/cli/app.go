package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mesh-intelligence/linkshelf/internal/index"
	"github.com/mesh-intelligence/linkshelf/internal/jsondoc"
	"github.com/mesh-intelligence/linkshelf/internal/paths"
	"github.com/mesh-intelligence/linkshelf/internal/store"
	"github.com/mesh-intelligence/linkshelf/pkg/types"
)

// app carries the state shared by one command invocation.
type app struct {
	flags rootFlags

	configDir string
	v         *viper.Viper
	log       *logrus.Logger

	cfg   types.Config
	docs  *jsondoc.Documents
	index *index.Index
	store *store.Store
}

// setup resolves the config directory, reads the configuration and
// creates the logger. It does not touch the data directory.
func (a *app) setup(cmd *cobra.Command) error {
	dir, err := paths.ResolveConfigDir(a.flags.configDir)
	if err != nil {
		return systemErr("resolve config dir: %w", err)
	}
	a.configDir = dir

	v, err := loadConfig(dir)
	if err != nil {
		return systemErr("%w", err)
	}
	a.v = v

	levelName := a.flags.logLevel
	if levelName == "" {
		levelName = v.GetString(cfgKeyLogLevel)
	}
	level, err := logrus.ParseLevel(levelName)
	if err != nil {
		return &types.ValidationError{Field: "log level", Err: err}
	}
	a.log = logrus.New()
	a.log.SetOutput(cmd.ErrOrStderr())
	a.log.SetLevel(level)
	return nil
}

// dataDir resolves the data directory from flag, config and environment.
func (a *app) dataDir() (string, error) {
	dir, err := paths.ResolveDataDir(a.flags.dataDir, a.v.GetString(cfgKeyDataDir))
	if err != nil {
		return "", systemErr("resolve data dir: %w", err)
	}
	return dir, nil
}

// openDocuments binds the document paths and creates missing documents.
func (a *app) openDocuments() error {
	if a.docs != nil {
		return nil
	}
	dir, err := a.dataDir()
	if err != nil {
		return err
	}
	a.cfg = storeConfig(a.v, dir)

	docs, err := jsondoc.New(a.cfg, a.log)
	if err != nil {
		return systemErr("open documents: %w", err)
	}
	if err := docs.Init(); err != nil {
		return systemErr("initialize documents: %w", err)
	}
	a.docs = docs
	return nil
}

// openStore loads the documents into a store. Documents that fail to load
// are reported as warnings and replaced by empty collections.
func (a *app) openStore() (*store.Store, error) {
	if a.store != nil {
		return a.store, nil
	}
	if err := a.openDocuments(); err != nil {
		return nil, err
	}

	opts := []store.Option{store.WithLogger(a.log)}
	ix, err := index.Open()
	if err != nil {
		a.log.WithError(err).Warn("search index unavailable; searching by scan")
	} else {
		a.index = ix
		opts = append(opts, store.WithIndex(ix))
	}

	s := store.New(a.docs, opts...)
	if err := s.Reload(); err != nil {
		if !errors.Is(err, types.ErrLoad) {
			return nil, systemErr("load documents: %w", err)
		}
		a.log.WithError(err).Warn("some documents could not be loaded; using empty collections")
	}
	if a.index != nil {
		if cats, sites, err := a.index.Count(); err == nil {
			a.log.WithField("categories", cats).WithField("websites", sites).Debug("search index ready")
		}
	}
	a.store = s
	return s, nil
}

// close releases the index. Safe to call more than once.
func (a *app) close() error {
	if a.index == nil {
		return nil
	}
	err := a.index.Close()
	a.index = nil
	return err
}

// parseID parses a positional record id.
func parseID(arg string) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(arg))
	if err != nil || id <= 0 {
		return 0, &types.ValidationError{Field: fmt.Sprintf("id %q", arg), Err: errors.New("must be a positive integer")}
	}
	return id, nil
}
