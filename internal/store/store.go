// Package store implements the in-memory record store for categories,
// websites, files and notifications. Every successful mutation flushes
// all documents through a Persister before returning.
package store

import (
	"iter"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/mesh-intelligence/linkshelf/internal/metrics"
	"github.com/mesh-intelligence/linkshelf/pkg/types"
)

// Persister loads and saves the full document set.
type Persister interface {
	LoadAll() (types.Snapshot, error)
	SaveAll(s types.Snapshot) error
}

// Indexer serves website search. The store rebuilds it after every change
// to categories or websites.
type Indexer interface {
	Rebuild(cats []types.Category) error
	SearchWebsites(term string) ([]int, error)
}

// Store holds the three collections. It implements types.Store.
type Store struct {
	mu            sync.RWMutex
	categories    []types.Category
	files         []types.FileEntry
	notifications []types.Notification

	persister  Persister
	index      Indexer
	indexFresh bool
	log        logrus.FieldLogger
	now        func() time.Time
}

var _ types.Store = (*Store)(nil)

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger. Defaults to the logrus standard logger.
func WithLogger(log logrus.FieldLogger) Option {
	return func(s *Store) { s.log = log }
}

// WithIndex attaches a search index.
func WithIndex(ix Indexer) Option {
	return func(s *Store) { s.index = ix }
}

// WithClock overrides the time source used for file and notification
// timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// New returns an empty store backed by p. Call Reload to read the
// persisted documents.
func New(p Persister, opts ...Option) *Store {
	s := &Store{
		persister:     p,
		categories:    []types.Category{},
		files:         []types.FileEntry{},
		notifications: []types.Notification{},
		log:           logrus.StandardLogger(),
		now:           time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.rebuildIndexLocked()
	return s
}

// Reload replaces the in-memory collections with the persisted documents.
// Documents that fail to load are replaced by empty collections and the
// returned error matches types.ErrLoad; the store stays usable.
func (s *Store) Reload() error {
	snap, err := s.persister.LoadAll()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.categories = types.CloneCategories(snap.Categories)
	s.files = append([]types.FileEntry{}, snap.Files...)
	s.notifications = append([]types.Notification{}, snap.Notifications...)
	s.rebuildIndexLocked()

	s.log.WithFields(logrus.Fields{
		"categories":    len(s.categories),
		"files":         len(s.files),
		"notifications": len(s.notifications),
	}).Debug("store loaded")
	return err
}

// Snapshot returns a copy of all collections.
func (s *Store) Snapshot() types.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshotLocked()
}

func (s *Store) snapshotLocked() types.Snapshot {
	return types.Snapshot{
		Categories:    types.CloneCategories(s.categories),
		Files:         append([]types.FileEntry{}, s.files...),
		Notifications: append([]types.Notification{}, s.notifications...),
	}
}

// commitLocked records a successful mutation and flushes every document.
// A flush failure is returned but the mutation stays in memory.
func (s *Store) commitLocked(entity, op string, id int) error {
	metrics.Mutations.WithLabelValues(entity, op).Inc()
	log := s.log.WithFields(logrus.Fields{"entity": entity, "op": op, "id": id})

	if err := s.persister.SaveAll(s.snapshotLocked()); err != nil {
		metrics.SaveFailures.Inc()
		log.WithError(err).Error("flush failed; in-memory state kept")
		return err
	}
	log.Debug("mutation saved")
	return nil
}

func (s *Store) rebuildIndexLocked() {
	if s.index == nil {
		return
	}
	if err := s.index.Rebuild(s.categories); err != nil {
		s.indexFresh = false
		s.log.WithError(err).Warn("search index rebuild failed; falling back to scan")
		return
	}
	s.indexFresh = true
}

func (s *Store) stamp() string {
	return s.now().Local().Format(types.TimeLayout)
}

// nextID returns max(ids)+1, or 1 when ids is empty.
func nextID(ids iter.Seq[int]) int {
	top := 0
	for id := range ids {
		if id > top {
			top = id
		}
	}
	return top + 1
}

func categoryIDs(cats []types.Category) iter.Seq[int] {
	return func(yield func(int) bool) {
		for _, c := range cats {
			if !yield(c.ID) {
				return
			}
		}
	}
}

// websiteIDs yields website ids across every category.
func websiteIDs(cats []types.Category) iter.Seq[int] {
	return func(yield func(int) bool) {
		for _, c := range cats {
			for _, w := range c.Websites {
				if !yield(w.ID) {
					return
				}
			}
		}
	}
}

func fileIDs(files []types.FileEntry) iter.Seq[int] {
	return func(yield func(int) bool) {
		for _, f := range files {
			if !yield(f.ID) {
				return
			}
		}
	}
}

func notificationIDs(ns []types.Notification) iter.Seq[int] {
	return func(yield func(int) bool) {
		for _, n := range ns {
			if !yield(n.ID) {
				return
			}
		}
	}
}
