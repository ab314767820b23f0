package controller

import (
	"testing"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/linkshelf/internal/store"
	"github.com/mesh-intelligence/linkshelf/pkg/types"
)

type discard struct{}

func (discard) LoadAll() (types.Snapshot, error) { return types.Snapshot{}, nil }
func (discard) SaveAll(types.Snapshot) error     { return nil }

func newStore(t *testing.T) *store.Store {
	t.Helper()
	logger, _ := test.NewNullLogger()
	return store.New(discard{}, store.WithLogger(logger))
}

func TestWebsiteFormCreateThenEdit(t *testing.T) {
	s := newStore(t)
	a, err := s.AddCategory("A")
	require.NoError(t, err)
	b, err := s.AddCategory("B")
	require.NoError(t, err)

	form := NewWebsiteForm(s)
	assert.Equal(t, Mode{Kind: ModeCreate}, form.Mode())

	w, err := form.Submit(types.WebsiteInput{Name: "Go", URL: "https://go.dev", CategoryID: a.ID})
	require.NoError(t, err)
	assert.Equal(t, ModeCreate, form.Mode().Kind)

	values, err := form.Edit(w.ID)
	require.NoError(t, err)
	assert.Equal(t, Mode{Kind: ModeEditing, ID: w.ID}, form.Mode())
	assert.Equal(t, "https://go.dev", values.URL)
	assert.Equal(t, a.ID, values.CategoryID)
	assert.Equal(t, values, form.Values())

	values.CategoryID = b.ID
	moved, err := form.Submit(values)
	require.NoError(t, err)
	assert.Equal(t, w.ID, moved.ID)
	assert.Equal(t, Mode{Kind: ModeCreate}, form.Mode())
	assert.Equal(t, types.WebsiteInput{}, form.Values())

	got, err := s.GetWebsite(w.ID)
	require.NoError(t, err)
	assert.Equal(t, b.ID, got.CategoryID)
	assert.Len(t, s.ListWebsites(), 1)
}

func TestSubmitFailureKeepsEditing(t *testing.T) {
	s := newStore(t)
	a, err := s.AddCategory("A")
	require.NoError(t, err)
	w, err := s.AddWebsite(types.WebsiteInput{Name: "Go", URL: "https://go.dev", CategoryID: a.ID})
	require.NoError(t, err)

	form := NewWebsiteForm(s)
	values, err := form.Edit(w.ID)
	require.NoError(t, err)

	values.URL = "go.dev"
	_, err = form.Submit(values)
	assert.ErrorIs(t, err, types.ErrInvalidURL)
	assert.Equal(t, Mode{Kind: ModeEditing, ID: w.ID}, form.Mode())

	form.Cancel()
	assert.Equal(t, Mode{Kind: ModeCreate}, form.Mode())
}

func TestEditUnknownKeepsCreateMode(t *testing.T) {
	form := NewFileForm(newStore(t))

	_, err := form.Edit(4)

	assert.ErrorIs(t, err, types.ErrNotFound)
	assert.Equal(t, Mode{Kind: ModeCreate}, form.Mode())
}

func TestFileForm(t *testing.T) {
	s := newStore(t)
	form := NewFileForm(s)

	f, err := form.Submit(types.FileInput{Name: "a.zip", Size: "1 MB"})
	require.NoError(t, err)

	in, err := form.Edit(f.ID)
	require.NoError(t, err)
	in.Size = "2 MB"
	_, err = form.Submit(in)
	require.NoError(t, err)

	got, err := s.GetFile(f.ID)
	require.NoError(t, err)
	assert.Equal(t, "2 MB", got.Size)
	assert.Len(t, s.ListFiles(), 1)
}

func TestNotificationFormKeepsPin(t *testing.T) {
	s := newStore(t)
	form := NewNotificationForm(s)

	n, err := form.Submit(types.NotificationInput{Title: "hello"})
	require.NoError(t, err)
	_, err = s.ToggleNotificationPin(n.ID)
	require.NoError(t, err)

	in, err := form.Edit(n.ID)
	require.NoError(t, err)
	in.Content = "more"
	updated, err := form.Submit(in)
	require.NoError(t, err)

	assert.True(t, updated.Pinned)
	assert.Equal(t, "more", updated.Content)
}

func TestModeString(t *testing.T) {
	assert.Equal(t, "create", Mode{}.String())
	assert.Equal(t, "editing(3)", Mode{Kind: ModeEditing, ID: 3}.String())
}
