package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/linkshelf/pkg/types"
)

func addNotes(t *testing.T, s *Store, titles ...string) []types.Notification {
	t.Helper()
	var out []types.Notification
	for _, title := range titles {
		n, err := s.AddNotification(types.NotificationInput{Title: title, Content: "body"})
		require.NoError(t, err)
		out = append(out, n)
	}
	return out
}

func orderedIDs(s *Store) []int {
	var out []int
	for _, n := range s.ListNotificationsOrdered() {
		out = append(out, n.ID)
	}
	return out
}

func TestAddNotification(t *testing.T) {
	s, _ := newStore(t)

	n, err := s.AddNotification(types.NotificationInput{
		Title:   "Maintenance",
		Content: "Sunday",
		Link:    "https://status.example",
	})
	require.NoError(t, err)

	assert.Equal(t, 1, n.ID)
	assert.False(t, n.Pinned)
	assert.Equal(t, "2026-10-17 09:30", n.Time)

	_, err = s.AddNotification(types.NotificationInput{Title: "x", Link: "mailto:x"})
	assert.ErrorIs(t, err, types.ErrInvalidURL)
	_, err = s.AddNotification(types.NotificationInput{Content: "no title"})
	assert.ErrorIs(t, err, types.ErrRequired)
}

func TestTogglePinOrdering(t *testing.T) {
	s, _ := newStore(t)
	addNotes(t, s, "one", "two", "three")

	pinned, err := s.ToggleNotificationPin(2)
	require.NoError(t, err)
	assert.True(t, pinned)
	assert.Equal(t, []int{2, 1, 3}, orderedIDs(s))

	pinned, err = s.ToggleNotificationPin(3)
	require.NoError(t, err)
	assert.True(t, pinned)
	assert.Equal(t, []int{2, 3, 1}, orderedIDs(s))

	pinned, err = s.ToggleNotificationPin(2)
	require.NoError(t, err)
	assert.False(t, pinned)
	assert.Equal(t, []int{3, 1, 2}, orderedIDs(s))
}

func TestTogglePinUnknown(t *testing.T) {
	s, p := newStore(t)
	addNotes(t, s, "one")
	flushes := len(p.saved)

	_, err := s.ToggleNotificationPin(9)

	assert.ErrorIs(t, err, types.ErrNotFound)
	assert.Len(t, p.saved, flushes)
}

func TestUpdateNotificationPreservesPin(t *testing.T) {
	now := fixedNow
	s, _ := newStore(t, WithClock(func() time.Time { return now }))
	addNotes(t, s, "one")
	_, err := s.ToggleNotificationPin(1)
	require.NoError(t, err)

	now = fixedNow.Add(24 * time.Hour)
	n, err := s.UpdateNotification(1, types.NotificationInput{Title: "edited", Content: "new"})
	require.NoError(t, err)

	assert.True(t, n.Pinned)
	assert.Equal(t, "edited", n.Title)
	assert.Equal(t, "2026-10-18 09:30", n.Time)

	got, err := s.GetNotification(1)
	require.NoError(t, err)
	assert.Equal(t, n, got)
}

func TestDeleteNotification(t *testing.T) {
	s, _ := newStore(t)
	addNotes(t, s, "one", "two")

	require.NoError(t, s.DeleteNotification(1))
	assert.Equal(t, []int{2}, orderedIDs(s))
	assert.ErrorIs(t, s.DeleteNotification(1), types.ErrNotFound)

	_, err := s.UpdateNotification(1, types.NotificationInput{Title: "x"})
	assert.ErrorIs(t, err, types.ErrNotFound)
}
