package store

import (
	"slices"

	"github.com/mesh-intelligence/linkshelf/pkg/types"
)

// AddNotification appends an unpinned notification stamped with the
// current time.
func (s *Store) AddNotification(in types.NotificationInput) (types.Notification, error) {
	in = in.Normalize()
	if err := in.Validate(); err != nil {
		return types.Notification{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	n := types.Notification{
		ID:         nextID(notificationIDs(s.notifications)),
		Title:      in.Title,
		Content:    in.Content,
		Time:       s.stamp(),
		Attachment: in.Attachment,
		Link:       in.Link,
	}
	s.notifications = append(s.notifications, n)
	return n, s.commitLocked("notification", "add", n.ID)
}

// UpdateNotification overwrites the editable fields and restamps the time.
// The pin flag is preserved.
func (s *Store) UpdateNotification(id int, in types.NotificationInput) (types.Notification, error) {
	in = in.Normalize()
	if err := in.Validate(); err != nil {
		return types.Notification{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.notificationIndexLocked(id)
	if i < 0 {
		return types.Notification{}, types.NotFound("notification", id)
	}
	n := types.Notification{
		ID:         id,
		Title:      in.Title,
		Content:    in.Content,
		Time:       s.stamp(),
		Attachment: in.Attachment,
		Link:       in.Link,
		Pinned:     s.notifications[i].Pinned,
	}
	s.notifications[i] = n
	return n, s.commitLocked("notification", "update", id)
}

// DeleteNotification removes the notification.
func (s *Store) DeleteNotification(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.notificationIndexLocked(id)
	if i < 0 {
		return types.NotFound("notification", id)
	}
	s.notifications = slices.Delete(s.notifications, i, i+1)
	return s.commitLocked("notification", "delete", id)
}

// ToggleNotificationPin flips the pin flag and returns its new value.
// An unknown id changes nothing and returns ErrNotFound.
func (s *Store) ToggleNotificationPin(id int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.notificationIndexLocked(id)
	if i < 0 {
		return false, types.NotFound("notification", id)
	}
	s.notifications[i].Pinned = !s.notifications[i].Pinned
	return s.notifications[i].Pinned, s.commitLocked("notification", "pin", id)
}

// GetNotification returns a copy of the notification.
func (s *Store) GetNotification(id int) (types.Notification, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.notificationIndexLocked(id)
	if i < 0 {
		return types.Notification{}, types.NotFound("notification", id)
	}
	return s.notifications[i], nil
}

// ListNotificationsOrdered returns pinned notifications first, each group
// in insertion order.
func (s *Store) ListNotificationsOrdered() []types.Notification {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return types.PinnedFirst(s.notifications)
}

func (s *Store) notificationIndexLocked(id int) int {
	return slices.IndexFunc(s.notifications, func(n types.Notification) bool { return n.ID == id })
}
