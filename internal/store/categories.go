package store

import (
	"slices"
	"strings"

	"github.com/mesh-intelligence/linkshelf/pkg/types"
)

// AddCategory creates a category with an empty website list. The name is
// trimmed and must be non-empty and not equal to any existing name.
func (s *Store) AddCategory(name string) (types.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return types.Category{}, &types.ValidationError{Field: "name", Err: types.ErrRequired}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, c := range s.categories {
		if c.Name == name {
			return types.Category{}, &types.ValidationError{Field: "category " + name, Err: types.ErrDuplicateName}
		}
	}

	c := types.Category{
		ID:       nextID(categoryIDs(s.categories)),
		Name:     name,
		Websites: []types.Website{},
	}
	s.categories = append(s.categories, c)
	s.rebuildIndexLocked()
	return c, s.commitLocked("category", "add", c.ID)
}

// DeleteCategory removes the category and every website in it.
func (s *Store) DeleteCategory(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.categoryIndexLocked(id)
	if i < 0 {
		return types.NotFound("category", id)
	}
	removed := len(s.categories[i].Websites)
	s.categories = slices.Delete(s.categories, i, i+1)
	s.rebuildIndexLocked()

	s.log.WithField("websites", removed).Debug("category delete cascades")
	return s.commitLocked("category", "delete", id)
}

// GetCategory returns a copy of the category with the given id.
func (s *Store) GetCategory(id int) (types.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.categoryIndexLocked(id)
	if i < 0 {
		return types.Category{}, types.NotFound("category", id)
	}
	return types.CloneCategories(s.categories[i : i+1])[0], nil
}

// ListCategories returns copies of all categories in insertion order.
func (s *Store) ListCategories() []types.Category {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return types.CloneCategories(s.categories)
}

func (s *Store) categoryIndexLocked(id int) int {
	for i, c := range s.categories {
		if c.ID == id {
			return i
		}
	}
	return -1
}
