package store

import (
	"slices"
	"strings"

	"github.com/mesh-intelligence/linkshelf/pkg/types"
)

// validateWebsiteLocked normalizes in and checks it against the current
// categories. It never mutates state.
func (s *Store) validateWebsiteLocked(in types.WebsiteInput) (types.WebsiteInput, int, error) {
	in = in.Normalize()
	if err := in.Validate(); err != nil {
		return in, -1, err
	}
	ci := s.categoryIndexLocked(in.CategoryID)
	if ci < 0 {
		return in, -1, &types.ValidationError{Field: "category", Err: types.ErrCategoryNotFound}
	}
	return in, ci, nil
}

// AddWebsite appends a website to the target category. Its id is one more
// than the largest website id across all categories.
func (s *Store) AddWebsite(in types.WebsiteInput) (types.Website, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	in, ci, err := s.validateWebsiteLocked(in)
	if err != nil {
		return types.Website{}, err
	}

	w := types.Website{
		ID:          nextID(websiteIDs(s.categories)),
		Name:        in.Name,
		URL:         in.URL,
		Description: in.Description,
	}
	s.categories[ci].Websites = append(s.categories[ci].Websites, w)
	s.rebuildIndexLocked()
	return w, s.commitLocked("website", "add", w.ID)
}

// UpdateWebsite overwrites every field of the website. When the website
// already lives in the target category it is updated in place. Otherwise
// it is removed from its current category and a new record with the same
// id is appended to the end of the target category's list.
func (s *Store) UpdateWebsite(id int, in types.WebsiteInput) (types.Website, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	in, target, err := s.validateWebsiteLocked(in)
	if err != nil {
		return types.Website{}, err
	}
	if _, _, ok := s.findWebsiteLocked(id); !ok {
		return types.Website{}, types.NotFound("website", id)
	}

	w := types.Website{ID: id, Name: in.Name, URL: in.URL, Description: in.Description}

	if wi := websitePos(s.categories[target].Websites, id); wi >= 0 {
		s.categories[target].Websites[wi] = w
	} else {
		for i := range s.categories {
			s.categories[i].Websites = slices.DeleteFunc(s.categories[i].Websites, func(x types.Website) bool {
				return x.ID == id
			})
		}
		s.categories[target].Websites = append(s.categories[target].Websites, w)
		s.log.WithField("category", in.CategoryID).Debug("website moved")
	}

	s.rebuildIndexLocked()
	return w, s.commitLocked("website", "update", id)
}

// DeleteWebsite removes the website from whichever category holds it.
func (s *Store) DeleteWebsite(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	ci, wi, ok := s.findWebsiteLocked(id)
	if !ok {
		return types.NotFound("website", id)
	}
	s.categories[ci].Websites = slices.Delete(s.categories[ci].Websites, wi, wi+1)
	s.rebuildIndexLocked()
	return s.commitLocked("website", "delete", id)
}

// GetWebsite returns the website with its owning category.
func (s *Store) GetWebsite(id int) (types.WebsiteEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ci, wi, ok := s.findWebsiteLocked(id)
	if !ok {
		return types.WebsiteEntry{}, types.NotFound("website", id)
	}
	c := s.categories[ci]
	return types.WebsiteEntry{Website: c.Websites[wi], CategoryID: c.ID, CategoryName: c.Name}, nil
}

// ListWebsites flattens all categories, in category order then list order.
func (s *Store) ListWebsites() []types.WebsiteEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []types.WebsiteEntry{}
	for _, c := range s.categories {
		for _, w := range c.Websites {
			out = append(out, types.WebsiteEntry{Website: w, CategoryID: c.ID, CategoryName: c.Name})
		}
	}
	return out
}

// Search filters websites by a case-insensitive substring of name or
// description and groups the matches by category.
func (s *Store) Search(term string) []types.Category {
	s.mu.RLock()
	defer s.mu.RUnlock()

	term = strings.TrimSpace(term)
	if term == "" {
		return types.CloneCategories(s.categories)
	}

	match := scanMatcher(term)
	if s.index != nil && s.indexFresh {
		ids, err := s.index.SearchWebsites(term)
		if err != nil {
			s.log.WithError(err).Warn("index search failed; scanning")
		} else {
			hit := make(map[int]bool, len(ids))
			for _, id := range ids {
				hit[id] = true
			}
			match = func(w types.Website) bool { return hit[w.ID] }
		}
	}

	out := []types.Category{}
	for _, c := range s.categories {
		var sites []types.Website
		for _, w := range c.Websites {
			if match(w) {
				sites = append(sites, w)
			}
		}
		if len(sites) > 0 {
			out = append(out, types.Category{ID: c.ID, Name: c.Name, Websites: sites})
		}
	}
	return out
}

func scanMatcher(term string) func(types.Website) bool {
	term = strings.ToLower(term)
	return func(w types.Website) bool {
		return strings.Contains(strings.ToLower(w.Name), term) ||
			strings.Contains(strings.ToLower(w.Description), term)
	}
}

func (s *Store) findWebsiteLocked(id int) (ci, wi int, ok bool) {
	for ci, c := range s.categories {
		if wi := websitePos(c.Websites, id); wi >= 0 {
			return ci, wi, true
		}
	}
	return -1, -1, false
}

func websitePos(sites []types.Website, id int) int {
	return slices.IndexFunc(sites, func(w types.Website) bool { return w.ID == id })
}
