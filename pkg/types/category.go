package types

import "strings"

// Category is a named group that owns an ordered list of websites.
// Deleting a category deletes every website in it.
type Category struct {
	ID       int       `json:"id"`       // Sequential, starts at 1.
	Name     string    `json:"name"`     // Unique among categories at creation time.
	Websites []Website `json:"websites"` // Insertion order; moved websites land at the end.
}

// Website is a bookmarked site. Its ID is unique across all categories.
type Website struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	URL         string `json:"url"` // Always starts with http:// or https://.
	Description string `json:"description"`
}

// WebsiteEntry is a website together with the category that holds it.
// Returned by flattened listings.
type WebsiteEntry struct {
	Website
	CategoryID   int    `json:"categoryId"`
	CategoryName string `json:"categoryName"`
}

// WebsiteInput carries the fields for adding or updating a website.
// An update overwrites every field.
type WebsiteInput struct {
	Name        string
	URL         string
	Description string
	CategoryID  int
}

// Normalize returns a copy with surrounding whitespace trimmed.
func (in WebsiteInput) Normalize() WebsiteInput {
	in.Name = strings.TrimSpace(in.Name)
	in.URL = strings.TrimSpace(in.URL)
	in.Description = strings.TrimSpace(in.Description)
	return in
}

// Validate checks the input fields that do not depend on store state.
// Category existence is checked by the store.
func (in WebsiteInput) Validate() error {
	if in.Name == "" {
		return &ValidationError{Field: "name", Err: ErrRequired}
	}
	if in.URL == "" {
		return &ValidationError{Field: "url", Err: ErrRequired}
	}
	if !HasWebScheme(in.URL) {
		return &ValidationError{Field: "url", Err: ErrInvalidURL}
	}
	if in.CategoryID <= 0 {
		return &ValidationError{Field: "category", Err: ErrRequired}
	}
	return nil
}

// HasWebScheme reports whether url begins with http:// or https://.
// The check is an exact, case-sensitive prefix match.
func HasWebScheme(url string) bool {
	return strings.HasPrefix(url, "http://") || strings.HasPrefix(url, "https://")
}

// CloneCategories returns a deep copy of cats. Website slices are never nil
// in the copy so the result always serializes as a JSON array.
func CloneCategories(cats []Category) []Category {
	out := make([]Category, len(cats))
	for i, c := range cats {
		out[i] = Category{ID: c.ID, Name: c.Name, Websites: make([]Website, len(c.Websites))}
		copy(out[i].Websites, c.Websites)
	}
	return out
}
