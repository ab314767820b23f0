package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/linkshelf/internal/index"
	"github.com/mesh-intelligence/linkshelf/pkg/types"
)

func TestAddWebsiteValidation(t *testing.T) {
	s, _ := newStore(t)
	c := mustCategory(t, s, "a")

	tests := []struct {
		name  string
		in    types.WebsiteInput
		cause error
	}{
		{"ftp scheme", types.WebsiteInput{Name: "x", URL: "ftp://x.com", CategoryID: c.ID}, types.ErrInvalidURL},
		{"no scheme", types.WebsiteInput{Name: "x", URL: "x.com", CategoryID: c.ID}, types.ErrInvalidURL},
		{"empty name", types.WebsiteInput{Name: " ", URL: "http://x.com", CategoryID: c.ID}, types.ErrRequired},
		{"empty url", types.WebsiteInput{Name: "x", CategoryID: c.ID}, types.ErrRequired},
		{"unknown category", types.WebsiteInput{Name: "x", URL: "http://x.com", CategoryID: 99}, types.ErrCategoryNotFound},
		{"no category", types.WebsiteInput{Name: "x", URL: "http://x.com"}, types.ErrRequired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.AddWebsite(tt.in)
			assert.ErrorIs(t, err, types.ErrValidation)
			assert.ErrorIs(t, err, tt.cause)
			assert.Empty(t, s.ListWebsites())
		})
	}
}

func TestAddWebsiteRetrievable(t *testing.T) {
	s, _ := newStore(t)
	c := mustCategory(t, s, "a")

	w, err := s.AddWebsite(types.WebsiteInput{Name: " X ", URL: "http://x.com", Description: " d ", CategoryID: c.ID})
	require.NoError(t, err)

	got, err := s.GetWebsite(w.ID)
	require.NoError(t, err)
	assert.Equal(t, types.Website{ID: 1, Name: "X", URL: "http://x.com", Description: "d"}, got.Website)
	assert.Equal(t, c.ID, got.CategoryID)
	assert.Equal(t, "a", got.CategoryName)
}

func TestWebsiteIDsAreGlobal(t *testing.T) {
	s, _ := newStore(t)
	a := mustCategory(t, s, "a")
	b := mustCategory(t, s, "b")

	w1 := mustWebsite(t, s, "w1", a.ID)
	w2 := mustWebsite(t, s, "w2", b.ID)
	w3 := mustWebsite(t, s, "w3", a.ID)

	assert.Equal(t, []int{1, 2, 3}, []int{w1.ID, w2.ID, w3.ID})
}

func TestUpdateWebsiteInPlace(t *testing.T) {
	s, _ := newStore(t)
	a := mustCategory(t, s, "a")
	w1 := mustWebsite(t, s, "w1", a.ID)
	w2 := mustWebsite(t, s, "w2", a.ID)
	w3 := mustWebsite(t, s, "w3", a.ID)

	_, err := s.UpdateWebsite(w2.ID, types.WebsiteInput{Name: "renamed", URL: "https://r", Description: "new", CategoryID: a.ID})
	require.NoError(t, err)

	got, err := s.GetCategory(a.ID)
	require.NoError(t, err)
	assert.Equal(t, []int{w1.ID, w2.ID, w3.ID}, websiteIDsOf(got), "position kept")
	assert.Equal(t, types.Website{ID: w2.ID, Name: "renamed", URL: "https://r", Description: "new"}, got.Websites[1])
}

func TestUpdateWebsiteMoveAppendsToTarget(t *testing.T) {
	s, _ := newStore(t)
	a := mustCategory(t, s, "A")
	b := mustCategory(t, s, "B")
	a1 := mustWebsite(t, s, "a1", a.ID)
	moved := mustWebsite(t, s, "moved", a.ID)
	a3 := mustWebsite(t, s, "a3", a.ID)
	b1 := mustWebsite(t, s, "b1", b.ID)
	b2 := mustWebsite(t, s, "b2", b.ID)

	w, err := s.UpdateWebsite(moved.ID, types.WebsiteInput{Name: "moved", URL: "http://m", CategoryID: b.ID})
	require.NoError(t, err)
	assert.Equal(t, moved.ID, w.ID)

	gotA, err := s.GetCategory(a.ID)
	require.NoError(t, err)
	gotB, err := s.GetCategory(b.ID)
	require.NoError(t, err)

	assert.Equal(t, []int{a1.ID, a3.ID}, websiteIDsOf(gotA))
	assert.Equal(t, []int{b1.ID, b2.ID, moved.ID}, websiteIDsOf(gotB))
	assert.Equal(t, "http://m", gotB.Websites[2].URL)

	entry, err := s.GetWebsite(moved.ID)
	require.NoError(t, err)
	assert.Equal(t, b.ID, entry.CategoryID)
}

func TestUpdateWebsiteValidationLeavesStateUntouched(t *testing.T) {
	s, p := newStore(t)
	a := mustCategory(t, s, "A")
	w := mustWebsite(t, s, "w", a.ID)
	flushes := len(p.saved)

	_, err := s.UpdateWebsite(w.ID, types.WebsiteInput{Name: "w", URL: "ftp://w", CategoryID: a.ID})
	assert.ErrorIs(t, err, types.ErrInvalidURL)
	_, err = s.UpdateWebsite(w.ID, types.WebsiteInput{Name: "w", URL: "http://w", CategoryID: 77})
	assert.ErrorIs(t, err, types.ErrCategoryNotFound)

	got, err := s.GetWebsite(w.ID)
	require.NoError(t, err)
	assert.Equal(t, w, got.Website)
	assert.Equal(t, a.ID, got.CategoryID)
	assert.Len(t, p.saved, flushes)
}

func TestUpdateWebsiteUnknownID(t *testing.T) {
	s, _ := newStore(t)
	a := mustCategory(t, s, "A")

	_, err := s.UpdateWebsite(5, types.WebsiteInput{Name: "w", URL: "http://w", CategoryID: a.ID})

	assert.ErrorIs(t, err, types.ErrNotFound)
	assert.Empty(t, s.ListWebsites())
}

func TestDeleteWebsite(t *testing.T) {
	s, _ := newStore(t)
	a := mustCategory(t, s, "A")
	b := mustCategory(t, s, "B")
	mustWebsite(t, s, "a1", a.ID)
	target := mustWebsite(t, s, "b1", b.ID)

	require.NoError(t, s.DeleteWebsite(target.ID))

	_, err := s.GetWebsite(target.ID)
	assert.ErrorIs(t, err, types.ErrNotFound)
	assert.Len(t, s.ListWebsites(), 1)
	assert.ErrorIs(t, s.DeleteWebsite(target.ID), types.ErrNotFound)
}

func TestListWebsitesOrder(t *testing.T) {
	s, _ := newStore(t)
	a := mustCategory(t, s, "A")
	b := mustCategory(t, s, "B")
	mustWebsite(t, s, "b1", b.ID)
	mustWebsite(t, s, "a1", a.ID)
	mustWebsite(t, s, "a2", a.ID)

	var names []string
	for _, e := range s.ListWebsites() {
		names = append(names, e.CategoryName+"/"+e.Name)
	}
	assert.Equal(t, []string{"A/a1", "A/a2", "B/b1"}, names)
}

func searchFixture(t *testing.T, opts ...Option) *Store {
	t.Helper()
	s, _ := newStore(t, opts...)
	learn := mustCategory(t, s, "学习资源")
	tools := mustCategory(t, s, "Tools")
	mustCategory(t, s, "Empty")
	for _, in := range []types.WebsiteInput{
		{Name: "MDN Web Docs", URL: "https://developer.mozilla.org", Description: "Web开发权威文档", CategoryID: learn.ID},
		{Name: "Go", URL: "https://go.dev", Description: "The Go language", CategoryID: learn.ID},
		{Name: "GitHub", URL: "https://github.com", Description: "Code hosting", CategoryID: tools.ID},
	} {
		_, err := s.AddWebsite(in)
		require.NoError(t, err)
	}
	return s
}

func TestSearch(t *testing.T) {
	ix, err := index.Open()
	require.NoError(t, err)
	defer ix.Close()

	variants := map[string]*Store{
		"scan":  searchFixture(t),
		"index": searchFixture(t, WithIndex(ix)),
	}

	for variant, s := range variants {
		t.Run(variant, func(t *testing.T) {
			all := s.Search("  ")
			assert.Len(t, all, 3, "empty term returns every category")

			got := s.Search("GO")
			require.Len(t, got, 1)
			assert.Equal(t, "学习资源", got[0].Name)
			assert.Equal(t, []int{2}, websiteIDsOf(got[0]))

			got = s.Search("o")
			require.Len(t, got, 2, "categories without matches are omitted")
			assert.Equal(t, []int{1, 2}, websiteIDsOf(got[0]))
			assert.Equal(t, []int{3}, websiteIDsOf(got[1]))

			got = s.Search("权威")
			require.Len(t, got, 1)
			assert.Equal(t, []int{1}, websiteIDsOf(got[0]))

			assert.Empty(t, s.Search("nothing"))
		})
	}
}

func TestSearchFallsBackWhenIndexClosed(t *testing.T) {
	ix, err := index.Open()
	require.NoError(t, err)
	s := searchFixture(t, WithIndex(ix))
	require.NoError(t, ix.Close())

	got := s.Search("github")
	require.Len(t, got, 1)
	assert.Equal(t, "Tools", got[0].Name)
}
