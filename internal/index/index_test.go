package index

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/linkshelf/pkg/types"
)

func sampleCategories() []types.Category {
	return []types.Category{
		{ID: 2, Name: "学习资源", Websites: []types.Website{
			{ID: 5, Name: "MDN Web Docs", Description: "Web开发权威文档"},
			{ID: 1, Name: "Go", Description: "The Go programming language"},
		}},
		{ID: 1, Name: "Tools", Websites: []types.Website{
			{ID: 3, Name: "GitHub", Description: "Code hosting"},
			{ID: 4, Name: "Regex101", Description: "Regular expression DOCS and tester"},
		}},
		{ID: 3, Name: "Empty", Websites: []types.Website{}},
	}
}

func openIndex(t *testing.T) *Index {
	t.Helper()
	ix, err := Open()
	require.NoError(t, err)
	t.Cleanup(func() { ix.Close() })
	return ix
}

func TestSearchWebsites(t *testing.T) {
	ix := openIndex(t)
	require.NoError(t, ix.Rebuild(sampleCategories()))

	tests := []struct {
		name string
		term string
		want []int
	}{
		{"matches name case-insensitively", "github", []int{3}},
		{"matches description", "docs", []int{5, 4}},
		{"non-ASCII description", "权威", []int{5}},
		{"ordered by category then position", "o", []int{5, 1, 3, 4}},
		{"empty term matches everything", "", []int{5, 1, 3, 4}},
		{"surrounding whitespace ignored", "  GO ", []int{1}},
		{"no match", "zzz", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ix.SearchWebsites(tt.term)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRebuildReplacesContent(t *testing.T) {
	ix := openIndex(t)
	require.NoError(t, ix.Rebuild(sampleCategories()))
	require.NoError(t, ix.Rebuild([]types.Category{{ID: 9, Name: "only", Websites: []types.Website{{ID: 7, Name: "x"}}}}))

	cats, sites, err := ix.Count()
	require.NoError(t, err)
	assert.Equal(t, 1, cats)
	assert.Equal(t, 1, sites)
}

func TestRebuildToleratesDuplicateIDs(t *testing.T) {
	ix := openIndex(t)
	cats := []types.Category{
		{ID: 1, Name: "a", Websites: []types.Website{{ID: 1, Name: "dup"}}},
		{ID: 1, Name: "b", Websites: []types.Website{{ID: 1, Name: "dup"}}},
	}
	require.NoError(t, ix.Rebuild(cats))

	got, err := ix.SearchWebsites("dup")
	require.NoError(t, err)
	assert.Equal(t, []int{1, 1}, got)
}

func TestClosedIndex(t *testing.T) {
	ix, err := Open()
	require.NoError(t, err)
	require.NoError(t, ix.Close())
	require.NoError(t, ix.Close(), "Close is idempotent")

	assert.ErrorIs(t, ix.Rebuild(nil), ErrClosed)
	_, err = ix.SearchWebsites("x")
	assert.ErrorIs(t, err, ErrClosed)
}
