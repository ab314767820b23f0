package types

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWebsiteInputValidate(t *testing.T) {
	valid := WebsiteInput{Name: "Go", URL: "https://go.dev", CategoryID: 1}

	tests := []struct {
		name      string
		mutate    func(in *WebsiteInput)
		wantField string
		wantCause error
	}{
		{"valid input", func(in *WebsiteInput) {}, "", nil},
		{"plain http is accepted", func(in *WebsiteInput) { in.URL = "http://x.com" }, "", nil},
		{"empty name", func(in *WebsiteInput) { in.Name = "" }, "name", ErrRequired},
		{"empty url", func(in *WebsiteInput) { in.URL = "" }, "url", ErrRequired},
		{"ftp url", func(in *WebsiteInput) { in.URL = "ftp://x.com" }, "url", ErrInvalidURL},
		{"scheme is case sensitive", func(in *WebsiteInput) { in.URL = "HTTP://x.com" }, "url", ErrInvalidURL},
		{"no category", func(in *WebsiteInput) { in.CategoryID = 0 }, "category", ErrRequired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := valid
			tt.mutate(&in)
			err := in.Validate()
			if tt.wantCause == nil {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrValidation)
			assert.ErrorIs(t, err, tt.wantCause)

			var ve *ValidationError
			require.True(t, errors.As(err, &ve))
			assert.Equal(t, tt.wantField, ve.Field)
		})
	}
}

func TestWebsiteInputNormalize(t *testing.T) {
	in := WebsiteInput{Name: "  Go ", URL: "\thttps://go.dev\n", Description: " lang ", CategoryID: 3}.Normalize()
	assert.Equal(t, WebsiteInput{Name: "Go", URL: "https://go.dev", Description: "lang", CategoryID: 3}, in)
}

func TestCloneCategoriesIsDeep(t *testing.T) {
	orig := []Category{
		{ID: 1, Name: "a", Websites: []Website{{ID: 1, Name: "w"}}},
		{ID: 2, Name: "b"},
	}
	cp := CloneCategories(orig)
	cp[0].Websites[0].Name = "changed"

	assert.Equal(t, "w", orig[0].Websites[0].Name)
	assert.NotNil(t, cp[1].Websites, "nil website slices become empty slices")
	assert.Empty(t, cp[1].Websites)
}
