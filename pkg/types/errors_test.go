package types

import (
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorClasses(t *testing.T) {
	tests := []struct {
		name  string
		err   error
		class error
		cause error
	}{
		{"validation", &ValidationError{Field: "name", Err: ErrRequired}, ErrValidation, ErrRequired},
		{"load", &LoadError{Path: "data.json", Err: os.ErrNotExist}, ErrLoad, os.ErrNotExist},
		{"save", &SaveError{Path: "data.json", Err: os.ErrPermission}, ErrSave, os.ErrPermission},
		{"remote", &RemoteSyncError{Op: "update", Err: errors.New("boom")}, ErrRemoteSync, nil},
	}

	classes := []error{ErrValidation, ErrLoad, ErrSave, ErrRemoteSync, ErrNotFound}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, c := range classes {
				assert.Equal(t, c == tt.class, errors.Is(tt.err, c), "class %v", c)
			}
			if tt.cause != nil {
				assert.ErrorIs(t, tt.err, tt.cause)
			}
		})
	}
}

func TestNotFound(t *testing.T) {
	err := NotFound("website", 7)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, "website 7: record not found", err.Error())
}
