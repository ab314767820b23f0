package types

import (
	"errors"
	"fmt"
)

// Error classes. Every error returned by a linkshelf component matches at
// most one of these with errors.Is.
var (
	ErrValidation = errors.New("validation failed")
	ErrNotFound   = errors.New("record not found")
	ErrLoad       = errors.New("load failed")
	ErrSave       = errors.New("save failed")
	ErrRemoteSync = errors.New("remote sync failed")
)

// Validation causes carried by ValidationError.
var (
	ErrRequired          = errors.New("must not be empty")
	ErrDuplicateName     = errors.New("already exists")
	ErrInvalidURL        = errors.New("must start with http:// or https://")
	ErrCategoryNotFound  = errors.New("does not exist")
	ErrUnknownDocument   = errors.New("is not one of categories, files, notifications")
	ErrRemoteUnavailable = errors.New("is not configured")
)

// ValidationError reports bad or missing user input. The operation that
// returned it made no state change.
type ValidationError struct {
	Field string
	Err   error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Err)
}

func (e *ValidationError) Unwrap() error { return e.Err }

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

// LoadError reports a document that was missing, unreadable or malformed.
// The caller received an empty default collection in its place.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

func (e *LoadError) Is(target error) bool { return target == ErrLoad }

// SaveError reports a failed document write. In-memory state stays
// authoritative.
type SaveError struct {
	Path string
	Err  error
}

func (e *SaveError) Error() string {
	return fmt.Sprintf("save %s: %v", e.Path, e.Err)
}

func (e *SaveError) Unwrap() error { return e.Err }

func (e *SaveError) Is(target error) bool { return target == ErrSave }

// RemoteSyncError reports a failed mirror upload. Local files are untouched.
type RemoteSyncError struct {
	Op  string // read, lookup, create, update
	Err error
}

func (e *RemoteSyncError) Error() string {
	return fmt.Sprintf("remote sync %s: %v", e.Op, e.Err)
}

func (e *RemoteSyncError) Unwrap() error { return e.Err }

func (e *RemoteSyncError) Is(target error) bool { return target == ErrRemoteSync }

// NotFound wraps ErrNotFound with the entity kind and id.
func NotFound(entity string, id int) error {
	return fmt.Errorf("%s %d: %w", entity, id, ErrNotFound)
}
