package store

import (
	"slices"

	"github.com/mesh-intelligence/linkshelf/pkg/types"
)

// AddFile appends a file entry stamped with the current time.
func (s *Store) AddFile(in types.FileInput) (types.FileEntry, error) {
	in = in.Normalize()
	if err := in.Validate(); err != nil {
		return types.FileEntry{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	f := fileFromInput(nextID(fileIDs(s.files)), in, s.stamp())
	s.files = append(s.files, f)
	return f, s.commitLocked("file", "add", f.ID)
}

// UpdateFile overwrites every field in place and restamps the time.
func (s *Store) UpdateFile(id int, in types.FileInput) (types.FileEntry, error) {
	in = in.Normalize()
	if err := in.Validate(); err != nil {
		return types.FileEntry{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.fileIndexLocked(id)
	if i < 0 {
		return types.FileEntry{}, types.NotFound("file", id)
	}
	f := fileFromInput(id, in, s.stamp())
	s.files[i] = f
	return f, s.commitLocked("file", "update", id)
}

// DeleteFile removes the file entry.
func (s *Store) DeleteFile(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.fileIndexLocked(id)
	if i < 0 {
		return types.NotFound("file", id)
	}
	s.files = slices.Delete(s.files, i, i+1)
	return s.commitLocked("file", "delete", id)
}

// GetFile returns a copy of the file entry.
func (s *Store) GetFile(id int) (types.FileEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.fileIndexLocked(id)
	if i < 0 {
		return types.FileEntry{}, types.NotFound("file", id)
	}
	return s.files[i], nil
}

// ListFiles returns all file entries in insertion order.
func (s *Store) ListFiles() []types.FileEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]types.FileEntry{}, s.files...)
}

func (s *Store) fileIndexLocked(id int) int {
	return slices.IndexFunc(s.files, func(f types.FileEntry) bool { return f.ID == id })
}

func fileFromInput(id int, in types.FileInput, stamp string) types.FileEntry {
	return types.FileEntry{
		ID:          id,
		Name:        in.Name,
		Size:        in.Size,
		PreviewURL:  in.PreviewURL,
		DownloadURL: in.DownloadURL,
		Time:        stamp,
	}
}
