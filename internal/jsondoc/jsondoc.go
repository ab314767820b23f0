// Package jsondoc reads and writes whole JSON documents on local disk.
// Writes go through a temp file, fsync and rename so a failed save never
// leaves a truncated document behind.
package jsondoc

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mesh-intelligence/linkshelf/pkg/types"
)

// Load reads the JSON document at path into a value of type T. If the file
// is missing, unreadable or malformed, Load returns def together with a
// *types.LoadError. The error is informational: def is always usable.
func Load[T any](path string, def T) (T, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return def, &types.LoadError{Path: path, Err: err}
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return def, &types.LoadError{Path: path, Err: err}
	}
	return v, nil
}

// Marshal encodes v as indented UTF-8 JSON. Non-ASCII text and HTML
// characters are written literally. The output ends with a newline.
func Marshal(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Save writes v to path. Any failure is returned as a *types.SaveError and
// the previous file content, if any, is left in place.
func Save(path string, v any) error {
	data, err := Marshal(v)
	if err != nil {
		return &types.SaveError{Path: path, Err: fmt.Errorf("encoding: %w", err)}
	}
	if err := writeAtomic(path, data); err != nil {
		return &types.SaveError{Path: path, Err: err}
	}
	return nil
}

// writeAtomic writes data using the temp-file, fsync, rename pattern.
func writeAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".linkshelf-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing document: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("syncing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}
