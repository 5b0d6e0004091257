package storage

import (
	"fmt"
	"os"
	"path/filepath"
)

// FileSlots implements Slots with one file per key under a state directory.
type FileSlots struct {
	dir string
}

// NewFileSlots creates a file-backed slot store rooted at dir.
func NewFileSlots(dir string) *FileSlots {
	return &FileSlots{dir: dir}
}

// Get reads the value stored under key. An absent file is reported as not
// present, not as an error.
func (s *FileSlots) Get(key string) ([]byte, bool, error) {
	value, err := os.ReadFile(s.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to read slot %q: %w", key, err)
	}
	return value, true, nil
}

// Set writes the value under key. The write goes through a temporary file and
// a rename so a crash mid-write never leaves a truncated slot.
func (s *FileSlots) Set(key string, value []byte) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("failed to create storage directory: %w", err)
	}
	tmp := s.path(key) + ".tmp"
	if err := os.WriteFile(tmp, value, 0o644); err != nil {
		return fmt.Errorf("failed to write slot %q: %w", key, err)
	}
	if err := os.Rename(tmp, s.path(key)); err != nil {
		return fmt.Errorf("failed to commit slot %q: %w", key, err)
	}
	return nil
}

// Delete removes the file stored under key, if any.
func (s *FileSlots) Delete(key string) error {
	if err := os.Remove(s.path(key)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete slot %q: %w", key, err)
	}
	return nil
}

func (s *FileSlots) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}
