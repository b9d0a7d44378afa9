package banktracker

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Keys under which the dashboard persists its state.
const (
	StoreMarket    = "market"
	StorePortfolio = "portfolio"
	StoreBank      = "bank"
)

// Store is the persistence gateway: named JSON blobs on disk, one file per
// key. There is no schema versioning; whatever blob was last written
// round-trips exactly.
type Store struct {
	dir string
}

// NewStore returns a store rooted at dir. The directory is created lazily on
// the first Set.
func NewStore(dir string) *Store { return &Store{dir: dir} }

func (s *Store) path(key string) string { return filepath.Join(s.dir, key+".json") }

// Get reads the blob stored under key into v. It returns false when no blob
// was ever written for that key.
func (s *Store) Get(key string, v any) (bool, error) {
	content, err := os.ReadFile(s.path(key))
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("could not read %q: %w", s.path(key), err)
	}
	if err := json.Unmarshal(content, v); err != nil {
		return false, fmt.Errorf("could not decode %q: %w", s.path(key), err)
	}
	return true, nil
}

// Set writes v as the blob stored under key, replacing any previous blob.
func (s *Store) Set(key string, v any) error {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return fmt.Errorf("could not create store directory %q: %w", s.dir, err)
	}
	content, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("could not encode %q: %w", key, err)
	}
	if err := os.WriteFile(s.path(key), content, 0644); err != nil {
		return fmt.Errorf("could not write %q: %w", s.path(key), err)
	}
	return nil
}

// Remove deletes the blob stored under key. Removing an absent key is not an
// error.
func (s *Store) Remove(key string) error {
	err := os.Remove(s.path(key))
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}
