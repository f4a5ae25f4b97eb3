package snapshot

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/tsawler/chartwatch/model"
)

// ErrNotFound indicates no snapshot exists for the requested key.
var ErrNotFound = errors.New("snapshot not found")

// Store reads and writes snapshot files in a data directory.
type Store struct {
	dir string
}

// NewStore creates a store rooted at dir. The directory is created on the
// first Save.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// Path returns the snapshot file path for an (airport, cycle) key.
func (s *Store) Path(airportCode, cycle string) string {
	return filepath.Join(s.dir, fmt.Sprintf("%s_%s_extracted.json", airportCode, cycle))
}

// Exists reports whether a snapshot file is present for the key.
func (s *Store) Exists(airportCode, cycle string) bool {
	_, err := os.Stat(s.Path(airportCode, cycle))
	return err == nil
}

// Save writes a snapshot to its canonical path, creating the data directory
// if needed. It returns the written path.
func (s *Store) Save(snap *model.Snapshot) (string, error) {
	data, err := Marshal(snap)
	if err != nil {
		return "", fmt.Errorf("failed to encode snapshot: %w", err)
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create data directory: %w", err)
	}

	path := s.Path(snap.AirportCode, snap.Cycle)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write snapshot: %w", err)
	}
	return path, nil
}

// Load reads the snapshot for an (airport, cycle) key. A missing file
// yields an error wrapping ErrNotFound.
func (s *Store) Load(airportCode, cycle string) (*model.Snapshot, error) {
	path := s.Path(airportCode, cycle)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s %s", ErrNotFound, airportCode, cycle)
		}
		return nil, fmt.Errorf("failed to read snapshot: %w", err)
	}

	snap, err := Unmarshal(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return snap, nil
}
