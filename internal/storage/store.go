package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"reloading-bench-backend/internal/logger"
	"reloading-bench-backend/internal/storage/models"
)

// Store owns the whole in-memory data set and its JSON snapshot file.
// Every mutation rewrites the full file before returning. The snapshot is
// guarded by an RWMutex so the single-writer model holds even though gin
// serves requests concurrently.
type Store struct {
	path string
	mu   sync.RWMutex
	data *models.Snapshot
	log  *logger.Logger
}

// shapeProbe sniffs the persisted schema: a snapshot carrying a
// non-empty rifles collection and no actions key is the legacy shape.
// A snapshot that already has actions is never re-migrated, even if
// stale rifles are present.
type shapeProbe struct {
	Rifles  json.RawMessage `json:"rifles"`
	Actions json.RawMessage `json:"actions"`
}

// hasRifles reports whether the raw rifles value is a non-empty array.
// json.Unmarshal stores the literal null into a RawMessage, so a
// present "rifles": null must not count as legacy: the current-shape
// fields would be lost in the legacy decode.
func hasRifles(raw json.RawMessage) bool {
	var rifles []json.RawMessage
	if err := json.Unmarshal(raw, &rifles); err != nil {
		return false
	}
	return len(rifles) > 0
}

// Open loads the snapshot at path, migrating the legacy rifle shape if
// detected and writing the migrated result back immediately. A missing,
// unreadable, or unparsable file is logged and replaced with an empty
// seed snapshot; startup never fails on bad local data.
func Open(path string) (*Store, error) {
	s := &Store{
		path: path,
		log:  logger.WithComponent("store"),
	}
	data, err := s.load()
	if err != nil {
		return nil, err
	}
	s.data = data
	return s, nil
}

func (s *Store) load() (*models.Snapshot, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			s.log.WithError(err).Error("Failed to read data file, using seed data")
		}
		return s.seed()
	}

	var probe shapeProbe
	if err := json.Unmarshal(raw, &probe); err != nil {
		s.log.WithError(err).Error("Failed to parse data file, using seed data")
		return s.seed()
	}

	if hasRifles(probe.Rifles) && probe.Actions == nil {
		var legacy legacySnapshot
		if err := json.Unmarshal(raw, &legacy); err != nil {
			s.log.WithError(err).Error("Failed to parse legacy data file, using seed data")
			return s.seed()
		}
		migrated := migrateFromRifles(&legacy)
		if err := s.write(migrated); err != nil {
			return nil, fmt.Errorf("persisting migrated snapshot: %w", err)
		}
		return migrated, nil
	}

	var snap models.Snapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		s.log.WithError(err).Error("Failed to parse data file, using seed data")
		return s.seed()
	}
	snap.Normalize()
	return &snap, nil
}

func (s *Store) seed() (*models.Snapshot, error) {
	seed := models.Seed()
	if err := s.write(seed); err != nil {
		return nil, fmt.Errorf("writing seed snapshot: %w", err)
	}
	return seed, nil
}

func (s *Store) write(data *models.Snapshot) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}
	raw, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, raw, 0o644)
}

// Path returns the snapshot file location.
func (s *Store) Path() string {
	return s.path
}

// View runs fn with read access to the snapshot. fn must not mutate.
func (s *Store) View(fn func(*models.Snapshot) error) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return fn(s.data)
}

// Update runs fn with exclusive access to the snapshot and, if fn
// succeeds, writes the whole snapshot through to disk before returning.
// If fn fails its in-memory changes are kept out by convention: mutating
// callbacks return early before touching the data on validation errors.
func (s *Store) Update(fn func(*models.Snapshot) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := fn(s.data); err != nil {
		return err
	}
	if err := s.write(s.data); err != nil {
		return fmt.Errorf("persisting snapshot: %w", err)
	}
	return nil
}
