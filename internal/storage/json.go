package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/vovakirdan/tui-snake/internal/scores"
)

// JSONStore keeps the table as one JSON object keyed by difficulty.
type JSONStore struct {
	path string
}

// NewJSONStore returns a store backed by the file at path.
// The file is not touched until Load or Save.
func NewJSONStore(path string) *JSONStore {
	return &JSONStore{path: path}
}

// Path returns the backing file path.
func (s *JSONStore) Path() string {
	return s.path
}

// Load reads the table. A missing file yields ErrNotFound.
func (s *JSONStore) Load() (scores.Table, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot read %s: %w", s.path, err)
	}

	var table scores.Table
	if err := json.Unmarshal(data, &table); err != nil {
		return nil, fmt.Errorf("storage: corrupt high score file %s: %w", s.path, err)
	}
	if table == nil {
		return nil, ErrNotFound
	}
	return table, nil
}

// Save replaces the file contents with the full table.
// It writes to a temporary file first so a crash never leaves a torn file.
func (s *JSONStore) Save(table scores.Table) error {
	data, err := json.MarshalIndent(table, "", "    ")
	if err != nil {
		return fmt.Errorf("storage: cannot encode high scores: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".high_scores-*.tmp")
	if err != nil {
		return fmt.Errorf("storage: cannot create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("storage: cannot write high scores: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("storage: cannot write high scores: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("storage: cannot replace %s: %w", s.path, err)
	}
	return nil
}

// Close is a no-op.
func (s *JSONStore) Close() error {
	return nil
}
