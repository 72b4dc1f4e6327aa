// Package storage persists the high-score table to disk.
// Two backends are provided: a JSON document and a SQLite database
// using the pure-Go modernc.org/sqlite driver.
package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/vovakirdan/tui-snake/internal/scores"
)

// ErrNotFound is returned by Load when nothing has been saved yet.
var ErrNotFound = errors.New("storage: no saved high scores")

// DefaultPath is where high scores live unless overridden.
const DefaultPath = "~/.snake/high_scores.json"

// Store is a scores.Persister that may hold resources.
type Store interface {
	scores.Persister
	Close() error
}

// Open returns the backend matching the file extension of path.
// Paths ending in .db or .sqlite use SQLite, anything else is JSON.
func Open(path string) (Store, error) {
	if path == "" {
		path = DefaultPath
	}
	path, err := ExpandHome(path)
	if err != nil {
		return nil, err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".db", ".sqlite", ".sqlite3":
		return OpenSQLite(path)
	default:
		return NewJSONStore(path), nil
	}
}

// ExpandHome replaces a leading "~" or "~/" with the user's home directory.
// Other paths, including "~user", are returned unchanged.
func ExpandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("storage: cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}
