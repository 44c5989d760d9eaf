// Package store persists learner progress in a local SQLite database.
// The stats mapping is written wholesale as a versioned JSON blob in a
// single-row table; there is no per-fact schema to migrate.
package store

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/abhisek/multiz/internal/stats"

	// Pure Go SQLite driver (no CGO).
	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS progress (
	id       INTEGER PRIMARY KEY CHECK (id = 1),
	payload  BLOB NOT NULL,
	saved_at TEXT NOT NULL
);
`

// Store is the SQLite-backed persister for the stats mapping.
// It implements stats.Persister.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

var _ stats.Persister = (*Store)(nil)

// Open connects to the SQLite database at dsn, applies the recommended
// pragmas, and creates the progress table if needed.
func Open(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply pragmas: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	return &Store{db: db, now: time.Now}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Save writes the full mapping as a fresh versioned blob.
func (s *Store) Save(mapping map[string]*stats.FactStats) error {
	payload, err := EncodeBlob(mapping, s.now())
	if err != nil {
		return err
	}

	_, err = s.db.Exec(`
		INSERT INTO progress (id, payload, saved_at) VALUES (1, ?, ?)
		ON CONFLICT (id) DO UPDATE SET payload = excluded.payload, saved_at = excluded.saved_at`,
		payload, s.now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("save progress: %w", err)
	}
	return nil
}

// Load reads the persisted mapping. Absent data yields (nil, nil);
// malformed or version-mismatched data yields an error, which callers
// treat the same as absent.
func (s *Store) Load() (map[string]*stats.FactStats, error) {
	var payload []byte
	err := s.db.QueryRow(`SELECT payload FROM progress WHERE id = 1`).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load progress: %w", err)
	}
	return DecodeBlob(payload)
}

// Clear removes the persisted blob, resetting the learner's progress.
func (s *Store) Clear() error {
	if _, err := s.db.Exec(`DELETE FROM progress WHERE id = 1`); err != nil {
		return fmt.Errorf("clear progress: %w", err)
	}
	return nil
}

// applyPragmas configures SQLite for single-user desktop use.
func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA synchronous = NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
	}
	return nil
}

// DefaultDBPath resolves the database file path in priority order:
// 1. MULTIZ_DB environment variable
// 2. $XDG_DATA_HOME/multiz/multiz.db
// 3. ~/.local/share/multiz/multiz.db
func DefaultDBPath() (string, error) {
	if p := os.Getenv("MULTIZ_DB"); p != "" {
		return p, EnsureDir(p)
	}

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}

	p := filepath.Join(dataHome, "multiz", "multiz.db")
	return p, EnsureDir(p)
}

// EnsureDir creates the parent directory of path if it doesn't exist.
func EnsureDir(path string) error {
	dir := filepath.Dir(path)
	return os.MkdirAll(dir, 0o755)
}
