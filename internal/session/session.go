// Package session remembers the last cursor position of each file the
// editor has saved or closed.
package session

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS positions (
    path    TEXT PRIMARY KEY,
    row     INTEGER NOT NULL,
    col     INTEGER NOT NULL,
    updated INTEGER NOT NULL
);
`

// Position is a remembered cursor location.
type Position struct {
	Row, Col int
	Updated  time.Time
}

// Store is an SQLite-backed map from absolute file path to Position.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the database at path.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}
	dsn := path + "?_pragma=busy_timeout(1000)&_pragma=synchronous(NORMAL)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}
	return &Store{db: db}, nil
}

func key(file string) string {
	if abs, err := filepath.Abs(file); err == nil {
		return abs
	}
	return file
}

// Save records the cursor position for file.
func (s *Store) Save(file string, row, col int) error {
	if s == nil || file == "" {
		return nil
	}
	_, err := s.db.Exec(
		"INSERT OR REPLACE INTO positions (path, row, col, updated) VALUES (?, ?, ?, ?)",
		key(file), row, col, time.Now().UnixNano(),
	)
	return err
}

// Lookup returns the remembered position for file. ok is false when the file
// has no entry.
func (s *Store) Lookup(file string) (pos Position, ok bool, err error) {
	if s == nil || file == "" {
		return Position{}, false, nil
	}
	var updated int64
	err = s.db.QueryRow(
		"SELECT row, col, updated FROM positions WHERE path = ?", key(file),
	).Scan(&pos.Row, &pos.Col, &updated)
	if errors.Is(err, sql.ErrNoRows) {
		return Position{}, false, nil
	}
	if err != nil {
		return Position{}, false, err
	}
	pos.Updated = time.Unix(0, updated)
	return pos, true, nil
}

// Forget removes the entry for file.
func (s *Store) Forget(file string) error {
	if s == nil || file == "" {
		return nil
	}
	_, err := s.db.Exec("DELETE FROM positions WHERE path = ?", key(file))
	return err
}

// Close closes the database.
func (s *Store) Close() error {
	if s == nil {
		return nil
	}
	return s.db.Close()
}
