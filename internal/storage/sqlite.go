// Package storage provides a SQLite-backed library of saved automaton states.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/tui-automata/internal/automata"
)

// ErrNotFound is returned when no saved state has the requested ID.
var ErrNotFound = errors.New("storage: saved state not found")

// Store manages the SQLite database connection for the state library.
type Store struct {
	db *sql.DB
}

// Entry is a saved state. Data holds the encoded automata.Record.
type Entry struct {
	ID        int64
	Kind      string
	Name      string
	Rule      string
	Data      []byte
	CreatedAt time.Time
}

// KindStats summarizes the saved states of one simulation kind.
type KindStats struct {
	Kind      string
	Count     int
	LastSaved time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	// Test connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS saved_states (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			kind TEXT NOT NULL,
			name TEXT NOT NULL,
			rule TEXT NOT NULL DEFAULT '',
			data BLOB NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_saved_states_kind ON saved_states(kind);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Save stores an encoded record. Kind, name and rule are read from the
// record header. Returns the ID of the inserted row.
func (s *Store) Save(data []byte) (int64, error) {
	h, err := automata.PeekHeader(data)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save state: %w", err)
	}
	if h.Kind == "" {
		return 0, fmt.Errorf("storage: cannot save state %q: record has no kind", h.Name)
	}

	result, err := s.db.Exec(
		"INSERT INTO saved_states (kind, name, rule, data) VALUES (?, ?, ?, ?)",
		h.Kind, h.Name, h.Rule, data,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save state: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// List returns saved states without their data, newest first. An empty kind
// lists every kind.
func (s *Store) List(kind string) ([]Entry, error) {
	query := `SELECT id, kind, name, rule, created_at FROM saved_states`
	var args []any
	if kind != "" {
		query += ` WHERE kind = ?`
		args = append(args, kind)
	}
	query += ` ORDER BY id DESC`

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query saved states: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.Kind, &e.Name, &e.Rule, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// Get returns a saved state with its data.
func (s *Store) Get(id int64) (Entry, error) {
	var e Entry
	var createdAt any

	err := s.db.QueryRow(
		`SELECT id, kind, name, rule, data, created_at
		 FROM saved_states
		 WHERE id = ?`,
		id,
	).Scan(&e.ID, &e.Kind, &e.Name, &e.Rule, &e.Data, &createdAt)

	if errors.Is(err, sql.ErrNoRows) {
		return Entry{}, fmt.Errorf("%w: id %d", ErrNotFound, id)
	}
	if err != nil {
		return Entry{}, fmt.Errorf("storage: cannot query saved state: %w", err)
	}

	e.CreatedAt = parseTime(createdAt)
	return e, nil
}

// Delete removes a saved state.
func (s *Store) Delete(id int64) error {
	res, err := s.db.Exec("DELETE FROM saved_states WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("storage: cannot delete saved state: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("storage: cannot delete saved state: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: id %d", ErrNotFound, id)
	}
	return nil
}

// Stats returns per-kind counts for every kind with saved states.
func (s *Store) Stats() (map[string]KindStats, error) {
	rows, err := s.db.Query(
		`SELECT kind, COUNT(*), MAX(created_at)
		 FROM saved_states
		 GROUP BY kind`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get library stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]KindStats)
	for rows.Next() {
		var ks KindStats
		var lastSaved any
		if err := rows.Scan(&ks.Kind, &ks.Count, &lastSaved); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		ks.LastSaved = parseTime(lastSaved)
		stats[ks.Kind] = ks
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return stats, nil
}

// parseTime handles both time.Time and string datetimes from the driver.
func parseTime(v any) time.Time {
	switch v := v.(type) {
	case time.Time:
		return v
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
