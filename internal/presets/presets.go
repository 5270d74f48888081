// Package presets persists named filter states in a local SQLite file, so a
// user's saved board filters survive restarts without touching Postgres.
package presets

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/claude/classgrid/internal/catalog"
	_ "modernc.org/sqlite"
)

// Preset is a named, saved filter state.
type Preset struct {
	Name    string              `json:"name"`
	State   catalog.FilterState `json:"state"`
	SavedAt time.Time           `json:"saved_at"`
}

// Store holds saved filter presets in dir/presets.db.
type Store struct {
	db *sql.DB
}

// Open opens (or creates) the preset database under dir.
func Open(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating presets dir %s: %w", dir, err)
	}

	dbPath := filepath.Join(dir, "presets.db")
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening presets db: %w", err)
	}

	_, err = db.Exec(`CREATE TABLE IF NOT EXISTS filter_presets (
		name     TEXT PRIMARY KEY,
		search   TEXT NOT NULL DEFAULT '',
		level    TEXT NOT NULL DEFAULT 'all',
		category TEXT NOT NULL DEFAULT 'all',
		saved_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("creating presets table: %w", err)
	}

	return &Store{db: db}, nil
}

// Save stores a preset, replacing any existing preset with the same name.
func (s *Store) Save(name string, state catalog.FilterState) error {
	if name == "" {
		return fmt.Errorf("preset name is required")
	}
	_, err := s.db.Exec(
		`INSERT OR REPLACE INTO filter_presets (name, search, level, category, saved_at)
		 VALUES (?, ?, ?, ?, CURRENT_TIMESTAMP)`,
		name, state.Search, state.Level, state.Category,
	)
	if err != nil {
		return fmt.Errorf("saving preset %q: %w", name, err)
	}
	return nil
}

// Get returns a preset by name. The second result is false when no preset
// with that name exists.
func (s *Store) Get(name string) (Preset, bool, error) {
	var p Preset
	p.Name = name
	err := s.db.QueryRow(
		`SELECT search, level, category, saved_at FROM filter_presets WHERE name = ?`,
		name,
	).Scan(&p.State.Search, &p.State.Level, &p.State.Category, &p.SavedAt)
	if err == sql.ErrNoRows {
		return Preset{}, false, nil
	}
	if err != nil {
		return Preset{}, false, fmt.Errorf("reading preset %q: %w", name, err)
	}
	return p, true, nil
}

// List returns all presets ordered by name.
func (s *Store) List() ([]Preset, error) {
	rows, err := s.db.Query(
		`SELECT name, search, level, category, saved_at FROM filter_presets ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("listing presets: %w", err)
	}
	defer rows.Close()

	var out []Preset
	for rows.Next() {
		var p Preset
		if err := rows.Scan(&p.Name, &p.State.Search, &p.State.Level, &p.State.Category, &p.SavedAt); err != nil {
			return nil, fmt.Errorf("scanning preset: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// Delete removes a preset. Returns true if a preset was removed.
func (s *Store) Delete(name string) (bool, error) {
	res, err := s.db.Exec(`DELETE FROM filter_presets WHERE name = ?`, name)
	if err != nil {
		return false, fmt.Errorf("deleting preset %q: %w", name, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// Close closes the preset database.
func (s *Store) Close() error {
	return s.db.Close()
}
