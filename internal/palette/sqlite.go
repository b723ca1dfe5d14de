package palette

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/dokzlo13/hsbk/internal/color"
)

// SQLiteStore is a persistent palette backed by SQLite.
type SQLiteStore struct {
	db *sql.DB
	mu sync.RWMutex
}

// NewSQLiteStore creates a new SQLite-backed palette.
func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// Save creates or replaces the color stored under name.
func (s *SQLiteStore) Save(name string, c color.Color) (*Entry, error) {
	name, err := normalizeName(name)
	if err != nil {
		return nil, err
	}

	payload, err := json.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal color: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC().Unix()
	row := s.db.QueryRow(`
		INSERT INTO palette (name, id, payload, version, created_at, updated_at)
		VALUES (?, ?, ?, 1, ?, ?)
		ON CONFLICT(name) DO UPDATE SET
			payload = excluded.payload,
			version = version + 1,
			updated_at = excluded.updated_at
		RETURNING name, id, payload, version, created_at, updated_at
	`, name, uuid.NewString(), string(payload), now, now)

	entry, err := scanEntry(row)
	if err != nil {
		return nil, fmt.Errorf("failed to save color: %w", err)
	}

	log.Debug().
		Str("name", name).
		Int64("version", entry.Version).
		Str("payload", string(payload)).
		Msg("Palette.Save completed")

	return entry, nil
}

// Get returns the entry for name, or nil if there is none.
func (s *SQLiteStore) Get(name string) (*Entry, error) {
	name, err := normalizeName(name)
	if err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	row := s.db.QueryRow(`
		SELECT name, id, payload, version, created_at, updated_at
		FROM palette
		WHERE name = ?
	`, name)

	entry, err := scanEntry(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get color: %w", err)
	}
	return entry, nil
}

// List returns all entries sorted by name.
func (s *SQLiteStore) List() ([]*Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(`
		SELECT name, id, payload, version, created_at, updated_at
		FROM palette
		ORDER BY name
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list colors: %w", err)
	}
	defer rows.Close()

	var entries []*Entry
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan color: %w", err)
		}
		entries = append(entries, entry)
	}

	return entries, rows.Err()
}

// Delete removes name and reports whether it existed.
func (s *SQLiteStore) Delete(name string) (bool, error) {
	name, err := normalizeName(name)
	if err != nil {
		return false, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	result, err := s.db.Exec(`DELETE FROM palette WHERE name = ?`, name)
	if err != nil {
		return false, fmt.Errorf("failed to delete color: %w", err)
	}

	affected, _ := result.RowsAffected()
	return affected > 0, nil
}

// Clear removes every entry.
func (s *SQLiteStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.db.Exec(`DELETE FROM palette`); err != nil {
		return fmt.Errorf("failed to clear palette: %w", err)
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanEntry(row scanner) (*Entry, error) {
	var entry Entry
	var payload string
	var createdAt, updatedAt int64

	if err := row.Scan(&entry.Name, &entry.ID, &payload, &entry.Version, &createdAt, &updatedAt); err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(payload), &entry.Color); err != nil {
		return nil, fmt.Errorf("failed to unmarshal color for %s: %w", entry.Name, err)
	}

	entry.CreatedAt = time.Unix(createdAt, 0).UTC()
	entry.UpdatedAt = time.Unix(updatedAt, 0).UTC()
	return &entry, nil
}
