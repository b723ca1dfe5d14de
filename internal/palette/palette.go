// Package palette stores named colors with SQLite persistence and in-memory options.
package palette

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/dokzlo13/hsbk/internal/color"
)

// ErrInvalidName is returned for empty or whitespace-only names
var ErrInvalidName = errors.New("invalid palette name")

// Entry is a named color
type Entry struct {
	ID        string      `json:"id"` // Stable across updates
	Name      string      `json:"name"`
	Color     color.Color `json:"color"`
	Version   int64       `json:"version"` // Incremented on every save
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}

// Store is the interface for palette storage.
type Store interface {
	// Save creates or replaces the color stored under name.
	// Replacing keeps the entry ID and bumps its version.
	Save(name string, c color.Color) (*Entry, error)

	// Get returns the entry for name, or nil if there is none.
	// Names are trimmed the same way Save trims them.
	Get(name string) (*Entry, error)

	// List returns all entries sorted by name.
	List() ([]*Entry, error)

	// Delete removes name and reports whether it existed.
	Delete(name string) (bool, error)

	// Clear removes every entry.
	Clear() error
}

// Seed saves each color whose name is not in store yet.
// Existing entries are left alone so colors saved later are not reverted.
func Seed(store Store, colors map[string]color.Color) error {
	names := make([]string, 0, len(colors))
	for name := range colors {
		names = append(names, name)
	}
	sort.Strings(names)

	seeded := 0
	for _, name := range names {
		existing, err := store.Get(name)
		if err != nil {
			return fmt.Errorf("failed to seed %q: %w", name, err)
		}
		if existing != nil {
			continue
		}
		if _, err := store.Save(name, colors[name]); err != nil {
			return fmt.Errorf("failed to seed %q: %w", name, err)
		}
		seeded++
	}

	log.Debug().Int("count", seeded).Int("configured", len(names)).Msg("Seeded palette")
	return nil
}

func normalizeName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", ErrInvalidName
	}
	return name, nil
}
