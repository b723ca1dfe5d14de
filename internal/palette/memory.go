package palette

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dokzlo13/hsbk/internal/color"
)

// MemoryStore is an in-memory palette (not persisted).
type MemoryStore struct {
	entries map[string]Entry
	mu      sync.RWMutex
}

// NewMemoryStore creates a new in-memory palette.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]Entry),
	}
}

// Save creates or replaces the color stored under name.
func (s *MemoryStore) Save(name string, c color.Color) (*Entry, error) {
	name, err := normalizeName(name)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC().Truncate(time.Second)

	entry, ok := s.entries[name]
	if ok {
		entry.Version++
	} else {
		entry = Entry{
			ID:        uuid.NewString(),
			Name:      name,
			Version:   1,
			CreatedAt: now,
		}
	}
	entry.Color = c
	entry.UpdatedAt = now

	s.entries[name] = entry
	return &entry, nil
}

// Get returns the entry for name, or nil if there is none.
func (s *MemoryStore) Get(name string) (*Entry, error) {
	name, err := normalizeName(name)
	if err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	entry, ok := s.entries[name]
	if !ok {
		return nil, nil
	}
	return &entry, nil
}

// List returns all entries sorted by name.
func (s *MemoryStore) List() ([]*Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries := make([]*Entry, 0, len(s.entries))
	for _, e := range s.entries {
		e := e
		entries = append(entries, &e)
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name < entries[j].Name
	})
	return entries, nil
}

// Delete removes name and reports whether it existed.
func (s *MemoryStore) Delete(name string) (bool, error) {
	name, err := normalizeName(name)
	if err != nil {
		return false, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.entries[name]
	delete(s.entries, name)
	return ok, nil
}

// Clear removes every entry.
func (s *MemoryStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = make(map[string]Entry)
	return nil
}
