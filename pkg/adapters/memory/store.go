package memory

import (
	"context"
	"sync"

	"github.com/tabula-historica/snapshot/pkg/domain"
)

// Store implements ports.SnapshotStore in memory.
// Safe for concurrent use.
type Store struct {
	name  string
	data  []byte
	saves int
	mu    sync.RWMutex
}

// NewStore creates a new, empty in-memory store.
func NewStore(name string) *Store {
	return &Store{name: name}
}

// NewStoreWith creates an in-memory store preloaded with data.
func NewStoreWith(name string, data []byte) *Store {
	s := NewStore(name)
	s.data = append([]byte(nil), data...)
	return s
}

// Describe returns the store's name.
func (s *Store) Describe() string {
	return "memory:" + s.name
}

// Save replaces the stored bytes.
func (s *Store) Save(ctx context.Context, data []byte) error {
	// Copy so the caller cannot mutate stored content afterwards.
	copied := append([]byte(nil), data...)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = copied
	s.saves++
	return nil
}

// Load returns a copy of the stored bytes.
func (s *Store) Load(ctx context.Context) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.data == nil {
		return nil, domain.ErrNotFound
	}
	return append([]byte(nil), s.data...), nil
}

// Saves returns how many times Save has been called.
func (s *Store) Saves() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.saves
}
