package catalog

import (
	"sync"

	"cotador/internal"
)

// Store holds the in-process inventory snapshot. Imports replace the
// snapshot wholesale and bump the generation; batches read a consistent
// copy together with the generation it belongs to, so a caller can tell
// when results were computed against a superseded catalog.
type Store struct {
	mu         sync.RWMutex
	items      []internal.InventoryItem
	generation uint64
}

func NewStore() *Store {
	return &Store{}
}

func (s *Store) Replace(items []internal.InventoryItem) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = items
	s.generation++
	return s.generation
}

func (s *Store) Clear() uint64 {
	return s.Replace(nil)
}

// Snapshot returns the current items and the generation they belong to.
// The slice is shared and must be treated as read-only.
func (s *Store) Snapshot() ([]internal.InventoryItem, uint64) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.items, s.generation
}

func (s *Store) Generation() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.generation
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}
