package listing

import (
	"fmt"
	"sync"

	"listing-engine/internal/listingerrors"
)

// Store indexes all instantiated listings by id. Only the factory adds
// entries; listings are never removed, terminal ones stay resolvable.
type Store struct {
	mu       sync.RWMutex
	listings map[string]*Listing
	order    []string
}

func NewStore() *Store {
	return &Store{
		listings: make(map[string]*Listing),
	}
}

// Add registers a new listing. The factory guarantees id uniqueness.
func (s *Store) Add(l *Listing) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.listings[l.ID()] = l
	s.order = append(s.order, l.ID())
}

// Get resolves a listing by id.
func (s *Store) Get(id string) (*Listing, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	l, ok := s.listings[id]
	if !ok {
		return nil, fmt.Errorf("listing %s: %w", id, listingerrors.ErrNotFound)
	}
	return l, nil
}

// IDs returns all listing ids in creation order.
func (s *Store) IDs() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return append([]string(nil), s.order...)
}
