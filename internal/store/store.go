// Package store owns the client's catalog snapshot: the last successful
// fetch from the remote store, replaced whole on every sync.
package store

import (
	"sync"

	"gudang/internal/inventory"
)

// Generation identifies one list fetch. Only the latest issued generation
// may change the store.
type Generation uint64

// Store holds the catalog snapshot and the derived state read by the UI.
// Fetches resolve on command goroutines, so all access is locked.
type Store struct {
	mu       sync.RWMutex
	items    []inventory.Item
	latest   Generation
	loaded   bool  // true once any fetch has succeeded
	inFlight bool  // true between Begin and the matching Apply/Fail
	err      error // failure of the latest fetch, nil after a success
	onChange func()
}

// New creates an empty store.
func New() *Store {
	return &Store{}
}

// OnChange sets the callback fired after every accepted Apply or Fail.
func (s *Store) OnChange(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onChange = fn
}

// Begin issues a new generation for a list fetch. Results carrying an
// older generation are discarded by Apply and Fail.
func (s *Store) Begin() Generation {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.latest++
	s.inFlight = true
	return s.latest
}

// Apply replaces the catalog with items if gen is the latest generation.
// Returns false when the result is stale and was dropped.
func (s *Store) Apply(gen Generation, items []inventory.Item) bool {
	s.mu.Lock()
	if gen != s.latest {
		s.mu.Unlock()
		return false
	}
	s.items = append([]inventory.Item(nil), items...)
	s.loaded = true
	s.inFlight = false
	s.err = nil
	fn := s.onChange
	s.mu.Unlock()

	if fn != nil {
		fn()
	}
	return true
}

// Fail records a failed fetch for gen. The catalog keeps its last good
// snapshot. Returns false when gen is stale.
func (s *Store) Fail(gen Generation, err error) bool {
	s.mu.Lock()
	if gen != s.latest {
		s.mu.Unlock()
		return false
	}
	s.err = err
	s.inFlight = false
	fn := s.onChange
	s.mu.Unlock()

	if fn != nil {
		fn()
	}
	return true
}

// Snapshot returns a copy of the current catalog.
func (s *Store) Snapshot() []inventory.Item {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]inventory.Item(nil), s.items...)
}

// Find looks up an item by ID in the current snapshot.
func (s *Store) Find(id string) (inventory.Item, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return inventory.Find(s.items, id)
}

// Stats returns the aggregate counts of the current snapshot.
func (s *Store) Stats() inventory.Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return inventory.ComputeStats(s.items)
}

// Categories returns the category facets for one Jenis.
func (s *Store) Categories(jenis inventory.Jenis) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return inventory.Categories(s.items, jenis)
}

// Err returns the error of the latest fetch, or nil.
func (s *Store) Err() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.err
}

// Loaded reports whether any fetch has succeeded yet.
func (s *Store) Loaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded
}

// Loading reports whether the latest fetch is still outstanding.
func (s *Store) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.inFlight
}
