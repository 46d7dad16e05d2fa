// Package store provides a mutex-guarded in-memory entity store, generic
// over the entity kind. Each store instance is an independently lockable
// resource: all operations on one store are linearizable, and cross-store
// consistency is the caller's responsibility.
package store

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"
)

// Entity is anything addressable by a UUID.
type Entity interface {
	EntityID() uuid.UUID
}

// Store is a thread-safe in-memory map of entities keyed by identifier.
// Insertion order is tracked so List and ListWhere return deterministic,
// first-created-first results regardless of map iteration order.
type Store[T Entity] struct {
	kind string

	mu    sync.RWMutex
	items map[uuid.UUID]T
	order map[uuid.UUID]uint64
	seq   uint64
}

// New creates an empty store. The kind names the entity in error messages.
func New[T Entity](kind string) *Store[T] {
	return &Store[T]{
		kind:  kind,
		items: make(map[uuid.UUID]T),
		order: make(map[uuid.UUID]uint64),
	}
}

// Create inserts the entity keyed by its identifier.
// Returns ConflictError if the identifier already exists.
func (s *Store[T]) Create(_ context.Context, entity T) (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := entity.EntityID()
	if _, ok := s.items[id]; ok {
		var zero T
		return zero, ConflictError{Kind: s.kind, ID: id}
	}

	s.seq++
	s.items[id] = entity
	s.order[id] = s.seq
	return entity, nil
}

// Get retrieves an entity by id. Absence is an expected outcome, not an error.
func (s *Store[T]) Get(_ context.Context, id uuid.UUID) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entity, ok := s.items[id]
	return entity, ok
}

// List returns a snapshot of all entities in insertion order.
// Mutations after the call do not affect the returned slice.
func (s *Store[T]) List(ctx context.Context) []T {
	return s.ListWhere(ctx, func(T) bool { return true })
}

// ListWhere returns a snapshot of the entities matching the predicate,
// in insertion order.
func (s *Store[T]) ListWhere(_ context.Context, pred func(T) bool) []T {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matched := make([]T, 0, len(s.items))
	for _, entity := range s.items {
		if pred(entity) {
			matched = append(matched, entity)
		}
	}

	sort.Slice(matched, func(i, j int) bool {
		return s.order[matched[i].EntityID()] < s.order[matched[j].EntityID()]
	})

	return matched
}

// Update replaces the stored entity keyed by its identifier.
// Returns NotFoundError if the identifier is absent. The entity keeps its
// original insertion position.
func (s *Store[T]) Update(_ context.Context, entity T) (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := entity.EntityID()
	if _, ok := s.items[id]; !ok {
		var zero T
		return zero, NotFoundError{Kind: s.kind, ID: id}
	}

	s.items[id] = entity
	return entity, nil
}

// Delete removes the entity if present and reports whether removal occurred.
func (s *Store[T]) Delete(_ context.Context, id uuid.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[id]; !ok {
		return false
	}

	delete(s.items, id)
	delete(s.order, id)
	return true
}

// Len returns the number of stored entities.
func (s *Store[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}
