package store

import "github.com/google/uuid"

// NotFoundError is returned when an entity doesn't exist in the store.
type NotFoundError struct {
	Kind string
	ID   uuid.UUID
}

func (e NotFoundError) Error() string {
	if e.Kind == "" {
		return "entity not found: " + e.ID.String()
	}
	return e.Kind + " not found: " + e.ID.String()
}

// ConflictError is returned when a create collides with an existing
// identifier.
type ConflictError struct {
	Kind string
	ID   uuid.UUID
}

func (e ConflictError) Error() string {
	if e.Kind == "" {
		return "entity already exists: " + e.ID.String()
	}
	return e.Kind + " already exists: " + e.ID.String()
}
