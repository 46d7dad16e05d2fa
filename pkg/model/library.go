// Package model defines the domain entities of the vector store: libraries
// containing documents containing chunks. Entities reference each other by
// identifier only; referential integrity across them is maintained by the
// repository layer, not by the types themselves.
package model

import "github.com/google/uuid"

// Library is the top-level grouping of documents and the scope boundary
// for similarity search.
type Library struct {
	ID uuid.UUID `json:"id"`

	// Name is required and non-empty.
	Name string `json:"name"`

	Description string `json:"description,omitempty"`

	Metadata map[string]any `json:"metadata"`

	// DocumentIDs lists member documents in insertion order, no duplicates.
	DocumentIDs []uuid.UUID `json:"document_ids"`
}

// NewLibrary creates a library with a fresh identifier.
func NewLibrary(name, description string, metadata map[string]any) *Library {
	if metadata == nil {
		metadata = map[string]any{}
	}
	return &Library{
		ID:          uuid.New(),
		Name:        name,
		Description: description,
		Metadata:    metadata,
		DocumentIDs: []uuid.UUID{},
	}
}

// EntityID returns the library identifier.
func (l *Library) EntityID() uuid.UUID {
	return l.ID
}

// DocumentCount is the number of member documents. Always derived, never stored.
func (l *Library) DocumentCount() int {
	return len(l.DocumentIDs)
}

// AddDocumentID appends a document id to the membership list if not already present.
func (l *Library) AddDocumentID(documentID uuid.UUID) {
	if !l.HasDocument(documentID) {
		l.DocumentIDs = append(l.DocumentIDs, documentID)
	}
}

// RemoveDocumentID removes a document id from the membership list.
// Returns false if the id was not a member.
func (l *Library) RemoveDocumentID(documentID uuid.UUID) bool {
	for i, id := range l.DocumentIDs {
		if id == documentID {
			l.DocumentIDs = append(l.DocumentIDs[:i], l.DocumentIDs[i+1:]...)
			return true
		}
	}
	return false
}

// HasDocument reports whether the library lists the given document id.
func (l *Library) HasDocument(documentID uuid.UUID) bool {
	for _, id := range l.DocumentIDs {
		if id == documentID {
			return true
		}
	}
	return false
}

// Clone returns a copy of the library with its own document list and metadata.
func (l *Library) Clone() *Library {
	dup := *l
	dup.DocumentIDs = make([]uuid.UUID, len(l.DocumentIDs))
	copy(dup.DocumentIDs, l.DocumentIDs)
	dup.Metadata = cloneMetadata(l.Metadata)
	return &dup
}
