package model

import "github.com/google/uuid"

// Chunk is the atomic unit of similarity search: a vector embedding plus
// free-form metadata. A chunk optionally references the document it belongs
// to; the reference is a relation, not ownership.
type Chunk struct {
	// ID uniquely identifies the chunk. Assigned on creation, immutable after.
	ID uuid.UUID `json:"id"`

	// Vector is the embedding. Never empty for a stored chunk.
	Vector []float32 `json:"vector"`

	// Metadata holds arbitrary key/value pairs attached to the chunk.
	Metadata map[string]any `json:"metadata"`

	// DocumentID references the parent document, uuid.Nil when unattached.
	DocumentID uuid.UUID `json:"document_id,omitempty"`
}

// NewChunk creates a chunk with a fresh identifier.
func NewChunk(vector []float32, metadata map[string]any, documentID uuid.UUID) *Chunk {
	if metadata == nil {
		metadata = map[string]any{}
	}
	return &Chunk{
		ID:         uuid.New(),
		Vector:     vector,
		Metadata:   metadata,
		DocumentID: documentID,
	}
}

// EntityID returns the chunk identifier.
func (c *Chunk) EntityID() uuid.UUID {
	return c.ID
}

// Dimension is the length of the vector. Always derived, never stored.
func (c *Chunk) Dimension() int {
	return len(c.Vector)
}

// Clone returns a copy of the chunk with its own vector and metadata,
// safe to mutate without affecting the stored value.
func (c *Chunk) Clone() *Chunk {
	dup := *c
	dup.Vector = make([]float32, len(c.Vector))
	copy(dup.Vector, c.Vector)
	dup.Metadata = cloneMetadata(c.Metadata)
	return &dup
}

func cloneMetadata(m map[string]any) map[string]any {
	dup := make(map[string]any, len(m))
	for k, v := range m {
		dup[k] = v
	}
	return dup
}
