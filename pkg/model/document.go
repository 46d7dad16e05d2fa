package model

import "github.com/google/uuid"

// Document groups related chunks, typically a single source document that was
// chunked for embedding. It lists its chunk identifiers in creation order and
// weakly references the library it belongs to.
type Document struct {
	ID uuid.UUID `json:"id"`

	// Title is required and non-empty.
	Title string `json:"title"`

	// Content optionally holds the original source text.
	Content string `json:"content,omitempty"`

	Metadata map[string]any `json:"metadata"`

	// ChunkIDs lists member chunks in insertion order, no duplicates.
	ChunkIDs []uuid.UUID `json:"chunk_ids"`

	// LibraryID references the parent library, uuid.Nil when unattached.
	LibraryID uuid.UUID `json:"library_id,omitempty"`
}

// NewDocument creates a document with a fresh identifier.
func NewDocument(title, content string, metadata map[string]any, libraryID uuid.UUID) *Document {
	if metadata == nil {
		metadata = map[string]any{}
	}
	return &Document{
		ID:        uuid.New(),
		Title:     title,
		Content:   content,
		Metadata:  metadata,
		ChunkIDs:  []uuid.UUID{},
		LibraryID: libraryID,
	}
}

// EntityID returns the document identifier.
func (d *Document) EntityID() uuid.UUID {
	return d.ID
}

// ChunkCount is the number of member chunks. Always derived, never stored.
func (d *Document) ChunkCount() int {
	return len(d.ChunkIDs)
}

// AddChunkID appends a chunk id to the membership list if not already present.
func (d *Document) AddChunkID(chunkID uuid.UUID) {
	if !d.HasChunk(chunkID) {
		d.ChunkIDs = append(d.ChunkIDs, chunkID)
	}
}

// RemoveChunkID removes a chunk id from the membership list.
// Returns false if the id was not a member.
func (d *Document) RemoveChunkID(chunkID uuid.UUID) bool {
	for i, id := range d.ChunkIDs {
		if id == chunkID {
			d.ChunkIDs = append(d.ChunkIDs[:i], d.ChunkIDs[i+1:]...)
			return true
		}
	}
	return false
}

// HasChunk reports whether the document lists the given chunk id.
func (d *Document) HasChunk(chunkID uuid.UUID) bool {
	for _, id := range d.ChunkIDs {
		if id == chunkID {
			return true
		}
	}
	return false
}

// Clone returns a copy of the document with its own chunk list and metadata.
func (d *Document) Clone() *Document {
	dup := *d
	dup.ChunkIDs = make([]uuid.UUID, len(d.ChunkIDs))
	copy(dup.ChunkIDs, d.ChunkIDs)
	dup.Metadata = cloneMetadata(d.Metadata)
	return &dup
}
