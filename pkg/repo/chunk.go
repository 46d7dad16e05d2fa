package repo

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/stakeai/vectordb/pkg/model"
	"github.com/stakeai/vectordb/pkg/store"
)

// CreateChunk creates a chunk under the given document and appends it to the
// document's chunk list. If the second write fails after the first commits,
// the chunk remains as a detectable orphan; this is the one acknowledged
// partial-failure window.
func (r *Repo) CreateChunk(ctx context.Context, libraryID, documentID uuid.UUID, vector []float32, metadata map[string]any) (*model.Chunk, error) {
	if len(vector) == 0 {
		return nil, InvalidInputError{Reason: "vector cannot be empty"}
	}

	document, err := r.GetDocument(ctx, libraryID, documentID)
	if err != nil {
		return nil, err
	}

	return r.attachChunk(ctx, document, vector, metadata)
}

// CreateChunkInLibrary creates a chunk directly under a library, placing it
// in the library's default document (auto-created on first use).
func (r *Repo) CreateChunkInLibrary(ctx context.Context, libraryID uuid.UUID, vector []float32, metadata map[string]any) (*model.Chunk, error) {
	if len(vector) == 0 {
		return nil, InvalidInputError{Reason: "vector cannot be empty"}
	}

	library, err := r.GetLibrary(ctx, libraryID)
	if err != nil {
		return nil, err
	}

	document, err := r.defaultDocument(ctx, library)
	if err != nil {
		return nil, err
	}

	return r.attachChunk(ctx, document, vector, metadata)
}

// attachChunk inserts the chunk then records its membership on the document.
func (r *Repo) attachChunk(ctx context.Context, document *model.Document, vector []float32, metadata map[string]any) (*model.Chunk, error) {
	chunk, err := r.chunks.Create(ctx, model.NewChunk(vector, metadata, document.ID))
	if err != nil {
		return nil, err
	}

	updated := document.Clone()
	updated.AddChunkID(chunk.ID)
	if _, err := r.documents.Update(ctx, updated); err != nil {
		return nil, err
	}

	r.logger.Debug("chunk created",
		zap.String("chunk_id", chunk.ID.String()),
		zap.String("document_id", document.ID.String()),
		zap.Int("dimension", chunk.Dimension()),
	)

	return chunk, nil
}

// GetChunk retrieves a chunk by id, scoped to a library: the chunk must
// resolve, through its document, back to the given library, else NotFound.
func (r *Repo) GetChunk(ctx context.Context, libraryID, chunkID uuid.UUID) (*model.Chunk, error) {
	if _, err := r.GetLibrary(ctx, libraryID); err != nil {
		return nil, err
	}

	chunk, ok := r.chunks.Get(ctx, chunkID)
	if !ok {
		return nil, store.NotFoundError{Kind: "chunk", ID: chunkID}
	}

	if err := r.checkChunkAncestry(ctx, chunk, libraryID); err != nil {
		return nil, err
	}

	return chunk, nil
}

// ListChunksByDocument returns all chunks whose parent-document reference
// equals the given document, in creation order.
func (r *Repo) ListChunksByDocument(ctx context.Context, libraryID, documentID uuid.UUID) ([]*model.Chunk, error) {
	if _, err := r.GetDocument(ctx, libraryID, documentID); err != nil {
		return nil, err
	}

	return r.chunks.ListWhere(ctx, func(c *model.Chunk) bool {
		return c.DocumentID == documentID
	}), nil
}

// ListChunksByLibrary returns all chunks transitively reachable from the
// library: the two-hop join of its documents and their chunks.
func (r *Repo) ListChunksByLibrary(ctx context.Context, libraryID uuid.UUID) ([]*model.Chunk, error) {
	if _, err := r.GetLibrary(ctx, libraryID); err != nil {
		return nil, err
	}

	documents := r.documents.ListWhere(ctx, func(d *model.Document) bool {
		return d.LibraryID == libraryID
	})
	memberDocs := make(map[uuid.UUID]struct{}, len(documents))
	for _, document := range documents {
		memberDocs[document.ID] = struct{}{}
	}

	return r.chunks.ListWhere(ctx, func(c *model.Chunk) bool {
		_, ok := memberDocs[c.DocumentID]
		return ok
	}), nil
}

// UpdateChunk replaces a chunk's vector and metadata wholesale, preserving
// its identifier and document association.
func (r *Repo) UpdateChunk(ctx context.Context, libraryID, chunkID uuid.UUID, vector []float32, metadata map[string]any) (*model.Chunk, error) {
	if len(vector) == 0 {
		return nil, InvalidInputError{Reason: "vector cannot be empty"}
	}

	chunk, err := r.GetChunk(ctx, libraryID, chunkID)
	if err != nil {
		return nil, err
	}

	if metadata == nil {
		metadata = map[string]any{}
	}

	updated := chunk.Clone()
	updated.Vector = vector
	updated.Metadata = metadata

	return r.chunks.Update(ctx, updated)
}

// DeleteChunk detaches the chunk from its parent document's list (if it has
// one) and deletes it from the chunk store. A chunk with no parent reference
// is simply deleted.
func (r *Repo) DeleteChunk(ctx context.Context, chunkID uuid.UUID) error {
	chunk, ok := r.chunks.Get(ctx, chunkID)
	if !ok {
		return store.NotFoundError{Kind: "chunk", ID: chunkID}
	}

	if chunk.DocumentID != uuid.Nil {
		if document, ok := r.documents.Get(ctx, chunk.DocumentID); ok {
			updated := document.Clone()
			updated.RemoveChunkID(chunkID)
			if _, err := r.documents.Update(ctx, updated); err != nil {
				return err
			}
		}
	}

	r.chunks.Delete(ctx, chunkID)
	return nil
}

// DeleteChunkInLibrary deletes a chunk after verifying its ancestry resolves
// to the given library.
func (r *Repo) DeleteChunkInLibrary(ctx context.Context, libraryID, chunkID uuid.UUID) error {
	if _, err := r.GetChunk(ctx, libraryID, chunkID); err != nil {
		return err
	}

	return r.DeleteChunk(ctx, chunkID)
}

// checkChunkAncestry verifies the chunk belongs, through its document, to
// the given library. An unattached chunk never resolves to any library.
func (r *Repo) checkChunkAncestry(ctx context.Context, chunk *model.Chunk, libraryID uuid.UUID) error {
	if chunk.DocumentID == uuid.Nil {
		return store.NotFoundError{Kind: "chunk", ID: chunk.ID}
	}

	document, ok := r.documents.Get(ctx, chunk.DocumentID)
	if !ok || document.LibraryID != libraryID {
		return store.NotFoundError{Kind: "chunk", ID: chunk.ID}
	}

	return nil
}
