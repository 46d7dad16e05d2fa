package repo

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/stakeai/vectordb/pkg/model"
	"github.com/stakeai/vectordb/pkg/store"
)

// DefaultDocumentTitle marks the sentinel document that holds chunks added
// directly to a library. Lookup is by title prefix, first match wins; the
// marker is a convenience, not a uniqueness guarantee.
const DefaultDocumentTitle = "Default Document"

const defaultDocumentContent = "Auto-created document for direct chunk uploads"

// DocumentPatch carries partial-update fields for a document. Nil pointer
// fields are preserved; a non-nil Metadata replaces the metadata wholesale.
type DocumentPatch struct {
	Title    *string
	Content  *string
	Metadata map[string]any
}

// CreateDocument creates a document under the given library and records its
// membership in the library's document list. The two store writes commit
// independently; a reader between them sees the document without the
// membership entry.
func (r *Repo) CreateDocument(ctx context.Context, libraryID uuid.UUID, title, content string, metadata map[string]any) (*model.Document, error) {
	if title == "" {
		return nil, InvalidInputError{Reason: "document title cannot be empty"}
	}

	library, err := r.GetLibrary(ctx, libraryID)
	if err != nil {
		return nil, err
	}

	document, err := r.documents.Create(ctx, model.NewDocument(title, content, metadata, libraryID))
	if err != nil {
		return nil, err
	}

	updated := library.Clone()
	updated.AddDocumentID(document.ID)
	if _, err := r.libraries.Update(ctx, updated); err != nil {
		return nil, err
	}

	r.logger.Debug("document created",
		zap.String("document_id", document.ID.String()),
		zap.String("library_id", libraryID.String()),
	)

	return document, nil
}

// GetDocument retrieves a document by id, scoped to a library: a document
// that exists but references a different library is NotFound here.
func (r *Repo) GetDocument(ctx context.Context, libraryID, documentID uuid.UUID) (*model.Document, error) {
	if _, err := r.GetLibrary(ctx, libraryID); err != nil {
		return nil, err
	}

	document, ok := r.documents.Get(ctx, documentID)
	if !ok || document.LibraryID != libraryID {
		return nil, store.NotFoundError{Kind: "document", ID: documentID}
	}

	return document, nil
}

// ListDocuments returns all documents whose parent-library reference equals
// the given library, in creation order.
func (r *Repo) ListDocuments(ctx context.Context, libraryID uuid.UUID) ([]*model.Document, error) {
	if _, err := r.GetLibrary(ctx, libraryID); err != nil {
		return nil, err
	}

	return r.documents.ListWhere(ctx, func(d *model.Document) bool {
		return d.LibraryID == libraryID
	}), nil
}

// UpdateDocument applies a partial patch to a document within a library.
func (r *Repo) UpdateDocument(ctx context.Context, libraryID, documentID uuid.UUID, patch DocumentPatch) (*model.Document, error) {
	if patch.Title != nil && *patch.Title == "" {
		return nil, InvalidInputError{Reason: "document title cannot be empty"}
	}

	document, err := r.GetDocument(ctx, libraryID, documentID)
	if err != nil {
		return nil, err
	}

	updated := document.Clone()
	if patch.Title != nil {
		updated.Title = *patch.Title
	}
	if patch.Content != nil {
		updated.Content = *patch.Content
	}
	if patch.Metadata != nil {
		updated.Metadata = patch.Metadata
	}

	return r.documents.Update(ctx, updated)
}

// DeleteDocument deletes a document within a library: every chunk whose
// parent-document reference equals the document is deleted (membership list
// or not, to tolerate pre-existing inconsistency), the document id is
// removed from the library's list, then the document itself is deleted.
func (r *Repo) DeleteDocument(ctx context.Context, libraryID, documentID uuid.UUID) error {
	library, err := r.GetLibrary(ctx, libraryID)
	if err != nil {
		return err
	}

	if _, err := r.GetDocument(ctx, libraryID, documentID); err != nil {
		return err
	}

	r.cascadeDeleteDocument(ctx, documentID)

	updated := library.Clone()
	updated.RemoveDocumentID(documentID)
	if _, err := r.libraries.Update(ctx, updated); err != nil {
		return err
	}

	return nil
}

// cascadeDeleteDocument deletes the document's chunks and the document
// itself, without touching the parent library's membership list. Used both
// by DeleteDocument and by the library-level cascade, where the library is
// about to disappear anyway.
func (r *Repo) cascadeDeleteDocument(ctx context.Context, documentID uuid.UUID) {
	chunks := r.chunks.ListWhere(ctx, func(c *model.Chunk) bool {
		return c.DocumentID == documentID
	})
	for _, chunk := range chunks {
		r.chunks.Delete(ctx, chunk.ID)
	}

	r.documents.Delete(ctx, documentID)

	r.logger.Debug("document deleted",
		zap.String("document_id", documentID.String()),
		zap.Int("chunks_cascaded", len(chunks)),
	)
}

// defaultDocument returns the library's sentinel document for direct chunk
// uploads, creating it on first use. Best effort: the lookup matches the
// first document whose title starts with DefaultDocumentTitle.
func (r *Repo) defaultDocument(ctx context.Context, library *model.Library) (*model.Document, error) {
	documents := r.documents.ListWhere(ctx, func(d *model.Document) bool {
		return d.LibraryID == library.ID
	})
	for _, document := range documents {
		if strings.HasPrefix(document.Title, DefaultDocumentTitle) {
			return document, nil
		}
	}

	document, err := r.documents.Create(ctx, model.NewDocument(
		DefaultDocumentTitle,
		defaultDocumentContent,
		map[string]any{"auto_created": true},
		library.ID,
	))
	if err != nil {
		return nil, err
	}

	updated := library.Clone()
	updated.AddDocumentID(document.ID)
	if _, err := r.libraries.Update(ctx, updated); err != nil {
		return nil, err
	}

	return document, nil
}
