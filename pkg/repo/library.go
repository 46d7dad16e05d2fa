package repo

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/stakeai/vectordb/pkg/model"
	"github.com/stakeai/vectordb/pkg/store"
)

// LibraryPatch carries partial-update fields for a library. Nil pointer
// fields are preserved; a non-nil Metadata replaces the metadata wholesale,
// it is not merged key by key.
type LibraryPatch struct {
	Name        *string
	Description *string
	Metadata    map[string]any
}

// CreateLibrary creates a new empty library.
func (r *Repo) CreateLibrary(ctx context.Context, name, description string, metadata map[string]any) (*model.Library, error) {
	if name == "" {
		return nil, InvalidInputError{Reason: "library name cannot be empty"}
	}

	library, err := r.libraries.Create(ctx, model.NewLibrary(name, description, metadata))
	if err != nil {
		return nil, err
	}

	r.logger.Debug("library created",
		zap.String("library_id", library.ID.String()),
		zap.String("name", library.Name),
	)

	return library, nil
}

// GetLibrary retrieves a library by id.
func (r *Repo) GetLibrary(ctx context.Context, libraryID uuid.UUID) (*model.Library, error) {
	library, ok := r.libraries.Get(ctx, libraryID)
	if !ok {
		return nil, store.NotFoundError{Kind: "library", ID: libraryID}
	}
	return library, nil
}

// ListLibraries returns all libraries in creation order.
func (r *Repo) ListLibraries(ctx context.Context) []*model.Library {
	return r.libraries.List(ctx)
}

// UpdateLibrary applies a partial patch to a library. Omitted fields keep
// their current values.
func (r *Repo) UpdateLibrary(ctx context.Context, libraryID uuid.UUID, patch LibraryPatch) (*model.Library, error) {
	if patch.Name != nil && *patch.Name == "" {
		return nil, InvalidInputError{Reason: "library name cannot be empty"}
	}

	library, err := r.GetLibrary(ctx, libraryID)
	if err != nil {
		return nil, err
	}

	updated := library.Clone()
	if patch.Name != nil {
		updated.Name = *patch.Name
	}
	if patch.Description != nil {
		updated.Description = *patch.Description
	}
	if patch.Metadata != nil {
		updated.Metadata = patch.Metadata
	}

	return r.libraries.Update(ctx, updated)
}

// DeleteLibrary deletes a library and cascades to every document whose
// parent-library reference equals this library, and to their chunks.
func (r *Repo) DeleteLibrary(ctx context.Context, libraryID uuid.UUID) error {
	if _, err := r.GetLibrary(ctx, libraryID); err != nil {
		return err
	}

	documents := r.documents.ListWhere(ctx, func(d *model.Document) bool {
		return d.LibraryID == libraryID
	})
	for _, document := range documents {
		r.cascadeDeleteDocument(ctx, document.ID)
	}

	r.libraries.Delete(ctx, libraryID)

	r.logger.Debug("library deleted",
		zap.String("library_id", libraryID.String()),
		zap.Int("documents_cascaded", len(documents)),
	)

	return nil
}
