// Package repo implements the concurrent repository coordinating the three
// entity stores (libraries, documents, chunks). It maintains the
// bidirectional membership invariants across stores: creating a chunk under
// a document updates the document's chunk list, deleting a document cascades
// to its chunks, deleting a library cascades to its documents and their
// chunks.
//
// Cross-store sequences are not transactional: each store-level call commits
// independently, so a concurrent reader may observe a transient inconsistency
// between two steps of a coordinator method (e.g. a chunk inserted before its
// document's chunk list is updated). This is a deliberate tradeoff; callers
// needing stronger guarantees must reconcile on their side. The coordinator
// never holds two store locks at once.
package repo

import (
	"go.uber.org/zap"

	"github.com/stakeai/vectordb/pkg/model"
	"github.com/stakeai/vectordb/pkg/store"
)

// Repo owns the three entity stores. Construct one per process (or per test)
// and share it by reference; there is no ambient singleton.
type Repo struct {
	libraries *store.Store[*model.Library]
	documents *store.Store[*model.Document]
	chunks    *store.Store[*model.Chunk]
	logger    *zap.Logger
}

// New creates a repository with empty stores.
func New(logger *zap.Logger) *Repo {
	return &Repo{
		libraries: store.New[*model.Library]("library"),
		documents: store.New[*model.Document]("document"),
		chunks:    store.New[*model.Chunk]("chunk"),
		logger:    logger,
	}
}

// Counts returns the number of stored libraries, documents and chunks.
func (r *Repo) Counts() (libraries, documents, chunks int) {
	return r.libraries.Len(), r.documents.Len(), r.chunks.Len()
}
