package api

import (
	"github.com/google/uuid"

	"github.com/stakeai/vectordb/pkg/model"
	"github.com/stakeai/vectordb/pkg/search"
)

// CreateLibraryRequest is the body for POST /libraries.
type CreateLibraryRequest struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Metadata    map[string]any `json:"metadata"`
}

// UpdateLibraryRequest is the body for PUT /libraries/:libraryID.
// Omitted fields are preserved; a present metadata object replaces the
// stored metadata wholesale.
type UpdateLibraryRequest struct {
	Name        *string        `json:"name"`
	Description *string        `json:"description"`
	Metadata    map[string]any `json:"metadata"`
}

// LibraryResponse is the wire form of a library. Counts are computed at
// response time, never stored.
type LibraryResponse struct {
	ID            uuid.UUID      `json:"id"`
	Name          string         `json:"name"`
	Description   string         `json:"description,omitempty"`
	Metadata      map[string]any `json:"metadata"`
	DocumentIDs   []uuid.UUID    `json:"document_ids"`
	DocumentCount int            `json:"document_count"`
}

func newLibraryResponse(l *model.Library) LibraryResponse {
	return LibraryResponse{
		ID:            l.ID,
		Name:          l.Name,
		Description:   l.Description,
		Metadata:      l.Metadata,
		DocumentIDs:   l.DocumentIDs,
		DocumentCount: l.DocumentCount(),
	}
}

// CreateDocumentRequest is the body for POST /libraries/:libraryID/documents.
type CreateDocumentRequest struct {
	Title    string         `json:"title"`
	Content  string         `json:"content"`
	Metadata map[string]any `json:"metadata"`
}

// UpdateDocumentRequest is the body for PUT .../documents/:documentID.
type UpdateDocumentRequest struct {
	Title    *string        `json:"title"`
	Content  *string        `json:"content"`
	Metadata map[string]any `json:"metadata"`
}

// DocumentResponse is the wire form of a document.
type DocumentResponse struct {
	ID         uuid.UUID      `json:"id"`
	Title      string         `json:"title"`
	Content    string         `json:"content,omitempty"`
	Metadata   map[string]any `json:"metadata"`
	ChunkIDs   []uuid.UUID    `json:"chunk_ids"`
	ChunkCount int            `json:"chunk_count"`
	LibraryID  uuid.UUID      `json:"library_id,omitempty"`
}

func newDocumentResponse(d *model.Document) DocumentResponse {
	return DocumentResponse{
		ID:         d.ID,
		Title:      d.Title,
		Content:    d.Content,
		Metadata:   d.Metadata,
		ChunkIDs:   d.ChunkIDs,
		ChunkCount: d.ChunkCount(),
		LibraryID:  d.LibraryID,
	}
}

// CreateChunkRequest is the body for chunk create and update endpoints.
type CreateChunkRequest struct {
	Vector   []float32      `json:"vector"`
	Metadata map[string]any `json:"metadata"`
}

// ChunkResponse is the wire form of a chunk. Dimension is derived from the
// vector at response time.
type ChunkResponse struct {
	ID         uuid.UUID      `json:"id"`
	Vector     []float32      `json:"vector"`
	Metadata   map[string]any `json:"metadata"`
	DocumentID uuid.UUID      `json:"document_id,omitempty"`
	Dimension  int            `json:"dimension"`
}

func newChunkResponse(c *model.Chunk) ChunkResponse {
	return ChunkResponse{
		ID:         c.ID,
		Vector:     c.Vector,
		Metadata:   c.Metadata,
		DocumentID: c.DocumentID,
		Dimension:  c.Dimension(),
	}
}

// BatchChunk is one entry of a batch ingestion request. A nil DocumentID
// routes the chunk through the library's default document.
type BatchChunk struct {
	Vector     []float32      `json:"vector"`
	Metadata   map[string]any `json:"metadata"`
	DocumentID *uuid.UUID     `json:"document_id"`
}

// BatchCreateChunksRequest is the body for POST .../chunks/batch.
type BatchCreateChunksRequest struct {
	Chunks []BatchChunk `json:"chunks"`
}

// BatchCreateChunksResponse reports how many jobs were queued and how many
// were dropped because the ingest queue was full.
type BatchCreateChunksResponse struct {
	Queued  int `json:"queued"`
	Dropped int `json:"dropped"`
}

// SearchRequest is the body for POST /libraries/:libraryID/search.
// TopK is a pointer so an omitted field can fall back to the default while
// an explicit zero still means "no results".
type SearchRequest struct {
	QueryVector []float32 `json:"query_vector"`
	TopK        *int      `json:"top_k"`
}

// SearchResult is a single ranked hit.
type SearchResult struct {
	ChunkID         uuid.UUID      `json:"chunk_id"`
	Vector          []float32      `json:"vector"`
	Metadata        map[string]any `json:"metadata"`
	DocumentID      uuid.UUID      `json:"document_id"`
	SimilarityScore float32        `json:"similarity_score"`
}

// SearchResponse echoes the query and carries the ranked results plus the
// number of candidate chunks considered.
type SearchResponse struct {
	LibraryID           uuid.UUID      `json:"library_id"`
	QueryVector         []float32      `json:"query_vector"`
	TopK                int            `json:"top_k"`
	Results             []SearchResult `json:"results"`
	TotalChunksSearched int            `json:"total_chunks_searched"`
}

func newSearchResponse(libraryID uuid.UUID, query []float32, topK int, out *search.Output) SearchResponse {
	results := make([]SearchResult, 0, len(out.Results))
	for _, r := range out.Results {
		results = append(results, SearchResult{
			ChunkID:         r.Chunk.ID,
			Vector:          r.Chunk.Vector,
			Metadata:        r.Chunk.Metadata,
			DocumentID:      r.Chunk.DocumentID,
			SimilarityScore: r.Score,
		})
	}

	return SearchResponse{
		LibraryID:           libraryID,
		QueryVector:         query,
		TopK:                topK,
		Results:             results,
		TotalChunksSearched: out.TotalSearched,
	}
}
