package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/stakeai/vectordb/pkg/ingest"
	"github.com/stakeai/vectordb/pkg/repo"
)

// handleCreateChunkInDocument handles POST .../documents/:documentID/chunks.
func (s *Server) handleCreateChunkInDocument(c *fiber.Ctx) error {
	libraryID, err := paramUUID(c, "libraryID")
	if err != nil {
		return s.respondError(c, err)
	}
	documentID, err := paramUUID(c, "documentID")
	if err != nil {
		return s.respondError(c, err)
	}

	var req CreateChunkRequest
	if err := c.BodyParser(&req); err != nil {
		return s.respondError(c, repo.InvalidInputError{Reason: "malformed request body"})
	}

	chunk, err := s.repo.CreateChunk(c.Context(), libraryID, documentID, req.Vector, req.Metadata)
	if err != nil {
		return s.respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(newChunkResponse(chunk))
}

// handleCreateChunkInLibrary handles POST /api/v1/libraries/:libraryID/chunks.
// Chunks created here land in the library's default document, auto-created
// on first use.
func (s *Server) handleCreateChunkInLibrary(c *fiber.Ctx) error {
	libraryID, err := paramUUID(c, "libraryID")
	if err != nil {
		return s.respondError(c, err)
	}

	var req CreateChunkRequest
	if err := c.BodyParser(&req); err != nil {
		return s.respondError(c, repo.InvalidInputError{Reason: "malformed request body"})
	}

	chunk, err := s.repo.CreateChunkInLibrary(c.Context(), libraryID, req.Vector, req.Metadata)
	if err != nil {
		return s.respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(newChunkResponse(chunk))
}

// handleBatchCreateChunks handles POST /api/v1/libraries/:libraryID/chunks/batch.
// Jobs are queued on the ingest pool and processed asynchronously; the
// response reports queued and dropped counts, not created chunks.
func (s *Server) handleBatchCreateChunks(c *fiber.Ctx) error {
	libraryID, err := paramUUID(c, "libraryID")
	if err != nil {
		return s.respondError(c, err)
	}

	var req BatchCreateChunksRequest
	if err := c.BodyParser(&req); err != nil {
		return s.respondError(c, repo.InvalidInputError{Reason: "malformed request body"})
	}

	// Reject against a missing library up front; per-job failures after
	// this point are logged by the pool, not reported here.
	if _, err := s.repo.GetLibrary(c.Context(), libraryID); err != nil {
		return s.respondError(c, err)
	}

	var queued, dropped int
	for _, chunk := range req.Chunks {
		job := ingest.Job{
			LibraryID: libraryID,
			Vector:    chunk.Vector,
			Metadata:  chunk.Metadata,
		}
		if chunk.DocumentID != nil {
			job.DocumentID = *chunk.DocumentID
		}

		if s.pool.Enqueue(job) {
			queued++
		} else {
			dropped++
		}
	}

	return c.Status(fiber.StatusAccepted).JSON(BatchCreateChunksResponse{
		Queued:  queued,
		Dropped: dropped,
	})
}

// handleGetChunk handles GET .../chunks/:chunkID. The chunk must resolve,
// through its document, back to the library in the path.
func (s *Server) handleGetChunk(c *fiber.Ctx) error {
	libraryID, chunkID, err := s.chunkPathIDs(c)
	if err != nil {
		return s.respondError(c, err)
	}

	chunk, err := s.repo.GetChunk(c.Context(), libraryID, chunkID)
	if err != nil {
		return s.respondError(c, err)
	}

	return c.JSON(newChunkResponse(chunk))
}

// handleListChunksInDocument handles GET .../documents/:documentID/chunks.
func (s *Server) handleListChunksInDocument(c *fiber.Ctx) error {
	libraryID, err := paramUUID(c, "libraryID")
	if err != nil {
		return s.respondError(c, err)
	}
	documentID, err := paramUUID(c, "documentID")
	if err != nil {
		return s.respondError(c, err)
	}

	chunks, err := s.repo.ListChunksByDocument(c.Context(), libraryID, documentID)
	if err != nil {
		return s.respondError(c, err)
	}

	responses := make([]ChunkResponse, 0, len(chunks))
	for _, chunk := range chunks {
		responses = append(responses, newChunkResponse(chunk))
	}

	return c.JSON(responses)
}

// handleListChunksInLibrary handles GET /api/v1/libraries/:libraryID/chunks.
func (s *Server) handleListChunksInLibrary(c *fiber.Ctx) error {
	libraryID, err := paramUUID(c, "libraryID")
	if err != nil {
		return s.respondError(c, err)
	}

	chunks, err := s.repo.ListChunksByLibrary(c.Context(), libraryID)
	if err != nil {
		return s.respondError(c, err)
	}

	responses := make([]ChunkResponse, 0, len(chunks))
	for _, chunk := range chunks {
		responses = append(responses, newChunkResponse(chunk))
	}

	return c.JSON(responses)
}

// handleUpdateChunk handles PUT .../chunks/:chunkID. The vector and metadata
// are replaced wholesale; id and document association are preserved.
func (s *Server) handleUpdateChunk(c *fiber.Ctx) error {
	libraryID, chunkID, err := s.chunkPathIDs(c)
	if err != nil {
		return s.respondError(c, err)
	}

	var req CreateChunkRequest
	if err := c.BodyParser(&req); err != nil {
		return s.respondError(c, repo.InvalidInputError{Reason: "malformed request body"})
	}

	chunk, err := s.repo.UpdateChunk(c.Context(), libraryID, chunkID, req.Vector, req.Metadata)
	if err != nil {
		return s.respondError(c, err)
	}

	return c.JSON(newChunkResponse(chunk))
}

// handleDeleteChunk handles DELETE .../chunks/:chunkID.
func (s *Server) handleDeleteChunk(c *fiber.Ctx) error {
	libraryID, chunkID, err := s.chunkPathIDs(c)
	if err != nil {
		return s.respondError(c, err)
	}

	if err := s.repo.DeleteChunkInLibrary(c.Context(), libraryID, chunkID); err != nil {
		return s.respondError(c, err)
	}

	return c.JSON(fiber.Map{"message": "chunk deleted"})
}

func (s *Server) chunkPathIDs(c *fiber.Ctx) (libraryID, chunkID uuid.UUID, err error) {
	libraryID, err = paramUUID(c, "libraryID")
	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}
	chunkID, err = paramUUID(c, "chunkID")
	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}
	return libraryID, chunkID, nil
}
