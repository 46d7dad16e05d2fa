package api

import (
	"github.com/gofiber/fiber/v2"

	"github.com/stakeai/vectordb/pkg/repo"
	"github.com/stakeai/vectordb/pkg/search"
)

// handleSearch handles POST /api/v1/libraries/:libraryID/search.
// An omitted top_k falls back to the configured default; an explicit
// top_k <= 0 yields an empty result set.
func (s *Server) handleSearch(c *fiber.Ctx) error {
	libraryID, err := paramUUID(c, "libraryID")
	if err != nil {
		return s.respondError(c, err)
	}

	var req SearchRequest
	if err := c.BodyParser(&req); err != nil {
		return s.respondError(c, repo.InvalidInputError{Reason: "malformed request body"})
	}

	topK := s.config.DefaultTopK
	if topK == 0 {
		topK = search.DefaultTopK
	}
	if req.TopK != nil {
		topK = *req.TopK
	}

	out, err := s.engine.Search(c.Context(), libraryID, req.QueryVector, topK)
	if err != nil {
		return s.respondError(c, err)
	}

	return c.JSON(newSearchResponse(libraryID, req.QueryVector, topK, out))
}
