package api

import (
	"github.com/gofiber/fiber/v2"

	"github.com/stakeai/vectordb/pkg/repo"
)

// handleCreateLibrary handles POST /api/v1/libraries.
func (s *Server) handleCreateLibrary(c *fiber.Ctx) error {
	var req CreateLibraryRequest
	if err := c.BodyParser(&req); err != nil {
		return s.respondError(c, repo.InvalidInputError{Reason: "malformed request body"})
	}

	library, err := s.repo.CreateLibrary(c.Context(), req.Name, req.Description, req.Metadata)
	if err != nil {
		return s.respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(newLibraryResponse(library))
}

// handleGetLibrary handles GET /api/v1/libraries/:libraryID.
func (s *Server) handleGetLibrary(c *fiber.Ctx) error {
	libraryID, err := paramUUID(c, "libraryID")
	if err != nil {
		return s.respondError(c, err)
	}

	library, err := s.repo.GetLibrary(c.Context(), libraryID)
	if err != nil {
		return s.respondError(c, err)
	}

	return c.JSON(newLibraryResponse(library))
}

// handleListLibraries handles GET /api/v1/libraries.
func (s *Server) handleListLibraries(c *fiber.Ctx) error {
	libraries := s.repo.ListLibraries(c.Context())

	responses := make([]LibraryResponse, 0, len(libraries))
	for _, library := range libraries {
		responses = append(responses, newLibraryResponse(library))
	}

	return c.JSON(responses)
}

// handleUpdateLibrary handles PUT /api/v1/libraries/:libraryID.
func (s *Server) handleUpdateLibrary(c *fiber.Ctx) error {
	libraryID, err := paramUUID(c, "libraryID")
	if err != nil {
		return s.respondError(c, err)
	}

	var req UpdateLibraryRequest
	if err := c.BodyParser(&req); err != nil {
		return s.respondError(c, repo.InvalidInputError{Reason: "malformed request body"})
	}

	library, err := s.repo.UpdateLibrary(c.Context(), libraryID, repo.LibraryPatch{
		Name:        req.Name,
		Description: req.Description,
		Metadata:    req.Metadata,
	})
	if err != nil {
		return s.respondError(c, err)
	}

	return c.JSON(newLibraryResponse(library))
}

// handleDeleteLibrary handles DELETE /api/v1/libraries/:libraryID.
// Deletion cascades to the library's documents and their chunks.
func (s *Server) handleDeleteLibrary(c *fiber.Ctx) error {
	libraryID, err := paramUUID(c, "libraryID")
	if err != nil {
		return s.respondError(c, err)
	}

	if err := s.repo.DeleteLibrary(c.Context(), libraryID); err != nil {
		return s.respondError(c, err)
	}

	return c.JSON(fiber.Map{"message": "library deleted"})
}
