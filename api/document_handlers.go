package api

import (
	"github.com/gofiber/fiber/v2"

	"github.com/stakeai/vectordb/pkg/repo"
)

// handleCreateDocument handles POST /api/v1/libraries/:libraryID/documents.
func (s *Server) handleCreateDocument(c *fiber.Ctx) error {
	libraryID, err := paramUUID(c, "libraryID")
	if err != nil {
		return s.respondError(c, err)
	}

	var req CreateDocumentRequest
	if err := c.BodyParser(&req); err != nil {
		return s.respondError(c, repo.InvalidInputError{Reason: "malformed request body"})
	}

	document, err := s.repo.CreateDocument(c.Context(), libraryID, req.Title, req.Content, req.Metadata)
	if err != nil {
		return s.respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(newDocumentResponse(document))
}

// handleGetDocument handles GET .../documents/:documentID.
func (s *Server) handleGetDocument(c *fiber.Ctx) error {
	libraryID, err := paramUUID(c, "libraryID")
	if err != nil {
		return s.respondError(c, err)
	}
	documentID, err := paramUUID(c, "documentID")
	if err != nil {
		return s.respondError(c, err)
	}

	document, err := s.repo.GetDocument(c.Context(), libraryID, documentID)
	if err != nil {
		return s.respondError(c, err)
	}

	return c.JSON(newDocumentResponse(document))
}

// handleListDocuments handles GET /api/v1/libraries/:libraryID/documents.
func (s *Server) handleListDocuments(c *fiber.Ctx) error {
	libraryID, err := paramUUID(c, "libraryID")
	if err != nil {
		return s.respondError(c, err)
	}

	documents, err := s.repo.ListDocuments(c.Context(), libraryID)
	if err != nil {
		return s.respondError(c, err)
	}

	responses := make([]DocumentResponse, 0, len(documents))
	for _, document := range documents {
		responses = append(responses, newDocumentResponse(document))
	}

	return c.JSON(responses)
}

// handleUpdateDocument handles PUT .../documents/:documentID.
func (s *Server) handleUpdateDocument(c *fiber.Ctx) error {
	libraryID, err := paramUUID(c, "libraryID")
	if err != nil {
		return s.respondError(c, err)
	}
	documentID, err := paramUUID(c, "documentID")
	if err != nil {
		return s.respondError(c, err)
	}

	var req UpdateDocumentRequest
	if err := c.BodyParser(&req); err != nil {
		return s.respondError(c, repo.InvalidInputError{Reason: "malformed request body"})
	}

	document, err := s.repo.UpdateDocument(c.Context(), libraryID, documentID, repo.DocumentPatch{
		Title:    req.Title,
		Content:  req.Content,
		Metadata: req.Metadata,
	})
	if err != nil {
		return s.respondError(c, err)
	}

	return c.JSON(newDocumentResponse(document))
}

// handleDeleteDocument handles DELETE .../documents/:documentID.
// Deletion cascades to the document's chunks.
func (s *Server) handleDeleteDocument(c *fiber.Ctx) error {
	libraryID, err := paramUUID(c, "libraryID")
	if err != nil {
		return s.respondError(c, err)
	}
	documentID, err := paramUUID(c, "documentID")
	if err != nil {
		return s.respondError(c, err)
	}

	if err := s.repo.DeleteDocument(c.Context(), libraryID, documentID); err != nil {
		return s.respondError(c, err)
	}

	return c.JSON(fiber.Map{"message": "document deleted"})
}
