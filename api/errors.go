package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/stakeai/vectordb/pkg/repo"
	"github.com/stakeai/vectordb/pkg/store"
	"github.com/stakeai/vectordb/pkg/vecmath"
)

// ErrorResponse is the JSON body returned for every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

// respondError translates repository errors into status codes: NotFound to
// 404, Conflict to 409, InvalidInput and dimension mismatches to 422,
// anything else to 500.
func (s *Server) respondError(c *fiber.Ctx, err error) error {
	var notFound store.NotFoundError
	var conflict store.ConflictError
	var invalid repo.InvalidInputError

	switch {
	case errors.As(err, &notFound):
		return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{Error: err.Error()})
	case errors.As(err, &conflict):
		return c.Status(fiber.StatusConflict).JSON(ErrorResponse{Error: err.Error()})
	case errors.As(err, &invalid), errors.Is(err, vecmath.ErrDimensionMismatch):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(ErrorResponse{Error: err.Error()})
	default:
		s.logger.Error("request failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{Error: err.Error()})
	}
}

// paramUUID parses a UUID path parameter. Malformed identifiers are invalid
// input, not route misses.
func paramUUID(c *fiber.Ctx, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params(name))
	if err != nil {
		return uuid.Nil, repo.InvalidInputError{Reason: "malformed " + name}
	}
	return id, nil
}
