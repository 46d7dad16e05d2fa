package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

const version = "0.1.0"

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status        string         `json:"status"`
	Timestamp     time.Time      `json:"timestamp"`
	Version       string         `json:"version"`
	UptimeSeconds float64        `json:"uptime_seconds"`
	Entities      map[string]int `json:"entities"`
}

// handlePing returns a simple liveness response.
func (s *Server) handlePing(c *fiber.Ctx) error {
	return c.JSON("pong")
}

// handleHealth returns service status plus entity counts across the stores.
func (s *Server) handleHealth(c *fiber.Ctx) error {
	libraries, documents, chunks := s.repo.Counts()

	return c.JSON(HealthResponse{
		Status:        "healthy",
		Timestamp:     time.Now().UTC(),
		Version:       version,
		UptimeSeconds: time.Since(s.started).Seconds(),
		Entities: map[string]int{
			"libraries": libraries,
			"documents": documents,
			"chunks":    chunks,
		},
	})
}
