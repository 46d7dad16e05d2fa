// Package api provides the HTTP server exposing the vector store: CRUD for
// libraries, documents and chunks, plus per-library similarity search. The
// handlers are thin translation layers over the repository and search
// engine; all state and invariants live below.
package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/stakeai/vectordb/pkg/ingest"
	"github.com/stakeai/vectordb/pkg/repo"
	"github.com/stakeai/vectordb/pkg/search"
)

// Server is the HTTP API server for the vector store.
type Server struct {
	config  Config
	repo    *repo.Repo
	engine  *search.Engine
	pool    *ingest.Pool
	logger  *zap.Logger
	app     *fiber.App
	started time.Time
}

// NewServer creates a new API server. The repository, engine and ingest pool
// are injected so they can be shared with other components and swapped in
// tests.
func NewServer(config Config, r *repo.Repo, engine *search.Engine, pool *ingest.Pool, logger *zap.Logger) *Server {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
	})

	s := &Server{
		config:  config,
		repo:    r,
		engine:  engine,
		pool:    pool,
		logger:  logger,
		app:     app,
		started: time.Now(),
	}

	app.Get("/ping", s.handlePing)
	app.Get("/health", s.handleHealth)

	v1 := app.Group("/api/v1")

	v1.Post("/libraries", s.handleCreateLibrary)
	v1.Get("/libraries", s.handleListLibraries)
	v1.Get("/libraries/:libraryID", s.handleGetLibrary)
	v1.Put("/libraries/:libraryID", s.handleUpdateLibrary)
	v1.Delete("/libraries/:libraryID", s.handleDeleteLibrary)

	v1.Post("/libraries/:libraryID/documents", s.handleCreateDocument)
	v1.Get("/libraries/:libraryID/documents", s.handleListDocuments)
	v1.Get("/libraries/:libraryID/documents/:documentID", s.handleGetDocument)
	v1.Put("/libraries/:libraryID/documents/:documentID", s.handleUpdateDocument)
	v1.Delete("/libraries/:libraryID/documents/:documentID", s.handleDeleteDocument)

	v1.Post("/libraries/:libraryID/documents/:documentID/chunks", s.handleCreateChunkInDocument)
	v1.Get("/libraries/:libraryID/documents/:documentID/chunks", s.handleListChunksInDocument)

	// The batch route must be registered before the :chunkID routes so
	// "batch" isn't captured as a chunk id.
	v1.Post("/libraries/:libraryID/chunks/batch", s.handleBatchCreateChunks)
	v1.Post("/libraries/:libraryID/chunks", s.handleCreateChunkInLibrary)
	v1.Get("/libraries/:libraryID/chunks", s.handleListChunksInLibrary)
	v1.Get("/libraries/:libraryID/chunks/:chunkID", s.handleGetChunk)
	v1.Put("/libraries/:libraryID/chunks/:chunkID", s.handleUpdateChunk)
	v1.Delete("/libraries/:libraryID/chunks/:chunkID", s.handleDeleteChunk)

	v1.Post("/libraries/:libraryID/search", s.handleSearch)

	return s
}

// Run starts the API server on the configured address.
func (s *Server) Run() error {
	s.logger.Info("starting API server",
		zap.String("listen", s.config.ListenAddr),
	)
	return s.app.Listen(s.config.ListenAddr)
}

// Shutdown gracefully shuts down the API server.
func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}
