// Package ingest provides an asynchronous worker pool for bulk chunk writes.
// The pool decouples batch ingestion from the HTTP hot path: requests are
// acknowledged as soon as their jobs are queued and the workers drain the
// queue through the repository in the background.
package ingest

import (
	"context"
	"fmt"
	"math"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/stakeai/vectordb/pkg/repo"
)

var (
	defaultNumWorkers   uint = 3
	defaultJobQueueSize uint = 256
)

// Job is one chunk to create. When DocumentID is uuid.Nil the chunk goes
// through the library's default document.
type Job struct {
	LibraryID  uuid.UUID
	DocumentID uuid.UUID
	Vector     []float32
	Metadata   map[string]any
}

// Config holds the configuration options for the worker pool.
type Config struct {
	// Repo is the repository the workers write through.
	Repo *repo.Repo

	// NumWorkers is the number of background workers in the pool.
	NumWorkers uint

	// QueueSize is the capacity of the buffered job channel (defaults to 256).
	QueueSize uint

	// Logger is the provided zap logger.
	Logger *zap.Logger
}

// Pool processes chunk-creation jobs asynchronously via a worker pool.
type Pool struct {
	config *Config
	queue  chan Job
	wg     sync.WaitGroup
	logger *zap.Logger
}

// NewPool creates a new Pool and starts its worker goroutines.
func NewPool(c *Config) (*Pool, error) {
	if c.NumWorkers == 0 {
		c.NumWorkers = defaultNumWorkers
	}

	if c.QueueSize == 0 {
		c.QueueSize = defaultJobQueueSize
	}

	if c.NumWorkers > uint(math.MaxInt) {
		return nil, fmt.Errorf("NumWorkers %d exceeds max int", c.NumWorkers)
	}

	p := &Pool{
		config: c,
		queue:  make(chan Job, c.QueueSize),
		logger: c.Logger,
	}

	p.wg.Add(int(c.NumWorkers))
	for i := range c.NumWorkers {
		go p.worker(i)
	}

	return p, nil
}

// Enqueue submits a job for processing by the worker pool.
// Returns true if enqueued, false if the queue is full and the job was dropped.
func (p *Pool) Enqueue(job Job) bool {
	select {
	case p.queue <- job:
		p.logger.Debug("ingest job queued",
			zap.String("library_id", job.LibraryID.String()),
			zap.Int("dimension", len(job.Vector)),
		)
		return true
	default:
		p.logger.Error("ingest job dropped, queue full",
			zap.String("library_id", job.LibraryID.String()),
		)
		return false
	}
}

// Close signals workers to stop and waits for in-flight jobs to drain.
// Call this during graceful shutdown after the HTTP server has stopped.
func (p *Pool) Close() {
	close(p.queue)
	p.wg.Wait()
}

// worker continuously pulls jobs off the queue until it is closed.
func (p *Pool) worker(id uint) {
	defer p.wg.Done()
	p.logger.Debug("ingest worker started", zap.Uint("worker_id", id))

	for job := range p.queue {
		p.processJob(job)
	}

	p.logger.Debug("ingest worker stopped", zap.Uint("worker_id", id))
}

// processJob creates one chunk through the repository. Failures are logged,
// not returned: the submitting request was already acknowledged.
func (p *Pool) processJob(job Job) {
	ctx := context.Background()

	var err error
	if job.DocumentID == uuid.Nil {
		_, err = p.config.Repo.CreateChunkInLibrary(ctx, job.LibraryID, job.Vector, job.Metadata)
	} else {
		_, err = p.config.Repo.CreateChunk(ctx, job.LibraryID, job.DocumentID, job.Vector, job.Metadata)
	}

	if err != nil {
		p.logger.Warn("async chunk ingestion failed",
			zap.String("library_id", job.LibraryID.String()),
			zap.String("document_id", job.DocumentID.String()),
			zap.Error(err),
		)
		return
	}
}
