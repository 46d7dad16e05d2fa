// Package search implements exact brute-force similarity search over the
// chunks of one library. Every candidate is scored against the query with
// cosine similarity and the top-k results are returned in descending score
// order.
package search

import (
	"context"
	"errors"
	"sort"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/stakeai/vectordb/pkg/model"
	"github.com/stakeai/vectordb/pkg/repo"
	"github.com/stakeai/vectordb/pkg/vecmath"
)

// DefaultTopK is the number of results returned when the caller does not
// specify a limit.
const DefaultTopK = 10

// Result pairs a candidate chunk with its similarity score.
type Result struct {
	Chunk *model.Chunk
	Score float32
}

// Output is the outcome of one search: the ranked results and the total
// number of candidate chunks that were considered.
type Output struct {
	Results       []Result
	TotalSearched int
}

// Engine answers top-k similarity queries against the repository.
type Engine struct {
	repo   *repo.Repo
	logger *zap.Logger
}

// NewEngine creates a search engine over the given repository.
func NewEngine(r *repo.Repo, logger *zap.Logger) *Engine {
	return &Engine{
		repo:   r,
		logger: logger,
	}
}

// Search gathers all chunks transitively reachable from the library, scores
// each against the query vector and returns at most topK results, highest
// score first. Ties keep creation order, first-created wins. Candidates
// whose dimension differs from the query are skipped, not errors: a partial
// degraded result beats aborting the whole search over one malformed chunk.
// topK <= 0 yields an empty result set; the candidate total is still
// reported.
func (e *Engine) Search(ctx context.Context, libraryID uuid.UUID, query []float32, topK int) (*Output, error) {
	if len(query) == 0 {
		return nil, repo.InvalidInputError{Reason: "query vector cannot be empty"}
	}

	candidates, err := e.repo.ListChunksByLibrary(ctx, libraryID)
	if err != nil {
		return nil, err
	}

	results := make([]Result, 0, len(candidates))
	for _, chunk := range candidates {
		score, err := vecmath.CosineSimilarity(query, chunk.Vector)
		if err != nil {
			if errors.Is(err, vecmath.ErrDimensionMismatch) {
				e.logger.Debug("skipping chunk with mismatched dimension",
					zap.String("chunk_id", chunk.ID.String()),
					zap.Int("chunk_dimension", chunk.Dimension()),
					zap.Int("query_dimension", len(query)),
				)
				continue
			}
			return nil, err
		}
		results = append(results, Result{Chunk: chunk, Score: score})
	}

	// Candidates arrive in creation order, so a stable sort keeps
	// first-created-wins tie-breaking deterministic.
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	if topK <= 0 {
		results = results[:0]
	} else if len(results) > topK {
		results = results[:topK]
	}

	return &Output{
		Results:       results,
		TotalSearched: len(candidates),
	}, nil
}
