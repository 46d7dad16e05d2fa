// Package vecmath provides the pure vector comparisons used by similarity
// search: cosine similarity and Euclidean distance over equal-length vectors.
package vecmath

import (
	"errors"
	"math"
)

// ErrDimensionMismatch is returned when the two vectors differ in length.
var ErrDimensionMismatch = errors.New("vector dimensions do not match")

// CosineSimilarity returns the cosine similarity between a and b.
// A zero-magnitude vector on either side yields 0.0 rather than an error,
// so callers never see a division by zero.
func CosineSimilarity(a, b []float32) (float32, error) {
	if len(a) != len(b) {
		return 0, ErrDimensionMismatch
	}

	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}

	if normA == 0 || normB == 0 {
		return 0, nil
	}

	return float32(dot / (math.Sqrt(normA) * math.Sqrt(normB))), nil
}

// EuclideanDistance returns the L2 distance between a and b.
func EuclideanDistance(a, b []float32) (float32, error) {
	if len(a) != len(b) {
		return 0, ErrDimensionMismatch
	}

	var sum float64
	for i := range a {
		d := float64(a[i]) - float64(b[i])
		sum += d * d
	}

	return float32(math.Sqrt(sum)), nil
}
