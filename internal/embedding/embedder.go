// Package embedding provides the injected text-embedding capability used by
// the semantic matching engine, plus the cosine-similarity primitive. The
// process-wide embedder is lazily initialized exactly once; initialization
// failure surfaces as ErrModelUnavailable so callers can treat it as a
// retryable infrastructure failure.
package embedding

import (
	"context"
	"errors"
	"math"
)

// ErrModelUnavailable indicates the embedding capability could not be
// initialized. Matching cannot produce a meaningful score without it, so the
// error propagates to the caller instead of degrading to a zero score.
var ErrModelUnavailable = errors.New("embedding model unavailable")

// Embedder converts text into a fixed-length numeric vector such that
// semantically similar texts have vectors with high cosine similarity.
// Implementations must be safe for concurrent use.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
}

// Cosine returns the cosine similarity of two vectors, clamped to [-1, 1] to
// guard against floating-point drift. Mismatched lengths or zero vectors
// yield 0.
func Cosine(a, b []float32) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}

	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}

	if normA == 0 || normB == 0 {
		return 0
	}

	sim := dot / (math.Sqrt(normA) * math.Sqrt(normB))
	return math.Max(-1, math.Min(1, sim))
}
