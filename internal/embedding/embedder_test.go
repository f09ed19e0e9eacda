package embedding

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCosine_IdenticalVectors(t *testing.T) {
	v := []float32{1, 2, 3}
	assert.InDelta(t, 1.0, Cosine(v, v), 1e-9)
}

func TestCosine_OrthogonalVectors(t *testing.T) {
	assert.InDelta(t, 0.0, Cosine([]float32{1, 0}, []float32{0, 1}), 1e-9)
}

func TestCosine_OppositeVectors(t *testing.T) {
	assert.InDelta(t, -1.0, Cosine([]float32{1, 0}, []float32{-1, 0}), 1e-9)
}

func TestCosine_DegenerateInputs(t *testing.T) {
	assert.Equal(t, 0.0, Cosine(nil, nil))
	assert.Equal(t, 0.0, Cosine([]float32{1, 2}, []float32{1}))
	assert.Equal(t, 0.0, Cosine([]float32{0, 0}, []float32{1, 2}))
}

func TestCosine_ClampedToUnitRange(t *testing.T) {
	// Parallel vectors can drift just past 1.0 in floating point.
	a := []float32{0.1, 0.1, 0.1, 0.1, 0.1, 0.1, 0.1}
	b := []float32{0.3, 0.3, 0.3, 0.3, 0.3, 0.3, 0.3}

	sim := Cosine(a, b)
	assert.LessOrEqual(t, sim, 1.0)
	assert.InDelta(t, 1.0, sim, 1e-6)
}

type staticEmbedder struct {
	vector []float32
}

func (s *staticEmbedder) Embed(_ context.Context, _ string) ([]float32, error) {
	return s.vector, nil
}

func TestLazy_InitializesOnce(t *testing.T) {
	var inits atomic.Int32
	lazy := NewLazy(func(_ context.Context) (Embedder, error) {
		inits.Add(1)
		return &staticEmbedder{vector: []float32{1, 0}}, nil
	})

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := lazy.Embed(context.Background(), "text")
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), inits.Load())
}

func TestLazy_InitFailureIsModelUnavailable(t *testing.T) {
	lazy := NewLazy(func(_ context.Context) (Embedder, error) {
		return nil, errors.New("no API key")
	})

	_, err := lazy.Embed(context.Background(), "text")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrModelUnavailable)

	// Subsequent calls keep returning the failure without retrying.
	_, err = lazy.Embed(context.Background(), "text")
	assert.ErrorIs(t, err, ErrModelUnavailable)
}

func TestNewGeminiEmbedder_RequiresAPIKey(t *testing.T) {
	_, err := NewGeminiEmbedder(context.Background(), "", "")
	assert.Error(t, err)
}
