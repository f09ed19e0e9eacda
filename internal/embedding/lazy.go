package embedding

import (
	"context"
	"fmt"
	"sync"
)

// Factory creates the underlying embedder on first use. Loading an embedding
// model is expensive, so it must happen at most once per process.
type Factory func(ctx context.Context) (Embedder, error)

// Lazy is an Embedder that defers initialization of its delegate until the
// first Embed call. Initialization is guarded so concurrent first calls
// perform exactly one initialization; the result (success or failure) is
// shared by all callers.
type Lazy struct {
	factory Factory

	once     sync.Once
	delegate Embedder
	initErr  error
}

// NewLazy wraps a factory in a lazily-initialized embedder.
func NewLazy(factory Factory) *Lazy {
	return &Lazy{factory: factory}
}

// Embed initializes the delegate on first call and forwards to it. A failed
// initialization is returned as ErrModelUnavailable on this and every later
// call; the factory is not retried within the process.
func (l *Lazy) Embed(ctx context.Context, text string) ([]float32, error) {
	l.once.Do(func() {
		l.delegate, l.initErr = l.factory(ctx)
	})

	if l.initErr != nil {
		return nil, fmt.Errorf("%w: %v", ErrModelUnavailable, l.initErr)
	}

	return l.delegate.Embed(ctx, text)
}
