// Package memory provides an in-memory CacheReader.
package memory

import (
	"context"

	"github.com/custodia-labs/granola-scoop/internal/core/domain"
	"github.com/custodia-labs/granola-scoop/internal/core/ports/driven"
)

// Ensure CacheReader implements the interface.
var _ driven.CacheReader = (*CacheReader)(nil)

// CacheReader serves a fixed cache state. It is used in tests and when
// the state has already been decoded elsewhere.
type CacheReader struct {
	state *domain.CacheState
	err   error
	loads int
}

// NewCacheReader creates a reader that returns state on every Load.
// A nil state is served as an empty one.
func NewCacheReader(state *domain.CacheState) *CacheReader {
	if state == nil {
		state = domain.NewCacheState()
	}
	return &CacheReader{state: state}
}

// NewFailingCacheReader creates a reader whose Load always returns err.
func NewFailingCacheReader(err error) *CacheReader {
	return &CacheReader{err: err}
}

// Load returns the configured state or error.
func (r *CacheReader) Load(ctx context.Context) (*domain.CacheState, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.loads++
	if r.err != nil {
		return nil, r.err
	}
	return r.state, nil
}

// Path returns a placeholder location.
func (r *CacheReader) Path() string {
	return "memory://cache"
}

// Loads returns how many times Load was called.
func (r *CacheReader) Loads() int {
	return r.loads
}
