package driven

import (
	"context"

	"github.com/custodia-labs/granola-scoop/internal/core/domain"
)

// CacheReader loads the Granola application cache.
type CacheReader interface {
	// Load reads and decodes the cache.
	// Returns an error wrapping domain.ErrCacheNotFound if the cache is missing,
	// or domain.ErrCacheDecode if either encoding layer is malformed.
	// Missing state sections decode to empty maps.
	Load(ctx context.Context) (*domain.CacheState, error)

	// Path returns the cache location.
	Path() string
}
