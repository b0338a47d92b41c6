package ports

import (
	"context"

	"go.quarry.build/quarry/internal/core/domain"
)

// ActionCache maps cache keys to the content reference of an encoded cache
// result. Implementations must be safe for concurrent use.
//
//go:generate go run go.uber.org/mock/mockgen -source=cache.go -destination=mocks/mock_cache.go -package=mocks
type ActionCache interface {
	// Put registers the result record ref under key.
	Put(ctx context.Context, key domain.CacheKey, ref domain.ContentRef) error

	// Get resolves a key to a record ref. The second return is false when no
	// entry exists. Only cache consumers call this; the backend only writes.
	Get(ctx context.Context, key domain.CacheKey) (domain.ContentRef, bool, error)
}
