package ports

import (
	"context"

	"go.quarry.build/quarry/internal/core/domain"
)

// ContentStore persists byte sequences and names them by content.
// Implementations must be safe for concurrent use; equal bytes must yield
// equal references.
//
//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type ContentStore interface {
	// Store persists data and returns its content reference.
	Store(ctx context.Context, data []byte) (domain.ContentRef, error)

	// Load returns the bytes previously stored under ref. Only cache
	// consumers call this; the backend itself never reads.
	Load(ctx context.Context, ref domain.ContentRef) ([]byte, error)
}
