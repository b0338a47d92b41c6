package cas

import (
	"context"
	"os"

	"github.com/grindlemire/graft"

	"go.quarry.build/quarry/internal/core/ports"
)

const (
	// StoreNodeID is the unique identifier for the content store Graft node.
	StoreNodeID graft.ID = "adapter.content_store"
	// CacheNodeID is the unique identifier for the action cache Graft node.
	CacheNodeID graft.ID = "adapter.action_cache"
)

// DefaultRoot returns the store root, honoring the QUARRY_DIR override.
func DefaultRoot() string {
	if dir := os.Getenv("QUARRY_DIR"); dir != "" {
		return dir
	}
	return ".quarry"
}

func init() {
	graft.Register(graft.Node[ports.ContentStore]{
		ID:        StoreNodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.ContentStore, error) {
			return NewContentStore(DefaultRoot())
		},
	})

	graft.Register(graft.Node[ports.ActionCache]{
		ID:        CacheNodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.ActionCache, error) {
			return NewActionCache(DefaultRoot())
		},
	})
}
