package backend

import (
	"context"

	"github.com/grindlemire/graft"

	"go.quarry.build/quarry/internal/adapters/cas" //nolint:depguard // Wired in engine wiring
	"go.quarry.build/quarry/internal/adapters/logger"
	"go.quarry.build/quarry/internal/core/domain"
	"go.quarry.build/quarry/internal/core/ports"
)

// Factory builds one Backend per plan from long-lived collaborators.
// The stores outlive any single build invocation; the Backend does not.
type Factory struct {
	store ports.ContentStore
	cache ports.ActionCache
	log   ports.Logger
}

// NewFactory creates a backend factory.
func NewFactory(store ports.ContentStore, cache ports.ActionCache, log ports.Logger) *Factory {
	return &Factory{store: store, cache: cache, log: log}
}

// New builds a Backend for the given plan.
func (f *Factory) New(plan *domain.Plan) (*Backend, error) {
	return New(f.store, f.cache, f.log, plan)
}

// NodeID is the unique identifier for the backend factory Graft node.
const NodeID graft.ID = "engine.backend_factory"

func init() {
	graft.Register(graft.Node[*Factory]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			cas.StoreNodeID,
			cas.CacheNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Factory, error) {
			store, err := graft.Dep[ports.ContentStore](ctx)
			if err != nil {
				return nil, err
			}

			cache, err := graft.Dep[ports.ActionCache](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return NewFactory(store, cache, log), nil
		},
	})
}
