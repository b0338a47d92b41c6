package app

import (
	"context"

	"github.com/grindlemire/graft"

	"go.quarry.build/quarry/internal/adapters/cas"    //nolint:depguard // Wired in app layer
	"go.quarry.build/quarry/internal/adapters/config" //nolint:depguard // Wired in app layer
	"go.quarry.build/quarry/internal/adapters/logger" //nolint:depguard // Wired in app layer
	"go.quarry.build/quarry/internal/adapters/telemetry/progrock"
	"go.quarry.build/quarry/internal/core/ports"
	"go.quarry.build/quarry/internal/engine/backend"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			backend.NodeID,
			cas.StoreNodeID,
			cas.CacheNodeID,
			logger.NodeID,
			progrock.NodeID,
		},
		Run: runAppNode,
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			a, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return &Components{App: a, Logger: log}, nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.PlanLoader](ctx)
	if err != nil {
		return nil, err
	}

	factory, err := graft.Dep[*backend.Factory](ctx)
	if err != nil {
		return nil, err
	}

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

	telemetry, err := graft.Dep[ports.Telemetry](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, factory, store, cache, log, telemetry), nil
}
