// Package telemetry provides telemetry adapters and a no-op fallback.
package telemetry

import (
	"context"

	"go.quarry.build/quarry/internal/core/ports"
)

// Noop is a telemetry recorder that discards everything.
type Noop struct{}

// NewNoop returns a recorder that does nothing.
func NewNoop() ports.Telemetry {
	return Noop{}
}

// Record starts a vertex that discards everything.
func (Noop) Record(ctx context.Context, _ string) (context.Context, ports.Vertex) {
	return ctx, noopVertex{}
}

// Close is a no-op.
func (Noop) Close() error { return nil }

type noopVertex struct{}

func (noopVertex) Complete(error) {}
func (noopVertex) Cached()        {}
