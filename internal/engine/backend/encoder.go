package backend

import (
	"context"

	"go.trai.ch/zerr"

	"go.quarry.build/quarry/internal/core/domain"
	"go.quarry.build/quarry/internal/core/ports"
)

// resultEncoder turns a job's completed outputs into an encoded cache result
// stored in the content store. The schema tag is fixed for the encoder's
// lifetime; domain.BuildResult does the pure schema dispatch and sorting.
type resultEncoder struct {
	store  ports.ContentStore
	schema domain.SchemaTag
}

func (e *resultEncoder) encode(ctx context.Context, outputs map[domain.ArtifactKind]domain.ContentRef) (domain.ContentRef, error) {
	result, err := domain.BuildResult(e.schema, outputs)
	if err != nil {
		return "", err
	}

	ref, err := e.store.Store(ctx, result.Encode())
	if err != nil {
		return "", zerr.Wrap(err, "failed to store encoded cache result")
	}
	return ref, nil
}
