package progrock_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"go.quarry.build/quarry/internal/adapters/telemetry/progrock"
)

func TestNew(t *testing.T) {
	recorder := progrock.New()
	assert.NotNil(t, recorder)
}

func TestRecorder_Integration(t *testing.T) {
	recorder := progrock.New()

	ctx := context.Background()
	_, vertex := recorder.Record(ctx, "store job 0")
	vertex.Complete(nil)

	_, cached := recorder.Record(ctx, "store job 1")
	cached.Cached()
	cached.Complete(nil)

	if err := recorder.Close(); err != nil {
		t.Errorf("failed to close recorder: %v", err)
	}
}
