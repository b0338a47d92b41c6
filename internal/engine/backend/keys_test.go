package backend_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"go.quarry.build/quarry/internal/core/domain"
	"go.quarry.build/quarry/internal/engine/backend"
)

func TestDeriveKey_Pure(t *testing.T) {
	first := backend.DeriveKey("base", 7)
	for range 100 {
		assert.Equal(t, first, backend.DeriveKey("base", 7))
	}
}

func TestDeriveKey_DistinctInputsDistinctKeys(t *testing.T) {
	seen := make(map[string]string)
	for _, base := range []string{"base", "other", ""} {
		for idx := range 16 {
			key := string(backend.DeriveKey(domain.BaseKey(base), idx))
			if prev, dup := seen[key]; dup {
				t.Fatalf("key collision between %s and (%q,%d)", prev, base, idx)
			}
			seen[key] = base
		}
	}
}
