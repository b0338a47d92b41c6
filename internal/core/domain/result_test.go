package domain_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.quarry.build/quarry/internal/core/domain"
)

func TestBuildResult_SortsByKindOrder(t *testing.T) {
	outputs := map[domain.ArtifactKind]domain.ContentRef{
		domain.KindTypeRefs:     "ref-typerefs",
		domain.KindPrimary:      "ref-primary",
		domain.KindDependencies: "ref-deps",
	}

	res, err := domain.BuildResult(domain.SchemaGeneral, outputs)
	require.NoError(t, err)

	require.Len(t, res.Outputs, 3)
	assert.Equal(t, domain.KindPrimary, res.Outputs[0].Kind)
	assert.Equal(t, domain.KindDependencies, res.Outputs[1].Kind)
	assert.Equal(t, domain.KindTypeRefs, res.Outputs[2].Kind)
}

func TestEncode_DeterministicAcrossMapOrder(t *testing.T) {
	kinds := []domain.ArtifactKind{
		domain.KindPrimary,
		domain.KindModuleDoc,
		domain.KindDependencies,
		domain.KindTypeRefs,
		domain.KindCachedDiagnostics,
	}

	var reference []byte
	for i := range 20 {
		outputs := make(map[domain.ArtifactKind]domain.ContentRef, len(kinds))
		shuffled := make([]domain.ArtifactKind, len(kinds))
		copy(shuffled, kinds)
		rand.New(rand.NewSource(int64(i))).Shuffle(len(shuffled), func(a, b int) {
			shuffled[a], shuffled[b] = shuffled[b], shuffled[a]
		})
		for _, k := range shuffled {
			outputs[k] = domain.ContentRef("ref-" + k.String())
		}

		res, err := domain.BuildResult(domain.SchemaGeneral, outputs)
		require.NoError(t, err)

		encoded := res.Encode()
		if reference == nil {
			reference = encoded
			continue
		}
		require.Equal(t, reference, encoded, "insertion order %d changed the encoding", i)
	}
}

func TestEncode_SchemasAreIncompatible(t *testing.T) {
	outputs := map[domain.ArtifactKind]domain.ContentRef{
		domain.KindPrimary:      "ref-primary",
		domain.KindDependencies: "ref-deps",
	}

	general, err := domain.BuildResult(domain.SchemaGeneral, outputs)
	require.NoError(t, err)
	module, err := domain.BuildResult(domain.SchemaModule, outputs)
	require.NoError(t, err)

	assert.NotEqual(t, general.Encode(), module.Encode())
}

func TestBuildResult_ModuleSchemaRejectsForeignKind(t *testing.T) {
	outputs := map[domain.ArtifactKind]domain.ContentRef{
		domain.KindPrimary:  "ref-primary",
		domain.KindTypeRefs: "ref-typerefs",
	}

	_, err := domain.BuildResult(domain.SchemaModule, outputs)
	require.ErrorIs(t, err, domain.ErrSchemaViolation)
}

func TestBuildResult_ModuleSchemaSingleMainSlot(t *testing.T) {
	outputs := map[domain.ArtifactKind]domain.ContentRef{
		domain.KindPrimary:     "ref-primary",
		domain.KindClangModule: "ref-pcm",
	}

	_, err := domain.BuildResult(domain.SchemaModule, outputs)
	require.ErrorIs(t, err, domain.ErrSchemaViolation)
}

func TestBuildResult_ModuleSchemaDiagnosticsOptional(t *testing.T) {
	outputs := map[domain.ArtifactKind]domain.ContentRef{
		domain.KindClangModule:  "ref-pcm",
		domain.KindDependencies: "ref-deps",
	}

	res, err := domain.BuildResult(domain.SchemaModule, outputs)
	require.NoError(t, err)

	decoded, err := domain.DecodeResult(res.Encode())
	require.NoError(t, err)
	require.Len(t, decoded.Outputs, 2)
	assert.Equal(t, domain.ContentRef("ref-pcm"), decoded.Outputs[0].Ref)
	assert.Equal(t, domain.KindDependencies, decoded.Outputs[1].Kind)
}

func TestDecodeResult_General(t *testing.T) {
	outputs := map[domain.ArtifactKind]domain.ContentRef{
		domain.KindPrimary:  "ref-primary",
		domain.KindTypeRefs: "ref-typerefs",
	}
	res, err := domain.BuildResult(domain.SchemaGeneral, outputs)
	require.NoError(t, err)

	decoded, err := domain.DecodeResult(res.Encode())
	require.NoError(t, err)
	assert.Equal(t, res, decoded)
}

func TestDecodeResult_Malformed(t *testing.T) {
	cases := map[string][]byte{
		"empty":           {},
		"unknown magic":   {0x7f},
		"truncated count": {0x01, 0x80},
		"truncated entry": {0x01, 0x02, byte(domain.KindPrimary), 0x10, 'a'},
	}

	for name, data := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := domain.DecodeResult(data)
			assert.ErrorIs(t, err, domain.ErrMalformedResult)
		})
	}
}
