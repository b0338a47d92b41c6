package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.quarry.build/quarry/internal/core/domain"
)

func TestParseArtifactKind(t *testing.T) {
	kind, err := domain.ParseArtifactKind("dependencies")
	require.NoError(t, err)
	assert.Equal(t, domain.KindDependencies, kind)

	_, err = domain.ParseArtifactKind("llvm-bitcode")
	assert.ErrorIs(t, err, domain.ErrUnknownKind)
}

func TestParseArtifactKind_DiagnosticsNotDeclarable(t *testing.T) {
	_, err := domain.ParseArtifactKind("diagnostics")
	assert.ErrorIs(t, err, domain.ErrUnknownKind)
}

func TestArtifactKind_Cacheable(t *testing.T) {
	assert.True(t, domain.KindPrimary.Cacheable())
	assert.True(t, domain.KindCachedDiagnostics.Cacheable())
	assert.False(t, domain.KindDiagnostics.Cacheable())
}

func TestJob_DeclaredKindsFixedOrder(t *testing.T) {
	job := domain.Job{
		Index: 0,
		Outputs: map[domain.ArtifactKind]string{
			domain.KindTypeRefs:     "a.typerefs",
			domain.KindPrimary:      "a.o",
			domain.KindDependencies: "a.d",
		},
	}

	kinds := job.DeclaredKinds()
	assert.Equal(t, []domain.ArtifactKind{
		domain.KindPrimary,
		domain.KindDependencies,
		domain.KindTypeRefs,
	}, kinds)
}

func TestPlan_Validate(t *testing.T) {
	valid := domain.Plan{
		BaseKey: "base",
		Jobs: []domain.Job{
			{Index: 0, Outputs: map[domain.ArtifactKind]string{domain.KindPrimary: "a.o"}},
			{Index: 1, Outputs: map[domain.ArtifactKind]string{domain.KindPrimary: "b.o"}},
		},
	}
	require.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(p *domain.Plan)
	}{
		{"missing base key", func(p *domain.Plan) { p.BaseKey = "" }},
		{"index out of order", func(p *domain.Plan) { p.Jobs[1].Index = 5 }},
		{"no outputs", func(p *domain.Plan) { p.Jobs[0].Outputs = nil }},
		{"empty path", func(p *domain.Plan) { p.Jobs[0].Outputs[domain.KindPrimary] = "" }},
		{"declared diagnostics", func(p *domain.Plan) {
			p.Jobs[0].Outputs[domain.KindDiagnostics] = "a.dia"
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan := domain.Plan{
				BaseKey: "base",
				Jobs: []domain.Job{
					{Index: 0, Outputs: map[domain.ArtifactKind]string{domain.KindPrimary: "a.o"}},
					{Index: 1, Outputs: map[domain.ArtifactKind]string{domain.KindPrimary: "b.o"}},
				},
			}
			tt.mutate(&plan)
			assert.ErrorIs(t, plan.Validate(), domain.ErrInvalidPlan)
		})
	}
}
