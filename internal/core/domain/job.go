package domain

import (
	"slices"

	"go.trai.ch/zerr"
)

// ContentRef is the opaque, content-derived identifier the content store
// returns for a stored byte sequence. Equal bytes yield equal refs.
type ContentRef string

// CacheKey identifies one job's cache entry. It is a pure function of the
// build-wide base key and the job index.
type CacheKey string

// BaseKey captures the build-wide invariant inputs: command line, environment,
// and toolchain fingerprint. It is supplied by the job plan.
type BaseKey string

// Job is one compilation input together with the output paths it is expected
// to produce, one path per artifact kind.
type Job struct {
	// Index identifies the job within its plan.
	Index int
	// Outputs maps each declared kind to the path the compiler writes it to.
	// The diagnostics pseudo-kind never appears here.
	Outputs map[ArtifactKind]string
}

// DeclaredKinds returns the job's declared kinds in the fixed kind order.
func (j *Job) DeclaredKinds() []ArtifactKind {
	kinds := make([]ArtifactKind, 0, len(j.Outputs))
	for k := range j.Outputs {
		kinds = append(kinds, k)
	}
	slices.Sort(kinds)
	return kinds
}

// Plan is the external job plan: an ordered list of jobs, the build-wide base
// key, and the result schema the backend encodes with.
type Plan struct {
	Jobs    []Job
	BaseKey BaseKey
	Schema  SchemaTag
}

// Validate checks the structural invariants the backend relies on: contiguous
// job indices, at least one declared kind per job, non-empty paths, and no
// declaration of the diagnostics pseudo-kind.
func (p *Plan) Validate() error {
	if p.BaseKey == "" {
		return zerr.Wrap(ErrInvalidPlan, "missing base key")
	}
	for i := range p.Jobs {
		job := &p.Jobs[i]
		if job.Index != i {
			return zerr.With(zerr.Wrap(ErrInvalidPlan, "job index out of order"), "index", job.Index)
		}
		if len(job.Outputs) == 0 {
			return zerr.With(zerr.Wrap(ErrInvalidPlan, "job declares no outputs"), "index", job.Index)
		}
		for kind, path := range job.Outputs {
			if !kind.Cacheable() {
				return zerr.With(zerr.Wrap(ErrInvalidPlan, "diagnostics cannot be a declared output"), "index", job.Index)
			}
			if path == "" {
				return zerr.With(zerr.With(zerr.Wrap(ErrInvalidPlan, "empty output path"), "index", job.Index), "kind", kind.String())
			}
		}
	}
	return nil
}
