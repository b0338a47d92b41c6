package backend

import (
	"sync"

	"go.quarry.build/quarry/internal/core/domain"
)

// jobState tracks one job's stored artifacts until the job completes.
//
// All access goes through mu: insert-then-check is a single critical section
// so completeness is never evaluated against a half-applied insert, and a job
// is finalized exactly once. States of different jobs never share a lock, so
// writes to different jobs do not contend.
type jobState struct {
	mu sync.Mutex

	declared  map[domain.ArtifactKind]struct{}
	outputs   map[domain.ArtifactKind]domain.ContentRef
	remaining int
	finalized bool
}

func newJobState(job *domain.Job) *jobState {
	declared := make(map[domain.ArtifactKind]struct{}, len(job.Outputs))
	for kind := range job.Outputs {
		declared[kind] = struct{}{}
	}
	return &jobState{
		declared:  declared,
		outputs:   make(map[domain.ArtifactKind]domain.ContentRef, len(declared)),
		remaining: len(declared),
	}
}

// insert records ref for kind and reports whether the job should finalize
// now. A repeated kind silently overwrites the prior reference and does not
// double-count toward completeness. Once a job has finalized, later inserts
// update the set but never trigger a second finalize.
func (s *jobState) insert(kind domain.ArtifactKind, ref domain.ContentRef) bool {
	if _, present := s.outputs[kind]; !present {
		if _, ok := s.declared[kind]; ok {
			s.remaining--
		}
	}
	s.outputs[kind] = ref
	return s.remaining == 0 && !s.finalized
}
