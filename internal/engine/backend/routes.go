package backend

import (
	"fmt"

	"go.trai.ch/zerr"

	"go.quarry.build/quarry/internal/core/domain"
)

// route is the immutable fact that a path belongs to one (job, kind) pair.
type route struct {
	job  int
	kind domain.ArtifactKind
}

// routeTable maps every declared output path to its route. It is built once
// from the plan and never mutated, so lookups need no synchronization.
type routeTable struct {
	routes map[string]route
}

// DiagnosticsPath returns the synthetic path the driver writes a job's live
// diagnostics stream to. It cannot collide with a real file path.
func DiagnosticsPath(jobIndex int) string {
	return fmt.Sprintf("<diagnostics:%d>", jobIndex)
}

func newRouteTable(plan *domain.Plan) (*routeTable, error) {
	t := &routeTable{routes: make(map[string]route)}
	for i := range plan.Jobs {
		job := &plan.Jobs[i]
		for kind, path := range job.Outputs {
			if prev, exists := t.routes[path]; exists {
				return nil, zerr.With(zerr.With(domain.ErrDuplicateOutput, "path", path), "jobs", fmt.Sprintf("%d,%d", prev.job, job.Index))
			}
			t.routes[path] = route{job: job.Index, kind: kind}
		}
		t.routes[DiagnosticsPath(job.Index)] = route{job: job.Index, kind: domain.KindDiagnostics}
	}
	return t, nil
}

func (t *routeTable) lookup(path string) (route, error) {
	r, ok := t.routes[path]
	if !ok {
		return route{}, zerr.With(domain.ErrRouteNotFound, "path", path)
	}
	return r, nil
}
