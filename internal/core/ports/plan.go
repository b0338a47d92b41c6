package ports

import "go.quarry.build/quarry/internal/core/domain"

// PlanLoader reads a job plan from disk and derives its base key.
//
//go:generate go run go.uber.org/mock/mockgen -source=plan.go -destination=mocks/mock_plan.go -package=mocks
type PlanLoader interface {
	// Load parses and validates the plan file at path.
	Load(path string) (*domain.Plan, error)
}
