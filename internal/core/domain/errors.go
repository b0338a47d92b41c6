package domain

import "go.trai.ch/zerr"

var (
	// ErrRouteNotFound is returned when an output path was never declared by
	// the job plan. This indicates a driver or configuration defect.
	ErrRouteNotFound = zerr.New("output path not declared by the job plan")

	// ErrDuplicateOutput is returned when two jobs in a plan declare the same
	// output path. A collision indicates a planning bug and is fatal.
	ErrDuplicateOutput = zerr.New("duplicate output path across jobs")

	// ErrSchemaViolation is returned when an artifact kind is incompatible
	// with the result schema selected for the backend. It signals a logic
	// defect, not a transient condition.
	ErrSchemaViolation = zerr.New("artifact kind violates result schema")

	// ErrUnknownKind is returned when a plan names an artifact kind this
	// backend does not know.
	ErrUnknownKind = zerr.New("unknown artifact kind")

	// ErrInvalidPlan is returned when a job plan fails validation.
	ErrInvalidPlan = zerr.New("invalid job plan")

	// ErrMalformedResult is returned when cache result bytes cannot be
	// decoded.
	ErrMalformedResult = zerr.New("malformed cache result")

	// ErrEntryNotFound is returned by consumers when no cache entry exists
	// for a key.
	ErrEntryNotFound = zerr.New("cache entry not found")
)
