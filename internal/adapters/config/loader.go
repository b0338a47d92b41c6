// Package config provides the job plan loader for quarry.
package config

import (
	"fmt"
	"os"
	"sort"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"

	"go.quarry.build/quarry/internal/core/domain"
	"go.quarry.build/quarry/internal/core/ports"
)

var _ ports.PlanLoader = (*Loader)(nil)

// Loader implements ports.PlanLoader using a YAML plan file.
type Loader struct {
	log ports.Logger
}

// NewLoader creates a new plan loader.
func NewLoader(log ports.Logger) *Loader {
	return &Loader{log: log}
}

// Load reads a plan file, resolves artifact kinds, derives the base key from
// the declared invocation, and validates the result.
func (l *Loader) Load(path string) (*domain.Plan, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, zerr.Wrap(err, "failed to read plan file")
	}

	var planfile Planfile
	if err := yaml.Unmarshal(data, &planfile); err != nil {
		return nil, zerr.Wrap(err, "failed to parse plan file")
	}

	schema, err := domain.ParseSchemaTag(planfile.Schema)
	if err != nil {
		return nil, err
	}

	jobs := make([]domain.Job, 0, len(planfile.Jobs))
	for i, dto := range planfile.Jobs {
		outputs := make(map[domain.ArtifactKind]string, len(dto.Outputs))
		for name, outPath := range dto.Outputs {
			kind, err := domain.ParseArtifactKind(name)
			if err != nil {
				return nil, zerr.With(err, "job", i)
			}
			outputs[kind] = outPath
		}
		jobs = append(jobs, domain.Job{Index: i, Outputs: outputs})
	}

	plan := &domain.Plan{
		Jobs:    jobs,
		BaseKey: deriveBaseKey(&planfile.Invocation),
		Schema:  schema,
	}
	if err := plan.Validate(); err != nil {
		return nil, err
	}

	l.log.Info("plan loaded", "path", path, "jobs", len(plan.Jobs), "schema", schema.String())
	return plan, nil
}

// deriveBaseKey folds the invocation's invariant inputs into the build-wide
// base key. Environment keys are sorted so the key never depends on map
// order.
func deriveBaseKey(inv *InvocationDTO) domain.BaseKey {
	hasher := xxhash.New()

	for _, arg := range inv.Arguments {
		_, _ = hasher.WriteString(arg)
		_, _ = hasher.Write([]byte{0}) // Separator
	}
	_, _ = hasher.Write([]byte{0}) // Section separator

	keys := make([]string, 0, len(inv.Environment))
	for k := range inv.Environment {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		_, _ = hasher.WriteString(k)
		_, _ = hasher.Write([]byte{'='})
		_, _ = hasher.WriteString(inv.Environment[k])
		_, _ = hasher.Write([]byte{0})
	}
	_, _ = hasher.Write([]byte{0})

	_, _ = hasher.WriteString(inv.Toolchain)

	return domain.BaseKey(fmt.Sprintf("%016x", hasher.Sum64()))
}
