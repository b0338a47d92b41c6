package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.quarry.build/quarry/internal/adapters/config"
	"go.quarry.build/quarry/internal/core/domain"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...any) {}
func (nopLogger) Warn(string, ...any) {}
func (nopLogger) Error(error)         {}

func writePlan(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "quarry.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoader_Load(t *testing.T) {
	path := writePlan(t, `version: "1"
schema: general
invocation:
  arguments: ["-c", "main.sw", "-O"]
  environment:
    SDKROOT: /opt/sdk
  toolchain: "swc-6.1-arm64"
jobs:
  - outputs:
      primary: build/main.o
      dependencies: build/main.d
  - outputs:
      primary: build/util.o
`)

	loader := config.NewLoader(nopLogger{})
	plan, err := loader.Load(path)
	require.NoError(t, err)

	require.Len(t, plan.Jobs, 2)
	assert.Equal(t, domain.SchemaGeneral, plan.Schema)
	assert.Equal(t, "build/main.o", plan.Jobs[0].Outputs[domain.KindPrimary])
	assert.Equal(t, "build/main.d", plan.Jobs[0].Outputs[domain.KindDependencies])
	assert.Equal(t, 1, plan.Jobs[1].Index)
	assert.NotEmpty(t, plan.BaseKey)
}

func TestLoader_BaseKeyDeterministic(t *testing.T) {
	content := `version: "1"
invocation:
  arguments: ["-c", "main.sw"]
  environment:
    B: two
    A: one
  toolchain: "swc-6.1"
jobs:
  - outputs:
      primary: main.o
`
	loader := config.NewLoader(nopLogger{})

	plan1, err := loader.Load(writePlan(t, content))
	require.NoError(t, err)
	plan2, err := loader.Load(writePlan(t, content))
	require.NoError(t, err)

	assert.Equal(t, plan1.BaseKey, plan2.BaseKey)
}

func TestLoader_BaseKeySensitiveToInvocation(t *testing.T) {
	base := `version: "1"
invocation:
  arguments: ["-c", "main.sw"]
  toolchain: "swc-6.1"
jobs:
  - outputs:
      primary: main.o
`
	changed := `version: "1"
invocation:
  arguments: ["-c", "main.sw", "-O"]
  toolchain: "swc-6.1"
jobs:
  - outputs:
      primary: main.o
`
	loader := config.NewLoader(nopLogger{})

	plan1, err := loader.Load(writePlan(t, base))
	require.NoError(t, err)
	plan2, err := loader.Load(writePlan(t, changed))
	require.NoError(t, err)

	assert.NotEqual(t, plan1.BaseKey, plan2.BaseKey)
}

func TestLoader_ModuleSchema(t *testing.T) {
	path := writePlan(t, `version: "1"
schema: module
invocation:
  toolchain: "swc-6.1"
jobs:
  - outputs:
      clang-module: mod.pcm
      dependencies: mod.d
`)

	loader := config.NewLoader(nopLogger{})
	plan, err := loader.Load(path)
	require.NoError(t, err)
	assert.Equal(t, domain.SchemaModule, plan.Schema)
}

func TestLoader_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr error
	}{
		{
			name: "unknown kind",
			content: `version: "1"
invocation:
  toolchain: t
jobs:
  - outputs:
      bitcode: a.bc
`,
			wantErr: domain.ErrUnknownKind,
		},
		{
			name: "declared diagnostics",
			content: `version: "1"
invocation:
  toolchain: t
jobs:
  - outputs:
      diagnostics: a.dia
`,
			wantErr: domain.ErrUnknownKind,
		},
		{
			name: "unknown schema",
			content: `version: "1"
schema: exotic
invocation:
  toolchain: t
jobs:
  - outputs:
      primary: a.o
`,
			wantErr: domain.ErrInvalidPlan,
		},
		{
			name: "job without outputs",
			content: `version: "1"
invocation:
  toolchain: t
jobs:
  - outputs: {}
`,
			wantErr: domain.ErrInvalidPlan,
		},
	}

	loader := config.NewLoader(nopLogger{})
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := loader.Load(writePlan(t, tt.content))
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestLoader_MissingFile(t *testing.T) {
	loader := config.NewLoader(nopLogger{})
	_, err := loader.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}
