package config

// Planfile represents the structure of the quarry.yaml plan file.
type Planfile struct {
	Version    string        `yaml:"version"`
	Schema     string        `yaml:"schema"`
	Invocation InvocationDTO `yaml:"invocation"`
	Jobs       []JobDTO      `yaml:"jobs"`
}

// InvocationDTO declares the build-wide invariant inputs the base key is
// derived from.
type InvocationDTO struct {
	Arguments   []string          `yaml:"arguments"`
	Environment map[string]string `yaml:"environment"`
	Toolchain   string            `yaml:"toolchain"`
}

// JobDTO declares one job's expected outputs, keyed by artifact kind name.
type JobDTO struct {
	Outputs map[string]string `yaml:"outputs"`
}
