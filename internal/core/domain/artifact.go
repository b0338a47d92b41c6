// Package domain contains the core domain models for the compilation-output
// caching backend: artifact kinds, jobs, plans, and the encoded cache result.
package domain

import "go.trai.ch/zerr"

// ArtifactKind names the semantic role of one compiler output.
//
// The declaration order is the fixed total order used when encoding a job's
// completed outputs. Encoding always sorts by this order, so the bytes of a
// cache result never depend on the order in which outputs arrived.
type ArtifactKind uint8

const (
	// KindPrimary is the principal output of a job (object file, module
	// binary in module-emission mode, and so on).
	KindPrimary ArtifactKind = iota
	// KindModuleDoc is the module documentation emitted alongside the
	// principal output.
	KindModuleDoc
	// KindClangModule is a clang module file produced for an importing
	// compilation.
	KindClangModule
	// KindDependencies is the make-style dependency list.
	KindDependencies
	// KindTypeRefs is the type reference manifest used by indexing tools.
	KindTypeRefs
	// KindCachedDiagnostics is the serialized diagnostics blob that is
	// replayed on a cache hit.
	KindCachedDiagnostics
	// KindDiagnostics is the live diagnostics stream. It is a pseudo-kind:
	// never declared by a plan, never stored, and never part of a job's
	// completeness check.
	KindDiagnostics
)

var kindNames = map[ArtifactKind]string{
	KindPrimary:           "primary",
	KindModuleDoc:         "module-doc",
	KindClangModule:       "clang-module",
	KindDependencies:      "dependencies",
	KindTypeRefs:          "type-refs",
	KindCachedDiagnostics: "cached-diagnostics",
	KindDiagnostics:       "diagnostics",
}

var kindsByName = func() map[string]ArtifactKind {
	m := make(map[string]ArtifactKind, len(kindNames))
	for k, n := range kindNames {
		m[n] = k
	}
	return m
}()

// String returns the stable name of the kind.
func (k ArtifactKind) String() string {
	if n, ok := kindNames[k]; ok {
		return n
	}
	return "unknown"
}

// Cacheable reports whether outputs of this kind flow into the content store.
// The live diagnostics stream bypasses the store entirely.
func (k ArtifactKind) Cacheable() bool {
	return k != KindDiagnostics
}

// ParseArtifactKind resolves a kind from its stable name.
// The diagnostics pseudo-kind is not declarable and is rejected here.
func ParseArtifactKind(name string) (ArtifactKind, error) {
	k, ok := kindsByName[name]
	if !ok {
		return 0, zerr.With(ErrUnknownKind, "kind", name)
	}
	if k == KindDiagnostics {
		return 0, zerr.With(zerr.Wrap(ErrUnknownKind, "diagnostics cannot be declared as a plan output"), "kind", name)
	}
	return k, nil
}
