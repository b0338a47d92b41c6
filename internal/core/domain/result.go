package domain

import (
	"encoding/binary"
	"slices"

	"go.trai.ch/zerr"
)

// SchemaTag selects the on-disk layout of a cache result. It is fixed once
// per backend and applies to every job the backend manages.
type SchemaTag uint8

const (
	// SchemaGeneral encodes every completed (kind, ref) pair as an
	// open-ended ordered list. Used for all action types except module
	// emission.
	SchemaGeneral SchemaTag = iota
	// SchemaModule is the restricted, importer-compatible layout used when
	// the backend's action type is module emission. It packs exactly a main
	// output, an optional serialized diagnostics blob, and an optional
	// dependency list into three fixed slots.
	SchemaModule
)

// String returns the stable name of the schema tag.
func (s SchemaTag) String() string {
	switch s {
	case SchemaModule:
		return "module"
	case SchemaGeneral:
		return "general"
	default:
		return "unknown"
	}
}

// ParseSchemaTag resolves a schema tag from its stable name.
func ParseSchemaTag(name string) (SchemaTag, error) {
	switch name {
	case "general", "":
		return SchemaGeneral, nil
	case "module":
		return SchemaModule, nil
	default:
		return 0, zerr.With(zerr.Wrap(ErrInvalidPlan, "unknown result schema"), "schema", name)
	}
}

// ResultOutput is one completed artifact of a job: its kind and the content
// reference the store returned for its bytes.
type ResultOutput struct {
	Kind ArtifactKind
	Ref  ContentRef
}

// CacheResult is the aggregate record registered in the action cache for a
// completed job. It is built once, encoded deterministically, and never
// mutated.
type CacheResult struct {
	Schema  SchemaTag
	Outputs []ResultOutput // sorted by kind
}

// The two layouts are deliberately incompatible; the leading byte pins which
// one a record uses.
const (
	generalMagic = 0x01
	moduleMagic  = 0x02
)

// Slot order of the module schema.
const (
	slotMain = iota
	slotSerializedDiagnostics
	slotDependencies
	moduleSlotCount
)

// BuildResult assembles a CacheResult from a job's completed outputs.
// Outputs are sorted by the fixed kind order, so the result is independent of
// arrival order. For SchemaModule, any kind outside the restricted set fails
// with ErrSchemaViolation.
func BuildResult(schema SchemaTag, outputs map[ArtifactKind]ContentRef) (*CacheResult, error) {
	sorted := make([]ResultOutput, 0, len(outputs))
	for kind, ref := range outputs {
		sorted = append(sorted, ResultOutput{Kind: kind, Ref: ref})
	}
	slices.SortFunc(sorted, func(a, b ResultOutput) int {
		return int(a.Kind) - int(b.Kind)
	})

	if schema == SchemaModule {
		if err := checkModuleSchema(sorted); err != nil {
			return nil, err
		}
	}

	return &CacheResult{Schema: schema, Outputs: sorted}, nil
}

// checkModuleSchema enforces the restricted kind set. Both KindPrimary and
// KindClangModule land in the main slot, so declaring both is a violation.
func checkModuleSchema(outputs []ResultOutput) error {
	haveMain := false
	for _, out := range outputs {
		switch out.Kind {
		case KindPrimary, KindClangModule:
			if haveMain {
				return zerr.Wrap(ErrSchemaViolation, "module schema admits a single main output")
			}
			haveMain = true
		case KindCachedDiagnostics, KindDependencies:
		default:
			return zerr.With(zerr.Wrap(ErrSchemaViolation, "kind has no slot in the module schema"), "kind", out.Kind.String())
		}
	}
	return nil
}

// Encode renders the result to its canonical bytes. Equal results encode to
// equal bytes, which is what keeps content references to records stable
// across rebuilds.
func (r *CacheResult) Encode() []byte {
	if r.Schema == SchemaModule {
		return r.encodeModule()
	}
	return r.encodeGeneral()
}

func (r *CacheResult) encodeGeneral() []byte {
	buf := []byte{generalMagic}
	buf = binary.AppendUvarint(buf, uint64(len(r.Outputs)))
	for _, out := range r.Outputs {
		buf = append(buf, byte(out.Kind))
		buf = appendRef(buf, out.Ref)
	}
	return buf
}

func (r *CacheResult) encodeModule() []byte {
	var slots [moduleSlotCount]ContentRef
	var present [moduleSlotCount]bool
	for _, out := range r.Outputs {
		slot := moduleSlotFor(out.Kind)
		slots[slot] = out.Ref
		present[slot] = true
	}

	buf := []byte{moduleMagic}
	for i := range moduleSlotCount {
		if !present[i] {
			buf = append(buf, 0)
			continue
		}
		buf = append(buf, 1)
		buf = appendRef(buf, slots[i])
	}
	return buf
}

func moduleSlotFor(kind ArtifactKind) int {
	switch kind {
	case KindCachedDiagnostics:
		return slotSerializedDiagnostics
	case KindDependencies:
		return slotDependencies
	default:
		return slotMain
	}
}

func appendRef(buf []byte, ref ContentRef) []byte {
	buf = binary.AppendUvarint(buf, uint64(len(ref)))
	return append(buf, ref...)
}

// DecodeResult parses a record previously produced by Encode. It exists for
// cache consumers; the backend itself only ever writes records.
func DecodeResult(data []byte) (*CacheResult, error) {
	if len(data) == 0 {
		return nil, zerr.Wrap(ErrMalformedResult, "empty record")
	}
	switch data[0] {
	case generalMagic:
		return decodeGeneral(data[1:])
	case moduleMagic:
		return decodeModule(data[1:])
	default:
		return nil, zerr.With(zerr.Wrap(ErrMalformedResult, "unknown schema magic"), "magic", int(data[0]))
	}
}

func decodeGeneral(data []byte) (*CacheResult, error) {
	count, n := binary.Uvarint(data)
	if n <= 0 {
		return nil, zerr.Wrap(ErrMalformedResult, "truncated output count")
	}
	data = data[n:]

	outputs := make([]ResultOutput, 0, count)
	for range count {
		if len(data) == 0 {
			return nil, zerr.Wrap(ErrMalformedResult, "truncated output entry")
		}
		kind := ArtifactKind(data[0])
		ref, rest, err := readRef(data[1:])
		if err != nil {
			return nil, err
		}
		outputs = append(outputs, ResultOutput{Kind: kind, Ref: ref})
		data = rest
	}
	return &CacheResult{Schema: SchemaGeneral, Outputs: outputs}, nil
}

func decodeModule(data []byte) (*CacheResult, error) {
	slotKinds := [moduleSlotCount]ArtifactKind{KindPrimary, KindCachedDiagnostics, KindDependencies}

	var outputs []ResultOutput
	for i := range moduleSlotCount {
		if len(data) == 0 {
			return nil, zerr.Wrap(ErrMalformedResult, "truncated slot marker")
		}
		marker := data[0]
		data = data[1:]
		if marker == 0 {
			continue
		}
		ref, rest, err := readRef(data)
		if err != nil {
			return nil, err
		}
		outputs = append(outputs, ResultOutput{Kind: slotKinds[i], Ref: ref})
		data = rest
	}
	res := &CacheResult{Schema: SchemaModule, Outputs: outputs}
	slices.SortFunc(res.Outputs, func(a, b ResultOutput) int {
		return int(a.Kind) - int(b.Kind)
	})
	return res, nil
}

func readRef(data []byte) (ContentRef, []byte, error) {
	size, n := binary.Uvarint(data)
	if n <= 0 || uint64(len(data)-n) < size {
		return "", nil, zerr.Wrap(ErrMalformedResult, "truncated content reference")
	}
	return ContentRef(data[n : n+int(size)]), data[n+int(size):], nil
}
