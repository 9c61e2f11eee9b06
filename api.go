// Package dossier reconstructs column profilers and compilers from their
// serialized envelopes.
//
// A serialized profile component is a two-field record naming the concrete
// type and carrying that type's own state:
//
//	{
//	    "class": "CategoricalColumn",
//	    "data":  {"name": "state", "categories": {"CA": 3, "NY": 1}}
//	}
//
// The package maps class names to loaders through an explicit Registry,
// one per family, and dispatches envelopes to them through a Decoder.
//
// # Families
//
// Two families of serializable types are served:
//
//   - FamilyProfiler: column profilers, analyzers of a single column
//   - FamilyCompiler: compilers, aggregators combining several profilers
//
// # Registration
//
// Registries are plain values. Populate them once at startup and seal them
// before handing them to decoders:
//
//	profiles := dossier.NewRegistry[dossier.ColumnProfiler](dossier.FamilyProfiler)
//	profiles.MustRegister("OrderColumn", profilers.LoadOrderColumn)
//	profiles.Seal()
//
//	dec := dossier.NewDecoder(profiles, dossier.WithCodec(json.New()))
//	p, err := dec.Decode(ctx, raw)
//
// The builtin package performs this wiring for every type shipped with the
// module.
//
// # Errors
//
// An unregistered class yields an *UnknownClassError, which matches
// ErrUnknownClass under errors.Is. Errors returned by a loader reach the
// caller unchanged; the decoder neither wraps nor retries them.
//
// # Codec Providers
//
// Envelopes can be decoded from bytes by any Codec. Implementations are
// available as subpackages:
//
//   - json - JSON encoding (application/json)
//   - yaml - YAML encoding (application/yaml)
//   - msgpack - MessagePack encoding (application/msgpack)
package dossier

import "context"

// Family identifies which kind of serializable type a registry holds.
type Family string

const (
	// FamilyProfiler is the family of per-column profilers.
	FamilyProfiler Family = "profiler"

	// FamilyCompiler is the family of profiler aggregators.
	FamilyCompiler Family = "compiler"
)

func (f Family) String() string {
	return string(f)
}

// Serializable is implemented by every type that can be written into an
// envelope.
type Serializable interface {
	// Class returns the name the type is registered under.
	Class() string

	// ToDict returns the type's state as a nested map, the "data" half of
	// its envelope.
	ToDict() map[string]any
}

// ColumnProfiler is the capability set of a reconstructed column profiler.
type ColumnProfiler interface {
	Serializable

	// ColumnName returns the name of the profiled column.
	ColumnName() string

	// Profile returns the report fragment this profiler contributes.
	Profile() map[string]any
}

// Compiler is the capability set of a reconstructed compiler.
type Compiler interface {
	Serializable

	// ColumnName returns the name of the column the compiler aggregates.
	ColumnName() string

	// Profiles returns the compiled profilers keyed by class name.
	Profiles() map[string]ColumnProfiler
}

// Loader reconstructs an instance from the "data" half of an envelope.
// It owns validation of data; its errors are returned to the caller as-is.
type Loader[T any] func(ctx context.Context, data map[string]any) (T, error)
