// Package builtin wires every profiler and compiler shipped with dossier
// into a matching pair of sealed registries and decoders.
package builtin

import (
	"fmt"

	"github.com/zoobzio/dossier"
	"github.com/zoobzio/dossier/compilers"
	"github.com/zoobzio/dossier/json"
	"github.com/zoobzio/dossier/profilers"
)

// Decoders holds the profiler and compiler decoders of one application.
type Decoders struct {
	Profilers *dossier.Decoder[dossier.ColumnProfiler]
	Compilers *dossier.Decoder[dossier.Compiler]
}

// New builds, populates and seals a fresh pair of registries and returns
// decoders over them. Decoders use the JSON codec unless opts say otherwise.
// Every call returns registries independent of any other call.
func New(opts ...dossier.DecoderOption) (*Decoders, error) {
	opts = append([]dossier.DecoderOption{dossier.WithCodec(json.New())}, opts...)

	profileReg := dossier.NewRegistry[dossier.ColumnProfiler](dossier.FamilyProfiler)
	if err := profilers.Register(profileReg); err != nil {
		return nil, fmt.Errorf("populate %s registry: %w", profileReg.Family(), err)
	}
	profileReg.Seal()
	profileDec := dossier.NewDecoder(profileReg, opts...)

	compilerReg := dossier.NewRegistry[dossier.Compiler](dossier.FamilyCompiler)
	if err := compilers.Register(compilerReg, profileDec); err != nil {
		return nil, fmt.Errorf("populate %s registry: %w", compilerReg.Family(), err)
	}
	compilerReg.Seal()

	return &Decoders{
		Profilers: profileDec,
		Compilers: dossier.NewDecoder(compilerReg, opts...),
	}, nil
}

// MustNew is like New but panics on error.
func MustNew(opts ...dossier.DecoderOption) *Decoders {
	d, err := New(opts...)
	if err != nil {
		panic(err)
	}
	return d
}
