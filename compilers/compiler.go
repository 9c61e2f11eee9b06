// Package compilers provides the profiler aggregators that can be
// reconstructed from envelopes.
//
// A compiler's payload nests one profiler envelope per compiled profiler:
//
//	{
//	    "name": "age",
//	    "_profiles": {
//	        "IntColumn": {"class": "IntColumn", "data": {...}}
//	    }
//	}
//
// Nested envelopes are resolved through a profiler decoder handed to
// Register, so this package never reaches for a shared registry.
package compilers

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"sort"

	"github.com/zoobzio/dossier"
)

// ErrProfilerNotAllowed indicates a nested profiler the compiler does not
// aggregate.
var ErrProfilerNotAllowed = errors.New("profiler not allowed")

// ErrProfileKeyMismatch indicates a nested profiler stored under a key other
// than its own class name.
var ErrProfileKeyMismatch = errors.New("profile key mismatch")

// compiled is the state shared by every compiler.
type compiled struct {
	name     string
	profiles map[string]dossier.ColumnProfiler
}

// ColumnName returns the name of the aggregated column.
func (c *compiled) ColumnName() string {
	return c.name
}

// Profiles returns the compiled profilers keyed by class name.
// The returned map is a copy.
func (c *compiled) Profiles() map[string]dossier.ColumnProfiler {
	return maps.Clone(c.profiles)
}

// Profile returns the profiler compiled under class.
func (c *compiled) Profile(class string) (dossier.ColumnProfiler, bool) {
	p, ok := c.profiles[class]
	return p, ok
}

// Classes returns the compiled profiler classes in sorted order.
func (c *compiled) Classes() []string {
	classes := make([]string, 0, len(c.profiles))
	for class := range c.profiles {
		classes = append(classes, class)
	}
	sort.Strings(classes)
	return classes
}

// Report merges the profile of every compiled profiler.
// Later classes in sorted order win on key collisions.
func (c *compiled) Report() map[string]any {
	report := map[string]any{}
	for _, class := range c.Classes() {
		maps.Copy(report, c.profiles[class].Profile())
	}
	return report
}

func (c *compiled) dict() map[string]any {
	profiles := make(map[string]any, len(c.profiles))
	for class, p := range c.profiles {
		profiles[class] = dossier.Wrap(p).Map()
	}
	return map[string]any{
		"name":      c.name,
		"_profiles": profiles,
	}
}

func newCompiled(name string, profiles []dossier.ColumnProfiler) compiled {
	c := compiled{name: name, profiles: make(map[string]dossier.ColumnProfiler, len(profiles))}
	for _, p := range profiles {
		c.profiles[p.Class()] = p
	}
	return c
}

// loadCompiled reads the shared compiler state, decoding each nested
// profiler envelope with profiles. Only classes in allowed are accepted.
func loadCompiled(ctx context.Context, data map[string]any, profiles *dossier.Decoder[dossier.ColumnProfiler], allowed map[string]bool) (compiled, error) {
	var c compiled
	var err error

	if c.name, err = dossier.OptionalString(data, "name", ""); err != nil {
		return c, err
	}

	nested, err := dossier.Map(data, "_profiles")
	if err != nil {
		return c, err
	}

	c.profiles = make(map[string]dossier.ColumnProfiler, len(nested))
	for key := range nested {
		if !allowed[key] {
			return c, fmt.Errorf("%s: %w", key, ErrProfilerNotAllowed)
		}
		env, err := dossier.Map(nested, key)
		if err != nil {
			return c, err
		}
		p, err := profiles.LoadMap(ctx, env)
		if err != nil {
			return c, err
		}
		if p.Class() != key {
			return c, fmt.Errorf("%s holds %s: %w", key, p.Class(), ErrProfileKeyMismatch)
		}
		c.profiles[key] = p
	}
	return c, nil
}

// Register adds every compiler in this package to reg under its class name.
// Nested profilers are decoded through profiles.
func Register(reg *dossier.Registry[dossier.Compiler], profiles *dossier.Decoder[dossier.ColumnProfiler]) error {
	loaders := map[string]dossier.Loader[dossier.Compiler]{
		dossier.ClassName[ColumnPrimitiveTypeProfileCompiler](): PrimitiveTypeLoader(profiles),
		dossier.ClassName[ColumnStatsProfileCompiler]():         StatsLoader(profiles),
		dossier.ClassName[ColumnDataLabelerCompiler]():          DataLabelerLoader(profiles),
	}
	for name, loader := range loaders {
		if err := reg.Register(name, loader); err != nil {
			return fmt.Errorf("register %s: %w", name, err)
		}
	}
	return nil
}

func allow(classes ...string) map[string]bool {
	m := make(map[string]bool, len(classes))
	for _, c := range classes {
		m[c] = true
	}
	return m
}
