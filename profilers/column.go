// Package profilers provides the column profilers that can be reconstructed
// from envelopes.
//
// Each profiler holds the state its encoder writes through ToDict and
// exposes a loader accepting exactly that shape. Register wires every
// profiler into a profiler registry.
package profilers

import (
	"fmt"
	"maps"

	"github.com/zoobzio/dossier"
)

// Column is the state shared by every column profiler.
type Column struct {
	Name       string             // Column name
	ColIndex   int64              // Position of the column, -1 when unknown
	SampleSize int64              // Number of values profiled
	Times      map[string]float64 // Seconds spent per profiling step
}

// ColumnName returns the profiled column's name.
func (c *Column) ColumnName() string {
	return c.Name
}

func (c *Column) dict() map[string]any {
	times := make(map[string]any, len(c.Times))
	for k, v := range c.Times {
		times[k] = v
	}
	return map[string]any{
		"name":        c.Name,
		"col_index":   c.ColIndex,
		"sample_size": c.SampleSize,
		"times":       times,
	}
}

func (c *Column) profile() map[string]any {
	return map[string]any{
		"name":        c.Name,
		"sample_size": c.SampleSize,
		"times":       maps.Clone(c.Times),
	}
}

func loadColumn(data map[string]any) (Column, error) {
	var c Column
	var err error

	if c.Name, err = dossier.String(data, "name"); err != nil {
		return c, err
	}
	if c.ColIndex, err = dossier.OptionalInt(data, "col_index", -1); err != nil {
		return c, err
	}
	if c.SampleSize, err = dossier.OptionalInt(data, "sample_size", 0); err != nil {
		return c, err
	}
	if c.SampleSize < 0 {
		return c, fmt.Errorf("sample_size %d: %w", c.SampleSize, ErrNegativeCount)
	}
	c.Times = map[string]float64{}
	if _, ok := data["times"]; ok {
		if c.Times, err = dossier.FloatMap(data, "times"); err != nil {
			return c, err
		}
	}
	return c, nil
}

// Register adds every profiler in this package to reg under its class name.
func Register(reg *dossier.Registry[dossier.ColumnProfiler]) error {
	loaders := map[string]dossier.Loader[dossier.ColumnProfiler]{
		dossier.ClassName[OrderColumn]():       LoadOrderColumn,
		dossier.ClassName[CategoricalColumn](): LoadCategoricalColumn,
		dossier.ClassName[IntColumn]():         LoadIntColumn,
		dossier.ClassName[FloatColumn]():       LoadFloatColumn,
		dossier.ClassName[TextColumn]():        LoadTextColumn,
		dossier.ClassName[DateTimeColumn]():    LoadDateTimeColumn,
		dossier.ClassName[DataLabelerColumn](): LoadDataLabelerColumn,
	}
	for name, loader := range loaders {
		if err := reg.Register(name, loader); err != nil {
			return fmt.Errorf("register %s: %w", name, err)
		}
	}
	return nil
}

// load runs fn and prefixes its error with the class being loaded.
func load[T dossier.ColumnProfiler](class string, fn func() (T, error)) (dossier.ColumnProfiler, error) {
	p, err := fn()
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", class, err)
	}
	return p, nil
}
