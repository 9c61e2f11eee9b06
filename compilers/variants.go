package compilers

import (
	"context"
	"fmt"

	"github.com/zoobzio/dossier"
	"github.com/zoobzio/dossier/profilers"
)

// ColumnPrimitiveTypeProfileCompiler aggregates the type-detecting
// profilers of a column.
type ColumnPrimitiveTypeProfileCompiler struct {
	compiled
}

// NewColumnPrimitiveTypeProfileCompiler compiles profiles for column name.
func NewColumnPrimitiveTypeProfileCompiler(name string, profiles ...dossier.ColumnProfiler) *ColumnPrimitiveTypeProfileCompiler {
	return &ColumnPrimitiveTypeProfileCompiler{compiled: newCompiled(name, profiles)}
}

// Class returns "ColumnPrimitiveTypeProfileCompiler".
func (c *ColumnPrimitiveTypeProfileCompiler) Class() string {
	return "ColumnPrimitiveTypeProfileCompiler"
}

// ToDict returns the serialized state of the compiler.
func (c *ColumnPrimitiveTypeProfileCompiler) ToDict() map[string]any { return c.dict() }

var primitiveTypeProfilers = allow(
	dossier.ClassName[profilers.DateTimeColumn](),
	dossier.ClassName[profilers.IntColumn](),
	dossier.ClassName[profilers.FloatColumn](),
	dossier.ClassName[profilers.TextColumn](),
)

// PrimitiveTypeLoader returns the loader of ColumnPrimitiveTypeProfileCompiler.
func PrimitiveTypeLoader(profiles *dossier.Decoder[dossier.ColumnProfiler]) dossier.Loader[dossier.Compiler] {
	return func(ctx context.Context, data map[string]any) (dossier.Compiler, error) {
		c, err := loadCompiled(ctx, data, profiles, primitiveTypeProfilers)
		if err != nil {
			return nil, fmt.Errorf("load ColumnPrimitiveTypeProfileCompiler: %w", err)
		}
		return &ColumnPrimitiveTypeProfileCompiler{compiled: c}, nil
	}
}

// ColumnStatsProfileCompiler aggregates the order and category profilers of
// a column.
type ColumnStatsProfileCompiler struct {
	compiled
}

// NewColumnStatsProfileCompiler compiles profiles for column name.
func NewColumnStatsProfileCompiler(name string, profiles ...dossier.ColumnProfiler) *ColumnStatsProfileCompiler {
	return &ColumnStatsProfileCompiler{compiled: newCompiled(name, profiles)}
}

// Class returns "ColumnStatsProfileCompiler".
func (c *ColumnStatsProfileCompiler) Class() string { return "ColumnStatsProfileCompiler" }

// ToDict returns the serialized state of the compiler.
func (c *ColumnStatsProfileCompiler) ToDict() map[string]any { return c.dict() }

var statsProfilers = allow(
	dossier.ClassName[profilers.OrderColumn](),
	dossier.ClassName[profilers.CategoricalColumn](),
)

// StatsLoader returns the loader of ColumnStatsProfileCompiler.
func StatsLoader(profiles *dossier.Decoder[dossier.ColumnProfiler]) dossier.Loader[dossier.Compiler] {
	return func(ctx context.Context, data map[string]any) (dossier.Compiler, error) {
		c, err := loadCompiled(ctx, data, profiles, statsProfilers)
		if err != nil {
			return nil, fmt.Errorf("load ColumnStatsProfileCompiler: %w", err)
		}
		return &ColumnStatsProfileCompiler{compiled: c}, nil
	}
}

// ColumnDataLabelerCompiler aggregates the labeling profiler of a column.
type ColumnDataLabelerCompiler struct {
	compiled
}

// NewColumnDataLabelerCompiler compiles profiles for column name.
func NewColumnDataLabelerCompiler(name string, profiles ...dossier.ColumnProfiler) *ColumnDataLabelerCompiler {
	return &ColumnDataLabelerCompiler{compiled: newCompiled(name, profiles)}
}

// Class returns "ColumnDataLabelerCompiler".
func (c *ColumnDataLabelerCompiler) Class() string { return "ColumnDataLabelerCompiler" }

// ToDict returns the serialized state of the compiler.
func (c *ColumnDataLabelerCompiler) ToDict() map[string]any { return c.dict() }

var dataLabelerProfilers = allow(
	dossier.ClassName[profilers.DataLabelerColumn](),
)

// DataLabelerLoader returns the loader of ColumnDataLabelerCompiler.
func DataLabelerLoader(profiles *dossier.Decoder[dossier.ColumnProfiler]) dossier.Loader[dossier.Compiler] {
	return func(ctx context.Context, data map[string]any) (dossier.Compiler, error) {
		c, err := loadCompiled(ctx, data, profiles, dataLabelerProfilers)
		if err != nil {
			return nil, fmt.Errorf("load ColumnDataLabelerCompiler: %w", err)
		}
		return &ColumnDataLabelerCompiler{compiled: c}, nil
	}
}
