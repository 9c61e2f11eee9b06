// Package testing provides test utilities for dossier.
package testing

import (
	"context"
	"sync/atomic"
	stdtesting "testing"

	"github.com/zoobzio/dossier"
	"github.com/zoobzio/dossier/compilers"
	"github.com/zoobzio/dossier/profilers"
)

// Foo is a minimal column profiler whose loader requires an integer "x".
type Foo struct {
	X int64
}

// Class implements dossier.Serializable.
func (f *Foo) Class() string { return "Foo" }

// ToDict implements dossier.Serializable.
func (f *Foo) ToDict() map[string]any { return map[string]any{"x": f.X} }

// ColumnName implements dossier.ColumnProfiler.
func (f *Foo) ColumnName() string { return "foo" }

// Profile implements dossier.ColumnProfiler.
func (f *Foo) Profile() map[string]any { return map[string]any{"x": f.X} }

// LoadFoo reconstructs a Foo. A payload without "x" fails with the
// accessor's *dossier.FieldError.
func LoadFoo(_ context.Context, data map[string]any) (dossier.ColumnProfiler, error) {
	x, err := dossier.Int(data, "x")
	if err != nil {
		return nil, err
	}
	return &Foo{X: x}, nil
}

// CountingLoader wraps a loader and counts its invocations.
type CountingLoader[T any] struct {
	Loader dossier.Loader[T]
	calls  atomic.Int64
}

// Load invokes the wrapped loader.
func (c *CountingLoader[T]) Load(ctx context.Context, data map[string]any) (T, error) {
	c.calls.Add(1)
	return c.Loader(ctx, data)
}

// Calls returns how many times Load ran.
func (c *CountingLoader[T]) Calls() int64 {
	return c.calls.Load()
}

// FooRegistry returns an unsealed profiler registry holding only Foo.
func FooRegistry(tb stdtesting.TB) *dossier.Registry[dossier.ColumnProfiler] {
	tb.Helper()
	reg := dossier.NewRegistry[dossier.ColumnProfiler](dossier.FamilyProfiler)
	if err := reg.Register("Foo", LoadFoo); err != nil {
		tb.Fatalf("register Foo: %v", err)
	}
	return reg
}

// SampleProfilers returns one populated instance of every profiler in the
// profilers package.
func SampleProfilers() []dossier.ColumnProfiler {
	col := func(name string, idx int64) profilers.Column {
		return profilers.Column{
			Name:       name,
			ColIndex:   idx,
			SampleSize: 4,
			Times:      map[string]float64{"rows": 0.25},
		}
	}
	stats := profilers.NumericStats{Min: 1, Max: 9.5, Sum: 20, Variance: 2.5, Count: 4}

	return []dossier.ColumnProfiler{
		&profilers.OrderColumn{Column: col("id", 0), Order: profilers.OrderAscending, FirstValue: "1", LastValue: "4"},
		&profilers.CategoricalColumn{Column: col("state", 1), Categories: map[string]int64{"CA": 3, "NY": 1}},
		&profilers.IntColumn{Column: col("age", 2), NumericStats: stats},
		&profilers.FloatColumn{Column: col("score", 3), NumericStats: stats, Precision: 3},
		&profilers.TextColumn{Column: col("note", 4), NumericStats: stats, Vocab: []string{"a", "b", "c"}},
		&profilers.DateTimeColumn{Column: col("seen", 5), Min: "Jan 02 2024", Max: "Mar 04 2024", DateFormats: map[string]int64{"%b %d %Y": 4}},
		&profilers.DataLabelerColumn{
			Column:           col("contact", 6),
			LabelerName:      "structured",
			RankDistribution: map[string]int64{"EMAIL": 3, "PHONE": 1},
			SumPredictions:   map[string]float64{"EMAIL": 2.75, "PHONE": 1.25},
		},
	}
}

// SampleCompilers returns one populated instance of every compiler in the
// compilers package, built from SampleProfilers.
func SampleCompilers() []dossier.Compiler {
	p := SampleProfilers()
	return []dossier.Compiler{
		compilers.NewColumnStatsProfileCompiler("state", p[0], p[1]),
		compilers.NewColumnPrimitiveTypeProfileCompiler("age", p[2], p[3], p[4], p[5]),
		compilers.NewColumnDataLabelerCompiler("contact", p[6]),
	}
}
