package profilers

import (
	"context"
	"fmt"

	"github.com/zoobzio/dossier"
)

// NumericStats is the running summary kept by numeric profilers.
type NumericStats struct {
	Min      float64
	Max      float64
	Sum      float64
	Variance float64
	Count    int64 // Values that parsed as numbers
}

// Mean returns Sum/Count, or zero for an empty summary.
func (s NumericStats) Mean() float64 {
	if s.Count == 0 {
		return 0
	}
	return s.Sum / float64(s.Count)
}

func (s NumericStats) writeDict(d map[string]any) {
	d["min"] = s.Min
	d["max"] = s.Max
	d["sum"] = s.Sum
	d["variance"] = s.Variance
	d["match_count"] = s.Count
}

func (s NumericStats) writeReport(r map[string]any) {
	r["min"] = s.Min
	r["max"] = s.Max
	r["sum"] = s.Sum
	r["mean"] = s.Mean()
	r["variance"] = s.Variance
}

func loadNumericStats(data map[string]any) (NumericStats, error) {
	var s NumericStats
	var err error

	if s.Count, err = dossier.OptionalInt(data, "match_count", 0); err != nil {
		return s, err
	}
	if s.Count < 0 {
		return s, fmt.Errorf("match_count %d: %w", s.Count, ErrNegativeCount)
	}
	if s.Min, err = dossier.OptionalFloat(data, "min", 0); err != nil {
		return s, err
	}
	if s.Max, err = dossier.OptionalFloat(data, "max", 0); err != nil {
		return s, err
	}
	if s.Count > 0 && s.Min > s.Max {
		return s, fmt.Errorf("min %v > max %v: %w", s.Min, s.Max, ErrInvalidRange)
	}
	if s.Sum, err = dossier.OptionalFloat(data, "sum", 0); err != nil {
		return s, err
	}
	if s.Variance, err = dossier.OptionalFloat(data, "variance", 0); err != nil {
		return s, err
	}
	return s, nil
}

// IntColumn profiles a column of integers.
type IntColumn struct {
	Column
	NumericStats
}

// Class returns "IntColumn".
func (p *IntColumn) Class() string { return "IntColumn" }

// ToDict returns the serialized state of the profiler.
func (p *IntColumn) ToDict() map[string]any {
	d := p.dict()
	p.writeDict(d)
	return d
}

// Profile returns the numeric report.
func (p *IntColumn) Profile() map[string]any {
	r := p.profile()
	p.writeReport(r)
	return r
}

// LoadIntColumn reconstructs an IntColumn from its serialized state.
func LoadIntColumn(_ context.Context, data map[string]any) (dossier.ColumnProfiler, error) {
	return load("IntColumn", func() (*IntColumn, error) {
		col, err := loadColumn(data)
		if err != nil {
			return nil, err
		}
		stats, err := loadNumericStats(data)
		if err != nil {
			return nil, err
		}
		return &IntColumn{Column: col, NumericStats: stats}, nil
	})
}

// FloatColumn profiles a column of real numbers.
type FloatColumn struct {
	Column
	NumericStats
	Precision int64 // Largest count of significant digits seen
}

// Class returns "FloatColumn".
func (p *FloatColumn) Class() string { return "FloatColumn" }

// ToDict returns the serialized state of the profiler.
func (p *FloatColumn) ToDict() map[string]any {
	d := p.dict()
	p.writeDict(d)
	d["precision"] = p.Precision
	return d
}

// Profile returns the numeric report.
func (p *FloatColumn) Profile() map[string]any {
	r := p.profile()
	p.writeReport(r)
	r["precision"] = p.Precision
	return r
}

// LoadFloatColumn reconstructs a FloatColumn from its serialized state.
func LoadFloatColumn(_ context.Context, data map[string]any) (dossier.ColumnProfiler, error) {
	return load("FloatColumn", func() (*FloatColumn, error) {
		col, err := loadColumn(data)
		if err != nil {
			return nil, err
		}
		stats, err := loadNumericStats(data)
		if err != nil {
			return nil, err
		}
		precision, err := dossier.OptionalInt(data, "precision", 0)
		if err != nil {
			return nil, err
		}
		return &FloatColumn{Column: col, NumericStats: stats, Precision: precision}, nil
	})
}
