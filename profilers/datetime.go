package profilers

import (
	"context"
	"maps"

	"github.com/zoobzio/dossier"
)

// DateTimeColumn profiles a column of timestamps.
type DateTimeColumn struct {
	Column
	Min         string           // Earliest value as it appeared in the column
	Max         string           // Latest value as it appeared in the column
	DateFormats map[string]int64 // Matches per detected layout
}

// Class returns "DateTimeColumn".
func (p *DateTimeColumn) Class() string { return "DateTimeColumn" }

// ToDict returns the serialized state of the profiler.
func (p *DateTimeColumn) ToDict() map[string]any {
	d := p.dict()
	d["min"] = p.Min
	d["max"] = p.Max
	formats := make(map[string]any, len(p.DateFormats))
	for k, v := range p.DateFormats {
		formats[k] = v
	}
	d["date_formats"] = formats
	return d
}

// Profile returns the timestamp report.
func (p *DateTimeColumn) Profile() map[string]any {
	r := p.profile()
	r["min"] = p.Min
	r["max"] = p.Max
	r["format"] = maps.Clone(p.DateFormats)
	return r
}

// LoadDateTimeColumn reconstructs a DateTimeColumn from its serialized
// state.
func LoadDateTimeColumn(_ context.Context, data map[string]any) (dossier.ColumnProfiler, error) {
	return load("DateTimeColumn", func() (*DateTimeColumn, error) {
		col, err := loadColumn(data)
		if err != nil {
			return nil, err
		}
		p := &DateTimeColumn{Column: col}
		if p.Min, err = dossier.OptionalString(data, "min", ""); err != nil {
			return nil, err
		}
		if p.Max, err = dossier.OptionalString(data, "max", ""); err != nil {
			return nil, err
		}
		if p.DateFormats, err = dossier.IntMap(data, "date_formats"); err != nil {
			return nil, err
		}
		return p, nil
	})
}
