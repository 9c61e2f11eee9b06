package profilers

import (
	"context"
	"fmt"
	"maps"

	"github.com/zoobzio/dossier"
)

// CategoricalColumn records the distinct values of a column and how often
// each occurs.
type CategoricalColumn struct {
	Column
	Categories map[string]int64
}

// Class returns "CategoricalColumn".
func (p *CategoricalColumn) Class() string { return "CategoricalColumn" }

// ToDict returns the serialized state of the profiler.
func (p *CategoricalColumn) ToDict() map[string]any {
	d := p.dict()
	categories := make(map[string]any, len(p.Categories))
	for k, v := range p.Categories {
		categories[k] = v
	}
	d["categories"] = categories
	return d
}

// Profile returns the category report.
func (p *CategoricalColumn) Profile() map[string]any {
	r := p.profile()
	r["unique_count"] = len(p.Categories)
	r["categorical_count"] = maps.Clone(p.Categories)
	return r
}

// LoadCategoricalColumn reconstructs a CategoricalColumn from its
// serialized state.
func LoadCategoricalColumn(_ context.Context, data map[string]any) (dossier.ColumnProfiler, error) {
	return load("CategoricalColumn", func() (*CategoricalColumn, error) {
		col, err := loadColumn(data)
		if err != nil {
			return nil, err
		}
		categories, err := dossier.IntMap(data, "categories")
		if err != nil {
			return nil, err
		}
		for k, n := range categories {
			if n < 0 {
				return nil, fmt.Errorf("category %q count %d: %w", k, n, ErrNegativeCount)
			}
		}
		return &CategoricalColumn{Column: col, Categories: categories}, nil
	})
}
