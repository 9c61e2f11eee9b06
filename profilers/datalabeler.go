package profilers

import (
	"context"
	"fmt"
	"maps"

	"github.com/zoobzio/dossier"
)

// DataLabelerColumn records the entity labels a model assigned to a
// column's values.
type DataLabelerColumn struct {
	Column
	LabelerName      string           // Name of the labeling model
	RankDistribution map[string]int64 // Times each label ranked first
	SumPredictions   map[string]float64
}

// Class returns "DataLabelerColumn".
func (p *DataLabelerColumn) Class() string { return "DataLabelerColumn" }

// ToDict returns the serialized state of the profiler.
func (p *DataLabelerColumn) ToDict() map[string]any {
	d := p.dict()
	d["data_labeler"] = p.LabelerName
	ranks := make(map[string]any, len(p.RankDistribution))
	for k, v := range p.RankDistribution {
		ranks[k] = v
	}
	d["rank_distribution"] = ranks
	sums := make(map[string]any, len(p.SumPredictions))
	for k, v := range p.SumPredictions {
		sums[k] = v
	}
	d["sum_predictions"] = sums
	return d
}

// Profile returns the label report.
func (p *DataLabelerColumn) Profile() map[string]any {
	r := p.profile()
	r["data_label"] = p.TopLabel()
	r["rank_distribution"] = maps.Clone(p.RankDistribution)
	return r
}

// TopLabel returns the label ranked first most often. Ties resolve to the
// lexically smallest label.
func (p *DataLabelerColumn) TopLabel() string {
	var top string
	var best int64 = -1
	for label, n := range p.RankDistribution {
		if n > best || (n == best && label < top) {
			top, best = label, n
		}
	}
	return top
}

// LoadDataLabelerColumn reconstructs a DataLabelerColumn from its
// serialized state.
func LoadDataLabelerColumn(_ context.Context, data map[string]any) (dossier.ColumnProfiler, error) {
	return load("DataLabelerColumn", func() (*DataLabelerColumn, error) {
		col, err := loadColumn(data)
		if err != nil {
			return nil, err
		}
		p := &DataLabelerColumn{Column: col}
		if p.LabelerName, err = dossier.String(data, "data_labeler"); err != nil {
			return nil, err
		}
		if p.RankDistribution, err = dossier.IntMap(data, "rank_distribution"); err != nil {
			return nil, err
		}
		for label, n := range p.RankDistribution {
			if n < 0 {
				return nil, fmt.Errorf("label %q rank count %d: %w", label, n, ErrNegativeCount)
			}
		}
		if p.SumPredictions, err = dossier.FloatMap(data, "sum_predictions"); err != nil {
			return nil, err
		}
		return p, nil
	})
}
