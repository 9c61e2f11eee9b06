package profilers

import (
	"context"
	"slices"

	"github.com/zoobzio/dossier"
)

// TextColumn profiles a column of free text. Its numeric summary describes
// value lengths.
type TextColumn struct {
	Column
	NumericStats
	Vocab []string // Distinct characters seen, sorted
}

// Class returns "TextColumn".
func (p *TextColumn) Class() string { return "TextColumn" }

// ToDict returns the serialized state of the profiler.
func (p *TextColumn) ToDict() map[string]any {
	d := p.dict()
	p.writeDict(d)
	vocab := make([]any, len(p.Vocab))
	for i, v := range p.Vocab {
		vocab[i] = v
	}
	d["vocab"] = vocab
	return d
}

// Profile returns the text report.
func (p *TextColumn) Profile() map[string]any {
	r := p.profile()
	p.writeReport(r)
	r["vocab"] = slices.Clone(p.Vocab)
	return r
}

// LoadTextColumn reconstructs a TextColumn from its serialized state.
func LoadTextColumn(_ context.Context, data map[string]any) (dossier.ColumnProfiler, error) {
	return load("TextColumn", func() (*TextColumn, error) {
		col, err := loadColumn(data)
		if err != nil {
			return nil, err
		}
		stats, err := loadNumericStats(data)
		if err != nil {
			return nil, err
		}
		vocab, err := dossier.StringSlice(data, "vocab")
		if err != nil {
			return nil, err
		}
		slices.Sort(vocab)
		return &TextColumn{Column: col, NumericStats: stats, Vocab: vocab}, nil
	})
}
