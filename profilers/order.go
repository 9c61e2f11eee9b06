package profilers

import (
	"context"
	"fmt"

	"github.com/zoobzio/dossier"
)

// Order describes how the values of a column are sorted.
type Order string

const (
	OrderAscending  Order = "ascending"
	OrderDescending Order = "descending"
	OrderConstant   Order = "constant value"
	OrderRandom     Order = "random"
)

var validOrders = map[Order]bool{
	OrderAscending:  true,
	OrderDescending: true,
	OrderConstant:   true,
	OrderRandom:     true,
}

// OrderColumn records the sort order observed in a column.
type OrderColumn struct {
	Column
	Order      Order
	FirstValue string
	LastValue  string
}

// Class returns "OrderColumn".
func (p *OrderColumn) Class() string { return "OrderColumn" }

// ToDict returns the serialized state of the profiler.
func (p *OrderColumn) ToDict() map[string]any {
	d := p.dict()
	d["order"] = string(p.Order)
	d["first_value"] = p.FirstValue
	d["last_value"] = p.LastValue
	return d
}

// Profile returns the order report.
func (p *OrderColumn) Profile() map[string]any {
	r := p.profile()
	r["order"] = string(p.Order)
	return r
}

// LoadOrderColumn reconstructs an OrderColumn from its serialized state.
func LoadOrderColumn(_ context.Context, data map[string]any) (dossier.ColumnProfiler, error) {
	return load("OrderColumn", func() (*OrderColumn, error) {
		col, err := loadColumn(data)
		if err != nil {
			return nil, err
		}
		p := &OrderColumn{Column: col}

		order, err := dossier.String(data, "order")
		if err != nil {
			return nil, err
		}
		p.Order = Order(order)
		if !validOrders[p.Order] {
			return nil, fmt.Errorf("%q: %w", order, ErrInvalidOrder)
		}

		if p.FirstValue, err = dossier.OptionalString(data, "first_value", ""); err != nil {
			return nil, err
		}
		if p.LastValue, err = dossier.OptionalString(data, "last_value", ""); err != nil {
			return nil, err
		}
		return p, nil
	})
}
