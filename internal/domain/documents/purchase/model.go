// Package purchase provides the Purchase document.
// Purchases bring equipment into a warehouse and are the append-only
// source of cost basis for valuation.
package purchase

import (
	"context"

	"github.com/salilgupta4/agile-rental-management/internal/core/apperror"
	"github.com/salilgupta4/agile-rental-management/internal/core/entity"
	"github.com/salilgupta4/agile-rental-management/internal/core/types"
	"github.com/salilgupta4/agile-rental-management/internal/domain/gst"
)

// Purchase records equipment bought into a warehouse.
type Purchase struct {
	entity.Document

	// Warehouse is the destination warehouse name
	Warehouse string `db:"warehouse" json:"warehouse"`

	// TaxType selects the GST split for the invoice
	TaxType gst.TaxType `db:"tax_type" json:"taxType,omitempty"`

	// Items are the purchased lines
	Items []Line `db:"items" json:"items"`
}

// Line is a purchased product line.
type Line struct {
	Product   string         `json:"product"`
	Quantity  types.Quantity `json:"quantity"`
	UnitPrice types.Money    `json:"unitPrice"`
}

// Amount returns the line total (quantity * unit price).
func (l Line) Amount() types.Money {
	return l.Quantity.Decimal().Mul(l.UnitPrice)
}

// BaseAmount returns the invoice total before tax.
func (p *Purchase) BaseAmount() types.Money {
	total := types.Zero()
	for _, l := range p.Items {
		total = total.Add(l.Amount())
	}
	return total
}

// Validate implements entity.Validatable.
func (p *Purchase) Validate(ctx context.Context) error {
	if err := p.Document.Validate(ctx); err != nil {
		return err
	}

	if p.Warehouse == "" {
		return apperror.NewValidation("warehouse is required").
			WithDetail("field", "warehouse")
	}

	if len(p.Items) == 0 {
		return apperror.NewValidation("at least one item is required").
			WithDetail("field", "items")
	}

	for i, l := range p.Items {
		if l.Product == "" {
			return apperror.NewValidation("product is required").
				WithDetail("field", "items").
				WithDetail("lineNo", i+1)
		}
		if !l.Quantity.IsPositive() {
			return apperror.NewValidation("quantity must be positive").
				WithDetail("field", "items").
				WithDetail("lineNo", i+1)
		}
	}

	return nil
}
