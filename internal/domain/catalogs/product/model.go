// Package product provides the Product catalog.
// Products are the rentable equipment types; transaction line items
// reference them by name.
package product

import (
	"context"

	"github.com/salilgupta4/agile-rental-management/internal/core/apperror"
	"github.com/salilgupta4/agile-rental-management/internal/core/entity"
)

// Product represents a rentable equipment type.
type Product struct {
	entity.Catalog

	// Unit is the unit of measure (e.g., "Nos", "Sets", "Mtr")
	Unit string `db:"unit" json:"unit"`
}

// NewProduct creates a new Product.
func NewProduct(name, unit string) *Product {
	return &Product{
		Catalog: entity.NewCatalog(name),
		Unit:    unit,
	}
}

// Validate implements entity.Validatable.
func (p *Product) Validate(ctx context.Context) error {
	if err := p.Catalog.Validate(ctx); err != nil {
		return err
	}
	if p.Unit == "" {
		return apperror.NewValidation("unit of measure is required").
			WithDetail("field", "unit")
	}
	return nil
}
