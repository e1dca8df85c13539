package entity

import (
	"context"

	"github.com/salilgupta4/agile-rental-management/internal/core/apperror"
	"github.com/salilgupta4/agile-rental-management/internal/core/id"
)

// Catalog is the base type for master data (products, warehouses, customers).
// Catalog entries are referenced by name from transaction line items, so the
// name is the stable business key and must be unique within its catalog.
type Catalog struct {
	BaseEntity

	// Name is the unique business key
	Name string `db:"name" json:"name"`
}

// NewCatalog creates a new Catalog with generated ID.
func NewCatalog(name string) Catalog {
	return Catalog{
		BaseEntity: NewBaseEntity(),
		Name:       name,
	}
}

// GetID returns the catalog entry ID.
func (c *Catalog) GetID() id.ID {
	return c.ID
}

// GetName returns the unique business key.
func (c *Catalog) GetName() string {
	return c.Name
}

// Validate implements Validatable interface.
func (c *Catalog) Validate(ctx context.Context) error {
	if c.Name == "" {
		return apperror.NewValidation("name is required").
			WithDetail("field", "name")
	}
	return nil
}
