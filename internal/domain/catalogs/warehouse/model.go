// Package warehouse provides the Warehouse catalog.
// Warehouses are the fixed storage locations equipment is purchased into,
// rented out of and returned to.
package warehouse

import (
	"context"

	"github.com/salilgupta4/agile-rental-management/internal/core/entity"
)

// Warehouse represents a storage location for equipment.
type Warehouse struct {
	entity.Catalog

	// Location is a free-text address or description
	Location string `db:"location" json:"location,omitempty"`
}

// NewWarehouse creates a new Warehouse.
func NewWarehouse(name, location string) *Warehouse {
	return &Warehouse{
		Catalog:  entity.NewCatalog(name),
		Location: location,
	}
}

// Validate implements entity.Validatable.
func (w *Warehouse) Validate(ctx context.Context) error {
	return w.Catalog.Validate(ctx)
}
