package dto

import (
	"github.com/salilgupta4/agile-rental-management/internal/domain/catalogs/warehouse"
)

// CreateWarehouseRequest for creating warehouses.
type CreateWarehouseRequest struct {
	Name     string `json:"name" binding:"required"`
	Location string `json:"location"`
}

// ToEntity converts the request to a domain entity.
func (r CreateWarehouseRequest) ToEntity() *warehouse.Warehouse {
	return warehouse.NewWarehouse(r.Name, r.Location)
}

// UpdateWarehouseRequest for updating warehouses.
type UpdateWarehouseRequest struct {
	Name     *string `json:"name"`
	Location *string `json:"location"`
}

// ApplyTo applies non-nil fields onto an existing entity.
func (r UpdateWarehouseRequest) ApplyTo(w *warehouse.Warehouse) {
	if r.Name != nil {
		w.Name = *r.Name
	}
	if r.Location != nil {
		w.Location = *r.Location
	}
	w.Touch()
}

// WarehouseResponse contains warehouse fields.
type WarehouseResponse struct {
	CatalogResponse
	Location string `json:"location,omitempty"`
}

// FromWarehouse creates WarehouseResponse from entity.
func FromWarehouse(w *warehouse.Warehouse) WarehouseResponse {
	return WarehouseResponse{
		CatalogResponse: FromCatalog(w.Catalog),
		Location:        w.Location,
	}
}
