package dto

import (
	"github.com/salilgupta4/agile-rental-management/internal/domain/catalogs/product"
)

// CreateProductRequest for creating products.
type CreateProductRequest struct {
	Name string `json:"name" binding:"required"`
	Unit string `json:"unit" binding:"required"`
}

// ToEntity converts the request to a domain entity.
func (r CreateProductRequest) ToEntity() *product.Product {
	return product.NewProduct(r.Name, r.Unit)
}

// UpdateProductRequest for updating products.
type UpdateProductRequest struct {
	Name *string `json:"name"`
	Unit *string `json:"unit"`
}

// ApplyTo applies non-nil fields onto an existing entity.
func (r UpdateProductRequest) ApplyTo(p *product.Product) {
	if r.Name != nil {
		p.Name = *r.Name
	}
	if r.Unit != nil {
		p.Unit = *r.Unit
	}
	p.Touch()
}

// ProductResponse contains product fields.
type ProductResponse struct {
	CatalogResponse
	Unit string `json:"unit"`
}

// FromProduct creates ProductResponse from entity.
func FromProduct(p *product.Product) ProductResponse {
	return ProductResponse{
		CatalogResponse: FromCatalog(p.Catalog),
		Unit:            p.Unit,
	}
}
