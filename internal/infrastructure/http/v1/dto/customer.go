package dto

import (
	"github.com/salilgupta4/agile-rental-management/internal/domain/catalogs/customer"
)

// CreateCustomerRequest for creating customers.
type CreateCustomerRequest struct {
	Name string `json:"name" binding:"required"`

	// Sites in delivery order; order is significant for return matching.
	Sites []string `json:"sites" binding:"required,min=1"`
}

// ToEntity converts the request to a domain entity.
func (r CreateCustomerRequest) ToEntity() *customer.Customer {
	return customer.NewCustomer(r.Name, r.Sites)
}

// UpdateCustomerRequest for updating customers.
type UpdateCustomerRequest struct {
	Name  *string  `json:"name"`
	Sites []string `json:"sites"`
}

// ApplyTo applies non-nil fields onto an existing entity.
func (r UpdateCustomerRequest) ApplyTo(c *customer.Customer) {
	if r.Name != nil {
		c.Name = *r.Name
	}
	if r.Sites != nil {
		c.Sites = r.Sites
	}
	c.Touch()
}

// CustomerResponse contains customer fields.
type CustomerResponse struct {
	CatalogResponse
	Sites []string `json:"sites"`
}

// FromCustomer creates CustomerResponse from entity.
func FromCustomer(c *customer.Customer) CustomerResponse {
	return CustomerResponse{
		CatalogResponse: FromCatalog(c.Catalog),
		Sites:           c.Sites,
	}
}
