package customer

import (
	"github.com/salilgupta4/agile-rental-management/internal/domain"
)

// Service provides business logic for the Customer catalog.
type Service struct {
	*domain.CatalogService[*Customer]
}

// NewService creates a new Customer service.
func NewService(repo Repository) *Service {
	return &Service{
		CatalogService: domain.NewCatalogService[*Customer](repo, "customer"),
	}
}
