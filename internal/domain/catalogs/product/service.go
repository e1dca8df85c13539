package product

import (
	"github.com/salilgupta4/agile-rental-management/internal/domain"
)

// Service provides business logic for the Product catalog.
type Service struct {
	*domain.CatalogService[*Product]
}

// NewService creates a new Product service.
func NewService(repo Repository) *Service {
	return &Service{
		CatalogService: domain.NewCatalogService[*Product](repo, "product"),
	}
}
