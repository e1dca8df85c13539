package warehouse

import (
	"github.com/salilgupta4/agile-rental-management/internal/domain"
)

// Service provides business logic for the Warehouse catalog.
type Service struct {
	*domain.CatalogService[*Warehouse]
}

// NewService creates a new Warehouse service.
func NewService(repo Repository) *Service {
	return &Service{
		CatalogService: domain.NewCatalogService[*Warehouse](repo, "warehouse"),
	}
}
