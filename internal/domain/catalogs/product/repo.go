package product

import (
	"github.com/salilgupta4/agile-rental-management/internal/domain"
)

// Repository defines the interface for Product persistence.
type Repository interface {
	domain.CatalogRepository[*Product]
}
