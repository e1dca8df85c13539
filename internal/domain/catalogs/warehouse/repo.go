package warehouse

import (
	"github.com/salilgupta4/agile-rental-management/internal/domain"
)

// Repository defines the interface for Warehouse persistence.
type Repository interface {
	domain.CatalogRepository[*Warehouse]
}
