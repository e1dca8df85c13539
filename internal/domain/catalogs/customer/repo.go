package customer

import (
	"github.com/salilgupta4/agile-rental-management/internal/domain"
)

// Repository defines the interface for Customer persistence.
type Repository interface {
	domain.CatalogRepository[*Customer]
}
