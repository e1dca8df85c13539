package rental_return

import (
	"github.com/salilgupta4/agile-rental-management/internal/domain"
)

// Repository defines the interface for the Return log.
type Repository interface {
	domain.DocumentRepository[*Return]
}
