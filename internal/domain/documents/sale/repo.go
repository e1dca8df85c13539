package sale

import (
	"github.com/salilgupta4/agile-rental-management/internal/domain"
)

// Repository defines the interface for the Sale log.
type Repository interface {
	domain.DocumentRepository[*Sale]
}
