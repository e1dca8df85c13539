package rentalorder

import (
	"github.com/salilgupta4/agile-rental-management/internal/domain"
)

// Repository defines the interface for the RentalOrder log.
type Repository interface {
	domain.DocumentRepository[*RentalOrder]
}
