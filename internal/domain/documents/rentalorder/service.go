package rentalorder

import (
	"github.com/salilgupta4/agile-rental-management/internal/domain"
)

// Service provides operations on the RentalOrder log.
type Service struct {
	*domain.DocumentService[*RentalOrder]
}

// NewService creates a new RentalOrder service.
func NewService(repo Repository, num domain.Numerator) *Service {
	return &Service{
		DocumentService: domain.NewDocumentService[*RentalOrder](repo, "rental order").
			WithNumbering(num, "RO"),
	}
}
