package sale

import (
	"github.com/salilgupta4/agile-rental-management/internal/domain"
)

// Service provides operations on the Sale log.
type Service struct {
	*domain.DocumentService[*Sale]
}

// NewService creates a new Sale service.
func NewService(repo Repository, num domain.Numerator) *Service {
	return &Service{
		DocumentService: domain.NewDocumentService[*Sale](repo, "sale").
			WithNumbering(num, "INV"),
	}
}
