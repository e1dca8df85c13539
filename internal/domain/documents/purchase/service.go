package purchase

import (
	"github.com/salilgupta4/agile-rental-management/internal/domain"
)

// Service provides operations on the Purchase log.
type Service struct {
	*domain.DocumentService[*Purchase]
}

// NewService creates a new Purchase service.
func NewService(repo Repository, num domain.Numerator) *Service {
	return &Service{
		DocumentService: domain.NewDocumentService[*Purchase](repo, "purchase").
			WithNumbering(num, "PUR"),
	}
}
