package rental_return

import (
	"github.com/salilgupta4/agile-rental-management/internal/domain"
)

// Service provides operations on the Return log.
type Service struct {
	*domain.DocumentService[*Return]
}

// NewService creates a new Return service.
func NewService(repo Repository, num domain.Numerator) *Service {
	return &Service{
		DocumentService: domain.NewDocumentService[*Return](repo, "return").
			WithNumbering(num, "RET"),
	}
}
