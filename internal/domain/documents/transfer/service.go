package transfer

import (
	"github.com/salilgupta4/agile-rental-management/internal/domain"
)

// Service provides operations on the Transfer log.
type Service struct {
	*domain.DocumentService[*Transfer]
}

// NewService creates a new Transfer service. Transfer numbers are the
// delivery challan (DC) numbers printed on dispatch documents.
func NewService(repo Repository, num domain.Numerator) *Service {
	return &Service{
		DocumentService: domain.NewDocumentService[*Transfer](repo, "transfer").
			WithNumbering(num, "DC"),
	}
}
