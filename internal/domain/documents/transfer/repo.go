package transfer

import (
	"github.com/salilgupta4/agile-rental-management/internal/domain"
)

// Repository defines the interface for the Transfer log.
type Repository interface {
	domain.DocumentRepository[*Transfer]
}
