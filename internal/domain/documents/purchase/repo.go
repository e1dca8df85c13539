package purchase

import (
	"github.com/salilgupta4/agile-rental-management/internal/domain"
)

// Repository defines the interface for the Purchase log.
type Repository interface {
	domain.DocumentRepository[*Purchase]
}
