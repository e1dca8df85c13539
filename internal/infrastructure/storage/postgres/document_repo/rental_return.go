package document_repo

import (
	"github.com/salilgupta4/agile-rental-management/internal/domain/documents/rental_return"
	"github.com/salilgupta4/agile-rental-management/internal/infrastructure/storage/postgres"
)

const returnsTable = "doc_returns"

// ReturnRepo implements rental_return.Repository.
type ReturnRepo struct {
	*BaseDocumentRepo[*rental_return.Return]
}

// NewReturnRepo creates a new return repository.
func NewReturnRepo(txm *postgres.TxManager) *ReturnRepo {
	return &ReturnRepo{
		BaseDocumentRepo: NewBaseDocumentRepo[*rental_return.Return](
			txm,
			returnsTable,
			postgres.ExtractDBColumns[rental_return.Return](),
			func() *rental_return.Return { return &rental_return.Return{} },
		),
	}
}
