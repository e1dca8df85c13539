package document_repo

import (
	"github.com/salilgupta4/agile-rental-management/internal/domain/documents/rentalorder"
	"github.com/salilgupta4/agile-rental-management/internal/infrastructure/storage/postgres"
)

const rentalOrdersTable = "doc_rental_orders"

// RentalOrderRepo implements rentalorder.Repository.
type RentalOrderRepo struct {
	*BaseDocumentRepo[*rentalorder.RentalOrder]
}

// NewRentalOrderRepo creates a new rental order repository.
func NewRentalOrderRepo(txm *postgres.TxManager) *RentalOrderRepo {
	return &RentalOrderRepo{
		BaseDocumentRepo: NewBaseDocumentRepo[*rentalorder.RentalOrder](
			txm,
			rentalOrdersTable,
			postgres.ExtractDBColumns[rentalorder.RentalOrder](),
			func() *rentalorder.RentalOrder { return &rentalorder.RentalOrder{} },
		),
	}
}
