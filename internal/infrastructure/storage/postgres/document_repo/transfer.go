package document_repo

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"github.com/salilgupta4/agile-rental-management/internal/domain/documents/transfer"
	"github.com/salilgupta4/agile-rental-management/internal/infrastructure/storage/postgres"
)

const transfersTable = "doc_transfers"

// TransferRepo implements transfer.Repository.
type TransferRepo struct {
	*BaseDocumentRepo[*transfer.Transfer]
}

// NewTransferRepo creates a new transfer repository.
func NewTransferRepo(txm *postgres.TxManager) *TransferRepo {
	return &TransferRepo{
		BaseDocumentRepo: NewBaseDocumentRepo[*transfer.Transfer](
			txm,
			transfersTable,
			postgres.ExtractDBColumns[transfer.Transfer](),
			func() *transfer.Transfer { return &transfer.Transfer{} },
		),
	}
}

// ListByCustomer retrieves all transfers for a customer in insertion order.
func (r *TransferRepo) ListByCustomer(ctx context.Context, customerName string) ([]*transfer.Transfer, error) {
	q := r.baseSelect().
		Where(squirrel.Eq{"customer": customerName}).
		OrderBy("created_at ASC", "id ASC")

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var items []*transfer.Transfer
	if err := pgxscan.Select(ctx, r.querier(ctx), &items, sql, args...); err != nil {
		return nil, fmt.Errorf("list by customer: %w", err)
	}

	return items, nil
}
