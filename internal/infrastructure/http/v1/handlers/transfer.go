package handlers

import (
	"github.com/salilgupta4/agile-rental-management/internal/domain/documents/transfer"
)

// NewTransferHandler creates the document handler for rental transfers.
func NewTransferHandler(base *BaseHandler, service *transfer.Service) *DocumentHandler[*transfer.Transfer] {
	return NewDocumentHandler(base, service.DocumentService, "transfer",
		func() *transfer.Transfer { return &transfer.Transfer{} })
}
