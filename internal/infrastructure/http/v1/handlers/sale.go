package handlers

import (
	"github.com/salilgupta4/agile-rental-management/internal/domain/documents/sale"
)

// NewSaleHandler creates the document handler for sales.
func NewSaleHandler(base *BaseHandler, service *sale.Service) *DocumentHandler[*sale.Sale] {
	return NewDocumentHandler(base, service.DocumentService, "sale",
		func() *sale.Sale { return &sale.Sale{} })
}
