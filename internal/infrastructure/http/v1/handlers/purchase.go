package handlers

import (
	"github.com/salilgupta4/agile-rental-management/internal/domain/documents/purchase"
)

// NewPurchaseHandler creates the document handler for purchases.
func NewPurchaseHandler(base *BaseHandler, service *purchase.Service) *DocumentHandler[*purchase.Purchase] {
	return NewDocumentHandler(base, service.DocumentService, "purchase",
		func() *purchase.Purchase { return &purchase.Purchase{} })
}
