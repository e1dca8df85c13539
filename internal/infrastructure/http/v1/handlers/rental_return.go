package handlers

import (
	"github.com/salilgupta4/agile-rental-management/internal/domain/documents/rental_return"
)

// NewReturnHandler creates the document handler for rental returns.
func NewReturnHandler(base *BaseHandler, service *rental_return.Service) *DocumentHandler[*rental_return.Return] {
	return NewDocumentHandler(base, service.DocumentService, "return",
		func() *rental_return.Return { return &rental_return.Return{} })
}
