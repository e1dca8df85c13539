package handlers

import (
	"github.com/salilgupta4/agile-rental-management/internal/domain/documents/rentalorder"
)

// NewRentalOrderHandler creates the document handler for rental orders.
func NewRentalOrderHandler(base *BaseHandler, service *rentalorder.Service) *DocumentHandler[*rentalorder.RentalOrder] {
	return NewDocumentHandler(base, service.DocumentService, "rental_order",
		func() *rentalorder.RentalOrder { return &rentalorder.RentalOrder{} })
}
