// Package rentalorder provides the RentalOrder document.
// Rental orders capture what a customer asked for and at what per-day
// rate. The derivation core reads them only as a rate-fallback source;
// delivered quantities are maintained by the transfer workflow.
package rentalorder

import (
	"context"

	"github.com/salilgupta4/agile-rental-management/internal/core/apperror"
	"github.com/salilgupta4/agile-rental-management/internal/core/entity"
	"github.com/salilgupta4/agile-rental-management/internal/core/types"
	"github.com/salilgupta4/agile-rental-management/internal/domain/gst"
)

// RentalOrder records a customer's equipment request.
type RentalOrder struct {
	entity.Document

	// Customer and Site identify the requesting site
	Customer string `db:"customer" json:"customer"`
	Site     string `db:"site" json:"site"`

	// WorkOrderNumber is the customer's work order reference
	WorkOrderNumber string `db:"work_order_number" json:"workOrderNumber,omitempty"`

	// TaxType selects the GST split for invoicing the order
	TaxType gst.TaxType `db:"tax_type" json:"taxType,omitempty"`

	// Items are the ordered lines
	Items []Line `db:"items" json:"items"`
}

// Line is an ordered product line.
type Line struct {
	Product    string         `json:"product"`
	Quantity   types.Quantity `json:"quantity"`
	PerDayRent types.Money    `json:"perDayRent"`

	// DeliveredQuantity is bookkeeping written by the transfer workflow;
	// read-only input here.
	DeliveredQuantity types.Quantity `json:"deliveredQuantity"`
}

// IsPending reports whether any ordered quantity is still undelivered.
func (o *RentalOrder) IsPending() bool {
	var ordered, delivered types.Quantity
	for _, l := range o.Items {
		ordered += l.Quantity
		delivered += l.DeliveredQuantity
	}
	return delivered < ordered
}

// RateFor returns the first non-zero per-day rate for a product, or zero.
func (o *RentalOrder) RateFor(product string) types.Money {
	for _, l := range o.Items {
		if l.Product == product && !l.PerDayRent.IsZero() {
			return l.PerDayRent
		}
	}
	return types.Zero()
}

// Validate implements entity.Validatable.
func (o *RentalOrder) Validate(ctx context.Context) error {
	if err := o.Document.Validate(ctx); err != nil {
		return err
	}

	if o.Customer == "" {
		return apperror.NewValidation("customer is required").
			WithDetail("field", "customer")
	}
	if o.Site == "" {
		return apperror.NewValidation("site is required").
			WithDetail("field", "site")
	}
	if len(o.Items) == 0 {
		return apperror.NewValidation("at least one item is required").
			WithDetail("field", "items")
	}

	for i, l := range o.Items {
		if l.Product == "" {
			return apperror.NewValidation("product is required").
				WithDetail("field", "items").
				WithDetail("lineNo", i+1)
		}
		if !l.Quantity.IsPositive() {
			return apperror.NewValidation("quantity must be positive").
				WithDetail("field", "items").
				WithDetail("lineNo", i+1)
		}
	}

	return nil
}
