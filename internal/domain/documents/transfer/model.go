// Package transfer provides the Transfer document.
// Transfers move equipment from a warehouse to a customer site and open
// the rental clock for each line at the rental start date.
package transfer

import (
	"context"
	"encoding/json"
	"time"

	"github.com/salilgupta4/agile-rental-management/internal/core/apperror"
	"github.com/salilgupta4/agile-rental-management/internal/core/entity"
	"github.com/salilgupta4/agile-rental-management/internal/core/id"
	"github.com/salilgupta4/agile-rental-management/internal/core/types"
)

// Status is the transfer lifecycle state. Only Rented transfers are
// considered active by the rental allocator.
type Status string

const (
	StatusRented   Status = "Rented"
	StatusReturned Status = "Returned"
	StatusClosed   Status = "Closed"
)

// Transfer records equipment delivered from a warehouse to a customer site.
type Transfer struct {
	entity.Document

	// From is the source warehouse name
	From string `db:"from_warehouse" json:"from"`

	// Customer and Site identify the delivery destination
	Customer string `db:"customer" json:"customer"`
	Site     string `db:"site" json:"site"`

	// RentalStartDate is the date rental charges begin
	RentalStartDate time.Time `db:"rental_start_date" json:"rentalStartDate"`

	// Status is the lifecycle state
	Status Status `db:"status" json:"status"`

	// RentalOrderID optionally links the originating rental order
	// (used for per-day rate fallback)
	RentalOrderID *id.ID `db:"rental_order_id" json:"rentalOrderId,omitempty"`

	// WorkOrderNumber is the customer's work order reference
	WorkOrderNumber string `db:"work_order_number" json:"workOrderNumber,omitempty"`

	// Items are the transferred lines
	Items []Line `db:"items" json:"items"`
}

// Line is a transferred product line.
type Line struct {
	Product    string         `json:"product"`
	Quantity   types.Quantity `json:"quantity"`
	PerDayRent types.Money    `json:"perDayRent"`
}

// IsActive reports whether the transfer participates in rental billing.
func (t *Transfer) IsActive() bool {
	return t.Status == StatusRented
}

// UnmarshalJSON decodes a transfer, upgrading legacy single-item records
// (product/quantity/perDayRent at the top level) to the items shape.
// This is a permanent compatibility rule: the derivation core only ever
// sees normalized items.
func (t *Transfer) UnmarshalJSON(data []byte) error {
	type alias Transfer
	aux := struct {
		*alias

		// Legacy single-item shape
		Product    string         `json:"product"`
		Quantity   types.Quantity `json:"quantity"`
		PerDayRent types.Money    `json:"perDayRent"`
	}{alias: (*alias)(t)}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	if len(t.Items) == 0 && aux.Product != "" {
		t.Items = []Line{{
			Product:    aux.Product,
			Quantity:   aux.Quantity,
			PerDayRent: aux.PerDayRent,
		}}
	}

	return nil
}

// Validate implements entity.Validatable.
func (t *Transfer) Validate(ctx context.Context) error {
	if err := t.Document.Validate(ctx); err != nil {
		return err
	}

	if t.From == "" {
		return apperror.NewValidation("source warehouse is required").
			WithDetail("field", "from")
	}
	if t.Customer == "" {
		return apperror.NewValidation("customer is required").
			WithDetail("field", "customer")
	}
	if t.Site == "" {
		return apperror.NewValidation("site is required").
			WithDetail("field", "site")
	}
	if t.RentalStartDate.IsZero() {
		return apperror.NewValidation("rental start date is required").
			WithDetail("field", "rentalStartDate")
	}
	if len(t.Items) == 0 {
		return apperror.NewValidation("at least one item is required").
			WithDetail("field", "items")
	}

	for i, l := range t.Items {
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
