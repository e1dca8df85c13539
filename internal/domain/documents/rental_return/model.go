// Package rental_return provides the Return document.
// Returns bring rented equipment back from a customer to a warehouse and
// close the rental clock at the rental end date for the returned quantity.
// Returns reference the customer only, never a site.
package rental_return

import (
	"context"
	"encoding/json"
	"time"

	"github.com/salilgupta4/agile-rental-management/internal/core/apperror"
	"github.com/salilgupta4/agile-rental-management/internal/core/entity"
	"github.com/salilgupta4/agile-rental-management/internal/core/types"
)

// Return records equipment returned by a customer.
type Return struct {
	entity.Document

	// Customer is the returning customer name
	Customer string `db:"customer" json:"customer"`

	// ReturnTo is the destination warehouse name
	ReturnTo string `db:"return_to" json:"returnTo"`

	// RentalEndDate is the date up to which rent is charged for the
	// returned quantity. Distinct from Date (the physical return date).
	RentalEndDate time.Time `db:"rental_end_date" json:"rentalEndDate"`

	// Items are the returned lines
	Items []Line `db:"items" json:"items"`
}

// Line is a returned product line.
type Line struct {
	Product  string         `json:"product"`
	Quantity types.Quantity `json:"quantity"`
}

// UnmarshalJSON decodes a return, upgrading legacy single-item records
// (product/quantity at the top level) to the items shape.
func (r *Return) UnmarshalJSON(data []byte) error {
	type alias Return
	aux := struct {
		*alias

		// Legacy single-item shape
		Product  string         `json:"product"`
		Quantity types.Quantity `json:"quantity"`
	}{alias: (*alias)(r)}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	if len(r.Items) == 0 && aux.Product != "" {
		r.Items = []Line{{
			Product:  aux.Product,
			Quantity: aux.Quantity,
		}}
	}

	return nil
}

// Validate implements entity.Validatable.
func (r *Return) Validate(ctx context.Context) error {
	if err := r.Document.Validate(ctx); err != nil {
		return err
	}

	if r.Customer == "" {
		return apperror.NewValidation("customer is required").
			WithDetail("field", "customer")
	}
	if r.ReturnTo == "" {
		return apperror.NewValidation("destination warehouse is required").
			WithDetail("field", "returnTo")
	}
	if r.RentalEndDate.IsZero() {
		return apperror.NewValidation("rental end date is required").
			WithDetail("field", "rentalEndDate")
	}
	if len(r.Items) == 0 {
		return apperror.NewValidation("at least one item is required").
			WithDetail("field", "items")
	}

	for i, l := range r.Items {
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
