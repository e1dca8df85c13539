// Package sale provides the Sale document.
// Sales permanently remove equipment from the ledger, from either a
// warehouse or a customer site. There is no reversal path.
package sale

import (
	"context"
	"encoding/json"

	"github.com/salilgupta4/agile-rental-management/internal/core/apperror"
	"github.com/salilgupta4/agile-rental-management/internal/core/entity"
	"github.com/salilgupta4/agile-rental-management/internal/core/types"
	"github.com/salilgupta4/agile-rental-management/internal/domain/gst"
)

// Sale records equipment sold out of the fleet.
type Sale struct {
	entity.Document

	// Source: exactly one of FromWarehouse or FromCustomer+FromSite is set.
	FromWarehouse string `db:"from_warehouse" json:"fromWarehouse,omitempty"`
	FromCustomer  string `db:"from_customer" json:"fromCustomer,omitempty"`
	FromSite      string `db:"from_site" json:"fromSite,omitempty"`

	// TaxType selects the GST split for the invoice
	TaxType gst.TaxType `db:"tax_type" json:"taxType,omitempty"`

	// Items are the sold lines
	Items []Line `db:"items" json:"items"`
}

// Line is a sold product line.
type Line struct {
	Product   string         `json:"product"`
	Quantity  types.Quantity `json:"quantity"`
	SalePrice types.Money    `json:"salePrice"`
}

// Amount returns the line total (quantity * sale price).
func (l Line) Amount() types.Money {
	return l.Quantity.Decimal().Mul(l.SalePrice)
}

// BaseAmount returns the invoice total before tax.
func (s *Sale) BaseAmount() types.Money {
	total := types.Zero()
	for _, l := range s.Items {
		total = total.Add(l.Amount())
	}
	return total
}

// FromWarehouseSide reports whether the sale draws from warehouse stock.
func (s *Sale) FromWarehouseSide() bool {
	return s.FromWarehouse != ""
}

// UnmarshalJSON decodes a sale, upgrading legacy single-item records
// (product/quantity/salePrice at the top level) to the items shape.
func (s *Sale) UnmarshalJSON(data []byte) error {
	type alias Sale
	aux := struct {
		*alias

		// Legacy single-item shape
		Product   string         `json:"product"`
		Quantity  types.Quantity `json:"quantity"`
		SalePrice types.Money    `json:"salePrice"`
	}{alias: (*alias)(s)}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	if len(s.Items) == 0 && aux.Product != "" {
		s.Items = []Line{{
			Product:   aux.Product,
			Quantity:  aux.Quantity,
			SalePrice: aux.SalePrice,
		}}
	}

	return nil
}

// Validate implements entity.Validatable.
func (s *Sale) Validate(ctx context.Context) error {
	if err := s.Document.Validate(ctx); err != nil {
		return err
	}

	fromWarehouse := s.FromWarehouse != ""
	fromCustomer := s.FromCustomer != ""
	switch {
	case fromWarehouse && fromCustomer:
		return apperror.NewValidation("sale source must be a warehouse or a customer site, not both").
			WithDetail("field", "fromWarehouse")
	case !fromWarehouse && !fromCustomer:
		return apperror.NewValidation("sale source is required").
			WithDetail("field", "fromWarehouse")
	case fromCustomer && s.FromSite == "":
		return apperror.NewValidation("site is required for customer-side sales").
			WithDetail("field", "fromSite")
	}

	if len(s.Items) == 0 {
		return apperror.NewValidation("at least one item is required").
			WithDetail("field", "items")
	}

	for i, l := range s.Items {
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
