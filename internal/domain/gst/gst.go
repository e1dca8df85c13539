// Package gst computes Goods and Services Tax breakdowns.
// Rates are configured externally and consumed as pure input; the
// calculator itself has no state and no failure modes.
package gst

import (
	"github.com/shopspring/decimal"

	"github.com/salilgupta4/agile-rental-management/internal/core/types"
)

// TaxType selects the GST split for a transaction.
type TaxType string

const (
	// TaxLocal splits tax into CGST + SGST (intra-state supply).
	TaxLocal TaxType = "local"

	// TaxInterstate charges IGST only (inter-state supply).
	TaxInterstate TaxType = "interstate"
)

// Rates holds the configured GST percentages.
type Rates struct {
	Enabled bool        `json:"enabled"`
	CGST    types.Money `json:"cgst"`
	SGST    types.Money `json:"sgst"`
	IGST    types.Money `json:"igst"`
}

// DefaultRates returns the standard 18% GST configuration.
func DefaultRates() Rates {
	return Rates{
		Enabled: true,
		CGST:    decimal.NewFromInt(9),
		SGST:    decimal.NewFromInt(9),
		IGST:    decimal.NewFromInt(18),
	}
}

// Breakdown is the tax decomposition of a base amount.
type Breakdown struct {
	BaseAmount  types.Money `json:"baseAmount"`
	CGST        types.Money `json:"cgst"`
	SGST        types.Money `json:"sgst"`
	IGST        types.Money `json:"igst"`
	TotalGST    types.Money `json:"totalGST"`
	TotalAmount types.Money `json:"totalAmount"`
}

var hundred = decimal.NewFromInt(100)

// Calculate produces the tax breakdown for a base amount.
// When rates are disabled all tax components are zero. Unknown tax types
// are treated as local. Negative base amounts (credit notes) propagate
// arithmetically and are not rejected.
func Calculate(base types.Money, taxType TaxType, rates Rates) Breakdown {
	if !rates.Enabled {
		return Breakdown{
			BaseAmount:  base,
			TotalAmount: base,
		}
	}

	if taxType == TaxInterstate {
		igst := base.Mul(rates.IGST).Div(hundred)
		return Breakdown{
			BaseAmount:  base,
			IGST:        igst,
			TotalGST:    igst,
			TotalAmount: base.Add(igst),
		}
	}

	cgst := base.Mul(rates.CGST).Div(hundred)
	sgst := base.Mul(rates.SGST).Div(hundred)
	total := cgst.Add(sgst)
	return Breakdown{
		BaseAmount:  base,
		CGST:        cgst,
		SGST:        sgst,
		TotalGST:    total,
		TotalAmount: base.Add(total),
	}
}
