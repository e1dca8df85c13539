package gst

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func testRates() Rates {
	return Rates{
		Enabled: true,
		CGST:    decimal.NewFromInt(9),
		SGST:    decimal.NewFromInt(9),
		IGST:    decimal.NewFromInt(18),
	}
}

func TestCalculate_Local(t *testing.T) {
	b := Calculate(decimal.NewFromInt(1000), TaxLocal, testRates())

	require.True(t, b.CGST.Equal(decimal.NewFromInt(90)), "cgst = %s", b.CGST)
	require.True(t, b.SGST.Equal(decimal.NewFromInt(90)), "sgst = %s", b.SGST)
	require.True(t, b.IGST.IsZero(), "igst = %s", b.IGST)
	require.True(t, b.TotalGST.Equal(decimal.NewFromInt(180)), "totalGST = %s", b.TotalGST)
	require.True(t, b.TotalAmount.Equal(decimal.NewFromInt(1180)), "totalAmount = %s", b.TotalAmount)
}

func TestCalculate_Interstate(t *testing.T) {
	b := Calculate(decimal.NewFromInt(1000), TaxInterstate, testRates())

	require.True(t, b.IGST.Equal(decimal.NewFromInt(180)), "igst = %s", b.IGST)
	require.True(t, b.CGST.IsZero(), "cgst = %s", b.CGST)
	require.True(t, b.SGST.IsZero(), "sgst = %s", b.SGST)
	require.True(t, b.TotalAmount.Equal(decimal.NewFromInt(1180)), "totalAmount = %s", b.TotalAmount)
}

func TestCalculate_Disabled(t *testing.T) {
	rates := testRates()
	rates.Enabled = false

	b := Calculate(decimal.NewFromInt(1000), TaxLocal, rates)

	require.True(t, b.TotalGST.IsZero())
	require.True(t, b.TotalAmount.Equal(decimal.NewFromInt(1000)))
}

func TestCalculate_UnknownTypeFallsBackToLocal(t *testing.T) {
	b := Calculate(decimal.NewFromInt(500), TaxType("export"), testRates())

	require.True(t, b.CGST.Equal(decimal.NewFromInt(45)))
	require.True(t, b.SGST.Equal(decimal.NewFromInt(45)))
	require.True(t, b.IGST.IsZero())
}

func TestCalculate_NegativeBasePropagates(t *testing.T) {
	b := Calculate(decimal.NewFromInt(-100), TaxInterstate, testRates())

	require.True(t, b.IGST.Equal(decimal.NewFromInt(-18)))
	require.True(t, b.TotalAmount.Equal(decimal.NewFromInt(-118)))
}
