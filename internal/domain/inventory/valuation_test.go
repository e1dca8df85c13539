package inventory

import (
	"testing"

	"github.com/salilgupta4/agile-rental-management/internal/core/types"
	"github.com/salilgupta4/agile-rental-management/internal/domain/documents/purchase"
)

func TestValuerWeightedAverageCost(t *testing.T) {
	purchases := []*purchase.Purchase{
		newPurchase("Main", purchase.Line{Product: "Prop 3m", Quantity: qty(10), UnitPrice: types.NewMoney(100)}),
		newPurchase("Main", purchase.Line{Product: "Prop 3m", Quantity: qty(30), UnitPrice: types.NewMoney(200)}),
	}

	v := NewValuer(purchases)

	// (10*100 + 30*200) / 40 = 175
	if got := v.UnitCost("Prop 3m"); !got.Equal(types.NewMoney(175)) {
		t.Errorf("UnitCost = %s, want 175", got)
	}
	if got := v.UnitCost("never bought"); !got.IsZero() {
		t.Errorf("UnitCost of unknown product = %s, want 0", got)
	}
}

func TestValuerStockValueSplitsAcrossSides(t *testing.T) {
	purchases := []*purchase.Purchase{
		newPurchase("Main", purchase.Line{Product: "Jack", Quantity: qty(20), UnitPrice: types.NewMoney(50)}),
	}

	s := Snapshot{
		Warehouse: WarehouseStock{
			"Main": {"Jack": qty(15)},
		},
		Customer: CustomerStock{
			"Acme": {"Site A": {"Jack": qty(5)}},
		},
	}

	v := NewValuer(purchases)

	if got := v.WarehouseValue(s); !got.Equal(types.NewMoney(750)) {
		t.Errorf("WarehouseValue = %s, want 750", got)
	}
	if got := v.CustomerValue(s); !got.Equal(types.NewMoney(250)) {
		t.Errorf("CustomerValue = %s, want 250", got)
	}
	if got := v.StockValue(s); !got.Equal(types.NewMoney(1000)) {
		t.Errorf("StockValue = %s, want 1000", got)
	}
}

func TestValuerFractionalQuantities(t *testing.T) {
	purchases := []*purchase.Purchase{
		newPurchase("Main", purchase.Line{Product: "Cable", Quantity: types.NewQuantityFromFloat64(2.5), UnitPrice: types.NewMoney(40)}),
	}

	v := NewValuer(purchases)

	if got := v.UnitCost("Cable"); !got.Equal(types.NewMoney(40)) {
		t.Errorf("UnitCost = %s, want 40", got)
	}

	s := Snapshot{Warehouse: WarehouseStock{"Main": {"Cable": types.NewQuantityFromFloat64(1.5)}}}
	if got := v.StockValue(s); !got.Equal(types.NewMoney(60)) {
		t.Errorf("StockValue = %s, want 60", got)
	}
}
