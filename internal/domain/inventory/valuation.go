package inventory

import (
	"github.com/salilgupta4/agile-rental-management/internal/core/types"
	"github.com/salilgupta4/agile-rental-management/internal/domain/documents/purchase"
)

// Valuer prices stock at the weighted-average purchase cost per product.
// Costs are computed once over the full purchase history; transfers,
// returns and sales never change a product's unit cost.
type Valuer struct {
	costs map[string]types.Money
}

// NewValuer computes per-product weighted-average unit costs from the
// purchase log.
func NewValuer(purchases []*purchase.Purchase) *Valuer {
	type acc struct {
		qty    types.Quantity
		amount types.Money
	}

	totals := make(map[string]*acc)
	for _, p := range purchases {
		for _, item := range p.Items {
			a := totals[item.Product]
			if a == nil {
				a = &acc{amount: types.Zero()}
				totals[item.Product] = a
			}
			a.qty += item.Quantity
			a.amount = a.amount.Add(item.Quantity.Decimal().Mul(item.UnitPrice))
		}
	}

	costs := make(map[string]types.Money, len(totals))
	for product, a := range totals {
		if a.qty.IsPositive() {
			costs[product] = a.amount.Div(a.qty.Decimal())
		}
	}
	return &Valuer{costs: costs}
}

// UnitCost returns the weighted-average cost of one unit, zero for a
// product that was never purchased.
func (v *Valuer) UnitCost(product string) types.Money {
	if c, ok := v.costs[product]; ok {
		return c
	}
	return types.Zero()
}

// WarehouseValue prices all warehouse stock in a snapshot.
func (v *Valuer) WarehouseValue(s Snapshot) types.Money {
	total := types.Zero()
	for _, products := range s.Warehouse {
		for product, qty := range products {
			total = total.Add(v.value(product, qty))
		}
	}
	return total
}

// CustomerValue prices all stock currently out at customer sites.
func (v *Valuer) CustomerValue(s Snapshot) types.Money {
	total := types.Zero()
	for _, sites := range s.Customer {
		for _, products := range sites {
			for product, qty := range products {
				total = total.Add(v.value(product, qty))
			}
		}
	}
	return total
}

// StockValue prices the whole snapshot, warehouses plus customer sites.
func (v *Valuer) StockValue(s Snapshot) types.Money {
	return v.WarehouseValue(s).Add(v.CustomerValue(s))
}

func (v *Valuer) value(product string, qty types.Quantity) types.Money {
	if !qty.IsPositive() {
		return types.Zero()
	}
	return qty.Decimal().Mul(v.UnitCost(product))
}
