// Package inventory derives point-in-time stock state from the four
// transaction logs. All computations are pure folds over fully
// materialized inputs: no caching, no shared state, freshly built maps
// on every call.
package inventory

import (
	"fmt"

	"github.com/salilgupta4/agile-rental-management/internal/core/types"
	"github.com/salilgupta4/agile-rental-management/internal/domain/documents/purchase"
	"github.com/salilgupta4/agile-rental-management/internal/domain/documents/rental_return"
	"github.com/salilgupta4/agile-rental-management/internal/domain/documents/sale"
	"github.com/salilgupta4/agile-rental-management/internal/domain/documents/transfer"
)

// WarehouseStock maps warehouse -> product -> on-hand quantity.
type WarehouseStock map[string]map[string]types.Quantity

// CustomerStock maps customer -> site -> product -> on-site quantity.
type CustomerStock map[string]map[string]map[string]types.Quantity

// Warning codes for data-quality conditions. None of them abort the
// computation; dashboards must render even over imperfect history.
const (
	WarnReturnSiteNotFound = "RETURN_SITE_NOT_FOUND"
	WarnStockClamped       = "STOCK_CLAMPED"
)

// Warning is a non-fatal data-quality diagnostic.
type Warning struct {
	Code     string `json:"code"`
	Customer string `json:"customer,omitempty"`
	Location string `json:"location,omitempty"`
	Product  string `json:"product,omitempty"`
	Message  string `json:"message"`
}

// Snapshot is the derived stock state.
type Snapshot struct {
	Warehouse WarehouseStock
	Customer  CustomerStock
	Warnings  []Warning
}

// Qty returns the on-hand quantity at a warehouse, zero for missing keys.
func (w WarehouseStock) Qty(warehouse, product string) types.Quantity {
	return w[warehouse][product]
}

// Qty returns the on-site quantity, zero for missing keys.
func (c CustomerStock) Qty(customer, site, product string) types.Quantity {
	return c[customer][site][product]
}

// ledger accumulates quantities while preserving the order in which
// customer sites first received stock. Returns carry no site, so site
// attribution walks sites in that order.
type ledger struct {
	warehouse WarehouseStock
	customer  CustomerStock
	siteOrder map[string][]string
	warnings  []Warning
}

// ComputeStock folds the four transaction logs into per-warehouse and
// per-customer-site stock maps. Missing products or locations read as
// zero; quantities that would go negative are clamped, never an error.
func ComputeStock(
	purchases []*purchase.Purchase,
	transfers []*transfer.Transfer,
	returns []*rental_return.Return,
	sales []*sale.Sale,
) Snapshot {
	l := &ledger{
		warehouse: make(WarehouseStock),
		customer:  make(CustomerStock),
		siteOrder: make(map[string][]string),
	}

	for _, p := range purchases {
		for _, item := range p.Items {
			l.addWarehouse(p.Warehouse, item.Product, item.Quantity)
		}
	}

	// Transfers move stock regardless of lifecycle status: the equipment
	// physically left the warehouse even if the rental was later closed.
	for _, t := range transfers {
		for _, item := range t.Items {
			l.subWarehouse(t.From, item.Product, item.Quantity)
			l.addSite(t.Customer, t.Site, item.Product, item.Quantity)
		}
	}

	for _, r := range returns {
		for _, item := range r.Items {
			l.addWarehouse(r.ReturnTo, item.Product, item.Quantity)
			l.subSite(r.Customer, item.Product, item.Quantity)
		}
	}

	for _, s := range sales {
		for _, item := range s.Items {
			if s.FromWarehouseSide() {
				l.subWarehouse(s.FromWarehouse, item.Product, item.Quantity)
			} else {
				l.subNamedSite(s.FromCustomer, s.FromSite, item.Product, item.Quantity)
			}
		}
	}

	return Snapshot{
		Warehouse: l.warehouse,
		Customer:  l.customer,
		Warnings:  l.warnings,
	}
}

func (l *ledger) addWarehouse(warehouse, product string, qty types.Quantity) {
	m := l.warehouse[warehouse]
	if m == nil {
		m = make(map[string]types.Quantity)
		l.warehouse[warehouse] = m
	}
	m[product] += qty
}

func (l *ledger) subWarehouse(warehouse, product string, qty types.Quantity) {
	m := l.warehouse[warehouse]
	if m == nil {
		m = make(map[string]types.Quantity)
		l.warehouse[warehouse] = m
	}
	m[product] -= qty
	if m[product].IsNegative() {
		m[product] = 0
	}
}

func (l *ledger) addSite(customer, site, product string, qty types.Quantity) {
	sites := l.customer[customer]
	if sites == nil {
		sites = make(map[string]map[string]types.Quantity)
		l.customer[customer] = sites
	}
	m := sites[site]
	if m == nil {
		m = make(map[string]types.Quantity)
		sites[site] = m
		l.siteOrder[customer] = append(l.siteOrder[customer], site)
	}
	m[product] += qty
}

// subSite deducts a returned quantity from the first customer site holding
// non-zero stock of the product. Returns do not record a site, so this is
// an approximation; it deliberately does not mirror the billing
// allocator's FIFO matching (see DESIGN.md).
func (l *ledger) subSite(customer, product string, qty types.Quantity) {
	for _, site := range l.siteOrder[customer] {
		m := l.customer[customer][site]
		if m[product].IsPositive() {
			m[product] -= qty
			if m[product].IsNegative() {
				m[product] = 0
			}
			return
		}
	}

	l.warnings = append(l.warnings, Warning{
		Code:     WarnReturnSiteNotFound,
		Customer: customer,
		Product:  product,
		Message:  fmt.Sprintf("return of %s %s by %s matched no site with stock", qty, product, customer),
	})
}

func (l *ledger) subNamedSite(customer, site, product string, qty types.Quantity) {
	m := l.customer[customer][site]
	if m == nil || !m[product].IsPositive() {
		return
	}
	m[product] -= qty
	if m[product].IsNegative() {
		m[product] = 0
	}
}
