package inventory

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/salilgupta4/agile-rental-management/internal/core/entity"
	"github.com/salilgupta4/agile-rental-management/internal/core/types"
	"github.com/salilgupta4/agile-rental-management/internal/domain/documents/purchase"
	"github.com/salilgupta4/agile-rental-management/internal/domain/documents/rental_return"
	"github.com/salilgupta4/agile-rental-management/internal/domain/documents/sale"
	"github.com/salilgupta4/agile-rental-management/internal/domain/documents/transfer"
)

func qty(n int64) types.Quantity { return types.NewQuantityFromInt(n) }

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func newPurchase(warehouse string, items ...purchase.Line) *purchase.Purchase {
	return &purchase.Purchase{
		Document:  entity.NewDocument(date(2024, 1, 1)),
		Warehouse: warehouse,
		Items:     items,
	}
}

func newTransfer(from, customer, site string, start time.Time, items ...transfer.Line) *transfer.Transfer {
	return &transfer.Transfer{
		Document:        entity.NewDocument(start),
		From:            from,
		Customer:        customer,
		Site:            site,
		RentalStartDate: start,
		Status:          transfer.StatusRented,
		Items:           items,
	}
}

func newReturn(customer, returnTo string, end time.Time, items ...rental_return.Line) *rental_return.Return {
	return &rental_return.Return{
		Document:      entity.NewDocument(end),
		Customer:      customer,
		ReturnTo:      returnTo,
		RentalEndDate: end,
		Items:         items,
	}
}

func TestComputeStockMovesQuantitiesThroughLocations(t *testing.T) {
	purchases := []*purchase.Purchase{
		newPurchase("Main", purchase.Line{Product: "Prop 3m", Quantity: qty(100), UnitPrice: types.NewMoney(500)}),
	}
	transfers := []*transfer.Transfer{
		newTransfer("Main", "Acme", "Site A", date(2024, 1, 10),
			transfer.Line{Product: "Prop 3m", Quantity: qty(30), PerDayRent: types.NewMoney(2)}),
	}
	returns := []*rental_return.Return{
		newReturn("Acme", "Main", date(2024, 1, 20),
			rental_return.Line{Product: "Prop 3m", Quantity: qty(10)}),
	}

	s := ComputeStock(purchases, transfers, returns, nil)

	if got := s.Warehouse.Qty("Main", "Prop 3m"); got != qty(80) {
		t.Errorf("warehouse qty = %s, want 80", got)
	}
	if got := s.Customer.Qty("Acme", "Site A", "Prop 3m"); got != qty(20) {
		t.Errorf("site qty = %s, want 20", got)
	}
	if len(s.Warnings) != 0 {
		t.Errorf("unexpected warnings: %v", s.Warnings)
	}
}

func TestComputeStockConservationWithoutClamping(t *testing.T) {
	// When no record over-draws a location, total purchased quantity
	// equals warehouse stock plus customer stock.
	purchases := []*purchase.Purchase{
		newPurchase("Main",
			purchase.Line{Product: "Jack", Quantity: qty(50), UnitPrice: types.NewMoney(1200)},
			purchase.Line{Product: "Span", Quantity: qty(40), UnitPrice: types.NewMoney(900)},
		),
	}
	transfers := []*transfer.Transfer{
		newTransfer("Main", "Acme", "Site A", date(2024, 2, 1),
			transfer.Line{Product: "Jack", Quantity: qty(20), PerDayRent: types.NewMoney(3)}),
		newTransfer("Main", "Beta", "Tower 1", date(2024, 2, 5),
			transfer.Line{Product: "Span", Quantity: qty(15), PerDayRent: types.NewMoney(4)}),
	}
	returns := []*rental_return.Return{
		newReturn("Acme", "Main", date(2024, 2, 20),
			rental_return.Line{Product: "Jack", Quantity: qty(5)}),
	}

	s := ComputeStock(purchases, transfers, returns, nil)

	for _, product := range []string{"Jack", "Span"} {
		var total types.Quantity
		for _, products := range s.Warehouse {
			total += products[product]
		}
		for _, sites := range s.Customer {
			for _, products := range sites {
				total += products[product]
			}
		}

		want := qty(50)
		if product == "Span" {
			want = qty(40)
		}
		if total != want {
			t.Errorf("%s: total stock = %s, want %s", product, total, want)
		}
	}
}

func TestComputeStockClampsNegativeQuantities(t *testing.T) {
	// A transfer larger than available stock drains the warehouse to
	// zero instead of going negative.
	purchases := []*purchase.Purchase{
		newPurchase("Main", purchase.Line{Product: "Prop 3m", Quantity: qty(5), UnitPrice: types.NewMoney(500)}),
	}
	transfers := []*transfer.Transfer{
		newTransfer("Main", "Acme", "Site A", date(2024, 1, 10),
			transfer.Line{Product: "Prop 3m", Quantity: qty(30), PerDayRent: types.NewMoney(2)}),
	}

	s := ComputeStock(purchases, transfers, nil, nil)

	if got := s.Warehouse.Qty("Main", "Prop 3m"); got != 0 {
		t.Errorf("warehouse qty = %s, want 0", got)
	}
	if got := s.Customer.Qty("Acme", "Site A", "Prop 3m"); got != qty(30) {
		t.Errorf("site qty = %s, want 30", got)
	}
}

func TestComputeStockReturnMatchesFirstSiteWithStock(t *testing.T) {
	transfers := []*transfer.Transfer{
		newTransfer("Main", "Acme", "Site A", date(2024, 1, 1),
			transfer.Line{Product: "Prop 3m", Quantity: qty(10), PerDayRent: types.NewMoney(2)}),
		newTransfer("Main", "Acme", "Site B", date(2024, 1, 2),
			transfer.Line{Product: "Prop 3m", Quantity: qty(10), PerDayRent: types.NewMoney(2)}),
	}
	returns := []*rental_return.Return{
		newReturn("Acme", "Main", date(2024, 1, 15),
			rental_return.Line{Product: "Prop 3m", Quantity: qty(10)}),
		newReturn("Acme", "Main", date(2024, 1, 16),
			rental_return.Line{Product: "Prop 3m", Quantity: qty(4)}),
	}

	s := ComputeStock(nil, transfers, returns, nil)

	if got := s.Customer.Qty("Acme", "Site A", "Prop 3m"); got != 0 {
		t.Errorf("Site A qty = %s, want 0", got)
	}
	// Second return skips the drained Site A and lands on Site B.
	if got := s.Customer.Qty("Acme", "Site B", "Prop 3m"); got != qty(6) {
		t.Errorf("Site B qty = %s, want 6", got)
	}
}

func TestComputeStockWarnsWhenReturnMatchesNoSite(t *testing.T) {
	returns := []*rental_return.Return{
		newReturn("Acme", "Main", date(2024, 1, 15),
			rental_return.Line{Product: "Prop 3m", Quantity: qty(10)}),
	}

	s := ComputeStock(nil, nil, returns, nil)

	// The warehouse still receives the returned stock.
	if got := s.Warehouse.Qty("Main", "Prop 3m"); got != qty(10) {
		t.Errorf("warehouse qty = %s, want 10", got)
	}
	if len(s.Warnings) != 1 || s.Warnings[0].Code != WarnReturnSiteNotFound {
		t.Errorf("warnings = %v, want one %s", s.Warnings, WarnReturnSiteNotFound)
	}
}

func TestComputeStockSalesDeductFromEitherSide(t *testing.T) {
	purchases := []*purchase.Purchase{
		newPurchase("Main", purchase.Line{Product: "Prop 3m", Quantity: qty(40), UnitPrice: types.NewMoney(500)}),
	}
	transfers := []*transfer.Transfer{
		newTransfer("Main", "Acme", "Site A", date(2024, 1, 5),
			transfer.Line{Product: "Prop 3m", Quantity: qty(20), PerDayRent: types.NewMoney(2)}),
	}
	sales := []*sale.Sale{
		{
			Document:      entity.NewDocument(date(2024, 1, 10)),
			FromWarehouse: "Main",
			Items:         []sale.Line{{Product: "Prop 3m", Quantity: qty(5), SalePrice: types.NewMoney(700)}},
		},
		{
			Document:     entity.NewDocument(date(2024, 1, 12)),
			FromCustomer: "Acme",
			FromSite:     "Site A",
			Items:        []sale.Line{{Product: "Prop 3m", Quantity: qty(3), SalePrice: types.NewMoney(700)}},
		},
	}

	s := ComputeStock(purchases, transfers, nil, sales)

	if got := s.Warehouse.Qty("Main", "Prop 3m"); got != qty(15) {
		t.Errorf("warehouse qty = %s, want 15", got)
	}
	if got := s.Customer.Qty("Acme", "Site A", "Prop 3m"); got != qty(17) {
		t.Errorf("site qty = %s, want 17", got)
	}
}

func TestComputeStockLegacySingleItemRecords(t *testing.T) {
	// Legacy records decoded from storage behave exactly like their
	// normalized items form.
	var legacy, modern transfer.Transfer

	legacyJSON := `{"date":"2024-01-10T00:00:00Z","from":"Main","customer":"Acme","site":"Site A",
		"rentalStartDate":"2024-01-10T00:00:00Z","status":"Rented",
		"product":"Prop 3m","quantity":30,"perDayRent":2}`
	modernJSON := `{"date":"2024-01-10T00:00:00Z","from":"Main","customer":"Acme","site":"Site A",
		"rentalStartDate":"2024-01-10T00:00:00Z","status":"Rented",
		"items":[{"product":"Prop 3m","quantity":30,"perDayRent":2}]}`

	if err := json.Unmarshal([]byte(legacyJSON), &legacy); err != nil {
		t.Fatalf("unmarshal legacy: %v", err)
	}
	if err := json.Unmarshal([]byte(modernJSON), &modern); err != nil {
		t.Fatalf("unmarshal modern: %v", err)
	}

	a := ComputeStock(nil, []*transfer.Transfer{&legacy}, nil, nil)
	b := ComputeStock(nil, []*transfer.Transfer{&modern}, nil, nil)

	if a.Customer.Qty("Acme", "Site A", "Prop 3m") != b.Customer.Qty("Acme", "Site A", "Prop 3m") {
		t.Errorf("legacy and normalized records disagree: %s vs %s",
			a.Customer.Qty("Acme", "Site A", "Prop 3m"),
			b.Customer.Qty("Acme", "Site A", "Prop 3m"))
	}
}
