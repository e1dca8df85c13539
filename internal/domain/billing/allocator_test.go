package billing

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/salilgupta4/agile-rental-management/internal/core/entity"
	"github.com/salilgupta4/agile-rental-management/internal/core/types"
	"github.com/salilgupta4/agile-rental-management/internal/domain/documents/rental_return"
	"github.com/salilgupta4/agile-rental-management/internal/domain/documents/rentalorder"
	"github.com/salilgupta4/agile-rental-management/internal/domain/documents/transfer"
)

func qty(n int64) types.Quantity { return types.NewQuantityFromInt(n) }

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func newTransfer(customer, site string, start time.Time, items ...transfer.Line) *transfer.Transfer {
	return &transfer.Transfer{
		Document:        entity.NewDocument(start),
		From:            "Main",
		Customer:        customer,
		Site:            site,
		RentalStartDate: start,
		Status:          transfer.StatusRented,
		Items:           items,
	}
}

func newReturn(customer string, end time.Time, items ...rental_return.Line) *rental_return.Return {
	return &rental_return.Return{
		Document:      entity.NewDocument(end),
		Customer:      customer,
		ReturnTo:      "Main",
		RentalEndDate: end,
		Items:         items,
	}
}

func january() Query {
	return Query{
		PeriodStart: date(2024, 1, 1),
		PeriodEnd:   date(2024, 1, 31),
	}
}

func TestChargeDays(t *testing.T) {
	tests := []struct {
		name     string
		from, to time.Time
		want     int
	}{
		{"same day", date(2024, 1, 10), date(2024, 1, 10), 0},
		{"ten days", date(2024, 1, 10), date(2024, 1, 20), 10},
		{"full january span", date(2024, 1, 10), date(2024, 1, 31), 21},
		{"reversed", date(2024, 1, 20), date(2024, 1, 10), 10},
		{"partial day rounds up", time.Date(2024, 1, 10, 23, 59, 0, 0, time.UTC), date(2024, 1, 12), 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ChargeDays(tt.from, tt.to); got != tt.want {
				t.Errorf("ChargeDays = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestAllocateScenario(t *testing.T) {
	// 30 units out on Jan 10 at 2/day, 10 returned with rental end Jan 20.
	// Returned: 10 * 10 days * 2 = 200. Still on rent: 20 * 21 days * 2 = 840.
	transfers := []*transfer.Transfer{
		newTransfer("C", "S", date(2024, 1, 10),
			transfer.Line{Product: "P", Quantity: qty(30), PerDayRent: types.NewMoney(2)}),
	}
	returns := []*rental_return.Return{
		newReturn("C", date(2024, 1, 20),
			rental_return.Line{Product: "P", Quantity: qty(10)}),
	}

	st := Allocate(january(), transfers, returns, nil)

	if len(st.Lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(st.Lines))
	}

	returned, onRent := st.Lines[0], st.Lines[1]
	if !returned.Returned || onRent.Returned {
		t.Fatalf("expected returned line first, then still-on-rent")
	}
	if returned.Quantity != qty(10) || returned.Days != 10 || !returned.Amount.Equal(types.NewMoney(200)) {
		t.Errorf("returned line = %+v, want qty 10, 10 days, amount 200", returned)
	}
	if onRent.Quantity != qty(20) || onRent.Days != 21 || !onRent.Amount.Equal(types.NewMoney(840)) {
		t.Errorf("on-rent line = %+v, want qty 20, 21 days, amount 840", onRent)
	}
	if !st.Total().Equal(types.NewMoney(1040)) {
		t.Errorf("total = %s, want 1040", st.Total())
	}
}

func TestAllocateLegacySingleItemDocuments(t *testing.T) {
	// Old records carry product/quantity/perDayRent at the top level
	// instead of an items array. Once decoded, they must bill exactly
	// like their normalized equivalents.
	var legacyTransfer transfer.Transfer
	if err := json.Unmarshal([]byte(`{
		"date": "2024-01-10T00:00:00Z",
		"from": "Main",
		"customer": "C",
		"site": "S",
		"rentalStartDate": "2024-01-10T00:00:00Z",
		"status": "Rented",
		"product": "P",
		"quantity": 30,
		"perDayRent": 2
	}`), &legacyTransfer); err != nil {
		t.Fatalf("decode transfer: %v", err)
	}

	var legacyReturn rental_return.Return
	if err := json.Unmarshal([]byte(`{
		"date": "2024-01-20T00:00:00Z",
		"customer": "C",
		"returnTo": "Main",
		"rentalEndDate": "2024-01-20T00:00:00Z",
		"product": "P",
		"quantity": 10
	}`), &legacyReturn); err != nil {
		t.Fatalf("decode return: %v", err)
	}

	got := Allocate(january(),
		[]*transfer.Transfer{&legacyTransfer},
		[]*rental_return.Return{&legacyReturn}, nil)

	want := Allocate(january(),
		[]*transfer.Transfer{newTransfer("C", "S", date(2024, 1, 10),
			transfer.Line{Product: "P", Quantity: qty(30), PerDayRent: types.NewMoney(2)})},
		[]*rental_return.Return{newReturn("C", date(2024, 1, 20),
			rental_return.Line{Product: "P", Quantity: qty(10)})}, nil)

	if len(got.Lines) != len(want.Lines) {
		t.Fatalf("got %d lines, want %d", len(got.Lines), len(want.Lines))
	}
	for i := range want.Lines {
		g, w := got.Lines[i], want.Lines[i]
		if g.Quantity != w.Quantity || g.Days != w.Days ||
			!g.Amount.Equal(w.Amount) || g.Returned != w.Returned {
			t.Errorf("line %d = %+v, want %+v", i, g, w)
		}
	}
	if !got.Total().Equal(types.NewMoney(1040)) {
		t.Errorf("total = %s, want 1040", got.Total())
	}
	if len(got.Warnings) != 0 {
		t.Errorf("unexpected warnings: %v", got.Warnings)
	}
}

func TestAllocateFIFODeterminism(t *testing.T) {
	// Two transfers (10 then 5) and a return of 10: the older transfer is
	// fully returned, the newer stays on rent in full.
	transfers := []*transfer.Transfer{
		newTransfer("C", "S", date(2024, 1, 15),
			transfer.Line{Product: "P", Quantity: qty(5), PerDayRent: types.NewMoney(1)}),
		newTransfer("C", "S", date(2024, 1, 5),
			transfer.Line{Product: "P", Quantity: qty(10), PerDayRent: types.NewMoney(1)}),
	}
	returns := []*rental_return.Return{
		newReturn("C", date(2024, 1, 25),
			rental_return.Line{Product: "P", Quantity: qty(10)}),
	}

	st := Allocate(january(), transfers, returns, nil)

	if len(st.Lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(st.Lines))
	}
	if !st.Lines[0].Returned || st.Lines[0].Quantity != qty(10) {
		t.Errorf("oldest transfer should be fully returned, got %+v", st.Lines[0])
	}
	if st.Lines[1].Returned || st.Lines[1].Quantity != qty(5) {
		t.Errorf("newer transfer should stay fully on rent, got %+v", st.Lines[1])
	}
}

func TestAllocatePartialReturnSplitsTransfer(t *testing.T) {
	transfers := []*transfer.Transfer{
		newTransfer("C", "S", date(2024, 1, 5),
			transfer.Line{Product: "P", Quantity: qty(10), PerDayRent: types.NewMoney(3)}),
	}
	returns := []*rental_return.Return{
		newReturn("C", date(2024, 1, 15),
			rental_return.Line{Product: "P", Quantity: qty(4)}),
	}

	st := Allocate(january(), transfers, returns, nil)

	if len(st.Lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(st.Lines))
	}
	if st.Lines[0].Quantity != qty(4) || st.Lines[0].Days != 10 {
		t.Errorf("returned split = %+v, want qty 4 over 10 days", st.Lines[0])
	}
	if st.Lines[1].Quantity != qty(6) || st.Lines[1].Days != 26 {
		t.Errorf("on-rent split = %+v, want qty 6 over 26 days", st.Lines[1])
	}
}

func TestAllocateZeroDayEdge(t *testing.T) {
	// A transfer starting on the period's last day bills zero days, not one.
	transfers := []*transfer.Transfer{
		newTransfer("C", "S", date(2024, 1, 31),
			transfer.Line{Product: "P", Quantity: qty(10), PerDayRent: types.NewMoney(5)}),
	}

	st := Allocate(january(), transfers, nil, nil)

	if len(st.Lines) != 1 {
		t.Fatalf("got %d lines, want 1", len(st.Lines))
	}
	if st.Lines[0].Days != 0 || !st.Lines[0].Amount.IsZero() {
		t.Errorf("line = %+v, want 0 days and 0 amount", st.Lines[0])
	}
}

func TestAllocateRateFallbackToRentalOrder(t *testing.T) {
	transfers := []*transfer.Transfer{
		newTransfer("C", "S", date(2024, 1, 10),
			transfer.Line{Product: "P", Quantity: qty(10)}),
	}
	orders := []*rentalorder.RentalOrder{
		{
			Document: entity.NewDocument(date(2024, 1, 1)),
			Customer: "C",
			Site:     "S",
			Items: []rentalorder.Line{
				{Product: "other", Quantity: qty(1), PerDayRent: types.NewMoney(9)},
				{Product: "P", Quantity: qty(10), PerDayRent: types.NewMoney(4)},
			},
		},
	}

	st := Allocate(january(), transfers, nil, orders)

	if len(st.Lines) != 1 {
		t.Fatalf("got %d lines, want 1", len(st.Lines))
	}
	if !st.Lines[0].RatePerDay.Equal(types.NewMoney(4)) {
		t.Errorf("rate = %s, want 4 from rental order", st.Lines[0].RatePerDay)
	}
	if len(st.Warnings) != 0 {
		t.Errorf("unexpected warnings: %v", st.Warnings)
	}
}

func TestAllocateUnresolvedRateWarnsAndBillsZero(t *testing.T) {
	transfers := []*transfer.Transfer{
		newTransfer("C", "S", date(2024, 1, 10),
			transfer.Line{Product: "P", Quantity: qty(10)}),
	}

	st := Allocate(january(), transfers, nil, nil)

	if len(st.Lines) != 1 {
		t.Fatalf("got %d lines, want 1", len(st.Lines))
	}
	if !st.Lines[0].Amount.IsZero() {
		t.Errorf("amount = %s, want 0 for unresolved rate", st.Lines[0].Amount)
	}
	if len(st.Warnings) != 1 || st.Warnings[0].Code != WarnUnresolvedRate {
		t.Errorf("warnings = %v, want one %s", st.Warnings, WarnUnresolvedRate)
	}
}

func TestAllocateFiltersAndStatuses(t *testing.T) {
	closed := newTransfer("C", "S", date(2024, 1, 5),
		transfer.Line{Product: "P", Quantity: qty(10), PerDayRent: types.NewMoney(2)})
	closed.Status = transfer.StatusClosed

	transfers := []*transfer.Transfer{
		closed,
		newTransfer("C", "S", date(2024, 1, 10),
			transfer.Line{Product: "P", Quantity: qty(5), PerDayRent: types.NewMoney(2)}),
		newTransfer("Other", "X", date(2024, 1, 10),
			transfer.Line{Product: "P", Quantity: qty(7), PerDayRent: types.NewMoney(2)}),
	}

	q := january()
	q.Customer = "C"
	q.Site = "S"
	st := Allocate(q, transfers, nil, nil)

	if len(st.Lines) != 1 {
		t.Fatalf("got %d lines, want 1 (closed and other-customer excluded)", len(st.Lines))
	}
	if st.Lines[0].Quantity != qty(5) {
		t.Errorf("quantity = %s, want 5", st.Lines[0].Quantity)
	}
}

func TestAllocateRunningPeriodCapsAtAsOf(t *testing.T) {
	transfers := []*transfer.Transfer{
		newTransfer("C", "S", date(2024, 1, 10),
			transfer.Line{Product: "P", Quantity: qty(10), PerDayRent: types.NewMoney(2)}),
	}

	q := january()
	q.AsOf = date(2024, 1, 15)
	st := Allocate(q, transfers, nil, nil)

	if len(st.Lines) != 1 {
		t.Fatalf("got %d lines, want 1", len(st.Lines))
	}
	if st.Lines[0].Days != 5 {
		t.Errorf("days = %d, want 5 (capped at as-of date)", st.Lines[0].Days)
	}
}

func TestStatementGrouped(t *testing.T) {
	st := Statement{Lines: []Line{
		{Customer: "C", Site: "S1", Product: "P", Quantity: qty(3), RatePerDay: types.NewMoney(2), Days: 10, Amount: types.NewMoney(60)},
		{Customer: "C", Site: "S2", Product: "P", Quantity: qty(2), RatePerDay: types.NewMoney(2), Days: 10, Amount: types.NewMoney(40)},
		{Customer: "C", Site: "S1", Product: "A", Quantity: qty(1), RatePerDay: types.NewMoney(5), Days: 4, Amount: types.NewMoney(20)},
	}}

	grouped := st.Grouped()

	if len(grouped) != 2 {
		t.Fatalf("got %d grouped lines, want 2", len(grouped))
	}
	// Sorted by product: A before P.
	if grouped[0].Product != "A" {
		t.Errorf("first grouped product = %s, want A", grouped[0].Product)
	}
	if grouped[1].Quantity != qty(5) || !grouped[1].Amount.Equal(types.NewMoney(100)) {
		t.Errorf("merged line = %+v, want qty 5 amount 100", grouped[1])
	}
}
