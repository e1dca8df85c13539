package reports

import (
	"context"
	"testing"
	"time"

	"github.com/salilgupta4/agile-rental-management/internal/core/entity"
	"github.com/salilgupta4/agile-rental-management/internal/core/types"
	"github.com/salilgupta4/agile-rental-management/internal/domain/documents/purchase"
	"github.com/salilgupta4/agile-rental-management/internal/domain/documents/rental_return"
	"github.com/salilgupta4/agile-rental-management/internal/domain/documents/rentalorder"
	"github.com/salilgupta4/agile-rental-management/internal/domain/documents/sale"
	"github.com/salilgupta4/agile-rental-management/internal/domain/documents/transfer"
	"github.com/salilgupta4/agile-rental-management/internal/domain/gst"
	"github.com/salilgupta4/agile-rental-management/internal/domain/settings"
	"github.com/salilgupta4/agile-rental-management/internal/infrastructure/storage/memory"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func qty(n int64) types.Quantity {
	return types.NewQuantityFromInt(n)
}

func money(n int64) types.Money {
	return types.NewMoneyFromInt(n)
}

// fixture seeds one rental cycle: 50 pipes purchased, 30 delivered to
// Acme / Site A on Jan 10 at 2/day, 10 returned with rent through Jan 20.
func fixture(t *testing.T) *Service {
	t.Helper()
	ctx := context.Background()

	purchases := memory.NewDocumentRepo[*purchase.Purchase]("purchase")
	transfers := memory.NewDocumentRepo[*transfer.Transfer]("transfer")
	returns := memory.NewDocumentRepo[*rental_return.Return]("return")
	sales := memory.NewDocumentRepo[*sale.Sale]("sale")
	orders := memory.NewDocumentRepo[*rentalorder.RentalOrder]("rental order")

	p := &purchase.Purchase{
		Document:  entity.NewDocument(date(2024, time.January, 5)),
		Warehouse: "Main",
		TaxType:   gst.TaxLocal,
		Items: []purchase.Line{
			{Product: "Pipe", Quantity: qty(50), UnitPrice: money(100)},
		},
	}
	p.Number = "PUR-2024-00001"
	if err := purchases.Create(ctx, p); err != nil {
		t.Fatal(err)
	}

	tr := &transfer.Transfer{
		Document:        entity.NewDocument(date(2024, time.January, 10)),
		From:            "Main",
		Customer:        "Acme",
		Site:            "Site A",
		RentalStartDate: date(2024, time.January, 10),
		Status:          transfer.StatusRented,
		Items: []transfer.Line{
			{Product: "Pipe", Quantity: qty(30), PerDayRent: money(2)},
		},
	}
	tr.Number = "DC-2024-00001"
	if err := transfers.Create(ctx, tr); err != nil {
		t.Fatal(err)
	}

	ret := &rental_return.Return{
		Document:      entity.NewDocument(date(2024, time.January, 20)),
		Customer:      "Acme",
		ReturnTo:      "Main",
		RentalEndDate: date(2024, time.January, 20),
		Items: []rental_return.Line{
			{Product: "Pipe", Quantity: qty(10)},
		},
	}
	ret.Number = "RET-2024-00001"
	if err := returns.Create(ctx, ret); err != nil {
		t.Fatal(err)
	}

	pending := &rentalorder.RentalOrder{
		Document: entity.NewDocument(date(2024, time.January, 8)),
		Customer: "Acme",
		Site:     "Site B",
		Items: []rentalorder.Line{
			{Product: "Jack", Quantity: qty(5), PerDayRent: money(3)},
		},
	}
	pending.Number = "RO-2024-00001"
	if err := orders.Create(ctx, pending); err != nil {
		t.Fatal(err)
	}

	return NewService(purchases, transfers, returns, sales, orders,
		settings.NewService(memory.NewSettingsStore()))
}

func TestStockReportValuesBothSides(t *testing.T) {
	svc := fixture(t)

	report, err := svc.StockReport(context.Background(), ScopeTotal)
	if err != nil {
		t.Fatal(err)
	}

	// 50 purchased - 30 out + 10 back = 30 in Main, 20 at the site.
	if len(report.Rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(report.Rows))
	}
	site, main := report.Rows[0], report.Rows[1]
	if site.Location != "Acme / Site A" || site.Quantity != qty(20) {
		t.Errorf("site row = %s %s", site.Location, site.Quantity)
	}
	if main.Location != "Main" || main.Quantity != qty(30) {
		t.Errorf("warehouse row = %s %s", main.Location, main.Quantity)
	}
	if !report.TotalValue.Equal(money(5000)) {
		t.Errorf("total value = %s, want 5000", report.TotalValue)
	}
}

func TestMonthlyRentalSummary(t *testing.T) {
	svc := fixture(t)

	summary, err := svc.MonthlyRentalSummary(context.Background(),
		date(2024, time.January, 15), date(2024, time.January, 31))
	if err != nil {
		t.Fatal(err)
	}

	// Returned 10 billed Jan 10..20 (10 days x 2), remaining 20 billed
	// Jan 10..31 (21 days x 2).
	if !summary.Total.Equal(money(1040)) {
		t.Errorf("total = %s, want 1040", summary.Total)
	}
	if len(summary.Rows) != 1 {
		t.Fatalf("rows = %d, want 1", len(summary.Rows))
	}
	row := summary.Rows[0]
	if row.Customer != "Acme" || row.Site != "Site A" || !row.Amount.Equal(money(1040)) {
		t.Errorf("row = %+v", row)
	}
}

func TestMonthlyRentalSummaryOmitsZeroAmountSites(t *testing.T) {
	ctx := context.Background()

	purchases := memory.NewDocumentRepo[*purchase.Purchase]("purchase")
	transfers := memory.NewDocumentRepo[*transfer.Transfer]("transfer")
	returns := memory.NewDocumentRepo[*rental_return.Return]("return")
	sales := memory.NewDocumentRepo[*sale.Sale]("sale")
	orders := memory.NewDocumentRepo[*rentalorder.RentalOrder]("rental order")

	// A delivery on the period's last day bills zero days.
	zeroDay := &transfer.Transfer{
		Document:        entity.NewDocument(date(2024, time.January, 31)),
		From:            "Main",
		Customer:        "Acme",
		Site:            "Site B",
		RentalStartDate: date(2024, time.January, 31),
		Status:          transfer.StatusRented,
		Items: []transfer.Line{
			{Product: "Pipe", Quantity: qty(10), PerDayRent: money(5)},
		},
	}
	if err := transfers.Create(ctx, zeroDay); err != nil {
		t.Fatal(err)
	}

	billed := &transfer.Transfer{
		Document:        entity.NewDocument(date(2024, time.January, 10)),
		From:            "Main",
		Customer:        "Acme",
		Site:            "Site A",
		RentalStartDate: date(2024, time.January, 10),
		Status:          transfer.StatusRented,
		Items: []transfer.Line{
			{Product: "Pipe", Quantity: qty(5), PerDayRent: money(2)},
		},
	}
	if err := transfers.Create(ctx, billed); err != nil {
		t.Fatal(err)
	}

	svc := NewService(purchases, transfers, returns, sales, orders,
		settings.NewService(memory.NewSettingsStore()))

	summary, err := svc.MonthlyRentalSummary(ctx,
		date(2024, time.January, 15), date(2024, time.January, 31))
	if err != nil {
		t.Fatal(err)
	}

	if len(summary.Rows) != 1 {
		t.Fatalf("rows = %d, want 1 (zero-amount site omitted)", len(summary.Rows))
	}
	row := summary.Rows[0]
	if row.Site != "Site A" || !row.Amount.Equal(money(210)) {
		t.Errorf("row = %+v, want Site A at 210", row)
	}
	if !summary.Total.Equal(money(210)) {
		t.Errorf("total = %s, want 210", summary.Total)
	}
}

func TestRentalStatementGroupsLines(t *testing.T) {
	svc := fixture(t)

	st, err := svc.RentalStatement(context.Background(), "Acme", "Site A",
		date(2024, time.January, 1), date(2024, time.January, 31), date(2024, time.January, 31))
	if err != nil {
		t.Fatal(err)
	}

	if !st.Total.Equal(money(1040)) {
		t.Errorf("total = %s, want 1040", st.Total)
	}
	if len(st.Lines) != 2 || len(st.GroupedLines) != 2 {
		t.Errorf("lines = %d, grouped = %d, want 2 and 2", len(st.Lines), len(st.GroupedLines))
	}
}

func TestTransactionJournal(t *testing.T) {
	svc := fixture(t)

	j, err := svc.TransactionJournal(context.Background(),
		date(2024, time.January, 1), date(2024, time.January, 31))
	if err != nil {
		t.Fatal(err)
	}

	if len(j.Entries) != 4 {
		t.Fatalf("entries = %d, want 4", len(j.Entries))
	}

	// Newest first.
	if j.Entries[0].Type != "return" || j.Entries[3].Type != "purchase" {
		t.Errorf("order = [%s ... %s]", j.Entries[0].Type, j.Entries[3].Type)
	}

	// Purchase carries a GST breakdown at the default 9+9 split.
	pur := j.Entries[3]
	if pur.GST == nil {
		t.Fatal("purchase entry has no GST breakdown")
	}
	if !pur.GST.BaseAmount.Equal(money(5000)) || !pur.GST.TotalAmount.Equal(money(5900)) {
		t.Errorf("gst = base %s total %s, want 5000 and 5900", pur.GST.BaseAmount, pur.GST.TotalAmount)
	}

	// Transfers never carry tax.
	if j.Entries[1].Type != "transfer" || j.Entries[1].GST != nil {
		t.Errorf("transfer entry = %+v", j.Entries[1])
	}
}

func TestTransactionJournalDateFilter(t *testing.T) {
	svc := fixture(t)

	j, err := svc.TransactionJournal(context.Background(),
		date(2024, time.January, 9), date(2024, time.January, 15))
	if err != nil {
		t.Fatal(err)
	}

	if len(j.Entries) != 1 || j.Entries[0].Type != "transfer" {
		t.Fatalf("entries = %+v, want only the transfer", j.Entries)
	}
}

func TestDashboardFigures(t *testing.T) {
	svc := fixture(t)

	figures, err := svc.DashboardFigures(context.Background(), date(2024, time.January, 31))
	if err != nil {
		t.Fatal(err)
	}

	if !figures.WarehouseValue.Equal(money(3000)) {
		t.Errorf("warehouse value = %s, want 3000", figures.WarehouseValue)
	}
	if !figures.CustomerValue.Equal(money(2000)) {
		t.Errorf("customer value = %s, want 2000", figures.CustomerValue)
	}
	if !figures.TotalStockValue.Equal(money(5000)) {
		t.Errorf("total stock value = %s, want 5000", figures.TotalStockValue)
	}
	if !figures.MonthlyRentalEstimate.Equal(money(1040)) {
		t.Errorf("rental estimate = %s, want 1040", figures.MonthlyRentalEstimate)
	}
	if figures.ActiveRentals != 1 || figures.PendingOrders != 1 {
		t.Errorf("active = %d, pending = %d, want 1 and 1", figures.ActiveRentals, figures.PendingOrders)
	}
}
