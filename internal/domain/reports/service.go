// Package reports derives read-only views from the transaction logs:
// stock reports, rental billing statements, the transaction journal and
// dashboard figures. Nothing here writes; every report is recomputed
// from the full logs on request.
package reports

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/salilgupta4/agile-rental-management/internal/core/id"
	"github.com/salilgupta4/agile-rental-management/internal/core/types"
	"github.com/salilgupta4/agile-rental-management/internal/domain/billing"
	"github.com/salilgupta4/agile-rental-management/internal/domain/documents/purchase"
	"github.com/salilgupta4/agile-rental-management/internal/domain/documents/rental_return"
	"github.com/salilgupta4/agile-rental-management/internal/domain/documents/rentalorder"
	"github.com/salilgupta4/agile-rental-management/internal/domain/documents/sale"
	"github.com/salilgupta4/agile-rental-management/internal/domain/documents/transfer"
	"github.com/salilgupta4/agile-rental-management/internal/domain/gst"
	"github.com/salilgupta4/agile-rental-management/internal/domain/inventory"
	"github.com/salilgupta4/agile-rental-management/internal/domain/settings"
	"github.com/salilgupta4/agile-rental-management/pkg/logger"
)

// Scope selects which side of the stock ledger a report covers.
type Scope string

const (
	ScopeWarehouse Scope = "warehouse"
	ScopeCustomer  Scope = "customer"
	ScopeTotal     Scope = "total"
)

// StockRow is one location/product line of a stock report.
type StockRow struct {
	Location string         `json:"location"`
	Product  string         `json:"product"`
	Quantity types.Quantity `json:"quantity"`
	UnitCost types.Money    `json:"unitCost"`
	Value    types.Money    `json:"value"`
}

// StockReport is the valued stock position for a scope.
type StockReport struct {
	Scope      Scope               `json:"scope"`
	Rows       []StockRow          `json:"rows"`
	TotalValue types.Money         `json:"totalValue"`
	Warnings   []inventory.Warning `json:"warnings,omitempty"`
}

// SummaryRow is one customer/site total of a monthly rental summary.
type SummaryRow struct {
	Customer string      `json:"customer"`
	Site     string      `json:"site"`
	Amount   types.Money `json:"amount"`
}

// RentalSummary totals rental charges per customer site over a period.
type RentalSummary struct {
	PeriodStart time.Time         `json:"periodStart"`
	PeriodEnd   time.Time         `json:"periodEnd"`
	Rows        []SummaryRow      `json:"rows"`
	Total       types.Money       `json:"total"`
	Warnings    []billing.Warning `json:"warnings,omitempty"`
}

// RentalStatement is the detailed billing statement for one customer
// site, with lines merged for presentation.
type RentalStatement struct {
	Customer string `json:"customer"`
	Site     string `json:"site"`
	billing.Statement
	GroupedLines []billing.Line `json:"groupedLines"`
	Total        types.Money    `json:"total"`
}

// JournalEntry is one transaction in the journal.
type JournalEntry struct {
	ID          id.ID          `json:"id"`
	Type        string         `json:"type"`
	Date        time.Time      `json:"date"`
	Number      string         `json:"number,omitempty"`
	Description string         `json:"description"`
	GST         *gst.Breakdown `json:"gst,omitempty"`
}

// Journal is the date-filtered transaction history, newest first.
type Journal struct {
	From    time.Time      `json:"from"`
	To      time.Time      `json:"to"`
	Entries []JournalEntry `json:"entries"`
}

// DashboardFigures are the headline numbers for the dashboard.
type DashboardFigures struct {
	WarehouseValue        types.Money `json:"warehouseValue"`
	CustomerValue         types.Money `json:"customerValue"`
	TotalStockValue       types.Money `json:"totalStockValue"`
	MonthlyRentalEstimate types.Money `json:"monthlyRentalEstimate"`
	ActiveRentals         int         `json:"activeRentals"`
	PendingOrders         int         `json:"pendingOrders"`
}

// Service computes reports over the transaction logs.
type Service struct {
	purchases purchase.Repository
	transfers transfer.Repository
	returns   rental_return.Repository
	sales     sale.Repository
	orders    rentalorder.Repository
	settings  *settings.Service
}

// NewService creates a reports service.
func NewService(
	purchases purchase.Repository,
	transfers transfer.Repository,
	returns rental_return.Repository,
	sales sale.Repository,
	orders rentalorder.Repository,
	settings *settings.Service,
) *Service {
	return &Service{
		purchases: purchases,
		transfers: transfers,
		returns:   returns,
		sales:     sales,
		orders:    orders,
		settings:  settings,
	}
}

// logs is one full read of the five transaction logs. The reads are not
// transactional: reports tolerate a log changing between fetches, the
// derivation clamps and warns instead of failing.
type logs struct {
	purchases []*purchase.Purchase
	transfers []*transfer.Transfer
	returns   []*rental_return.Return
	sales     []*sale.Sale
	orders    []*rentalorder.RentalOrder
}

func (s *Service) load(ctx context.Context) (*logs, error) {
	var (
		l   logs
		err error
	)
	if l.purchases, err = s.purchases.ListAll(ctx); err != nil {
		return nil, err
	}
	if l.transfers, err = s.transfers.ListAll(ctx); err != nil {
		return nil, err
	}
	if l.returns, err = s.returns.ListAll(ctx); err != nil {
		return nil, err
	}
	if l.sales, err = s.sales.ListAll(ctx); err != nil {
		return nil, err
	}
	if l.orders, err = s.orders.ListAll(ctx); err != nil {
		return nil, err
	}
	return &l, nil
}

// Stock computes the current stock snapshot.
func (s *Service) Stock(ctx context.Context) (inventory.Snapshot, error) {
	l, err := s.load(ctx)
	if err != nil {
		return inventory.Snapshot{}, err
	}
	snap := inventory.ComputeStock(l.purchases, l.transfers, l.returns, l.sales)
	for _, w := range snap.Warnings {
		logger.Warn(ctx, "stock derivation warning", "code", w.Code, "detail", w.Message)
	}
	return snap, nil
}

// StockReport values the current stock for a scope.
func (s *Service) StockReport(ctx context.Context, scope Scope) (*StockReport, error) {
	l, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	snap := inventory.ComputeStock(l.purchases, l.transfers, l.returns, l.sales)
	valuer := inventory.NewValuer(l.purchases)

	report := &StockReport{
		Scope:      scope,
		TotalValue: types.Zero(),
		Warnings:   snap.Warnings,
	}

	if scope == ScopeWarehouse || scope == ScopeTotal {
		for warehouse, products := range snap.Warehouse {
			for product, q := range products {
				report.addRow(warehouse, product, q, valuer)
			}
		}
	}
	if scope == ScopeCustomer || scope == ScopeTotal {
		for customer, sites := range snap.Customer {
			for site, products := range sites {
				for product, q := range products {
					report.addRow(customer+" / "+site, product, q, valuer)
				}
			}
		}
	}

	sort.Slice(report.Rows, func(i, j int) bool {
		if report.Rows[i].Location != report.Rows[j].Location {
			return report.Rows[i].Location < report.Rows[j].Location
		}
		return report.Rows[i].Product < report.Rows[j].Product
	})
	return report, nil
}

func (r *StockReport) addRow(location, product string, q types.Quantity, valuer *inventory.Valuer) {
	if !q.IsPositive() {
		return
	}
	cost := valuer.UnitCost(product)
	value := q.Decimal().Mul(cost)
	r.Rows = append(r.Rows, StockRow{
		Location: location,
		Product:  product,
		Quantity: q,
		UnitCost: cost,
		Value:    value,
	})
	r.TotalValue = r.TotalValue.Add(value)
}

// MonthlyRentalSummary totals rental charges per customer site for the
// calendar month containing month. Still-on-rent charges are estimated
// through asOf when the month is not yet over. Sites whose charges
// total zero are omitted.
func (s *Service) MonthlyRentalSummary(ctx context.Context, month, asOf time.Time) (*RentalSummary, error) {
	start := time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, month.Location())
	end := start.AddDate(0, 1, -1)

	l, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	st := billing.Allocate(billing.Query{
		PeriodStart: start,
		PeriodEnd:   end,
		AsOf:        asOf,
	}, l.transfers, l.returns, l.orders)

	totals := make(map[[2]string]types.Money)
	var keys [][2]string
	for _, line := range st.Lines {
		k := [2]string{line.Customer, line.Site}
		if _, ok := totals[k]; !ok {
			totals[k] = types.Zero()
			keys = append(keys, k)
		}
		totals[k] = totals[k].Add(line.Amount)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i][0] != keys[j][0] {
			return keys[i][0] < keys[j][0]
		}
		return keys[i][1] < keys[j][1]
	})

	summary := &RentalSummary{
		PeriodStart: st.PeriodStart,
		PeriodEnd:   st.PeriodEnd,
		Total:       st.Total(),
		Warnings:    st.Warnings,
	}
	for _, k := range keys {
		if !totals[k].IsPositive() {
			continue
		}
		summary.Rows = append(summary.Rows, SummaryRow{
			Customer: k[0],
			Site:     k[1],
			Amount:   totals[k],
		})
	}
	return summary, nil
}

// RentalStatement computes the detailed billing statement for one
// customer site over an arbitrary period.
func (s *Service) RentalStatement(ctx context.Context, customer, site string, from, to, asOf time.Time) (*RentalStatement, error) {
	l, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	st := billing.Allocate(billing.Query{
		Customer:    customer,
		Site:        site,
		PeriodStart: from,
		PeriodEnd:   to,
		AsOf:        asOf,
	}, l.transfers, l.returns, l.orders)

	return &RentalStatement{
		Customer:     customer,
		Site:         site,
		Statement:    st,
		GroupedLines: st.Grouped(),
		Total:        st.Total(),
	}, nil
}

// TransactionJournal lists all transactions dated within [from, to],
// newest first, with GST breakdowns on invoiced documents.
func (s *Service) TransactionJournal(ctx context.Context, from, to time.Time) (*Journal, error) {
	l, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	rates, err := s.settings.GSTRates(ctx)
	if err != nil {
		return nil, err
	}

	j := &Journal{From: from, To: to}
	add := func(e JournalEntry) {
		if !from.IsZero() && e.Date.Before(from) {
			return
		}
		if !to.IsZero() && e.Date.After(to) {
			return
		}
		j.Entries = append(j.Entries, e)
	}

	for _, p := range l.purchases {
		breakdown := gst.Calculate(p.BaseAmount(), taxOrLocal(p.TaxType), rates)
		add(JournalEntry{
			ID:          p.ID,
			Type:        "purchase",
			Date:        p.Date,
			Number:      p.Number,
			Description: fmt.Sprintf("Purchase into %s: %s", p.Warehouse, purchaseItems(p.Items)),
			GST:         &breakdown,
		})
	}
	for _, t := range l.transfers {
		add(JournalEntry{
			ID:          t.ID,
			Type:        "transfer",
			Date:        t.Date,
			Number:      t.Number,
			Description: fmt.Sprintf("Transfer %s to %s/%s: %s", t.From, t.Customer, t.Site, transferItems(t.Items)),
		})
	}
	for _, r := range l.returns {
		add(JournalEntry{
			ID:          r.ID,
			Type:        "return",
			Date:        r.Date,
			Number:      r.Number,
			Description: fmt.Sprintf("Return from %s to %s: %s", r.Customer, r.ReturnTo, returnItems(r.Items)),
		})
	}
	for _, sl := range l.sales {
		source := sl.FromWarehouse
		if !sl.FromWarehouseSide() {
			source = sl.FromCustomer + "/" + sl.FromSite
		}
		breakdown := gst.Calculate(sl.BaseAmount(), taxOrLocal(sl.TaxType), rates)
		add(JournalEntry{
			ID:          sl.ID,
			Type:        "sale",
			Date:        sl.Date,
			Number:      sl.Number,
			Description: fmt.Sprintf("Sale from %s: %s", source, saleItems(sl.Items)),
			GST:         &breakdown,
		})
	}
	for _, o := range l.orders {
		add(JournalEntry{
			ID:          o.ID,
			Type:        "rentalOrder",
			Date:        o.Date,
			Number:      o.Number,
			Description: fmt.Sprintf("Rental order for %s/%s: %s", o.Customer, o.Site, orderItems(o.Items)),
		})
	}

	sort.SliceStable(j.Entries, func(a, b int) bool {
		return j.Entries[a].Date.After(j.Entries[b].Date)
	})
	return j, nil
}

// DashboardFigures computes the headline dashboard numbers as of now.
func (s *Service) DashboardFigures(ctx context.Context, now time.Time) (*DashboardFigures, error) {
	l, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	snap := inventory.ComputeStock(l.purchases, l.transfers, l.returns, l.sales)
	valuer := inventory.NewValuer(l.purchases)

	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	monthEnd := monthStart.AddDate(0, 1, -1)
	estimate := billing.Allocate(billing.Query{
		PeriodStart: monthStart,
		PeriodEnd:   monthEnd,
		AsOf:        now,
	}, l.transfers, l.returns, l.orders)

	figures := &DashboardFigures{
		WarehouseValue:        valuer.WarehouseValue(snap),
		CustomerValue:         valuer.CustomerValue(snap),
		TotalStockValue:       valuer.StockValue(snap),
		MonthlyRentalEstimate: estimate.Total(),
	}
	for _, t := range l.transfers {
		if t.IsActive() {
			figures.ActiveRentals++
		}
	}
	for _, o := range l.orders {
		if o.IsPending() {
			figures.PendingOrders++
		}
	}
	return figures, nil
}

func taxOrLocal(t gst.TaxType) gst.TaxType {
	if t == "" {
		return gst.TaxLocal
	}
	return t
}

func describeItems[L any](items []L, describe func(L) string) string {
	parts := make([]string, len(items))
	for i, l := range items {
		parts[i] = describe(l)
	}
	return strings.Join(parts, ", ")
}

func purchaseItems(items []purchase.Line) string {
	return describeItems(items, func(l purchase.Line) string {
		return fmt.Sprintf("%s x %s", l.Quantity, l.Product)
	})
}

func transferItems(items []transfer.Line) string {
	return describeItems(items, func(l transfer.Line) string {
		return fmt.Sprintf("%s x %s", l.Quantity, l.Product)
	})
}

func returnItems(items []rental_return.Line) string {
	return describeItems(items, func(l rental_return.Line) string {
		return fmt.Sprintf("%s x %s", l.Quantity, l.Product)
	})
}

func saleItems(items []sale.Line) string {
	return describeItems(items, func(l sale.Line) string {
		return fmt.Sprintf("%s x %s", l.Quantity, l.Product)
	})
}

func orderItems(items []rentalorder.Line) string {
	return describeItems(items, func(l rentalorder.Line) string {
		return fmt.Sprintf("%s x %s", l.Quantity, l.Product)
	})
}
