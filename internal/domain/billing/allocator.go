// Package billing computes rental charges by matching returned
// quantities against transfers in FIFO order of supply. Like the
// inventory ledger it is a pure fold over materialized logs, but the
// two use different return-matching disciplines: the ledger attributes
// returns to sites, the allocator attributes them to transfer batches.
package billing

import (
	"fmt"
	"sort"
	"time"

	"github.com/salilgupta4/agile-rental-management/internal/core/types"
	"github.com/salilgupta4/agile-rental-management/internal/domain/documents/rental_return"
	"github.com/salilgupta4/agile-rental-management/internal/domain/documents/rentalorder"
	"github.com/salilgupta4/agile-rental-management/internal/domain/documents/transfer"
)

// WarnUnresolvedRate marks a billing line whose rate could not be found
// on the transfer line or any rental order. The line bills at zero.
const WarnUnresolvedRate = "UNRESOLVED_RATE"

// Query selects the transfers to bill and the period to bill them over.
type Query struct {
	// Customer and Site filter the transfers; empty means all.
	Customer string
	Site     string

	// PeriodStart and PeriodEnd bound the billing window, inclusive.
	PeriodStart time.Time
	PeriodEnd   time.Time

	// AsOf caps still-on-rent charges for a running period. Zero means
	// the period is closed and charges run through PeriodEnd.
	AsOf time.Time
}

// Line is one computed billing line.
type Line struct {
	Customer   string         `json:"customer"`
	Site       string         `json:"site"`
	Product    string         `json:"product"`
	Quantity   types.Quantity `json:"quantity"`
	RatePerDay types.Money    `json:"ratePerDay"`
	Days       int            `json:"days"`
	Amount     types.Money    `json:"amount"`

	// Returned distinguishes the returned portion from still-on-rent.
	Returned bool `json:"returned"`
}

// Warning is a non-fatal data-quality diagnostic.
type Warning struct {
	Code     string `json:"code"`
	Customer string `json:"customer,omitempty"`
	Site     string `json:"site,omitempty"`
	Product  string `json:"product,omitempty"`
	Message  string `json:"message"`
}

// Statement is the allocator output for one query.
type Statement struct {
	PeriodStart time.Time `json:"periodStart"`
	PeriodEnd   time.Time `json:"periodEnd"`
	Lines       []Line    `json:"lines"`
	Warnings    []Warning `json:"warnings,omitempty"`
}

// Total sums the line amounts.
func (s Statement) Total() types.Money {
	total := types.Zero()
	for _, l := range s.Lines {
		total = total.Add(l.Amount)
	}
	return total
}

// Grouped merges lines with identical (product, rate, days) for report
// presentation, sorted by product then days.
func (s Statement) Grouped() []Line {
	type key struct {
		product string
		rate    string
		days    int
	}

	index := make(map[key]int)
	var merged []Line
	for _, l := range s.Lines {
		k := key{l.Product, l.RatePerDay.String(), l.Days}
		if i, ok := index[k]; ok {
			merged[i].Quantity += l.Quantity
			merged[i].Amount = merged[i].Amount.Add(l.Amount)
			continue
		}
		index[k] = len(merged)
		merged = append(merged, l)
	}

	sort.SliceStable(merged, func(i, j int) bool {
		if merged[i].Product != merged[j].Product {
			return merged[i].Product < merged[j].Product
		}
		return merged[i].Days < merged[j].Days
	})
	return merged
}

// transferEntry is one transfer line flattened for FIFO matching.
type transferEntry struct {
	customer string
	site     string
	product  string
	start    time.Time
	quantity types.Quantity
	lineRate types.Money
}

// returnPool aggregates a (customer, product) group's returns. The
// latest rental end date governs the billing cutoff for every returned
// unit in the group; individual return dates are not tracked further.
type returnPool struct {
	quantity  types.Quantity
	latestEnd time.Time
}

type groupKey struct {
	customer string
	product  string
}

// Allocate matches returns to transfers FIFO and emits billing lines
// clipped to the query period. Unresolved rates bill at zero and are
// reported as warnings, never errors.
func Allocate(
	q Query,
	transfers []*transfer.Transfer,
	returns []*rental_return.Return,
	orders []*rentalorder.RentalOrder,
) Statement {
	st := Statement{
		PeriodStart: Midnight(q.PeriodStart),
		PeriodEnd:   Midnight(q.PeriodEnd),
	}
	rates := newRateResolver(orders)

	// Group transfer lines by (customer, product), preserving first-seen
	// group order so output is deterministic.
	groups := make(map[groupKey][]transferEntry)
	var order []groupKey
	for _, t := range transfers {
		if !t.IsActive() {
			continue
		}
		if q.Customer != "" && t.Customer != q.Customer {
			continue
		}
		if q.Site != "" && t.Site != q.Site {
			continue
		}
		for _, item := range t.Items {
			k := groupKey{t.Customer, item.Product}
			if _, seen := groups[k]; !seen {
				order = append(order, k)
			}
			groups[k] = append(groups[k], transferEntry{
				customer: t.Customer,
				site:     t.Site,
				product:  item.Product,
				start:    Midnight(t.RentalStartDate),
				quantity: item.Quantity,
				lineRate: item.PerDayRent,
			})
		}
	}

	// Aggregate returns per (customer, product).
	pools := make(map[groupKey]*returnPool)
	for _, r := range returns {
		if q.Customer != "" && r.Customer != q.Customer {
			continue
		}
		end := Midnight(r.RentalEndDate)
		for _, item := range r.Items {
			k := groupKey{r.Customer, item.Product}
			p := pools[k]
			if p == nil {
				p = &returnPool{}
				pools[k] = p
			}
			p.quantity += item.Quantity
			if end.After(p.latestEnd) {
				p.latestEnd = end
			}
		}
	}

	warned := make(map[groupKey]bool)
	for _, k := range order {
		entries := groups[k]
		sort.SliceStable(entries, func(i, j int) bool {
			return entries[i].start.Before(entries[j].start)
		})

		var remaining types.Quantity
		var latestEnd time.Time
		if p := pools[k]; p != nil {
			remaining = p.quantity
			latestEnd = p.latestEnd
		}

		for _, e := range entries {
			returnedQty := remaining.Min(e.quantity)
			stillOnRent := e.quantity - returnedQty
			remaining -= returnedQty

			rate, ok := rates.resolve(e.customer, e.site, e.product, e.lineRate)
			if !ok && !warned[k] {
				warned[k] = true
				st.Warnings = append(st.Warnings, Warning{
					Code:     WarnUnresolvedRate,
					Customer: e.customer,
					Site:     e.site,
					Product:  e.product,
					Message: fmt.Sprintf("no per-day rate for %s at %s/%s, billing at zero",
						e.product, e.customer, e.site),
				})
			}

			if returnedQty.IsPositive() && !latestEnd.IsZero() {
				start := maxTime(e.start, st.PeriodStart)
				end := minTime(latestEnd, st.PeriodEnd)
				if !start.After(end) && !end.Before(st.PeriodStart) {
					st.Lines = append(st.Lines, makeLine(e, returnedQty, rate, start, end, true))
				}
			}

			if stillOnRent.IsPositive() {
				start := maxTime(e.start, st.PeriodStart)
				end := st.PeriodEnd
				if !q.AsOf.IsZero() {
					end = minTime(end, Midnight(q.AsOf))
				}
				if !start.After(end) {
					st.Lines = append(st.Lines, makeLine(e, stillOnRent, rate, start, end, false))
				}
			}
		}
	}

	return st
}

func makeLine(e transferEntry, quantity types.Quantity, rate types.Money, start, end time.Time, returned bool) Line {
	days := ChargeDays(start, end)
	return Line{
		Customer:   e.customer,
		Site:       e.site,
		Product:    e.product,
		Quantity:   quantity,
		RatePerDay: rate,
		Days:       days,
		Amount:     quantity.Decimal().Mul(rate).Mul(types.NewMoneyFromInt(int64(days))),
		Returned:   returned,
	}
}
