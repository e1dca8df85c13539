package billing

import (
	"github.com/salilgupta4/agile-rental-management/internal/core/types"
	"github.com/salilgupta4/agile-rental-management/internal/domain/documents/rentalorder"
)

// rateResolver resolves per-day rates with a fallback chain: the
// transfer line's own rate wins, otherwise the first matching rental
// order for the same customer and site that quotes the product.
type rateResolver struct {
	orders map[string][]*rentalorder.RentalOrder
}

func newRateResolver(orders []*rentalorder.RentalOrder) *rateResolver {
	byKey := make(map[string][]*rentalorder.RentalOrder)
	for _, o := range orders {
		k := o.Customer + "\x00" + o.Site
		byKey[k] = append(byKey[k], o)
	}
	return &rateResolver{orders: byKey}
}

// resolve returns the effective rate and whether one was found. A zero
// return with ok=false means the line bills at zero and callers should
// surface a warning.
func (r *rateResolver) resolve(customer, site, product string, lineRate types.Money) (types.Money, bool) {
	if !lineRate.IsZero() {
		return lineRate, true
	}
	for _, o := range r.orders[customer+"\x00"+site] {
		if rate := o.RateFor(product); !rate.IsZero() {
			return rate, true
		}
	}
	return types.Zero(), false
}
