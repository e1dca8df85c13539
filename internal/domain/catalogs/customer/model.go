// Package customer provides the Customer catalog.
// A customer owns an ordered set of sites; transfers deliver equipment to a
// specific (customer, site) pair, while returns reference only the customer.
package customer

import (
	"context"

	"github.com/salilgupta4/agile-rental-management/internal/core/apperror"
	"github.com/salilgupta4/agile-rental-management/internal/core/entity"
)

// Customer represents a rental customer and their sites.
type Customer struct {
	entity.Catalog

	// Sites is the ordered list of site names equipment can be delivered to.
	// Order matters: the stock ledger attributes site-less returns to the
	// first site holding stock of the returned product.
	Sites []string `db:"sites" json:"sites"`
}

// NewCustomer creates a new Customer.
func NewCustomer(name string, sites []string) *Customer {
	return &Customer{
		Catalog: entity.NewCatalog(name),
		Sites:   sites,
	}
}

// Validate implements entity.Validatable.
func (c *Customer) Validate(ctx context.Context) error {
	if err := c.Catalog.Validate(ctx); err != nil {
		return err
	}

	if len(c.Sites) == 0 {
		return apperror.NewValidation("at least one site is required").
			WithDetail("field", "sites")
	}

	seen := make(map[string]struct{}, len(c.Sites))
	for _, site := range c.Sites {
		if site == "" {
			return apperror.NewValidation("site name must not be empty").
				WithDetail("field", "sites")
		}
		if _, dup := seen[site]; dup {
			return apperror.NewValidation("duplicate site name").
				WithDetail("field", "sites").
				WithDetail("site", site)
		}
		seen[site] = struct{}{}
	}

	return nil
}

// HasSite reports whether the customer has a site with the given name.
func (c *Customer) HasSite(name string) bool {
	for _, s := range c.Sites {
		if s == name {
			return true
		}
	}
	return false
}
