package memory

import (
	"context"
	"sync"

	"github.com/salilgupta4/agile-rental-management/internal/core/apperror"
	"github.com/salilgupta4/agile-rental-management/internal/domain/gst"
)

// SettingsStore is an in-memory settings.Store.
type SettingsStore struct {
	mu    sync.RWMutex
	rates *gst.Rates
}

// NewSettingsStore creates an empty in-memory settings store.
func NewSettingsStore() *SettingsStore {
	return &SettingsStore{}
}

// GSTRates returns the stored rates, or a not-found error when unset.
func (s *SettingsStore) GSTRates(ctx context.Context) (gst.Rates, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.rates == nil {
		return gst.Rates{}, apperror.NewNotFound("app_settings", "gst_rates")
	}
	return *s.rates, nil
}

// SaveGSTRates stores new rates.
func (s *SettingsStore) SaveGSTRates(ctx context.Context, rates gst.Rates) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.rates = &rates
	return nil
}
