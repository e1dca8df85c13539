// Package settings manages application-wide configuration records,
// currently only the GST rate configuration.
package settings

import (
	"context"

	"github.com/salilgupta4/agile-rental-management/internal/core/apperror"
	"github.com/salilgupta4/agile-rental-management/internal/domain/gst"
	"github.com/salilgupta4/agile-rental-management/pkg/logger"
)

// Store persists settings records.
type Store interface {
	// GSTRates loads the stored rates; implementations return
	// apperror.CodeNotFound when nothing has been saved yet.
	GSTRates(ctx context.Context) (gst.Rates, error)
	SaveGSTRates(ctx context.Context, rates gst.Rates) error
}

// Service wraps a Store with defaulting and validation.
type Service struct {
	store Store
}

// NewService creates a settings service.
func NewService(store Store) *Service {
	return &Service{store: store}
}

// GSTRates returns the configured rates, falling back to the standard
// 18% configuration when none are stored.
func (s *Service) GSTRates(ctx context.Context) (gst.Rates, error) {
	rates, err := s.store.GSTRates(ctx)
	if err != nil {
		if apperror.IsNotFound(err) {
			return gst.DefaultRates(), nil
		}
		return gst.Rates{}, err
	}
	return rates, nil
}

// UpdateGSTRates validates and persists new rates.
func (s *Service) UpdateGSTRates(ctx context.Context, rates gst.Rates) error {
	for _, pct := range []struct {
		name  string
		value interface{ IsNegative() bool }
	}{
		{"cgst", rates.CGST},
		{"sgst", rates.SGST},
		{"igst", rates.IGST},
	} {
		if pct.value.IsNegative() {
			return apperror.NewValidation("rate percentage must not be negative").
				WithDetail("field", pct.name)
		}
	}

	if err := s.store.SaveGSTRates(ctx, rates); err != nil {
		return err
	}

	logger.Info(ctx, "gst rates updated",
		"enabled", rates.Enabled,
		"cgst", rates.CGST,
		"sgst", rates.SGST,
		"igst", rates.IGST,
	)
	return nil
}
