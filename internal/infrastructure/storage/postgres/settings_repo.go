package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/salilgupta4/agile-rental-management/internal/core/apperror"
	"github.com/salilgupta4/agile-rental-management/internal/domain/gst"
)

const gstRatesKey = "gst_rates"

// SettingsRepo persists application settings as key/value jsonb rows.
// It implements settings.Store.
type SettingsRepo struct {
	txm *TxManager
}

// NewSettingsRepo creates a new settings repository.
func NewSettingsRepo(txm *TxManager) *SettingsRepo {
	return &SettingsRepo{txm: txm}
}

// GSTRates loads the stored GST rate configuration.
func (r *SettingsRepo) GSTRates(ctx context.Context) (gst.Rates, error) {
	var raw []byte
	err := r.txm.GetQuerier(ctx).
		QueryRow(ctx, "SELECT value FROM app_settings WHERE key = $1", gstRatesKey).
		Scan(&raw)
	if err == pgx.ErrNoRows {
		return gst.Rates{}, apperror.NewNotFound("app_settings", gstRatesKey)
	}
	if err != nil {
		return gst.Rates{}, fmt.Errorf("load gst rates: %w", err)
	}

	var rates gst.Rates
	if err := json.Unmarshal(raw, &rates); err != nil {
		return gst.Rates{}, fmt.Errorf("decode gst rates: %w", err)
	}

	return rates, nil
}

// SaveGSTRates upserts the GST rate configuration.
func (r *SettingsRepo) SaveGSTRates(ctx context.Context, rates gst.Rates) error {
	raw, err := json.Marshal(rates)
	if err != nil {
		return fmt.Errorf("encode gst rates: %w", err)
	}

	_, err = r.txm.GetQuerier(ctx).Exec(ctx, `
		INSERT INTO app_settings (key, value, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()
	`, gstRatesKey, raw)
	if err != nil {
		return fmt.Errorf("save gst rates: %w", err)
	}

	return nil
}
