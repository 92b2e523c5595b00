package postgres

import (
	"context"
	"fmt"

	"github.com/stoyanovb/gradina-api/internal/domain/entity"
	"github.com/stoyanovb/gradina-api/internal/domain/repository"
)

var _ repository.SettingsRepository = (*SettingsRepo)(nil)

// SettingsRepo stores the single store settings row (id is fixed to 1).
type SettingsRepo struct {
	q Querier
}

// NewSettingsRepository constructs the adapter.
func NewSettingsRepository(q Querier) *SettingsRepo {
	return &SettingsRepo{q: q}
}

// Get returns the settings row, or nil when it was never written.
func (r *SettingsRepo) Get() (*entity.StoreSettings, error) {
	query := `SELECT eur_rate, hide_prices, updated_at FROM store_settings WHERE id = 1`
	var s entity.StoreSettings
	err := r.q.QueryRow(context.Background(), query).Scan(&s.EURRate, &s.HidePrices, &s.UpdatedAt)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get store settings: %w", err)
	}
	return &s, nil
}

// Update upserts the settings row.
func (r *SettingsRepo) Update(s *entity.StoreSettings) error {
	query := `
		INSERT INTO store_settings (id, eur_rate, hide_prices, updated_at)
		VALUES (1, $1, $2, $3)
		ON CONFLICT (id)
		DO UPDATE SET eur_rate = EXCLUDED.eur_rate,
		              hide_prices = EXCLUDED.hide_prices,
		              updated_at = EXCLUDED.updated_at`
	_, err := r.q.Exec(context.Background(), query, s.EURRate, s.HidePrices, s.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update store settings: %w", err)
	}
	return nil
}
