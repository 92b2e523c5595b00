package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/stoyanovb/gradina-api/internal/domain"
	"github.com/stoyanovb/gradina-api/internal/domain/entity"
	"github.com/stoyanovb/gradina-api/internal/domain/repository"
)

// SettingsCache is the read-through cache port for store settings,
// implemented over Redis. Get returns (nil, nil) on a miss.
type SettingsCache interface {
	Get(ctx context.Context) (*entity.StoreSettings, error)
	Set(ctx context.Context, s *entity.StoreSettings) error
	Invalidate(ctx context.Context) error
}

// NoopSettingsCache is used when Redis is not configured; every read goes
// to the database.
type NoopSettingsCache struct{}

func (NoopSettingsCache) Get(ctx context.Context) (*entity.StoreSettings, error) { return nil, nil }
func (NoopSettingsCache) Set(ctx context.Context, s *entity.StoreSettings) error { return nil }
func (NoopSettingsCache) Invalidate(ctx context.Context) error                   { return nil }

// SettingsUseCase serves the store settings (EUR/BGN rate, hide-prices)
// once per request: cache first, database second, built-in default last.
// The value is returned to the caller and passed down explicitly.
type SettingsUseCase struct {
	settingsRepo repository.SettingsRepository
	cache        SettingsCache
	defaultRate  decimal.Decimal
}

// NewSettingsUseCase constructs the use case. defaultRate covers a fresh
// database without a settings row yet.
func NewSettingsUseCase(settingsRepo repository.SettingsRepository, cache SettingsCache, defaultRate decimal.Decimal) *SettingsUseCase {
	return &SettingsUseCase{settingsRepo: settingsRepo, cache: cache, defaultRate: defaultRate}
}

// Get returns the current settings. A cache failure falls through to the
// database; a missing row falls back to the defaults.
func (uc *SettingsUseCase) Get(ctx context.Context) (entity.StoreSettings, error) {
	if cached, err := uc.cache.Get(ctx); err == nil && cached != nil {
		return *cached, nil
	}
	stored, err := uc.settingsRepo.Get()
	if err != nil {
		return entity.StoreSettings{}, err
	}
	if stored == nil {
		return entity.StoreSettings{EURRate: uc.defaultRate}, nil
	}
	_ = uc.cache.Set(ctx, stored) // best effort
	return *stored, nil
}

// Update overwrites the settings row and invalidates the cache.
func (uc *SettingsUseCase) Update(ctx context.Context, eurRate decimal.Decimal, hidePrices bool) (entity.StoreSettings, error) {
	if !eurRate.IsPositive() {
		return entity.StoreSettings{}, domain.ErrValidation
	}
	settings := entity.StoreSettings{
		EURRate:    eurRate,
		HidePrices: hidePrices,
		UpdatedAt:  time.Now(),
	}
	if err := uc.settingsRepo.Update(&settings); err != nil {
		return entity.StoreSettings{}, err
	}
	_ = uc.cache.Invalidate(ctx)
	return settings, nil
}
