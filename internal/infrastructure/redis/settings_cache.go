// Package redis caches the store settings row so every storefront request
// does not hit PostgreSQL for the EUR rate and hide-prices flag.
package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"

	"github.com/stoyanovb/gradina-api/internal/application/usecase"
	"github.com/stoyanovb/gradina-api/internal/domain/entity"
	"github.com/stoyanovb/gradina-api/pkg/config"
)

var _ usecase.SettingsCache = (*SettingsCache)(nil)

const settingsKey = "gradina:store_settings"

// SettingsCache is a read-through cache with a short TTL; stale values
// self-heal within the TTL window after an update from another instance.
type SettingsCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewSettingsCache connects the client and verifies it with a ping.
func NewSettingsCache(ctx context.Context, cfg config.RedisConfig) (*SettingsCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	ttl := time.Duration(cfg.TTLSeconds) * time.Second
	if ttl <= 0 {
		ttl = time.Minute
	}
	return &SettingsCache{client: client, ttl: ttl}, nil
}

type cachedSettings struct {
	EURRate    string    `json:"eur_rate"`
	HidePrices bool      `json:"hide_prices"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// Get returns the cached settings, or (nil, nil) on a miss.
func (c *SettingsCache) Get(ctx context.Context) (*entity.StoreSettings, error) {
	raw, err := c.client.Get(ctx, settingsKey).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("redis get settings: %w", err)
	}
	var cached cachedSettings
	if err := json.Unmarshal(raw, &cached); err != nil {
		return nil, nil // treat a corrupt entry as a miss
	}
	rate, err := decimal.NewFromString(cached.EURRate)
	if err != nil {
		return nil, nil
	}
	return &entity.StoreSettings{
		EURRate:    rate,
		HidePrices: cached.HidePrices,
		UpdatedAt:  cached.UpdatedAt,
	}, nil
}

// Set stores the settings with the configured TTL.
func (c *SettingsCache) Set(ctx context.Context, s *entity.StoreSettings) error {
	raw, err := json.Marshal(cachedSettings{
		EURRate:    s.EURRate.String(),
		HidePrices: s.HidePrices,
		UpdatedAt:  s.UpdatedAt,
	})
	if err != nil {
		return err
	}
	if err := c.client.Set(ctx, settingsKey, raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set settings: %w", err)
	}
	return nil
}

// Invalidate drops the cached entry after an update.
func (c *SettingsCache) Invalidate(ctx context.Context) error {
	if err := c.client.Del(ctx, settingsKey).Err(); err != nil {
		return fmt.Errorf("redis del settings: %w", err)
	}
	return nil
}

// Close releases the client.
func (c *SettingsCache) Close() error {
	return c.client.Close()
}
