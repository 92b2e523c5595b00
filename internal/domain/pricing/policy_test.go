package pricing_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stoyanovb/gradina-api/internal/domain/entity"
	"github.com/stoyanovb/gradina-api/internal/domain/pricing"
)

func TestDefaultPolicy_TierTable(t *testing.T) {
	p := pricing.DefaultPolicy()

	cases := []struct {
		tier     entity.Tier
		discount int64
		days     int
	}{
		{entity.TierSilver, 10, 0},
		{entity.TierGold, 15, 30},
		{entity.TierPlatinum, 20, 60},
	}
	for _, tc := range cases {
		t.Run(string(tc.tier), func(t *testing.T) {
			assert.True(t, tc.tier.Valid())
			assert.True(t, p.DiscountFor(tc.tier).Equal(decimal.NewFromInt(tc.discount)))
			assert.Equal(t, tc.days, p.PaymentTermsFor(tc.tier))
		})
	}
}

// The discount must be a pure function of the tier: repeated lookups from
// any call site return the same value.
func TestDiscountFor_Deterministic(t *testing.T) {
	p := pricing.DefaultPolicy()
	first := p.DiscountFor(entity.TierGold)
	for i := 0; i < 100; i++ {
		assert.True(t, first.Equal(p.DiscountFor(entity.TierGold)))
	}
}

func TestPriceFor_AppliesTierDiscount(t *testing.T) {
	p := pricing.DefaultPolicy()
	base := decimal.RequireFromString("100.00")

	assert.True(t, p.PriceFor(base, entity.TierSilver).Equal(decimal.NewFromInt(90)))
	assert.True(t, p.PriceFor(base, entity.TierGold).Equal(decimal.NewFromInt(85)))
	assert.True(t, p.PriceFor(base, entity.TierPlatinum).Equal(decimal.NewFromInt(80)))
}

// Precision is kept internally; only display rounds to two decimals.
func TestPriceFor_KeepsPrecision(t *testing.T) {
	p := pricing.DefaultPolicy()
	base := decimal.RequireFromString("9.99")

	got := p.PriceFor(base, entity.TierGold) // 9.99 * 0.85 = 8.4915
	assert.True(t, got.Equal(decimal.RequireFromString("8.4915")), "got %s", got)
	assert.Equal(t, "8.49", got.StringFixed(2))
}

func TestPriceFor_UnknownTierNoDiscount(t *testing.T) {
	p := pricing.DefaultPolicy()
	base := decimal.RequireFromString("42.50")
	assert.True(t, p.PriceFor(base, entity.Tier("bronze")).Equal(base))
}

func TestNewPolicy_ConfigOverrides(t *testing.T) {
	p := pricing.NewPolicy(pricing.TierConfig{
		GoldDiscount:  "17.5",
		GoldTermsDays: 45,
	})

	require.True(t, p.DiscountFor(entity.TierGold).Equal(decimal.RequireFromString("17.5")))
	assert.Equal(t, 45, p.PaymentTermsFor(entity.TierGold))
	// Untouched tiers keep the defaults.
	assert.True(t, p.DiscountFor(entity.TierSilver).Equal(decimal.NewFromInt(10)))
	assert.Equal(t, 60, p.PaymentTermsFor(entity.TierPlatinum))
}

func TestNewPolicy_IgnoresInvalidOverrides(t *testing.T) {
	p := pricing.NewPolicy(pricing.TierConfig{SilverDiscount: "not-a-number"})
	assert.True(t, p.DiscountFor(entity.TierSilver).Equal(decimal.NewFromInt(10)))
}

func TestDiscountAmount(t *testing.T) {
	got := pricing.DiscountAmount(decimal.RequireFromString("100.00"), decimal.NewFromInt(15))
	assert.True(t, got.Equal(decimal.NewFromInt(15)))
}
