// Package pricing holds the tier policy table: one place mapping a
// partner tier to its discount percent and payment terms. Company
// approval, the B2B catalog preview and order total computation all read
// the same Policy value, so the three call sites cannot diverge.
package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/stoyanovb/gradina-api/internal/domain/entity"
)

// TierTerms are the commercial terms of one tier.
type TierTerms struct {
	DiscountPercent  decimal.Decimal
	PaymentTermsDays int
}

// Policy is the full tier table. Construct with NewPolicy (config-driven)
// or DefaultPolicy.
type Policy struct {
	terms map[entity.Tier]TierTerms
}

// TierConfig carries the configurable percentages/terms. Zero values fall
// back to the defaults (silver 10%/0d, gold 15%/30d, platinum 20%/60d).
type TierConfig struct {
	SilverDiscount    string
	SilverTermsDays   int
	GoldDiscount      string
	GoldTermsDays     int
	PlatinumDiscount  string
	PlatinumTermsDays int
}

// DefaultPolicy returns the standard tier table.
func DefaultPolicy() Policy {
	return Policy{terms: map[entity.Tier]TierTerms{
		entity.TierSilver:   {DiscountPercent: decimal.NewFromInt(10), PaymentTermsDays: 0},
		entity.TierGold:     {DiscountPercent: decimal.NewFromInt(15), PaymentTermsDays: 30},
		entity.TierPlatinum: {DiscountPercent: decimal.NewFromInt(20), PaymentTermsDays: 60},
	}}
}

// NewPolicy builds a Policy from config, keeping defaults for unset fields.
// Changing a percentage is a config change, not a code change.
func NewPolicy(cfg TierConfig) Policy {
	p := DefaultPolicy()
	override := func(tier entity.Tier, discount string, days int) {
		t := p.terms[tier]
		if discount != "" {
			if d, err := decimal.NewFromString(discount); err == nil && !d.IsNegative() {
				t.DiscountPercent = d
			}
		}
		if days > 0 {
			t.PaymentTermsDays = days
		}
		p.terms[tier] = t
	}
	override(entity.TierSilver, cfg.SilverDiscount, cfg.SilverTermsDays)
	override(entity.TierGold, cfg.GoldDiscount, cfg.GoldTermsDays)
	override(entity.TierPlatinum, cfg.PlatinumDiscount, cfg.PlatinumTermsDays)
	return p
}

// DiscountFor returns the discount percent of a tier (zero for unknown).
func (p Policy) DiscountFor(tier entity.Tier) decimal.Decimal {
	return p.terms[tier].DiscountPercent
}

// PaymentTermsFor returns the payment terms in days (zero for unknown).
func (p Policy) PaymentTermsFor(tier entity.Tier) int {
	return p.terms[tier].PaymentTermsDays
}

// PriceFor applies the tier discount to a base price. Full decimal
// precision is kept; rounding happens only at display time.
func (p Policy) PriceFor(basePrice decimal.Decimal, tier entity.Tier) decimal.Decimal {
	return ApplyDiscount(basePrice, p.DiscountFor(tier))
}

// ApplyDiscount computes price * (1 - percent/100).
func ApplyDiscount(price, percent decimal.Decimal) decimal.Decimal {
	hundred := decimal.NewFromInt(100)
	return price.Mul(hundred.Sub(percent)).Div(hundred)
}

// DiscountAmount computes price * percent / 100.
func DiscountAmount(price, percent decimal.Decimal) decimal.Decimal {
	return price.Mul(percent).Div(decimal.NewFromInt(100))
}
