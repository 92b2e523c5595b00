package entity

// Tier is a partner's wholesale level. The discount percent and payment
// terms attached to each tier live in the pricing policy, not here.
type Tier string

const (
	TierSilver   Tier = "silver"
	TierGold     Tier = "gold"
	TierPlatinum Tier = "platinum"
)

// Valid reports whether t is a known tier.
func (t Tier) Valid() bool {
	switch t {
	case TierSilver, TierGold, TierPlatinum:
		return true
	}
	return false
}
