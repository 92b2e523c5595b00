package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// StoreSettings are the global storefront knobs: the fixed EUR/BGN rate
// used for dual-currency display and the hide-prices flag shown to
// anonymous visitors. Stored as a single row and passed explicitly per
// request; never held in a package-level variable.
type StoreSettings struct {
	EURRate    decimal.Decimal // BGN per 1 EUR
	HidePrices bool
	UpdatedAt  time.Time
}
