package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is a catalog item (plant, seed, tool). Price is the retail base
// price in BGN; B2B prices are derived from it through the tier policy.
// On-hand quantity lives in StockRecord, never here.
type Product struct {
	ID          string
	SKU         string // unique code
	Name        string // Bulgarian display name
	LatinName   string // botanical name, optional
	Category    string
	Description string
	Price       decimal.Decimal
	ImageURL    string
	Active      bool
	B2BVisible  bool // shown in the wholesale catalog
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
