package entity

import "time"

// StockRecord is the current on-hand quantity of a product (1:1).
// Quantity is never negative and is mutated only through the stock
// movement use case, never directly.
type StockRecord struct {
	ProductID   string
	Quantity    int
	MinQuantity int // reorder threshold; quantity <= min means low stock
	Location    string
	UpdatedAt   time.Time
}

// IsLow reports whether the record is at or below its reorder threshold.
func (s *StockRecord) IsLow() bool {
	return s.Quantity <= s.MinQuantity
}
