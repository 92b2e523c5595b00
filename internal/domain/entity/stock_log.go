package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// MovementType classifies a stock movement.
type MovementType string

const (
	MovementIncoming   MovementType = "incoming"   // restock / delivery
	MovementOutgoing   MovementType = "outgoing"   // sold / shipped
	MovementWriteOff   MovementType = "writeoff"   // loss, damage
	MovementAdjustment MovementType = "adjustment" // manual correction to an absolute count
)

// Valid reports whether t is one of the four known movement types.
func (t MovementType) Valid() bool {
	switch t {
	case MovementIncoming, MovementOutgoing, MovementWriteOff, MovementAdjustment:
		return true
	}
	return false
}

// StockLogEntry is one immutable row of the stock ledger, appended exactly
// once per applied movement. Quantity is the positive magnitude of the
// change; the sign is carried by Type. For every entry
// NewQuantity - PreviousQuantity == +Quantity (incoming) or
// -Quantity (outgoing/writeoff); adjustments store the magnitude of the
// computed delta.
type StockLogEntry struct {
	ID               string
	ProductID        string
	Type             MovementType
	Quantity         int
	PreviousQuantity int
	NewQuantity      int
	Reason           string
	Notes            string
	DocumentNumber   string
	UnitPrice        *decimal.Decimal // incoming only
	TotalPrice       *decimal.Decimal // incoming only
	CreatedAt        time.Time
	CreatedBy        string
}
