package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ApplyMovementRequest is the body of POST /api/admin/stock/movements.
// Quantity is a positive count; for type "adjustment" it is the absolute
// target quantity instead.
type ApplyMovementRequest struct {
	ProductID      string           `json:"product_id"`
	Type           string           `json:"type"` // incoming, outgoing, writeoff, adjustment
	Quantity       int              `json:"quantity"`
	Reason         string           `json:"reason,omitempty"`
	Notes          string           `json:"notes,omitempty"`
	DocumentNumber string           `json:"document_number,omitempty"`
	UnitPrice      *decimal.Decimal `json:"unit_price,omitempty"` // incoming
}

// MovementResponse reports the applied movement.
type MovementResponse struct {
	ProductID   string      `json:"product_id"`
	NewQuantity int         `json:"new_quantity"`
	LogEntry    StockLogDTO `json:"log_entry"`
}

// StockLogDTO is one ledger row.
type StockLogDTO struct {
	ID               string           `json:"id"`
	ProductID        string           `json:"product_id"`
	Type             string           `json:"type"`
	Quantity         int              `json:"quantity"`
	PreviousQuantity int              `json:"previous_quantity"`
	NewQuantity      int              `json:"new_quantity"`
	Reason           string           `json:"reason,omitempty"`
	Notes            string           `json:"notes,omitempty"`
	DocumentNumber   string           `json:"document_number,omitempty"`
	UnitPrice        *decimal.Decimal `json:"unit_price,omitempty"`
	TotalPrice       *decimal.Decimal `json:"total_price,omitempty"`
	CreatedAt        time.Time        `json:"created_at"`
	CreatedBy        string           `json:"created_by,omitempty"`
}

// StockRecordDTO is the current stock of one product.
type StockRecordDTO struct {
	ProductID   string    `json:"product_id"`
	Quantity    int       `json:"quantity"`
	MinQuantity int       `json:"min_quantity"`
	Location    string    `json:"location,omitempty"`
	UpdatedAt   time.Time `json:"updated_at"`
}
