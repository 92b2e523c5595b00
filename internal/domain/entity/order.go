package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus is the lifecycle state of a B2B order.
type OrderStatus string

const (
	OrderPending    OrderStatus = "pending"
	OrderConfirmed  OrderStatus = "confirmed"
	OrderProcessing OrderStatus = "processing"
	OrderShipped    OrderStatus = "shipped"
	OrderDelivered  OrderStatus = "delivered"
	OrderCancelled  OrderStatus = "cancelled"
)

// Valid reports whether s is a known order status.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderPending, OrderConfirmed, OrderProcessing, OrderShipped, OrderDelivered, OrderCancelled:
		return true
	}
	return false
}

// Terminal reports whether no further transition is allowed from s.
func (s OrderStatus) Terminal() bool {
	return s == OrderDelivered || s == OrderCancelled
}

// CanTransitionTo enforces terminality only: the back office may move an
// order to any status, including skipping forward, as long as the order is
// not already delivered or cancelled. Re-entering the current status is
// allowed and treated as a no-op by the use case.
func (s OrderStatus) CanTransitionTo(target OrderStatus) bool {
	if !target.Valid() {
		return false
	}
	return !s.Terminal()
}

// OrderItem is a line of a B2B order. Name and unit price are snapshots
// taken at placement; later catalog changes never alter them.
type OrderItem struct {
	ID          string
	OrderID     string
	ProductID   string
	ProductName string
	Quantity    int
	UnitPrice   decimal.Decimal
	TotalPrice  decimal.Decimal
}

// Order is a submitted B2B cart checkout. DiscountPercent is copied from
// the company at placement; Subtotal, DiscountAmount and TotalAmount are a
// pure function of the items and that stored percent.
type Order struct {
	ID              string
	OrderNumber     string
	CompanyID       string
	Status          OrderStatus
	Subtotal        decimal.Decimal
	DiscountPercent decimal.Decimal
	DiscountAmount  decimal.Decimal
	TotalAmount     decimal.Decimal
	Notes           string // customer notes
	AdminNotes      string
	TrackingNumber  string
	Items           []OrderItem
	ConfirmedAt     *time.Time
	ShippedAt       *time.Time
	DeliveredAt     *time.Time
	CancelledAt     *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
