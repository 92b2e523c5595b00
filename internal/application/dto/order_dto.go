package dto

import "time"

// PlaceOrderRequest is a B2B cart checkout.
type PlaceOrderRequest struct {
	Items []PlaceOrderItem `json:"items"`
	Notes string           `json:"notes,omitempty"`
}

// PlaceOrderItem is one requested line.
type PlaceOrderItem struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// UpdateOrderStatusRequest moves an order through the state machine.
type UpdateOrderStatusRequest struct {
	Status         string `json:"status"`
	TrackingNumber string `json:"tracking_number,omitempty"`
	AdminNotes     string `json:"admin_notes,omitempty"`
}

// OrderItemDTO is a line-item snapshot.
type OrderItemDTO struct {
	ProductID   string `json:"product_id"`
	ProductName string `json:"product_name"`
	Quantity    int    `json:"quantity"`
	UnitPrice   string `json:"unit_price"`
	TotalPrice  string `json:"total_price"`
}

// OrderResponse renders an order. Money fields are two-decimal strings;
// full precision stays internal.
type OrderResponse struct {
	ID              string         `json:"id"`
	OrderNumber     string         `json:"order_number"`
	CompanyID       string         `json:"company_id"`
	Status          string         `json:"status"`
	Subtotal        string         `json:"subtotal"`
	DiscountPercent string         `json:"discount_percent"`
	DiscountAmount  string         `json:"discount_amount"`
	TotalAmount     string         `json:"total_amount"`
	Notes           string         `json:"notes,omitempty"`
	AdminNotes      string         `json:"admin_notes,omitempty"`
	TrackingNumber  string         `json:"tracking_number,omitempty"`
	Items           []OrderItemDTO `json:"items,omitempty"`
	ConfirmedAt     *time.Time     `json:"confirmed_at,omitempty"`
	ShippedAt       *time.Time     `json:"shipped_at,omitempty"`
	DeliveredAt     *time.Time     `json:"delivered_at,omitempty"`
	CancelledAt     *time.Time     `json:"cancelled_at,omitempty"`
	CreatedAt       time.Time      `json:"created_at"`
}
