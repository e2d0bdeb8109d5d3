package domain

import (
	"errors"
	"time"
)

// ErrDuplicateOrderNumber is returned by storage when the order_number
// uniqueness constraint rejects an insert.
var ErrDuplicateOrderNumber = errors.New("order number already exists")

type ItemOption struct {
	Name          string `json:"name"`
	PriceModifier int    `json:"priceModifier"`
}

type Order struct {
	ID           string      `json:"id"`
	OrderNumber  string      `json:"order_number"`
	CustomerID   string      `json:"customer_id"`
	ShopID       string      `json:"shop_id"`
	ShopName     string      `json:"shop_name,omitempty"`
	ShopAddress  string      `json:"shop_address,omitempty"`
	ShopPhone    string      `json:"shop_phone,omitempty"`
	TotalPrice   int         `json:"total_price"`
	Note         string      `json:"note"`
	PickupTime   string      `json:"pickup_time"`
	Status       OrderStatus `json:"status"`
	RejectReason string      `json:"reject_reason,omitempty"`
	PaymentKey   string      `json:"payment_key,omitempty"`
	PaidAt       *time.Time  `json:"paid_at,omitempty"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
	Items        []OrderItem `json:"order_items"`
}

// OrderItem is the immutable snapshot of a menu item at order time.
// PriceAtOrder never tracks later menu edits.
type OrderItem struct {
	ID           string       `json:"id"`
	OrderID      string       `json:"order_id"`
	ItemID       string       `json:"item_id"`
	ItemName     string       `json:"item_name"`
	Quantity     int          `json:"quantity"`
	PriceAtOrder int          `json:"price_at_order"`
	Options      []ItemOption `json:"options"`
}

const (
	EventOrderCreated = "order_created"
	EventOrderUpdated = "order_updated"
)

type OrderEvent struct {
	Type         string      `json:"type"`
	OrderID      string      `json:"order_id"`
	ShopID       string      `json:"shop_id"`
	OrderNumber  string      `json:"order_number"`
	Status       OrderStatus `json:"status"`
	RejectReason string      `json:"reject_reason,omitempty"`
	TotalPrice   int         `json:"total_price"`
	PickupTime   string      `json:"pickup_time"`
	Timestamp    time.Time   `json:"timestamp"`
}
