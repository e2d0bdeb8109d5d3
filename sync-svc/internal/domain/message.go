package domain

import "time"

const (
	EventOrderCreated = "order_created"
	EventOrderUpdated = "order_updated"
)

// OrderEvent mirrors the payload order-svc publishes to Kafka.
type OrderEvent struct {
	Type         string    `json:"type"`
	OrderID      string    `json:"order_id"`
	ShopID       string    `json:"shop_id"`
	OrderNumber  string    `json:"order_number"`
	Status       string    `json:"status"`
	RejectReason string    `json:"reject_reason,omitempty"`
	TotalPrice   int       `json:"total_price"`
	PickupTime   string    `json:"pickup_time"`
	Timestamp    time.Time `json:"timestamp"`
}

// OrderView is the live projection served to owner queues and customer
// order screens. Items and shop info come from a full refetch and are
// preserved across incremental status merges.
type OrderView struct {
	ID           string      `json:"id"`
	OrderNumber  string      `json:"order_number"`
	CustomerID   string      `json:"customer_id"`
	ShopID       string      `json:"shop_id"`
	ShopName     string      `json:"shop_name,omitempty"`
	TotalPrice   int         `json:"total_price"`
	Note         string      `json:"note"`
	PickupTime   string      `json:"pickup_time"`
	Status       string      `json:"status"`
	RejectReason string      `json:"reject_reason,omitempty"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
	Items        []OrderLine `json:"order_items"`
}

type OrderLine struct {
	ItemID       string       `json:"item_id"`
	ItemName     string       `json:"item_name"`
	Quantity     int          `json:"quantity"`
	PriceAtOrder int          `json:"price_at_order"`
	Options      []LineOption `json:"options"`
}

type LineOption struct {
	Name          string `json:"name"`
	PriceModifier int    `json:"priceModifier"`
}

var activeStatuses = map[string]bool{
	"pending":  true,
	"accepted": true,
	"cooking":  true,
	"delayed":  true,
}

// IsActive reports whether a status belongs in the owner's working queue.
func IsActive(status string) bool {
	return activeStatuses[status]
}
