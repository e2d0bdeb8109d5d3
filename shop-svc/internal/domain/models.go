package domain

import "time"

type Shop struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Address        string    `json:"address"`
	Phone          string    `json:"phone"`
	Description    string    `json:"description"`
	ImageURL       string    `json:"image_url"`
	IsOpen         bool      `json:"is_open"`
	AvgPrepTime    int       `json:"avg_prep_time"`
	MinOrderAmount int       `json:"min_order_amount"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type MenuCategory struct {
	ID        string `json:"id"`
	ShopID    string `json:"shop_id"`
	Name      string `json:"name"`
	SortOrder int    `json:"sort_order"`
}

type MenuItem struct {
	ID          string       `json:"id"`
	CategoryID  string       `json:"category_id"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Price       int          `json:"price"`
	ImageURL    string       `json:"image_url"`
	IsSoldOut   bool         `json:"is_sold_out"`
	IsPopular   bool         `json:"is_popular"`
	SortOrder   int          `json:"sort_order"`
	Options     []MenuOption `json:"options,omitempty"`
}

type MenuOption struct {
	ID            string `json:"id"`
	ItemID        string `json:"item_id"`
	Name          string `json:"name"`
	PriceModifier int    `json:"price_modifier"`
	IsRequired    bool   `json:"is_required"`
}

// Slot is a selectable pickup time offered to the customer.
type Slot struct {
	Time       string `json:"time"`
	IsEarliest bool   `json:"isEarliest"`
}
