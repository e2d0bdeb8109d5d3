package domain

type ItemOption struct {
	Name          string `json:"name"`
	PriceModifier int    `json:"priceModifier"`
}

type CartItem struct {
	ItemID   string       `json:"itemId"`
	Name     string       `json:"name"`
	Price    int          `json:"price"`
	Quantity int          `json:"quantity"`
	Options  []ItemOption `json:"options"`
	ImageURL string       `json:"imageUrl,omitempty"`
}

// Cart holds the customer's in-progress order. All items belong to one shop;
// adding an item from another shop replaces the cart wholesale.
type Cart struct {
	ShopID   string     `json:"shopId"`
	ShopName string     `json:"shopName"`
	Items    []CartItem `json:"items"`
}

func (c *Cart) AddItem(shopID, shopName string, item CartItem) {
	if c.ShopID != "" && c.ShopID != shopID {
		// Different shop, clear cart
		c.ShopID = shopID
		c.ShopName = shopName
		c.Items = []CartItem{item}
		return
	}

	c.ShopID = shopID
	c.ShopName = shopName
	for i := range c.Items {
		if c.Items[i].ItemID == item.ItemID {
			c.Items[i].Quantity += item.Quantity
			return
		}
	}
	c.Items = append(c.Items, item)
}

// UpdateQuantity sets the line's quantity directly; zero or negative removes
// the line.
func (c *Cart) UpdateQuantity(itemID string, quantity int) {
	if quantity <= 0 {
		c.RemoveItem(itemID)
		return
	}
	for i := range c.Items {
		if c.Items[i].ItemID == itemID {
			c.Items[i].Quantity = quantity
			return
		}
	}
}

// RemoveItem drops the line; removing the last line also clears the shop
// affiliation so an empty cart holds no shop lock.
func (c *Cart) RemoveItem(itemID string) {
	kept := c.Items[:0]
	for _, item := range c.Items {
		if item.ItemID != itemID {
			kept = append(kept, item)
		}
	}
	c.Items = kept
	if len(c.Items) == 0 {
		c.ShopID = ""
		c.ShopName = ""
		c.Items = nil
	}
}

func (c *Cart) Clear() {
	c.ShopID = ""
	c.ShopName = ""
	c.Items = nil
}

func (c *Cart) TotalPrice() int {
	total := 0
	for _, item := range c.Items {
		optionsPrice := 0
		for _, opt := range item.Options {
			optionsPrice += opt.PriceModifier
		}
		total += (item.Price + optionsPrice) * item.Quantity
	}
	return total
}

func (c *Cart) TotalItems() int {
	count := 0
	for _, item := range c.Items {
		count += item.Quantity
	}
	return count
}

// MenuItemInfo is the slice of the catalog the cart needs to validate adds.
type MenuItemInfo struct {
	ID        string
	Name      string
	Price     int
	IsSoldOut bool
}
