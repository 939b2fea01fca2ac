package cart

import (
	"sync"

	"storefront/catalog"
)

// Item is one cart line. An order keeps a snapshot of these at submission
// time, so the embedded product is a copy rather than a reference into the
// catalog.
type Item struct {
	Product      catalog.Product `json:"product"`
	Quantity     int             `json:"quantity"`
	SelectedSize string          `json:"selectedSize,omitempty"`
}

// Cart holds the line items of one browsing session, in memory only. It is
// lost on restart. Every operation is keyed by (product id, selected size) so
// that size variants of the same product are independent lines.
type Cart struct {
	mu    sync.Mutex
	items []Item
}

func New() *Cart {
	return &Cart{}
}

// Add increments the quantity of the matching line, or appends a new line
// with quantity one. There is no upper bound on quantity.
func (c *Cart) Add(p catalog.Product, size string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if c.items[i].Product.ID == p.ID && c.items[i].SelectedSize == size {
			c.items[i].Quantity++
			return
		}
	}
	c.items = append(c.items, Item{Product: p, Quantity: 1, SelectedSize: size})
}

// UpdateQuantity sets the quantity of the matching line. A quantity of zero
// or less removes the line, exactly like Remove.
func (c *Cart) UpdateQuantity(productID int, size string, quantity int) {
	if quantity <= 0 {
		c.Remove(productID, size)
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.items {
		if c.items[i].Product.ID == productID && c.items[i].SelectedSize == size {
			c.items[i].Quantity = quantity
			return
		}
	}
}

func (c *Cart) Remove(productID int, size string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if c.items[i].Product.ID == productID && c.items[i].SelectedSize == size {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return
		}
	}
}

// Clear empties the cart. Called after a successful checkout.
func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = nil
}

// Items returns a snapshot copy of the cart lines.
func (c *Cart) Items() []Item {
	c.mu.Lock()
	defer c.mu.Unlock()

	items := make([]Item, len(c.items))
	copy(items, c.items)
	return items
}

// ItemCount is the sum of all line quantities.
func (c *Cart) ItemCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	count := 0
	for _, item := range c.items {
		count += item.Quantity
	}
	return count
}

// Total is the sum of price times quantity over all lines.
func (c *Cart) Total() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	var total float64
	for _, item := range c.items {
		total += item.Product.Price * float64(item.Quantity)
	}
	return total
}
