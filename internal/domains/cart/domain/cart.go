package domain

import (
	"errors"

	"github.com/shopspring/decimal"
)

var ErrItemNotInCart = errors.New("item not in cart")

// Item is one cart line, keyed by product id: adding a product that is
// already present bumps its quantity instead of appending a duplicate line.
type Item struct {
	ProductID   string  `json:"id"`
	Name        string  `json:"name"`
	SKU         string  `json:"sku"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	Quantity    int     `json:"quantity"`
}

// Cart is the ephemeral pre-order selection. It lives client-side until a
// successful checkout converts its entries into order line items.
type Cart struct {
	Items []Item `json:"items"`
}

// Add puts the product in the cart, or increments its quantity when the
// product id is already present.
func (c *Cart) Add(item Item) {
	for i := range c.Items {
		if c.Items[i].ProductID == item.ProductID {
			c.Items[i].Quantity++
			return
		}
	}
	if item.Quantity < 1 {
		item.Quantity = 1
	}
	c.Items = append(c.Items, item)
}

// Adjust changes an entry's quantity by delta. It reports the resulting
// quantity; callers decide what a drop below 1 means.
func (c *Cart) Adjust(productID string, delta int) (int, error) {
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			c.Items[i].Quantity += delta
			return c.Items[i].Quantity, nil
		}
	}
	return 0, ErrItemNotInCart
}

// Remove deletes the entry for the product id.
func (c *Cart) Remove(productID string) error {
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			return nil
		}
	}
	return ErrItemNotInCart
}

// Find returns the entry for the product id, or nil.
func (c *Cart) Find(productID string) *Item {
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			return &c.Items[i]
		}
	}
	return nil
}

// TotalQuantity sums entry quantities; it drives the visible cart badge.
func (c *Cart) TotalQuantity() int {
	total := 0
	for _, item := range c.Items {
		total += item.Quantity
	}
	return total
}

// Subtotal computes sum(price*quantity) with decimal arithmetic.
func (c *Cart) Subtotal() float64 {
	total := decimal.Zero
	for _, item := range c.Items {
		line := decimal.NewFromFloat(item.Price).Mul(decimal.NewFromInt(int64(item.Quantity)))
		total = total.Add(line)
	}
	f, _ := total.Float64()
	return f
}

// IsEmpty reports whether the cart holds no entries.
func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}
