// Package cart implements the shopping cart line store.
package cart

import "github.com/abgdnv/storefront/internal/catalog"

// Line is a (product, quantity) pairing in the cart.
type Line struct {
	Product  catalog.Product `json:"product"`
	Quantity int             `json:"quantity"`
}

// Cart is an ordered sequence of lines, one per distinct product ID, in the
// order products were first added. Every line's quantity is at least 1; a
// mutation that would drive a quantity to zero or below removes the line.
//
// Cart is not safe for concurrent use; callers serialize access.
type Cart struct {
	lines []Line
}

// New creates an empty cart.
func New() *Cart {
	return &Cart{}
}

// AddItem increments the quantity of the line holding the product, or appends
// a new line with quantity 1 if no such line exists.
func (c *Cart) AddItem(product catalog.Product) {
	if i := c.indexOf(product.ID); i >= 0 {
		c.lines[i].Quantity++
		return
	}
	c.lines = append(c.lines, Line{Product: product, Quantity: 1})
}

// RemoveItem deletes the line with the given product ID.
// Removing an absent product is a no-op, not an error.
func (c *Cart) RemoveItem(productID int64) {
	i := c.indexOf(productID)
	if i < 0 {
		return
	}
	c.lines = append(c.lines[:i], c.lines[i+1:]...)
}

// AdjustQuantity applies a relative quantity change to the line with the
// given product ID. A resulting quantity of zero or below removes the line.
// An unknown product ID is a no-op.
func (c *Cart) AdjustQuantity(productID int64, delta int) {
	i := c.indexOf(productID)
	if i < 0 {
		return
	}
	if c.lines[i].Quantity+delta <= 0 {
		c.RemoveItem(productID)
		return
	}
	c.lines[i].Quantity += delta
}

// SetQuantity sets the absolute quantity of the line with the given product ID.
// Returns ErrInvalidQuantity for a non-positive quantity and ErrLineNotFound
// for an unknown product ID; in both cases the cart is left unchanged.
func (c *Cart) SetQuantity(productID int64, quantity int) error {
	if quantity <= 0 {
		return ErrInvalidQuantity
	}
	i := c.indexOf(productID)
	if i < 0 {
		return ErrLineNotFound
	}
	c.lines[i].Quantity = quantity
	return nil
}

// Total returns the sum over all lines of convert(price) * quantity.
// A nil convert is the identity function. Total is deterministic and
// side-effect-free.
func (c *Cart) Total(convert func(float64) float64) float64 {
	var total float64
	for _, line := range c.lines {
		price := line.Product.Price
		if convert != nil {
			price = convert(price)
		}
		total += price * float64(line.Quantity)
	}
	return total
}

// ItemCount returns the sum of all line quantities. Zero means the cart is
// empty and the renderer hides its badge.
func (c *Cart) ItemCount() int {
	var count int
	for _, line := range c.lines {
		count += line.Quantity
	}
	return count
}

// Lines returns a copy of the line sequence in insertion order.
func (c *Cart) Lines() []Line {
	lines := make([]Line, len(c.lines))
	copy(lines, c.lines)
	return lines
}

// Hydrate replaces the cart contents with a previously persisted line
// sequence. Lines violating the invariants (non-positive quantity, duplicate
// product ID) are dropped, so malformed stored state cannot corrupt the cart.
func (c *Cart) Hydrate(lines []Line) {
	c.lines = c.lines[:0]
	for _, line := range lines {
		if line.Quantity < 1 {
			continue
		}
		if c.indexOf(line.Product.ID) >= 0 {
			continue
		}
		c.lines = append(c.lines, line)
	}
}

// indexOf returns the index of the line with the given product ID, or -1.
func (c *Cart) indexOf(productID int64) int {
	for i, line := range c.lines {
		if line.Product.ID == productID {
			return i
		}
	}
	return -1
}
