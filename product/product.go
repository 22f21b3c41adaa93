package product

import (
	"fmt"
	"strconv"
)

// Change is a single price transition.
type Change struct {
	Old float64
	New float64
}

// String renders the change as old→new.
func (c Change) String() string {
	return formatPrice(c.Old) + "→" + formatPrice(c.New)
}

// Product is an inventory record. The identifier is fixed at construction;
// price and quantity change only through UpdatePrice and SetQuantity.
type Product struct {
	id       int
	name     string
	price    float64
	quantity int
	category string
	history  []Change
}

// New creates a product with an empty price history.
func New(id int, name string, price float64, quantity int, category string) *Product {
	return &Product{
		id:       id,
		name:     name,
		price:    price,
		quantity: quantity,
		category: category,
	}
}

// ID returns the identifier.
func (p *Product) ID() int { return p.id }

// Name returns the display name.
func (p *Product) Name() string { return p.name }

// Price returns the current price.
func (p *Product) Price() float64 { return p.price }

// Quantity returns the units in stock.
func (p *Product) Quantity() int { return p.quantity }

// Category returns the category label.
func (p *Product) Category() string { return p.category }

// UpdatePrice records the transition from the current price and then
// applies it. Any value is accepted.
func (p *Product) UpdatePrice(newPrice float64) {
	p.history = append(p.history, Change{Old: p.price, New: newPrice})
	p.price = newPrice
}

// SetQuantity overwrites the quantity without recording anything.
func (p *Product) SetQuantity(quantity int) {
	p.quantity = quantity
}

// History returns the recorded price changes, oldest first.
func (p *Product) History() []Change {
	out := make([]Change, len(p.history))
	copy(out, p.history)
	return out
}

// String renders the product for display.
func (p *Product) String() string {
	return fmt.Sprintf("%s (ID: %d) - $%s, Qty: %d, Category: %s",
		p.name, p.id, formatPrice(p.price), p.quantity, p.category)
}

func formatPrice(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
