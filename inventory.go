package inventory

import (
	"iter"
	"maps"
	"slices"

	"github.com/GaurabK19/MSCS-532-A01-Project-Dynamic-Inventory-Management-Report/product"
	"go.uber.org/zap"
)

// Inventory is the primary catalog: at most one product per identifier.
// It is not safe for concurrent use.
type Inventory struct {
	products   map[int]*product.Product
	categories *categoryIndex
	log        *zap.Logger
	metrics    *metrics
}

// New creates an empty catalog.
func New(opts ...Option) *Inventory {
	// Apply default options
	o := defaultOptions()

	// Apply user options
	for _, opt := range opts {
		opt(&o)
	}

	if o.logger == nil {
		o.logger = zap.NewNop()
	}

	return &Inventory{
		products:   make(map[int]*product.Product),
		categories: newCategoryIndex(),
		log:        o.logger,
		metrics:    newMetrics(o.registerer),
	}
}

// Len returns the number of products in the catalog.
func (inv *Inventory) Len() int {
	return len(inv.products)
}

// Add stores p under its identifier, replacing any product already there.
// A nil product is ignored.
func (inv *Inventory) Add(p *product.Product) {
	if p == nil {
		return
	}

	old, replaced := inv.products[p.ID()]
	if replaced {
		inv.categories.remove(old)
		inv.log.Debug("product replaced",
			zap.Int("product_id", p.ID()),
			zap.String("old_name", old.Name()),
			zap.String("new_name", p.Name()),
		)
	}

	inv.products[p.ID()] = p
	inv.categories.add(p)
	inv.metrics.observe(opAdd, !replaced)
	if !replaced {
		inv.metrics.added()
	}
}

// Remove deletes the product with the given identifier if it exists.
func (inv *Inventory) Remove(id int) {
	p, ok := inv.products[id]
	inv.metrics.observe(opRemove, ok)
	if !ok {
		inv.log.Debug("remove skipped: product not found", zap.Int("product_id", id))
		return
	}

	delete(inv.products, id)
	inv.categories.remove(p)
	inv.metrics.removed()
}

// Get returns the product with the given identifier.
func (inv *Inventory) Get(id int) (*product.Product, bool) {
	p, ok := inv.products[id]
	inv.metrics.observe(opGet, ok)
	return p, ok
}

// UpdatePrice changes the price of the product with the given identifier
// and records the change on the product. Unknown identifiers are ignored.
func (inv *Inventory) UpdatePrice(id int, newPrice float64) {
	p, ok := inv.products[id]
	inv.metrics.observe(opUpdatePrice, ok)
	if !ok {
		inv.log.Debug("price update skipped: product not found",
			zap.Int("product_id", id),
			zap.Float64("price", newPrice),
		)
		return
	}
	p.UpdatePrice(newPrice)
}

// UpdateQuantity overwrites the quantity of the product with the given
// identifier. Unknown identifiers are ignored.
func (inv *Inventory) UpdateQuantity(id int, quantity int) {
	p, ok := inv.products[id]
	inv.metrics.observe(opUpdateQuantity, ok)
	if !ok {
		inv.log.Debug("quantity update skipped: product not found",
			zap.Int("product_id", id),
			zap.Int("quantity", quantity),
		)
		return
	}
	p.SetQuantity(quantity)
}

// All yields every product in ascending identifier order.
func (inv *Inventory) All() iter.Seq[*product.Product] {
	return func(yield func(*product.Product) bool) {
		for _, id := range slices.Sorted(maps.Keys(inv.products)) {
			p, ok := inv.products[id]
			if !ok {
				continue
			}
			if !yield(p) {
				return
			}
		}
	}
}

// ByCategory returns the products of one category in ascending identifier
// order.
func (inv *Inventory) ByCategory(category string) []*product.Product {
	return inv.categories.get(category)
}

// Categories returns the distinct categories present, sorted.
func (inv *Inventory) Categories() []string {
	return inv.categories.names()
}
