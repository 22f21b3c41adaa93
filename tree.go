package inventory

import (
	"iter"

	"github.com/GaurabK19/MSCS-532-A01-Project-Dynamic-Inventory-Management-Report/bst"
	"github.com/GaurabK19/MSCS-532-A01-Project-Dynamic-Inventory-Management-Report/product"
)

// ProductBST indexes products by the price they had when inserted. The key
// is never refreshed: after a price change the product is still found under
// its old price and not under the new one.
type ProductBST struct {
	tree *bst.Tree[float64, *product.Product]
}

// NewProductBST creates an empty price index.
func NewProductBST() *ProductBST {
	return &ProductBST{tree: bst.New[float64, *product.Product]()}
}

// Len returns the number of indexed products.
func (t *ProductBST) Len() int {
	return t.tree.Len()
}

// Height returns the depth of the underlying tree.
func (t *ProductBST) Height() int {
	return t.tree.Height()
}

// Insert indexes p under its current price. A nil product is ignored.
func (t *ProductBST) Insert(p *product.Product) {
	if p == nil {
		return
	}
	t.tree.Insert(p.Price(), p)
}

// Search returns a product indexed under exactly price.
func (t *ProductBST) Search(price float64) (*product.Product, bool) {
	return t.tree.Search(price)
}

// All yields the indexed products in ascending order of their indexed price.
func (t *ProductBST) All() iter.Seq[*product.Product] {
	return func(yield func(*product.Product) bool) {
		for _, p := range t.tree.All() {
			if !yield(p) {
				return
			}
		}
	}
}

// InorderTraversal returns the indexed products in ascending order of their
// indexed price. Products indexed under the same price keep insertion order.
func (t *ProductBST) InorderTraversal() []*product.Product {
	out := make([]*product.Product, 0, t.tree.Len())
	for p := range t.All() {
		out = append(out, p)
	}
	return out
}
