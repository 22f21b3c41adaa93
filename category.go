package inventory

import (
	"cmp"
	"math"

	"github.com/GaurabK19/MSCS-532-A01-Project-Dynamic-Inventory-Management-Report/product"
	"github.com/google/btree"
)

const categoryDegree = 8

// categoryKey orders catalog entries by category, then identifier.
type categoryKey struct {
	category string
	id       int
	product  *product.Product
}

func lessCategoryKey(a, b categoryKey) bool {
	if c := cmp.Compare(a.category, b.category); c != 0 {
		return c < 0
	}
	return a.id < b.id
}

// categoryIndex is a secondary index over the catalog. Category never
// changes on a record, so entries only move on add and remove.
type categoryIndex struct {
	tree *btree.BTreeG[categoryKey]
}

func newCategoryIndex() *categoryIndex {
	return &categoryIndex{
		tree: btree.NewG[categoryKey](categoryDegree, lessCategoryKey),
	}
}

func (ci *categoryIndex) add(p *product.Product) {
	ci.tree.ReplaceOrInsert(categoryKey{category: p.Category(), id: p.ID(), product: p})
}

func (ci *categoryIndex) remove(p *product.Product) {
	ci.tree.Delete(categoryKey{category: p.Category(), id: p.ID()})
}

func (ci *categoryIndex) get(category string) []*product.Product {
	var out []*product.Product
	pivot := categoryKey{category: category, id: math.MinInt}
	ci.tree.AscendGreaterOrEqual(pivot, func(k categoryKey) bool {
		if k.category != category {
			return false
		}
		out = append(out, k.product)
		return true
	})
	return out
}

func (ci *categoryIndex) names() []string {
	var out []string
	ci.tree.Ascend(func(k categoryKey) bool {
		if len(out) == 0 || out[len(out)-1] != k.category {
			out = append(out, k.category)
		}
		return true
	})
	return out
}
