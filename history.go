package inventory

import (
	"fmt"
	"io"
	"iter"
	"strconv"

	"github.com/GaurabK19/MSCS-532-A01-Project-Dynamic-Inventory-Management-Report/product"
)

// PriceHistory is a singly linked log of price changes, newest first.
type PriceHistory struct {
	head *historyNode
	size int
}

type historyNode struct {
	change product.Change
	next   *historyNode
}

// NewPriceHistory creates an empty log.
func NewPriceHistory() *PriceHistory {
	return &PriceHistory{}
}

// Len returns the number of recorded changes.
func (h *PriceHistory) Len() int {
	return h.size
}

// AddChange records a change as the new head.
func (h *PriceHistory) AddChange(oldPrice, newPrice float64) {
	h.head = &historyNode{
		change: product.Change{Old: oldPrice, New: newPrice},
		next:   h.head,
	}
	h.size++
}

// Head returns the most recent change.
func (h *PriceHistory) Head() (product.Change, bool) {
	if h.head == nil {
		return product.Change{}, false
	}
	return h.head.change, true
}

// All yields the changes from newest to oldest.
func (h *PriceHistory) All() iter.Seq[product.Change] {
	return func(yield func(product.Change) bool) {
		for n := h.head; n != nil; n = n.next {
			if !yield(n.change) {
				return
			}
		}
	}
}

// Changes returns the changes from newest to oldest.
func (h *PriceHistory) Changes() []product.Change {
	out := make([]product.Change, 0, h.size)
	for c := range h.All() {
		out = append(out, c)
	}
	return out
}

// Display writes one line per change, newest first.
func (h *PriceHistory) Display(w io.Writer) error {
	for c := range h.All() {
		_, err := fmt.Fprintf(w, "Price changed from $%s to $%s\n",
			strconv.FormatFloat(c.Old, 'f', -1, 64),
			strconv.FormatFloat(c.New, 'f', -1, 64),
		)
		if err != nil {
			return fmt.Errorf("failed to write price change: %w", err)
		}
	}
	return nil
}
