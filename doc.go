// Package inventory implements an in-memory product catalog together with
// three independent indexes over the same products.
//
// The structures are:
//   - Inventory: the primary catalog, a map from product identifier to product
//   - PriorityQueue: a min-heap of products keyed by a caller-assigned priority
//   - ProductBST: an unbalanced binary search tree keyed by price
//   - PriceHistory: a singly linked list of price changes, newest first
//
// Every structure holds pointers to shared product.Product values and none of
// them observes the others. Changing a price through the catalog is visible
// on the product everywhere, but the ProductBST keeps the product under the
// price it had at insertion and the PriorityQueue keeps its original priority.
// Removing a product from the catalog leaves it in every other index.
//
// Lookups that find nothing return the zero value and false; no operation
// validates its input.
//
// Basic usage:
//
//	inv := inventory.New(inventory.WithLogger(logger))
//	p := product.New(101, "Laptop", 1200, 5, "Electronics")
//	inv.Add(p)
//	inv.UpdatePrice(101, 1100)
//
//	if got, ok := inv.Get(101); ok {
//	    fmt.Println(got) // Laptop (ID: 101) - $1100, Qty: 5, Category: Electronics
//	}
//
//	pq := inventory.NewPriorityQueue()
//	pq.Insert(p, 1)
//
//	prices := inventory.NewProductBST()
//	prices.Insert(p)
//
// None of the types are safe for concurrent use.
package inventory
