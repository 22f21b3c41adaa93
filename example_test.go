package inventory_test

import (
	"fmt"
	"os"

	inventory "github.com/GaurabK19/MSCS-532-A01-Project-Dynamic-Inventory-Management-Report"
	"github.com/GaurabK19/MSCS-532-A01-Project-Dynamic-Inventory-Management-Report/product"
)

// Example walks through the catalog and each index over the same products.
func Example() {
	inv := inventory.New()

	p1 := product.New(101, "Laptop", 1200, 5, "Electronics")
	p2 := product.New(102, "Phone", 800, 10, "Electronics")

	// Insert and retrieve
	inv.Add(p1)
	inv.Add(p2)
	if p, ok := inv.Get(102); ok {
		fmt.Println("Product Retrieved:", p)
	}

	// Update price and quantity
	inv.UpdatePrice(102, 750)
	inv.UpdateQuantity(102, 5)
	if p, ok := inv.Get(102); ok {
		fmt.Println("Updated Product:", p)
	}

	// Remove a product that was never added
	inv.Remove(103)
	_, ok := inv.Get(103)
	fmt.Println("After Deletion found:", ok)

	// Priority queue, lower value first
	pq := inventory.NewPriorityQueue()
	pq.Insert(p1, 2)
	pq.Insert(p2, 1)
	if p, ok := pq.ExtractMin(); ok {
		fmt.Println("Highest Priority Product:", p)
	}

	// Price index, keyed by the price at insertion
	prices := inventory.NewProductBST()
	prices.Insert(p1)
	prices.Insert(p2)
	if p, ok := prices.Search(750); ok {
		fmt.Println("BST Search Result:", p)
	}

	// Price change log, newest first
	history := inventory.NewPriceHistory()
	history.AddChange(100, 120)
	history.AddChange(120, 140)
	for c := range history.All() {
		fmt.Println(c)
	}
	if err := history.Display(os.Stdout); err != nil {
		fmt.Println("display failed:", err)
	}

	// Output:
	// Product Retrieved: Phone (ID: 102) - $800, Qty: 10, Category: Electronics
	// Updated Product: Phone (ID: 102) - $750, Qty: 5, Category: Electronics
	// After Deletion found: false
	// Highest Priority Product: Phone (ID: 102) - $750, Qty: 5, Category: Electronics
	// BST Search Result: Phone (ID: 102) - $750, Qty: 5, Category: Electronics
	// 120→140
	// 100→120
	// Price changed from $120 to $140
	// Price changed from $100 to $120
}

// ExampleInventory_ByCategory lists one category in identifier order.
func ExampleInventory_ByCategory() {
	inv := inventory.New()
	inv.Add(product.New(103, "Headphones", 150, 20, "Accessories"))
	inv.Add(product.New(102, "Phone", 800, 10, "Electronics"))
	inv.Add(product.New(101, "Laptop", 1200, 5, "Electronics"))

	for _, p := range inv.ByCategory("Electronics") {
		fmt.Println(p.Name())
	}
	fmt.Println(inv.Categories())

	// Output:
	// Laptop
	// Phone
	// [Accessories Electronics]
}

// ExampleProductBST_InorderTraversal shows that the index keeps insertion-time prices.
func ExampleProductBST_InorderTraversal() {
	inv := inventory.New()
	prices := inventory.NewProductBST()
	for _, p := range []*product.Product{
		product.New(1, "Mouse", 25, 40, "Accessories"),
		product.New(2, "Monitor", 300, 7, "Electronics"),
		product.New(3, "Keyboard", 45, 12, "Accessories"),
	} {
		inv.Add(p)
		prices.Insert(p)
	}

	inv.UpdatePrice(2, 10)

	for _, p := range prices.InorderTraversal() {
		fmt.Printf("%s $%v\n", p.Name(), p.Price())
	}
	_, found := prices.Search(10)
	fmt.Println("found at new price:", found)

	// Output:
	// Mouse $25
	// Keyboard $45
	// Monitor $10
	// found at new price: false
}
