package bst_test

import (
	"fmt"

	"github.com/GaurabK19/MSCS-532-A01-Project-Dynamic-Inventory-Management-Report/bst"
)

// ExampleTree demonstrates ordered iteration with duplicate keys.
func ExampleTree() {
	t := bst.New[float64, string]()
	t.Insert(1200, "Laptop")
	t.Insert(150, "Headphones")
	t.Insert(750, "Phone")
	t.Insert(150, "Cable")

	for k, v := range t.All() {
		fmt.Printf("%v %s\n", k, v)
	}

	v, ok := t.Search(150)
	fmt.Println(v, ok)

	// Output:
	// 150 Headphones
	// 150 Cable
	// 750 Phone
	// 1200 Laptop
	// Headphones true
}
