// Package bst implements an unbalanced binary search tree.
//
// Keys that compare strictly less than a node go to its left subtree and all
// other keys, including equal ones, go to its right subtree. Duplicate keys
// therefore accumulate to the right, and an in-order walk returns entries with
// equal keys in the order they were inserted.
//
// The tree never rebalances and exposes no deletion. Inserting keys in sorted
// order degrades it to a linked list with O(n) insert and search; Height
// reports how deep it has grown.
//
// Basic usage:
//
//	t := bst.New[float64, string]()
//	t.Insert(1200, "Laptop")
//	t.Insert(750, "Phone")
//
//	if v, ok := t.Search(750); ok {
//	    fmt.Println(v) // Phone
//	}
//
//	for k, v := range t.All() {
//	    fmt.Println(k, v) // ascending by key
//	}
package bst
