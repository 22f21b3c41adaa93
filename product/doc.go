// Package product defines the record type shared by every inventory index.
//
// A Product is created with its full initial state and handed to whichever
// structures need it. Each structure keeps its own pointer to the same
// instance, so a mutation made through one of them is visible through all
// of them, while any position that was derived from the mutated field (for
// example a price-ordered tree) stays where it was.
//
// Price changes are recorded on the record itself:
//
//	p := product.New(101, "Laptop", 1200, 5, "Electronics")
//	p.UpdatePrice(1100)
//	p.UpdatePrice(999)
//
//	for _, c := range p.History() {
//	    fmt.Println(c) // 1200→1100, then 1100→999
//	}
package product
