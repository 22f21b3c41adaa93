// Package priority implements a generic priority queue backed by a binary heap.
//
// The queue holds a multiset of values: the same value may be pushed more than
// once and every copy is popped. The ordering is determined entirely by a
// user-provided comparison function, so callers that need a deterministic order
// for equal priorities must encode the tie-break in that function.
//
// Key features:
//   - Generic implementation supporting any value type
//   - O(log n) push and pop
//   - O(1) peek
//   - Unordered iteration over the stored values for linear scans
//
// Basic usage:
//
//	// Create a min-heap priority queue
//	pq := priority.NewQueue(func(a, b int) bool {
//	    return a < b
//	})
//
//	pq.Push(5)
//	pq.Push(3)
//	pq.Push(7)
//
//	// Get highest priority item
//	if v, ok := pq.Peek(); ok {
//	    fmt.Println(v) // 3
//	}
//
//	// Drain in priority order
//	for pq.Len() > 0 {
//	    v, _ := pq.Pop()
//	    fmt.Println(v)
//	}
//
// The heap keeps every parent ordered before its children under the less
// function. The less function should return true if a has higher priority
// than b.
package priority
