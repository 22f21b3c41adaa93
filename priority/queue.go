package priority

import "iter"

// Queue is a binary min-heap over values of type T. Equal values may be
// pushed any number of times.
type Queue[T any] struct {
	items []T
	lessF func(a, b T) bool // returns true if a must be popped before b
}

// NewQueue creates an empty queue ordered by less.
func NewQueue[T any](less func(a, b T) bool) *Queue[T] {
	return &Queue[T]{
		items: make([]T, 0),
		lessF: less,
	}
}

// Len returns the number of items in the queue.
func (pq *Queue[T]) Len() int {
	return len(pq.items)
}

// Push adds v to the queue.
func (pq *Queue[T]) Push(v T) {
	pq.items = append(pq.items, v)
	pq.up(len(pq.items) - 1)
}

// Pop removes and returns the highest priority item.
func (pq *Queue[T]) Pop() (T, bool) {
	if len(pq.items) == 0 {
		var zero T
		return zero, false
	}

	top := pq.items[0]
	last := len(pq.items) - 1
	pq.swap(0, last)

	var zero T
	pq.items[last] = zero
	pq.items = pq.items[:last]
	pq.down(0)

	return top, true
}

// Peek returns the highest priority item without removing it.
func (pq *Queue[T]) Peek() (T, bool) {
	if len(pq.items) == 0 {
		var zero T
		return zero, false
	}
	return pq.items[0], true
}

// All yields every item in heap storage order, which is not priority order.
// The queue must not be modified during iteration.
func (pq *Queue[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range pq.items {
			if !yield(v) {
				return
			}
		}
	}
}

// swap swaps items at index i and j.
func (pq *Queue[T]) swap(i, j int) {
	pq.items[i], pq.items[j] = pq.items[j], pq.items[i]
}

// less compares items at index i and j.
func (pq *Queue[T]) less(i, j int) bool {
	return pq.lessF(pq.items[i], pq.items[j])
}

// up moves the element at index i up to its proper position.
func (pq *Queue[T]) up(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if !pq.less(i, parent) {
			break
		}
		pq.swap(i, parent)
		i = parent
	}
}

// down moves the element at index i down to its proper position.
func (pq *Queue[T]) down(i int) {
	for {
		smallest := i
		left := 2*i + 1
		right := 2*i + 2

		if left < len(pq.items) && pq.less(left, smallest) {
			smallest = left
		}
		if right < len(pq.items) && pq.less(right, smallest) {
			smallest = right
		}

		if smallest == i {
			break
		}

		pq.swap(i, smallest)
		i = smallest
	}
}
