package inventory

import (
	"github.com/GaurabK19/MSCS-532-A01-Project-Dynamic-Inventory-Management-Report/priority"
	"github.com/GaurabK19/MSCS-532-A01-Project-Dynamic-Inventory-Management-Report/product"
)

type queued struct {
	priority int
	seq      uint64
	product  *product.Product
}

// PriorityQueue orders products by a caller-assigned priority, lowest
// first. It is independent of the catalog: a product may be queued more
// than once, and later changes to the product do not move it.
type PriorityQueue struct {
	heap *priority.Queue[queued]
	seq  uint64
}

// NewPriorityQueue creates an empty queue. Products with equal priority are
// ordered by the tie-break comparator (ascending identifier by default) and
// then by insertion order.
func NewPriorityQueue(opts ...QueueOption) *PriorityQueue {
	o := defaultQueueOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.tieBreak == nil {
		o.tieBreak = byID
	}

	tieBreak := o.tieBreak
	return &PriorityQueue{
		heap: priority.NewQueue(func(a, b queued) bool {
			if a.priority != b.priority {
				return a.priority < b.priority
			}
			if c := tieBreak(a.product, b.product); c != 0 {
				return c < 0
			}
			return a.seq < b.seq
		}),
	}
}

// Len returns the number of queued entries.
func (pq *PriorityQueue) Len() int {
	return pq.heap.Len()
}

// Insert queues p with the given priority. A nil product is ignored.
func (pq *PriorityQueue) Insert(p *product.Product, priority int) {
	if p == nil {
		return
	}
	pq.heap.Push(queued{priority: priority, seq: pq.seq, product: p})
	pq.seq++
}

// ExtractMin removes and returns the product with the lowest priority.
func (pq *PriorityQueue) ExtractMin() (*product.Product, bool) {
	q, ok := pq.heap.Pop()
	if !ok {
		return nil, false
	}
	return q.product, true
}

// Peek returns the product ExtractMin would return, with its priority.
func (pq *PriorityQueue) Peek() (*product.Product, int, bool) {
	q, ok := pq.heap.Peek()
	if !ok {
		return nil, 0, false
	}
	return q.product, q.priority, true
}

// FindByID scans every queued entry and returns the first product with the
// given identifier. The scan follows heap storage order, not priority order.
func (pq *PriorityQueue) FindByID(id int) (*product.Product, bool) {
	for q := range pq.heap.All() {
		if q.product.ID() == id {
			return q.product, true
		}
	}
	return nil, false
}
