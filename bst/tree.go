package bst

import (
	"cmp"
	"iter"
)

// Tree is an unbalanced binary search tree mapping keys to values.
type Tree[K cmp.Ordered, V any] struct {
	root *node[K, V]
	size int
}

type node[K cmp.Ordered, V any] struct {
	key   K
	value V
	left  *node[K, V]
	right *node[K, V]
}

// New returns an empty tree.
func New[K cmp.Ordered, V any]() *Tree[K, V] {
	return &Tree[K, V]{}
}

// Len returns the number of entries in the tree.
func (t *Tree[K, V]) Len() int {
	return t.size
}

// Insert adds an entry. Existing entries with the same key are kept.
func (t *Tree[K, V]) Insert(key K, value V) {
	t.size++
	if t.root == nil {
		t.root = &node[K, V]{key: key, value: value}
		return
	}
	insert(t.root, key, value)
}

func insert[K cmp.Ordered, V any](n *node[K, V], key K, value V) {
	if key < n.key {
		if n.left == nil {
			n.left = &node[K, V]{key: key, value: value}
			return
		}
		insert(n.left, key, value)
		return
	}
	if n.right == nil {
		n.right = &node[K, V]{key: key, value: value}
		return
	}
	insert(n.right, key, value)
}

// Search returns the value of the first node on the descent path whose key
// equals key exactly.
func (t *Tree[K, V]) Search(key K) (V, bool) {
	return search(t.root, key)
}

func search[K cmp.Ordered, V any](n *node[K, V], key K) (V, bool) {
	if n == nil {
		var zero V
		return zero, false
	}
	if n.key == key {
		return n.value, true
	}
	if key < n.key {
		return search(n.left, key)
	}
	return search(n.right, key)
}

// All yields every entry in ascending key order.
func (t *Tree[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		inorder(t.root, yield)
	}
}

func inorder[K cmp.Ordered, V any](n *node[K, V], yield func(K, V) bool) bool {
	if n == nil {
		return true
	}
	return inorder(n.left, yield) &&
		yield(n.key, n.value) &&
		inorder(n.right, yield)
}

// Height returns the number of nodes on the longest root-to-leaf path.
func (t *Tree[K, V]) Height() int {
	return height(t.root)
}

func height[K cmp.Ordered, V any](n *node[K, V]) int {
	if n == nil {
		return 0
	}
	return 1 + max(height(n.left), height(n.right))
}
