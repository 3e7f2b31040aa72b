// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bst

import "iter"

// An Iterator is a movable cursor over a tree's entries, ordered by key.
// Iterators come from [Tree.Begin], [Tree.End], [Tree.Find], [Tree.Insert]
// and their [TreeFunc] counterparts; the zero Iterator is not usable.
//
// An Iterator survives mutation of its tree. Deleting the entry it rests
// on leaves the iterator anchored at the deleted key: Next moves to the
// smallest key greater than it, and Prev to the largest key smaller, in
// the tree as it is then.
type Iterator[K, V any] struct {
	m bst[K, V]
	x *node[K, V] // nil at the end position
}

// Valid reports whether the iterator rests on an entry rather than on the
// end position. Valid does not detect deletion: an iterator whose entry
// has been deleted still reports true and still returns the old entry.
func (it Iterator[K, V]) Valid() bool { return it.x != nil }

// Key returns the key of the entry the iterator rests on.
// It panics if the iterator is at the end position.
func (it Iterator[K, V]) Key() K {
	if it.x == nil {
		panic("invalid iterator")
	}
	return it.x.key
}

// Value returns the value of the entry the iterator rests on.
// It panics if the iterator is at the end position.
func (it Iterator[K, V]) Value() V {
	if it.x == nil {
		panic("invalid iterator")
	}
	return it.x.val
}

// SetValue replaces the value of the entry the iterator rests on.
// It panics if the iterator is at the end position.
func (it Iterator[K, V]) SetValue(v V) {
	if it.x == nil {
		panic("invalid iterator")
	}
	it.x.val = v
}

// Equal reports whether two iterators rest on the same entry.
// All end iterators are equal to each other, even across trees.
func (it Iterator[K, V]) Equal(it2 Iterator[K, V]) bool { return it.x == it2.x }

// Next moves the iterator to the entry with the next larger key,
// or to the end position if there is none.
// It panics if the iterator is at the end position.
func (it *Iterator[K, V]) Next() {
	if it.x == nil {
		panic("invalid iterator")
	}
	it.x = it.x.next(it.m)
}

// Prev moves the iterator to the entry with the next smaller key.
// From the end position it moves to the entry with the largest key.
// Moving before the smallest key leaves the iterator at the end position.
func (it *Iterator[K, V]) Prev() {
	if it.x == nil {
		x := *it.m.root()
		if x != nil {
			x = x.maxNode()
		}
		it.x = x
		return
	}
	it.x = it.x.prev(it.m)
}

// Begin returns an iterator at the entry with m's smallest key.
// If m is empty, Begin returns the end iterator.
func (m *Tree[K, V]) Begin() Iterator[K, V] {
	return begin(m)
}

// Begin returns an iterator at the entry with m's smallest key.
// If m is empty, Begin returns the end iterator.
func (m *TreeFunc[K, V]) Begin() Iterator[K, V] {
	return begin(m)
}

func begin[K, V any](m bst[K, V]) Iterator[K, V] {
	x := *m.root()
	if x != nil {
		x = x.minNode()
	}
	return Iterator[K, V]{m, x}
}

// End returns m's end iterator, one position past the largest key.
// It is where [Tree.Find] lands on a miss, and where Next lands after
// the last entry.
func (m *Tree[K, V]) End() Iterator[K, V] {
	return Iterator[K, V]{m, nil}
}

// End returns m's end iterator, one position past the largest key.
// It is where [TreeFunc.Find] lands on a miss, and where Next lands after
// the last entry.
func (m *TreeFunc[K, V]) End() Iterator[K, V] {
	return Iterator[K, V]{m, nil}
}

// Find returns an iterator at the entry for key,
// or the end iterator if key is not present.
func (m *Tree[K, V]) Find(key K) Iterator[K, V] {
	pos, _ := m.find(key)
	return Iterator[K, V]{m, *pos}
}

// Find returns an iterator at the entry for key,
// or the end iterator if key is not present.
func (m *TreeFunc[K, V]) Find(key K) Iterator[K, V] {
	pos, _ := m.find(key)
	return Iterator[K, V]{m, *pos}
}

// All returns an iterator over the map m from smallest to largest key.
// If m is modified during the iteration, some keys may not be visited.
// No keys will be visited multiple times.
func (m *Tree[K, V]) All() iter.Seq2[K, V] {
	return all(m)
}

// All returns an iterator over the map m from smallest to largest key.
// If m is modified during the iteration, some keys may not be visited.
// No keys will be visited multiple times.
func (m *TreeFunc[K, V]) All() iter.Seq2[K, V] {
	return all(m)
}

// all returns an iterator over the map m from smallest to largest key.
func all[K, V any](m bst[K, V]) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		x := *m.root()
		if x != nil {
			x = x.minNode()
		}
		for x != nil && yield(x.key, x.val) {
			x = x.next(m)
		}
	}
}

// Backward returns an iterator over the map m from largest to smallest key.
// If m is modified during the iteration, some keys may not be visited.
// No keys will be visited multiple times.
func (m *Tree[K, V]) Backward() iter.Seq2[K, V] {
	return backward(m)
}

// Backward returns an iterator over the map m from largest to smallest key.
// If m is modified during the iteration, some keys may not be visited.
// No keys will be visited multiple times.
func (m *TreeFunc[K, V]) Backward() iter.Seq2[K, V] {
	return backward(m)
}

// backward returns an iterator over the map m from largest to smallest key.
func backward[K, V any](m bst[K, V]) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		x := *m.root()
		if x != nil {
			x = x.maxNode()
		}
		for x != nil && yield(x.key, x.val) {
			x = x.prev(m)
		}
	}
}

// next returns the successor node of x in the tree,
// even if x has been removed from the tree.
// x must not be nil.
func (x *node[K, V]) next(m bst[K, V]) *node[K, V] {
	if x._size == 0 {
		// x has been deleted.
		// Find where x.key would be in the current tree.
		var eq bool
		x, eq = findGE(m, x.key)
		if !eq {
			// The new x is already greater than the old x.key.
			return x
		}
	}

	if x.right == nil {
		for x.parent != nil && x.parent.right == x {
			x = x.parent
		}
		return x.parent
	}
	return x.right.minNode()
}

// prev returns the predecessor node of x in the tree,
// even if x has been removed from the tree.
// x must not be nil.
func (x *node[K, V]) prev(m bst[K, V]) *node[K, V] {
	if x._size == 0 {
		// x has been deleted.
		// Find where x.key would be in the current tree.
		var eq bool
		x, eq = findLE(m, x.key)
		if !eq {
			// The new x is already less than the old x.key.
			return x
		}
	}

	if x.left == nil {
		for x.parent != nil && x.parent.left == x {
			x = x.parent
		}
		return x.parent
	}
	return x.left.maxNode()
}

// findGE finds the node x in m with the least key k such that k ≥ key.
func findGE[K, V any](m bst[K, V], key K) (x *node[K, V], eq bool) {
	pos, parent := m.find(key)
	if *pos != nil {
		return *pos, true
	}
	if parent == nil {
		return nil, false
	}
	if pos == &parent.left {
		return parent, false
	}
	return parent.next(m), false
}

// findLE finds the node x in m with the greatest key k such that k ≤ key.
func findLE[K, V any](m bst[K, V], key K) (x *node[K, V], eq bool) {
	pos, parent := m.find(key)
	if *pos != nil {
		return *pos, true
	}
	if parent == nil {
		return nil, false
	}
	if pos == &parent.right {
		return parent, false
	}
	// Deleted nodes are detached from the tree, so the parent cannot be
	// deleted and there is no infinite recursion.
	assert(parent._size != 0)
	return parent.prev(m), false
}
