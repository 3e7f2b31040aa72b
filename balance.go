// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bst

// An entry is a key/value pair lifted out of the tree during a rebuild.
type entry[K, V any] struct {
	key K
	val V
}

// Balance rebuilds m into a tree of minimal height.
// Insertion order dictates the shape of the tree: inserting keys in
// sorted order, for example, produces a list and makes every operation
// take linear time. Balance restores logarithmic searches until later
// insertions and deletions skew the shape again. The entries are unchanged.
// Iterators survive a Balance; they continue from the next key in order.
func (m *Tree[K, V]) Balance() {
	balance(m)
}

// Balance rebuilds m into a tree of minimal height.
// Insertion order dictates the shape of the tree: inserting keys in
// sorted order, for example, produces a list and makes every operation
// take linear time. Balance restores logarithmic searches until later
// insertions and deletions skew the shape again. The entries are unchanged.
// Iterators survive a Balance; they continue from the next key in order.
func (m *TreeFunc[K, V]) Balance() {
	balance(m)
}

func balance[K, V any](m bst[K, V]) {
	n := (*m.root()).size()
	if n < 2 {
		return
	}
	entries := make([]entry[K, V], 0, n)
	for k, v := range all(m) {
		entries = append(entries, entry[K, V]{k, v})
	}
	markDeleted(*m.root())
	*m.root() = nil

	// Reinserting medians first splits the remaining entries evenly at
	// every level, so the rebuilt tree has minimal height.
	var insertMedians func(lo, hi int)
	insertMedians = func(lo, hi int) {
		if lo >= hi {
			return
		}
		mid := (lo + hi) / 2
		insert(m, entries[mid].key, entries[mid].val)
		insertMedians(lo, mid)
		insertMedians(mid+1, hi)
	}
	insertMedians(0, len(entries))
}

// Height returns the height of m: the number of nodes on the longest path
// from the root to a leaf. An empty tree has height 0.
// After [Tree.Balance], the height of a tree with n entries is
// ⌈log₂(n+1)⌉, the smallest possible.
func (m *Tree[K, V]) Height() int { return m._root.height() }

// Height returns the height of m: the number of nodes on the longest path
// from the root to a leaf. An empty tree has height 0.
// After [TreeFunc.Balance], the height of a tree with n entries is
// ⌈log₂(n+1)⌉, the smallest possible.
func (m *TreeFunc[K, V]) Height() int { return m._root.height() }

func (x *node[K, V]) height() int {
	if x == nil {
		return 0
	}
	return 1 + max(x.left.height(), x.right.height())
}
