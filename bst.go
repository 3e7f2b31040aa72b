// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package bst implements in-memory ordered maps as binary search trees.
// [Tree][K, V] is suitable for ordered types K,
// while [TreeFunc][K, V] supports arbitrary keys and comparison functions.
package bst

// The implementation is a plain binary search tree with parent links and
// per-node subtree sizes. Nothing rebalances on its own: the shape is
// whatever the insertion order produces, and [Tree.Balance] rebuilds it to
// minimal height on demand. Deletion follows the classic three cases
// (leaf, one child, two children with an in-order successor splice).

import "cmp"

// A Tree is a map[K]V ordered according to K's standard Go ordering.
// The zero value of a Tree is an empty Tree ready to use.
type Tree[K cmp.Ordered, V any] struct {
	_root *node[K, V]
}

// A TreeFunc is a map[K]V ordered according to an arbitrary comparison function.
// The zero value of a TreeFunc is not meaningful since it has no comparison function.
// Use [NewTreeFunc] to create a [TreeFunc].
type TreeFunc[K, V any] struct {
	_root *node[K, V]
	cmp   func(K, K) int
}

// A node is a node in the tree. A parent's left and right fields hold the
// only live references to its children; the parent field is navigation
// only, nil at the root.
type node[K any, V any] struct {
	parent *node[K, V]
	left   *node[K, V]
	right  *node[K, V]
	key    K
	val    V

	// _size is the number of nodes in the subtree rooted here, self
	// included, so it is at least 1. The exception: _size == 0 marks a
	// node detached from its tree, which lets an iterator resting on it
	// recover (see [node.next]). Read through [node.size], which
	// tolerates nil.
	_size int
}

// NewTreeFunc returns a new TreeFunc[K, V] ordered according to cmp.
func NewTreeFunc[K, V any](cmp func(K, K) int) *TreeFunc[K, V] {
	return &TreeFunc[K, V]{cmp: cmp}
}

// bst is the interface implemented by both Tree[K, V] and TreeFunc[K, V]
// that enables a common implementation of the map operations.
type bst[K, V any] interface {
	// root returns &m._root; the caller can read or write *m.root().
	root() **node[K, V]

	// find reports where a node with the key would be: at *pos.
	// If *pos != nil, then key is present in the tree;
	// otherwise *pos is where a new node with the key should be attached.
	//
	// If parent != nil, then pos is either &parent.left or &parent.right
	// depending on how parent.key compares with key.
	// If parent == nil, then pos is m.root().
	find(key K) (pos **node[K, V], parent *node[K, V])

	// compare is the ordering every operation descends by: negative,
	// zero, or positive as a sorts before, the same as, or after b.
	// Two keys are the same entry exactly when compare reports 0;
	// there is no separate equality on K.
	compare(a, b K) int
}

func (m *Tree[K, V]) root() **node[K, V]     { return &m._root }
func (m *TreeFunc[K, V]) root() **node[K, V] { return &m._root }

func (m *Tree[K, V]) compare(a, b K) int     { return cmp.Compare(a, b) }
func (m *TreeFunc[K, V]) compare(a, b K) int { return m.cmp(a, b) }

// find looks up the key k in the map.
// It returns the parent of k as well as the position where k would be attached.
// *pos is non-nil if k is present, nil if k is missing.
// parent is nil if there are no nodes in the map, or if there is only one node and it's k.
func (m *Tree[K, V]) find(k K) (pos **node[K, V], parent *node[K, V]) {
	pos = &m._root
	for x := *pos; x != nil; x = *pos {
		c := cmp.Compare(x.key, k)
		if c == 0 {
			break
		}
		parent = x
		if c > 0 {
			pos = &x.left
		} else {
			pos = &x.right
		}
	}
	return pos, parent
}

// find is the same as for Tree[K, V] but using m.cmp.
func (m *TreeFunc[K, V]) find(k K) (pos **node[K, V], parent *node[K, V]) {
	pos = &m._root
	for x := *pos; x != nil; x = *pos {
		cmp := m.cmp(x.key, k)
		if cmp == 0 {
			break
		}
		parent = x
		if cmp > 0 {
			pos = &x.left
		} else {
			pos = &x.right
		}
	}
	return pos, parent
}

// Get returns the value of m[key] and reports whether it exists.
func (m *Tree[K, V]) Get(key K) (V, bool) {
	return get(m, key)
}

// Get returns the value of m[key] and reports whether it exists.
func (m *TreeFunc[K, V]) Get(key K) (V, bool) {
	return get(m, key)
}

func get[K, V any](m bst[K, V], key K) (V, bool) {
	pos, _ := m.find(key)
	if x := *pos; x != nil {
		return x.val, true
	}
	var zero V
	return zero, false
}

// Insert sets m[key] = val if key is not already present.
// It returns an iterator at the entry for key, either the new entry or
// the one that was already there, and reports whether it added the entry.
// Insert never overwrites: if the key was present, its value is untouched.
func (m *Tree[K, V]) Insert(key K, val V) (Iterator[K, V], bool) {
	return insert(m, key, val)
}

// Insert sets m[key] = val if key is not already present.
// It returns an iterator at the entry for key, either the new entry or
// the one that was already there, and reports whether it added the entry.
// Insert never overwrites: if the key was present, its value is untouched.
func (m *TreeFunc[K, V]) Insert(key K, val V) (Iterator[K, V], bool) {
	return insert(m, key, val)
}

func insert[K, V any](m bst[K, V], key K, val V) (Iterator[K, V], bool) {
	pos, parent := m.find(key)
	if x := *pos; x != nil {
		return Iterator[K, V]{m, x}, false
	}
	x := &node[K, V]{parent: parent, key: key, val: val, _size: 1}
	*pos = x
	grow(parent)
	return Iterator[K, V]{m, x}, true
}

// Ref returns a pointer to the value stored under key, first inserting a
// zero value if the key is absent. It never fails.
// The pointer goes stale when the entry's node is detached or rebuilt.
// Deleting the entry does that; so do [Tree.Balance] and a deletion that
// claims the entry as its in-order successor. Writes through a stale
// pointer are not seen by the tree.
func (m *Tree[K, V]) Ref(key K) *V {
	return ref(m, key)
}

// Ref returns a pointer to the value stored under key, first inserting a
// zero value if the key is absent. It never fails.
// The pointer goes stale when the entry's node is detached or rebuilt.
// Deleting the entry does that; so do [TreeFunc.Balance] and a deletion
// that claims the entry as its in-order successor. Writes through a
// stale pointer are not seen by the tree.
func (m *TreeFunc[K, V]) Ref(key K) *V {
	return ref(m, key)
}

func ref[K, V any](m bst[K, V], key K) *V {
	pos, parent := m.find(key)
	if x := *pos; x != nil {
		return &x.val
	}
	x := &node[K, V]{parent: parent, key: key, _size: 1}
	*pos = x
	grow(parent)
	return &x.val
}

// grow walks the parent chain incrementing subtree counts after one node
// has been attached below p.
func grow[K, V any](p *node[K, V]) {
	for ; p != nil; p = p.parent {
		p._size++
	}
}

// shrink walks the parent chain decrementing subtree counts after one node
// has been detached below p.
func shrink[K, V any](p *node[K, V]) {
	for ; p != nil; p = p.parent {
		p._size--
	}
}

// Delete deletes m[key] if it exists, and reports whether it did.
func (m *Tree[K, V]) Delete(key K) bool {
	return _delete(m, key)
}

// Delete deletes m[key] if it exists, and reports whether it did.
func (m *TreeFunc[K, V]) Delete(key K) bool {
	return _delete(m, key)
}

func _delete[K, V any](m bst[K, V], key K) bool {
	pos, _ := m.find(key)
	x := *pos
	if x == nil {
		return false
	}

	switch {
	case x.left == nil && x.right == nil:
		// Leaf: empty the slot.
		*pos = nil
		shrink(x.parent)

	case x.left != nil && x.right != nil:
		// Two children: the in-order successor (leftmost under x.right)
		// carries the next larger key. Erase it by key first, which lands
		// in one of the simpler cases since it has no left child, then
		// splice a replacement node holding its entry into x's slot.
		// Erasing before splicing means the successor's subtree is never
		// rewired while the erase is still descending through it.
		s := x.right.minNode()
		skey, sval := s.key, s.val
		_delete(m, skey)
		r := &node[K, V]{parent: x.parent, left: x.left, right: x.right, key: skey, val: sval, _size: x._size}
		if r.left != nil {
			r.left.parent = r
		}
		if r.right != nil {
			r.right.parent = r
		}
		*pos = r

	default:
		// One child: promote it into x's slot.
		c := x.left
		if c == nil {
			c = x.right
		}
		c.parent = x.parent
		*pos = c
		shrink(x.parent)
	}

	x._size = 0 // mark deleted
	return true
}

// markDeleted marks every node in x's subtree as deleted, so that
// iterators resting on those nodes can re-anchor (see [node.next]).
func markDeleted[K, V any](x *node[K, V]) {
	if x == nil {
		return
	}
	x._size = 0
	markDeleted(x.left)
	markDeleted(x.right)
}

// Min returns the minimum key in m and true.
// If m is empty, the second return value is false.
func (m *Tree[K, V]) Min() (K, bool) {
	return _min(m)
}

// Min returns the minimum key in m and true.
// If m is empty, the second return value is false.
func (m *TreeFunc[K, V]) Min() (K, bool) {
	return _min(m)
}

func _min[K, V any](m bst[K, V]) (K, bool) {
	x := *m.root()
	if x == nil {
		var z K
		return z, false
	}
	return x.minNode().key, true
}

// minNode returns the node in x's subtree with the smallest key.
// x must not be nil.
func (x *node[K, V]) minNode() *node[K, V] {
	for x.left != nil {
		x = x.left
	}
	return x
}

// Max returns the maximum key in m and true.
// If m is empty, the second return value is false.
func (m *Tree[K, V]) Max() (K, bool) {
	return _max(m)
}

// Max returns the maximum key in m and true.
// If m is empty, the second return value is false.
func (m *TreeFunc[K, V]) Max() (K, bool) {
	return _max(m)
}

func _max[K, V any](m bst[K, V]) (K, bool) {
	x := *m.root()
	if x == nil {
		var z K
		return z, false
	}
	return x.maxNode().key, true
}

// maxNode returns the node in x's subtree with the largest key.
// x must not be nil.
func (x *node[K, V]) maxNode() *node[K, V] {
	for x.right != nil {
		x = x.right
	}
	return x
}

// size returns the number of nodes in x's subtree, tolerating nil.
func (x *node[K, V]) size() int {
	if x == nil {
		return 0
	}
	return x._size
}

// Len returns the number of entries in m.
func (m *Tree[K, V]) Len() int { return m._root.size() }

// Len returns the number of entries in m.
func (m *TreeFunc[K, V]) Len() int { return m._root.size() }

// At returns the i'th entry of m in key order, counting from 0.
// It panics if i is out of range.
func (m *Tree[K, V]) At(i int) (K, V) {
	return at(m, i)
}

// At returns the i'th entry of m in key order, counting from 0.
// It panics if i is out of range.
func (m *TreeFunc[K, V]) At(i int) (K, V) {
	return at(m, i)
}

// at descends by subtree size: the i'th entry of a subtree is in its left
// child if i is smaller than the left child's size, at the root if equal,
// and otherwise in the right child at a correspondingly smaller index.
func at[K, V any](m bst[K, V], i int) (K, V) {
	x := *m.root()
	if i < 0 || i >= x.size() {
		panic("index out of range")
	}
	for {
		l := x.left.size()
		switch {
		case i < l:
			x = x.left
		case i == l:
			return x.key, x.val
		default:
			i -= l + 1
			x = x.right
		}
	}
}

// Clear deletes m[k] for all keys in m.
func (m *Tree[K, V]) Clear() {
	m._root = nil
}

// Clear deletes m[k] for all keys in m.
func (m *TreeFunc[K, V]) Clear() {
	m._root = nil
}

// Clone returns a deep copy of m: same entries, same shape, no shared
// nodes. Mutating either tree afterwards does not affect the other.
func (m *Tree[K, V]) Clone() *Tree[K, V] {
	return &Tree[K, V]{_root: m._root.clone(nil)}
}

// Clone returns a deep copy of m: same entries, same shape, no shared
// nodes. Mutating either tree afterwards does not affect the other.
func (m *TreeFunc[K, V]) Clone() *TreeFunc[K, V] {
	m2 := NewTreeFunc[K, V](m.cmp)
	m2._root = m._root.clone(nil)
	return m2
}

func (x *node[K, V]) clone(parent *node[K, V]) *node[K, V] {
	if x == nil {
		return nil
	}
	c := *x
	x2 := &c
	x2.left = x.left.clone(x2)
	x2.right = x.right.clone(x2)
	x2.parent = parent
	return x2
}

// Move returns a tree owning m's entries and leaves m empty.
// No entries are copied, so Move is O(1); m stays usable afterwards.
func (m *Tree[K, V]) Move() *Tree[K, V] {
	m2 := &Tree[K, V]{_root: m._root}
	m._root = nil
	return m2
}

// Move returns a tree owning m's entries and leaves m empty.
// No entries are copied, so Move is O(1); m stays usable afterwards.
func (m *TreeFunc[K, V]) Move() *TreeFunc[K, V] {
	m2 := NewTreeFunc[K, V](m.cmp)
	m2._root = m._root
	m._root = nil
	return m2
}

func assert(b bool) {
	if !b {
		panic("assertion failed")
	}
}
