// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bst

import (
	"iter"

	"github.com/jba/bst/rng"
)

// Scan returns an iterator over the entries of m whose keys lie in r,
// from smallest to largest key, or largest to smallest if r is backwards.
//
// If m is modified during the iteration, some keys may not be visited.
// No keys will be visited multiple times.
func (m *Tree[K, V]) Scan(r rng.Range[K]) iter.Seq2[K, V] {
	return scan(m, r)
}

// Scan returns an iterator over the entries of m whose keys lie in r,
// from smallest to largest key, or largest to smallest if r is backwards.
//
// If m is modified during the iteration, some keys may not be visited.
// No keys will be visited multiple times.
func (m *TreeFunc[K, V]) Scan(r rng.Range[K]) iter.Seq2[K, V] {
	return scan(m, r)
}

func scan[K, V any](m bst[K, V], r rng.Range[K]) iter.Seq2[K, V] {
	if r.IsBackwards() {
		return func(yield func(K, V) bool) {
			x := lastInRange(m, r)
			for x != nil && inLow(m, r, x.key) && yield(x.key, x.val) {
				x = x.prev(m)
			}
		}
	}
	return func(yield func(K, V) bool) {
		x := firstInRange(m, r)
		for x != nil && inHigh(m, r, x.key) && yield(x.key, x.val) {
			x = x.next(m)
		}
	}
}

// DeleteRange deletes every entry of m whose key lies in r.
// It returns the number of entries deleted.
// Iterators resting on deleted entries re-anchor as described at [Iterator].
func (m *Tree[K, V]) DeleteRange(r rng.Range[K]) int {
	return deleteRange(m, r)
}

// DeleteRange deletes every entry of m whose key lies in r.
// It returns the number of entries deleted.
// Iterators resting on deleted entries re-anchor as described at [Iterator].
func (m *TreeFunc[K, V]) DeleteRange(r rng.Range[K]) int {
	return deleteRange(m, r)
}

// TODO: delete whole subtrees instead of one key at a time.
func deleteRange[K, V any](m bst[K, V], r rng.Range[K]) int {
	_, loInf, _ := r.Low()
	_, hiInf, _ := r.High()
	if loInf && hiInf {
		// Everything goes. Drop the nodes wholesale, marked so that
		// iterators resting on them can re-anchor.
		x := *m.root()
		n := x.size()
		markDeleted(x)
		*m.root() = nil
		return n
	}
	n := 0
	for x := firstInRange(m, r); x != nil && inHigh(m, r, x.key); x = firstInRange(m, r) {
		_delete(m, x.key)
		n++
	}
	return n
}

// firstInRange returns the node with the smallest key in r, or nil if
// no key at or above r's low bound exists. The caller still has to check
// the high bound.
func firstInRange[K, V any](m bst[K, V], r rng.Range[K]) *node[K, V] {
	lo, inf, incl := r.Low()
	if inf {
		x := *m.root()
		if x == nil {
			return nil
		}
		return x.minNode()
	}
	x, eq := findGE(m, lo)
	if eq && !incl {
		x = x.next(m)
	}
	return x
}

// lastInRange returns the node with the largest key in r, or nil if
// no key at or below r's high bound exists. The caller still has to check
// the low bound.
func lastInRange[K, V any](m bst[K, V], r rng.Range[K]) *node[K, V] {
	hi, inf, incl := r.High()
	if inf {
		x := *m.root()
		if x == nil {
			return nil
		}
		return x.maxNode()
	}
	x, eq := findLE(m, hi)
	if eq && !incl {
		x = x.prev(m)
	}
	return x
}

// inLow reports whether the key k is within r's low bound.
func inLow[K, V any](m bst[K, V], r rng.Range[K], k K) bool {
	lo, inf, incl := r.Low()
	if inf {
		return true
	}
	c := m.compare(k, lo)
	return c > 0 || (c == 0 && incl)
}

// inHigh reports whether the key k is within r's high bound.
func inHigh[K, V any](m bst[K, V], r rng.Range[K], k K) bool {
	hi, inf, incl := r.High()
	if inf {
		return true
	}
	c := m.compare(k, hi)
	return c < 0 || (c == 0 && incl)
}
