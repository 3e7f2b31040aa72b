// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bst

import (
	"fmt"
	"strings"

	"github.com/xlab/treeprint"
)

// String returns m's keys in ascending order, separated by single spaces.
func (m *Tree[K, V]) String() string {
	return _string(m)
}

// String returns m's keys in ascending order, separated by single spaces.
func (m *TreeFunc[K, V]) String() string {
	return _string(m)
}

func _string[K, V any](m bst[K, V]) string {
	var b strings.Builder
	for k := range all(m) {
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%v", k)
	}
	return b.String()
}

// DebugString renders m's structure as an indented tree, one entry per
// line, with children tagged L and R. It is meant for tests and debugging.
func (m *Tree[K, V]) DebugString() string {
	return debugString(m)
}

// DebugString renders m's structure as an indented tree, one entry per
// line, with children tagged L and R. It is meant for tests and debugging.
func (m *TreeFunc[K, V]) DebugString() string {
	return debugString(m)
}

func debugString[K, V any](m bst[K, V]) string {
	x := *m.root()
	if x == nil {
		return "(empty)\n"
	}
	t := treeprint.NewWithRoot(label(x))
	addChildren(t, x)
	return t.String()
}

func label[K, V any](x *node[K, V]) string {
	return fmt.Sprintf("%v=%v", x.key, x.val)
}

func addChildren[K, V any](t treeprint.Tree, x *node[K, V]) {
	add := func(meta string, c *node[K, V]) {
		if c == nil {
			return
		}
		if c.left == nil && c.right == nil {
			t.AddMetaNode(meta, label(c))
			return
		}
		addChildren(t.AddMetaBranch(meta, label(c)), c)
	}
	add("L", x.left)
	add("R", x.right)
}
