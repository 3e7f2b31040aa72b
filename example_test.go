// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bst_test

import (
	"fmt"

	"github.com/jba/bst"
	"github.com/jba/bst/rng"
)

func ExampleTree_All() {
	var m bst.Tree[int, string]
	m.Insert(1, "one")
	m.Insert(2, "two")
	m.Insert(3, "three")

	for k, v := range m.All() {
		fmt.Println(k, v)
	}

	// Output:
	// 1 one
	// 2 two
	// 3 three
}

func ExampleTree_Insert() {
	var m bst.Tree[int, string]
	_, added := m.Insert(1, "one")
	fmt.Println(added)

	it, added := m.Insert(1, "uno")
	fmt.Println(added, it.Value())

	// Output:
	// true
	// false one
}

func ExampleTree_Ref() {
	var m bst.Tree[string, int]
	for _, w := range []string{"po", "ti", "po", "ta", "po", "ti"} {
		*m.Ref(w)++
	}

	for w, n := range m.All() {
		fmt.Println(w, n)
	}

	// Output:
	// po 3
	// ta 1
	// ti 2
}

func ExampleTree_Delete() {
	var m bst.Tree[int, int]
	for _, k := range []int{5, 3, 8, 1, 4, 7, 9} {
		m.Insert(k, k)
	}
	fmt.Println(m.String())

	m.Delete(5)
	fmt.Println(m.String())

	// Output:
	// 1 3 4 5 7 8 9
	// 1 3 4 7 8 9
}

func ExampleTree_Balance() {
	var m bst.Tree[int, bool]
	for k := 1; k <= 7; k++ {
		m.Insert(k, true)
	}
	fmt.Println(m.Height())

	m.Balance()
	fmt.Println(m.Height())

	// Output:
	// 7
	// 3
}

func ExampleTree_Scan() {
	var m bst.Tree[int, string]
	m.Insert(1, "one")
	m.Insert(2, "two")
	m.Insert(3, "three")

	for k, v := range m.Scan(rng.From(2)) {
		fmt.Println(k, v)
	}

	// Output:
	// 2 two
	// 3 three
}

func ExampleTree_Scan_backwards() {
	var m bst.Tree[int, string]
	m.Insert(1, "one")
	m.Insert(2, "two")
	m.Insert(3, "three")

	for k, v := range m.Scan(rng.Above(1).Below(3).Backwards()) {
		fmt.Println(k, v)
	}

	// Output:
	// 2 two
}

func ExampleIterator() {
	var m bst.Tree[string, int]
	m.Insert("a", 1)
	m.Insert("b", 2)
	m.Insert("c", 3)

	for it := m.Begin(); !it.Equal(m.End()); it.Next() {
		fmt.Println(it.Key(), it.Value())
	}

	// Output:
	// a 1
	// b 2
	// c 3
}
