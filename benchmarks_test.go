// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// These benchmarks are based on the ones in github.com/google/btree.

package bst

import (
	"math/rand/v2"
	"sort"
	"testing"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/jba/bst/rng"
)

const benchmarkTreeSize = 10_000

func BenchmarkInsert(b *testing.B) {
	b.StopTimer()
	insertP := rand.Perm(benchmarkTreeSize)
	b.StartTimer()
	i := 0
	for i < b.N {
		var m Tree[int, int]
		for _, item := range insertP {
			m.Insert(item, item)
			i++
			if i >= b.N {
				return
			}
		}
	}
}

func BenchmarkInsertStrings(b *testing.B) {
	b.StopTimer()
	faker := gofakeit.New(1)
	words := make([]string, benchmarkTreeSize)
	for i := range words {
		words[i] = faker.LetterN(12)
	}
	b.StartTimer()
	i := 0
	for i < b.N {
		var m Tree[string, int]
		for j, w := range words {
			m.Insert(w, j)
			i++
			if i >= b.N {
				return
			}
		}
	}
}

func randMap(size int) (*Tree[int, int], []int) {
	insertP := rand.Perm(size)
	var m Tree[int, int]
	for _, item := range insertP {
		m.Insert(item, item)
	}
	return &m, insertP
}

func newMap(els []int) *Tree[int, int] {
	var m Tree[int, int]
	for _, item := range els {
		m.Insert(item, item)
	}
	return &m
}

// iterator setup
func BenchmarkSeek(b *testing.B) {
	b.StopTimer()
	size := 100_000
	m, _ := randMap(size)
	b.StartTimer()

	for i := 0; i < b.N; i++ {
		for range m.Scan(rng.From(i % size)) {
			break
		}
	}
}

func BenchmarkDeleteInsert(b *testing.B) {
	b.StopTimer()
	m, insertP := randMap(benchmarkTreeSize)
	b.StartTimer()
	for i := 0; i < b.N; i++ {
		m.Delete(insertP[i%benchmarkTreeSize])
		m.Insert(insertP[i%benchmarkTreeSize], i)
	}
}

func BenchmarkDelete(b *testing.B) {
	b.StopTimer()
	insertP := rand.Perm(benchmarkTreeSize)
	removeP := rand.Perm(benchmarkTreeSize)
	b.StartTimer()
	i := 0
	for i < b.N {
		b.StopTimer()
		m := newMap(insertP)
		b.StartTimer()
		for _, item := range removeP {
			m.Delete(item)
			i++
			if i >= b.N {
				return
			}
		}
	}
}

func BenchmarkGet(b *testing.B) {
	b.StopTimer()
	insertP := rand.Perm(benchmarkTreeSize)
	removeP := rand.Perm(benchmarkTreeSize)
	b.StartTimer()
	i := 0
	for i < b.N {
		b.StopTimer()
		m := newMap(insertP)
		b.StartTimer()
		for _, item := range removeP {
			m.Get(item)
			i++
			if i >= b.N {
				return
			}
		}
	}
}

// Get on a list-shaped tree, the worst case, and on the same tree after
// Balance.
func BenchmarkGetSkewed(b *testing.B) {
	var m Tree[int, int]
	for i := range benchmarkTreeSize {
		m.Insert(i, i)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m.Get(i % benchmarkTreeSize)
	}
}

func BenchmarkGetBalanced(b *testing.B) {
	var m Tree[int, int]
	for i := range benchmarkTreeSize {
		m.Insert(i, i)
	}
	m.Balance()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m.Get(i % benchmarkTreeSize)
	}
}

func BenchmarkBalance(b *testing.B) {
	m := newMap(rand.Perm(benchmarkTreeSize))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m.Balance()
	}
}

func BenchmarkAscend(b *testing.B) {
	arr := rand.Perm(benchmarkTreeSize)
	m := newMap(arr)
	sort.Ints(arr)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		j := 0
		for k := range m.All() {
			if k != arr[j] {
				b.Fatalf("mismatch: expected: %v, got %v", arr[j], k)
			}
			j++
		}
	}
}
