// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bst

import (
	"slices"
	"strings"
	"testing"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/require"
)

func TestString(t *testing.T) {
	test(t, func(t *testing.T, newMap func() Interface[int, int]) {
		m := newMap()
		require.Equal(t, "", m.String())
		for _, k := range []int{2, 3, 1} {
			m.Insert(k, k)
		}
		require.Equal(t, "1 2 3", m.String())
		m.Delete(2)
		require.Equal(t, "1 3", m.String())
	})
}

func TestStringKeys(t *testing.T) {
	faker := gofakeit.New(1)
	seen := map[string]bool{}
	var words []string
	for len(words) < 50 {
		w := faker.Word()
		if !seen[w] {
			seen[w] = true
			words = append(words, w)
		}
	}
	var m Tree[string, int]
	for i, w := range words {
		m.Insert(w, i)
	}
	slices.Sort(words)
	require.Equal(t, strings.Join(words, " "), m.String())

	// All yields the same sorted order.
	i := 0
	for k := range m.All() {
		require.Equal(t, words[i], k)
		i++
	}
	require.Equal(t, len(words), i)
}

func TestDebugString(t *testing.T) {
	var m Tree[int, string]
	require.Equal(t, "(empty)\n", m.DebugString())

	m.Insert(5, "e")
	m.Insert(3, "c")
	m.Insert(8, "h")
	m.Insert(9, "i")
	got := m.DebugString()
	lines := strings.Split(strings.TrimRight(got, "\n"), "\n")
	require.Len(t, lines, 4)
	require.Contains(t, lines[0], "5=e")
	require.Contains(t, got, "[L]")
	require.Contains(t, got, "[R]")
	for _, want := range []string{"3=c", "8=h", "9=i"} {
		require.Contains(t, got, want)
	}
}
