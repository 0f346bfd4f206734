package mergequeue

// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// The heap keeps h[0] as the cursor whose head cmp orders first. Only the
// root is ever removed or replaced, so sifting down is the only repair needed.

func heapify[V any](h []cursor[V], cmp func(V, V) int) {
	n := len(h)
	for i := n/2 - 1; i >= 0; i-- {
		down(h, i, n, cmp)
	}
}

// pop drops the root and returns the shrunk heap.
func pop[V any](h []cursor[V], cmp func(V, V) int) []cursor[V] {
	n := len(h) - 1
	h[0], h[n] = h[n], h[0]
	h[n] = cursor[V]{}
	down(h, 0, n, cmp)
	return h[:n]
}

// replace swaps the root for c and restores the heap order.
func replace[V any](h []cursor[V], c cursor[V], cmp func(V, V) int) {
	h[0] = c
	down(h, 0, len(h), cmp)
}

func down[V any](h []cursor[V], i, n int, cmp func(V, V) int) {
	for {
		j1 := left(i)
		if j1 >= n || j1 < 0 { // j1 < 0 after int overflow
			break
		}
		j := j1
		if j2 := right(i); j2 < n && h[j2].compare(&h[j1], cmp) < 0 {
			j = j2
		}
		if h[j].compare(&h[i], cmp) >= 0 {
			break
		}
		h[i], h[j] = h[j], h[i]
		i = j
	}
}
