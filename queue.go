// Package mergequeue merges sorted sequences lazily through a priority queue of
// sequence cursors.
//
// Each input sequence contributes at most one cursor to a binary heap, keyed
// by the value the cursor pulled ahead. Producing a value pops the extremal
// cursor, returns its head and puts the advanced cursor back, so every step
// costs O(log k) for k live sequences.
//
// Input sequences must already be ordered the way the queue is; this is not
// checked. Equal values are all emitted, and the order in which equal values
// coming from different sequences are emitted is unspecified.
//
// New and NewBulk produce the largest value first, while Merge and BulkMerge
// produce the smallest value first. The Func variants follow the order of the
// comparison function they are given.
//
// Sequences are read with iter.Pull. A queue that is not drained must be
// released with Close, or by ranging over All, so the sequences it still
// holds are stopped.
package mergequeue

import (
	"cmp"
	"iter"
	"runtime"
)

// Queue produces the merge of its input sequences one value at a time.
//
// A queue holds every sequence that still has values until it is drained or
// closed. Callers that stop consuming early must call Close, or range over
// All, which closes the queue when the loop ends. A queue that becomes
// unreachable without being closed releases its sequences when the garbage
// collector finalizes it, which may be much later.
//
// The zero value is an exhausted queue. A Queue is not safe for concurrent
// use.
type Queue[V any] struct {
	heap []cursor[V]
	cmp  func(V, V) int
}

// New builds a queue that yields the largest remaining value first. The input
// sequences must each be sorted in descending order. The queue must be
// drained or closed.
func New[V cmp.Ordered](seqs ...iter.Seq[V]) *Queue[V] {
	return NewFunc(Descending[V], seqs...)
}

// NewFunc builds a queue that yields values in the order defined by cmp: the
// value for which cmp reports the lowest rank is produced first, like
// slices.SortFunc would place it. The input sequences must be ordered by the
// same comparison function. The queue must be drained or closed.
func NewFunc[V any](cmp func(V, V) int, seqs ...iter.Seq[V]) *Queue[V] {
	q := newQueue(cmp, len(seqs))
	for _, seq := range seqs {
		q.push(iter.Pull(seq))
	}
	heapify(q.heap, cmp)
	return q
}

func newQueue[V any](cmp func(V, V) int, n int) *Queue[V] {
	q := &Queue[V]{
		heap: make([]cursor[V], 0, n),
		cmp:  cmp,
	}
	// The parked iter.Pull goroutines do not reference the queue, so an
	// abandoned queue is still collected and can stop them.
	runtime.SetFinalizer(q, (*Queue[V]).Close)
	return q
}

// Descending orders values from the largest to the smallest.
func Descending[V cmp.Ordered](a, b V) int {
	return cmp.Compare(b, a)
}

func (q *Queue[V]) push(next func() (V, bool), stop func()) {
	if c, ok := newCursor(next, stop); ok {
		q.heap = append(q.heap, c)
	}
}

// Next returns the next value of the merge. Once every sequence is exhausted
// it returns the zero value and false, on this call and all later ones.
func (q *Queue[V]) Next() (value V, ok bool) {
	if len(q.heap) == 0 {
		return value, false
	}
	value, next, ok := q.heap[0].advance()
	if ok {
		replace(q.heap, next, q.cmp)
	} else {
		q.heap = pop(q.heap, q.cmp)
	}
	return value, true
}

// Peek returns the value the next call to Next would produce, without
// advancing any sequence.
func (q *Queue[V]) Peek() (value V, ok bool) {
	if len(q.heap) == 0 {
		return value, false
	}
	return q.heap[0].head, true
}

// Len returns the number of sequences that still have values to produce.
func (q *Queue[V]) Len() int {
	return len(q.heap)
}

// All returns the remaining values of q as a range function. Remaining
// sequences are released when the loop ends, including on break.
func (q *Queue[V]) All() iter.Seq[V] {
	return func(yield func(V) bool) {
		defer q.Close()
		for {
			value, ok := q.Next()
			if !ok || !yield(value) {
				return
			}
		}
	}
}

// Close releases the sequences that have not been fully consumed. The queue
// is exhausted afterwards.
func (q *Queue[V]) Close() {
	for i := range q.heap {
		q.heap[i].stop()
		q.heap[i] = cursor[V]{}
	}
	q.heap = q.heap[:0]
}
