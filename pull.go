package mergequeue

import (
	"cmp"
	"iter"
)

// NewBulk is like New but reads sequences producing values in batches. Each
// batch must be sorted in descending order, as must be consecutive batches.
func NewBulk[V cmp.Ordered](seqs ...iter.Seq[[]V]) *Queue[V] {
	return NewBulkFunc(Descending[V], seqs...)
}

// NewBulkFunc is like NewFunc but reads sequences producing values in
// batches. Empty batches are skipped. A batch is read through before the
// next one is pulled, so producers may reuse their buffers. The queue must
// be drained or closed.
func NewBulkFunc[V any](cmp func(V, V) int, seqs ...iter.Seq[[]V]) *Queue[V] {
	q := newQueue(cmp, len(seqs))
	for _, seq := range seqs {
		q.push(pullBulk(seq))
	}
	heapify(q.heap, cmp)
	return q
}

// Values returns a sequence producing the given values in order.
func Values[V any](values ...V) iter.Seq[V] {
	return func(yield func(V) bool) {
		for _, value := range values {
			if !yield(value) {
				return
			}
		}
	}
}

// Buffered groups the values of seq into batches of up to size values. The
// batch slice is reused between iterations.
func Buffered[V any](size int, seq iter.Seq[V]) iter.Seq[[]V] {
	if size < 1 {
		size = 1
	}
	return func(yield func([]V) bool) {
		buf := make([]V, size)
		n := 0

		for buf[n] = range seq {
			if n++; n == len(buf) {
				if !yield(buf) {
					return
				}
				n = 0
			}
		}

		if n > 0 {
			yield(buf[:n])
		}
	}
}

//go:noinline
func pullBulk[V any](seq iter.Seq[[]V]) (func() (V, bool), func()) {
	next, stop := iter.Pull(seq)

	var values []V
	var offset int

	return func() (value V, ok bool) {
		for offset == len(values) {
			if values, ok = next(); !ok {
				return value, false
			}
			offset = 0
		}
		value = values[offset]
		offset++
		return value, true
	}, stop
}
