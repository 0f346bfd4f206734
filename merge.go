package mergequeue

import (
	"cmp"
	"iter"
)

// Merge merges multiple sequences into one. The sequences must produce values
// in ascending order.
func Merge[V cmp.Ordered](seqs ...iter.Seq[V]) iter.Seq[V] {
	return MergeFunc(cmp.Compare[V], seqs...)
}

// MergeFunc merges multiple sequences into one using the given comparison
// function to determine the order of values. The sequences must be ordered
// by the same comparison function.
//
// Each range over the returned sequence starts a new merge of seqs.
func MergeFunc[V any](cmp func(V, V) int, seqs ...iter.Seq[V]) iter.Seq[V] {
	switch len(seqs) {
	case 0:
		return merge0[V]()
	case 1:
		return seqs[0]
	default:
		return func(yield func(V) bool) {
			NewFunc(cmp, seqs...).All()(yield)
		}
	}
}

// BulkMerge is like Merge for sequences producing values in batches.
func BulkMerge[V cmp.Ordered](seqs ...iter.Seq[[]V]) iter.Seq[V] {
	return BulkMergeFunc(cmp.Compare[V], seqs...)
}

// BulkMergeFunc is like MergeFunc for sequences producing values in batches.
func BulkMergeFunc[V any](cmp func(V, V) int, seqs ...iter.Seq[[]V]) iter.Seq[V] {
	if len(seqs) == 0 {
		return merge0[V]()
	}
	return func(yield func(V) bool) {
		NewBulkFunc(cmp, seqs...).All()(yield)
	}
}

//go:noinline
func merge0[V any]() iter.Seq[V] {
	return func(func(V) bool) {}
}
