package mergequeue

// cursor pairs the next value of a sequence with the means to keep pulling
// from it. A cursor only exists while its sequence has a head.
type cursor[V any] struct {
	head V
	next func() (V, bool)
	stop func()
}

// newCursor pulls the first value of a sequence. When the sequence is empty it
// is released and no cursor is returned.
func newCursor[V any](next func() (V, bool), stop func()) (cursor[V], bool) {
	head, ok := next()
	if !ok {
		stop()
		return cursor[V]{}, false
	}
	return cursor[V]{head: head, next: next, stop: stop}, true
}

// advance returns the head of c and the cursor positioned on the following
// value. The sequence moves into the returned cursor, c must not be used
// again. When the sequence is exhausted it is released and ok is false.
func (c cursor[V]) advance() (value V, next cursor[V], ok bool) {
	value = c.head
	head, ok := c.next()
	if !ok {
		c.stop()
		return value, cursor[V]{}, false
	}
	return value, cursor[V]{head: head, next: c.next, stop: c.stop}, true
}

// compare orders cursors by their heads alone.
func (c *cursor[V]) compare(other *cursor[V], cmp func(V, V) int) int {
	return cmp(c.head, other.head)
}
