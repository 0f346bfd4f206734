package mergequeue

import (
	"fmt"

	"github.com/xlab/treeprint"
)

// String renders the heap as a tree of cursor heads, the root being the value
// the queue produces next.
func (q *Queue[V]) String() string {
	tree := treeprint.New()
	if len(q.heap) > 0 {
		q.render(tree, 0)
	}
	return tree.String()
}

func (q *Queue[V]) render(tree treeprint.Tree, i int) {
	label := fmt.Sprint(q.heap[i].head)
	l, r := left(i), right(i)
	if l >= len(q.heap) {
		tree.AddNode(label)
		return
	}
	branch := tree.AddBranch(label)
	q.render(branch, l)
	if r < len(q.heap) {
		q.render(branch, r)
	}
}

func left(i int) int {
	return (2 * i) + 1
}

func right(i int) int {
	return (2 * i) + 2
}
