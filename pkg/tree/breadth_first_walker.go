package tree

import (
	"fmt"

	"github.com/anchore/composite/pkg/tree/node"
)

// BreadthFirstWalker implements stateful level-order tree traversal, walking children in insertion order.
type BreadthFirstWalker[T any] struct {
	visitor    NodeVisitor[T]
	queue      node.Queue[Component[T]]
	seen       node.IDSet
	visited    node.IDSet
	conditions WalkConditions[T]
}

func NewBreadthFirstWalker[T any](visitor NodeVisitor[T]) *BreadthFirstWalker[T] {
	return NewBreadthFirstWalkerWithConditions(visitor, WalkConditions[T]{})
}

func NewBreadthFirstWalkerWithConditions[T any](visitor NodeVisitor[T], conditions WalkConditions[T]) *BreadthFirstWalker[T] {
	return &BreadthFirstWalker[T]{
		visitor:    visitor,
		seen:       node.NewIDSet(),
		visited:    node.NewIDSet(),
		conditions: conditions,
	}
}

func (w *BreadthFirstWalker[T]) Walk(from Component[T]) (Component[T], error) {
	w.queue.Enqueue(from)

	for w.queue.Size() > 0 {
		current := w.queue.Dequeue()
		if w.conditions.shouldTerminate(current) {
			return current, nil
		}

		cid := current.ID()
		if w.seen.Contains(cid) {
			continue
		}
		w.seen.Add(cid)

		// visit
		if w.visitor != nil && w.conditions.shouldVisit(current) {
			if err := w.visitor(current); err != nil {
				return current, fmt.Errorf("unable to visit %q: %w", cid, err)
			}
			w.visited.Add(cid)
		}

		if !w.conditions.shouldContinueBranch(current) {
			continue
		}

		w.queue.Enqueue(childrenOf(current)...)
	}

	return nil, nil
}

func (w *BreadthFirstWalker[T]) Visited(n node.Node) bool {
	return w.visited.Contains(n.ID())
}
