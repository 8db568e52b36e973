package tree

import (
	"fmt"

	"github.com/anchore/composite/pkg/tree/node"
)

// DepthFirstWalker implements stateful depth-first (pre-order) tree traversal. Children are walked in
// insertion order and each node ID is expanded at most once, so substructure shared between composites is
// only walked the first time it is reached.
type DepthFirstWalker[T any] struct {
	visitor    NodeVisitor[T]
	stack      node.Stack[Component[T]]
	seen       node.IDSet
	visited    node.IDSet
	conditions WalkConditions[T]
}

func NewDepthFirstWalker[T any](visitor NodeVisitor[T]) *DepthFirstWalker[T] {
	return NewDepthFirstWalkerWithConditions(visitor, WalkConditions[T]{})
}

func NewDepthFirstWalkerWithConditions[T any](visitor NodeVisitor[T], conditions WalkConditions[T]) *DepthFirstWalker[T] {
	return &DepthFirstWalker[T]{
		visitor:    visitor,
		seen:       node.NewIDSet(),
		visited:    node.NewIDSet(),
		conditions: conditions,
	}
}

func (w *DepthFirstWalker[T]) Walk(from Component[T]) (Component[T], error) {
	w.stack.Push(from)

	for w.stack.Size() > 0 {
		current := w.stack.Pop()
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

		// push children in reverse so the first child is walked first
		children := childrenOf(current)
		for i := len(children) - 1; i >= 0; i-- {
			w.stack.Push(children[i])
		}
	}

	return nil, nil
}

func (w *DepthFirstWalker[T]) Visited(n node.Node) bool {
	return w.visited.Contains(n.ID())
}
