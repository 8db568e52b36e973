package tree

type WalkConditions[T any] struct {
	// Return true when the walker should stop traversing (before visiting current node)
	ShouldTerminate func(Component[T]) bool

	// Whether we should visit the current node. Note: this will continue down the same traversal
	// path, only "skipping" over a single node (but still potentially visiting children later)
	// Return true to visit the current node.
	ShouldVisit func(Component[T]) bool

	// Whether we should consider children of this node to be included in the traversal path.
	// Return true to traverse children of this node.
	ShouldContinueBranch func(Component[T]) bool
}

func (c WalkConditions[T]) shouldTerminate(n Component[T]) bool {
	return c.ShouldTerminate != nil && c.ShouldTerminate(n)
}

func (c WalkConditions[T]) shouldVisit(n Component[T]) bool {
	return c.ShouldVisit == nil || c.ShouldVisit(n)
}

func (c WalkConditions[T]) shouldContinueBranch(n Component[T]) bool {
	return c.ShouldContinueBranch == nil || c.ShouldContinueBranch(n)
}
