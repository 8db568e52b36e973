package tree

// NodeVisitor is called for each component reached by a walker. Returning an error stops the walk.
type NodeVisitor[T any] func(Component[T]) error
