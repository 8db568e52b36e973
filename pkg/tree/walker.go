package tree

var (
	_ Walker[string] = (*DepthFirstWalker[string])(nil)
	_ Walker[string] = (*BreadthFirstWalker[string])(nil)
)

// Walker visits every component reachable from a starting component. Walk returns the component that caused
// the walk to terminate early (if any).
type Walker[T any] interface {
	Walk(from Component[T]) (Component[T], error)
}

// childrenOf returns a snapshot of the children of a composite (nothing for a leaf).
func childrenOf[T any](c Component[T]) []Component[T] {
	if composite, ok := c.(*Composite[T]); ok {
		return composite.Children()
	}
	return nil
}
