package tree

import "fmt"

// AsComposite returns the component as a composite, or ErrUnsupportedOperation if it is a leaf.
func AsComposite[T any](c Component[T]) (*Composite[T], error) {
	if isNil(c) {
		return nil, ErrNilComponent
	}
	composite, ok := c.(*Composite[T])
	if !ok {
		return nil, fmt.Errorf("component %q: %w", c.ID(), ErrUnsupportedOperation)
	}
	return composite, nil
}

// AddChild adds the child to the parent component; leaves reject this with ErrUnsupportedOperation.
func AddChild[T any](parent, child Component[T]) error {
	composite, err := AsComposite(parent)
	if err != nil {
		return fmt.Errorf("unable to add child: %w", err)
	}
	return composite.AddChild(child)
}

// RemoveChild removes the first occurrence of the child from the parent component; leaves reject this with
// ErrUnsupportedOperation.
func RemoveChild[T any](parent, child Component[T]) (bool, error) {
	composite, err := AsComposite(parent)
	if err != nil {
		return false, fmt.Errorf("unable to remove child: %w", err)
	}
	return composite.RemoveChild(child), nil
}

// ChildAt returns the child of the parent component at the given index (false when there is none); leaves
// reject this with ErrUnsupportedOperation.
func ChildAt[T any](parent Component[T], index int) (Component[T], bool, error) {
	composite, err := AsComposite(parent)
	if err != nil {
		return nil, false, fmt.Errorf("unable to get child: %w", err)
	}
	child, ok := composite.ChildAt(index)
	return child, ok, nil
}

// NewTraversal returns a cursor over the children of the given component; leaves reject this with
// ErrUnsupportedOperation.
func NewTraversal[T any](c Component[T]) (*Traversal[T], error) {
	composite, err := AsComposite(c)
	if err != nil {
		return nil, fmt.Errorf("unable to traverse: %w", err)
	}
	return composite.NewTraversal(), nil
}
