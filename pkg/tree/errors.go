package tree

import "errors"

var (
	// ErrUnsupportedOperation is returned when child management is requested of a leaf.
	ErrUnsupportedOperation = errors.New("operation not supported by leaf component")

	// ErrOutOfBounds is returned when a traversal addresses a position with no child.
	ErrOutOfBounds = errors.New("position out of bounds")

	// ErrConcurrentModification is returned by a traversal whose composite was mutated after the
	// traversal was created (or last restarted).
	ErrConcurrentModification = errors.New("composite modified during traversal")

	// ErrCycle is returned when adding a child would make a composite its own descendant.
	ErrCycle = errors.New("child would introduce a cycle")

	// ErrMaxDepthExceeded is returned when an operation recurses deeper than the configured limit.
	ErrMaxDepthExceeded = errors.New("maximum tree depth exceeded")

	// ErrNilComponent is returned when a nil component is added to a composite or found in a tree.
	ErrNilComponent = errors.New("nil component")
)
