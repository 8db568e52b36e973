package tree

import (
	"fmt"

	"github.com/wagoodman/go-progress"

	"github.com/anchore/composite/pkg/tree/node"
)

// WorkFunc is the unit of work a leaf performs when operated on.
type WorkFunc[T any] func(id node.ID, payload T) error

// Component is a node in a composite tree. There are exactly two implementations: *Leaf and *Composite.
// Child management is only available on *Composite (or through AddChild, RemoveChild, ChildAt and
// NewTraversal, which reject leaves with ErrUnsupportedOperation).
type Component[T any] interface {
	node.Node

	// Payload returns the value the component was created with.
	Payload() T

	// Operate performs the component's work: a leaf runs its WorkFunc, a composite operates on each child
	// in insertion order. The first failure stops the operation and is returned.
	Operate() error

	operate(r *run) error
}

// run carries the state of a single Operate call down the tree.
type run struct {
	depth    int
	maxDepth int
	stage    *progress.Stage
	prog     *progress.Manual
}

func (r *run) startLeaf(id node.ID) {
	if r.stage != nil {
		r.stage.Current = string(id)
	}
}

func (r *run) finishLeaf() {
	if r.prog != nil {
		r.prog.Increment()
	}
}

// Leaf is a component without children.
type Leaf[T any] struct {
	id      node.ID
	payload T
	work    WorkFunc[T]
}

// NewLeaf returns a leaf that runs the given work when operated on. A nil work func makes Operate a no-op.
func NewLeaf[T any](id node.ID, payload T, work WorkFunc[T]) *Leaf[T] {
	return &Leaf[T]{
		id:      id,
		payload: payload,
		work:    work,
	}
}

func (l *Leaf[T]) ID() node.ID {
	return l.id
}

func (l *Leaf[T]) Payload() T {
	return l.payload
}

func (l *Leaf[T]) Operate() error {
	return l.operate(&run{})
}

func (l *Leaf[T]) operate(r *run) error {
	r.startLeaf(l.id)
	if l.work != nil {
		if err := l.work(l.id, l.payload); err != nil {
			return fmt.Errorf("component %q: %w", l.id, err)
		}
	}
	r.finishLeaf()
	return nil
}

func (l *Leaf[T]) String() string {
	return fmt.Sprintf("leaf(%s)", l.id)
}
