package tree

import (
	"fmt"
	"iter"
	"slices"
	"sync"

	"github.com/wagoodman/go-partybus"
	"github.com/wagoodman/go-progress"

	"github.com/anchore/composite/internal/bus"
	"github.com/anchore/composite/internal/log"
	"github.com/anchore/composite/pkg/event"
	"github.com/anchore/composite/pkg/tree/node"
)

// Composite is a component that owns an ordered list of child components and propagates operations to them.
// The same child may be added more than once, and under more than one composite, but never beneath itself.
type Composite[T any] struct {
	id      node.ID
	payload T
	opts    options

	lock sync.RWMutex
	// children is nil until the first child is added and is never reset to nil afterwards.
	children []Component[T]
	// version is bumped on every structural change and lets traversals detect that they are stale.
	version uint64
}

func NewComposite[T any](id node.ID, payload T, opts ...Option) *Composite[T] {
	return &Composite[T]{
		id:      id,
		payload: payload,
		opts:    newOptions(opts...),
	}
}

func (c *Composite[T]) ID() node.ID {
	return c.id
}

func (c *Composite[T]) Payload() T {
	return c.payload
}

// AddChild appends the child to the end of the child list. Adding a child already present is allowed and
// results in the child being present twice.
func (c *Composite[T]) AddChild(child Component[T]) error {
	if isNil(child) {
		return fmt.Errorf("unable to add child to composite %q: %w", c.id, ErrNilComponent)
	}

	// note: descendants are read before taking our own lock so that no two composite locks are held at once
	if contains(child, c) {
		return fmt.Errorf("unable to add child %q to composite %q: %w", child.ID(), c.id, ErrCycle)
	}

	c.lock.Lock()
	defer c.lock.Unlock()

	if c.children == nil {
		c.children = make([]Component[T], 0, 1)
	}
	c.children = append(c.children, child)
	c.version++

	log.Tracef("added child %q to composite %q (children=%d)", child.ID(), c.id, len(c.children))
	return nil
}

// RemoveChild removes the first occurrence of the given child (by identity), keeping the remaining children
// in order. Returns false if the child was not found.
func (c *Composite[T]) RemoveChild(child Component[T]) bool {
	c.lock.Lock()
	defer c.lock.Unlock()

	idx := slices.IndexFunc(c.children, func(existing Component[T]) bool {
		return existing == child
	})
	if idx < 0 {
		return false
	}

	c.children = slices.Delete(c.children, idx, idx+1)
	c.version++

	log.Tracef("removed child %q from composite %q (children=%d)", child.ID(), c.id, len(c.children))
	return true
}

// ChildAt returns the child at the given index, or false if there is no child at that index.
func (c *Composite[T]) ChildAt(index int) (Component[T], bool) {
	c.lock.RLock()
	defer c.lock.RUnlock()

	if index < 0 || index >= len(c.children) {
		return nil, false
	}
	return c.children[index], true
}

// Len is the number of children currently held.
func (c *Composite[T]) Len() int {
	c.lock.RLock()
	defer c.lock.RUnlock()

	return len(c.children)
}

// Children returns a snapshot of the current children.
func (c *Composite[T]) Children() []Component[T] {
	c.lock.RLock()
	defer c.lock.RUnlock()

	return slices.Clone(c.children)
}

// All iterates over a snapshot of the children taken when iteration starts.
func (c *Composite[T]) All() iter.Seq2[int, Component[T]] {
	return func(yield func(int, Component[T]) bool) {
		for i, child := range c.Children() {
			if !yield(i, child) {
				return
			}
		}
	}
}

// NewTraversal returns a cursor over this composite's children, positioned before the first child.
func (c *Composite[T]) NewTraversal() *Traversal[T] {
	return newTraversal(c)
}

// Operate operates on every child in insertion order, stopping at the first failure. Progress of the
// operation is published on the event bus as an event.OperateTree event.
func (c *Composite[T]) Operate() error {
	stage := &progress.Stage{}
	prog := progress.NewManual(int64(countLeaves[T](c)))

	bus.Publish(partybus.Event{
		Type:   event.OperateTree,
		Source: c.id,
		Value: &event.OperateTreeMonitor{
			Stager: progress.Stager(stage),
			Manual: prog,
		},
	})

	err := c.operate(&run{
		maxDepth: c.opts.maxDepth,
		stage:    stage,
		prog:     prog,
	})
	if err != nil {
		prog.SetError(err)
		log.WithFields("composite", c.id, "error", err).Debug("tree operation failed")
		return err
	}
	prog.SetCompleted()
	return nil
}

func (c *Composite[T]) operate(r *run) error {
	for _, child := range c.Children() {
		if r.maxDepth > 0 && r.depth+1 > r.maxDepth {
			return fmt.Errorf("component %q: child %q at depth %d: %w", c.id, child.ID(), r.depth+1, ErrMaxDepthExceeded)
		}

		r.depth++
		err := child.operate(r)
		r.depth--

		if err != nil {
			return fmt.Errorf("component %q: %w", c.id, err)
		}
	}
	return nil
}

func (c *Composite[T]) String() string {
	return fmt.Sprintf("composite(%s)", c.id)
}

// contains indicates the target composite is the given component or one of its descendants.
func contains[T any](from Component[T], target *Composite[T]) bool {
	var stack node.Stack[Component[T]]
	stack.Push(from)
	seen := make(map[*Composite[T]]struct{})

	for stack.Size() > 0 {
		current, ok := stack.Pop().(*Composite[T])
		if !ok {
			continue
		}
		if current == target {
			return true
		}
		if _, ok := seen[current]; ok {
			continue
		}
		seen[current] = struct{}{}
		stack.Push(current.Children()...)
	}
	return false
}

// countLeaves is the number of leaf operations an Operate call on the given component will make.
func countLeaves[T any](from Component[T]) int {
	var (
		stack node.Stack[Component[T]]
		count int
	)
	stack.Push(from)

	for stack.Size() > 0 {
		switch current := stack.Pop().(type) {
		case *Leaf[T]:
			count++
		case *Composite[T]:
			stack.Push(current.Children()...)
		}
	}
	return count
}

func isNil[T any](c Component[T]) bool {
	switch v := c.(type) {
	case nil:
		return true
	case *Leaf[T]:
		return v == nil
	case *Composite[T]:
		return v == nil
	}
	return false
}
