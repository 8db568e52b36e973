package tree

import "fmt"

// beforeFirst is the position of a traversal that has not been restarted yet.
const beforeFirst = -1

// Traversal is a cursor over the children of a single composite. Each traversal keeps its own position, so
// any number of traversals may walk the same composite independently. A traversal becomes stale when its
// composite gains or loses a child; a stale traversal fails with ErrConcurrentModification until restarted.
type Traversal[T any] struct {
	aggregate *Composite[T]
	position  int
	version   uint64
}

func newTraversal[T any](c *Composite[T]) *Traversal[T] {
	c.lock.RLock()
	defer c.lock.RUnlock()

	return &Traversal[T]{
		aggregate: c,
		position:  beforeFirst,
		version:   c.version,
	}
}

// RestartAtFirst moves the cursor to the first child. This also accepts any changes made to the composite
// since the traversal was created, making a stale traversal usable again.
func (t *Traversal[T]) RestartAtFirst() {
	t.aggregate.lock.RLock()
	defer t.aggregate.lock.RUnlock()

	t.position = 0
	t.version = t.aggregate.version
}

// Advance moves the cursor to the next child. Advancing a finished traversal does nothing.
func (t *Traversal[T]) Advance() error {
	t.aggregate.lock.RLock()
	defer t.aggregate.lock.RUnlock()

	if err := t.checkVersion(); err != nil {
		return err
	}
	if t.position < len(t.aggregate.children) {
		t.position++
	}
	return nil
}

// IsDone indicates the cursor has moved past the last child.
func (t *Traversal[T]) IsDone() bool {
	t.aggregate.lock.RLock()
	defer t.aggregate.lock.RUnlock()

	return t.position == len(t.aggregate.children)
}

// CurrentItem returns the child under the cursor. It is an error to call this before RestartAtFirst or
// after the traversal is done.
func (t *Traversal[T]) CurrentItem() (Component[T], error) {
	t.aggregate.lock.RLock()
	defer t.aggregate.lock.RUnlock()

	if err := t.checkVersion(); err != nil {
		return nil, err
	}

	size := len(t.aggregate.children)
	if t.position < 0 || t.position >= size {
		return nil, fmt.Errorf("traversal of composite %q at position %d of %d: %w", t.aggregate.id, t.position, size, ErrOutOfBounds)
	}
	return t.aggregate.children[t.position], nil
}

// checkVersion must be called with the aggregate lock held.
func (t *Traversal[T]) checkVersion() error {
	if t.version != t.aggregate.version {
		return fmt.Errorf("traversal of composite %q: %w", t.aggregate.id, ErrConcurrentModification)
	}
	return nil
}
