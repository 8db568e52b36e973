package tree

import (
	"fmt"

	"github.com/hashicorp/go-multierror"

	"github.com/anchore/composite/pkg/tree/node"
)

// validateFrame is a pending step of the validation walk; exit frames mark leaving a composite's subtree.
type validateFrame[T any] struct {
	component Component[T]
	depth     int
	exit      bool
}

// Validate checks the structure reachable from the given root and reports every problem found: nil children,
// cycles, components nested deeper than the configured maximum depth, and distinct components sharing an ID
// (which makes ID-based walkers and glob paths ambiguous). The same component appearing at several places is
// not a problem.
func Validate[T any](root Component[T], opts ...Option) error {
	if isNil(root) {
		return ErrNilComponent
	}

	var (
		o          = newOptions(opts...)
		errs       error
		stack      node.Stack[validateFrame[T]]
		byID       = make(map[node.ID]Component[T])
		duplicates = node.NewIDSet()
		ancestors  = make(map[*Composite[T]]struct{})
		// depth at which each composite's subtree was last fully validated
		validated = make(map[*Composite[T]]int)
	)
	stack.Push(validateFrame[T]{component: root})

	for stack.Size() > 0 {
		f := stack.Pop()
		composite, isComposite := f.component.(*Composite[T])

		if f.exit {
			delete(ancestors, composite)
			validated[composite] = f.depth
			continue
		}

		id := f.component.ID()
		if existing, ok := byID[id]; ok && existing != f.component {
			duplicates.Add(id)
		}
		byID[id] = f.component

		if !isComposite {
			continue
		}

		if _, ok := ancestors[composite]; ok {
			errs = multierror.Append(errs, fmt.Errorf("composite %q: %w", id, ErrCycle))
			continue
		}

		// a subtree already validated at the same or a greater depth cannot yield new problems
		if d, ok := validated[composite]; ok && (o.maxDepth == 0 || d >= f.depth) {
			continue
		}

		ancestors[composite] = struct{}{}
		stack.Push(validateFrame[T]{component: composite, depth: f.depth, exit: true})

		children := composite.Children()
		for i := len(children) - 1; i >= 0; i-- {
			child := children[i]
			switch {
			case isNil(child):
				errs = multierror.Append(errs, fmt.Errorf("composite %q: child %d: %w", id, i, ErrNilComponent))
			case o.maxDepth > 0 && f.depth+1 > o.maxDepth:
				errs = multierror.Append(errs, fmt.Errorf("composite %q: child %q at depth %d: %w", id, child.ID(), f.depth+1, ErrMaxDepthExceeded))
			default:
				stack.Push(validateFrame[T]{component: child, depth: f.depth + 1})
			}
		}
	}

	for _, id := range duplicates.Sorted() {
		errs = multierror.Append(errs, fmt.Errorf("duplicate component ID %q", id))
	}

	return errs
}
