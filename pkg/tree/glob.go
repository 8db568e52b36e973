package tree

import (
	"fmt"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/anchore/composite/pkg/tree/node"
)

// Match is a component found at a path within a tree.
type Match[T any] struct {
	// Path is the slash-joined list of IDs from the search root to the component (e.g. "/root/c1/leaf1").
	Path      string
	Component Component[T]
}

type globEntry[T any] struct {
	path      string
	component Component[T]
}

// Find returns every component whose path matches the given doublestar glob (e.g. "/root/**/leaf*"), in
// depth-first order. A component reachable through more than one composite is reported once per path.
func Find[T any](root Component[T], pattern string) ([]Match[T], error) {
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("invalid glob pattern: %q", pattern)
	}

	var (
		stack   node.Stack[globEntry[T]]
		matches []Match[T]
	)
	stack.Push(globEntry[T]{path: "/" + string(root.ID()), component: root})

	for stack.Size() > 0 {
		current := stack.Pop()

		matched, err := doublestar.Match(pattern, current.path)
		if err != nil {
			return nil, fmt.Errorf("unable to match %q against %q: %w", pattern, current.path, err)
		}
		if matched {
			matches = append(matches, Match[T]{Path: current.path, Component: current.component})
		}

		children := childrenOf(current.component)
		for i := len(children) - 1; i >= 0; i-- {
			stack.Push(globEntry[T]{
				path:      current.path + "/" + string(children[i].ID()),
				component: children[i],
			})
		}
	}

	return matches, nil
}
