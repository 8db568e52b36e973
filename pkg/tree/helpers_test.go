package tree

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/anchore/composite/pkg/tree/node"
)

// recorder is leaf work that records the order leaves were operated on.
type recorder struct {
	visited []node.ID
}

func (r *recorder) work(id node.ID, _ string) error {
	r.visited = append(r.visited, id)
	return nil
}

func newTestLeaf(id string) *Leaf[string] {
	return NewLeaf[string](node.ID(id), id, nil)
}

func newTestComposite(id string) *Composite[string] {
	return NewComposite[string](node.ID(id), id)
}

func addChildren(t *testing.T, parent *Composite[string], children ...Component[string]) {
	t.Helper()
	for _, child := range children {
		require.NoError(t, parent.AddChild(child))
	}
}

func ids(components ...Component[string]) []node.ID {
	out := make([]node.ID, len(components))
	for i, c := range components {
		out[i] = c.ID()
	}
	return out
}

// pathTestTree builds:
//
//	/
//	└── /home
//	    └── /home/wagoodman
//	        ├── /home/wagoodman/some
//	        │   ├── /home/wagoodman/some/stuff-1.txt
//	        │   └── /home/wagoodman/some/stuff-2.txt
//	        └── /home/wagoodman/more
//	            └── /home/wagoodman/more/file.txt
func pathTestTree(t *testing.T) *Composite[string] {
	t.Helper()
	root := newTestComposite("/")
	home := newTestComposite("/home")
	wagoodman := newTestComposite("/home/wagoodman")
	some := newTestComposite("/home/wagoodman/some")
	more := newTestComposite("/home/wagoodman/more")

	addChildren(t, root, home)
	addChildren(t, home, wagoodman)
	addChildren(t, wagoodman, some, more)
	addChildren(t, some, newTestLeaf("/home/wagoodman/some/stuff-1.txt"), newTestLeaf("/home/wagoodman/some/stuff-2.txt"))
	addChildren(t, more, newTestLeaf("/home/wagoodman/more/file.txt"))

	return root
}
