package tree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anchore/composite/pkg/tree/node"
)

func TestBFS_Walk(t *testing.T) {
	tr := pathTestTree(t)

	expected := []node.ID{
		"/",
		"/home",
		"/home/wagoodman",
		"/home/wagoodman/some",
		"/home/wagoodman/more",
		"/home/wagoodman/some/stuff-1.txt",
		"/home/wagoodman/some/stuff-2.txt",
		"/home/wagoodman/more/file.txt",
	}

	var actual []node.ID
	walker := NewBreadthFirstWalker(collectingVisitor(&actual))
	terminatedAt, err := walker.Walk(tr)
	require.NoError(t, err)
	assert.Nil(t, terminatedAt)

	assertExpectedTraversal(t, expected, actual)
}

func TestBFS_Walk_Conditions(t *testing.T) {
	tests := []struct {
		name       string
		conditions WalkConditions[string]
		expected   []node.ID
		terminated node.ID
	}{
		{
			name: "terminate",
			conditions: WalkConditions[string]{
				ShouldTerminate: func(n Component[string]) bool {
					return n.ID() == "/home/wagoodman/more"
				},
			},
			expected: []node.ID{
				"/",
				"/home",
				"/home/wagoodman",
				"/home/wagoodman/some",
			},
			terminated: "/home/wagoodman/more",
		},
		{
			name: "skip visit",
			conditions: WalkConditions[string]{
				ShouldVisit: func(n Component[string]) bool {
					_, isLeaf := n.(*Leaf[string])
					return isLeaf
				},
			},
			expected: []node.ID{
				"/home/wagoodman/some/stuff-1.txt",
				"/home/wagoodman/some/stuff-2.txt",
				"/home/wagoodman/more/file.txt",
			},
		},
		{
			name: "prune branch",
			conditions: WalkConditions[string]{
				ShouldContinueBranch: func(n Component[string]) bool {
					return n.ID() != "/home/wagoodman/some"
				},
			},
			expected: []node.ID{
				"/",
				"/home",
				"/home/wagoodman",
				"/home/wagoodman/some",
				"/home/wagoodman/more",
				"/home/wagoodman/more/file.txt",
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var actual []node.ID
			walker := NewBreadthFirstWalkerWithConditions(collectingVisitor(&actual), tt.conditions)

			terminatedAt, err := walker.Walk(pathTestTree(t))
			require.NoError(t, err)
			if tt.terminated != "" {
				require.NotNil(t, terminatedAt)
				assert.Equal(t, tt.terminated, terminatedAt.ID())
			} else {
				assert.Nil(t, terminatedAt)
			}

			assertExpectedTraversal(t, tt.expected, actual)
		})
	}
}
