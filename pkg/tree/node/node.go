package node

// Node is anything that can be identified within a tree.
type Node interface {
	ID() ID
}
