package node

import "github.com/anchore/composite/internal"

// ID identifies a node within a tree. IDs are chosen by the caller; the tree does not enforce uniqueness.
type ID string

// IDSet is a set of node IDs that can be listed in sorted order.
type IDSet = internal.OrderedSet[ID]

func NewIDSet(ids ...ID) IDSet {
	return internal.NewOrderedSet(ids...)
}
