package event

import (
	"github.com/wagoodman/go-partybus"
	"github.com/wagoodman/go-progress"
)

const (
	// OperateTree is published when an operation starts on a composite. The source is the composite node.ID and
	// the value is an *OperateTreeMonitor.
	OperateTree partybus.EventType = "composite-operate-tree"
)

// OperateTreeMonitor tracks an operation over a tree: the stage is the ID of the leaf being operated on, the
// progress counts completed leaf operations.
type OperateTreeMonitor struct {
	progress.Stager
	*progress.Manual
}
