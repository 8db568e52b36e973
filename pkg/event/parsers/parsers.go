package parsers

import (
	"fmt"

	"github.com/wagoodman/go-partybus"

	"github.com/anchore/composite/pkg/event"
	"github.com/anchore/composite/pkg/tree/node"
)

type ErrBadPayload struct {
	Type  partybus.EventType
	Field string
	Value interface{}
}

func (e *ErrBadPayload) Error() string {
	return fmt.Sprintf("event='%s' has bad event payload field='%v': '%+v'", string(e.Type), e.Field, e.Value)
}

func newPayloadErr(t partybus.EventType, field string, value interface{}) error {
	return &ErrBadPayload{
		Type:  t,
		Field: field,
		Value: value,
	}
}

func checkEventType(actual, expected partybus.EventType) error {
	if actual != expected {
		return newPayloadErr(expected, "Type", actual)
	}
	return nil
}

func ParseOperateTree(e partybus.Event) (node.ID, *event.OperateTreeMonitor, error) {
	if err := checkEventType(e.Type, event.OperateTree); err != nil {
		return "", nil, err
	}

	id, ok := e.Source.(node.ID)
	if !ok {
		return "", nil, newPayloadErr(e.Type, "Source", e.Source)
	}

	monitor, ok := e.Value.(*event.OperateTreeMonitor)
	if !ok {
		return "", nil, newPayloadErr(e.Type, "Value", e.Value)
	}

	return id, monitor, nil
}
