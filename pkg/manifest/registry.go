package manifest

import (
	"errors"
	"fmt"
	"sort"

	"github.com/anchore/go-collections"

	"github.com/anchore/composite/internal/log"
	"github.com/anchore/composite/pkg/tree"
	"github.com/anchore/composite/pkg/tree/node"
)

const (
	NoopWork = "noop"
	LogWork  = "log"
	FailWork = "fail"

	// BuiltinTag is attached to every work entry provided by DefaultRegistry.
	BuiltinTag = "builtin"
)

// ErrWorkFailed is returned by the "fail" work entry.
var ErrWorkFailed = errors.New("work failed")

// Work is a named unit of work that manifest leaves can refer to.
type Work struct {
	Name string
	Func tree.WorkFunc[string]
}

// Registry resolves the work names used in a manifest. Entries are tagged with their own name plus any
// additional tags given at registration.
type Registry struct {
	entries collections.TaggedValueSet[*Work]
}

func NewRegistry() *Registry {
	return &Registry{}
}

// DefaultRegistry provides the "noop", "log" and "fail" work entries.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	_ = r.Register(NoopWork, nil, BuiltinTag)
	_ = r.Register(LogWork, logPayload, BuiltinTag)
	_ = r.Register(FailWork, fail, BuiltinTag)
	return r
}

// Register adds a named work entry. Names must be unique within the registry.
func (r *Registry) Register(name string, fn tree.WorkFunc[string], tags ...string) error {
	if name == "" {
		return fmt.Errorf("work name must not be empty")
	}
	if _, ok := r.find(name); ok {
		return fmt.Errorf("work %q is already registered", name)
	}

	r.entries = r.entries.Join(collections.NewTaggedValue(&Work{Name: name, Func: fn}, append([]string{name}, tags...)...))
	return nil
}

// Lookup returns the work function registered under the given name (which may be nil for work that does
// nothing).
func (r *Registry) Lookup(name string) (tree.WorkFunc[string], error) {
	w, ok := r.find(name)
	if !ok {
		return nil, fmt.Errorf("no work registered as %q", name)
	}
	return w.Func, nil
}

// Names returns the sorted names of all work entries having any of the given tags (all entries when no tags
// are given).
func (r *Registry) Names(tags ...string) []string {
	entries := r.entries
	if len(tags) > 0 {
		entries = entries.Select(tags...)
	}

	var names []string
	for _, w := range entries.Values() {
		names = append(names, w.Name)
	}
	sort.Strings(names)
	return names
}

func (r *Registry) find(name string) (*Work, bool) {
	for _, w := range r.entries.Select(name).Values() {
		if w.Name == name {
			return w, true
		}
	}
	return nil, false
}

func logPayload(id node.ID, payload string) error {
	log.WithFields("id", id, "payload", payload).Info("operating on leaf")
	return nil
}

func fail(_ node.ID, payload string) error {
	if payload == "" {
		return ErrWorkFailed
	}
	return fmt.Errorf("%w: %s", ErrWorkFailed, payload)
}
