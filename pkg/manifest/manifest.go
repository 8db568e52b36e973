package manifest

import (
	"fmt"
	"io"

	"github.com/pelletier/go-toml"
	"github.com/scylladb/go-set/strset"
	"github.com/spf13/afero"

	"github.com/anchore/composite/internal/log"
	"github.com/anchore/composite/pkg/tree"
	"github.com/anchore/composite/pkg/tree/node"
)

const (
	LeafKind      = "leaf"
	CompositeKind = "composite"
)

// Manifest is a declarative description of a composite tree.
type Manifest struct {
	Root Entry `toml:"root"`
}

// Entry describes a single component. When Kind is empty, entries with children are composites and entries
// without children are leaves.
type Entry struct {
	ID       string  `toml:"id"`
	Kind     string  `toml:"kind"`
	Payload  string  `toml:"payload"`
	Work     string  `toml:"work"`
	Children []Entry `toml:"children"`
}

func (e Entry) kind() (string, error) {
	switch e.Kind {
	case "":
		if len(e.Children) > 0 {
			return CompositeKind, nil
		}
		return LeafKind, nil
	case LeafKind:
		if len(e.Children) > 0 {
			return "", fmt.Errorf("leaf %q cannot have children", e.ID)
		}
		return LeafKind, nil
	case CompositeKind:
		if e.Work != "" {
			return "", fmt.Errorf("composite %q cannot have work (only leaves do)", e.ID)
		}
		return CompositeKind, nil
	default:
		return "", fmt.Errorf("entry %q has unknown kind %q", e.ID, e.Kind)
	}
}

// Load reads a TOML manifest from the given filesystem.
func Load(fs afero.Fs, path string) (*Manifest, error) {
	f, err := fs.Open(path)
	if err != nil {
		return nil, fmt.Errorf("unable to open manifest: %w", err)
	}
	defer func() {
		if err := f.Close(); err != nil {
			log.Warnf("unable to close manifest %q: %+v", path, err)
		}
	}()

	m, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("unable to read manifest %q: %w", path, err)
	}
	return m, nil
}

// Decode reads a TOML manifest.
func Decode(r io.Reader) (*Manifest, error) {
	var m Manifest
	if err := toml.NewDecoder(r).Decode(&m); err != nil {
		return nil, fmt.Errorf("unable to decode manifest: %w", err)
	}
	if m.Root.ID == "" {
		return nil, fmt.Errorf("manifest has no root entry (or the root has no id)")
	}
	return &m, nil
}

// Build creates the tree described by the manifest, resolving leaf work from the given registry. The options
// are applied to every composite created.
func Build(m *Manifest, registry *Registry, opts ...tree.Option) (tree.Component[string], error) {
	if m == nil {
		return nil, fmt.Errorf("no manifest given")
	}
	if registry == nil {
		registry = DefaultRegistry()
	}

	b := builder{
		registry: registry,
		opts:     opts,
		seen:     strset.New(),
	}
	root, err := b.build(m.Root)
	if err != nil {
		return nil, err
	}

	log.WithFields("root", root.ID(), "components", b.seen.Size()).Debug("built tree from manifest")
	return root, nil
}

type builder struct {
	registry *Registry
	opts     []tree.Option
	seen     *strset.Set
}

func (b *builder) build(e Entry) (tree.Component[string], error) {
	if e.ID == "" {
		return nil, fmt.Errorf("entry with payload %q has no id", e.Payload)
	}
	if b.seen.Has(e.ID) {
		return nil, fmt.Errorf("duplicate entry id %q", e.ID)
	}
	b.seen.Add(e.ID)

	kind, err := e.kind()
	if err != nil {
		return nil, err
	}

	if kind == LeafKind {
		var work tree.WorkFunc[string]
		if e.Work != "" {
			work, err = b.registry.Lookup(e.Work)
			if err != nil {
				return nil, fmt.Errorf("leaf %q: %w", e.ID, err)
			}
		}
		return tree.NewLeaf(node.ID(e.ID), e.Payload, work), nil
	}

	composite := tree.NewComposite(node.ID(e.ID), e.Payload, b.opts...)
	for _, childEntry := range e.Children {
		child, err := b.build(childEntry)
		if err != nil {
			return nil, fmt.Errorf("composite %q: %w", e.ID, err)
		}
		if err := composite.AddChild(child); err != nil {
			return nil, err
		}
	}
	return composite, nil
}
