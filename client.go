package composite

import (
	"fmt"

	"github.com/anchore/go-logger"
	"github.com/wagoodman/go-partybus"

	"github.com/anchore/composite/internal/bus"
	"github.com/anchore/composite/internal/log"
	"github.com/anchore/composite/pkg/manifest"
	"github.com/anchore/composite/pkg/tree"
)

// Run loads the manifest at the given path, builds and validates the tree it describes, then operates on it.
func Run(path string, options ...Option) error {
	cfg := defaultConfig()
	if err := applyOptions(&cfg, options...); err != nil {
		return err
	}

	m, err := manifest.Load(cfg.Fs, path)
	if err != nil {
		return err
	}

	root, err := manifest.Build(m, cfg.Registry, tree.WithMaxDepth(cfg.MaxDepth))
	if err != nil {
		return fmt.Errorf("unable to build tree from %q: %w", path, err)
	}

	if err := tree.Validate(root, tree.WithMaxDepth(cfg.MaxDepth)); err != nil {
		return fmt.Errorf("invalid tree in %q: %w", path, err)
	}

	log.WithFields("manifest", path, "root", root.ID()).Debug("operating on tree")
	return root.Operate()
}

func SetLogger(logger logger.Logger) {
	log.Log = logger
}

func SetBus(b *partybus.Bus) {
	if b == nil {
		bus.SetPublisher(nil)
		return
	}
	bus.SetPublisher(b)
}
