package composite

import (
	"fmt"

	"github.com/spf13/afero"

	"github.com/anchore/composite/pkg/manifest"
	"github.com/anchore/composite/pkg/tree"
)

type Option func(*config) error

type config struct {
	Fs       afero.Fs
	Registry *manifest.Registry
	MaxDepth int
}

func defaultConfig() config {
	return config{
		Fs:       afero.NewOsFs(),
		Registry: manifest.DefaultRegistry(),
		MaxDepth: tree.DefaultMaxDepth,
	}
}

// WithFs reads manifests from the given filesystem instead of the OS filesystem.
func WithFs(fs afero.Fs) Option {
	return func(cfg *config) error {
		if fs == nil {
			return fmt.Errorf("no filesystem given")
		}
		cfg.Fs = fs
		return nil
	}
}

// WithRegistry resolves leaf work from the given registry instead of manifest.DefaultRegistry.
func WithRegistry(registry *manifest.Registry) Option {
	return func(cfg *config) error {
		if registry == nil {
			return fmt.Errorf("no work registry given")
		}
		cfg.Registry = registry
		return nil
	}
}

// WithMaxDepth bounds how deeply nested the tree may be (zero disables the bound).
func WithMaxDepth(depth int) Option {
	return func(cfg *config) error {
		if depth < 0 {
			return fmt.Errorf("max depth must not be negative: %d", depth)
		}
		cfg.MaxDepth = depth
		return nil
	}
}

func applyOptions(cfg *config, options ...Option) error {
	for _, option := range options {
		if option == nil {
			continue
		}
		if err := option(cfg); err != nil {
			return fmt.Errorf("unable to parse option: %w", err)
		}
	}
	return nil
}
