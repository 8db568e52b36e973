package composite

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anchore/composite/pkg/manifest"
	"github.com/anchore/composite/pkg/tree"
	"github.com/anchore/composite/pkg/tree/node"
)

const runManifest = `
[root]
id = "root"

  [[root.children]]
  id = "c1"

    [[root.children.children]]
    id = "leaf1"
    work = "count"

    [[root.children.children]]
    id = "leaf2"
    work = "count"

  [[root.children]]
  id = "leaf3"
  work = "count"
`

func TestRun(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "tree.toml", []byte(runManifest), 0o644))

	var visited []node.ID
	registry := manifest.NewRegistry()
	require.NoError(t, registry.Register("count", func(id node.ID, _ string) error {
		visited = append(visited, id)
		return nil
	}))

	tests := []struct {
		name        string
		path        string
		options     []Option
		wantErr     require.ErrorAssertionFunc
		wantVisited []node.ID
	}{
		{
			name:        "operates on every leaf",
			path:        "tree.toml",
			options:     []Option{WithFs(fs), WithRegistry(registry)},
			wantErr:     require.NoError,
			wantVisited: []node.ID{"leaf1", "leaf2", "leaf3"},
		},
		{
			name:    "tree deeper than allowed",
			path:    "tree.toml",
			options: []Option{WithFs(fs), WithRegistry(registry), WithMaxDepth(1)},
			wantErr: func(t require.TestingT, err error, _ ...interface{}) {
				require.ErrorIs(t, err, tree.ErrMaxDepthExceeded)
			},
		},
		{
			name:    "unknown work with default registry",
			path:    "tree.toml",
			options: []Option{WithFs(fs)},
			wantErr: require.Error,
		},
		{
			name:    "missing manifest",
			path:    "missing.toml",
			options: []Option{WithFs(fs), WithRegistry(registry)},
			wantErr: require.Error,
		},
		{
			name:    "bad option",
			path:    "tree.toml",
			options: []Option{WithMaxDepth(-1)},
			wantErr: require.Error,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			visited = nil
			tt.wantErr(t, Run(tt.path, tt.options...))
			assert.Equal(t, tt.wantVisited, visited)
		})
	}
}

func Test_applyOptions(t *testing.T) {
	cfg := defaultConfig()
	fs := afero.NewMemMapFs()
	registry := manifest.NewRegistry()

	require.NoError(t, applyOptions(&cfg, nil, WithFs(fs), WithRegistry(registry), WithMaxDepth(0)))
	assert.Same(t, registry, cfg.Registry)
	assert.Equal(t, fs, cfg.Fs)
	assert.Equal(t, 0, cfg.MaxDepth)

	err := applyOptions(&cfg, WithFs(nil))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unable to parse option")

	assert.Error(t, applyOptions(&cfg, WithRegistry(nil)))
}
