package manifest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anchore/composite/pkg/tree/node"
)

func TestRegistry_Register(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register("a", nil, "tag-1"))
	require.NoError(t, r.Register("b", nil, "tag-1", "tag-2"))

	assert.Error(t, r.Register("a", nil), "names are unique")
	assert.Error(t, r.Register("", nil), "names are required")

	assert.Equal(t, []string{"a", "b"}, r.Names())
	assert.Equal(t, []string{"a", "b"}, r.Names("tag-1"))
	assert.Equal(t, []string{"b"}, r.Names("tag-2"))
	assert.Empty(t, r.Names("missing"))
}

func TestRegistry_Lookup(t *testing.T) {
	r := NewRegistry()
	var called bool
	require.NoError(t, r.Register("work", func(node.ID, string) error {
		called = true
		return nil
	}))
	// a tag that collides with another entry's name does not shadow that entry
	require.NoError(t, r.Register("other", nil, "work"))

	fn, err := r.Lookup("work")
	require.NoError(t, err)
	require.NotNil(t, fn)
	require.NoError(t, fn("leaf", ""))
	assert.True(t, called)

	_, err = r.Lookup("missing")
	assert.Error(t, err)
}

func TestDefaultRegistry(t *testing.T) {
	r := DefaultRegistry()
	assert.Equal(t, []string{FailWork, LogWork, NoopWork}, r.Names(BuiltinTag))

	noop, err := r.Lookup(NoopWork)
	require.NoError(t, err)
	assert.Nil(t, noop)

	fail, err := r.Lookup(FailWork)
	require.NoError(t, err)
	assert.ErrorIs(t, fail("leaf", ""), ErrWorkFailed)
}
