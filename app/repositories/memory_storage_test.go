package repositories

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStorage_ScopesAreIsolated(t *testing.T) {
	storage := NewMemoryStorage()
	alice := storage.Scope("alice")
	bob := storage.Scope("bob")

	require.NoError(t, alice.SetItem("k", "a"))

	value, ok, err := alice.GetItem("k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "a", value)

	_, ok, err = bob.GetItem("k")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, alice.RemoveItem("k"))
	_, ok, _ = alice.GetItem("k")
	assert.False(t, ok)

	require.NoError(t, bob.RemoveItem("missing"))
}
