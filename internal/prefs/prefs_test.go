package prefs

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPutGet(t *testing.T) {
	store, err := NewBolt(filepath.Join(t.TempDir(), "prefs.db"))
	require.NoError(t, err)
	defer store.Close()

	value, err := store.Get("catalog_source")
	require.NoError(t, err)
	assert.Empty(t, value)

	require.NoError(t, store.Put("catalog_source", "top_rated"))

	value, err = store.Get("catalog_source")
	require.NoError(t, err)
	assert.Equal(t, "top_rated", value)

	// Overwrites replace the previous value.
	require.NoError(t, store.Put("catalog_source", "favorites"))
	value, err = store.Get("catalog_source")
	require.NoError(t, err)
	assert.Equal(t, "favorites", value)
}

func TestValuesSurviveReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.db")

	store, err := NewBolt(path)
	require.NoError(t, err)
	require.NoError(t, store.Put("catalog_source", "favorites"))
	require.NoError(t, store.Close())

	reopened, err := NewBolt(path)
	require.NoError(t, err)
	defer reopened.Close()

	value, err := reopened.Get("catalog_source")
	require.NoError(t, err)
	assert.Equal(t, "favorites", value)
}
