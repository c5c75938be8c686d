package datastore

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDataStore(t *testing.T) {
	t.Run("add get delete", func(t *testing.T) {
		ds, err := New(filepath.Join(t.TempDir(), "store.json"))
		require.NoError(t, err)
		defer ds.Close()

		ds.Add("k1", "v1")
		value, exists := ds.Get("k1")
		assert.True(t, exists)
		assert.Equal(t, "v1", value)

		ds.Delete("k1")
		_, exists = ds.Get("k1")
		assert.False(t, exists)
	})

	t.Run("data survives reopen", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "store.json")

		ds, err := New(path)
		require.NoError(t, err)
		ds.Add("guild", map[string]any{"id": "g1"})
		require.NoError(t, ds.Close())

		ds2, err := New(path)
		require.NoError(t, err)
		defer ds2.Close()

		value, exists := ds2.Get("guild")
		require.True(t, exists)
		assert.Equal(t, map[string]any{"id": "g1"}, value)
		assert.ElementsMatch(t, []string{"guild"}, ds2.Keys())
	})

	t.Run("closed store rejects operations", func(t *testing.T) {
		ds, err := New(filepath.Join(t.TempDir(), "store.json"))
		require.NoError(t, err)
		require.NoError(t, ds.Close())

		ds.Add("k1", "v1")
		_, exists := ds.Get("k1")
		assert.False(t, exists)
		assert.Error(t, ds.SaveToFile())
	})

	t.Run("corrupt file fails to open", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "store.json")
		require.NoError(t, os.WriteFile(path, []byte("not json"), 0644))

		_, err := New(path)
		assert.Error(t, err)
	})

	t.Run("auto save flushes without close", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "store.json")
		ds, err := NewWithConfig(&Config{
			FilePath:         path,
			AutoSaveInterval: 20 * time.Millisecond,
			Logger:           DefaultConfig(path).Logger,
		})
		require.NoError(t, err)
		defer ds.Close()

		ds.Add("k1", "v1")
		assert.Eventually(t, func() bool {
			data, err := os.ReadFile(path)
			return err == nil && len(data) > 2
		}, time.Second, 10*time.Millisecond)
	})
}
