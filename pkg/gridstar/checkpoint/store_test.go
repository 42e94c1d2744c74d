package checkpoint_test

import (
	"path/filepath"
	"testing"

	"github.com/randalmurphal/gridstar/pkg/gridstar/checkpoint"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// storeFactory creates a store instance for testing.
type storeFactory func(t *testing.T) checkpoint.Store

// storeContractTest runs contract tests against any Store implementation.
func storeContractTest(t *testing.T, name string, factory storeFactory) {
	t.Run(name+"/Save_and_Load", func(t *testing.T) {
		store := factory(t)
		defer store.Close()

		data := []byte(`{"cols": 5}`)
		require.NoError(t, store.Save("run-1", 10, data))

		loaded, err := store.Load("run-1", 10)
		require.NoError(t, err)
		assert.Equal(t, data, loaded)
	})

	t.Run(name+"/Load_NotFound", func(t *testing.T) {
		store := factory(t)
		defer store.Close()

		_, err := store.Load("run-nonexistent", 1)
		assert.ErrorIs(t, err, checkpoint.ErrNotFound)
	})

	t.Run(name+"/Save_Overwrite", func(t *testing.T) {
		store := factory(t)
		defer store.Close()

		require.NoError(t, store.Save("run-1", 4, []byte("first")))
		require.NoError(t, store.Save("run-1", 4, []byte("second")))

		loaded, err := store.Load("run-1", 4)
		require.NoError(t, err)
		assert.Equal(t, []byte("second"), loaded)
	})

	t.Run(name+"/Latest", func(t *testing.T) {
		store := factory(t)
		defer store.Close()

		// Saved out of order on purpose
		require.NoError(t, store.Save("run-1", 20, []byte("twenty")))
		require.NoError(t, store.Save("run-1", 30, []byte("thirty")))
		require.NoError(t, store.Save("run-1", 10, []byte("ten")))

		info, data, err := store.Latest("run-1")
		require.NoError(t, err)
		assert.Equal(t, 30, info.Step)
		assert.Equal(t, "run-1", info.RunID)
		assert.Equal(t, int64(len("thirty")), info.Size)
		assert.Equal(t, []byte("thirty"), data)
	})

	t.Run(name+"/Latest_NotFound", func(t *testing.T) {
		store := factory(t)
		defer store.Close()

		_, _, err := store.Latest("run-nonexistent")
		assert.ErrorIs(t, err, checkpoint.ErrNotFound)
	})

	t.Run(name+"/List_Empty", func(t *testing.T) {
		store := factory(t)
		defer store.Close()

		infos, err := store.List("run-nonexistent")
		require.NoError(t, err)
		assert.Empty(t, infos)
	})

	t.Run(name+"/List_Ordered", func(t *testing.T) {
		store := factory(t)
		defer store.Close()

		require.NoError(t, store.Save("run-1", 3, []byte("ccc")))
		require.NoError(t, store.Save("run-1", 1, []byte("a")))
		require.NoError(t, store.Save("run-1", 2, []byte("bb")))

		infos, err := store.List("run-1")
		require.NoError(t, err)
		require.Len(t, infos, 3)

		for i, info := range infos {
			assert.Equal(t, i+1, info.Step)
			assert.Equal(t, int64(i+1), info.Size)
			assert.False(t, info.Timestamp.IsZero())
		}
	})

	t.Run(name+"/DeleteRun", func(t *testing.T) {
		store := factory(t)
		defer store.Close()

		require.NoError(t, store.Save("run-1", 1, []byte("a")))
		require.NoError(t, store.Save("run-1", 2, []byte("b")))
		require.NoError(t, store.Save("run-2", 1, []byte("other")))

		require.NoError(t, store.DeleteRun("run-1"))

		infos, err := store.List("run-1")
		require.NoError(t, err)
		assert.Empty(t, infos)

		infos, err = store.List("run-2")
		require.NoError(t, err)
		assert.Len(t, infos, 1)
	})

	t.Run(name+"/DeleteRun_Nonexistent", func(t *testing.T) {
		store := factory(t)
		defer store.Close()

		assert.NoError(t, store.DeleteRun("run-nonexistent"))
	})

	t.Run(name+"/DataCopy", func(t *testing.T) {
		store := factory(t)
		defer store.Close()

		original := []byte("original data")
		require.NoError(t, store.Save("run-1", 1, original))

		original[0] = 'X'

		loaded, err := store.Load("run-1", 1)
		require.NoError(t, err)
		assert.Equal(t, []byte("original data"), loaded)
	})

	t.Run(name+"/Close_ThenError", func(t *testing.T) {
		store := factory(t)
		require.NoError(t, store.Close())

		assert.ErrorIs(t, store.Save("run-1", 1, []byte("data")), checkpoint.ErrStoreClosed)

		_, err := store.Load("run-1", 1)
		assert.ErrorIs(t, err, checkpoint.ErrStoreClosed)

		_, _, err = store.Latest("run-1")
		assert.ErrorIs(t, err, checkpoint.ErrStoreClosed)

		_, err = store.List("run-1")
		assert.ErrorIs(t, err, checkpoint.ErrStoreClosed)
	})
}

// TestMemoryStore runs contract tests against MemoryStore.
func TestMemoryStore(t *testing.T) {
	factory := func(t *testing.T) checkpoint.Store {
		return checkpoint.NewMemoryStore()
	}
	storeContractTest(t, "MemoryStore", factory)
}

// TestSQLiteStore runs contract tests against SQLiteStore.
func TestSQLiteStore(t *testing.T) {
	factory := func(t *testing.T) checkpoint.Store {
		store, err := checkpoint.NewSQLiteStore(filepath.Join(t.TempDir(), "search.db"))
		require.NoError(t, err)
		return store
	}
	storeContractTest(t, "SQLiteStore", factory)
}

func TestSQLiteStore_InMemory(t *testing.T) {
	factory := func(t *testing.T) checkpoint.Store {
		store, err := checkpoint.NewSQLiteStore(":memory:")
		require.NoError(t, err)
		return store
	}
	storeContractTest(t, "SQLiteStore_memory", factory)
}

func TestMemoryStore_Len(t *testing.T) {
	store := checkpoint.NewMemoryStore()
	defer store.Close()

	require.NoError(t, store.Save("run-1", 1, []byte("a")))
	require.NoError(t, store.Save("run-1", 2, []byte("b")))
	require.NoError(t, store.Save("run-2", 1, []byte("c")))
	assert.Equal(t, 3, store.Len())
}
