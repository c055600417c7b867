// pkg/cache/cache_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: Temp filesystem
// PURPOSE: Test cache freshness checks and load/save round trips

package cache_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/arthur-debert/igno/pkg/cache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCachedTypes_IsFresh(t *testing.T) {
	now := cache.CachedTypes{FetchedAt: time.Now().Unix()}
	assert.True(t, now.IsFresh(10*time.Second), "entry stamped now should be fresh under 10s TTL")

	stale := cache.CachedTypes{FetchedAt: 0}
	assert.False(t, stale.IsFresh(1*time.Second), "entry stamped at epoch should be stale under 1s TTL")
}

func TestStore_LoadMissingFile(t *testing.T) {
	store := cache.NewStore(filepath.Join(t.TempDir(), "types.json"))

	types, ok := store.Load(time.Hour)

	assert.False(t, ok, "missing cache file should be a miss")
	assert.Nil(t, types)
}

func TestStore_LoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "types.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	store := cache.NewStore(path)
	_, ok := store.Load(time.Hour)

	assert.False(t, ok, "malformed cache should be a miss, not an error")
}

func TestStore_SaveThenLoad(t *testing.T) {
	// Parent directory does not exist yet; Save must create it.
	path := filepath.Join(t.TempDir(), "igno", "types.json")
	store := cache.NewStore(path)

	want := []string{"Go", "Node", "Rust"}
	require.NoError(t, store.Save(want))

	got, ok := store.Load(time.Hour)
	require.True(t, ok, "freshly saved cache should be a hit")
	assert.Equal(t, want, got)
}

func TestStore_LoadStaleEntry(t *testing.T) {
	path := filepath.Join(t.TempDir(), "types.json")
	require.NoError(t, os.WriteFile(path,
		[]byte(`{"fetched_at":0,"types":["Go"]}`), 0644))

	store := cache.NewStore(path)
	_, ok := store.Load(time.Minute)

	assert.False(t, ok, "epoch-stamped entry should be stale")
}

func TestStore_SaveOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "types.json")
	store := cache.NewStore(path)

	require.NoError(t, store.Save([]string{"Old"}))
	require.NoError(t, store.Save([]string{"New"}))

	got, ok := store.Load(time.Hour)
	require.True(t, ok)
	assert.Equal(t, []string{"New"}, got, "save should replace the prior entry wholesale")
}
