package cache

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHashContentStableAndDistinct(t *testing.T) {
	a := HashContent("dump text A")
	b := HashContent("dump text A")
	c := HashContent("dump text B")

	require.Equal(t, a, b)
	require.NotEqual(t, a, c)
}

func TestMemoryGetPut(t *testing.T) {
	m, err := NewMemory(2)
	require.NoError(t, err)

	_, ok := m.Get("missing")
	require.False(t, ok)

	m.Put("key", "value")
	v, ok := m.Get("key")
	require.True(t, ok)
	require.Equal(t, "value", v)
}

func TestPersistentRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache.db")
	p, err := OpenPersistent(path)
	require.NoError(t, err)
	defer p.Close()

	key := HashContent("fun main() {}")
	_, ok, err := p.Get(key)
	require.NoError(t, err)
	require.False(t, ok)

	require.NoError(t, p.Put(key, "fun main() {}", 1000))
	text, ok, err := p.Get(key)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "fun main() {}", text)

	require.NoError(t, p.Put(key, "fun main() { println() }", 2000))
	text, ok, err = p.Get(key)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "fun main() { println() }", text, "a second Put for the same key should overwrite")
}

func TestCacheLookupBackfillsMemory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache.db")
	persistent, err := OpenPersistent(path)
	require.NoError(t, err)
	defer persistent.Close()

	memory, err := NewMemory(8)
	require.NoError(t, err)
	c := New(memory, persistent)

	key := HashContent("val x = 1")
	require.NoError(t, c.Store(key, "val x = 1", 42))

	// Fresh memory layer over the same persistent store: lookup should
	// fall through to persistent and backfill memory.
	fresh, err := NewMemory(8)
	require.NoError(t, err)
	c2 := New(fresh, persistent)

	v, ok, err := c2.Lookup(key)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "val x = 1", v)

	v, ok = fresh.Get(key)
	require.True(t, ok, "lookup should have backfilled the memory layer")
	require.Equal(t, "val x = 1", v)
}

func TestCacheLookupWithoutPersistentMisses(t *testing.T) {
	memory, err := NewMemory(8)
	require.NoError(t, err)
	c := New(memory, nil)

	_, ok, err := c.Lookup(HashContent("anything"))
	require.NoError(t, err)
	require.False(t, ok)
}
