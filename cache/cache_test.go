package cache_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lvcollect/cache"
)

func TestCache_StartsEmpty(t *testing.T) {
	var c cache.Cache
	assert.Zero(t, c.Len())
	_, ok := cache.Get(&c, cache.NewKey[string]("k"))
	assert.False(t, ok)
	assert.Equal(t, "{}", c.String())
}

func TestPutGet(t *testing.T) {
	c := cache.New()
	name := cache.NewKey[string]("name")
	count := cache.NewKey[int]("count")
	flag := cache.NewKey[bool]("flag")

	cache.Put(c, name, "test")
	cache.Put(c, count, 3)
	cache.Put(c, flag, true)
	require.Equal(t, 3, c.Len())

	s, ok := cache.Get(c, name)
	require.True(t, ok)
	assert.Equal(t, "test", s)
	n, _ := cache.Get(c, count)
	assert.Equal(t, 3, n)

	cache.Put(c, name, "aze")
	cache.Put(c, count, 58)
	assert.Equal(t, 3, c.Len(), "same keys do not grow the cache")
	assert.Equal(t, "{count:58 flag:true name:aze}", c.String())
}

func TestKeys_IdentityNotName(t *testing.T) {
	c := cache.New()
	k1 := cache.NewKey[int]("same")
	k2 := cache.NewKey[int]("same")

	cache.Put(c, k1, 1)
	cache.Put(c, k2, 2)
	assert.Equal(t, 2, c.Len())
	v, _ := cache.Get(c, k1)
	assert.Equal(t, 1, v)

	assert.Contains(t, cache.NewKey[int]("").String(), "key(0x")
}

func TestRemoveClear(t *testing.T) {
	c := cache.New()
	a := cache.NewKey[string]("a")
	b := cache.NewKey[int]("b")
	cache.Put(c, a, "x")
	cache.Put(c, b, 1)

	c.Remove(b)
	assert.Equal(t, 1, c.Len())
	c.Remove(b)
	assert.Equal(t, 1, c.Len())

	c.Clear()
	assert.Zero(t, c.Len())
}

func TestResetToDefault(t *testing.T) {
	c := cache.New()
	a := cache.NewKey[string]("a")
	b := cache.NewKey[int]("b")
	extra := cache.NewKey[bool]("extra")

	cache.Put(c, a, "test")
	cache.Put(c, b, 3)
	c.SetAsDefault()

	cache.Put(c, a, "aze")
	cache.Put(c, b, 95)
	cache.Put(c, extra, true)

	c.ResetToDefault()
	s, _ := cache.Get(c, a)
	assert.Equal(t, "test", s)
	n, _ := cache.Get(c, b)
	assert.Equal(t, 3, n)
	_, ok := cache.Get(c, extra)
	assert.False(t, ok)

	// Later writes do not leak into the saved default.
	cache.Put(c, a, "again")
	c.ResetToDefault()
	s, _ = cache.Get(c, a)
	assert.Equal(t, "test", s)
}

func TestResetWithoutDefault_Clears(t *testing.T) {
	c := cache.New()
	cache.Put(c, cache.NewKey[int]("a"), 1)
	c.ResetToDefault()
	assert.Zero(t, c.Len())
}

func TestSnapshot_IsCopy(t *testing.T) {
	c := cache.New()
	k := cache.NewKey[int]("k")
	cache.Put(c, k, 1)

	snap := c.Snapshot()
	require.Len(t, snap, 1)
	assert.Equal(t, 1, snap[k])

	delete(snap, k)
	assert.Equal(t, 1, c.Len())
}

// TestCache_Concurrent runs writers and readers on shared keys.
func TestCache_Concurrent(t *testing.T) {
	c := cache.New()
	keys := make([]*cache.Key[int], 10)
	for i := range keys {
		keys[i] = cache.NewKey[int](fmt.Sprintf("k%d", i))
	}

	const workers = 50
	var g errgroup.Group
	for i := 0; i < workers; i++ {
		g.Go(func() error {
			cache.Put(c, keys[i%len(keys)], i)
			return nil
		})
		g.Go(func() error {
			if v, ok := cache.Get(c, keys[i%len(keys)]); ok && v%len(keys) != i%len(keys) {
				return fmt.Errorf("key %d holds %d", i%len(keys), v)
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())

	assert.Equal(t, len(keys), c.Len())
}
