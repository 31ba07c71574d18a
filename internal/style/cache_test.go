package style

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCacheEvictsLeastRecentlyUsed(t *testing.T) {
	t.Parallel()

	c := NewCache(2)
	c.Add("a", 1)
	c.Add("b", 2)

	_, ok := c.Get("a")
	require.True(t, ok)

	c.Add("c", 3)

	_, ok = c.Get("b")
	require.False(t, ok, "b was least recently used")
	_, ok = c.Get("a")
	require.True(t, ok)

	stats := c.Stats()
	require.Equal(t, 2, stats.Entries)
	require.Equal(t, uint64(1), stats.Evictions)
	require.Equal(t, uint64(2), stats.Hits)
	require.Equal(t, uint64(1), stats.Misses)
}

func TestCacheUnboundedWhenNonPositive(t *testing.T) {
	t.Parallel()

	for _, size := range []int{0, -5} {
		c := NewCache(size)
		for i := 0; i < 100; i++ {
			c.Add(i, i)
		}
		require.Equal(t, 100, c.Len())
		require.Zero(t, c.Stats().Evictions)
	}
}

func TestCachePurge(t *testing.T) {
	t.Parallel()

	c := NewCache(4)
	c.Add(ButtonProps{PadX: 1}, &ButtonSheet{})
	c.Purge()

	require.Zero(t, c.Len())
	require.Zero(t, c.Stats().Evictions, "purge is not an eviction")

	c.Add(ButtonProps{PadX: 2}, &ButtonSheet{})
	require.Equal(t, 1, c.Len())
}

func TestCacheKeysAreTyped(t *testing.T) {
	t.Parallel()

	c := NewCache(0)
	c.Add(1, "int")
	c.Add("1", "string")

	v, ok := c.Get(1)
	require.True(t, ok)
	require.Equal(t, "int", v)

	v, ok = c.Get("1")
	require.True(t, ok)
	require.Equal(t, "string", v)
}
