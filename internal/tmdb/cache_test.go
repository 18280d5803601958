package tmdb

import (
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCache_GetSet(t *testing.T) {
	c := newCache[string, []byte](time.Hour, 10)

	// Miss
	_, ok := c.get("/3/movie/12345")
	assert.False(t, ok, "empty cache should miss")

	// Set and hit
	c.set("/3/movie/12345", []byte(`{"title":"Test Movie"}`))

	got, ok := c.get("/3/movie/12345")
	require.True(t, ok, "should hit after set")
	assert.Equal(t, `{"title":"Test Movie"}`, string(got))

	// Different key should miss
	_, ok = c.get("/3/movie/99999")
	assert.False(t, ok, "different key should miss")

	c.set("/3/movie/99999", []byte(`{"title":"Another Movie"}`))
	got2, ok := c.get("/3/movie/99999")
	require.True(t, ok, "should hit second entry")
	assert.Equal(t, `{"title":"Another Movie"}`, string(got2))

	// First entry should still be there
	_, ok = c.get("/3/movie/12345")
	assert.True(t, ok, "first entry should still exist")
}

func TestCache_Expiry(t *testing.T) {
	c := newCache[int, string](10*time.Millisecond, 10)

	c.set(1, "Test")

	// Should hit immediately
	_, ok := c.get(1)
	require.True(t, ok)

	// Wait for expiry
	time.Sleep(20 * time.Millisecond)

	// Should miss after expiry
	_, ok = c.get(1)
	assert.False(t, ok, "should miss after TTL")
}

func TestCache_Disabled(t *testing.T) {
	c := newCache[int, string](0, 10)
	c.set(1, "Test")
	_, ok := c.get(1)
	assert.False(t, ok, "zero TTL disables caching")
}

func TestCache_Bounded(t *testing.T) {
	c := newCache[string, int](time.Hour, 100)
	for i := range 5000 {
		c.set("q="+strconv.Itoa(i), i)
	}
	assert.Equal(t, 100, c.len())

	got, ok := c.get("q=4999")
	require.True(t, ok, "latest entry survives eviction")
	assert.Equal(t, 4999, got)
}

func TestCache_SweepsExpiredWhenFull(t *testing.T) {
	c := newCache[int, string](10*time.Millisecond, 3)
	c.set(1, "a")
	c.set(2, "b")
	c.set(3, "c")
	time.Sleep(20 * time.Millisecond)

	c.set(4, "d")
	assert.Equal(t, 1, c.len(), "expired entries are dropped on a full set")
	_, ok := c.get(4)
	assert.True(t, ok)
}

func TestCache_OverwriteDoesNotEvict(t *testing.T) {
	c := newCache[int, string](time.Hour, 2)
	c.set(1, "a")
	c.set(2, "b")
	c.set(2, "b2")

	assert.Equal(t, 2, c.len())
	got, ok := c.get(1)
	require.True(t, ok)
	assert.Equal(t, "a", got)
}
