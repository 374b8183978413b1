package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCache(t *testing.T) {
	c := NewCache(time.Minute)
	defer c.Close()

	t.Run("set and get", func(t *testing.T) {
		c.Set("k1", "v1", time.Minute)
		got, found := c.Get("k1")
		require.True(t, found)
		assert.Equal(t, "v1", got)
	})

	t.Run("missing key", func(t *testing.T) {
		_, found := c.Get("nope")
		assert.False(t, found)
	})

	t.Run("expired entry is not served", func(t *testing.T) {
		c.Set("k2", "v2", 10*time.Millisecond)
		time.Sleep(20 * time.Millisecond)
		_, found := c.Get("k2")
		assert.False(t, found)
	})

	t.Run("zero ttl never expires", func(t *testing.T) {
		c.Set("k3", "v3", 0)
		got, found := c.Get("k3")
		require.True(t, found)
		assert.Equal(t, "v3", got)
	})

	t.Run("overwrite replaces the value", func(t *testing.T) {
		c.Set("k4", "old", time.Minute)
		c.Set("k4", "new", time.Minute)
		got, _ := c.Get("k4")
		assert.Equal(t, "new", got)
	})

	t.Run("clear drops everything", func(t *testing.T) {
		c.Set("k5", "v5", time.Minute)
		c.Clear()
		assert.Zero(t, c.Size())
	})
}

func TestCacheCleanupLoop(t *testing.T) {
	c := NewCache(20 * time.Millisecond)
	defer c.Close()

	c.Set("short", "v", 5*time.Millisecond)
	c.Set("long", "v", time.Minute)

	time.Sleep(60 * time.Millisecond)
	assert.Equal(t, 1, c.Size())
}
