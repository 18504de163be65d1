package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCache_EvictsLeastRecentlyUsed(t *testing.T) {
	var released []string
	c := NewCacheWithSize(2, func(v string) { released = append(released, v) })

	c.Set("a", "A")
	c.Set("b", "B")
	_, ok := c.Get("a")
	assert.True(t, ok)

	c.Set("c", "C")

	_, ok = c.Get("b")
	assert.False(t, ok)
	assert.Equal(t, []string{"B"}, released)
	assert.Equal(t, 2, c.Len())
}

func TestCache_ReplaceReleasesOld(t *testing.T) {
	var released []int
	c := NewCache(func(v int) { released = append(released, v) })

	c.Set("k", 1)
	c.Set("k", 2)

	v, ok := c.Get("k")
	assert.True(t, ok)
	assert.Equal(t, 2, v)
	assert.Equal(t, []int{1}, released)
	assert.Equal(t, 1, c.Len())
}

func TestCache_Destroy(t *testing.T) {
	released := 0
	c := NewCache(func(int) { released++ })
	c.Set("a", 1)
	c.Set("b", 2)

	c.Destroy()

	assert.Equal(t, 2, released)
	assert.Equal(t, 0, c.Len())
}
