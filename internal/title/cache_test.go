package title

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCacheGetSet(t *testing.T) {
	c := NewCache(10)

	_, ok := c.Get("https://a.com")
	assert.False(t, ok)

	c.Set("https://a.com", "Title A")
	got, ok := c.Get("https://a.com")
	assert.True(t, ok)
	assert.Equal(t, "Title A", got)
	assert.Equal(t, 1, c.Len())
}

func TestCacheEvictsOldestInserted(t *testing.T) {
	c := NewCache(DefaultCacheMaxSize)

	for i := 0; i <= DefaultCacheMaxSize; i++ {
		c.Set(fmt.Sprintf("https://site.com/%d", i), fmt.Sprintf("t%d", i))
	}

	assert.Equal(t, DefaultCacheMaxSize, c.Len())

	_, ok := c.Get("https://site.com/0")
	assert.False(t, ok, "primeira URL deveria ter sido removida")

	got, ok := c.Get(fmt.Sprintf("https://site.com/%d", DefaultCacheMaxSize))
	assert.True(t, ok)
	assert.Equal(t, fmt.Sprintf("t%d", DefaultCacheMaxSize), got)
}

func TestCacheReadDoesNotRefreshOrder(t *testing.T) {
	c := NewCache(2)
	c.Set("a", "1")
	c.Set("b", "2")

	_, _ = c.Get("a")
	c.Set("c", "3")

	_, ok := c.Get("a")
	assert.False(t, ok)
	_, ok = c.Get("b")
	assert.True(t, ok)
}

func TestCacheOverwriteKeepsPosition(t *testing.T) {
	c := NewCache(2)
	c.Set("a", "1")
	c.Set("b", "2")
	c.Set("a", "1b")
	c.Set("c", "3")

	_, ok := c.Get("a")
	assert.False(t, ok)
	assert.Equal(t, 2, c.Len())
}

func TestNewCacheDefaultSize(t *testing.T) {
	c := NewCache(0)
	assert.Equal(t, DefaultCacheMaxSize, c.maxSize)
}
