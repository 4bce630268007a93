package font

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/goregular"
)

func TestCacheSharesFaces(t *testing.T) {
	c := NewCache(4)

	a, err := c.Load(goregular.TTF)
	require.NoError(t, err)
	b, err := c.Load(goregular.TTF)
	require.NoError(t, err)

	assert.Same(t, a, b)
	assert.Equal(t, 2, a.ReferenceCount())
	assert.Equal(t, 1, c.Len())
	assert.Equal(t, 0, c.Idle())
	a.Destroy()
	b.Destroy()
	c.Clear()
}

func TestCacheKeepsReleasedFacesIdle(t *testing.T) {
	c := NewCache(4)

	f, err := c.Load(goregular.TTF)
	require.NoError(t, err)
	f.Destroy()

	require.Equal(t, 1, c.Idle())
	assert.Equal(t, 1, f.ReferenceCount())
	_, ok := f.GlyphIndex('A')
	assert.True(t, ok, "idle face lost its font")

	again, err := c.Load(goregular.TTF)
	require.NoError(t, err)
	assert.Same(t, f, again)
	assert.Equal(t, 0, c.Idle())
	assert.Equal(t, 1, again.ReferenceCount())
	again.Destroy()
	c.Clear()
}

func TestCacheEvictsOldestIdle(t *testing.T) {
	c := NewCache(1)

	regular, _ := c.Load(goregular.TTF)
	bold, _ := c.Load(gobold.TTF)
	italic, _ := c.Load(goitalic.TTF)
	require.Equal(t, 3, c.Len())

	regular.Destroy()
	bold.Destroy()

	assert.Equal(t, 1, c.Idle())
	assert.Equal(t, 2, c.Len())
	_, ok := regular.GlyphIndex('A')
	assert.False(t, ok, "evicted face still resolves glyphs")
	_, ok = bold.GlyphIndex('A')
	assert.True(t, ok, "idle face lost its font")

	italic.Destroy()
	assert.Equal(t, 1, c.Idle())

	c.Clear()
	assert.Equal(t, 0, c.Len())
	assert.Equal(t, 0, c.Idle())
	_, ok = italic.GlyphIndex('A')
	assert.False(t, ok, "cleared face still resolves glyphs")
}

func TestCacheClearKeepsFacesInUse(t *testing.T) {
	c := NewCache(0)

	f, err := c.Load(goregular.TTF)
	require.NoError(t, err)
	c.Clear()
	assert.Equal(t, 1, c.Len())

	f.Destroy()
	assert.Equal(t, 1, c.Idle())
	c.Clear()
}

func TestCacheLoadInvalid(t *testing.T) {
	c := NewCache(2)

	f, err := c.Load([]byte("not a font"))
	require.Error(t, err)
	assert.Same(t, NilFace(), f)
	assert.Equal(t, 0, c.Len())
}

func TestCacheKeyCollision(t *testing.T) {
	c := NewCache(2)
	c.key = func([]byte) uint64 { return 1 }

	regular, err := c.Load(goregular.TTF)
	require.NoError(t, err)
	bold, err := c.Load(gobold.TTF)
	require.NoError(t, err)

	assert.NotSame(t, regular, bold)
	assert.Equal(t, 1, c.Len())

	bold.Destroy()
	assert.Equal(t, 0, c.Idle(), "colliding face was kept by the cache")
	assert.Equal(t, 0, bold.ReferenceCount())

	again, err := c.Load(goregular.TTF)
	require.NoError(t, err)
	assert.Same(t, regular, again)

	again.Destroy()
	regular.Destroy()
	c.Clear()
}
