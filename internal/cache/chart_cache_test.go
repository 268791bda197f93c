package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T, maxBytes int64) *ChartCache {
	t.Helper()
	c, err := NewChartCache(maxBytes)
	require.NoError(t, err)
	t.Cleanup(c.Close)
	return c
}

func TestChartCache_SetGet(t *testing.T) {
	c := newTestCache(t, 1<<20)

	img := []byte{0x89, 'P', 'N', 'G'}
	c.Set("category:abc", img)
	c.Wait()

	got, ok := c.Get("category:abc")
	require.True(t, ok)
	assert.Equal(t, img, got)
}

func TestChartCache_Miss(t *testing.T) {
	c := newTestCache(t, 1<<20)

	got, ok := c.Get("missing")
	assert.False(t, ok)
	assert.Nil(t, got)
}

func TestChartCache_Clear(t *testing.T) {
	c := newTestCache(t, 1<<20)

	c.Set("k", []byte("png"))
	c.Wait()
	c.Clear()

	_, ok := c.Get("k")
	assert.False(t, ok)
}

func TestChartCache_RejectsOversizedImage(t *testing.T) {
	c := newTestCache(t, 16)

	c.Set("big", make([]byte, 1024))
	c.Wait()

	_, ok := c.Get("big")
	assert.False(t, ok)
}

func TestKey(t *testing.T) {
	a := Key("monthly", "2024-01", "100.00")
	b := Key("monthly", "2024-01", "100.00")
	assert.Equal(t, a, b)
	assert.Contains(t, a, "monthly:")

	assert.NotEqual(t, a, Key("balance", "2024-01", "100.00"))
	assert.NotEqual(t, a, Key("monthly", "2024-0", "1100.00"))
}
