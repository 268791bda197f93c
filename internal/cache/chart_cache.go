// Package cache holds rendered chart images keyed by the content they were drawn from.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/dgraph-io/ristretto"
)

// ChartCache is a size-bounded cache of PNG bytes. Cost is the image size.
type ChartCache struct {
	cache *ristretto.Cache
}

// NewChartCache creates a chart cache holding at most maxBytes of images
func NewChartCache(maxBytes int64) (*ChartCache, error) {
	c, err := ristretto.NewCache(&ristretto.Config{
		NumCounters:        10000, // number of keys to track frequency of
		MaxCost:            maxBytes,
		BufferItems:        64, // number of keys per Get buffer
		IgnoreInternalCost: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize chart cache: %w", err)
	}
	return &ChartCache{cache: c}, nil
}

// Get returns the cached image for key
func (c *ChartCache) Get(key string) ([]byte, bool) {
	v, ok := c.cache.Get(key)
	if !ok {
		return nil, false
	}
	img, ok := v.([]byte)
	return img, ok
}

// Set stores an image. Admission is asynchronous; it may be dropped.
func (c *ChartCache) Set(key string, img []byte) bool {
	return c.cache.Set(key, img, int64(len(img)))
}

// Wait blocks until pending writes are applied
func (c *ChartCache) Wait() {
	c.cache.Wait()
}

// Clear drops every cached image
func (c *ChartCache) Clear() {
	c.cache.Clear()
}

// Close stops the cache's background goroutines
func (c *ChartCache) Close() {
	c.cache.Close()
}

// Key derives a cache key from the chart kind and the values it is drawn from
func Key(kind string, parts ...string) string {
	h := sha256.New()
	for _, p := range parts {
		h.Write([]byte(p))
		h.Write([]byte{0})
	}
	return kind + ":" + hex.EncodeToString(h.Sum(nil))
}
