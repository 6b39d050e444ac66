package cache

import (
	"sync"

	"github.com/dmitrijs2005/learnhub/internal/preference"
)

// MemoryCache lives as long as the process. It backs "-k memory" and tests.
type MemoryCache struct {
	mu     sync.RWMutex
	values map[string]preference.Preference
}

func NewMemoryCache() *MemoryCache {
	return &MemoryCache{values: make(map[string]preference.Preference)}
}

func (c *MemoryCache) Get(key string) (preference.Preference, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	p, ok := c.values[key]
	return p, ok
}

func (c *MemoryCache) Set(key string, p preference.Preference) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.values[key] = p
}
