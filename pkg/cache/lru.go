package cache

import (
	"sync/atomic"

	lru "github.com/hashicorp/golang-lru/v2"
)

// LRU is a fixed-capacity cache that evicts the least recently used
// distance map when full.
type LRU struct {
	entries   *lru.Cache[int, map[int]int]
	evictions atomic.Int64
}

// NewLRU creates an LRU cache holding at most size distance maps.
// A non-positive size yields a [NullCache], so callers can pass a configured
// size straight through.
func NewLRU(size int) (Cache, error) {
	if size <= 0 {
		return NewNullCache(), nil
	}
	c := &LRU{}
	entries, err := lru.New[int, map[int]int](size)
	if err != nil {
		return nil, err
	}
	c.entries = entries
	return c, nil
}

// Get retrieves the distance map for v and marks it recently used.
func (c *LRU) Get(v int) (map[int]int, bool) {
	return c.entries.Get(v)
}

// Add stores the distance map for v, evicting the oldest entry if full.
func (c *LRU) Add(v int, dist map[int]int) {
	if c.entries.Add(v, dist) {
		c.evictions.Add(1)
	}
}

// Len returns the number of cached maps.
func (c *LRU) Len() int { return c.entries.Len() }

// Purge removes every entry. Purged entries are not counted as evictions.
func (c *LRU) Purge() {
	c.entries.Purge()
}

// Evictions returns how many entries were dropped to make room.
func (c *LRU) Evictions() int64 { return c.evictions.Load() }

// Ensure LRU implements Cache.
var _ Cache = (*LRU)(nil)
