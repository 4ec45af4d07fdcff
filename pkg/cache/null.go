package cache

// NullCache is a no-op cache that never stores anything.
// It is the default for engines built without a cache.
type NullCache struct{}

// NewNullCache creates a null cache.
func NewNullCache() Cache {
	return NullCache{}
}

// Get always returns a cache miss.
func (NullCache) Get(int) (map[int]int, bool) { return nil, false }

// Add does nothing.
func (NullCache) Add(int, map[int]int) {}

// Len always returns 0.
func (NullCache) Len() int { return 0 }

// Purge does nothing.
func (NullCache) Purge() {}

// Ensure NullCache implements Cache.
var _ Cache = NullCache{}
