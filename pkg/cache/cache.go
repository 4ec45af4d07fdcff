// Package cache provides in-memory caches for per-vertex BFS distance maps.
//
// The common-ancestor engine computes one distance map per source vertex.
// Within a single set query the engine memoises these maps itself; a [Cache]
// additionally lets one engine instance reuse them across queries. Nothing is
// ever written outside the process.
//
// Two implementations are provided:
//   - [NullCache]: stores nothing (the default, every query recomputes)
//   - [LRU]: fixed-capacity least-recently-used cache backed by
//     github.com/hashicorp/golang-lru/v2
//
// Cached maps are shared between callers and must never be mutated after
// [Cache.Add]. All implementations are safe for concurrent use.
package cache

// Cache stores distance maps keyed by source vertex.
type Cache interface {
	// Get returns the distance map for source v, if cached.
	Get(v int) (map[int]int, bool)

	// Add stores the distance map for source v. The map must not be
	// modified afterwards.
	Add(v int, dist map[int]int)

	// Len returns the number of cached maps.
	Len() int

	// Purge removes every entry.
	Purge()
}
