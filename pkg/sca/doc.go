// Package sca finds shortest common ancestors in a directed graph.
//
// # Overview
//
// Given vertices v and w of a digraph whose edges point from specific to
// general concepts, a common ancestor is any vertex reachable from both by
// directed paths. The shortest common ancestor (SCA) minimises the sum of the
// two path lengths; that sum is the length of the shortest ancestral path.
//
// Each query runs one breadth-first search per source vertex ([SCA.DistanceFrom])
// and intersects the resulting distance maps. BFS on unit-weight edges
// discovers every vertex at its shortest distance, and a vertex is discovered
// at most once, so the search is correct on any digraph: cycles, several
// roots and disconnected components are all tolerated. Vertices that share no
// ancestor yield [None].
//
// # Sets of vertices
//
// [SCA.AncestorSet] and [SCA.LengthSet] generalise the pairwise queries to
// two vertex sets A and B by the triad search: every pair (v in A, w in B) is
// solved and the pair with the smallest length wins. The winning triple is
// available through [SCA.Triad].
//
// # Tie-breaking
//
// Results are deterministic:
//
//   - Pairwise: among ancestors with equal length the lowest vertex id wins.
//   - Sets: A is scanned in slice order as the outer loop and B as the inner
//     loop; the first pair reaching the minimum length wins.
//
// # Caching
//
// A triad search computes each vertex's distance map once and reuses it for
// every pair it takes part in. Reuse across queries is opt-in via [WithCache];
// results are identical with or without a cache.
//
// # Concurrency
//
// An SCA holds no mutable state of its own. Queries may run concurrently as
// long as the underlying graph is not modified; distance maps returned to
// callers are never shared with other queries.
package sca
