// Package digraph provides the directed graph that backs the synset taxonomy.
//
// # Overview
//
// A [Digraph] holds V vertices identified by the integers 0..V-1 and, for
// every vertex, the ordered list of vertices it points to. In a WordNet
// taxonomy an edge runs from a specific synset to one of its hypernyms, so
// following edges always moves towards more general concepts.
//
// The vertex count is fixed by [New]. Edges are appended with
// [Digraph.AddEdge] and can never be removed. Parallel edges and self-loops
// are kept exactly as added; the graph does no deduplication and does not
// check for cycles.
//
//	g, _ := digraph.New(3)
//	_ = g.AddEdge(1, 0)
//	_ = g.AddEdge(2, 0)
//	adj, _ := g.Adj(1) // [0]
//
// # Diagnostics
//
// [Digraph.Roots] and [Digraph.Cycle] check the shape a taxonomy is
// expected to have without enforcing it: WordNet is a rooted DAG, with one
// vertex that has no hypernym and no cycles.
//
// # Errors
//
// Every method that takes a vertex reports OUT_OF_RANGE (see
// [github.com/matzehuels/wordnet/pkg/errors]) when the vertex lies outside
// [0, V).
//
// # Concurrency
//
// A Digraph is not safe for concurrent mutation. Once construction is
// complete, any number of goroutines may read it concurrently; the lexicon
// relies on this by building the graph once and never modifying it again.
package digraph
