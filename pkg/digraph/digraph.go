package digraph

import (
	"fmt"
	"iter"
	"strings"

	errs "github.com/matzehuels/wordnet/pkg/errors"
)

// Digraph is a directed graph over the vertices 0..V-1 stored as adjacency
// lists. The zero value is an empty graph with no vertices.
type Digraph struct {
	adj [][]int
	e   int
}

// New creates a graph with v vertices and no edges.
// Returns INVALID_INPUT if v is negative.
func New(v int) (*Digraph, error) {
	if v < 0 {
		return nil, errs.New(errs.ErrCodeInvalidInput, "vertex count must be non-negative, got %d", v)
	}
	return &Digraph{adj: make([][]int, v)}, nil
}

// V returns the number of vertices.
func (g *Digraph) V() int { return len(g.adj) }

// E returns the number of edges, counting duplicates and self-loops.
func (g *Digraph) E() int { return g.e }

// Validate returns OUT_OF_RANGE if v is not a vertex of g.
func (g *Digraph) Validate(v int) error {
	if v < 0 || v >= len(g.adj) {
		return errs.New(errs.ErrCodeOutOfRange, "vertex %d not in [0, %d)", v, len(g.adj))
	}
	return nil
}

// AddEdge appends the edge from→to. Returns OUT_OF_RANGE if either endpoint
// is not a vertex; the graph is left unchanged in that case.
func (g *Digraph) AddEdge(from, to int) error {
	if err := g.Validate(from); err != nil {
		return err
	}
	if err := g.Validate(to); err != nil {
		return err
	}
	g.adj[from] = append(g.adj[from], to)
	g.e++
	return nil
}

// Adj returns the vertices v points to in insertion order.
// The returned slice is a read-only view into the graph.
func (g *Digraph) Adj(v int) ([]int, error) {
	if err := g.Validate(v); err != nil {
		return nil, err
	}
	return g.adj[v], nil
}

// OutDegree returns the number of edges leaving v.
func (g *Digraph) OutDegree(v int) (int, error) {
	if err := g.Validate(v); err != nil {
		return 0, err
	}
	return len(g.adj[v]), nil
}

// Edges yields every edge as (from, to), ordered by source vertex and then
// by insertion order.
func (g *Digraph) Edges() iter.Seq2[int, int] {
	return func(yield func(int, int) bool) {
		for v, targets := range g.adj {
			for _, w := range targets {
				if !yield(v, w) {
					return
				}
			}
		}
	}
}

// String renders the graph in the same shape as the text format read by
// pkg/io: vertex and edge counts followed by one adjacency line per vertex.
func (g *Digraph) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d vertices, %d edges\n", g.V(), g.E())
	for v, targets := range g.adj {
		fmt.Fprintf(&b, "%d:", v)
		for _, w := range targets {
			fmt.Fprintf(&b, " %d", w)
		}
		b.WriteByte('\n')
	}
	return b.String()
}
