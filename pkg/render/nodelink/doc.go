// Package nodelink renders ancestral paths as node-link diagrams.
//
// # Overview
//
// A shortest ancestral path joins two synsets through their common
// ancestor. This package draws it with Graphviz: the two endpoints at the
// bottom, hypernym edges pointing up, the ancestor at the top.
//
// # Usage
//
// Convert a path to DOT format, then render to SVG:
//
//	p, _ := wn.Path("horse", "cat")
//	dot := nodelink.ToDOT(p, nodelink.Options{Label: wn.Synset})
//	svg, err := nodelink.RenderSVG(ctx, dot)
//
// # Options
//
//   - Label: maps a vertex to its display text. Errors fall back to the id.
//   - Detailed: prefix every label with its vertex id.
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG
// rendering, so no Graphviz installation is needed.
package nodelink
