// Package io reads and writes directed graphs.
//
// # Digraph Text Format
//
// [ReadDigraph] reads the whitespace-separated format used by the ancestor
// command: the vertex count V, the edge count E, then E pairs "v w", each an
// edge from v to w. Line breaks carry no meaning:
//
//	3
//	2
//	0 2
//	1 2
//
// Vertex ids outside [0, V) or a short edge list fail with INVALID_FORMAT.
//
// # JSON Format
//
// [WriteJSON] and [ReadJSON] use a nodes/edges document. Labels are optional
// and carry synset text when the graph comes from a lexicon:
//
//	{
//	  "nodes": [{"id": 0, "label": "entity"}, {"id": 1}],
//	  "edges": [{"from": 1, "to": 0}]
//	}
//
// Node ids must be exactly 0..n-1, in any order. [WritePathJSON] writes an
// ancestral path as the same document plus its endpoints, ancestor and
// length, so a path can be inspected or rendered by external tools.
//
// # Concurrency
//
// All functions are safe to call concurrently with other readers of the same
// graph. Read functions return independent graphs.
package io
