package io

import (
	"encoding/json"
	"io"
	"os"

	"github.com/matzehuels/wordnet/pkg/digraph"
	errs "github.com/matzehuels/wordnet/pkg/errors"
	"github.com/matzehuels/wordnet/pkg/sca"
)

// Labeler returns the display label of a vertex. A nil Labeler leaves
// labels empty.
type Labeler func(v int) string

type graph struct {
	Nodes []node `json:"nodes"`
	Edges []edge `json:"edges"`
}

type node struct {
	ID    int    `json:"id"`
	Label string `json:"label,omitempty"`
}

type edge struct {
	From int `json:"from"`
	To   int `json:"to"`
}

type pathDoc struct {
	V        int `json:"v"`
	W        int `json:"w"`
	Ancestor int `json:"ancestor"`
	Length   int `json:"length"`
	graph
}

// WriteJSON encodes g as JSON and writes it to w.
// This format can be re-imported with [ReadJSON].
func WriteJSON(g *digraph.Digraph, w io.Writer, label Labeler) error {
	out := graph{
		Nodes: make([]node, g.V()),
		Edges: make([]edge, 0, g.E()),
	}
	for v := range g.V() {
		out.Nodes[v] = node{ID: v, Label: labelOf(label, v)}
	}
	for from, to := range g.Edges() {
		out.Edges = append(out.Edges, edge{From: from, To: to})
	}
	return encode(w, out)
}

// WritePathJSON encodes the vertices and edges of p. A path that was not
// found is written with empty node and edge lists.
func WritePathJSON(p sca.AncestralPath, w io.Writer, label Labeler) error {
	out := pathDoc{
		V: p.V, W: p.W, Ancestor: p.Ancestor, Length: p.Length,
		graph: graph{Nodes: []node{}, Edges: []edge{}},
	}
	for _, v := range p.Vertices() {
		out.Nodes = append(out.Nodes, node{ID: v, Label: labelOf(label, v)})
	}
	for _, side := range [][]int{p.FromV, p.FromW} {
		for i := 0; i+1 < len(side); i++ {
			out.Edges = append(out.Edges, edge{From: side[i], To: side[i+1]})
		}
	}
	return encode(w, out)
}

// ReadJSON decodes a JSON graph from r. Node ids must cover 0..n-1 exactly
// once and edges must reference them. ReadJSON does not close r.
func ReadJSON(r io.Reader) (*digraph.Digraph, error) {
	var data graph
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return nil, errs.Wrap(errs.ErrCodeInvalidFormat, err, "decode")
	}

	seen := make([]bool, len(data.Nodes))
	for _, n := range data.Nodes {
		if n.ID < 0 || n.ID >= len(seen) || seen[n.ID] {
			return nil, errs.New(errs.ErrCodeInvalidFormat, "node %d: ids must be unique in [0, %d)", n.ID, len(seen))
		}
		seen[n.ID] = true
	}

	g, err := digraph.New(len(data.Nodes))
	if err != nil {
		return nil, err
	}
	for _, e := range data.Edges {
		if err := g.AddEdge(e.From, e.To); err != nil {
			return nil, errs.Wrap(errs.ErrCodeInvalidFormat, err, "edge %d->%d", e.From, e.To)
		}
	}
	return g, nil
}

// ImportJSON reads a JSON graph from the file at path.
func ImportJSON(path string) (*digraph.Digraph, error) {
	f, err := open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadJSON(f)
}

// ExportJSON writes g to a JSON file at path.
func ExportJSON(g *digraph.Digraph, path string, label Labeler) error {
	if err := errs.ValidatePath(path); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return errs.Wrap(errs.ErrCodeInternal, err, "create %s", path)
	}
	if err := WriteJSON(g, f, label); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func encode(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return errs.Wrap(errs.ErrCodeInternal, err, "encode")
	}
	return nil
}

func labelOf(label Labeler, v int) string {
	if label == nil {
		return ""
	}
	return label(v)
}

func open(path string) (*os.File, error) {
	if err := errs.ValidatePath(path); err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errs.Wrap(errs.ErrCodeFileNotFound, err, "open %s", path)
		}
		return nil, errs.Wrap(errs.ErrCodeInternal, err, "open %s", path)
	}
	return f, nil
}
