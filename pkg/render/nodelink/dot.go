package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	errs "github.com/matzehuels/wordnet/pkg/errors"
	"github.com/matzehuels/wordnet/pkg/sca"
)

// Options configures node-link diagram rendering.
type Options struct {
	// Label returns the display text of a vertex. When nil or failing,
	// the vertex id is shown.
	Label func(v int) (string, error)

	// Detailed prefixes labels with the vertex id.
	Detailed bool
}

// ToDOT converts an ancestral path to Graphviz DOT format.
// The resulting DOT string can be rendered using [RenderSVG].
//
// The ancestor is filled, the two endpoints are outlined in bold, and a
// path that was not found renders as an empty graph.
func ToDOT(p sca.AncestralPath, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=BT;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=14, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  ranksep=0.5;\n")
	buf.WriteString("  nodesep=0.3;\n")

	if p.Found() {
		fmt.Fprintf(&buf, "  label=%q;\n", fmt.Sprintf("length %d", p.Length))
		buf.WriteString("\n")
		for _, v := range p.Vertices() {
			attrs := fmtAttrs(p, v, fmtLabel(v, opts))
			fmt.Fprintf(&buf, "  %d [%s];\n", v, strings.Join(attrs, ", "))
		}

		buf.WriteString("\n")
		for _, side := range [][]int{p.FromV, p.FromW} {
			for i := 0; i+1 < len(side); i++ {
				fmt.Fprintf(&buf, "  %d -> %d;\n", side[i], side[i+1])
			}
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

func fmtLabel(v int, opts Options) string {
	id := strconv.Itoa(v)
	if opts.Label == nil {
		return id
	}
	text, err := opts.Label(v)
	if err != nil {
		return id
	}
	if opts.Detailed {
		return id + "\n" + text
	}
	return text
}

func fmtAttrs(p sca.AncestralPath, v int, label string) []string {
	attrs := []string{fmt.Sprintf("label=%q", label)}
	switch {
	case v == p.Ancestor:
		attrs = append(attrs, "fillcolor=lightgoldenrod", "penwidth=2")
	case v == p.V || v == p.W:
		attrs = append(attrs, "penwidth=2")
	}
	return attrs
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, errs.Wrap(errs.ErrCodeInternal, err, "init graphviz")
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, errs.Wrap(errs.ErrCodeInvalidFormat, err, "parse DOT")
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, errs.Wrap(errs.ErrCodeInternal, err, "render")
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox rewrites the root element to a zero-origin viewBox with
// matching width and height so the SVG scales when embedded.
func normalizeViewBox(svg []byte) []byte {
	m := viewBoxRe.FindSubmatch(svg)
	if m == nil {
		return svg
	}
	w, _ := strconv.ParseFloat(string(m[3]), 64)
	h, _ := strconv.ParseFloat(string(m[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}
	root := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`, w, h, w, h)
	return svgTagRe.ReplaceAll(svg, []byte(root))
}
