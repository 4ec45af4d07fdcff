// Package render holds the visual renderers of the wordnet module.
//
// The [nodelink] subpackage draws ancestral paths as Graphviz node-link
// diagrams:
//
//	dot := nodelink.ToDOT(path, nodelink.Options{Label: wn.Synset})
//	svg, err := nodelink.RenderSVG(ctx, dot)
package render
