package nodelink

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/matzehuels/wordnet/pkg/sca"
)

var path = sca.AncestralPath{
	V: 3, W: 4, Ancestor: 1, Length: 3,
	FromV: []int{3, 1},
	FromW: []int{4, 2, 1},
}

func TestToDOT(t *testing.T) {
	dot := ToDOT(path, Options{})

	for _, want := range []string{
		"digraph G {",
		`label="length 3";`,
		`3 [label="3", penwidth=2];`,
		`1 [label="1", fillcolor=lightgoldenrod, penwidth=2];`,
		"3 -> 1;",
		"4 -> 2;",
		"2 -> 1;",
	} {
		if !strings.Contains(dot, want) {
			t.Errorf("DOT missing %q:\n%s", want, dot)
		}
	}
	if strings.Count(dot, "->") != 3 {
		t.Errorf("got %d edges, want 3", strings.Count(dot, "->"))
	}
}

func TestToDOTLabels(t *testing.T) {
	names := map[int]string{1: "animal", 2: "feline", 3: "horse", 4: "cat"}
	label := func(v int) (string, error) {
		if s, ok := names[v]; ok {
			return s, nil
		}
		return "", fmt.Errorf("no synset %d", v)
	}

	dot := ToDOT(path, Options{Label: label})
	if !strings.Contains(dot, `label="feline"`) {
		t.Errorf("missing synset label:\n%s", dot)
	}

	dot = ToDOT(path, Options{Label: label, Detailed: true})
	if !strings.Contains(dot, `label="2\nfeline"`) {
		t.Errorf("missing detailed label:\n%s", dot)
	}

	delete(names, 2)
	dot = ToDOT(path, Options{Label: label})
	if !strings.Contains(dot, `2 [label="2"`) {
		t.Errorf("failed label should fall back to id:\n%s", dot)
	}
}

func TestToDOTNotFound(t *testing.T) {
	dot := ToDOT(sca.AncestralPath{V: 0, W: 1, Ancestor: sca.None, Length: sca.None}, Options{})
	if strings.Contains(dot, "->") || strings.Contains(dot, "label=") {
		t.Errorf("expected empty graph:\n%s", dot)
	}
}

func TestRenderSVG(t *testing.T) {
	svg, err := RenderSVG(context.Background(), ToDOT(path, Options{}))
	if err != nil {
		t.Fatalf("RenderSVG: %v", err)
	}
	if !strings.Contains(string(svg), "<svg") {
		t.Errorf("output is not SVG: %.200s", svg)
	}
}

func TestNormalizeViewBox(t *testing.T) {
	in := []byte(`<svg width="10pt" height="20pt" viewBox="0.00 0.00 10.00 20.00"><g/></svg>`)
	got := string(normalizeViewBox(in))
	want := `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 10.00 20.00" width="10" height="20"><g/></svg>`
	if got != want {
		t.Errorf("got %s, want %s", got, want)
	}

	plain := []byte("<svg><g/></svg>")
	if string(normalizeViewBox(plain)) != string(plain) {
		t.Error("svg without viewBox must be unchanged")
	}
}
