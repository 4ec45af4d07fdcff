package io

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/matzehuels/wordnet/pkg/digraph"
	errs "github.com/matzehuels/wordnet/pkg/errors"
	"github.com/matzehuels/wordnet/pkg/sca"
)

func TestReadDigraph(t *testing.T) {
	g, err := ReadDigraph(strings.NewReader("4\n3\n0 2\n1 2 2\n3\n"))
	if err != nil {
		t.Fatalf("ReadDigraph: %v", err)
	}
	if g.V() != 4 || g.E() != 3 {
		t.Fatalf("got V=%d E=%d, want V=4 E=3", g.V(), g.E())
	}
	want := "4 vertices, 3 edges\n0: 2\n1: 2\n2: 3\n3:\n"
	if got := g.String(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestReadDigraphErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"missing edge count", "3"},
		{"negative vertex count", "-1 0"},
		{"negative edge count", "2 -1"},
		{"huge vertex count", "999999999999999 0"},
		{"vertex count past limit", strconv.Itoa(MaxVertices+1) + " 0"},
		{"short edge list", "3 2 0 1"},
		{"half edge", "3 1 0"},
		{"out of range", "2 1 0 2"},
		{"not a number", "2 1 0 x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadDigraph(strings.NewReader(tt.input))
			if !errs.Is(err, errs.ErrCodeInvalidFormat) {
				t.Errorf("got %v, want INVALID_FORMAT", err)
			}
		})
	}

	if _, err := ReadDigraph(nil); !errs.Is(err, errs.ErrCodeNullInput) {
		t.Errorf("nil reader: got %v, want NULL_INPUT", err)
	}
}

func TestImportDigraph(t *testing.T) {
	path := filepath.Join(t.TempDir(), "g.txt")
	if err := os.WriteFile(path, []byte("2 1\n1 0\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	g, err := ImportDigraph(path)
	if err != nil {
		t.Fatalf("ImportDigraph: %v", err)
	}
	if g.E() != 1 {
		t.Errorf("got %d edges, want 1", g.E())
	}

	_, err = ImportDigraph(filepath.Join(t.TempDir(), "missing.txt"))
	if !errs.Is(err, errs.ErrCodeFileNotFound) {
		t.Errorf("got %v, want FILE_NOT_FOUND", err)
	}
	_, err = ImportDigraph("")
	if !errs.Is(err, errs.ErrCodeNullInput) {
		t.Errorf("got %v, want NULL_INPUT", err)
	}
}

func TestReadPairs(t *testing.T) {
	var got [][2]int
	err := ReadPairs(context.Background(), strings.NewReader("3 11\n9 12\n"), func(v, w int) error {
		got = append(got, [2]int{v, w})
		return nil
	})
	if err != nil {
		t.Fatalf("ReadPairs: %v", err)
	}
	if len(got) != 2 || got[0] != [2]int{3, 11} || got[1] != [2]int{9, 12} {
		t.Errorf("got %v", got)
	}

	err = ReadPairs(context.Background(), strings.NewReader("1 2 3"), func(int, int) error { return nil })
	if !errs.Is(err, errs.ErrCodeInvalidFormat) {
		t.Errorf("unpaired token: got %v, want INVALID_FORMAT", err)
	}

	stop := errs.New(errs.ErrCodeOutOfRange, "stop")
	err = ReadPairs(context.Background(), strings.NewReader("1 2 3 4"), func(int, int) error { return stop })
	if err != stop {
		t.Errorf("got %v, want callback error", err)
	}
}

func TestJSONRoundTrip(t *testing.T) {
	g, _ := digraph.New(3)
	_ = g.AddEdge(1, 0)
	_ = g.AddEdge(2, 0)
	_ = g.AddEdge(2, 1)

	var buf bytes.Buffer
	if err := WriteJSON(g, &buf, func(v int) string { return []string{"a", "b", "c"}[v] }); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}
	if !strings.Contains(buf.String(), `"label": "c"`) {
		t.Errorf("labels missing from %s", buf.String())
	}

	back, err := ReadJSON(&buf)
	if err != nil {
		t.Fatalf("ReadJSON: %v", err)
	}
	if back.String() != g.String() {
		t.Errorf("got %q, want %q", back.String(), g.String())
	}
}

func TestExportImportJSON(t *testing.T) {
	g, _ := digraph.New(2)
	_ = g.AddEdge(0, 1)

	path := filepath.Join(t.TempDir(), "g.json")
	if err := ExportJSON(g, path, nil); err != nil {
		t.Fatalf("ExportJSON: %v", err)
	}
	back, err := ImportJSON(path)
	if err != nil {
		t.Fatalf("ImportJSON: %v", err)
	}
	if back.E() != 1 {
		t.Errorf("got %d edges, want 1", back.E())
	}
}

func TestReadJSONErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"malformed", `{"nodes": [`},
		{"duplicate id", `{"nodes": [{"id": 0}, {"id": 0}], "edges": []}`},
		{"sparse id", `{"nodes": [{"id": 0}, {"id": 2}], "edges": []}`},
		{"bad edge", `{"nodes": [{"id": 0}], "edges": [{"from": 0, "to": 1}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadJSON(strings.NewReader(tt.input))
			if !errs.Is(err, errs.ErrCodeInvalidFormat) {
				t.Errorf("got %v, want INVALID_FORMAT", err)
			}
		})
	}
}

func TestWritePathJSON(t *testing.T) {
	p := sca.AncestralPath{V: 3, W: 4, Ancestor: 1, Length: 3, FromV: []int{3, 1}, FromW: []int{4, 2, 1}}

	var buf bytes.Buffer
	if err := WritePathJSON(p, &buf, nil); err != nil {
		t.Fatalf("WritePathJSON: %v", err)
	}

	var doc pathDoc
	if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if doc.Ancestor != 1 || doc.Length != 3 {
		t.Errorf("got ancestor %d length %d, want 1 and 3", doc.Ancestor, doc.Length)
	}
	if len(doc.Nodes) != 4 {
		t.Errorf("got %d nodes, want 4", len(doc.Nodes))
	}
	want := []edge{{3, 1}, {4, 2}, {2, 1}}
	if len(doc.Edges) != len(want) {
		t.Fatalf("got edges %v, want %v", doc.Edges, want)
	}
	for i := range want {
		if doc.Edges[i] != want[i] {
			t.Errorf("edge %d: got %v, want %v", i, doc.Edges[i], want[i])
		}
	}

	buf.Reset()
	missing := sca.AncestralPath{V: 0, W: 1, Ancestor: sca.None, Length: sca.None}
	if err := WritePathJSON(missing, &buf, nil); err != nil {
		t.Fatalf("WritePathJSON: %v", err)
	}
	if !strings.Contains(buf.String(), `"nodes": []`) {
		t.Errorf("got %s, want empty node list", buf.String())
	}
}
