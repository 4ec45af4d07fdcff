package io

import (
	"bufio"
	"context"
	"io"
	"strconv"

	"github.com/matzehuels/wordnet/pkg/digraph"
	errs "github.com/matzehuels/wordnet/pkg/errors"
)

// MaxVertices bounds the vertex count accepted by [ReadDigraph].
const MaxVertices = 1 << 22

// ReadDigraph decodes a digraph in text format from r.
// ReadDigraph does not close r.
func ReadDigraph(r io.Reader) (*digraph.Digraph, error) {
	if r == nil {
		return nil, errs.New(errs.ErrCodeNullInput, "reader is nil")
	}
	tok := &tokens{sc: bufio.NewScanner(r)}
	tok.sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	tok.sc.Split(bufio.ScanWords)

	v, err := tok.next("vertex count")
	if err != nil {
		return nil, err
	}
	e, err := tok.next("edge count")
	if err != nil {
		return nil, err
	}
	if v > MaxVertices {
		return nil, errs.New(errs.ErrCodeInvalidFormat, "vertex count %d exceeds %d", v, MaxVertices)
	}
	if e < 0 {
		return nil, errs.New(errs.ErrCodeInvalidFormat, "edge count %d is negative", e)
	}

	g, err := digraph.New(v)
	if err != nil {
		return nil, errs.Wrap(errs.ErrCodeInvalidFormat, err, "vertex count")
	}
	for i := range e {
		from, err := tok.next("edge source")
		if err != nil {
			return nil, err
		}
		to, err := tok.next("edge target")
		if err != nil {
			return nil, err
		}
		if err := g.AddEdge(from, to); err != nil {
			return nil, errs.Wrap(errs.ErrCodeInvalidFormat, err, "edge %d", i)
		}
	}
	return g, nil
}

// ImportDigraph reads a text-format digraph from the file at path.
func ImportDigraph(path string) (*digraph.Digraph, error) {
	f, err := open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadDigraph(f)
}

// ReadPairs calls fn for every "v w" pair read from r until EOF, an error
// from fn, or cancellation of ctx. A trailing unpaired token is an error.
func ReadPairs(ctx context.Context, r io.Reader, fn func(v, w int) error) error {
	tok := &tokens{sc: bufio.NewScanner(r)}
	tok.sc.Split(bufio.ScanWords)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if !tok.sc.Scan() {
			if err := tok.sc.Err(); err != nil {
				return errs.Wrap(errs.ErrCodeInvalidFormat, err, "read pair")
			}
			return nil
		}
		v, err := tok.parse("first vertex")
		if err != nil {
			return err
		}
		w, err := tok.next("second vertex")
		if err != nil {
			return err
		}
		if err := fn(v, w); err != nil {
			return err
		}
	}
}

type tokens struct {
	sc *bufio.Scanner
	n  int
}

func (t *tokens) next(what string) (int, error) {
	if !t.sc.Scan() {
		if err := t.sc.Err(); err != nil {
			return 0, errs.Wrap(errs.ErrCodeInvalidFormat, err, "read %s", what)
		}
		return 0, errs.New(errs.ErrCodeInvalidFormat, "missing %s after %d tokens", what, t.n)
	}
	return t.parse(what)
}

func (t *tokens) parse(what string) (int, error) {
	t.n++
	n, err := strconv.Atoi(t.sc.Text())
	if err != nil {
		return 0, errs.New(errs.ErrCodeInvalidFormat, "%s: token %d %q is not an integer", what, t.n, t.sc.Text())
	}
	return n, nil
}
