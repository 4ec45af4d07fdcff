package sca

import (
	"time"

	"github.com/matzehuels/wordnet/pkg/observability"
)

// AncestralPath is a shortest ancestral path through Ancestor.
// FromV runs from V up to Ancestor and FromW from W up to Ancestor, both
// ends included, so Length == len(FromV)-1 + len(FromW)-1.
type AncestralPath struct {
	V        int
	W        int
	Ancestor int
	Length   int
	FromV    []int
	FromW    []int
}

// Found reports whether the path exists.
func (p AncestralPath) Found() bool { return p.Ancestor != None }

// Vertices returns every vertex on the path, V side first, without
// repeating the ancestor.
func (p AncestralPath) Vertices() []int {
	if !p.Found() {
		return nil
	}
	out := make([]int, 0, len(p.FromV)+len(p.FromW)-1)
	out = append(out, p.FromV...)
	for i := len(p.FromW) - 2; i >= 0; i-- {
		out = append(out, p.FromW[i])
	}
	return out
}

// Path returns a shortest ancestral path between v and w. It agrees with
// [SCA.Ancestor] and [SCA.Length]. When there is no common ancestor the
// returned path has Ancestor and Length set to [None] and no vertices.
func (s *SCA) Path(v, w int) (p AncestralPath, err error) {
	defer s.observe(observability.OpPath, time.Now(), &err)

	return s.path(v, w)
}

// PathSet returns the ancestral path of the winning pair of [SCA.Triad].
func (s *SCA) PathSet(a, b []int) (p AncestralPath, err error) {
	defer s.observe(observability.OpPath, time.Now(), &err)

	t, err := s.triad(a, b)
	if err != nil {
		return AncestralPath{V: None, W: None, Ancestor: None, Length: None}, err
	}
	if t.Ancestor == None {
		return AncestralPath{V: None, W: None, Ancestor: None, Length: None}, nil
	}
	return s.path(t.V, t.W)
}

func (s *SCA) path(v, w int) (AncestralPath, error) {
	p := AncestralPath{V: v, W: w, Ancestor: None, Length: None}
	if err := s.validate(v); err != nil {
		return p, err
	}
	if err := s.validate(w); err != nil {
		return p, err
	}
	rv, err := s.bfs(v, true)
	if err != nil {
		return p, err
	}
	rw, err := s.bfs(w, true)
	if err != nil {
		return p, err
	}
	anc, length := closest(rv.dist, rw.dist)
	if anc == None {
		return p, nil
	}
	p.Ancestor, p.Length = anc, length
	p.FromV = rv.pathTo(anc)
	p.FromW = rw.pathTo(anc)
	return p, nil
}
