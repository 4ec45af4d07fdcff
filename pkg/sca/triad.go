package sca

import (
	"time"

	errs "github.com/matzehuels/wordnet/pkg/errors"
	"github.com/matzehuels/wordnet/pkg/observability"
)

// Triad is the winning combination of a set query: V from A and W from B
// meet at Ancestor with total path length Length. All fields are [None]
// when no pair shares an ancestor.
type Triad struct {
	Length   int
	Ancestor int
	V        int
	W        int
}

var noTriad = Triad{Length: None, Ancestor: None, V: None, W: None}

// Triad returns the full winning triple for the vertex sets A and B, with
// the same failure modes as [SCA.AncestorSet].
func (s *SCA) Triad(a, b []int) (t Triad, err error) {
	defer s.observe(observability.OpAncestorSet, time.Now(), &err)

	return s.triad(a, b)
}

// triad solves every pair of A × B, A outer and B inner, keeping the first
// pair with the strictly smallest length. Pairs without a common ancestor
// are skipped. Distance maps are computed once per distinct vertex.
func (s *SCA) triad(a, b []int) (Triad, error) {
	if err := s.validateSets(a, b); err != nil {
		return noTriad, err
	}

	memo := make(map[int]map[int]int, len(a)+len(b))
	dist := func(v int) (map[int]int, error) {
		if d, ok := memo[v]; ok {
			return d, nil
		}
		d, err := s.distances(v)
		if err != nil {
			return nil, err
		}
		memo[v] = d
		return d, nil
	}

	best := noTriad
	for _, v := range a {
		dv, err := dist(v)
		if err != nil {
			return noTriad, err
		}
		for _, w := range b {
			dw, err := dist(w)
			if err != nil {
				return noTriad, err
			}
			anc, length := closest(dv, dw)
			if anc == None {
				continue
			}
			if best.Length == None || length < best.Length {
				best = Triad{Length: length, Ancestor: anc, V: v, W: w}
			}
		}
	}
	return best, nil
}

func (s *SCA) validateSets(a, b []int) error {
	if a == nil {
		return errs.New(errs.ErrCodeNullInput, "A is nil")
	}
	if b == nil {
		return errs.New(errs.ErrCodeNullInput, "B is nil")
	}
	if len(a) == 0 {
		return errs.New(errs.ErrCodeEmptyInput, "A is empty")
	}
	if len(b) == 0 {
		return errs.New(errs.ErrCodeEmptyInput, "B is empty")
	}
	for _, v := range a {
		if err := s.validate(v); err != nil {
			return err
		}
	}
	for _, w := range b {
		if err := s.validate(w); err != nil {
			return err
		}
	}
	return nil
}
