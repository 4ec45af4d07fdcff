package sca

import (
	"maps"
	"time"

	"github.com/matzehuels/wordnet/pkg/cache"
	errs "github.com/matzehuels/wordnet/pkg/errors"
	"github.com/matzehuels/wordnet/pkg/observability"
)

// None is returned as ancestor and length when no common ancestor exists.
const None = -1

// cacheKeyType labels distance-map cache events.
const cacheKeyType = "distance"

// Graph is the read-only view of a digraph the engine needs.
// *digraph.Digraph satisfies it.
type Graph interface {
	V() int
	Adj(v int) ([]int, error)
}

// SCA answers shortest-common-ancestor queries over a fixed graph.
type SCA struct {
	g      Graph
	cache  cache.Cache
	cached bool
	hooks  observability.QueryHooks
}

// Option configures an SCA.
type Option func(*SCA)

// WithCache keeps distance maps in c and reuses them across queries.
// A nil cache disables cross-query reuse.
func WithCache(c cache.Cache) Option {
	return func(s *SCA) {
		if c == nil {
			return
		}
		s.cache = c
		_, isNull := c.(cache.NullCache)
		s.cached = !isNull
	}
}

// WithHooks sends query events to h instead of the globally registered
// observability.Query hooks.
func WithHooks(h observability.QueryHooks) Option {
	return func(s *SCA) { s.hooks = h }
}

// New creates an engine over g. Returns NULL_INPUT if g is nil.
// The graph must not be modified while the engine is in use.
func New(g Graph, opts ...Option) (*SCA, error) {
	if g == nil {
		return nil, errs.New(errs.ErrCodeNullInput, "graph is nil")
	}
	s := &SCA{g: g, cache: cache.NewNullCache()}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// DistanceFrom returns every vertex reachable from v mapped to its
// shortest hop count; v itself maps to 0. The map belongs to the caller.
// Returns OUT_OF_RANGE if v is not a vertex.
func (s *SCA) DistanceFrom(v int) (dist map[int]int, err error) {
	defer s.observe(observability.OpDistanceFrom, time.Now(), &err)

	if err := s.validate(v); err != nil {
		return nil, err
	}
	d, err := s.distances(v)
	if err != nil {
		return nil, err
	}
	if s.cached {
		return maps.Clone(d), nil
	}
	return d, nil
}

// Ancestor returns a shortest common ancestor of v and w, or [None] if they
// have none. Ties go to the lowest vertex id.
// Returns OUT_OF_RANGE if v or w is not a vertex.
func (s *SCA) Ancestor(v, w int) (ancestor int, err error) {
	defer s.observe(observability.OpAncestor, time.Now(), &err)

	ancestor, _, err = s.solvePair(v, w)
	return ancestor, err
}

// Length returns the length of the shortest ancestral path between v and w,
// or [None] if they have no common ancestor. Length(v, v) is 0.
// Returns OUT_OF_RANGE if v or w is not a vertex.
func (s *SCA) Length(v, w int) (length int, err error) {
	defer s.observe(observability.OpLength, time.Now(), &err)

	_, length, err = s.solvePair(v, w)
	return length, err
}

// AncestorSet returns a shortest common ancestor of the vertex sets A and B.
// Returns NULL_INPUT if a set is nil, EMPTY_INPUT if a set is empty and
// OUT_OF_RANGE if a member is not a vertex. Returns [None] when no pair
// shares an ancestor.
func (s *SCA) AncestorSet(a, b []int) (ancestor int, err error) {
	defer s.observe(observability.OpAncestorSet, time.Now(), &err)

	t, err := s.triad(a, b)
	return t.Ancestor, err
}

// LengthSet returns the length of the shortest ancestral path between the
// vertex sets A and B, with the same failure modes as [SCA.AncestorSet].
func (s *SCA) LengthSet(a, b []int) (length int, err error) {
	defer s.observe(observability.OpLengthSet, time.Now(), &err)

	t, err := s.triad(a, b)
	return t.Length, err
}

func (s *SCA) solvePair(v, w int) (int, int, error) {
	if err := s.validate(v); err != nil {
		return None, None, err
	}
	if err := s.validate(w); err != nil {
		return None, None, err
	}
	dv, err := s.distances(v)
	if err != nil {
		return None, None, err
	}
	dw, err := s.distances(w)
	if err != nil {
		return None, None, err
	}
	anc, length := closest(dv, dw)
	return anc, length, nil
}

// closest intersects two distance maps and returns the vertex with the
// smallest distance sum, preferring the lowest id on ties.
func closest(dv, dw map[int]int) (ancestor, length int) {
	if len(dw) < len(dv) {
		dv, dw = dw, dv
	}
	ancestor, length = None, None
	for x, a := range dv {
		b, ok := dw[x]
		if !ok {
			continue
		}
		sum := a + b
		if length == None || sum < length || (sum == length && x < ancestor) {
			ancestor, length = x, sum
		}
	}
	return ancestor, length
}

func (s *SCA) validate(v int) error {
	if v < 0 || v >= s.g.V() {
		return errs.New(errs.ErrCodeOutOfRange, "vertex %d not in [0, %d)", v, s.g.V())
	}
	return nil
}

// distances returns the distance map for v, consulting the cache when one
// is configured. The result may be shared and must not be modified.
func (s *SCA) distances(v int) (map[int]int, error) {
	if !s.cached {
		r, err := s.bfs(v, false)
		if err != nil {
			return nil, err
		}
		return r.dist, nil
	}

	hooks := observability.Cache()
	if d, ok := s.cache.Get(v); ok {
		hooks.OnCacheHit(cacheKeyType)
		return d, nil
	}
	hooks.OnCacheMiss(cacheKeyType)

	r, err := s.bfs(v, false)
	if err != nil {
		return nil, err
	}
	s.cache.Add(v, r.dist)
	hooks.OnCacheSet(cacheKeyType, len(r.dist))
	return r.dist, nil
}

func (s *SCA) observe(op string, start time.Time, err *error) {
	h := s.hooks
	if h == nil {
		h = observability.Query()
	}
	h.OnQuery(op, time.Since(start), *err)
}
