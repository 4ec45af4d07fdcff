package sca

import (
	errs "github.com/matzehuels/wordnet/pkg/errors"
)

// search is the outcome of one breadth-first traversal.
type search struct {
	source int
	dist   map[int]int
	parent map[int]int // nil unless parents were requested
}

// bfs explores every vertex reachable from source. Each vertex is recorded
// the first time it is discovered, which on unit-weight edges is at its
// shortest distance; later discoveries through cycles or parallel edges are
// ignored.
func (s *SCA) bfs(source int, withParents bool) (*search, error) {
	r := &search{source: source, dist: map[int]int{source: 0}}
	if withParents {
		r.parent = make(map[int]int)
	}

	queue := []int{source}
	for head := 0; head < len(queue); head++ {
		cur := queue[head]
		adj, err := s.g.Adj(cur)
		if err != nil {
			return nil, errs.Wrap(errs.ErrCodeInternal, err, "adjacency of vertex %d", cur)
		}
		for _, next := range adj {
			if _, seen := r.dist[next]; seen {
				continue
			}
			if err := s.validate(next); err != nil {
				return nil, errs.Wrap(errs.ErrCodeInternal, err, "edge %d->%d", cur, next)
			}
			r.dist[next] = r.dist[cur] + 1
			if withParents {
				r.parent[next] = cur
			}
			queue = append(queue, next)
		}
	}
	return r, nil
}

// pathTo returns the vertices from the source to target along BFS parent
// links, both ends included. target must have been reached.
func (r *search) pathTo(target int) []int {
	path := make([]int, r.dist[target]+1)
	for i, v := len(path)-1, target; i >= 0; i-- {
		path[i] = v
		v = r.parent[v]
	}
	return path
}
