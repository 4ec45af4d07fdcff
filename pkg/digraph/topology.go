package digraph

// Roots returns the vertices with no outgoing edges in ascending order.
// A WordNet taxonomy has exactly one.
func (g *Digraph) Roots() []int {
	var roots []int
	for v, targets := range g.adj {
		if len(targets) == 0 {
			roots = append(roots, v)
		}
	}
	return roots
}

// Cycle returns the vertices of some directed cycle, starting and ending
// at the same vertex, or nil if g is acyclic. A self-loop is a cycle of
// one edge.
func (g *Digraph) Cycle() []int {
	const (
		white = iota
		gray
		black
	)

	color := make([]uint8, len(g.adj))
	parent := make([]int, len(g.adj))
	var cycle []int

	var dfs func(v int) bool
	dfs = func(v int) bool {
		color[v] = gray
		for _, w := range g.adj[v] {
			switch color[w] {
			case white:
				parent[w] = v
				if dfs(w) {
					return true
				}
			case gray:
				// back edge v -> w closes the cycle w ... v -> w
				cycle = []int{w}
				for x := v; x != w; x = parent[x] {
					cycle = append(cycle, x)
				}
				cycle = append(cycle, w)
				reverse(cycle[1 : len(cycle)-1])
				return true
			}
		}
		color[v] = black
		return false
	}

	for v := range g.adj {
		if color[v] == white && dfs(v) {
			return cycle
		}
	}
	return nil
}

// IsRootedDAG reports whether g is acyclic with exactly one root.
func (g *Digraph) IsRootedDAG() bool {
	return len(g.Roots()) == 1 && g.Cycle() == nil
}

func reverse(s []int) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
