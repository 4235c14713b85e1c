package degree

import "github.com/MohamammadMustafaHakimi/VizGraph/core"

// IsConnected reports whether every vertex of g is reachable from every
// other when edge direction is ignored: standard connectivity for
// undirected graphs, weak connectivity for directed ones. Graphs with at
// most one vertex are connected.
//
// The check is a BFS over the underlying undirected view, O(V+E) time,
// O(V+E) memory for the view, and never mutates g.
// Returns ErrGraphNil if g is nil.
func IsConnected(g *core.Graph) (bool, error) {
	if g == nil {
		return false, ErrGraphNil
	}

	vertices := g.Vertices()
	if len(vertices) <= 1 {
		return true, nil
	}

	// Underlying undirected view: every stored arc linked both ways.
	// Undirected graphs already store mirrors, so this only adds work
	// for directed input.
	view := make(map[string][]string, len(vertices))
	for _, u := range vertices {
		for _, v := range g.Neighbors(u) {
			view[u] = append(view[u], v)
			view[v] = append(view[v], u)
		}
	}

	seen := make(map[string]bool, len(vertices))
	queue := []string{vertices[0]}
	seen[vertices[0]] = true
	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		for _, v := range view[u] {
			if !seen[v] {
				seen[v] = true
				queue = append(queue, v)
			}
		}
	}

	return len(seen) == len(vertices), nil
}
