package hamilton

import (
	"github.com/MohamammadMustafaHakimi/VizGraph/core"
	"github.com/MohamammadMustafaHakimi/VizGraph/degree"
)

// searcher carries the state of one backtracking run from a single start
// vertex: the growing path plus a membership set for O(1) visited checks.
type searcher struct {
	graph  *core.Graph
	opts   Options
	target int  // total vertex count; success when len(path) reaches it
	closed bool // cycle mode: last vertex must be adjacent to path[0]

	path   []string
	onPath map[string]bool
}

// HasPath reports whether g contains a Hamiltonian path: a simple path
// visiting every vertex exactly once. A graph with zero vertices has one
// vacuously; a single-vertex graph trivially.
//
// Worst case O(V!) per start vertex. See package documentation for the
// option surface. Pure read of g.
func HasPath(g *core.Graph, opts ...Option) (bool, error) {
	return decide(g, false, opts)
}

// HasCycle reports whether g contains a Hamiltonian cycle: a simple closed
// tour visiting every vertex exactly once. The search is identical to
// HasPath, with the additional requirement that the final vertex be
// adjacent to the first — which also makes a single vertex need a
// self-loop.
//
// Worst case O(V!) per start vertex. Pure read of g.
func HasCycle(g *core.Graph, opts ...Option) (bool, error) {
	return decide(g, true, opts)
}

func decide(g *core.Graph, closed bool, opts []Option) (bool, error) {
	if g == nil {
		return false, ErrGraphNil
	}
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	vertices := g.Vertices()
	n := len(vertices)
	if n == 0 {
		return true, nil // a length-0 path spans all zero vertices
	}

	if o.ConnectivityPruning && n > 1 {
		connected, err := degree.IsConnected(g)
		if err != nil {
			return false, err
		}
		if !connected {
			return false, nil
		}
	}

	// Try every start vertex; any extension order reaching full length wins.
	for _, start := range vertices {
		s := &searcher{graph: g, opts: o, target: n, closed: closed}
		s.path = append(make([]string, 0, n), start)
		s.onPath = make(map[string]bool, n)
		s.onPath[start] = true

		var (
			found bool
			err   error
		)
		if o.Iterative {
			found, err = s.searchIterative(start)
		} else {
			found, err = s.extend(start)
		}
		if err != nil {
			return false, err
		}
		if found {
			return true, nil
		}
	}

	return false, nil
}

// extend recursively grows the path from its last vertex.
// Neighbor order is the graph's stored adjacency (insertion) order.
func (s *searcher) extend(last string) (bool, error) {
	select {
	case <-s.opts.Ctx.Done():
		return false, s.opts.Ctx.Err()
	default:
	}

	if len(s.path) == s.target {
		if !s.closed {
			return true, nil
		}

		return s.graph.HasEdge(last, s.path[0]), nil
	}

	for _, nb := range s.graph.Neighbors(last) {
		if s.onPath[nb] {
			continue
		}
		s.path = append(s.path, nb)
		s.onPath[nb] = true

		found, err := s.extend(nb)
		if err != nil {
			return false, err
		}
		if found {
			return true, nil
		}

		s.path = s.path[:len(s.path)-1]
		delete(s.onPath, nb)
	}

	return false, nil
}
