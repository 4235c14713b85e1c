package euler

import (
	"errors"

	"github.com/MohamammadMustafaHakimi/VizGraph/core"
	"github.com/MohamammadMustafaHakimi/VizGraph/degree"
)

// ErrGraphNil is returned when a nil *core.Graph is passed to HasPath or HasCycle.
var ErrGraphNil = errors.New("euler: graph is nil")

// HasPath reports whether g admits an Eulerian path (open walk traversing
// every edge exactly once).
//
// Directed: exactly one vertex with out−in = +1, exactly one with −1, all
// others balanced. Connectivity is intentionally not checked; see the
// package documentation for this known divergence.
// Undirected: exactly two odd-degree vertices and a connected graph.
//
// Complexity: O(V+E). Pure read of g.
func HasPath(g *core.Graph) (bool, error) {
	if g == nil {
		return false, ErrGraphNil
	}
	prof, err := degree.Of(g)
	if err != nil {
		return false, err
	}

	if prof.Directed {
		plus, minus := 0, 0
		for _, v := range g.Vertices() {
			switch prof.Diff(v) {
			case 1:
				plus++
			case -1:
				minus++
			case 0:
			default:
				return false, nil
			}
		}

		return plus == 1 && minus == 1, nil
	}

	odd := 0
	for _, d := range prof.Degree {
		if d%2 != 0 {
			odd++
		}
	}
	if odd != 2 {
		return false, nil
	}

	return degree.IsConnected(g)
}

// HasCycle reports whether g admits an Eulerian cycle (closed walk
// traversing every edge exactly once).
//
// Directed: out-degree equals in-degree at every vertex and the graph is
// weakly connected. Undirected: every degree even and the graph connected.
// A zero-edge graph passes the degree terms vacuously.
//
// Complexity: O(V+E). Pure read of g.
func HasCycle(g *core.Graph) (bool, error) {
	if g == nil {
		return false, ErrGraphNil
	}
	prof, err := degree.Of(g)
	if err != nil {
		return false, err
	}

	if prof.Directed {
		for _, v := range g.Vertices() {
			if prof.Diff(v) != 0 {
				return false, nil
			}
		}
	} else {
		for _, d := range prof.Degree {
			if d%2 != 0 {
				return false, nil
			}
		}
	}

	return degree.IsConnected(g)
}
