package degree

import (
	"errors"

	"github.com/MohamammadMustafaHakimi/VizGraph/core"
)

// ErrGraphNil is returned when a nil *core.Graph is passed to Of or IsConnected.
var ErrGraphNil = errors.New("degree: graph is nil")

// Profile holds the degrees of every vertex of one graph snapshot.
// For directed graphs Out and In are populated; for undirected graphs
// only Degree is. A Profile is derived data: build a fresh one after any
// mutation, it is never recomputed for you.
type Profile struct {
	// Directed records the mode of the graph the profile was taken from.
	Directed bool

	// Out maps vertex ID → out-degree (directed mode).
	Out map[string]int

	// In maps vertex ID → in-degree (directed mode).
	In map[string]int

	// Degree maps vertex ID → degree (undirected mode).
	// A self-loop counts 1, matching its single stored adjacency entry.
	Degree map[string]int
}

// Diff returns out-degree minus in-degree for vertex id (directed profiles).
// Unknown vertices yield 0.
func (p *Profile) Diff(id string) int {
	return p.Out[id] - p.In[id]
}

// Of computes the degree Profile of g in a single O(V+E) pass.
// Returns ErrGraphNil if g is nil.
func Of(g *core.Graph) (*Profile, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	vertices := g.Vertices()
	p := &Profile{Directed: g.Directed()}

	if !p.Directed {
		p.Degree = make(map[string]int, len(vertices))
		for _, v := range vertices {
			p.Degree[v] = len(g.Neighbors(v))
		}

		return p, nil
	}

	p.Out = make(map[string]int, len(vertices))
	p.In = make(map[string]int, len(vertices))
	for _, v := range vertices {
		p.Out[v] = 0
		p.In[v] = 0
	}
	for _, v := range vertices {
		nbs := g.Neighbors(v)
		p.Out[v] = len(nbs)
		for _, nb := range nbs {
			p.In[nb]++
		}
	}

	return p, nil
}
