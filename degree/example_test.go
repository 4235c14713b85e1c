package degree_test

import (
	"fmt"

	"github.com/MohamammadMustafaHakimi/VizGraph/core"
	"github.com/MohamammadMustafaHakimi/VizGraph/degree"
)

// ExampleOf profiles a small directed graph.
func ExampleOf() {
	g := core.NewGraph(core.WithDirected(true))
	_ = g.AddEdge("0", "1")
	_ = g.AddEdge("1", "2")
	_ = g.AddEdge("2", "0")

	p, _ := degree.Of(g)
	for _, v := range g.Vertices() {
		fmt.Printf("%s: out=%d in=%d\n", v, p.Out[v], p.In[v])
	}
	// Output:
	// 0: out=1 in=1
	// 1: out=1 in=1
	// 2: out=1 in=1
}

// ExampleIsConnected shows weak connectivity of a directed chain.
func ExampleIsConnected() {
	g := core.NewGraph(core.WithDirected(true))
	_ = g.AddEdge("0", "1")
	_ = g.AddEdge("1", "2")

	ok, _ := degree.IsConnected(g)
	fmt.Println("weakly connected:", ok)

	_ = g.AddVertex("island")
	ok, _ = degree.IsConnected(g)
	fmt.Println("with isolated vertex:", ok)
	// Output:
	// weakly connected: true
	// with isolated vertex: false
}
