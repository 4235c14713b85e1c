package hamilton_test

import (
	"context"
	"fmt"
	"time"

	"github.com/MohamammadMustafaHakimi/VizGraph/core"
	"github.com/MohamammadMustafaHakimi/VizGraph/hamilton"
)

// ExampleHasPath checks a small undirected path graph.
func ExampleHasPath() {
	g := core.NewGraph()
	_ = g.AddEdge("0", "1")
	_ = g.AddEdge("1", "2")

	ok, _ := hamilton.HasPath(g)
	fmt.Println("hamiltonian path:", ok)
	// Output:
	// hamiltonian path: true
}

// ExampleHasCycle bounds the exponential search with a deadline, the
// recommended pattern for untrusted input sizes.
func ExampleHasCycle() {
	g := core.NewGraph(core.WithDirected(true))
	_ = g.AddEdge("0", "1")
	_ = g.AddEdge("1", "2")
	_ = g.AddEdge("2", "0")

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	ok, err := hamilton.HasCycle(g, hamilton.WithContext(ctx), hamilton.WithIterative())
	fmt.Println("hamiltonian cycle:", ok, err)
	// Output:
	// hamiltonian cycle: true <nil>
}
