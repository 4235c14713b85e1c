package degree_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MohamammadMustafaHakimi/VizGraph/core"
	"github.com/MohamammadMustafaHakimi/VizGraph/degree"
)

func TestOf_NilGraph(t *testing.T) {
	p, err := degree.Of(nil)
	assert.Nil(t, p)
	assert.ErrorIs(t, err, degree.ErrGraphNil)
}

func TestOf_Directed(t *testing.T) {
	// 0→1, 1→2, 2→0, plus 0→2.
	g := core.NewGraph(core.WithDirected(true))
	require.NoError(t, g.AddEdge("0", "1"))
	require.NoError(t, g.AddEdge("1", "2"))
	require.NoError(t, g.AddEdge("2", "0"))
	require.NoError(t, g.AddEdge("0", "2"))

	p, err := degree.Of(g)
	require.NoError(t, err)
	assert.True(t, p.Directed)
	assert.Equal(t, map[string]int{"0": 2, "1": 1, "2": 1}, p.Out)
	assert.Equal(t, map[string]int{"0": 1, "1": 1, "2": 2}, p.In)
	assert.Equal(t, 1, p.Diff("0"))
	assert.Equal(t, -1, p.Diff("2"))
	assert.Nil(t, p.Degree)
}

func TestOf_DirectedIsolatedVertexHasEntries(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	require.NoError(t, g.AddVertex("lone"))

	p, err := degree.Of(g)
	require.NoError(t, err)
	out, ok := p.Out["lone"]
	assert.True(t, ok)
	assert.Zero(t, out)
	in, ok := p.In["lone"]
	assert.True(t, ok)
	assert.Zero(t, in)
}

func TestOf_UndirectedPathGraph(t *testing.T) {
	// 0-1, 1-2: degrees 1, 2, 1.
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("0", "1"))
	require.NoError(t, g.AddEdge("1", "2"))

	p, err := degree.Of(g)
	require.NoError(t, err)
	assert.False(t, p.Directed)
	assert.Equal(t, map[string]int{"0": 1, "1": 2, "2": 1}, p.Degree)
	assert.Nil(t, p.Out)
	assert.Nil(t, p.In)
}

// A self-loop counts 1, not the textbook 2: it is one stored adjacency entry.
func TestOf_SelfLoopCountsOnce(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("0", "0"))

	p, err := degree.Of(g)
	require.NoError(t, err)
	assert.Equal(t, 1, p.Degree["0"])

	require.NoError(t, g.AddEdge("0", "1"))
	p, err = degree.Of(g)
	require.NoError(t, err)
	assert.Equal(t, 2, p.Degree["0"])
}

func TestOf_RecomputedNotStale(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("a", "b"))

	before, err := degree.Of(g)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge("a", "c"))
	after, err := degree.Of(g)
	require.NoError(t, err)

	assert.Equal(t, 1, before.Degree["a"], "old profile is a snapshot")
	assert.Equal(t, 2, after.Degree["a"])
}
