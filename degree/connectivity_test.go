package degree_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MohamammadMustafaHakimi/VizGraph/core"
	"github.com/MohamammadMustafaHakimi/VizGraph/degree"
)

func TestIsConnected_NilGraph(t *testing.T) {
	ok, err := degree.IsConnected(nil)
	assert.False(t, ok)
	assert.ErrorIs(t, err, degree.ErrGraphNil)
}

func TestIsConnected_TrivialGraphs(t *testing.T) {
	empty := core.NewGraph()
	ok, err := degree.IsConnected(empty)
	require.NoError(t, err)
	assert.True(t, ok, "zero vertices are vacuously connected")

	single := core.NewGraph()
	require.NoError(t, single.AddVertex("only"))
	ok, err = degree.IsConnected(single)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestIsConnected_Undirected(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("a", "b"))
	require.NoError(t, g.AddEdge("b", "c"))

	ok, err := degree.IsConnected(g)
	require.NoError(t, err)
	assert.True(t, ok)

	// Isolated vertex breaks connectivity.
	require.NoError(t, g.AddVertex("d"))
	ok, err = degree.IsConnected(g)
	require.NoError(t, err)
	assert.False(t, ok)
}

// A directed chain is weakly connected even though no vertex reaches all
// others along edge directions.
func TestIsConnected_DirectedWeak(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	require.NoError(t, g.AddEdge("0", "1"))
	require.NoError(t, g.AddEdge("2", "1"))

	ok, err := degree.IsConnected(g)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestIsConnected_DirectedDisjointComponents(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	require.NoError(t, g.AddEdge("a", "b"))
	require.NoError(t, g.AddEdge("c", "d"))

	ok, err := degree.IsConnected(g)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestIsConnected_ReadOnly(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("a", "b"))
	before := g.String()

	_, err := degree.IsConnected(g)
	require.NoError(t, err)
	assert.Equal(t, before, g.String())
}
