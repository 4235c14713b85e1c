// Package core defines the central Graph type: an in-memory adjacency-list
// store for simple directed or undirected graphs.
//
// Each vertex maps to an insertion-ordered sequence of neighbor IDs with
// duplicates suppressed, mirroring the edge when the graph is undirected.
// Query operations are total: asking for the neighbors of an absent vertex
// yields an empty sequence, never an error.
//
// A single sync.RWMutex guards the store, so a graph built once may be read
// by any number of goroutines simultaneously (the decision packages only
// ever read).
//
// Errors:
//
//	ErrEmptyVertexID  - vertex ID is the empty string.
//	ErrVertexNotFound - removal referenced a non-existent vertex.
//	ErrEdgeNotFound   - removal referenced a non-existent edge.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex ID is empty.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")
)

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithDirected sets the directedness of the Graph
// (true = directed, false = undirected).
// Undirected graphs mirror every edge insertion and removal.
func WithDirected(directed bool) GraphOption {
	return func(g *Graph) { g.directed = directed }
}

// Graph is the core in-memory graph data structure.
//
// Adjacency is stored twice: adjacency[v] keeps neighbors in insertion
// order (the order every traversal in this module explores them), and
// present[v] is the matching membership set giving O(1) HasEdge and
// duplicate suppression. Self-loops occupy a single adjacency entry and
// are never mirrored.
type Graph struct {
	mu sync.RWMutex // guards all fields below

	directed bool // whether AddEdge/RemoveEdge mirror the reverse entry

	order     []string                       // vertex IDs in insertion order
	adjacency map[string][]string            // vertex ID → ordered neighbor IDs
	present   map[string]map[string]struct{} // vertex ID → neighbor membership set
}

// NewGraph creates an empty Graph with the given options.
// By default the Graph is undirected.
// Complexity: O(1).
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		adjacency: make(map[string][]string),
		present:   make(map[string]map[string]struct{}),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
