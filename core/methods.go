// Package core: Graph method implementations.
//
// All mutators take the write lock; all queries take the read lock and are
// total (absent vertices behave as isolated). Adjacency order is insertion
// order, which makes every traversal over a fixed Graph deterministic.

package core

import (
	"fmt"
	"strings"
)

// AddVertex inserts a new vertex with the given ID into the Graph.
// If the vertex already exists, this is a no-op (idempotent).
// Returns ErrEmptyVertexID if id is empty.
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	g.ensureVertex(id)

	return nil
}

// ensureVertex registers id if absent. Caller must hold the write lock.
func (g *Graph) ensureVertex(id string) {
	if _, exists := g.present[id]; exists {
		return
	}
	g.order = append(g.order, id)
	g.adjacency[id] = nil
	g.present[id] = make(map[string]struct{})
}

// AddEdge creates an edge from 'from' to 'to', creating either endpoint if
// it does not exist yet. A duplicate edge is silently suppressed. When the
// Graph is undirected the reverse entry is mirrored; self-loops are stored
// as a single entry in either mode.
// Returns ErrEmptyVertexID if either endpoint ID is empty.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string) error {
	if from == "" || to == "" {
		return ErrEmptyVertexID
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	g.ensureVertex(from)
	g.ensureVertex(to)

	if _, dup := g.present[from][to]; !dup {
		g.adjacency[from] = append(g.adjacency[from], to)
		g.present[from][to] = struct{}{}
	}

	// Mirror for undirected graphs; a self-loop already holds its single
	// entry, so the duplicate check suppresses the mirror naturally.
	if !g.directed {
		if _, dup := g.present[to][from]; !dup {
			g.adjacency[to] = append(g.adjacency[to], from)
			g.present[to][from] = struct{}{}
		}
	}

	return nil
}

// RemoveVertex deletes the vertex and every adjacency reference to it.
// Returns ErrEmptyVertexID if id is empty, ErrVertexNotFound if absent.
// Complexity: O(V + E).
func (g *Graph) RemoveVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, exists := g.present[id]; !exists {
		return ErrVertexNotFound
	}
	delete(g.adjacency, id)
	delete(g.present, id)
	for i, v := range g.order {
		if v == id {
			g.order = append(g.order[:i], g.order[i+1:]...)
			break
		}
	}
	// Drop inbound references from every remaining vertex.
	for v, set := range g.present {
		if _, ok := set[id]; !ok {
			continue
		}
		delete(set, id)
		nbs := g.adjacency[v]
		for i, nb := range nbs {
			if nb == id {
				g.adjacency[v] = append(nbs[:i], nbs[i+1:]...)
				break
			}
		}
	}

	return nil
}

// RemoveEdge deletes the edge from 'from' to 'to' (and its mirror when the
// Graph is undirected). Returns ErrEdgeNotFound if no such edge is stored.
// Complexity: O(deg(from) + deg(to)).
func (g *Graph) RemoveEdge(from, to string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.present[from][to]; !ok {
		return ErrEdgeNotFound
	}
	g.removeEntry(from, to)
	if !g.directed && from != to {
		g.removeEntry(to, from)
	}

	return nil
}

// removeEntry drops the stored adjacency entry from→to.
// Caller must hold the write lock and have verified presence.
func (g *Graph) removeEntry(from, to string) {
	delete(g.present[from], to)
	nbs := g.adjacency[from]
	for i, nb := range nbs {
		if nb == to {
			g.adjacency[from] = append(nbs[:i], nbs[i+1:]...)
			break
		}
	}
}

// Neighbors returns a copy of the neighbor IDs of vertex 'id' in insertion
// order. Unknown or isolated vertices yield an empty slice, never an error.
// Complexity: O(deg(id)).
func (g *Graph) Neighbors(id string) []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	nbs := g.adjacency[id]
	out := make([]string, len(nbs))
	copy(out, nbs)

	return out
}

// Vertices returns all vertex IDs in insertion order.
// Complexity: O(V).
func (g *Graph) Vertices() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]string, len(g.order))
	copy(out, g.order)

	return out
}

// HasVertex reports whether a vertex with the given ID exists.
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, exists := g.present[id]

	return exists
}

// HasEdge reports whether an edge from 'from' to 'to' is stored.
// In undirected graphs the mirror entry makes this symmetric.
// Complexity: O(1).
func (g *Graph) HasEdge(from, to string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, exists := g.present[from][to]

	return exists
}

// VertexCount returns the number of vertices.
// Complexity: O(1).
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.order)
}

// EdgeCount returns the number of stored adjacency entries. In an
// undirected graph each edge contributes two entries (one per direction)
// except self-loops, which contribute one.
// Complexity: O(V).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	total := 0
	for _, nbs := range g.adjacency {
		total += len(nbs)
	}

	return total
}

// Directed reports whether edge insertion/removal is one-way.
// Complexity: O(1).
func (g *Graph) Directed() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.directed
}

// Clone returns a deep copy of the Graph: mode, vertices, and adjacency.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	clone := NewGraph(WithDirected(g.directed))
	clone.order = append([]string(nil), g.order...)
	for v, nbs := range g.adjacency {
		clone.adjacency[v] = append([]string(nil), nbs...)
		set := make(map[string]struct{}, len(nbs))
		for nb := range g.present[v] {
			set[nb] = struct{}{}
		}
		clone.present[v] = set
	}

	return clone
}

// String renders the graph one vertex per line as "v -> n1 n2 ...",
// vertices and neighbors both in insertion order.
// Complexity: O(V + E).
func (g *Graph) String() string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var sb strings.Builder
	for _, v := range g.order {
		fmt.Fprintf(&sb, "%s ->", v)
		for _, nb := range g.adjacency[v] {
			sb.WriteByte(' ')
			sb.WriteString(nb)
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}
