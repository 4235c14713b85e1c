// Package vizgraph is an in-memory toolkit for building simple directed or
// undirected graphs and deciding their classical traversability properties:
// Hamiltonian paths/cycles (visit every vertex once) and Eulerian
// paths/cycles (traverse every edge once).
//
// What you get:
//
//   - Core primitives: create vertices & edges, duplicate-suppressed
//     adjacency, safe concurrent reads under locks
//   - Degree analysis: in/out-degree profiles recomputed on demand
//   - Connectivity: standard (undirected) and weak (directed) reachability
//   - Eulerian decisions: linear-time closed-form degree/connectivity tests
//   - Hamiltonian decisions: exhaustive backtracking over simple paths,
//     with a recursive and an explicit-stack iterative engine
//   - Edge-list I/O: the two-column `source,destination` CSV format
//
// Everything is organized under flat subpackages:
//
//	core/     — fundamental Graph type & thread-safe primitives
//	degree/   — degree profiles and connectivity analysis
//	euler/    — Eulerian path/cycle existence
//	hamilton/ — Hamiltonian path/cycle existence
//	edgelist/ — CSV edge-list import/export
//	cmd/      — the vizgraph command-line driver
//
// Quick ASCII example:
//
//	    0───1
//	     \  │
//	      \ │
//	        2
//
//	a triangle: Hamiltonian cycle yes, Eulerian cycle yes (all degrees even).
//
// The decision functions are pure: they never mutate the graph, so any
// number of them may run concurrently against the same instance. Hamiltonian
// search is exponential in the worst case; bound your vertex count or pass a
// context via hamilton.WithContext when calling it on untrusted input.
//
//	go get github.com/MohamammadMustafaHakimi/VizGraph
package vizgraph
