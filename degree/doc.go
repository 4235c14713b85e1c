// Package degree analyzes per-vertex degrees and connectivity of a core.Graph.
//
// What
//
//   - Of(g) computes a Profile: out-degree and in-degree per vertex for
//     directed graphs, a single degree per vertex for undirected graphs.
//   - IsConnected(g) decides reachability-based connectivity via BFS.
//     Directed graphs are tested for WEAK connectivity (edge direction
//     ignored), which is the notion the Eulerian criteria need; undirected
//     graphs get standard connectivity.
//
// Self-loops
//
//	In undirected mode a self-loop contributes 1 to the vertex's degree,
//	not the conventional 2: the loop occupies a single stored adjacency
//	entry and is counted as such. Callers relying on the textbook
//	convention must adjust; the Eulerian decider in this module is built
//	against this counting.
//
// Guarantees
//
//	Both functions are pure reads of a Graph snapshot, recomputed on every
//	call (never cached stale), and run in O(V + E) time and O(V) memory.
//
// Errors
//
//   - ErrGraphNil if a nil *core.Graph is passed.
package degree
