// Package hamilton decides whether a core.Graph admits a Hamiltonian path
// or cycle — a simple path (or closed tour) visiting every vertex exactly
// once.
//
// What
//
//   - HasPath(g, opts...): true iff some simple path spans all vertices.
//   - HasCycle(g, opts...): same search, additionally requiring the last
//     vertex to be adjacent to the first once the path spans the graph.
//
// How
//
//	Exhaustive depth-first backtracking: every vertex is tried as a start,
//	the current path is extended by any unvisited neighbor of its last
//	vertex, and the search backtracks on dead ends. The only pruning
//	required for correctness is skipping vertices already on the path;
//	WithConnectivityPruning adds an optional O(V+E) fast-fail for
//	disconnected graphs that never changes a decision.
//
// Determinism
//
//	Neighbor exploration follows the graph's stored adjacency order
//	(insertion order), so which witness path is examined first is fully
//	reproducible for a fixed graph. It affects running time only, never
//	the boolean outcome.
//
// Complexity
//
//	Worst case O(V!) per start vertex — deliberately, with no memoization.
//	Bound the vertex count or supply a cancellable context through
//	WithContext when running against untrusted input. WithIterative swaps
//	the recursive engine for an explicit-stack worklist, trading call-stack
//	depth for a heap allocation, for graphs deep enough to threaten the
//	goroutine stack.
//
// Boundaries
//
//   - 0 vertices: path and cycle are vacuously true (a length-0 path spans
//     all zero vertices).
//   - 1 vertex: a path trivially exists; a cycle requires a self-loop,
//     which the closing adjacency check handles with no special case.
//
// Errors
//
//   - ErrGraphNil        if a nil *core.Graph is passed.
//   - ctx.Err()          if a WithContext context is cancelled mid-search.
package hamilton
