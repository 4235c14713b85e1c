// Package euler decides whether a core.Graph admits an Eulerian path or an
// Eulerian cycle — a walk traversing every edge exactly once, closed or not.
//
// No search is involved: both decisions are closed-form tests over the
// degree profile plus (where applicable) a connectivity check, so every
// call runs in O(V+E).
//
// Criteria
//
//	HasPath, directed:    exactly one vertex with out−in = +1, exactly one
//	                      with out−in = −1, every other balanced.
//	HasPath, undirected:  exactly two odd-degree vertices AND connected.
//	HasCycle, directed:   out = in at every vertex AND weakly connected.
//	HasCycle, undirected: every degree even AND connected.
//
// Known divergence
//
//	The directed HasPath criterion deliberately performs NO connectivity
//	check, reproducing the reference behavior this package is modeled on.
//	A graph satisfying the degree condition in one weak component while a
//	separate balanced component holds more edges is reported as having a
//	path even though no single walk covers every edge. Callers needing the
//	textbook criterion should additionally require degree.IsConnected.
//
// Zero-edge graphs satisfy the cycle degree conditions vacuously; only the
// connectivity term can reject them.
//
// Errors
//
//   - ErrGraphNil if a nil *core.Graph is passed.
package euler
