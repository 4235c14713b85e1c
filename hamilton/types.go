// Package hamilton defines options and error values for the Hamiltonian
// existence search.
package hamilton

import (
	"context"
	"errors"
)

// ErrGraphNil is returned when a nil *core.Graph is passed to HasPath or HasCycle.
var ErrGraphNil = errors.New("hamilton: graph is nil")

// Option configures optional behavior of the Hamiltonian search.
// Use with HasPath(g, opts...) or HasCycle(g, opts...).
type Option func(*Options)

// Options holds configurable parameters for the search. None of them can
// change a decision result; they control cancellation and engine choice.
type Options struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	// Cancelling the context aborts the search with ctx.Err().
	Ctx context.Context

	// Iterative selects the explicit-stack worklist engine instead of the
	// recursive one, avoiding deep call stacks on path-shaped graphs.
	Iterative bool

	// ConnectivityPruning enables a degree-analyzer fast-fail: a graph of
	// two or more vertices that is not (weakly) connected cannot carry a
	// spanning path, so the search is skipped entirely.
	ConnectivityPruning bool
}

// DefaultOptions returns Options with a background context, the recursive
// engine, and no connectivity fast-fail.
func DefaultOptions() Options {
	return Options{
		Ctx:                 context.Background(),
		Iterative:           false,
		ConnectivityPruning: false,
	}
}

// WithContext returns an Option that sets the Context for the search.
// Passing a nil context has no effect (Background is retained).
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithIterative returns an Option selecting the explicit-stack engine.
func WithIterative() Option {
	return func(o *Options) {
		o.Iterative = true
	}
}

// WithConnectivityPruning returns an Option enabling the disconnection
// fast-fail before the exponential search starts.
func WithConnectivityPruning() Option {
	return func(o *Options) {
		o.ConnectivityPruning = true
	}
}
