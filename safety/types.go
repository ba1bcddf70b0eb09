// Package safety defines the Result type, options, and sentinel errors for
// the safety check of github.com/katalvlaran/banker.
package safety

import "errors"

// ErrNilState is returned when a nil *state.State is passed to Evaluate.
var ErrNilState = errors.New("safety: state is nil")

// Result captures the outcome of a safety check.
type Result struct {
	// Safe reports whether every process can run to completion from the
	// evaluated state — i.e. whether a deadlock-free completion order exists.
	Safe bool

	// Sequence is the witness completion order: process indices in the order
	// the scan proved them finishable. When Safe is true it contains every
	// process exactly once; when Safe is false it holds the (possibly empty)
	// prefix of processes that could still finish before the scan stalled.
	Sequence []int
}

// Option configures optional behavior of Evaluate.
// Use with Evaluate(s, opts...).
type Option func(*Options)

// Options holds configurable parameters for the safety check.
// Complexity remains O(P²·R) when hooks are O(1).
type Options struct {
	// OnFinish, if non-nil, is invoked with each process index the moment it
	// is marked finishable, in the same order as Result.Sequence.
	OnFinish func(p int)
}

// DefaultOptions returns an Options struct with no hooks installed.
func DefaultOptions() Options {
	return Options{OnFinish: nil}
}

// WithOnFinish returns an Option that installs fn as a completion hook.
// The hook fires once per finishable process, in witness order.
func WithOnFinish(fn func(p int)) Option {
	return func(o *Options) {
		o.OnFinish = fn
	}
}
