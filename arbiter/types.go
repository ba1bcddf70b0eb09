// Package arbiter defines outcomes, options, and sentinel errors for the
// request protocol of github.com/katalvlaran/banker.
package arbiter

import (
	"errors"
	"sync"

	"github.com/katalvlaran/banker/state"
)

// Sentinel errors for arbiter construction and requests.
var (
	// ErrNilState is returned when a nil *state.State is passed to New.
	ErrNilState = errors.New("arbiter: state is nil")
	// ErrUnsafeState is returned by New when the initial state already fails
	// the safety check — there is no point arbitrating a lost position.
	ErrUnsafeState = errors.New("arbiter: initial state is unsafe")
	// ErrExceedsMaxDemand is returned when a process requests more than its
	// remaining Need — more than it ever declared it would use.
	ErrExceedsMaxDemand = errors.New("arbiter: request exceeds declared maximum demand")
)

// Outcome classifies the result of a Request call.
type Outcome int

const (
	// Granted: the request was committed; Allocation and Available now
	// reflect it and the state remains safe.
	Granted Outcome = iota
	// Waiting: Available cannot cover the request right now. The committed
	// state is untouched; retry once resources are released.
	Waiting
	// Denied: granting would produce a state from which deadlock is
	// unavoidable. The committed state is untouched; do not retry unchanged.
	Denied
)

// String returns the lowercase name of the outcome.
func (o Outcome) String() string {
	switch o {
	case Granted:
		return "granted"
	case Waiting:
		return "waiting"
	case Denied:
		return "denied"
	default:
		return "unknown"
	}
}

// Decision is the full result of a Request call.
type Decision struct {
	// Outcome is Granted, Waiting, or Denied.
	Outcome Outcome

	// SafeSequence is the witness completion order proving the post-grant
	// state safe. Non-nil only when Outcome is Granted.
	SafeSequence []int
}

// Option configures optional behavior of an Arbiter.
// Use with New(s, opts...).
type Option func(*Options)

// Options holds configurable parameters for an Arbiter.
type Options struct {
	// OnDecision, if non-nil, is invoked after every Request decision with
	// the requesting process, the request vector, and the Decision.
	// It runs inside the arbiter's critical section; keep it O(1)-ish and
	// never call back into the same Arbiter from it.
	OnDecision func(p int, req []int, d Decision)
}

// DefaultOptions returns an Options struct with no hooks installed.
func DefaultOptions() Options {
	return Options{OnDecision: nil}
}

// WithOnDecision returns an Option that installs fn as a decision hook.
func WithOnDecision(fn func(p int, req []int, d Decision)) Option {
	return func(o *Options) {
		o.OnDecision = fn
	}
}

// Arbiter serializes request and release traffic against one *state.State.
// Safe for concurrent use; every evaluation sees a consistent view because
// Request and Release hold the same mutex end to end.
type Arbiter struct {
	mu    sync.Mutex
	state *state.State
	opts  Options
}
