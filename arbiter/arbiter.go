package arbiter

import (
	"github.com/katalvlaran/banker/safety"
	"github.com/katalvlaran/banker/state"
)

// New constructs an Arbiter over s. The initial state is safety-checked up
// front: an Arbiter never manages a state the safety engine rejects.
//
// Returns ErrNilState for a nil state and ErrUnsafeState when the initial
// configuration already fails the safety check.
//
// Complexity: O(P²·R) for the initial check.
func New(s *state.State, opts ...Option) (*Arbiter, error) {
	if s == nil {
		return nil, ErrNilState
	}
	res, err := safety.Evaluate(s)
	if err != nil {
		return nil, err
	}
	if !res.Safe {
		return nil, ErrUnsafeState
	}
	options := DefaultOptions()
	for _, opt := range opts {
		opt(&options)
	}

	return &Arbiter{state: s, opts: options}, nil
}

// Request asks for req units of each resource on behalf of process p.
//
// Protocol:
//  1. req above the remaining Need anywhere → ErrExceedsMaxDemand,
//     committed state untouched.
//  2. req above Available anywhere → Decision{Waiting}, committed state
//     untouched. Not an error: retry once resources are released.
//  3. Otherwise the grant is trialed on a snapshot and the snapshot is
//     safety-checked. Safe → the grant is committed and the witness
//     sequence returned; unsafe → the snapshot is discarded and the
//     decision is Denied, committed state untouched.
//
// Complexity: O(P²·R) time, O(P×R) memory for the snapshot.
func (a *Arbiter) Request(p int, req []int) (Decision, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	need, err := a.state.Need(p)
	if err != nil {
		return Decision{}, err
	}
	if len(req) != len(need) {
		return Decision{}, state.ErrVectorLength
	}
	avail := a.state.Available()
	insufficient := false
	for j, units := range req {
		if units < 0 {
			return Decision{}, state.ErrNegativeUnits
		}
		if units > need[j] {
			return Decision{}, ErrExceedsMaxDemand
		}
		if units > avail[j] {
			insufficient = true
		}
	}
	if insufficient {
		return a.decide(p, req, Decision{Outcome: Waiting}), nil
	}

	// Trial the grant on a snapshot; the committed state stays untouched
	// until the hypothetical state is proven safe.
	trial := a.state.Snapshot()
	if err = trial.ApplyGrant(p, req); err != nil {
		return Decision{}, err
	}
	res, err := safety.Evaluate(trial)
	if err != nil {
		return Decision{}, err
	}
	if !res.Safe {
		return a.decide(p, req, Decision{Outcome: Denied}), nil
	}

	// Commit. The preconditions were validated under this same lock, so the
	// re-application onto the committed state cannot fail.
	if err = a.state.ApplyGrant(p, req); err != nil {
		return Decision{}, err
	}

	return a.decide(p, req, Decision{Outcome: Granted, SafeSequence: res.Sequence}), nil
}

// Release returns rel units of each resource from process p to the pool.
// Delegates to state.ApplyRelease under the arbiter's mutex; no safety
// check is needed, since growing Available cannot make a safe state unsafe.
//
// Complexity: O(R).
func (a *Arbiter) Release(p int, rel []int) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	return a.state.ApplyRelease(p, rel)
}

// Snapshot returns an independent copy of the committed state, taken under
// the arbiter's mutex. Observers inspect the copy at leisure without
// blocking request traffic.
//
// Complexity: O(P×R).
func (a *Arbiter) Snapshot() *state.State {
	a.mu.Lock()
	defer a.mu.Unlock()

	return a.state.Snapshot()
}

// decide fires the OnDecision hook (if any) and passes d through.
func (a *Arbiter) decide(p int, req []int, d Decision) Decision {
	if a.opts.OnDecision != nil {
		a.opts.OnDecision(p, req, d)
	}

	return d
}
