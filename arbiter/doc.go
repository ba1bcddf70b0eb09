// Package arbiter implements the request protocol of the Banker's
// algorithm: the only sanctioned way to mutate a committed resource state.
//
// What:
//
//   - Arbiter owns a *state.State and serializes Request and Release calls
//     against it under a single mutex.
//   - Request trials every candidate grant on a snapshot, runs the safety
//     check, and commits only when the hypothetical post-grant state is
//     provably safe.
//   - Three modeled outcomes: Granted (with the witness sequence), Waiting
//     (insufficient Available — retry later), Denied (the grant would make
//     deadlock unavoidable — never retry unchanged).
//
// Why:
//
//   - Invariant 4 of the model: a committed state is never unsafe. The
//     snapshot-then-commit discipline makes that structural rather than
//     hoped-for.
//   - Waiting and Denied are deliberately distinct results, not errors:
//     a Waiting caller retries once resources free up, a Denied caller
//     must not retry the same request against the same state.
//
// Complexity:
//
//   - Request: O(P²·R) (dominated by the safety check), O(P×R) memory for
//     the snapshot.
//   - Release: O(R).
//
// Options:
//
//   - WithOnDecision: hook invoked with every Request decision — a seam for
//     logging or metrics without coupling the core to either.
//
// Errors:
//
//   - ErrNilState: a nil *state.State passed to New.
//   - ErrUnsafeState: the configured initial state already fails the safety
//     check; an Arbiter refuses to manage it.
//   - ErrExceedsMaxDemand: a request above the process's remaining Need —
//     a caller bug, surfaced immediately, no state change.
//
// Hard state errors (bad index, wrong vector length, negative units,
// over-release) surface unchanged from package state.
package arbiter
