// Package safety implements the safety check of the Banker's algorithm:
// given a resource-allocation state, decide whether some ordering of process
// completions exists that avoids deadlock, and produce that ordering as a
// witness.
//
// What:
//
//   - Evaluate consumes a *state.State and returns a Result: Safe plus the
//     witness completion Sequence when the state is safe.
//   - The scan is deterministic: unfinished processes are examined in
//     ascending index order and the scan restarts after every completion,
//     so the witness is the lexicographically-smallest one reachable by
//     that scan discipline.
//   - Evaluate never mutates the given state; it works on a private copy
//     of the Available vector.
//
// Why:
//
//   - The request protocol (package arbiter) decides grant vs deny by
//     running Evaluate against a hypothetical post-grant snapshot.
//   - A standalone verdict on a configured initial state is the classic
//     textbook exercise: safe or not, and in which order processes finish.
//
// Complexity:
//
//   - Evaluate: O(P²·R) time (up to P passes, each scanning up to P
//     processes, each comparison O(R)), O(P×R) extra memory for the
//     working copies.
//
// Options:
//
//   - WithOnFinish: hook invoked with each process index the moment it is
//     proven finishable, in witness order.
//
// Errors:
//
//   - ErrNilState: the given state is nil.
package safety
