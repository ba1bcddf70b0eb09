// Package state owns the resource-allocation bookkeeping of the Banker's
// algorithm: per-process maximum demand, current allocation, and system-wide
// availability, with the Need matrix derived on demand.
//
// What:
//
//   - State wraps the Max, Allocation and Available matrices behind accessors
//     that return defensive copies.
//   - Need[p][r] = Max[p][r] − Allocation[p][r] is computed, never stored.
//   - ApplyGrant / ApplyRelease are the only two mutating operations; both
//     validate their preconditions and mutate atomically (all or nothing).
//   - Snapshot produces an independent copy of the mutable matrices so a
//     caller can trial a grant without touching the committed state.
//
// Why:
//
//   - Deadlock avoidance: the safety check and the request protocol both
//     consume a consistent view of exactly these matrices.
//   - Invariant preservation: funneling every mutation through two guarded
//     operations keeps conservation and Need ≥ 0 true at every call boundary.
//
// Invariants (hold after New and after every successful mutation):
//
//  1. 0 ≤ Allocation[p][r] ≤ Max[p][r] for all p, r.
//  2. Available[r] + Σ_p Allocation[p][r] = Total[r] for all r.
//  3. Need[p][r] ≥ 0 for all p, r.
//
// Complexity:
//
//   - New:          O(P×R) time and memory.
//   - Snapshot:     O(P×R) time and memory (Max is shared, not copied).
//   - ApplyGrant:   O(R) time.
//   - ApplyRelease: O(R) time.
//   - Accessors:    O(R) per row copy, O(P×R) per matrix copy.
//
// Errors:
//
//   - ErrNonRectangular: matrix rows disagree with the resource count.
//   - ErrNegativeUnits: a negative entry in any input matrix or vector.
//   - ErrAllocExceedsMax: initial Allocation above declared Max.
//   - ErrAllocExceedsTotal: initial Allocation above the system Total.
//   - ErrProcessIndex: process index out of range.
//   - ErrVectorLength: request/release vector length ≠ resource count.
//   - ErrInvalidRequest: grant above remaining Need or current Available.
//   - ErrInvalidRelease: release above current Allocation.
package state
