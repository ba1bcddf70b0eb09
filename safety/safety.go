package safety

import (
	"github.com/katalvlaran/banker/state"
)

// Evaluate — the Banker's safety check.
//
// Description:
//
//	A state is safe when at least one ordering of the remaining process
//	completions exists in which every process can obtain its full declared
//	demand, run, and release everything it holds. Evaluate searches for such
//	an ordering by repeatedly simulating the completion of any process whose
//	remaining Need fits inside the working Available vector.
//
// Algorithm Outline:
//  1. Copy Available into a working vector; mark all P processes unfinished.
//  2. Scan unfinished processes in ascending index order for one whose
//     Need row is ≤ the working vector component-wise.
//  3. If found: add its full Allocation row back into the working vector
//     (simulating completion and release), mark it finished, append it to
//     the witness sequence, and restart the scan from index 0.
//  4. If a full scan finds no candidate, stop.
//  5. Safe ⇔ all P processes finished.
//
// The restart-from-zero discipline makes the result deterministic and the
// witness the lexicographically-smallest sequence that discipline can reach.
//
// Complexity:
//
//	Time   = O(P²·R)
//	Memory = O(P×R) for the working copies of Need and Allocation
//
// Edge cases: zero processes are trivially safe with an empty (non-nil)
// sequence; a resource kind with zero total units constrains nothing as
// long as no process needs it.
//
// Errors:
//   - ErrNilState — s is nil.
func Evaluate(s *state.State, opts ...Option) (Result, error) {
	if s == nil {
		return Result{}, ErrNilState
	}
	options := DefaultOptions()
	for _, opt := range opts {
		opt(&options)
	}

	p, r := s.NumProcesses(), s.NumResources()
	work := s.Available()
	need := s.NeedMatrix()
	alloc := s.AllocationMatrix()
	finished := make([]bool, p)
	sequence := make([]int, 0, p)

	// Each pass either finishes one more process or proves a fixpoint.
	progress := true
	for progress {
		progress = false
		for i := 0; i < p; i++ {
			if finished[i] || !fits(need[i], work) {
				continue
			}
			// Simulate completion: the process releases all it holds.
			for j := 0; j < r; j++ {
				work[j] += alloc[i][j]
			}
			finished[i] = true
			sequence = append(sequence, i)
			if options.OnFinish != nil {
				options.OnFinish(i)
			}
			progress = true

			break // restart the scan from index 0
		}
	}

	return Result{Safe: len(sequence) == p, Sequence: sequence}, nil
}

// fits reports whether need ≤ avail component-wise.
// Complexity: O(R).
func fits(need, avail []int) bool {
	for j := range need {
		if need[j] > avail[j] {
			return false
		}
	}

	return true
}
