package state

// checkVector validates the process index and the shape/sign of a request
// or release vector. Shared guard for both mutating operations.
// Complexity: O(R).
func (s *State) checkVector(p int, vec []int) error {
	if p < 0 || p >= s.processes {
		return ErrProcessIndex
	}
	if len(vec) != s.resources {
		return ErrVectorLength
	}
	for _, units := range vec {
		if units < 0 {
			return ErrNegativeUnits
		}
	}

	return nil
}

// ApplyGrant moves req units of each resource from Available to process p's
// Allocation. Preconditions: req[r] ≤ Need(p)[r] and req[r] ≤ Available[r]
// for all r; violating either yields ErrInvalidRequest with no mutation.
//
// ApplyGrant does not run the safety check — it is the raw bookkeeping step.
// The arbiter package trials a grant on a Snapshot first and commits only
// when the resulting state is proven safe.
//
// Complexity: O(R).
func (s *State) ApplyGrant(p int, req []int) error {
	if err := s.checkVector(p, req); err != nil {
		return err
	}
	// Validate both preconditions fully before touching anything.
	for j := 0; j < s.resources; j++ {
		if req[j] > s.max[p][j]-s.alloc[p][j] || req[j] > s.avail[j] {
			return ErrInvalidRequest
		}
	}
	for j := 0; j < s.resources; j++ {
		s.avail[j] -= req[j]
		s.alloc[p][j] += req[j]
	}

	return nil
}

// ApplyRelease moves rel units of each resource from process p's Allocation
// back to Available. Precondition: rel[r] ≤ Allocation[p][r] for all r;
// violating it yields ErrInvalidRelease with no mutation.
//
// Releases never require a safety check: growing Available can never turn
// a safe state unsafe.
//
// Complexity: O(R).
func (s *State) ApplyRelease(p int, rel []int) error {
	if err := s.checkVector(p, rel); err != nil {
		return err
	}
	for j := 0; j < s.resources; j++ {
		if rel[j] > s.alloc[p][j] {
			return ErrInvalidRelease
		}
	}
	for j := 0; j < s.resources; j++ {
		s.alloc[p][j] -= rel[j]
		s.avail[j] += rel[j]
	}

	return nil
}
