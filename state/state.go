// Package state provides construction, accessors, and snapshots for the
// Banker's-algorithm resource matrices.
package state

// New constructs a State from the declared Max matrix, the initial
// Allocation matrix, and the Total resource vector. Available is derived:
// Available[r] = Total[r] − Σ_p Allocation[p][r].
//
// The inputs are deep-copied to ensure immutability from the outside.
// Zero processes and zero resource kinds are both legal.
//
// Returns ErrNonRectangular if matrix shapes disagree with Total,
// ErrNegativeUnits on any negative entry, ErrAllocExceedsMax if some
// Allocation entry is above Max, and ErrAllocExceedsTotal if some resource
// is over-allocated relative to Total. On error no State is returned.
//
// Complexity: O(P×R) time and memory.
func New(max, alloc [][]int, total []int) (*State, error) {
	p, r := len(max), len(total)
	if len(alloc) != p {
		return nil, ErrNonRectangular
	}
	for _, units := range total {
		if units < 0 {
			return nil, ErrNegativeUnits
		}
	}
	// Deep copy both matrices, validating shape and sign as we go.
	maxCopy := make([][]int, p)
	allocCopy := make([][]int, p)
	for i := 0; i < p; i++ {
		if len(max[i]) != r || len(alloc[i]) != r {
			return nil, ErrNonRectangular
		}
		maxCopy[i] = make([]int, r)
		allocCopy[i] = make([]int, r)
		for j := 0; j < r; j++ {
			if max[i][j] < 0 || alloc[i][j] < 0 {
				return nil, ErrNegativeUnits
			}
			if alloc[i][j] > max[i][j] {
				return nil, ErrAllocExceedsMax
			}
			maxCopy[i][j] = max[i][j]
			allocCopy[i][j] = alloc[i][j]
		}
	}
	// Derive Available from Total minus the column sums of Allocation.
	totalCopy := make([]int, r)
	copy(totalCopy, total)
	avail := make([]int, r)
	for j := 0; j < r; j++ {
		sum := 0
		for i := 0; i < p; i++ {
			sum += allocCopy[i][j]
		}
		if sum > totalCopy[j] {
			return nil, ErrAllocExceedsTotal
		}
		avail[j] = totalCopy[j] - sum
	}
	s := &State{
		processes: p,
		resources: r,
		total:     totalCopy,
		max:       maxCopy,
		alloc:     allocCopy,
		avail:     avail,
	}

	return s, nil
}

// NumProcesses returns P, the number of processes.
// Complexity: O(1).
func (s *State) NumProcesses() int { return s.processes }

// NumResources returns R, the number of resource kinds.
// Complexity: O(1).
func (s *State) NumResources() int { return s.resources }

// Total returns a copy of the fixed total-units vector.
// Complexity: O(R).
func (s *State) Total() []int {
	out := make([]int, s.resources)
	copy(out, s.total)

	return out
}

// Available returns a copy of the current Available vector.
// Complexity: O(R).
func (s *State) Available() []int {
	out := make([]int, s.resources)
	copy(out, s.avail)

	return out
}

// Max returns a copy of process p's declared maximum-demand row.
// Returns ErrProcessIndex if p is out of range.
// Complexity: O(R).
func (s *State) Max(p int) ([]int, error) {
	if p < 0 || p >= s.processes {
		return nil, ErrProcessIndex
	}
	out := make([]int, s.resources)
	copy(out, s.max[p])

	return out, nil
}

// Allocation returns a copy of process p's current allocation row.
// Returns ErrProcessIndex if p is out of range.
// Complexity: O(R).
func (s *State) Allocation(p int) ([]int, error) {
	if p < 0 || p >= s.processes {
		return nil, ErrProcessIndex
	}
	out := make([]int, s.resources)
	copy(out, s.alloc[p])

	return out, nil
}

// Need returns process p's remaining demand: Max[p] − Allocation[p].
// The row is computed on the fly; Need is never stored.
// Returns ErrProcessIndex if p is out of range.
// Complexity: O(R).
func (s *State) Need(p int) ([]int, error) {
	if p < 0 || p >= s.processes {
		return nil, ErrProcessIndex
	}
	out := make([]int, s.resources)
	for j := 0; j < s.resources; j++ {
		out[j] = s.max[p][j] - s.alloc[p][j]
	}

	return out, nil
}

// AllocationMatrix returns a deep copy of the full P×R Allocation matrix.
// Complexity: O(P×R).
func (s *State) AllocationMatrix() [][]int {
	out := make([][]int, s.processes)
	for i := 0; i < s.processes; i++ {
		out[i] = make([]int, s.resources)
		copy(out[i], s.alloc[i])
	}

	return out
}

// NeedMatrix returns the full P×R Need matrix, computed row by row.
// Complexity: O(P×R).
func (s *State) NeedMatrix() [][]int {
	out := make([][]int, s.processes)
	for i := 0; i < s.processes; i++ {
		out[i] = make([]int, s.resources)
		for j := 0; j < s.resources; j++ {
			out[i][j] = s.max[i][j] - s.alloc[i][j]
		}
	}

	return out
}

// Snapshot returns an independent copy of the State: Allocation and
// Available are deep-copied, Max and Total are shared by reference since
// they never change after construction. Mutating the snapshot leaves the
// source untouched and vice versa.
//
// Complexity: O(P×R) time and memory.
func (s *State) Snapshot() *State {
	alloc := make([][]int, s.processes)
	for i := 0; i < s.processes; i++ {
		alloc[i] = make([]int, s.resources)
		copy(alloc[i], s.alloc[i])
	}
	avail := make([]int, s.resources)
	copy(avail, s.avail)

	return &State{
		processes: s.processes,
		resources: s.resources,
		total:     s.total,
		max:       s.max,
		alloc:     alloc,
		avail:     avail,
	}
}

// Equal reports whether two States describe the same allocation situation:
// identical dimensions, Total, Max, Allocation and Available, entry by entry.
// Complexity: O(P×R).
func (s *State) Equal(o *State) bool {
	if o == nil || s.processes != o.processes || s.resources != o.resources {
		return false
	}
	for j := 0; j < s.resources; j++ {
		if s.total[j] != o.total[j] || s.avail[j] != o.avail[j] {
			return false
		}
	}
	for i := 0; i < s.processes; i++ {
		for j := 0; j < s.resources; j++ {
			if s.max[i][j] != o.max[i][j] || s.alloc[i][j] != o.alloc[i][j] {
				return false
			}
		}
	}

	return true
}
