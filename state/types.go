// Package state defines the State type and sentinel errors for the
// resource-allocation bookkeeping of github.com/katalvlaran/banker.
package state

import "errors"

// Sentinel errors for state construction and mutation.
var (
	// ErrNonRectangular indicates a matrix row whose length differs from the
	// resource count implied by the Total vector.
	ErrNonRectangular = errors.New("state: all matrix rows must match the resource count")
	// ErrNegativeUnits indicates a negative entry in an input matrix or vector.
	ErrNegativeUnits = errors.New("state: resource units must be non-negative")
	// ErrAllocExceedsMax indicates an initial Allocation entry above the
	// declared Max for the same process and resource.
	ErrAllocExceedsMax = errors.New("state: allocation exceeds declared maximum demand")
	// ErrAllocExceedsTotal indicates that the initial Allocation of some
	// resource, summed over all processes, exceeds the system Total.
	ErrAllocExceedsTotal = errors.New("state: allocation exceeds total resource units")
	// ErrProcessIndex indicates a process index outside [0, NumProcesses).
	ErrProcessIndex = errors.New("state: process index out of range")
	// ErrVectorLength indicates a request or release vector whose length
	// differs from the resource count.
	ErrVectorLength = errors.New("state: vector length must match the resource count")
	// ErrInvalidRequest indicates a grant above the remaining Need or the
	// current Available — a caller bug, not a modeled "wait" outcome.
	ErrInvalidRequest = errors.New("state: request exceeds need or available")
	// ErrInvalidRelease indicates a release above the current Allocation.
	ErrInvalidRelease = errors.New("state: release exceeds current allocation")
)

// State holds the resource-allocation matrices of the Banker's algorithm.
// The zero value is not usable; construct with New. All fields are
// unexported: reads go through copying accessors, writes through
// ApplyGrant and ApplyRelease only.
//
// max is immutable after construction and shared between a State and its
// snapshots; alloc and avail are owned exclusively by each State.
type State struct {
	processes int     // P: number of processes
	resources int     // R: number of resource kinds
	total     []int   // fixed total units per resource
	max       [][]int // declared maximum demand, P×R, immutable
	alloc     [][]int // current allocation, P×R
	avail     []int   // unallocated units per resource
}
