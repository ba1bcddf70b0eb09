package state_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/banker/state"
)

// assertConservation checks Available[r] + Σ_p Allocation[p][r] = Total[r].
func assertConservation(t *testing.T, s *state.State) {
	t.Helper()
	avail, total := s.Available(), s.Total()
	alloc := s.AllocationMatrix()
	for j := 0; j < s.NumResources(); j++ {
		sum := avail[j]
		for i := 0; i < s.NumProcesses(); i++ {
			sum += alloc[i][j]
		}
		assert.Equalf(t, total[j], sum, "conservation broken for resource %d", j)
	}
}

// assertInvariants checks 0 ≤ Allocation ≤ Max (hence Need ≥ 0) everywhere.
func assertInvariants(t *testing.T, s *state.State) {
	t.Helper()
	for p := 0; p < s.NumProcesses(); p++ {
		alloc, err := s.Allocation(p)
		require.NoError(t, err)
		max, err := s.Max(p)
		require.NoError(t, err)
		need, err := s.Need(p)
		require.NoError(t, err)
		for j := range alloc {
			assert.GreaterOrEqual(t, alloc[j], 0)
			assert.LessOrEqual(t, alloc[j], max[j])
			assert.GreaterOrEqual(t, need[j], 0)
		}
	}
	assertConservation(t, s)
}

//----------------------------------------------------------------------------//
// ApplyGrant
//----------------------------------------------------------------------------//

// TestApplyGrant_Success moves units from Available to the process.
func TestApplyGrant_Success(t *testing.T) {
	s := newClassic(t)
	require.NoError(t, s.ApplyGrant(1, []int{1, 0, 2}))

	assert.Equal(t, []int{2, 3, 0}, s.Available())
	row, err := s.Allocation(1)
	require.NoError(t, err)
	assert.Equal(t, []int{3, 0, 2}, row)
	row, err = s.Need(1)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 2, 0}, row)
	assertInvariants(t, s)
}

// TestApplyGrant_ZeroVector is always legal and a no-op.
func TestApplyGrant_ZeroVector(t *testing.T) {
	s := newClassic(t)
	before := s.Snapshot()
	require.NoError(t, s.ApplyGrant(0, []int{0, 0, 0}))
	assert.True(t, s.Equal(before))
}

// TestApplyGrant_Errors verifies guards and that failures mutate nothing.
func TestApplyGrant_Errors(t *testing.T) {
	cases := []struct {
		name string
		p    int
		req  []int
		err  error
	}{
		{"ProcessNegative", -1, []int{0, 0, 0}, state.ErrProcessIndex},
		{"ProcessTooLarge", 5, []int{0, 0, 0}, state.ErrProcessIndex},
		{"VectorTooShort", 0, []int{1, 1}, state.ErrVectorLength},
		{"VectorTooLong", 0, []int{1, 1, 1, 1}, state.ErrVectorLength},
		{"NegativeUnits", 0, []int{0, -1, 0}, state.ErrNegativeUnits},
		{"ExceedsNeed", 3, []int{1, 0, 0}, state.ErrInvalidRequest},
		{"ExceedsAvailable", 0, []int{4, 0, 0}, state.ErrInvalidRequest},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := newClassic(t)
			before := s.Snapshot()
			err := s.ApplyGrant(tc.p, tc.req)
			assert.ErrorIs(t, err, tc.err)
			assert.True(t, s.Equal(before), "failed grant must not mutate")
		})
	}
}

//----------------------------------------------------------------------------//
// ApplyRelease
//----------------------------------------------------------------------------//

// TestApplyRelease_Success moves units back to the pool.
func TestApplyRelease_Success(t *testing.T) {
	s := newClassic(t)
	require.NoError(t, s.ApplyRelease(2, []int{3, 0, 2}))

	assert.Equal(t, []int{6, 3, 4}, s.Available())
	row, err := s.Allocation(2)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 0, 0}, row)
	assertInvariants(t, s)
}

// TestApplyRelease_Errors verifies guards and that failures mutate nothing.
func TestApplyRelease_Errors(t *testing.T) {
	cases := []struct {
		name string
		p    int
		rel  []int
		err  error
	}{
		{"ProcessTooLarge", 9, []int{0, 0, 0}, state.ErrProcessIndex},
		{"VectorLength", 0, []int{0}, state.ErrVectorLength},
		{"NegativeUnits", 0, []int{-2, 0, 0}, state.ErrNegativeUnits},
		{"ExceedsAllocation", 0, []int{0, 2, 0}, state.ErrInvalidRelease},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := newClassic(t)
			before := s.Snapshot()
			err := s.ApplyRelease(tc.p, tc.rel)
			assert.ErrorIs(t, err, tc.err)
			assert.True(t, s.Equal(before), "failed release must not mutate")
		})
	}
}

//----------------------------------------------------------------------------//
// Grant/release sequences
//----------------------------------------------------------------------------//

// TestGrantReleaseRoundtrip: a grant followed by the same release restores
// the state exactly, and conservation holds at every step.
func TestGrantReleaseRoundtrip(t *testing.T) {
	s := newClassic(t)
	before := s.Snapshot()

	steps := []struct {
		p   int
		vec []int
	}{
		{1, []int{1, 0, 2}},
		{3, []int{0, 1, 0}},
		{4, []int{2, 0, 0}},
	}
	for _, st := range steps {
		require.NoError(t, s.ApplyGrant(st.p, st.vec))
		assertInvariants(t, s)
	}
	for _, st := range steps {
		require.NoError(t, s.ApplyRelease(st.p, st.vec))
		assertInvariants(t, s)
	}
	assert.True(t, s.Equal(before))
}
