// File: arbiter/example_test.go
package arbiter_test

import (
	"fmt"

	"github.com/katalvlaran/banker/arbiter"
	"github.com/katalvlaran/banker/state"
)

////////////////////////////////////////////////////////////////////////////////
// Example: the three outcomes of a request
////////////////////////////////////////////////////////////////////////////////

// ExampleArbiter_Request walks the textbook request sequence:
//
//   - Process 1 asks [1,0,2] — covered and safe, so it is granted.
//   - Process 0 asks [0,2,0] — covered, but the hypothetical state has no
//     finishable process, so it is denied.
//   - Process 4 asks [3,3,0] — Available cannot cover it, so it must wait.
//
// Only the granted request changes the committed state.
func ExampleArbiter_Request() {
	s, _ := state.New(
		[][]int{{7, 5, 3}, {3, 2, 2}, {9, 0, 2}, {2, 2, 2}, {4, 3, 3}},
		[][]int{{0, 1, 0}, {2, 0, 0}, {3, 0, 2}, {2, 1, 1}, {0, 0, 2}},
		[]int{10, 5, 7},
	)
	arb, _ := arbiter.New(s)

	d, _ := arb.Request(1, []int{1, 0, 2})
	fmt.Println("P1 [1,0,2]:", d.Outcome, d.SafeSequence)

	d, _ = arb.Request(0, []int{0, 2, 0})
	fmt.Println("P0 [0,2,0]:", d.Outcome)

	d, _ = arb.Request(4, []int{3, 3, 0})
	fmt.Println("P4 [3,3,0]:", d.Outcome)

	fmt.Println("available:", arb.Snapshot().Available())

	// Output:
	// P1 [1,0,2]: granted [1 3 0 2 4]
	// P0 [0,2,0]: denied
	// P4 [3,3,0]: waiting
	// available: [2 3 0]
}
