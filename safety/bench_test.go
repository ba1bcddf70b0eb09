package safety_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/banker/safety"
	"github.com/katalvlaran/banker/state"
)

// benchState builds a guaranteed-safe P×R state: every process already
// holds part of a demand the free pool can always complete, so Evaluate
// walks the full O(P²·R) ladder.
func benchState(b *testing.B, p, r int) *state.State {
	b.Helper()
	rng := rand.New(rand.NewSource(7))
	max := make([][]int, p)
	alloc := make([][]int, p)
	total := make([]int, r)
	for j := 0; j < r; j++ {
		total[j] = p + 4
	}
	for i := 0; i < p; i++ {
		max[i] = make([]int, r)
		alloc[i] = make([]int, r)
		for j := 0; j < r; j++ {
			alloc[i][j] = 1
			max[i][j] = 1 + rng.Intn(4)
		}
	}
	s, err := state.New(max, alloc, total)
	if err != nil {
		b.Fatalf("setup New failed: %v", err)
	}

	return s
}

// BenchmarkEvaluate_500x10 measures the safety scan on 500 processes and
// 10 resource kinds.
// Complexity: O(P²·R)
func BenchmarkEvaluate_500x10(b *testing.B) {
	s := benchState(b, 500, 10)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		res, err := safety.Evaluate(s)
		if err != nil || !res.Safe {
			b.Fatalf("Evaluate: safe=%v err=%v", res.Safe, err)
		}
	}
}

// BenchmarkEvaluate_Classic measures the textbook 5×3 case as a baseline.
func BenchmarkEvaluate_Classic(b *testing.B) {
	s, err := state.New(
		[][]int{{7, 5, 3}, {3, 2, 2}, {9, 0, 2}, {2, 2, 2}, {4, 3, 3}},
		[][]int{{0, 1, 0}, {2, 0, 0}, {3, 0, 2}, {2, 1, 1}, {0, 0, 2}},
		[]int{10, 5, 7},
	)
	if err != nil {
		b.Fatalf("setup New failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = safety.Evaluate(s)
	}
}
