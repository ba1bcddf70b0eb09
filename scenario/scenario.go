// Package scenario defines the YAML document types and loader for
// github.com/katalvlaran/banker scenario files.
package scenario

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/banker/state"
)

// Sentinel errors for scenario documents.
var (
	// ErrNoTotal indicates a document without a total resource vector.
	ErrNoTotal = errors.New("scenario: total vector is required")
	// ErrNoMax indicates a document without a max demand matrix.
	ErrNoMax = errors.New("scenario: max matrix is required")
	// ErrUnknownOp indicates a step whose op is not "request" or "release".
	ErrUnknownOp = errors.New("scenario: unknown step op")
)

// Step ops recognized in scenario documents.
const (
	// OpRequest asks the arbiter to grant the step's vector to the process.
	OpRequest = "request"
	// OpRelease returns the step's vector from the process to the pool.
	OpRelease = "release"
)

// Step is one scripted protocol call.
type Step struct {
	// Op is OpRequest or OpRelease.
	Op string `yaml:"op"`
	// Process is the acting process index.
	Process int `yaml:"process"`
	// Vector is the length-R request or release vector.
	Vector []int `yaml:"vector"`
}

// Scenario mirrors a YAML scenario document: the initial matrices plus an
// optional script of steps to replay through an arbiter.
type Scenario struct {
	// Total is the fixed system-wide units per resource.
	Total []int `yaml:"total"`
	// Max is the P×R declared maximum-demand matrix.
	Max [][]int `yaml:"max"`
	// Allocation is the P×R initial allocation; omitted means all zero.
	Allocation [][]int `yaml:"allocation"`
	// Steps is the optional request/release script.
	Steps []Step `yaml:"steps"`
}

// Load decodes and validates a scenario document from r.
// Returns ErrNoTotal, ErrNoMax, or ErrUnknownOp on structural problems;
// YAML syntax errors are wrapped with a "scenario:" prefix.
func Load(r io.Reader) (*Scenario, error) {
	var sc Scenario
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&sc); err != nil {
		return nil, fmt.Errorf("scenario: decode: %w", err)
	}
	if err := sc.validate(); err != nil {
		return nil, err
	}

	return &sc, nil
}

// LoadFile reads and decodes the scenario document at path.
func LoadFile(path string) (*Scenario, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("scenario: open: %w", err)
	}
	defer f.Close()

	return Load(f)
}

// validate checks document-level structure. Matrix shapes and allocation
// invariants are left to state.New via Build.
func (sc *Scenario) validate() error {
	if len(sc.Total) == 0 {
		return ErrNoTotal
	}
	if len(sc.Max) == 0 {
		return ErrNoMax
	}
	for i, step := range sc.Steps {
		if step.Op != OpRequest && step.Op != OpRelease {
			return fmt.Errorf("%w: step %d has op %q", ErrUnknownOp, i, step.Op)
		}
	}

	return nil
}

// Build constructs the initial *state.State from the document.
// An omitted Allocation defaults to the all-zero P×R matrix.
// Construction errors from state.New pass through unchanged.
//
// Complexity: O(P×R).
func (sc *Scenario) Build() (*state.State, error) {
	alloc := sc.Allocation
	if alloc == nil {
		alloc = make([][]int, len(sc.Max))
		for i := range alloc {
			alloc[i] = make([]int, len(sc.Total))
		}
	}

	return state.New(sc.Max, alloc, sc.Total)
}
