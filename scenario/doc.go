// Package scenario loads Banker's-algorithm scenarios from YAML: the
// initial matrices plus an optional script of request/release steps.
//
// What:
//
//   - Scenario mirrors the YAML document: total, max, allocation, steps.
//   - Load / LoadFile decode and validate a document.
//   - Build constructs the initial *state.State; shape and invariant
//     violations surface as the state package's construction errors.
//
// A minimal document:
//
//	total:      [10, 5, 7]
//	max:        [[7,5,3],[3,2,2],[9,0,2],[2,2,2],[4,3,3]]
//	allocation: [[0,1,0],[2,0,0],[3,0,2],[2,1,1],[0,0,2]]
//	steps:
//	  - {op: request, process: 1, vector: [1, 0, 2]}
//	  - {op: release, process: 1, vector: [0, 0, 1]}
//
// allocation may be omitted; it defaults to the all-zero matrix.
//
// Why:
//
//	The core (state, safety, arbiter) is purely in-process; scenario is the
//	collaborator that turns a file into initial matrices and a step script
//	for drivers such as cmd/bankersim.
//
// Errors:
//
//   - ErrNoTotal: the document lacks a total vector.
//   - ErrNoMax: the document lacks a max matrix.
//   - ErrUnknownOp: a step's op is neither "request" nor "release".
//   - Construction errors from state.New pass through Build unchanged.
package scenario
