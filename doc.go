// Package banker is an in-memory playground for deadlock avoidance —
// the classical Banker's algorithm, split into composable pieces:
// resource-state bookkeeping, the safety check, and the request protocol.
//
// 🚀 What is banker?
//
//	A deterministic, in-memory library that brings together:
//		• State primitives: Max / Allocation / Available matrices with
//		  derived Need and invariant-preserving grant & release operations
//		• Safety check: the textbook O(P²·R) scan producing a witness
//		  completion sequence when the state is safe
//		• Request protocol: snapshot-then-commit arbitration that grants,
//		  denies, or asks a process to wait — never committing an unsafe state
//		• Scenario files: YAML-described initial matrices and scripted steps
//
// ✨ Why choose banker?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Rock-solid guarantees – conservation and Need ≥ 0 hold after every call
//   - Deterministic – ascending-index scan, reproducible witness sequences
//   - Extensible – add custom hooks (OnFinish, OnDecision) for custom logic
//
// Under the hood, everything is organized under four subpackages:
//
//	state/    — Max/Allocation/Available matrices, Need derivation, snapshots
//	safety/   — the safety check and witness-sequence construction
//	arbiter/  — the request/release protocol built on state + safety
//	scenario/ — YAML loader for initial matrices and scripted request steps
//
// Quick sketch of the control flow:
//
//	request ──▶ arbiter ──▶ snapshot(state) ──▶ safety ──▶ commit │ discard
//
// A granted request mutates the committed state; a denied or waiting request
// leaves it untouched, bit for bit.
//
// Dive into the examples/ directory and cmd/bankersim for runnable scenarios.
//
//	go get github.com/katalvlaran/banker
package banker
