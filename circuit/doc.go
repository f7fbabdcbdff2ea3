// Package circuit provides an append-only gate-list model of a parametric
// quantum circuit over a fixed-size qubit register.
//
// A Circuit is built once by appending gates in execution order and is then
// treated as an immutable value: downstream consumers (ansatz builders,
// simulators, estimators) never mutate it. Free rotation angles are
// referenced symbolically by parameter index; concrete values are attached
// later via Bind, which produces a Bound view sharing the underlying gate
// list.
//
// Contracts enforced at append time (never deferred to execution):
//   - every qubit operand lies in [0, NumQubits);
//   - every parameter reference lies in [0, NumParams);
//   - operands of multi-qubit gates are pairwise distinct;
//   - no gate may follow the terminal full-register measurement.
//
// Violations surface as sentinel errors from types.go, matched with
// errors.Is. The package performs no I/O, no logging, and uses no
// randomness; construction is fully deterministic.
//
// Use this package when you need to describe a circuit for the simulate
// package or to build custom ansätze beyond those in package ansatz.
package circuit
