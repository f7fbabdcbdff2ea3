// Package ansatz provides deterministic builders for the parametric
// circuits searched by the variational loop.
//
// Two families are included:
//
//   - TSP: the permutation-structured ansatz over n² qubits. Its gate
//     sequence narrows the reachable basis states toward valid tours of an
//     n-city instance encoded per package qubo (city v at position p ↔
//     qubit v·n+p). The bias comes from three stages: a fixed two-qubit
//     base block, a growing "W" pattern of bracketed rotations with a
//     CNOT fold-back, and a nested controlled-swap stage that imposes
//     pairwise ordering constraints between permutation rows. The prior
//     is structural, not exact: sampled bitstrings must still pass
//     qubo.Model.Feasible.
//
//   - TwoLocal: the hardware-efficient RY + CNOT-ladder ansatz used for
//     ground-state searches of small spin models.
//
// Builders are pure index arithmetic: no I/O, no randomness, no failure
// modes beyond an invalid size rejected before any gate is emitted. The
// free-parameter count of every builder equals the declared parameter
// vector length of the returned circuit - parameter references can never
// exceed it (enforced again by package circuit at append time).
package ansatz
