// Package pauli models Hamiltonian observables as weighted sums of
// Pauli-operator terms over a fixed qubit register.
//
// An Observable is a list of Terms plus a scalar identity offset. Terms are
// appended through validated constructors (AddTerm and the AddZ/AddZZ/AddX
// shorthands) and the value is then treated as immutable by every consumer:
// estimators read it, nothing mutates it.
//
// Three evaluation surfaces are provided:
//
//   - Expectation: exact ⟨ψ|H|ψ⟩ against a statevector, computed term by
//     term with bit arithmetic - no dense matrix is ever materialized.
//   - BasisEnergy: classical evaluation of a Z-diagonal observable on a
//     computational basis state (the bridge to QUBO energies).
//   - Dense: a real symmetric matrix realization for Y-free observables,
//     consumed by package spectral for exact diagonalization.
//
// TransverseFieldIsing builds the standard open-chain model
// H = -J·Σ Z_i Z_{i+1} - h·Σ X_i.
//
// The package is deterministic, performs no I/O and no logging; all
// failure modes are sentinel errors from types.go matched via errors.Is.
package pauli
