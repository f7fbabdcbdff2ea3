// Package qubo encodes the Travelling Salesman Problem as a Quadratic
// Unconstrained Binary Optimization model and bridges it to the Ising
// observables consumed by the variational stack.
//
// The permutation encoding uses n² binary variables: x[v·n+p] == 1 means
// city v occupies tour position p. FromDistances emits the tour-cost
// objective plus one-hot penalty rows/columns; Feasible is the post-hoc
// predicate that accepts exactly the valid permutation bitstrings, and
// DecodeTour turns an accepted bitstring into a closed tour.
//
// Three classical companions round the package out:
//
//   - Model.ToIsing converts the QUBO into a Z-diagonal pauli.Observable
//     (x = (1-z)/2 substitution) with the constant folded into the offset,
//     so sampled basis states can be scored on either side of the bridge.
//   - SolveExact is a Held-Karp baseline used to certify optimal tours in
//     tests and quantum-vs-classical comparisons.
//   - RandomInstance produces deterministic random symmetric instances
//     from a seed (no time-based randomness anywhere).
//
// All validation is strict and fail-fast with sentinel errors from
// types.go; matrices are checked for shape, zero diagonal, symmetry,
// finiteness and non-negativity before any encoding work begins.
package qubo
