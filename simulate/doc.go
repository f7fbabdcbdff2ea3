// Package simulate executes bound circuits on an exact statevector
// backend and exposes the two primitive services the variational stack
// consumes:
//
//   - Estimator: evaluate(circuit, observable, parameters) → scalar, the
//     exact expectation value ⟨ψ(θ)|H|ψ(θ)⟩. Noiseless and
//     bit-reproducible: identical inputs return identical scalars.
//   - Sampler: finite-shot measurement of the full register, returning
//     bitstring counts. Sampling is routed through a seeded generator, so
//     a fixed seed reproduces the exact same counts.
//
// Bitstring convention: qubit q is bit q of the basis index and character
// q of a Counts key, so a key reads left-to-right as variable order - the
// layout qubo.ParseBits expects.
//
// Execution is synchronous and single-threaded; context cancellation is
// honored between gate applications. Failures are sentinel errors from
// types.go: an evaluation that would produce a non-finite scalar surfaces
// ErrNonFinite instead of silently passing NaN downstream.
//
// For callers that want a submission-shaped surface (mirroring remote
// quantum backends), Runner wraps both primitives into uuid-identified
// job records with queued/running/completed/failed states, while keeping
// the execution local and blocking.
package simulate
