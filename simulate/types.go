// Package simulate - service interfaces and sentinel error set.
//
// This file defines ONLY the primitive-service interfaces, the Counts
// type and the package-level sentinel errors. All operations MUST return
// these sentinels and tests MUST check them via errors.Is.
package simulate

import (
	"context"
	"errors"

	"github.com/katalvlaran/qvar/circuit"
	"github.com/katalvlaran/qvar/pauli"
)

var (
	// ErrDimensionMismatch indicates an observable register that
	// disagrees with the circuit register.
	ErrDimensionMismatch = errors.New("simulate: dimension mismatch")

	// ErrUnsupportedGate indicates a gate kind the statevector engine
	// cannot apply (a programmer error in a custom builder, surfaced as
	// an error rather than a panic).
	ErrUnsupportedGate = errors.New("simulate: unsupported gate kind")

	// ErrNonFinite indicates an evaluation that produced NaN or ±Inf;
	// per the failure policy this aborts the run, it is never replaced
	// by a default value.
	ErrNonFinite = errors.New("simulate: non-finite expectation value")

	// ErrBadShots rejects non-positive shot counts.
	ErrBadShots = errors.New("simulate: shots must be positive")

	// ErrTooManyQubits guards the dense statevector against registers
	// whose amplitude array would be unreasonable to allocate.
	ErrTooManyQubits = errors.New("simulate: register too large for statevector")
)

// Counts maps full-register measurement bitstrings (character q = qubit q)
// to observation tallies.
type Counts map[string]int

// Estimator is the expectation-value primitive: one scalar per
// (circuit, observable, parameters) triple. Implementations must be
// deterministic up to their declared sampling noise; Exact has none.
type Estimator interface {
	Estimate(ctx context.Context, b circuit.Bound, obs *pauli.Observable) (float64, error)
}

// Sampler is the measurement primitive: finite-shot counts of the full
// register under the bound circuit's output distribution.
type Sampler interface {
	Sample(ctx context.Context, b circuit.Bound, shots int) (Counts, error)
}
