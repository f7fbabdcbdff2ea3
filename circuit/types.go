// Package circuit - gate vocabulary and sentinel error set.
//
// This file defines ONLY the gate kinds, the Gate record, and the
// package-level sentinel errors used across the circuit package. All
// constructors MUST return these sentinels and tests MUST check them via
// errors.Is. No function in this package panics on user input.
package circuit

import "errors"

// Kind enumerates the gate vocabulary understood by the simulate package.
// The set deliberately mirrors what the bundled ansätze emit; it is not a
// universal gate library.
type Kind uint8

const (
	// KindX is the unconditional bit flip (Pauli-X).
	KindX Kind = iota

	// KindH is the Hadamard gate.
	KindH

	// KindRY is a rotation about the Y axis by a symbolic parameter,
	// optionally negated (Sign == -1 encodes the inverse rotation).
	KindRY

	// KindRZ is a rotation about the Z axis by a symbolic parameter.
	KindRZ

	// KindCPhase is a two-qubit controlled phase with a FIXED angle
	// (Gate.Value); it carries no symbolic parameter.
	KindCPhase

	// KindCNOT is the controlled-NOT gate; Qubits[0] controls Qubits[1].
	KindCNOT

	// KindCSwap is the controlled-swap (Fredkin) gate; Qubits[0] controls
	// the exchange of Qubits[1] and Qubits[2].
	KindCSwap

	// KindMeasure is the terminal full-register measurement directive.
	// It is a marker for samplers; statevector evaluation skips it.
	KindMeasure
)

// NoParam marks a Gate that references no symbolic parameter.
const NoParam = -1

// Gate is a single operation on the simulated linear time axis.
// Order within Circuit.gates is execution order.
type Gate struct {
	// Kind selects the operation.
	Kind Kind

	// Qubits holds the operand indices: [target], [control, target] or
	// [control, a, b] depending on Kind. Empty for KindMeasure.
	Qubits []int

	// Param is the symbolic parameter index for KindRY/KindRZ,
	// or NoParam when the gate is non-parametric.
	Param int

	// Sign multiplies the bound angle; -1 encodes an inverse rotation.
	// Always +1 or -1 for parametric kinds, 0 otherwise.
	Sign float64

	// Value is the fixed angle for KindCPhase; unused otherwise.
	Value float64
}

var (
	// ErrBadRegister is returned when a circuit is created with a
	// non-positive qubit count or a negative parameter count.
	ErrBadRegister = errors.New("circuit: invalid register shape")

	// ErrQubitOutOfRange indicates a gate operand outside [0, NumQubits).
	ErrQubitOutOfRange = errors.New("circuit: qubit index out of range")

	// ErrParamOutOfRange indicates a symbolic parameter reference outside
	// [0, NumParams). This is the construction-time contract failure of
	// the parameter-count invariant.
	ErrParamOutOfRange = errors.New("circuit: parameter index out of range")

	// ErrDuplicateOperand indicates a multi-qubit gate with repeated
	// operand indices.
	ErrDuplicateOperand = errors.New("circuit: duplicate qubit operand")

	// ErrAfterMeasure indicates an append after the terminal measurement.
	ErrAfterMeasure = errors.New("circuit: gate appended after measurement")

	// ErrArity is returned by Bind when the supplied vector length does
	// not equal NumParams.
	ErrArity = errors.New("circuit: parameter vector length mismatch")

	// ErrNonFiniteParam is returned by Bind when a supplied angle is NaN
	// or ±Inf.
	ErrNonFiniteParam = errors.New("circuit: non-finite parameter value")
)
