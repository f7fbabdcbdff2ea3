// Package pauli - core types and sentinel error set.
//
// This file defines ONLY the observable types and the package-level
// sentinel errors. All operations MUST return these sentinels and tests
// MUST check them via errors.Is. No function here panics on user input.
package pauli

import (
	"errors"
	"math"
)

// Axis identifies a single-qubit Pauli operator.
type Axis byte

const (
	// AxisX is the Pauli-X operator.
	AxisX Axis = 'X'
	// AxisY is the Pauli-Y operator.
	AxisY Axis = 'Y'
	// AxisZ is the Pauli-Z operator.
	AxisZ Axis = 'Z'
)

// Op is a single-qubit Pauli operator placed on a specific qubit.
type Op struct {
	Axis  Axis
	Qubit int
}

// Term is one weighted Pauli string: Coeff · ⊗ Ops.
// Ops hold pairwise-distinct qubits; identity factors are implicit.
type Term struct {
	Coeff float64
	Ops   []Op
}

// Observable is an immutable-once-built weighted sum of Pauli terms plus a
// scalar identity offset. The zero value is unusable; construct with New.
type Observable struct {
	numQubits int
	terms     []Term
	offset    float64
}

var (
	// ErrBadSize is returned when an observable is created over a
	// non-positive qubit count.
	ErrBadSize = errors.New("pauli: invalid qubit count")

	// ErrQubitOutOfRange indicates a term operand outside [0, NumQubits).
	ErrQubitOutOfRange = errors.New("pauli: qubit index out of range")

	// ErrDuplicateQubit indicates a Pauli string touching a qubit twice.
	ErrDuplicateQubit = errors.New("pauli: duplicate qubit in term")

	// ErrBadAxis indicates an operator axis other than X, Y or Z.
	ErrBadAxis = errors.New("pauli: unknown operator axis")

	// ErrNonFiniteCoeff indicates a NaN or ±Inf term coefficient.
	ErrNonFiniteCoeff = errors.New("pauli: non-finite coefficient")

	// ErrDimensionMismatch indicates a statevector or basis state whose
	// length disagrees with the observable's register.
	ErrDimensionMismatch = errors.New("pauli: dimension mismatch")

	// ErrComplexSpectrum is returned by Dense when the observable carries
	// a Y operator and therefore has no real symmetric realization.
	ErrComplexSpectrum = errors.New("pauli: observable has no real symmetric form")

	// ErrNotDiagonal is returned by BasisEnergy when the observable is not
	// Z-diagonal.
	ErrNotDiagonal = errors.New("pauli: observable not diagonal in Z basis")

	// ErrTooLarge guards Dense against registers whose 2^n × 2^n
	// realization would be unreasonable to allocate.
	ErrTooLarge = errors.New("pauli: register too large for dense form")
)

// New returns an empty observable over numQubits qubits.
//
// Contract: numQubits ≥ 1, otherwise ErrBadSize.
//
// Complexity: O(1).
func New(numQubits int) (*Observable, error) {
	if numQubits < 1 {
		return nil, ErrBadSize
	}
	return &Observable{numQubits: numQubits}, nil
}

// NumQubits returns the register size.
func (o *Observable) NumQubits() int { return o.numQubits }

// Terms returns the term list; callers must not mutate it.
func (o *Observable) Terms() []Term { return o.terms }

// Offset returns the scalar identity coefficient.
func (o *Observable) Offset() float64 { return o.offset }

// AddConstant folds c into the identity offset.
func (o *Observable) AddConstant(c float64) error {
	if math.IsNaN(c) || math.IsInf(c, 0) {
		return ErrNonFiniteCoeff
	}
	o.offset += c
	return nil
}

// AddTerm appends coeff · ⊗ ops after full validation.
//
// Contract:
//   - coeff finite; each op axis ∈ {X,Y,Z}; qubits in range and distinct.
//   - Terms with coeff == 0 are dropped silently (no-op, nil error).
//
// Complexity: O(len(ops)²) for distinctness (small strings in practice).
func (o *Observable) AddTerm(coeff float64, ops ...Op) error {
	if math.IsNaN(coeff) || math.IsInf(coeff, 0) {
		return ErrNonFiniteCoeff
	}

	var (
		i int
		j int
	)
	for i = 0; i < len(ops); i++ {
		switch ops[i].Axis {
		case AxisX, AxisY, AxisZ:
			// ok
		default:
			return ErrBadAxis
		}
		if ops[i].Qubit < 0 || ops[i].Qubit >= o.numQubits {
			return ErrQubitOutOfRange
		}
		for j = 0; j < i; j++ {
			if ops[j].Qubit == ops[i].Qubit {
				return ErrDuplicateQubit
			}
		}
	}

	if coeff == 0 {
		return nil
	}

	own := make([]Op, len(ops))
	copy(own, ops)
	o.terms = append(o.terms, Term{Coeff: coeff, Ops: own})

	return nil
}

// AddZ appends coeff·Z_q.
func (o *Observable) AddZ(coeff float64, q int) error {
	return o.AddTerm(coeff, Op{Axis: AxisZ, Qubit: q})
}

// AddZZ appends coeff·Z_i Z_j.
func (o *Observable) AddZZ(coeff float64, i, j int) error {
	return o.AddTerm(coeff, Op{Axis: AxisZ, Qubit: i}, Op{Axis: AxisZ, Qubit: j})
}

// AddX appends coeff·X_q.
func (o *Observable) AddX(coeff float64, q int) error {
	return o.AddTerm(coeff, Op{Axis: AxisX, Qubit: q})
}

// Scale multiplies every term coefficient and the constant offset by f.
// Scaling by zero empties the observable, keeping the "no zero-coeff
// terms" invariant.
//
// Complexity: O(T).
func (o *Observable) Scale(f float64) error {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return ErrNonFiniteCoeff
	}
	if f == 0 {
		o.terms = nil
		o.offset = 0
		return nil
	}
	for i := range o.terms {
		o.terms[i].Coeff *= f
	}
	o.offset *= f
	return nil
}
