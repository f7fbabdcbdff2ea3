// Package circuit - parameter binding.
//
// Bind attaches a concrete angle vector to a circuit without copying the
// gate list. The Bound view is what simulators and estimators consume; it
// is immutable after creation (the vector is copied defensively so later
// caller-side mutation cannot leak into an in-flight evaluation).
package circuit

import "math"

// Bound is a (circuit, parameter vector) pair ready for evaluation.
// Construct only via Circuit.Bind.
type Bound struct {
	c     *Circuit
	theta []float64
}

// Bind validates theta against the declared parameter count and returns an
// immutable Bound view.
//
// Contract:
//   - len(theta) == NumParams, otherwise ErrArity.
//   - every entry finite, otherwise ErrNonFiniteParam.
//
// Complexity: O(len(theta)) time and space (defensive copy).
func (c *Circuit) Bind(theta []float64) (Bound, error) {
	if len(theta) != c.numParams {
		return Bound{}, ErrArity
	}

	var i int
	for i = 0; i < len(theta); i++ {
		if math.IsNaN(theta[i]) || math.IsInf(theta[i], 0) {
			return Bound{}, ErrNonFiniteParam
		}
	}

	own := make([]float64, len(theta))
	copy(own, theta)

	return Bound{c: c, theta: own}, nil
}

// Circuit returns the underlying circuit.
func (b Bound) Circuit() *Circuit { return b.c }

// NumQubits returns the register size of the underlying circuit.
func (b Bound) NumQubits() int { return b.c.numQubits }

// Angle resolves the concrete rotation angle of gate g.
// For non-parametric kinds it returns g.Value (fixed angle or zero).
//
// Complexity: O(1).
func (b Bound) Angle(g Gate) float64 {
	if g.Param == NoParam {
		return g.Value
	}
	return g.Sign * b.theta[g.Param]
}

// Params returns a copy of the bound vector (callers may retain it freely).
func (b Bound) Params() []float64 {
	out := make([]float64, len(b.theta))
	copy(out, b.theta)
	return out
}
