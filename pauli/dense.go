// Package pauli - dense real symmetric realization.
package pauli

import "math/bits"

// denseMaxQubits caps the register size accepted by Dense; beyond this the
// 2^n × 2^n allocation stops being a sensible cross-check tool.
const denseMaxQubits = 14

// Dense materializes the observable as a real symmetric 2^n × 2^n matrix
// in the computational basis (row r, column c = ⟨r|H|c⟩). Only Y-free
// observables admit this form; package spectral feeds the result to an
// exact eigensolver.
//
// Contract:
//   - no Y factors, otherwise ErrComplexSpectrum.
//   - NumQubits ≤ 14, otherwise ErrTooLarge.
//
// Complexity: O(T · 2^n) time, O(4^n) space.
func (o *Observable) Dense() ([][]float64, error) {
	if o.numQubits > denseMaxQubits {
		return nil, ErrTooLarge
	}

	var t int
	for t = 0; t < len(o.terms); t++ {
		for k := 0; k < len(o.terms[t].Ops); k++ {
			if o.terms[t].Ops[k].Axis == AxisY {
				return nil, ErrComplexSpectrum
			}
		}
	}

	dim := 1 << uint(o.numQubits)
	m := make([][]float64, dim)
	var r int
	for r = 0; r < dim; r++ {
		m[r] = make([]float64, dim)
		m[r][r] = o.offset
	}

	// H|i⟩ = Σ_t coeff_t · (-1)^{popcount(i & sign_t)} |i ^ flip_t⟩,
	// so each term scatters one entry per column.
	for t = 0; t < len(o.terms); t++ {
		flip, sign, _ := masks(o.terms[t].Ops)
		var c uint64
		for c = 0; c < uint64(dim); c++ {
			v := o.terms[t].Coeff
			if bits.OnesCount64(c&sign)&1 == 1 {
				v = -v
			}
			m[c^flip][c] += v
		}
	}

	return m, nil
}
