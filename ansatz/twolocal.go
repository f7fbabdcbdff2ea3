// Package ansatz - hardware-efficient two-local ansatz.
package ansatz

import "github.com/katalvlaran/qvar/circuit"

// TwoLocalParams returns the free-parameter count of
// TwoLocal(numQubits, reps): one RY layer per rep plus the final layer.
//
// Complexity: O(1).
func TwoLocalParams(numQubits, reps int) int {
	return numQubits * (reps + 1)
}

// TwoLocal builds the standard hardware-efficient ansatz: reps blocks of
// a full RY rotation layer followed by a linear CNOT entangling ladder,
// closed by a final rotation layer. Every angle is a fresh symbolic
// parameter, so the circuit consumes exactly TwoLocalParams(numQubits,
// reps) entries of any bound vector.
//
// No measurement directive is appended: this ansatz feeds expectation
// estimation, where the statevector is read directly.
//
// Contract: numQubits ≥ 1 and reps ≥ 0, otherwise ErrBadShape.
//
// Complexity: O(numQubits · (reps+1)) emitted gates.
func TwoLocal(numQubits, reps int) (*circuit.Circuit, error) {
	if numQubits < 1 || reps < 0 {
		return nil, ErrBadShape
	}

	c, err := circuit.New(numQubits, TwoLocalParams(numQubits, reps))
	if err != nil {
		return nil, err
	}

	var (
		param   int
		r, q    int
		rotLayer = func() error {
			for q = 0; q < numQubits; q++ {
				if lerr := c.RY(q, param, +1); lerr != nil {
					return lerr
				}
				param++
			}
			return nil
		}
	)

	for r = 0; r < reps; r++ {
		if err = rotLayer(); err != nil {
			return nil, err
		}
		for q = 0; q+1 < numQubits; q++ {
			if err = c.CNOT(q, q+1); err != nil {
				return nil, err
			}
		}
	}
	if err = rotLayer(); err != nil {
		return nil, err
	}

	return c, nil
}
