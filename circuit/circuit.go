// Package circuit - append-only circuit builder.
//
// Design principles:
//   - Fail fast: every operand is validated at append time; execution-time
//     code may assume a well-formed gate list.
//   - Deterministic: no randomness, no I/O, no hidden allocations beyond
//     the growing gate slice.
//   - Strict sentinels: only errors from types.go; no fmt.Errorf where a
//     sentinel suffices.
package circuit

import "math"

// Circuit is a fixed register plus an append-only gate list.
// The zero value is unusable; construct with New.
type Circuit struct {
	numQubits int
	numParams int
	gates     []Gate
	measured  bool
}

// New allocates an empty circuit over numQubits qubits that will reference
// at most numParams symbolic parameters.
//
// Contract:
//   - numQubits ≥ 1, numParams ≥ 0; otherwise ErrBadRegister.
//
// Complexity: O(1).
func New(numQubits, numParams int) (*Circuit, error) {
	if numQubits < 1 || numParams < 0 {
		return nil, ErrBadRegister
	}
	return &Circuit{
		numQubits: numQubits,
		numParams: numParams,
		gates:     make([]Gate, 0, 16),
	}, nil
}

// NumQubits returns the register size.
func (c *Circuit) NumQubits() int { return c.numQubits }

// NumParams returns the declared symbolic parameter count.
func (c *Circuit) NumParams() int { return c.numParams }

// Gates returns the gate list in execution order.
// The returned slice is the internal one; callers must not mutate it.
func (c *Circuit) Gates() []Gate { return c.gates }

// Measured reports whether the terminal measurement has been appended.
func (c *Circuit) Measured() bool { return c.measured }

// X appends an unconditional flip on qubit q.
func (c *Circuit) X(q int) error {
	return c.append(Gate{Kind: KindX, Qubits: []int{q}, Param: NoParam})
}

// H appends a Hadamard gate on qubit q.
func (c *Circuit) H(q int) error {
	return c.append(Gate{Kind: KindH, Qubits: []int{q}, Param: NoParam})
}

// RY appends a Y rotation on qubit q by sign*theta[param].
//
// Contract:
//   - param ∈ [0, NumParams); sign ∈ {+1, -1}.
func (c *Circuit) RY(q, param int, sign float64) error {
	if sign != 1 && sign != -1 {
		return ErrNonFiniteParam
	}
	return c.append(Gate{Kind: KindRY, Qubits: []int{q}, Param: param, Sign: sign})
}

// RZ appends a Z rotation on qubit q by sign*theta[param].
func (c *Circuit) RZ(q, param int, sign float64) error {
	if sign != 1 && sign != -1 {
		return ErrNonFiniteParam
	}
	return c.append(Gate{Kind: KindRZ, Qubits: []int{q}, Param: param, Sign: sign})
}

// CPhase appends a controlled phase of fixed angle phi between ctrl and tgt.
// phi must be finite; a phi of π realizes the controlled-Z gate.
func (c *Circuit) CPhase(ctrl, tgt int, phi float64) error {
	if math.IsNaN(phi) || math.IsInf(phi, 0) {
		return ErrNonFiniteParam
	}
	return c.append(Gate{Kind: KindCPhase, Qubits: []int{ctrl, tgt}, Param: NoParam, Value: phi})
}

// CNOT appends a controlled-NOT with control ctrl and target tgt.
func (c *Circuit) CNOT(ctrl, tgt int) error {
	return c.append(Gate{Kind: KindCNOT, Qubits: []int{ctrl, tgt}, Param: NoParam})
}

// CSwap appends a controlled swap of qubits a and b under control ctrl.
func (c *Circuit) CSwap(ctrl, a, b int) error {
	return c.append(Gate{Kind: KindCSwap, Qubits: []int{ctrl, a, b}, Param: NoParam})
}

// MeasureAll appends the terminal full-register measurement directive.
// Any subsequent append fails with ErrAfterMeasure.
func (c *Circuit) MeasureAll() error {
	return c.append(Gate{Kind: KindMeasure, Param: NoParam})
}

// CountKind returns the number of gates of kind k.
//
// Complexity: O(len(gates)).
func (c *Circuit) CountKind(k Kind) int {
	var count int
	for i := range c.gates {
		if c.gates[i].Kind == k {
			count++
		}
	}
	return count
}

// TouchCount returns the total number of qubit operands across all gates
// (each gate contributes len(Qubits)). Useful for closed-form structural
// assertions on deterministic builders.
//
// Complexity: O(len(gates)).
func (c *Circuit) TouchCount() int {
	var count int
	for i := range c.gates {
		count += len(c.gates[i].Qubits)
	}
	return count
}

// append validates g against the register contract and stores it.
//
// Validation order (documented, enforced in tests):
// post-measure -> qubit range -> operand distinctness -> parameter range.
//
// Complexity: O(len(g.Qubits)²) for distinctness (≤ 3 operands in practice).
func (c *Circuit) append(g Gate) error {
	if c.measured {
		return ErrAfterMeasure
	}

	var (
		i int
		j int
	)
	for i = 0; i < len(g.Qubits); i++ {
		if g.Qubits[i] < 0 || g.Qubits[i] >= c.numQubits {
			return ErrQubitOutOfRange
		}
		for j = 0; j < i; j++ {
			if g.Qubits[j] == g.Qubits[i] {
				return ErrDuplicateOperand
			}
		}
	}

	if g.Param != NoParam && (g.Param < 0 || g.Param >= c.numParams) {
		return ErrParamOutOfRange
	}

	if g.Kind == KindMeasure {
		c.measured = true
	}
	c.gates = append(c.gates, g)

	return nil
}
