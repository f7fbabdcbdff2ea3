// Package ansatz - TSP permutation ansatz.
package ansatz

import (
	"errors"
	"math"

	"github.com/katalvlaran/qvar/circuit"
)

// ErrTooFewCities rejects TSP ansatz sizes below the two-city base block.
var ErrTooFewCities = errors.New("ansatz: need at least 2 cities")

// ErrBadShape rejects invalid TwoLocal register shapes.
var ErrBadShape = errors.New("ansatz: invalid shape")

// TSPParams returns the free-parameter count of TSP(n): one angle for the
// base block plus i-1 per W stage i ∈ [3..n], i.e. n(n−1)/2.
//
// Complexity: O(1).
func TSPParams(n int) int {
	return n * (n - 1) / 2
}

// TSP builds the permutation-structured ansatz over n² qubits for an
// n-city tour search, ending in a full-register measurement directive.
//
// Construction (all angles symbolic, referenced by index):
//
//  1. Base block on qubits 0 and 1: an unconditional flip, a rotation
//     pair RY(θ₀)/RY(−θ₀) bracketing a controlled-phase of π, a CNOT
//     folding qubit 1 back onto 0, and two CNOTs copying the flip into
//     the last two qubits of the register.
//  2. For each block size i ∈ [3..n], a "W" pattern across the window
//     0..i−1: for j ∈ [1..i−1] a fresh angle θ wrapped as
//     RY(θ)·CPhase(j−1,j,π)·RY(−θ), then a CNOT chain folding the window
//     back to its start.
//  3. For each stage k ∈ [3..n] and each pair (v, p) with 1 ≤ v, p < k, a
//     controlled swap with operands in closed form: control
//     n·(k−1)+(v−1) on permutation row k−1, exchanging row v−1's
//     occupancy between columns p−1 and k−1. Rows v−1 < k−1, so the
//     three operands are always distinct and in range.
//
// Contract:
//   - n ≥ 2 (the base block needs two rows), otherwise ErrTooFewCities
//     before any gate is emitted.
//   - the returned circuit has exactly n² qubits and TSPParams(n) free
//     parameters, every one of them consumed.
//
// Complexity: O(n³) emitted gates (the swap stages dominate).
func TSP(n int) (*circuit.Circuit, error) {
	if n < 2 {
		return nil, ErrTooFewCities
	}

	var (
		numQubits = n * n
		c, err    = circuit.New(numQubits, TSPParams(n))
		param     int
	)
	if err != nil {
		return nil, err
	}

	// Stage 1: base block.
	if err = c.X(0); err != nil {
		return nil, err
	}
	if err = c.RY(1, param, +1); err != nil {
		return nil, err
	}
	if err = c.CPhase(0, 1, math.Pi); err != nil {
		return nil, err
	}
	if err = c.RY(1, param, -1); err != nil {
		return nil, err
	}
	param++
	if err = c.CNOT(1, 0); err != nil {
		return nil, err
	}
	if err = c.CNOT(0, numQubits-2); err != nil {
		return nil, err
	}
	if err = c.CNOT(1, numQubits-1); err != nil {
		return nil, err
	}

	// Stage 2: W patterns over growing windows.
	var i, j int
	for i = 3; i <= n; i++ {
		for j = 1; j < i; j++ {
			if err = c.RY(j, param, +1); err != nil {
				return nil, err
			}
			if err = c.CPhase(j-1, j, math.Pi); err != nil {
				return nil, err
			}
			if err = c.RY(j, param, -1); err != nil {
				return nil, err
			}
			param++
		}
		for j = i - 1; j >= 1; j-- {
			if err = c.CNOT(j, j-1); err != nil {
				return nil, err
			}
		}
	}

	// Stage 3: controlled-swap ordering constraints.
	var k, v, p int
	for k = 3; k <= n; k++ {
		for v = 1; v < k; v++ {
			for p = 1; p < k; p++ {
				ctrl := n*(k-1) + (v - 1)
				a := n*(v-1) + (p - 1)
				b := n*(v-1) + (k - 1)
				// a != b always: p < k keeps the two columns apart.
				if err = c.CSwap(ctrl, a, b); err != nil {
					return nil, err
				}
			}
		}
	}

	if err = c.MeasureAll(); err != nil {
		return nil, err
	}

	return c, nil
}
