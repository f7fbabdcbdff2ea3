// Package simulate - statevector evolution.
//
// Design principles:
//   - Gate application is in-place bit arithmetic over the amplitude
//     array; a fresh array is allocated only where the update is not an
//     in-place permutation/phase (H, RY).
//   - The gate list is trusted: package circuit validated operands at
//     append time, so no range checks are repeated in the hot loop.
//   - Deterministic: evolution involves no randomness; only Sample draws.
package simulate

import (
	"context"
	"math"
	"math/cmplx"

	"github.com/katalvlaran/qvar/circuit"
)

// maxQubits caps the dense statevector at 2^20 amplitudes (16 MiB).
const maxQubits = 20

// evolve runs the bound circuit from |0...0⟩ and returns the final
// statevector. Measurement directives are skipped: the statevector is the
// pre-measurement state, which is exactly what estimation needs and what
// sampling draws from.
//
// ctx is checked once per gate, so cancellation latency is one gate
// application.
//
// Complexity: O(G · 2^n) time for G gates, O(2^n) space.
func evolve(ctx context.Context, b circuit.Bound) ([]complex128, error) {
	n := b.NumQubits()
	if n > maxQubits {
		return nil, ErrTooManyQubits
	}

	amps := make([]complex128, 1<<uint(n))
	amps[0] = 1

	gates := b.Circuit().Gates()
	var g int
	for g = 0; g < len(gates); g++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		gate := gates[g]
		switch gate.Kind {
		case circuit.KindX:
			applyX(amps, gate.Qubits[0])
		case circuit.KindH:
			amps = applyH(amps, gate.Qubits[0])
		case circuit.KindRY:
			amps = applyRY(amps, gate.Qubits[0], b.Angle(gate))
		case circuit.KindRZ:
			applyRZ(amps, gate.Qubits[0], b.Angle(gate))
		case circuit.KindCPhase:
			applyCPhase(amps, gate.Qubits[0], gate.Qubits[1], gate.Value)
		case circuit.KindCNOT:
			applyCNOT(amps, gate.Qubits[0], gate.Qubits[1])
		case circuit.KindCSwap:
			applyCSwap(amps, gate.Qubits[0], gate.Qubits[1], gate.Qubits[2])
		case circuit.KindMeasure:
			// Terminal directive; samplers act on the final state.
		default:
			return nil, ErrUnsupportedGate
		}
	}

	return amps, nil
}

func applyX(amps []complex128, q int) {
	bit := 1 << uint(q)
	for i := 0; i < len(amps); i++ {
		if i&bit == 0 {
			j := i | bit
			amps[i], amps[j] = amps[j], amps[i]
		}
	}
}

func applyH(amps []complex128, q int) []complex128 {
	var (
		factor = complex(1/math.Sqrt2, 0)
		bit    = 1 << uint(q)
		out    = make([]complex128, len(amps))
	)
	for i := 0; i < len(amps); i++ {
		if i&bit == 0 {
			j := i | bit
			out[i] = factor * (amps[i] + amps[j])
			out[j] = factor * (amps[i] - amps[j])
		}
	}
	return out
}

func applyRY(amps []complex128, q int, theta float64) []complex128 {
	var (
		c   = complex(math.Cos(theta/2), 0)
		s   = complex(math.Sin(theta/2), 0)
		bit = 1 << uint(q)
		out = make([]complex128, len(amps))
	)
	for i := 0; i < len(amps); i++ {
		if i&bit == 0 {
			j := i | bit
			out[i] = c*amps[i] - s*amps[j]
			out[j] = s*amps[i] + c*amps[j]
		}
	}
	return out
}

func applyRZ(amps []complex128, q int, theta float64) {
	var (
		phase = cmplx.Exp(complex(0, theta/2))
		conj  = cmplx.Exp(complex(0, -theta/2))
		bit   = 1 << uint(q)
	)
	for i := 0; i < len(amps); i++ {
		if i&bit != 0 {
			amps[i] *= phase
		} else {
			amps[i] *= conj
		}
	}
}

func applyCPhase(amps []complex128, ctrl, tgt int, phi float64) {
	var (
		phase = cmplx.Exp(complex(0, phi))
		cBit  = 1 << uint(ctrl)
		tBit  = 1 << uint(tgt)
	)
	for i := 0; i < len(amps); i++ {
		if i&cBit != 0 && i&tBit != 0 {
			amps[i] *= phase
		}
	}
}

func applyCNOT(amps []complex128, ctrl, tgt int) {
	var (
		cBit = 1 << uint(ctrl)
		tBit = 1 << uint(tgt)
	)
	for i := 0; i < len(amps); i++ {
		if i&cBit != 0 && i&tBit == 0 {
			j := i | tBit
			amps[i], amps[j] = amps[j], amps[i]
		}
	}
}

func applyCSwap(amps []complex128, ctrl, a, b int) {
	var (
		cBit = 1 << uint(ctrl)
		aBit = 1 << uint(a)
		bBit = 1 << uint(b)
	)
	for i := 0; i < len(amps); i++ {
		if i&cBit != 0 && i&aBit != 0 && i&bBit == 0 {
			j := (i &^ aBit) | bBit
			amps[i], amps[j] = amps[j], amps[i]
		}
	}
}
