// Package qubo - distance-matrix validation shared by the encoder and the
// exact baseline.
//
// Design principles:
//   - Deterministic, side-effect free functions.
//   - No logging, no panics on user input - only sentinel errors from types.go.
//   - O(n²) worst case; no hidden allocations.
package qubo

import "math"

// symTol is a structural tolerance for symmetry/diagonal checks.
const symTol = 1e-12

// validateDistances performs full matrix validation:
//   - non-nil, square, n ≥ 3,
//   - diagonal ≈ 0 (|d_ii| ≤ symTol), finite,
//   - no negative entries,
//   - if !allowInf: reject ±Inf off-diagonal (the QUBO encoding needs a
//     complete instance; the Held-Karp baseline tolerates +Inf holes),
//   - |d_ij − d_ji| ≤ symTol,
//   - NaN anywhere is invalid.
//
// Returns n (matrix order) on success.
//
// Complexity: O(n²).
func validateDistances(dist [][]float64, allowInf bool) (int, error) {
	if dist == nil {
		return 0, ErrDimensionMismatch
	}
	n := len(dist)
	if n < 3 {
		return 0, ErrTooFewCities
	}

	var (
		i, j int     // loop indices
		dij  float64 // entry under inspection
		abs  float64 // scratch for |value|
	)

	// Stage 1: shape and diagonal.
	for i = 0; i < n; i++ {
		if len(dist[i]) != n {
			return 0, ErrNonSquare
		}
		dij = dist[i][i]
		if math.IsNaN(dij) || math.IsInf(dij, 0) {
			return 0, ErrNaNInf
		}
		abs = dij
		if abs < 0 {
			abs = -abs
		}
		if abs > symTol {
			return 0, ErrNonZeroDiagonal
		}
	}

	// Stage 2: off-diagonal values.
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if i == j {
				continue
			}
			dij = dist[i][j]
			if math.IsNaN(dij) {
				return 0, ErrNaNInf
			}
			if math.IsInf(dij, -1) {
				return 0, ErrNaNInf
			}
			if math.IsInf(dij, 1) && !allowInf {
				return 0, ErrNaNInf
			}
			if dij < 0 {
				return 0, ErrNegativeWeight
			}
		}
	}

	// Stage 3: symmetry over the upper triangle.
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			// +Inf on both sides is a matching "no edge" pair.
			if math.IsInf(dist[i][j], 1) && math.IsInf(dist[j][i], 1) {
				continue
			}
			abs = dist[i][j] - dist[j][i]
			if abs < 0 {
				abs = -abs
			}
			if abs > symTol || math.IsNaN(abs) {
				return 0, ErrAsymmetry
			}
		}
	}

	return n, nil
}

// maxFinite returns the largest finite entry of dist (0 for all-zero).
// Caller guarantees a validated matrix.
//
// Complexity: O(n²).
func maxFinite(dist [][]float64) float64 {
	var (
		best float64
		i, j int
	)
	for i = 0; i < len(dist); i++ {
		for j = 0; j < len(dist[i]); j++ {
			if !math.IsInf(dist[i][j], 1) && dist[i][j] > best {
				best = dist[i][j]
			}
		}
	}
	return best
}
