// Package qubo - TSP permutation encoding.
package qubo

import (
	"math"
	"sort"
)

// FromDistances encodes a symmetric TSP instance as a QUBO over n² binary
// variables x[v·n+p] (city v at tour position p).
//
// Objective:
//
//	Σ_{v≠w} Σ_p d[v][w] · x[v,p] · x[w,(p+1) mod n]
//
// Constraints (one city per position, one position per city), as one-hot
// penalties of weight A:
//
//	A · Σ_v (1 − Σ_p x[v,p])²  +  A · Σ_p (1 − Σ_v x[v,p])²
//
// Expanded with x² = x ((1−s)² = 1 − s + 2·Σ_{p<q} x_p x_q) this yields
// the stored form: offset 2nA, linear −A per variable per constraint
// (−2A combined), +2A per same-row and same-column pair.
//
// Contract:
//   - dist must pass validateDistances with no +Inf entries.
//   - the derived default penalty is n · max(dist); override with
//     WithPenalty (must be positive and finite, else ErrBadPenalty).
//
// The penalty must dominate tour costs for minima to be permutations;
// the default is a heuristic bias, not a proof - always gate samples
// through Feasible.
//
// Complexity: O(n³) time, O(n³) entries... more precisely O(n³) quadratic
// coefficients (n² distance pairs × n positions, plus 2·n·C(n,2) penalty
// pairs).
func FromDistances(dist [][]float64, opts ...Option) (*Model, error) {
	n, err := validateDistances(dist, false)
	if err != nil {
		return nil, err
	}

	o := gatherOptions(opts)
	penalty := o.penalty
	if penalty == 0 {
		penalty = float64(n) * maxFinite(dist)
		if penalty == 0 {
			// Degenerate all-zero instance: any positive weight works.
			penalty = 1
		}
	}
	if penalty <= 0 || math.IsNaN(penalty) || math.IsInf(penalty, 0) {
		return nil, ErrBadPenalty
	}

	var (
		size = n * n
		// coeff accumulates with canonical (i ≤ j) keys for determinism.
		coeff = make(map[[2]int]float64, size*n)
		add   = func(i, j int, v float64) {
			if j < i {
				i, j = j, i
			}
			coeff[[2]int{i, j}] += v
		}
		v, w, p, q int
	)

	// Stage 1: tour-cost objective.
	for v = 0; v < n; v++ {
		for w = 0; w < n; w++ {
			if v == w {
				continue
			}
			for p = 0; p < n; p++ {
				add(v*n+p, w*n+(p+1)%n, dist[v][w])
			}
		}
	}

	// Stage 2: one-hot rows (each city in exactly one position).
	for v = 0; v < n; v++ {
		for p = 0; p < n; p++ {
			add(v*n+p, v*n+p, -penalty)
			for q = p + 1; q < n; q++ {
				add(v*n+p, v*n+q, 2*penalty)
			}
		}
	}

	// Stage 3: one-hot columns (each position holds exactly one city).
	for p = 0; p < n; p++ {
		for v = 0; v < n; v++ {
			add(v*n+p, v*n+p, -penalty)
			for q = v + 1; q < n; q++ {
				add(v*n+p, q*n+p, 2*penalty)
			}
		}
	}

	// Stage 4: flatten deterministically, dropping exact zeros.
	entries := make([]Entry, 0, len(coeff))
	for key, val := range coeff {
		if val == 0 {
			continue
		}
		entries = append(entries, Entry{I: key[0], J: key[1], Value: val})
	}
	sort.Slice(entries, func(a, b int) bool {
		if entries[a].I != entries[b].I {
			return entries[a].I < entries[b].I
		}
		return entries[a].J < entries[b].J
	})

	return &Model{
		entries: entries,
		size:    size,
		cities:  n,
		offset:  2 * float64(n) * penalty,
	}, nil
}

// Energy evaluates the QUBO on a bit assignment: offset + Σ c_ij·x_i·x_j.
//
// Contract: len(bits) == Size, entries ∈ {0,1}; ErrDimensionMismatch.
//
// Complexity: O(len(entries)).
func (m *Model) Energy(bits []int) (float64, error) {
	if len(bits) != m.size {
		return 0, ErrDimensionMismatch
	}
	var i int
	for i = 0; i < len(bits); i++ {
		if bits[i] != 0 && bits[i] != 1 {
			return 0, ErrDimensionMismatch
		}
	}

	var total = m.offset
	for i = 0; i < len(m.entries); i++ {
		e := m.entries[i]
		if bits[e.I] == 1 && bits[e.J] == 1 {
			total += e.Value
		}
	}

	return total, nil
}
