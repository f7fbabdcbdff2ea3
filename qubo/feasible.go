// Package qubo - feasibility predicate and tour decoding.
//
// The swap-stage prior baked into the TSP ansatz biases sampling toward
// permutation-valid bitstrings but guarantees nothing; every sampled
// assignment must pass through Feasible before being scored as a tour.
package qubo

// Feasible reports whether bits encodes a valid permutation under the
// x[v·n+p] layout of a Cities-city model: exactly one set bit per row
// (city) and per column (position). Malformed lengths or non-binary
// entries simply report false - this is a predicate, not a validator.
//
// Complexity: O(n²) time, O(n) space.
func (m *Model) Feasible(bits []int) bool {
	n := m.cities
	if n < 3 || len(bits) != n*n {
		return false
	}

	var (
		rowSum = make([]int, n)
		colSum = make([]int, n)
		v, p   int
	)
	for v = 0; v < n; v++ {
		for p = 0; p < n; p++ {
			switch bits[v*n+p] {
			case 0:
				// unset
			case 1:
				rowSum[v]++
				colSum[p]++
			default:
				return false
			}
		}
	}
	for v = 0; v < n; v++ {
		if rowSum[v] != 1 || colSum[v] != 1 {
			return false
		}
	}

	return true
}

// DecodeTour converts a feasible bitstring into a closed tour of length
// n+1 rotated to start (and end) at city 0, preserving orientation.
//
// Contract:
//   - Feasible(bits) must hold, otherwise ErrNotPermutation.
//
// Complexity: O(n²) time, O(n) space.
func (m *Model) DecodeTour(bits []int) ([]int, error) {
	if !m.Feasible(bits) {
		return nil, ErrNotPermutation
	}

	var (
		n       = m.cities
		byPos   = make([]int, n) // byPos[p] = city at position p
		v, p, s int
	)
	for v = 0; v < n; v++ {
		for p = 0; p < n; p++ {
			if bits[v*n+p] == 1 {
				byPos[p] = v
			}
		}
	}

	// Rotate so the tour starts at city 0.
	for p = 0; p < n; p++ {
		if byPos[p] == 0 {
			s = p
			break
		}
	}

	tour := make([]int, n+1)
	for p = 0; p < n; p++ {
		tour[p] = byPos[(s+p)%n]
	}
	tour[n] = tour[0]

	return tour, nil
}

// EncodeTour is the inverse of DecodeTour: it produces the bitstring of a
// closed tour (len n+1, tour[0] == tour[n], a permutation of 0..n-1).
// Useful for scoring known tours - e.g. the Held-Karp optimum - on the
// QUBO side.
//
// Complexity: O(n²) time and space.
func (m *Model) EncodeTour(tour []int) ([]int, error) {
	n := m.cities
	if len(tour) != n+1 || tour[0] != tour[n] {
		return nil, ErrNotPermutation
	}

	var (
		bits = make([]int, n*n)
		seen = make([]bool, n)
		p    int
	)
	for p = 0; p < n; p++ {
		v := tour[p]
		if v < 0 || v >= n || seen[v] {
			return nil, ErrNotPermutation
		}
		seen[v] = true
		bits[v*n+p] = 1
	}

	return bits, nil
}

// ParseBits converts a bitstring key (as produced by simulate.Counts;
// variable i is character i) into a bit slice for Feasible/Energy.
//
// Complexity: O(len(s)).
func ParseBits(s string) ([]int, error) {
	bits := make([]int, len(s))
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '0':
			bits[i] = 0
		case '1':
			bits[i] = 1
		default:
			return nil, ErrBadBitstring
		}
	}
	return bits, nil
}
