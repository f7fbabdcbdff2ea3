// Package qubo - model types and sentinel error set.
//
// This file defines ONLY the QUBO model types, the options surface and the
// package-level sentinel errors. All operations MUST return these
// sentinels and tests MUST check them via errors.Is. No function in this
// package panics on user input.
package qubo

import "errors"

var (
	// ErrDimensionMismatch covers malformed shapes: ragged or undersized
	// matrices, bitstrings of the wrong length, out-of-range indices.
	ErrDimensionMismatch = errors.New("qubo: dimension mismatch")

	// ErrNonSquare signals a distance matrix that is not n×n.
	ErrNonSquare = errors.New("qubo: distance matrix is not square")

	// ErrNonZeroDiagonal signals a self-distance outside tolerance.
	ErrNonZeroDiagonal = errors.New("qubo: diagonal not zero within eps")

	// ErrAsymmetry signals d[i][j] != d[j][i] within tolerance; the
	// permutation encoding targets symmetric instances only.
	ErrAsymmetry = errors.New("qubo: distance matrix is not symmetric within eps")

	// ErrNegativeWeight signals a negative distance.
	ErrNegativeWeight = errors.New("qubo: negative distance")

	// ErrNaNInf signals a NaN or ±Inf distance; the QUBO encoding requires
	// complete finite instances.
	ErrNaNInf = errors.New("qubo: NaN or Inf distance")

	// ErrTooFewCities rejects instances with fewer than three cities.
	ErrTooFewCities = errors.New("qubo: instance needs at least 3 cities")

	// ErrBadPenalty rejects a non-positive or non-finite one-hot penalty.
	ErrBadPenalty = errors.New("qubo: penalty must be positive and finite")

	// ErrNotPermutation is returned by DecodeTour for bitstrings that do
	// not encode a valid permutation (Feasible == false).
	ErrNotPermutation = errors.New("qubo: bitstring does not encode a permutation")

	// ErrBadBitstring is returned by ParseBits for characters other than
	// '0' and '1'.
	ErrBadBitstring = errors.New("qubo: malformed bitstring")

	// ErrIncompleteGraph is returned by SolveExact when no Hamiltonian
	// cycle exists under the given (possibly +Inf-punctured) matrix.
	ErrIncompleteGraph = errors.New("qubo: incomplete distance matrix")
)

// Entry is a single QUBO coefficient. I == J encodes a linear term,
// I < J a quadratic one. Mirrors the coefficient-list problem shape used
// by annealing interfaces.
type Entry struct {
	I     int
	J     int
	Value float64
}

// Model is an immutable-once-built QUBO over Size binary variables with a
// scalar offset. For TSP encodings Cities is the city count n and
// Size == n².
type Model struct {
	entries []Entry
	size    int
	cities  int
	offset  float64
}

// Size returns the number of binary variables.
func (m *Model) Size() int { return m.size }

// Cities returns the city count n of a TSP encoding (0 for generic models).
func (m *Model) Cities() int { return m.cities }

// Offset returns the constant energy offset.
func (m *Model) Offset() float64 { return m.offset }

// Entries returns the coefficient list sorted by (I, J).
// Callers must not mutate the returned slice.
func (m *Model) Entries() []Entry { return m.entries }

// Option mutates encode-time options. Safe to apply repeatedly.
type Option func(*Options)

// Options stores the effective encoding configuration; resolve via
// gatherOptions inside the public entry points.
type Options struct {
	// penalty is the one-hot constraint weight A; 0 means "derive from
	// the instance" (n · max distance).
	penalty float64
}

// WithPenalty fixes the one-hot penalty weight instead of deriving it
// from the instance. Validation happens at encode time (ErrBadPenalty).
func WithPenalty(a float64) Option {
	return func(o *Options) { o.penalty = a }
}

// gatherOptions applies opts over defaults.
//
// Complexity: O(len(opts)).
func gatherOptions(opts []Option) Options {
	var o Options
	for _, apply := range opts {
		apply(&o)
	}
	return o
}
