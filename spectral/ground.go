// Package spectral - exact ground-state computation.
package spectral

import (
	"errors"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/qvar/pauli"
)

var (
	// ErrNilObservable rejects a nil observable.
	ErrNilObservable = errors.New("spectral: nil observable")

	// ErrEigenFailed indicates the symmetric eigendecomposition did not
	// converge. With finite inputs this should not happen in practice.
	ErrEigenFailed = errors.New("spectral: eigendecomposition failed")
)

// GroundState diagonalizes obs exactly and returns its minimum eigenvalue
// together with the corresponding normalized eigenvector in the
// computational basis (entry i is the amplitude of basis state i under
// the register's bit-order convention).
//
// Contract:
//   - obs must be non-nil (ErrNilObservable), Y-free
//     (pauli.ErrComplexSpectrum) and small enough for the dense form
//     (pauli.ErrTooLarge).
//
// Complexity: O(8^n) time for the eigensolve on a 2^n-dimensional
// matrix, O(4^n) space.
func GroundState(obs *pauli.Observable) (float64, []float64, error) {
	if obs == nil {
		return 0, nil, ErrNilObservable
	}

	dense, err := obs.Dense()
	if err != nil {
		return 0, nil, err
	}

	dim := len(dense)
	sym := mat.NewSymDense(dim, nil)
	var r, c int
	for r = 0; r < dim; r++ {
		for c = r; c < dim; c++ {
			sym.SetSym(r, c, dense[r][c])
		}
	}

	var eig mat.EigenSym
	if ok := eig.Factorize(sym, true); !ok {
		return 0, nil, ErrEigenFailed
	}

	// EigenSym sorts eigenvalues in ascending order, so the ground state
	// is column 0 of the eigenvector matrix.
	values := eig.Values(nil)

	var vectors mat.Dense
	eig.VectorsTo(&vectors)

	ground := make([]float64, dim)
	mat.Col(ground, 0, &vectors)

	return values[0], ground, nil
}
