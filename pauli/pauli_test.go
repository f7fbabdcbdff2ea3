package pauli_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qvar/pauli"
)

const eps = 1e-12

func TestNew_RejectsBadSize(t *testing.T) {
	_, err := pauli.New(0)
	require.ErrorIs(t, err, pauli.ErrBadSize)
}

func TestAddTerm_Validation(t *testing.T) {
	obs, err := pauli.New(2)
	require.NoError(t, err)

	require.ErrorIs(t, obs.AddZ(math.NaN(), 0), pauli.ErrNonFiniteCoeff)
	require.ErrorIs(t, obs.AddZ(1, 2), pauli.ErrQubitOutOfRange)
	require.ErrorIs(t, obs.AddZZ(1, 1, 1), pauli.ErrDuplicateQubit)
	require.ErrorIs(t, obs.AddTerm(1, pauli.Op{Axis: 'Q', Qubit: 0}), pauli.ErrBadAxis)

	// Zero coefficients are dropped silently.
	require.NoError(t, obs.AddZ(0, 0))
	require.Empty(t, obs.Terms())
}

func TestTransverseFieldIsing_Shape(t *testing.T) {
	obs, err := pauli.TransverseFieldIsing(3, 1, 0.5)
	require.NoError(t, err)
	// 2 bonds + 3 fields.
	require.Len(t, obs.Terms(), 5)

	// h == 0 drops the field terms entirely.
	obs, err = pauli.TransverseFieldIsing(3, 1, 0)
	require.NoError(t, err)
	require.Len(t, obs.Terms(), 2)
}

func TestExpectation_ClassicalIsing(t *testing.T) {
	obs, err := pauli.TransverseFieldIsing(2, 1, 0)
	require.NoError(t, err)

	// |00⟩ is a ground state of -Z0Z1: energy -1.
	state := make([]complex128, 4)
	state[0] = 1
	e, err := obs.Expectation(state)
	require.NoError(t, err)
	require.InDelta(t, -1, e, eps)

	// |01⟩ flips one spin: energy +1.
	state[0], state[1] = 0, 1
	e, err = obs.Expectation(state)
	require.NoError(t, err)
	require.InDelta(t, +1, e, eps)
}

func TestExpectation_XOnPlusState(t *testing.T) {
	obs, err := pauli.New(1)
	require.NoError(t, err)
	require.NoError(t, obs.AddX(1, 0))

	inv := complex(1/math.Sqrt2, 0)
	e, err := obs.Expectation([]complex128{inv, inv})
	require.NoError(t, err)
	require.InDelta(t, 1, e, eps)
}

func TestExpectation_YTerm(t *testing.T) {
	obs, err := pauli.New(1)
	require.NoError(t, err)
	require.NoError(t, obs.AddTerm(1, pauli.Op{Axis: pauli.AxisY, Qubit: 0}))

	// (|0⟩ + i|1⟩)/√2 is the +1 eigenstate of Y.
	inv := 1 / math.Sqrt2
	e, err := obs.Expectation([]complex128{complex(inv, 0), complex(0, inv)})
	require.NoError(t, err)
	require.InDelta(t, 1, e, eps)
}

func TestExpectation_DimensionMismatch(t *testing.T) {
	obs, err := pauli.New(2)
	require.NoError(t, err)
	_, err = obs.Expectation(make([]complex128, 3))
	require.ErrorIs(t, err, pauli.ErrDimensionMismatch)
}

func TestBasisEnergy_Diagonal(t *testing.T) {
	obs, err := pauli.TransverseFieldIsing(2, 1, 0)
	require.NoError(t, err)

	e, err := obs.BasisEnergy([]int{0, 0})
	require.NoError(t, err)
	require.InDelta(t, -1, e, eps)

	e, err = obs.BasisEnergy([]int{1, 0})
	require.NoError(t, err)
	require.InDelta(t, +1, e, eps)

	e, err = obs.BasisEnergy([]int{1, 1})
	require.NoError(t, err)
	require.InDelta(t, -1, e, eps)
}

func TestBasisEnergy_RejectsNonDiagonal(t *testing.T) {
	obs, err := pauli.TransverseFieldIsing(2, 1, 0.5)
	require.NoError(t, err)
	_, err = obs.BasisEnergy([]int{0, 0})
	require.ErrorIs(t, err, pauli.ErrNotDiagonal)
}

func TestDense_TransverseFieldIsing(t *testing.T) {
	obs, err := pauli.TransverseFieldIsing(2, 1, 0.5)
	require.NoError(t, err)

	m, err := obs.Dense()
	require.NoError(t, err)
	require.Len(t, m, 4)

	// Diagonal of -Z0Z1 in basis order 00,01,10,11.
	require.InDelta(t, -1, m[0][0], eps)
	require.InDelta(t, +1, m[1][1], eps)
	require.InDelta(t, +1, m[2][2], eps)
	require.InDelta(t, -1, m[3][3], eps)

	// -0.5·X entries connect Hamming-distance-1 states; symmetry holds.
	var r, c int
	for r = 0; r < 4; r++ {
		for c = 0; c < 4; c++ {
			require.InDelta(t, m[c][r], m[r][c], eps)
		}
	}
	require.InDelta(t, -0.5, m[0][1], eps)
	require.InDelta(t, -0.5, m[0][2], eps)
	require.InDelta(t, 0, m[0][3], eps)
}

func TestDense_RejectsYAndHugeRegisters(t *testing.T) {
	obs, err := pauli.New(1)
	require.NoError(t, err)
	require.NoError(t, obs.AddTerm(1, pauli.Op{Axis: pauli.AxisY, Qubit: 0}))
	_, err = obs.Dense()
	require.ErrorIs(t, err, pauli.ErrComplexSpectrum)

	big, err := pauli.New(20)
	require.NoError(t, err)
	_, err = big.Dense()
	require.ErrorIs(t, err, pauli.ErrTooLarge)
}

func TestOffset_FoldsIntoAllEvaluations(t *testing.T) {
	obs, err := pauli.New(1)
	require.NoError(t, err)
	require.NoError(t, obs.AddConstant(2.5))
	require.NoError(t, obs.AddZ(1, 0))

	e, err := obs.BasisEnergy([]int{0})
	require.NoError(t, err)
	require.InDelta(t, 3.5, e, eps)

	state := []complex128{1, 0}
	e, err = obs.Expectation(state)
	require.NoError(t, err)
	require.InDelta(t, 3.5, e, eps)

	m, err := obs.Dense()
	require.NoError(t, err)
	require.InDelta(t, 3.5, m[0][0], eps)
	require.InDelta(t, 1.5, m[1][1], eps)
}

func TestScale_MultipliesCoefficientsAndOffset(t *testing.T) {
	obs, err := pauli.New(2)
	require.NoError(t, err)
	require.NoError(t, obs.AddZZ(1, 0, 1))
	require.NoError(t, obs.AddConstant(0.5))

	require.NoError(t, obs.Scale(-2))

	e, err := obs.BasisEnergy([]int{0, 0})
	require.NoError(t, err)
	require.InDelta(t, -3, e, eps) // -2·(1 + 0.5)

	require.ErrorIs(t, obs.Scale(math.NaN()), pauli.ErrNonFiniteCoeff)

	require.NoError(t, obs.Scale(0))
	require.Empty(t, obs.Terms())
	require.Zero(t, obs.Offset())
}
