package vqe_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qvar/ansatz"
	"github.com/katalvlaran/qvar/circuit"
	"github.com/katalvlaran/qvar/pauli"
	"github.com/katalvlaran/qvar/simulate"
	"github.com/katalvlaran/qvar/vqe"
)

// countingEstimator wraps a backend and records every call it serves.
type countingEstimator struct {
	inner      simulate.Estimator
	calls      int
	lastParams []float64
	failAfter  int // fail once this many calls have been served (0 = never)
	failWith   error
}

func (e *countingEstimator) Estimate(ctx context.Context, b circuit.Bound, obs *pauli.Observable) (float64, error) {
	if e.failAfter > 0 && e.calls >= e.failAfter {
		return 0, e.failWith
	}
	e.calls++
	e.lastParams = b.Params()
	return e.inner.Estimate(ctx, b, obs)
}

func TestMinimize_RejectsNilAndBadOptions(t *testing.T) {
	ctx := context.Background()
	backend := simulate.NewExact()

	c, err := ansatz.TwoLocal(2, 1)
	require.NoError(t, err)
	obs, err := pauli.TransverseFieldIsing(2, 1, 0)
	require.NoError(t, err)

	_, err = vqe.Minimize(ctx, nil, c, obs)
	require.ErrorIs(t, err, vqe.ErrNilInput)
	_, err = vqe.Minimize(ctx, backend, nil, obs)
	require.ErrorIs(t, err, vqe.ErrNilInput)
	_, err = vqe.Minimize(ctx, backend, c, nil)
	require.ErrorIs(t, err, vqe.ErrNilInput)

	_, err = vqe.Minimize(ctx, backend, c, obs, vqe.WithMaxIterations(0))
	require.ErrorIs(t, err, vqe.ErrBadOptions)
	_, err = vqe.Minimize(ctx, backend, c, obs, vqe.WithTolerance(-1))
	require.ErrorIs(t, err, vqe.ErrBadOptions)
	_, err = vqe.Minimize(ctx, backend, c, obs, vqe.WithInitialPoint([]float64{1}))
	require.ErrorIs(t, err, vqe.ErrBadOptions)
}

func TestMinimize_IsingGroundStateWithinTolerance(t *testing.T) {
	// 2-qubit Ising with J=1, b=0: exact ground-state energy is -1.
	ctx := context.Background()
	backend := simulate.NewExact()

	c, err := ansatz.TwoLocal(2, 1)
	require.NoError(t, err)
	obs, err := pauli.TransverseFieldIsing(2, 1, 0)
	require.NoError(t, err)

	res, err := vqe.Minimize(ctx, backend, c, obs, vqe.WithSeed(3))
	require.NoError(t, err)
	require.InDelta(t, -1, res.Energy, 1e-2)
	require.Len(t, res.Params, c.NumParams())
	require.NotEmpty(t, res.Trace.Energies)
}

func TestMinimize_TraceCountsEstimatorCalls(t *testing.T) {
	ctx := context.Background()

	c, err := ansatz.TwoLocal(2, 1)
	require.NoError(t, err)
	obs, err := pauli.TransverseFieldIsing(2, 1, 0.5)
	require.NoError(t, err)

	est := &countingEstimator{inner: simulate.NewExact()}
	res, err := vqe.Minimize(ctx, est, c, obs, vqe.WithMaxIterations(40))
	require.NoError(t, err)

	// The trace counts exactly the calls the estimator served, and its
	// recorded vector is the last one estimation actually saw.
	require.Equal(t, est.calls, res.Trace.Iterations)
	require.Len(t, res.Trace.Energies, est.calls)
	require.Equal(t, est.lastParams, res.Trace.LastParams)
}

func TestMinimize_EstimatorFailureIsHardStop(t *testing.T) {
	ctx := context.Background()

	c, err := ansatz.TwoLocal(2, 1)
	require.NoError(t, err)
	obs, err := pauli.TransverseFieldIsing(2, 1, 0)
	require.NoError(t, err)

	boom := errors.New("backend unavailable")
	est := &countingEstimator{inner: simulate.NewExact(), failAfter: 5, failWith: boom}

	res, err := vqe.Minimize(ctx, est, c, obs)
	require.ErrorIs(t, err, boom)
	// The partial trace survives for diagnostics: exactly the calls that
	// succeeded before the failure.
	require.Equal(t, 5, res.Trace.Iterations)
}

func TestMinimize_ContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c, err := ansatz.TwoLocal(2, 1)
	require.NoError(t, err)
	obs, err := pauli.TransverseFieldIsing(2, 1, 0)
	require.NoError(t, err)

	_, err = vqe.Minimize(ctx, simulate.NewExact(), c, obs)
	require.ErrorIs(t, err, context.Canceled)
}

func TestMinimize_IterationBudgetIsNotAnError(t *testing.T) {
	ctx := context.Background()

	c, err := ansatz.TwoLocal(2, 2)
	require.NoError(t, err)
	obs, err := pauli.TransverseFieldIsing(2, 1, 0.5)
	require.NoError(t, err)

	// A budget this small cannot converge; the best point so far is
	// still returned without an error.
	res, err := vqe.Minimize(ctx, simulate.NewExact(), c, obs,
		vqe.WithMaxIterations(3), vqe.WithTolerance(1e-12))
	require.NoError(t, err)
	require.False(t, res.Converged)
	require.NotEmpty(t, res.Trace.Energies)
}

func TestMinimize_DeterministicPerSeed(t *testing.T) {
	ctx := context.Background()

	c, err := ansatz.TwoLocal(2, 1)
	require.NoError(t, err)
	obs, err := pauli.TransverseFieldIsing(2, 1, 0.3)
	require.NoError(t, err)

	a, err := vqe.Minimize(ctx, simulate.NewExact(), c, obs, vqe.WithSeed(11))
	require.NoError(t, err)
	b, err := vqe.Minimize(ctx, simulate.NewExact(), c, obs, vqe.WithSeed(11))
	require.NoError(t, err)

	require.Equal(t, a.Energy, b.Energy)
	require.Equal(t, a.Trace.Energies, b.Trace.Energies)
}
