package simulate_test

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qvar/ansatz"
	"github.com/katalvlaran/qvar/circuit"
	"github.com/katalvlaran/qvar/pauli"
	"github.com/katalvlaran/qvar/simulate"
)

const eps = 1e-12

func bell(t *testing.T) circuit.Bound {
	t.Helper()
	c, err := circuit.New(2, 0)
	require.NoError(t, err)
	require.NoError(t, c.H(0))
	require.NoError(t, c.CNOT(0, 1))
	b, err := c.Bind(nil)
	require.NoError(t, err)
	return b
}

func TestEstimate_ClassicalIsingStates(t *testing.T) {
	ctx := context.Background()
	backend := simulate.NewExact()

	obs, err := pauli.TransverseFieldIsing(2, 1, 0)
	require.NoError(t, err)

	// Identity circuit leaves |00⟩: energy -1.
	c, err := circuit.New(2, 0)
	require.NoError(t, err)
	b, err := c.Bind(nil)
	require.NoError(t, err)
	e, err := backend.Estimate(ctx, b, obs)
	require.NoError(t, err)
	require.InDelta(t, -1, e, eps)

	// Flipping one spin costs 2J.
	c, err = circuit.New(2, 0)
	require.NoError(t, err)
	require.NoError(t, c.X(0))
	b, err = c.Bind(nil)
	require.NoError(t, err)
	e, err = backend.Estimate(ctx, b, obs)
	require.NoError(t, err)
	require.InDelta(t, +1, e, eps)
}

func TestEstimate_RotationAngleResolution(t *testing.T) {
	ctx := context.Background()
	backend := simulate.NewExact()

	obs, err := pauli.New(1)
	require.NoError(t, err)
	require.NoError(t, obs.AddZ(1, 0))

	c, err := circuit.New(1, 1)
	require.NoError(t, err)
	require.NoError(t, c.RY(0, 0, +1))

	// RY(π)|0⟩ = |1⟩ ⇒ ⟨Z⟩ = -1.
	b, err := c.Bind([]float64{math.Pi})
	require.NoError(t, err)
	e, err := backend.Estimate(ctx, b, obs)
	require.NoError(t, err)
	require.InDelta(t, -1, e, eps)

	// RY(π/2)|0⟩ is the equator state ⇒ ⟨Z⟩ = 0.
	b, err = c.Bind([]float64{math.Pi / 2})
	require.NoError(t, err)
	e, err = backend.Estimate(ctx, b, obs)
	require.NoError(t, err)
	require.InDelta(t, 0, e, eps)
}

func TestEstimate_BellEntanglement(t *testing.T) {
	ctx := context.Background()
	backend := simulate.NewExact()

	// ⟨Z0 Z1⟩ = 1 on the Bell state, ⟨Z0⟩ = 0.
	zz, err := pauli.New(2)
	require.NoError(t, err)
	require.NoError(t, zz.AddZZ(1, 0, 1))

	e, err := backend.Estimate(ctx, bell(t), zz)
	require.NoError(t, err)
	require.InDelta(t, 1, e, eps)

	z0, err := pauli.New(2)
	require.NoError(t, err)
	require.NoError(t, z0.AddZ(1, 0))
	e, err = backend.Estimate(ctx, bell(t), z0)
	require.NoError(t, err)
	require.InDelta(t, 0, e, eps)
}

func TestEstimate_ControlledSwap(t *testing.T) {
	ctx := context.Background()
	backend := simulate.NewExact()

	// |110⟩ --CSwap(0;1,2)--> |101⟩, so Z2 flips to -1.
	c, err := circuit.New(3, 0)
	require.NoError(t, err)
	require.NoError(t, c.X(0))
	require.NoError(t, c.X(1))
	require.NoError(t, c.CSwap(0, 1, 2))
	b, err := c.Bind(nil)
	require.NoError(t, err)

	z2, err := pauli.New(3)
	require.NoError(t, err)
	require.NoError(t, z2.AddZ(1, 2))
	e, err := backend.Estimate(ctx, b, z2)
	require.NoError(t, err)
	require.InDelta(t, -1, e, eps)

	z1, err := pauli.New(3)
	require.NoError(t, err)
	require.NoError(t, z1.AddZ(1, 1))
	e, err = backend.Estimate(ctx, b, z1)
	require.NoError(t, err)
	require.InDelta(t, +1, e, eps)
}

func TestEstimate_Deterministic(t *testing.T) {
	ctx := context.Background()
	backend := simulate.NewExact()

	c, err := ansatz.TwoLocal(3, 2)
	require.NoError(t, err)
	theta := make([]float64, c.NumParams())
	for i := range theta {
		theta[i] = 0.1 * float64(i+1)
	}
	b, err := c.Bind(theta)
	require.NoError(t, err)

	obs, err := pauli.TransverseFieldIsing(3, 1, 0.7)
	require.NoError(t, err)

	e1, err := backend.Estimate(ctx, b, obs)
	require.NoError(t, err)
	e2, err := backend.Estimate(ctx, b, obs)
	require.NoError(t, err)
	require.Equal(t, e1, e2)
}

func TestEstimate_DimensionMismatch(t *testing.T) {
	obs, err := pauli.New(3)
	require.NoError(t, err)
	_, err = simulate.NewExact().Estimate(context.Background(), bell(t), obs)
	require.ErrorIs(t, err, simulate.ErrDimensionMismatch)
}

func TestEstimate_ContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := simulate.NewExact().Estimate(ctx, bell(t), mustZZ(t))
	require.ErrorIs(t, err, context.Canceled)
}

func mustZZ(t *testing.T) *pauli.Observable {
	t.Helper()
	obs, err := pauli.New(2)
	require.NoError(t, err)
	require.NoError(t, obs.AddZZ(1, 0, 1))
	return obs
}

func TestSample_BellCounts(t *testing.T) {
	ctx := context.Background()
	backend := simulate.NewExact(simulate.WithSeed(7))

	counts, err := backend.Sample(ctx, bell(t), 1000)
	require.NoError(t, err)

	var total int
	for key, c := range counts {
		require.Contains(t, []string{"00", "11"}, key)
		total += c
	}
	require.Equal(t, 1000, total)
	// Both outcomes appear at these shot counts.
	require.Greater(t, counts["00"], 0)
	require.Greater(t, counts["11"], 0)
}

func TestSample_DeterministicPerSeed(t *testing.T) {
	ctx := context.Background()

	a, err := simulate.NewExact(simulate.WithSeed(42)).Sample(ctx, bell(t), 256)
	require.NoError(t, err)
	b, err := simulate.NewExact(simulate.WithSeed(42)).Sample(ctx, bell(t), 256)
	require.NoError(t, err)
	require.Equal(t, a, b)

	c, err := simulate.NewExact(simulate.WithSeed(43)).Sample(ctx, bell(t), 256)
	require.NoError(t, err)
	require.NotEqual(t, a, c)
}

func TestSample_RejectsBadShots(t *testing.T) {
	_, err := simulate.NewExact().Sample(context.Background(), bell(t), 0)
	require.ErrorIs(t, err, simulate.ErrBadShots)
}

func TestRunner_JobLifecycle(t *testing.T) {
	ctx := context.Background()
	r := simulate.NewRunner(nil)

	job, err := r.RunEstimate(ctx, bell(t), mustZZ(t))
	require.NoError(t, err)
	require.NotEmpty(t, job.ID())
	require.Equal(t, simulate.JobCompleted, job.Status())
	require.InDelta(t, 1, job.Value(), eps)

	// Distinct submissions get distinct identifiers.
	job2, err := r.RunSample(ctx, bell(t), 16)
	require.NoError(t, err)
	require.NotEqual(t, job.ID(), job2.ID())
	require.Equal(t, simulate.JobCompleted, job2.Status())

	// Failures surface both via the job record and the plain error.
	bad, err := pauli.New(3)
	require.NoError(t, err)
	job3, err := r.RunEstimate(ctx, bell(t), bad)
	require.ErrorIs(t, err, simulate.ErrDimensionMismatch)
	require.Equal(t, simulate.JobFailed, job3.Status())
	require.ErrorIs(t, job3.Err(), simulate.ErrDimensionMismatch)
}

func TestSample_TSPAnsatzBitstringShape(t *testing.T) {
	ctx := context.Background()

	c, err := ansatz.TSP(3)
	require.NoError(t, err)
	theta := make([]float64, c.NumParams())
	for i := range theta {
		theta[i] = 0.3
	}
	b, err := c.Bind(theta)
	require.NoError(t, err)

	counts, err := simulate.NewExact(simulate.WithSeed(5)).Sample(ctx, b, 128)
	require.NoError(t, err)
	for key := range counts {
		require.Len(t, key, 9)
	}
}
