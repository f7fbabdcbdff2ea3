// Package vqe - the variational loop driver.
//
// Design principles:
//   - The minimizer controls termination; the driver only evaluates,
//     records and forwards.
//   - First estimator failure wins: it is recorded, the optimization is
//     signalled to stop via the problem status, and the recorded error is
//     what the caller sees - regardless of what the minimizer reports.
//   - Deterministic: the derived initial point is seed-routed; the
//     Nelder-Mead simplex walk involves no randomness of its own.
package vqe

import (
	"context"
	"fmt"
	"math"
	"math/rand"

	"gonum.org/v1/gonum/optimize"

	"github.com/katalvlaran/qvar/circuit"
	"github.com/katalvlaran/qvar/pauli"
	"github.com/katalvlaran/qvar/simulate"
)

// defaultRNGSeed is the fixed "zero" seed used when callers pass seed==0.
const defaultRNGSeed int64 = 1

// Minimize searches the circuit's parameter space for the minimum
// expectation value of obs, delegating the search policy to Nelder-Mead.
//
// Contract:
//   - est, c and obs must be non-nil (ErrNilInput); obs and c registers
//     must agree (surfaced by the estimator on the first call).
//   - options must validate against c.NumParams() (ErrBadOptions).
//
// Per iteration the driver binds the candidate vector, requests exactly
// one scalar from est, appends it to the trace and returns it to the
// minimizer. If the estimation call fails or the binding is rejected, the
// run aborts with that error; the partial trace is still returned inside
// Result for diagnostics.
//
// Exhausting the iteration budget is normal termination with
// Converged == false (the best point found so far is returned as-is).
//
// Complexity: one estimator call per minimizer evaluation; everything
// else is O(NumParams) bookkeeping per call.
func Minimize(ctx context.Context, est simulate.Estimator, c *circuit.Circuit, obs *pauli.Observable, opts ...Option) (Result, error) {
	if est == nil || c == nil || obs == nil {
		return Result{}, ErrNilInput
	}

	o := gatherOptions(opts)
	if err := o.validate(c.NumParams()); err != nil {
		return Result{}, err
	}

	var (
		trace   Trace
		callErr error
	)

	objective := func(x []float64) float64 {
		if callErr != nil {
			// Already failed; starve the minimizer until Status stops it.
			return math.NaN()
		}

		b, err := c.Bind(x)
		if err != nil {
			callErr = err
			return math.NaN()
		}

		val, err := est.Estimate(ctx, b, obs)
		if err != nil {
			callErr = err
			return math.NaN()
		}

		trace.Iterations++
		trace.Energies = append(trace.Energies, val)
		trace.LastParams = b.Params()

		return val
	}

	problem := optimize.Problem{
		Func: objective,
		Status: func() (optimize.Status, error) {
			if callErr != nil {
				return optimize.Failure, callErr
			}
			if err := ctx.Err(); err != nil {
				return optimize.Failure, err
			}
			return optimize.NotTerminated, nil
		},
	}

	settings := &optimize.Settings{
		MajorIterations: o.maxIterations,
		Converger: &optimize.FunctionConverge{
			Absolute:   o.tolerance,
			Iterations: convergeWindow,
		},
	}

	res, optErr := optimize.Minimize(problem, initialPoint(o, c.NumParams()), settings, &optimize.NelderMead{})

	// The recorded estimator/binding error outranks whatever shape the
	// minimizer's own report took.
	if callErr != nil {
		return Result{Trace: trace}, fmt.Errorf("Minimize: %w", callErr)
	}
	if optErr != nil {
		return Result{Trace: trace}, fmt.Errorf("Minimize: %w", optErr)
	}

	converged := res.Status == optimize.FunctionConvergence ||
		res.Status == optimize.MethodConverge ||
		res.Status == optimize.FunctionThreshold

	params := make([]float64, len(res.X))
	copy(params, res.X)

	return Result{
		Params:    params,
		Energy:    res.F,
		Converged: converged,
		Trace:     trace,
	}, nil
}

// initialPoint resolves the starting vector: a copy of the configured one
// when present, otherwise seed-derived angles uniform in
// [-initSpread, +initSpread].
//
// Complexity: O(numParams).
func initialPoint(o Options, numParams int) []float64 {
	x := make([]float64, numParams)
	if o.initialPoint != nil {
		copy(x, o.initialPoint)
		return x
	}

	seed := o.seed
	if seed == 0 {
		seed = defaultRNGSeed
	}
	rng := rand.New(rand.NewSource(seed))
	for i := range x {
		x[i] = (2*rng.Float64() - 1) * initSpread
	}
	return x
}
