// Package vqe - run records, options surface and sentinel error set.
package vqe

import (
	"errors"
	"math"
)

var (
	// ErrNilInput rejects a nil circuit, observable or estimator.
	ErrNilInput = errors.New("vqe: nil circuit, observable or estimator")

	// ErrBadOptions rejects inconsistent option combinations: a
	// non-positive iteration budget or tolerance, or an initial point
	// whose length disagrees with the circuit's parameter count.
	ErrBadOptions = errors.New("vqe: invalid options")
)

// Trace is the per-run cost history, owned by the run that produced it.
// It is mutated exactly once per estimator call and never read by the
// circuit layer.
type Trace struct {
	// Iterations counts estimator calls (== len(Energies)).
	Iterations int

	// LastParams is a copy of the final vector passed to estimation.
	LastParams []float64

	// Energies holds every scalar returned by the estimator, in call
	// order.
	Energies []float64
}

// Result is the outcome of one variational run.
type Result struct {
	// Params is the minimizer's best point.
	Params []float64

	// Energy is the cost at Params.
	Energy float64

	// Converged reports whether the minimizer met its tolerance before
	// exhausting the iteration budget. False is not a failure.
	Converged bool

	// Trace is this run's cost history.
	Trace Trace
}

// Defaults for the options surface.
const (
	// DefaultMaxIterations bounds the minimizer's major iterations.
	DefaultMaxIterations = 500

	// DefaultTolerance is the absolute function-convergence tolerance.
	DefaultTolerance = 1e-6

	// convergeWindow is the number of stagnant iterations the function
	// converger requires before declaring convergence.
	convergeWindow = 25

	// initSpread bounds the derived initial angles: |θ| ≤ initSpread.
	initSpread = 0.1
)

// Option mutates run options. Safe to apply repeatedly.
type Option func(*Options)

// Options stores the effective run configuration; resolved via
// gatherOptions inside Minimize.
type Options struct {
	maxIterations int
	tolerance     float64
	initialPoint  []float64
	seed          int64
}

// WithMaxIterations caps the minimizer's major iterations.
func WithMaxIterations(n int) Option {
	return func(o *Options) { o.maxIterations = n }
}

// WithTolerance sets the absolute function-convergence tolerance.
func WithTolerance(tol float64) Option {
	return func(o *Options) { o.tolerance = tol }
}

// WithInitialPoint fixes the starting parameter vector instead of
// deriving one from the seed. The slice is copied at run start.
func WithInitialPoint(x []float64) Option {
	return func(o *Options) { o.initialPoint = x }
}

// WithSeed routes the seed used to derive the initial point when none is
// given (0 keeps the stable default stream).
func WithSeed(seed int64) Option {
	return func(o *Options) { o.seed = seed }
}

// gatherOptions applies opts over defaults.
//
// Complexity: O(len(opts)).
func gatherOptions(opts []Option) Options {
	o := Options{
		maxIterations: DefaultMaxIterations,
		tolerance:     DefaultTolerance,
	}
	for _, apply := range opts {
		apply(&o)
	}
	return o
}

// validate checks internal consistency of resolved options against the
// parameter count of the target circuit.
//
// Complexity: O(1).
func (o Options) validate(numParams int) error {
	if numParams < 1 {
		// A parameter-free circuit leaves nothing to optimize.
		return ErrBadOptions
	}
	if o.maxIterations < 1 {
		return ErrBadOptions
	}
	if o.tolerance <= 0 || math.IsNaN(o.tolerance) || math.IsInf(o.tolerance, 0) {
		return ErrBadOptions
	}
	if o.initialPoint != nil && len(o.initialPoint) != numParams {
		return ErrBadOptions
	}
	return nil
}
