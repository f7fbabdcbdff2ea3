// Package vqe drives the hybrid variational loop: it repeatedly binds a
// candidate parameter vector to a fixed ansatz circuit, requests one
// exact expectation value of the target observable from an Estimator, and
// feeds the scalar to a derivative-free minimizer (gonum's Nelder-Mead),
// recording a per-run cost trace along the way.
//
// The driver owns nothing global: every run allocates its own Trace and
// returns it inside Result, so reusing the driver can never contaminate a
// later run with an earlier run's history.
//
// Termination is entirely the minimizer's: the driver contributes no
// stopping rule of its own and reports the minimizer's best point as
// final. Exhausting the iteration budget is NOT an error - Result carries
// Converged=false and the best point found so far. An estimation failure,
// by contrast, is a hard stop: the first error is recorded, the minimizer
// is signalled to terminate, and the error is returned - never replaced
// by a substitute value.
//
// Execution is single-threaded and blocking; cancellation flows through
// the context passed to Minimize.
package vqe
