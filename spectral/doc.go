// Package spectral - exact diagonalization of small observables.
//
// What it is:
//   - A reference oracle for the variational layer: materialize the
//     observable as a dense real symmetric matrix and diagonalize it
//     exactly, yielding the true ground-state energy and eigenvector to
//     compare variational results against.
//
// Design principles:
//   - Deliberately exponential: the dense form costs O(4^n) space, so the
//     package is a cross-check tool for small registers, never a solver.
//   - Real spectra only: observables carrying Y factors have no real
//     symmetric realization and are rejected up front.
//   - No logging, no panics on user input - only sentinel errors.
//
// Use GroundState to obtain the minimum eigenvalue and its normalized
// eigenvector in the computational basis.
package spectral
