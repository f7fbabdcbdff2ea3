// Package qvar is your in-memory playground for variational quantum
// optimization — from circuit primitives to QUBO encodings, exact
// statevector simulation and Ising ground-state search.
//
// 🚀 What is qvar?
//
//	A deterministic, reproducible library that brings together:
//		• Circuit primitives: parameterized gates, symbolic angles, binding
//		• Ansatz construction: permutation-aware TSP circuits, two-local layers
//		• Pauli observables: weighted X/Y/Z strings, transverse-field Ising
//		• QUBO encodings: TSP one-hot grids, penalty terms, Ising mapping
//		• Simulation: exact statevector expectation values & shot sampling
//		• Variational driver: Nelder-Mead energy minimization (VQE)
//		• Spectral oracle: dense exact diagonalization for small registers
//
// ✨ Why choose qvar?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Rock-solid guarantees – sentinel errors, no hidden randomness
//   - Reproducible – every stochastic path is seed-routed
//   - Honest – an exact classical oracle ships next to the variational loop
//
// Under the hood, everything is organized under seven subpackages:
//
//	ansatz/   — parameterized trial circuits (TSP grid, two-local)
//	circuit/  — gate sequences, registers, parameter binding
//	pauli/    — observables as weighted Pauli strings + Ising builders
//	qubo/     — quadratic binary models, TSP encoding, Held-Karp reference
//	simulate/ — exact statevector backend: expectation, sampling, jobs
//	spectral/ — dense diagonalization oracle for small observables
//	vqe/      — the variational minimization driver
//
// Quick ASCII example:
//
//	distances ──► qubo.FromDistances ──► Model.ToIsing ──► vqe.Minimize
//	                                                          │
//	                    tour ◄── Model.DecodeTour ◄── Sample ◄┘
//
// Dive into examples/ for complete scenarios: Ising chains cross-checked
// against exact spectra, and a full TSP round-trip from distance matrix
// to decoded tour.
//
//	go get github.com/katalvlaran/qvar
package qvar
