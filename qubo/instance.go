// Package qubo - deterministic random instance generation.
package qubo

import "math"

// RandomInstance returns the symmetric distance matrix of n cities placed
// uniformly at random in the unit square, with Euclidean distances and a
// zero diagonal. Same (n, seed) ⇒ identical matrix on every platform.
//
// Contract: n ≥ 3, otherwise ErrTooFewCities.
//
// Complexity: O(n²) time and space.
func RandomInstance(n int, seed int64) ([][]float64, error) {
	if n < 3 {
		return nil, ErrTooFewCities
	}

	rng := rngFromSeed(seed)

	var (
		xs   = make([]float64, n)
		ys   = make([]float64, n)
		i, j int
	)
	for i = 0; i < n; i++ {
		xs[i] = rng.Float64()
		ys[i] = rng.Float64()
	}

	dist := make([][]float64, n)
	for i = 0; i < n; i++ {
		dist[i] = make([]float64, n)
	}
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			d := math.Hypot(xs[i]-xs[j], ys[i]-ys[j])
			dist[i][j] = d
			dist[j][i] = d
		}
	}

	return dist, nil
}
