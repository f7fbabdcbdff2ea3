// Package qubo - exact classical baseline.
package qubo

import "math"

// Tour holds the outcome of the classical baseline solver.
type Tour struct {
	// Order is the sequence of city indices, starting and ending at 0.
	// For n cities, len(Order) == n+1 and Order[0] == Order[n] == 0.
	Order []int

	// Cost is the total distance of the cycle.
	Cost float64
}

// SolveExact solves the TSP exactly on dist with the Held-Karp
// dynamic-programming algorithm. It is the classical reference the
// variational pipeline is compared against, and the certificate that the
// optimal tour's bitstring encoding passes Feasible.
//
// A value of math.Inf(1) marks a missing edge; if no Hamiltonian cycle
// exists, ErrIncompleteGraph is returned.
//
// Subsets are indexed by bitmask: dp[mask][j] is the minimum cost to start
// at 0, visit exactly the cities in mask, and end at j. The tour is closed
// by returning from j to 0 and reconstructed from a parent table.
//
// Complexity: O(n² · 2ⁿ) time, O(n · 2ⁿ) space - small instances only
// (n ≲ 16).
func SolveExact(dist [][]float64) (Tour, error) {
	n, err := validateDistances(dist, true)
	if err != nil {
		return Tour{}, err
	}

	allMask := (1 << uint(n)) - 1
	startMask := 1

	dp := make([][]float64, 1<<uint(n))
	parent := make([][]int, 1<<uint(n))
	var mask, j, k int
	for mask = 0; mask <= allMask; mask++ {
		dp[mask] = make([]float64, n)
		parent[mask] = make([]int, n)
		for j = 0; j < n; j++ {
			dp[mask][j] = math.Inf(1)
			parent[mask][j] = -1
		}
	}
	dp[startMask][0] = 0

	for mask = 0; mask <= allMask; mask++ {
		if mask&startMask == 0 {
			continue
		}
		for j = 1; j < n; j++ {
			if mask&(1<<uint(j)) == 0 {
				continue
			}
			prevMask := mask ^ (1 << uint(j))
			for k = 0; k < n; k++ {
				if prevMask&(1<<uint(k)) == 0 {
					continue
				}
				c := dist[k][j]
				if math.IsInf(c, 1) {
					continue
				}
				cand := dp[prevMask][k] + c
				if cand < dp[mask][j] {
					dp[mask][j] = cand
					parent[mask][j] = k
				}
			}
		}
	}

	// Close the cycle back to 0.
	var (
		bestCost = math.Inf(1)
		last     = -1
	)
	for j = 1; j < n; j++ {
		c := dist[j][0]
		if math.IsInf(c, 1) {
			continue
		}
		total := dp[allMask][j] + c
		if total < bestCost {
			bestCost = total
			last = j
		}
	}
	if last < 0 || math.IsInf(bestCost, 1) {
		return Tour{}, ErrIncompleteGraph
	}

	// Reconstruct from the parent table.
	order := make([]int, n+1)
	order[n] = 0
	mask = allMask
	j = last
	for i := n - 1; i >= 1; i-- {
		order[i] = j
		p := parent[mask][j]
		mask ^= 1 << uint(j)
		j = p
	}
	order[0] = 0

	return Tour{Order: order, Cost: bestCost}, nil
}
