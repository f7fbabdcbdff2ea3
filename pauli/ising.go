// Package pauli - transverse-field Ising model construction.
package pauli

// TransverseFieldIsing builds the open-chain transverse-field Ising
// Hamiltonian over n spins:
//
//	H = -J · Σ_{i=0}^{n-2} Z_i Z_{i+1}  -  h · Σ_{i=0}^{n-1} X_i
//
// Zero couplings are dropped by AddTerm, so the h == 0 classical limit
// contains only the ZZ bonds. For n == 1 the coupling sum is empty.
//
// Contract: n ≥ 1, J and h finite; sentinels from types.go otherwise.
//
// Complexity: O(n) time and space.
func TransverseFieldIsing(n int, j, h float64) (*Observable, error) {
	obs, err := New(n)
	if err != nil {
		return nil, err
	}

	var i int
	for i = 0; i+1 < n; i++ {
		if err = obs.AddZZ(-j, i, i+1); err != nil {
			return nil, err
		}
	}
	for i = 0; i < n; i++ {
		if err = obs.AddX(-h, i); err != nil {
			return nil, err
		}
	}

	return obs, nil
}
