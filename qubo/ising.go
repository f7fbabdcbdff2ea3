// Package qubo - QUBO → Ising observable bridge.
package qubo

import "github.com/katalvlaran/qvar/pauli"

// ToIsing converts the model into a Z-diagonal pauli.Observable via the
// standard substitution x_i = (1 − z_i)/2, where z_i is the ±1 eigenvalue
// of Z_i:
//
//	c·x_i           →  c/2 − (c/2)·Z_i
//	c·x_i·x_j (i≠j) →  c/4 − (c/4)·Z_i − (c/4)·Z_j + (c/4)·Z_i Z_j
//
// The accumulated constant folds into the observable offset, so for every
// bit assignment b: Model.Energy(b) == Observable.BasisEnergy(b).
//
// Complexity: O(len(entries)) accumulation + O(Size²) worst-case emission.
func (m *Model) ToIsing() (*pauli.Observable, error) {
	obs, err := pauli.New(m.size)
	if err != nil {
		return nil, err
	}

	var (
		offset = m.offset
		linear = make([]float64, m.size)
		quad   = make(map[[2]int]float64, len(m.entries))
		k      int
	)
	for k = 0; k < len(m.entries); k++ {
		e := m.entries[k]
		if e.I == e.J {
			offset += e.Value / 2
			linear[e.I] -= e.Value / 2
			continue
		}
		offset += e.Value / 4
		linear[e.I] -= e.Value / 4
		linear[e.J] -= e.Value / 4
		quad[[2]int{e.I, e.J}] += e.Value / 4
	}

	if err = obs.AddConstant(offset); err != nil {
		return nil, err
	}
	var i int
	for i = 0; i < m.size; i++ {
		if err = obs.AddZ(linear[i], i); err != nil {
			return nil, err
		}
	}
	// Entries are already canonical (I < J) and sorted, so iterate the
	// entry list rather than the map to keep term order deterministic.
	for k = 0; k < len(m.entries); k++ {
		e := m.entries[k]
		if e.I == e.J {
			continue
		}
		v, ok := quad[[2]int{e.I, e.J}]
		if !ok {
			continue
		}
		delete(quad, [2]int{e.I, e.J})
		if err = obs.AddZZ(v, e.I, e.J); err != nil {
			return nil, err
		}
	}

	return obs, nil
}
