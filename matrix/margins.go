// SPDX-License-Identifier: MIT

package matrix

import "gonum.org/v1/gonum/floats"

// RowSums returns Σ_j m[i][j] for every row i.
// For an allocation table these are the units shipped by each origin.
// Complexity: O(r*c).
func (m *Dense) RowSums() []float64 {
	out := make([]float64, m.r)
	for i := 0; i < m.r; i++ {
		out[i] = floats.Sum(m.data[i*m.c : (i+1)*m.c])
	}

	return out
}

// ColSums returns Σ_i m[i][j] for every column j.
// For an allocation table these are the units received by each destination.
// Complexity: O(r*c).
func (m *Dense) ColSums() []float64 {
	out := make([]float64, m.c)
	for i := 0; i < m.r; i++ {
		floats.Add(out, m.data[i*m.c:(i+1)*m.c])
	}

	return out
}

// Total returns the sum of all cells.
func (m *Dense) Total() float64 {
	return floats.Sum(m.data)
}

// CountPositive returns how many cells are strictly greater than zero.
// For an allocation table this is the number of basic (occupied) cells.
func (m *Dense) CountPositive() int {
	n := 0
	for _, v := range m.data {
		if v > 0 {
			n++
		}
	}

	return n
}
