package vam

// totalCost returns Σ alloc[i][j]·costs[i][j] over cells with a positive
// allocation. Zero cells are skipped so a dummy line never contributes.
//
// Complexity: O(m·n).
func totalCost(alloc, costs [][]float64) float64 {
	var total float64
	for i, row := range alloc {
		for j, q := range row {
			if q > 0 {
				total += q * costs[i][j]
			}
		}
	}

	return total
}
