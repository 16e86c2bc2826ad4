package vam

import (
	"github.com/katalvlaran/vogel/matrix"
	"gonum.org/v1/gonum/floats"
)

// Balanced is a transportation problem whose totals are equal.
// Supply, Demand and Costs are fresh copies owned by the caller.
type Balanced struct {
	Supply           []float64
	Demand           []float64
	Costs            *matrix.Dense // len(Supply)×len(Demand)
	SupplySum        float64       // Σ of the original supply
	DemandSum        float64       // Σ of the original demand
	AddedDummyRow    bool          // last row of Costs is a zero-cost dummy origin
	AddedDummyColumn bool          // last column of Costs is a zero-cost dummy destination
}

// Balance equalises total supply and total demand with exact comparison.
//
//   - Σsupply < Σdemand: append a dummy origin with capacity Σdemand − Σsupply
//     and an all-zero cost row.
//   - Σdemand < Σsupply: append a dummy destination with capacity
//     Σsupply − Σdemand and a zero cost in every row.
//   - equal: copies only, both flags false.
//
// The cost table is read as exactly len(supply)×len(demand); see matrix.Fit.
// Inputs are never mutated.
//
// Complexity: O(m·n).
func Balance(supply, demand []float64, costs [][]float64) Balanced {
	b := Balanced{
		Supply:    append([]float64(nil), supply...),
		Demand:    append([]float64(nil), demand...),
		Costs:     matrix.Fit(costs, len(supply), len(demand)),
		SupplySum: floats.Sum(supply),
		DemandSum: floats.Sum(demand),
	}

	switch diff := b.DemandSum - b.SupplySum; {
	case diff == 0:
		// balanced
	case diff > 0:
		b.Supply = append(b.Supply, diff)
		b.Costs = b.Costs.WithZeroRow()
		b.AddedDummyRow = true
	default:
		b.Demand = append(b.Demand, -diff)
		b.Costs = b.Costs.WithZeroCol()
		b.AddedDummyColumn = true
	}

	return b
}
