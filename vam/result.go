package vam

import "github.com/katalvlaran/vogel/matrix"

// Result holds the outcome of a VAM run.
//
// All tables have the balanced shape: when AddedDummyRow is set the last row
// belongs to the dummy origin, when AddedDummyColumn is set the last column
// belongs to the dummy destination.
type Result struct {
	// Allocations[i][j] is the number of units shipped from origin i to destination j.
	Allocations [][]float64

	// TotalCost is Σ Allocations[i][j]·Costs[i][j]; dummy cells cost 0.
	TotalCost float64

	// AddedDummyRow reports a synthetic origin (Σsupply < Σdemand).
	AddedDummyRow bool

	// AddedDummyColumn reports a synthetic destination (Σdemand < Σsupply).
	AddedDummyColumn bool

	// Supply and Demand are the balanced capacity vectors.
	Supply []float64
	Demand []float64

	// Costs is the balanced unit-cost table.
	Costs [][]float64

	// Steps is the iteration trace, filled only with WithRecordSteps(true).
	Steps []Step
}

// table copies the allocations into a Dense for the margin helpers.
func (r Result) table() *matrix.Dense {
	cols := 0
	if len(r.Allocations) > 0 {
		cols = len(r.Allocations[0])
	}

	return matrix.Fit(r.Allocations, len(r.Allocations), cols)
}

// RowTotals returns the units shipped by every origin.
func (r Result) RowTotals() []float64 { return r.table().RowSums() }

// ColTotals returns the units received by every destination.
func (r Result) ColTotals() []float64 { return r.table().ColSums() }

// BasicCells returns the number of cells with a positive allocation.
func (r Result) BasicCells() int { return r.table().CountPositive() }

// Degenerate reports whether fewer than rows+cols−1 cells are occupied,
// which happens when a single step closes its row and its column together.
func (r Result) Degenerate() bool {
	m, n := r.table().Shape()
	if m == 0 || n == 0 {
		return false
	}

	return r.BasicCells() < m+n-1
}

// Trimmed returns a copy of r with the dummy row or column removed from
// Allocations, Costs, Supply and Demand. TotalCost and the dummy flags are
// kept, so callers can still tell that balancing happened. Steps are shared.
func (r Result) Trimmed() Result {
	out := r
	out.Supply = append([]float64(nil), r.Supply...)
	out.Demand = append([]float64(nil), r.Demand...)
	out.Allocations = r.table().ToRows()
	out.Costs = matrix.Fit(r.Costs, len(r.Costs), len(out.Demand)).ToRows()

	if r.AddedDummyRow && len(out.Supply) > 0 {
		last := len(out.Supply) - 1
		out.Supply = out.Supply[:last]
		out.Allocations = out.Allocations[:last]
		out.Costs = out.Costs[:last]
	}
	if r.AddedDummyColumn && len(out.Demand) > 0 {
		last := len(out.Demand) - 1
		out.Demand = out.Demand[:last]
		for i := range out.Allocations {
			out.Allocations[i] = out.Allocations[i][:last]
		}
		for i := range out.Costs {
			out.Costs[i] = out.Costs[i][:last]
		}
	}

	return out
}
