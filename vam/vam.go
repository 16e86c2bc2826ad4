package vam

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/vogel/matrix"
)

// VAM: Vogel's Approximation Method
//
// Algorithm Outline:
//  1. Balance totals (dummy origin or destination at zero cost).
//  2. Open every row with supply > 0 and every column with demand > 0.
//  3. While an open row and an open column remain:
//     a. penalty of each open line = second-lowest − lowest open cost
//     (0 with one open cell, unusable with none);
//     b. pick the line with the highest penalty, then the lowest minimum
//     cost, then the first in row-then-column ascending order;
//     c. ship min(supply, demand) on that line's cheapest open cell;
//     d. close every line whose remainder reached 0.
//  4. Total cost = Σ quantity·unit cost over shipped cells.
//
// Each iteration closes at least one line, so the loop runs at most m+n−1
// times on the balanced table and at most m+n−1 cells end up positive.

// state is the mutable working set of a single run.
type state struct {
	costs            [][]float64 // balanced unit costs (read-only during the run)
	alloc            [][]float64 // shipped units, written at most once per cell
	supply, demand   []float64   // remaining capacities
	rowOpen, colOpen []bool      // active masks
	rowsLeft         int
	colsLeft         int
	rowPen, colPen   []float64 // penalties of the current iteration
}

// newState builds the initial loop state from a balanced problem.
// Lines with zero capacity start closed.
func newState(b Balanced) *state {
	m, n := b.Costs.Shape()
	s := &state{
		costs:   b.Costs.ToRows(),
		alloc:   matrix.Fit(nil, m, n).ToRows(),
		supply:  append([]float64(nil), b.Supply...),
		demand:  append([]float64(nil), b.Demand...),
		rowOpen: make([]bool, m),
		colOpen: make([]bool, n),
		rowPen:  make([]float64, m),
		colPen:  make([]float64, n),
	}
	for i, v := range s.supply {
		if v > 0 {
			s.rowOpen[i] = true
			s.rowsLeft++
		}
	}
	for j, v := range s.demand {
		if v > 0 {
			s.colOpen[j] = true
			s.colsLeft++
		}
	}

	return s
}

// run executes the VAM loop on a balanced problem.
func run(b Balanced, o Options) Result {
	s := newState(b)
	res := Result{
		Supply:           append([]float64(nil), b.Supply...),
		Demand:           append([]float64(nil), b.Demand...),
		Costs:            b.Costs.ToRows(),
		AddedDummyRow:    b.AddedDummyRow,
		AddedDummyColumn: b.AddedDummyColumn,
	}

	traced := o.RecordSteps || o.OnStep != nil
	for iter := 1; s.rowsLeft > 0 && s.colsLeft > 0; iter++ {
		c, ok := s.selectLine()
		if !ok {
			break
		}
		st := s.allocate(c)
		st.Iteration = iter
		if !traced {
			continue
		}
		st.RowPenalties = append([]float64(nil), s.rowPen...)
		st.ColPenalties = append([]float64(nil), s.colPen...)
		if o.RecordSteps {
			res.Steps = append(res.Steps, st)
		}
		if o.OnStep != nil {
			o.OnStep(st)
		}
	}

	res.Allocations = s.alloc
	res.TotalCost = totalCost(s.alloc, s.costs)

	return res
}

// ComputeAllocation runs Vogel's Approximation Method on the given problem.
//
// It never fails: preconditions (non-empty vectors, a len(supply)×len(demand)
// cost table, finite non-negative values) belong to the caller; use Solve for
// a validating entry point. Unequal totals are balanced with a zero-cost dummy
// line, reported through AddedDummyRow / AddedDummyColumn, and Allocations has
// the balanced shape. Inputs are never mutated.
//
// Example:
//
//	res := ComputeAllocation([]float64{10}, []float64{10}, [][]float64{{5}})
//	// res.Allocations == [[10]], res.TotalCost == 50
func ComputeAllocation(supply, demand []float64, costs [][]float64) Result {
	return run(Balance(supply, demand, costs), DefaultOptions())
}

// Solve validates the problem, applies the options and runs VAM.
//
// Errors: ErrOptionViolation, ErrEmptyInput, ErrDimensionMismatch,
// ErrNegativeValue, ErrNaNInf, and ErrUnbalanced under RequireBalanced.
func Solve(supply, demand []float64, costs [][]float64, opts ...Option) (Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return Result{}, o.err
	}
	if err := Validate(supply, demand, costs); err != nil {
		return Result{}, err
	}

	// A nonzero difference always gets a dummy line; Epsilon only widens what
	// RequireBalanced accepts.
	b := Balance(supply, demand, costs)
	if o.Policy == RequireBalanced && math.Abs(b.DemandSum-b.SupplySum) > o.Epsilon {
		return Result{}, fmt.Errorf("%w: supply %g, demand %g", ErrUnbalanced, b.SupplySum, b.DemandSum)
	}

	return run(b, o), nil
}

// SolveWithMatrix is Solve with the cost table given as a matrix.Matrix.
func SolveWithMatrix(costs matrix.Matrix, supply, demand []float64, opts ...Option) (Result, error) {
	d, err := matrix.FromMatrix(costs)
	if err != nil {
		return Result{}, vamErrorf("costs", err)
	}
	if err = matrix.ValidateShape(d, len(supply), len(demand)); err != nil {
		return Result{}, vamErrorf("costs", err)
	}

	return Solve(supply, demand, d.ToRows(), opts...)
}

// Validate checks the preconditions of ComputeAllocation.
//
// Order: empty vectors → supply values → demand values → cost shape → cost values.
func Validate(supply, demand []float64, costs [][]float64) error {
	if len(supply) == 0 || len(demand) == 0 {
		return ErrEmptyInput
	}
	if err := matrix.ValidateVector(supply); err != nil {
		return vamErrorf("supply", err)
	}
	if err := matrix.ValidateVector(demand); err != nil {
		return vamErrorf("demand", err)
	}
	if err := matrix.ValidateRows(costs, len(supply), len(demand)); err != nil {
		return vamErrorf("costs", err)
	}
	if err := matrix.ValidateNonNegativeFinite(matrix.Fit(costs, len(supply), len(demand))); err != nil {
		return vamErrorf("costs", err)
	}

	return nil
}

// vamErrorf maps a matrix sentinel onto the matching vam sentinel and keeps
// both reachable through errors.Is.
func vamErrorf(tag string, err error) error {
	var sentinel error
	switch {
	case errors.Is(err, matrix.ErrNegative):
		sentinel = ErrNegativeValue
	case errors.Is(err, matrix.ErrNaNInf):
		sentinel = ErrNaNInf
	default:
		sentinel = ErrDimensionMismatch
	}

	return fmt.Errorf("%w: %s: %w", sentinel, tag, err)
}
