// Package vam computes an initial basic feasible solution of the
// transportation problem with Vogel's Approximation Method (VAM).
//
// 🚀 What is VAM?
//
//	Given supply capacities at m origins, demand requirements at n
//	destinations and a unit shipping cost for every origin→destination
//	pair, VAM repeatedly:
//	  • computes a penalty for every open row and column
//	    (second-lowest minus lowest available unit cost),
//	  • picks the line with the largest penalty
//	    (ties → lower minimum cost → first in row-then-column order),
//	  • ships as much as possible on that line's cheapest open cell,
//	  • closes the row and/or column that ran out.
//	The result is a low-cost starting point for MODI / stepping-stone
//	(those improvement passes are not part of this package).
//
// ✨ Key features:
//   - automatic balancing: a zero-cost dummy origin or destination absorbs
//     the difference between total supply and total demand, and the result
//     reports which one was added;
//   - fully deterministic tie-breaking, so identical inputs give
//     bit-identical allocations;
//   - optional iteration trace (penalties, chosen line, shipped quantity)
//     via WithRecordSteps or a live WithOnStep hook;
//   - inputs are never mutated; concurrent calls need no coordination.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/vogel/vam"
//
//	// total core: no validation, never fails
//	res := vam.ComputeAllocation(supply, demand, costs)
//
//	// validating facade with options
//	res, err := vam.Solve(supply, demand, costs,
//	    vam.WithBalancePolicy(vam.RequireBalanced),
//	    vam.WithRecordSteps(true),
//	)
//
// Errors (Solve / SolveWithMatrix / Validate only):
//
//	ErrEmptyInput        - supply or demand vector is empty.
//	ErrDimensionMismatch - cost table is not len(supply)×len(demand).
//	ErrNegativeValue     - a supply, demand or cost is negative.
//	ErrNaNInf            - a supply, demand or cost is NaN or ±Inf.
//	ErrUnbalanced        - totals differ under RequireBalanced.
//	ErrOptionViolation   - an Option received an invalid value.
//
// Performance:
//
//   - Time:   O((m+n)² · max(m,n)); at most m+n iterations, each scanning
//     every open line against every open counterpart.
//   - Memory: O(m·n) for the working cost and allocation tables.
package vam
