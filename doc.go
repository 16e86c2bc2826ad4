// Package vogel computes initial basic feasible solutions of the
// transportation problem with Vogel's Approximation Method (VAM).
//
// 🚀 What is vogel?
//
//	A small, deterministic toolkit that turns supply, demand and a unit-cost
//	table into a shipping plan:
//		• Balancing: unequal totals get a zero-cost dummy origin or destination
//		• Penalties: per-line gap between the two cheapest open cells
//		• Allocation: greedy shipments on the line with the largest penalty
//		• Cost: total transport cost of the resulting plan
//
// ✨ Why vogel?
//
//   - Deterministic - fixed tie-breaking, identical output for identical input
//   - Total core - ComputeAllocation never panics and never mutates its input
//   - Traceable - every iteration can be recorded or streamed to a hook
//   - Documents & CLI - YAML/JSON problem files, text and JSON reports
//
// Packages:
//
//	vam/            balancer, penalty engine, selector, allocator, cost accumulator
//	matrix/         dense float64 tables, margins and validators used by vam
//	problem/        problem documents: load, parse, validate, labels, template
//	report/         text-table and JSON rendering of a result
//	internal/cli/   cobra commands behind cmd/vogel
//
// Quick start:
//
//	res := vam.ComputeAllocation(
//		[]float64{20, 30, 25},
//		[]float64{10, 28, 22, 15},
//		[][]float64{{8, 6, 10, 9}, {9, 12, 13, 7}, {14, 9, 16, 5}},
//	)
//	// res.TotalCost == 643
//
// See examples/ for a complete program and `vogel template` for a sample
// problem document.
package vogel
