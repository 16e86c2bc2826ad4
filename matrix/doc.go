// SPDX-License-Identifier: MIT

// Package matrix provides the dense row-major table used by the solver for
// unit-cost and allocation matrices.
//
// What is inside?
//
//   - Dense: a rows×cols float64 table with bounds-checked At/Set and deep Clone.
//   - NewDenseFromRows / ToRows: lossless conversion from and to [][]float64.
//   - WithZeroRow / WithZeroCol: copies padded with one all-zero line, the
//     shape change a dummy origin or dummy destination needs.
//   - RowSums / ColSums: margins of a table (shipped per origin / per destination).
//   - Validators: nil, rectangular rows, exact shape, finite and non-negative cells.
//
// Policy:
//
//   - Public methods never panic on user input; they return package sentinels
//     wrapped with the call-site tag, so errors.Is keeps working.
//   - Loop orders are fixed (row-major, ascending indices); no map iteration.
//
// Usage:
//
//	costs, err := matrix.NewDenseFromRows([][]float64{
//	    {8, 6, 10, 9},
//	    {9, 12, 13, 7},
//	})
//	if err != nil {
//	    // ErrInvalidDimensions or ErrRaggedRows
//	}
//	padded := costs.WithZeroRow() // 3×4, last row all zeros
//
// Complexity:
//
//   - At/Set/Rows/Cols: O(1); Clone, ToRows, WithZeroRow/Col, margins: O(r·c).
package matrix
