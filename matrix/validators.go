// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single source of truth for the checks a transportation table needs.
//  - Return sentinel errors tagged with the validator name so call sites can wrap uniformly.
//
// Note:
//  - Validators report the first violation in row-major order.

package matrix

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// A typed nil *Dense is rejected as well.
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}
	if d, ok := m.(*Dense); ok && d == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateShape ensures m has exactly rows×cols cells.
// Assumes m is not nil.
func ValidateShape(m Matrix, rows, cols int) error {
	if m.Rows() != rows {
		return validatorErrorf(fmt.Sprintf("ValidateShape: rows %d, want %d", m.Rows(), rows), ErrDimensionMismatch)
	}
	if m.Cols() != cols {
		return validatorErrorf(fmt.Sprintf("ValidateShape: cols %d, want %d", m.Cols(), cols), ErrDimensionMismatch)
	}

	return nil
}

// ValidateRows ensures src is a non-empty rectangular table with exactly
// rows×cols cells. It is the [][]float64 counterpart of ValidateShape.
func ValidateRows(src [][]float64, rows, cols int) error {
	if len(src) != rows {
		return validatorErrorf(fmt.Sprintf("ValidateRows: %d rows, want %d", len(src), rows), ErrDimensionMismatch)
	}
	for i, row := range src {
		if len(row) != cols {
			return validatorErrorf(fmt.Sprintf("ValidateRows: row %d has %d cells, want %d", i, len(row), cols), ErrDimensionMismatch)
		}
	}

	return nil
}

// ValidateNonNegativeFinite ensures every cell is finite and ≥ 0.
// Complexity: O(r*c).
func ValidateNonNegativeFinite(m Matrix) error {
	var (
		i, j int
		v    float64
		err  error
	)
	for i = 0; i < m.Rows(); i++ {
		for j = 0; j < m.Cols(); j++ {
			if v, err = m.At(i, j); err != nil {
				return validatorErrorf("ValidateNonNegativeFinite", err)
			}
			if err = checkCell(v); err != nil {
				return validatorErrorf(fmt.Sprintf("ValidateNonNegativeFinite(%d,%d)", i, j), err)
			}
		}
	}

	return nil
}

// ValidateVector ensures every entry of x is finite and ≥ 0.
func ValidateVector(x []float64) error {
	for i, v := range x {
		if err := checkCell(v); err != nil {
			return validatorErrorf(fmt.Sprintf("ValidateVector[%d]", i), err)
		}
	}

	return nil
}

// checkCell classifies a single value; NaN/Inf takes priority over sign.
func checkCell(v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return ErrNaNInf
	}
	if v < 0 {
		return ErrNegative
	}

	return nil
}
