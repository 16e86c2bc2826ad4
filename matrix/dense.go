// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//   - Offer the padding primitives used to add a dummy origin or destination.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1); Clone/ToRows/WithZero*: O(r*c).

package matrix

import (
	"fmt"
	"math"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt      = "At"
	ctxSet     = "Set"
	ctxFrom    = "NewDenseFromRows"
	ctxConvert = "FromMatrix"
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix.
//   - r,c hold dimensions (rows, cols).
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//   - validateNaNInf rejects NaN/Inf in Set when true.
type Dense struct {
	r, c           int       // row and column counts (zero allowed only for Fit/padding)
	data           []float64 // contiguous row-major storage (len == r*c)
	validateNaNInf bool      // numeric guard for Set
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense creates an r×c zero matrix using row-major storage.
//
// Errors:
//   - ErrInvalidDimensions when rows <= 0 or cols <= 0.
//
// Complexity: O(r*c).
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	return newDenseZeroOK(rows, cols), nil
}

// newDenseZeroOK allocates an r×c matrix where r or c may be zero.
// Callers guarantee non-negative dimensions.
func newDenseZeroOK(rows, cols int) *Dense {
	return &Dense{
		r:              rows,
		c:              cols,
		data:           make([]float64, rows*cols), // make() zero-fills deterministically
		validateNaNInf: true,
	}
}

// NewDenseFromRows copies a rectangular [][]float64 into a new Dense.
// The source is never retained; later writes to rows do not affect the result.
//
// Errors:
//   - ErrInvalidDimensions when rows is empty or the first row is empty.
//   - ErrRaggedRows when any row length differs from the first one.
//
// Complexity: O(r*c).
func NewDenseFromRows(rows [][]float64) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, matrixErrorf(ctxFrom, ErrInvalidDimensions)
	}
	cols := len(rows[0])
	m := newDenseZeroOK(len(rows), cols)
	for i, row := range rows {
		if len(row) != cols {
			return nil, fmt.Errorf("%s: row %d has %d cells, want %d: %w", ctxFrom, i, len(row), cols, ErrRaggedRows)
		}
		copy(m.data[i*cols:(i+1)*cols], row)
	}

	return m, nil
}

// Fit copies rows into an exactly rows×cols table, truncating longer rows and
// zero-filling missing cells. It never fails; zero-sized shapes are legal and
// negative dimensions are clamped to zero.
//
// Fit is the total counterpart of NewDenseFromRows for callers that own
// the shape contract and must not fail on malformed input.
//
// Complexity: O(rows*cols).
func Fit(src [][]float64, rows, cols int) *Dense {
	if rows < 0 {
		rows = 0
	}
	if cols < 0 {
		cols = 0
	}
	m := newDenseZeroOK(rows, cols)
	m.validateNaNInf = false
	for i := 0; i < rows && i < len(src); i++ {
		copy(m.data[i*cols:(i+1)*cols], src[i]) // copy stops at the shorter length
	}

	return m
}

// FromMatrix converts any Matrix into a *Dense copy. A *Dense input is cloned
// through the flat buffer; other implementations are read cell by cell.
//
// Errors:
//   - ErrNilMatrix when m is nil.
//   - errors from m.At for foreign implementations.
func FromMatrix(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(ctxConvert, err)
	}
	if d, ok := m.(*Dense); ok {
		return d.Clone().(*Dense), nil
	}
	if m.Rows() <= 0 || m.Cols() <= 0 {
		return nil, matrixErrorf(ctxConvert, ErrInvalidDimensions)
	}
	out := newDenseZeroOK(m.Rows(), m.Cols())
	var (
		i, j int
		v    float64
		err  error
	)
	for i = 0; i < out.r; i++ {
		for j = 0; j < out.c; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(ctxConvert, err)
			}
			out.data[i*out.c+j] = v
		}
	}

	return out, nil
}

// Rows returns the row count.
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count.
func (m *Dense) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call.
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// indexOf computes the row-major offset or returns ErrOutOfRange.
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
func (m *Dense) At(row, col int) (float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col).
//
// Errors:
//   - ErrOutOfRange for bounds; ErrNaNInf for NaN/±Inf when the guard is on.
func (m *Dense) Set(row, col int, v float64) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	if m.validateNaNInf && (math.IsNaN(v) || math.IsInf(v, 0)) {
		return denseErrorf(ctxSet, row, col, ErrNaNInf)
	}
	m.data[off] = v

	return nil
}

// Clone returns a deep copy (new buffer, same numeric policy).
func (m *Dense) Clone() Matrix {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return &Dense{
		r:              m.r,
		c:              m.c,
		data:           cp,
		validateNaNInf: m.validateNaNInf,
	}
}

// ToRows returns the table as freshly allocated rows.
// Complexity: O(r*c).
func (m *Dense) ToRows() [][]float64 {
	out := make([][]float64, m.r)
	for i := 0; i < m.r; i++ {
		out[i] = make([]float64, m.c)
		copy(out[i], m.data[i*m.c:(i+1)*m.c])
	}

	return out
}

// WithZeroRow returns a copy of m with one extra all-zero row appended.
// Used to add a dummy origin: every unit cost on the new row is 0.
// Complexity: O(r*c).
func (m *Dense) WithZeroRow() *Dense {
	out := newDenseZeroOK(m.r+1, m.c)
	out.validateNaNInf = m.validateNaNInf
	copy(out.data, m.data) // row-major: the new row is the zero tail

	return out
}

// WithZeroCol returns a copy of m with one extra all-zero column appended.
// Used to add a dummy destination: every row gains a trailing 0 cost.
// Complexity: O(r*c).
func (m *Dense) WithZeroCol() *Dense {
	out := newDenseZeroOK(m.r, m.c+1)
	out.validateNaNInf = m.validateNaNInf
	for i := 0; i < m.r; i++ {
		copy(out.data[i*out.c:i*out.c+m.c], m.data[i*m.c:(i+1)*m.c])
	}

	return out
}

// String renders rows as lines with comma-separated values.
// Intended for logs and debugging.
func (m *Dense) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ {
		b.WriteString(_fmtRowOpen)
		base = i * m.c
		for j = 0; j < m.c; j++ {
			b.WriteString(fmt.Sprintf("%g", m.data[base+j]))
			if j+1 < m.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}
