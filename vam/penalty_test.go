package vam

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestState builds a loop state from an already balanced problem.
func newTestState(t *testing.T, supply, demand []float64, costs [][]float64) *state {
	t.Helper()
	b := Balance(supply, demand, costs)
	require.False(t, b.AddedDummyRow || b.AddedDummyColumn, "test problem must be balanced")

	return newState(b)
}

// TestScanLine_TwoLowest covers the ordinary penalty: second-lowest minus lowest.
func TestScanLine_TwoLowest(t *testing.T) {
	s := newTestState(t, []float64{10}, []float64{4, 3, 3}, [][]float64{{7, 2, 5}})

	p := s.rowPenalty(0)
	assert.Equal(t, 3.0, p.value)
	assert.Equal(t, 2.0, p.minCost)
	assert.Equal(t, 1, p.target)
}

// TestScanLine_SingleCell gives penalty 0 when only one counterpart is open.
func TestScanLine_SingleCell(t *testing.T) {
	s := newTestState(t, []float64{5, 5}, []float64{10}, [][]float64{{4}, {6}})

	p := s.rowPenalty(1)
	assert.Equal(t, 0.0, p.value)
	assert.Equal(t, 6.0, p.minCost)
	assert.Equal(t, 0, p.target)
}

// TestScanLine_EqualMinima keeps the first minimum and yields a zero penalty.
func TestScanLine_EqualMinima(t *testing.T) {
	s := newTestState(t, []float64{9}, []float64{3, 3, 3}, [][]float64{{8, 3, 3}})

	p := s.rowPenalty(0)
	assert.Equal(t, 0.0, p.value)
	assert.Equal(t, 3.0, p.minCost)
	assert.Equal(t, 1, p.target, "first lowest in ascending order wins")
}

// TestScanLine_SkipsClosedCounterparts ignores closed or empty counterparts.
func TestScanLine_SkipsClosedCounterparts(t *testing.T) {
	s := newTestState(t, []float64{0, 6, 4}, []float64{10}, [][]float64{{1}, {9}, {4}})

	// row 0 has no supply: the column only sees rows 1 and 2.
	p := s.colPenalty(0)
	assert.Equal(t, 5.0, p.value)
	assert.Equal(t, 4.0, p.minCost)
	assert.Equal(t, 2, p.target)

	assert.Equal(t, noPenalty, s.rowPenalty(0).value, "empty row is unusable")

	s.colOpen[0] = false
	assert.Equal(t, noPenalty, s.rowPenalty(1).value, "no open counterpart gives -1")
}

// TestSelectLine_TieOnPenaltyLowerMinCostWins: rows 0 and 1 both have penalty 3,
// row 1 has the lower minimum cost and must be chosen.
func TestSelectLine_TieOnPenaltyLowerMinCostWins(t *testing.T) {
	s := newTestState(t, []float64{10, 10}, []float64{5, 5, 10}, [][]float64{
		{4, 7, 9},
		{2, 5, 7},
	})

	c, ok := s.selectLine()
	require.True(t, ok)
	assert.Equal(t, Line{Kind: Row, Index: 1}, c.line)
	assert.Equal(t, 3.0, c.pen.value)
	assert.Equal(t, 2.0, c.pen.minCost)
	assert.Equal(t, []float64{3, 3}, s.rowPen)
	assert.Equal(t, []float64{2, 2, 2}, s.colPen)
}

// TestSelectLine_RowBeatsColumnOnFullTie: row 1 and column 0 tie on penalty 4
// and minimum cost 1; rows are evaluated first, so the row wins.
func TestSelectLine_RowBeatsColumnOnFullTie(t *testing.T) {
	s := newTestState(t, []float64{10, 10}, []float64{10, 10}, [][]float64{
		{5, 9},
		{1, 5},
	})

	c, ok := s.selectLine()
	require.True(t, ok)
	assert.Equal(t, Line{Kind: Row, Index: 1}, c.line)
	assert.Equal(t, s.colPen[0], c.pen.value, "column 0 carries the same penalty")
}

// TestSelectLine_NoCandidate reports ok=false once every line is closed.
func TestSelectLine_NoCandidate(t *testing.T) {
	s := newTestState(t, []float64{0}, []float64{0}, [][]float64{{3}})

	_, ok := s.selectLine()
	assert.False(t, ok)
	assert.Equal(t, []float64{noPenalty}, s.rowPen)
	assert.Equal(t, []float64{noPenalty}, s.colPen)
}

// TestAllocate_DegenerateStep closes the row and the column together.
func TestAllocate_DegenerateStep(t *testing.T) {
	s := newTestState(t, []float64{10, 10}, []float64{10, 10}, [][]float64{{1, 3}, {3, 1}})

	c, ok := s.selectLine()
	require.True(t, ok)
	st := s.allocate(c)

	assert.Equal(t, 0, st.Row)
	assert.Equal(t, 0, st.Col)
	assert.Equal(t, 10.0, st.Quantity)
	assert.True(t, st.RowExhausted)
	assert.True(t, st.ColExhausted)
	assert.Equal(t, 1, s.rowsLeft)
	assert.Equal(t, 1, s.colsLeft)
	assert.False(t, s.rowOpen[0])
	assert.False(t, s.colOpen[0])
}

// TestTotalCost skips empty cells, including dummy ones.
func TestTotalCost(t *testing.T) {
	alloc := [][]float64{{5, 0}, {3, 2}}
	costs := [][]float64{{1, 0}, {2, 0}}
	assert.Equal(t, 11.0, totalCost(alloc, costs))
}
