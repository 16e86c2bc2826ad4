package vam

import "math"

// allocate ships on the cheapest open cell of the selected line.
//
// The cheapest cell is the penalty engine's target: the first strictly lowest
// open cost in ascending counterpart order. The quantity is
// min(remaining supply, remaining demand); both remainders are reduced and
// every line that reaches zero is closed. Closing both at once is allowed
// (a degenerate step).
//
// Complexity: O(1).
func (s *state) allocate(c candidate) Step {
	var i, j int
	if c.line.Kind == Row {
		i, j = c.line.Index, c.pen.target
	} else {
		i, j = c.pen.target, c.line.Index
	}

	q := math.Min(s.supply[i], s.demand[j])
	s.alloc[i][j] = q
	// q equals one of the operands, so that remainder becomes exactly 0.
	s.supply[i] -= q
	s.demand[j] -= q

	st := Step{
		Line:     c.line,
		Penalty:  c.pen.value,
		MinCost:  c.pen.minCost,
		Row:      i,
		Col:      j,
		Quantity: q,
		UnitCost: s.costs[i][j],
	}
	if s.supply[i] <= 0 {
		s.rowOpen[i] = false
		s.rowsLeft--
		st.RowExhausted = true
	}
	if s.demand[j] <= 0 {
		s.colOpen[j] = false
		s.colsLeft--
		st.ColExhausted = true
	}

	return st
}
