package vam

// candidate is the best line found by the selector.
type candidate struct {
	line Line
	pen  penalty
}

// better reports whether p beats the current best under VAM ordering:
// higher penalty first, then lower minimum cost. Equal on both keeps the
// incumbent, so the first line encountered wins.
func better(p, best penalty) bool {
	if p.value != best.value {
		return p.value > best.value
	}

	return p.minCost < best.minCost
}

// selectLine scans rows (ascending) and then columns (ascending), fills the
// per-line penalty buffers and returns the winning line.
// ok is false when no line has a penalty ≥ 0, i.e. nothing can be shipped.
//
// When a row and a column tie on penalty and minimum cost the row wins,
// because rows are evaluated first.
//
// Complexity: O((m+n) · max(m,n)).
func (s *state) selectLine() (best candidate, ok bool) {
	best.pen = unusable
	var p penalty
	for i := range s.rowOpen {
		p = s.rowPenalty(i)
		s.rowPen[i] = p.value
		if p.value < 0 {
			continue
		}
		if !ok || better(p, best.pen) {
			best, ok = candidate{line: Line{Kind: Row, Index: i}, pen: p}, true
		}
	}
	for j := range s.colOpen {
		p = s.colPenalty(j)
		s.colPen[j] = p.value
		if p.value < 0 {
			continue
		}
		if !ok || better(p, best.pen) {
			best, ok = candidate{line: Line{Kind: Column, Index: j}, pen: p}, true
		}
	}

	return best, ok
}
