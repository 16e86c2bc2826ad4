package vam

import "math"

// penalty is the per-line outcome of the penalty engine.
//   - value:   second-lowest minus lowest open cost (0 with a single open cell),
//     or noPenalty when the line has no open counterpart.
//   - minCost: the lowest open cost.
//   - target:  counterpart index of the first lowest cost in ascending order.
type penalty struct {
	value   float64
	minCost float64
	target  int
}

// noPenalty marks a line that cannot be used in the current iteration.
const noPenalty = -1.0

// unusable is the penalty reported for closed lines.
var unusable = penalty{value: noPenalty, target: -1}

// rowPenalty computes the penalty of origin i over all open destinations.
func (s *state) rowPenalty(i int) penalty {
	if !s.rowOpen[i] || s.supply[i] <= 0 {
		return unusable
	}

	return scanLine(s.colOpen, s.demand, s.costs[i], nil)
}

// colPenalty computes the penalty of destination j over all open origins.
func (s *state) colPenalty(j int) penalty {
	if !s.colOpen[j] || s.demand[j] <= 0 {
		return unusable
	}

	return scanLine(s.rowOpen, s.supply, nil, func(i int) float64 { return s.costs[i][j] })
}

// scanLine walks counterpart indices in ascending order and keeps the two
// lowest costs among those still open with positive remaining capacity.
// Exactly one of row / at supplies the unit cost of counterpart k.
//
// Only a strictly lower cost moves target, so the first minimum wins; a later
// cost equal to the minimum becomes the second-lowest and the penalty is 0.
//
// Complexity: O(len(open)).
func scanLine(open []bool, remaining []float64, row []float64, at func(k int) float64) penalty {
	var (
		lowest = math.Inf(1)
		second = math.Inf(1)
		target = -1
		c      float64
	)
	for k := range open {
		if !open[k] || remaining[k] <= 0 {
			continue
		}
		if row != nil {
			c = row[k]
		} else {
			c = at(k)
		}
		if c < lowest {
			second, lowest, target = lowest, c, k
		} else if c < second {
			second = c
		}
	}
	if target < 0 {
		return unusable
	}
	// A single open cell: treat second-lowest as lowest, penalty 0.
	if math.IsInf(second, 1) {
		second = lowest
	}

	return penalty{value: math.Max(0, second-lowest), minCost: lowest, target: target}
}
