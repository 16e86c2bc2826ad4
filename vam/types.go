// Package vam provides tunable options, trace records and error definitions
// for Vogel's Approximation Method.
package vam

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors returned by the validating facades.
var (
	// ErrEmptyInput is returned when supply or demand has no entries.
	ErrEmptyInput = errors.New("vam: supply and demand must be non-empty")

	// ErrDimensionMismatch is returned when the cost table is not len(supply)×len(demand).
	ErrDimensionMismatch = errors.New("vam: cost table shape does not match supply×demand")

	// ErrNegativeValue is returned for a negative supply, demand or unit cost.
	ErrNegativeValue = errors.New("vam: negative value")

	// ErrNaNInf is returned for a NaN or ±Inf supply, demand or unit cost.
	ErrNaNInf = errors.New("vam: NaN or Inf value")

	// ErrUnbalanced is returned under RequireBalanced when totals differ.
	ErrUnbalanced = errors.New("vam: total supply differs from total demand")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("vam: invalid option supplied")
)

// BalancePolicy decides what Solve does with unequal totals.
type BalancePolicy int

const (
	// AutoBalance adds a zero-cost dummy origin or destination.
	AutoBalance BalancePolicy = iota

	// RequireBalanced rejects unequal totals with ErrUnbalanced.
	RequireBalanced
)

// String returns the policy name used in flags and logs.
func (p BalancePolicy) String() string {
	switch p {
	case AutoBalance:
		return "auto"
	case RequireBalanced:
		return "require-balanced"
	default:
		return fmt.Sprintf("BalancePolicy(%d)", int(p))
	}
}

// LineKind tells whether a Line is a row (origin) or a column (destination).
type LineKind int

const (
	// Row marks an origin line.
	Row LineKind = iota

	// Column marks a destination line.
	Column
)

// String returns "row" or "column".
func (k LineKind) String() string {
	if k == Column {
		return "column"
	}

	return "row"
}

// Line identifies one row or column of the (balanced) cost table.
type Line struct {
	Kind  LineKind
	Index int
}

// Step records one VAM iteration.
//
// RowPenalties and ColPenalties hold the penalty of every line at the start
// of the iteration; -1 marks a line that was closed or had no open counterpart.
type Step struct {
	Iteration    int       // 1-based
	Line         Line      // the line with the winning penalty
	Penalty      float64   // its penalty
	MinCost      float64   // its lowest open unit cost
	Row, Col     int       // the cell that received the shipment
	Quantity     float64   // units shipped on (Row, Col)
	UnitCost     float64   // cost of (Row, Col)
	RowExhausted bool      // origin Row closed by this step
	ColExhausted bool      // destination Col closed by this step
	RowPenalties []float64 // per-row penalties, -1 when unusable
	ColPenalties []float64 // per-column penalties, -1 when unusable
}

// Option configures Solve via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation when
// Solve is invoked.
type Option func(*Options)

// Options holds the parameters and callbacks of a solve.
type Options struct {
	// Policy decides whether unequal totals are balanced or rejected.
	Policy BalancePolicy

	// Epsilon is the largest |Σsupply − Σdemand| that RequireBalanced
	// accepts. Zero means exact comparison. A nonzero difference is still
	// absorbed by a dummy line.
	Epsilon float64

	// RecordSteps stores every Step in Result.Steps.
	RecordSteps bool

	// OnStep is called synchronously after every allocation; nil disables it.
	OnStep func(Step)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with:
//   - AutoBalance policy
//   - exact balance comparison (Epsilon == 0)
//   - no trace recording and no OnStep hook, so no per-step penalties are copied.
func DefaultOptions() Options {
	return Options{
		Policy:      AutoBalance,
		Epsilon:     0,
		RecordSteps: false,
		OnStep:      nil,
	}
}

// WithBalancePolicy selects AutoBalance or RequireBalanced.
func WithBalancePolicy(p BalancePolicy) Option {
	return func(o *Options) {
		switch p {
		case AutoBalance, RequireBalanced:
			o.Policy = p
		default:
			o.err = fmt.Errorf("%w: unknown balance policy %d", ErrOptionViolation, int(p))
		}
	}
}

// WithEpsilon sets the tolerance RequireBalanced allows between the totals.
//
//	eps >= 0: accepted
//	eps < 0, NaN or +Inf: invalid option → ErrOptionViolation
func WithEpsilon(eps float64) Option {
	return func(o *Options) {
		if eps < 0 || math.IsNaN(eps) || math.IsInf(eps, 0) {
			o.err = fmt.Errorf("%w: Epsilon must be finite and >= 0 (%g)", ErrOptionViolation, eps)

			return
		}
		o.Epsilon = eps
	}
}

// WithRecordSteps toggles storing the iteration trace in Result.Steps.
func WithRecordSteps(on bool) Option {
	return func(o *Options) {
		o.RecordSteps = on
	}
}

// WithOnStep registers a callback invoked after every allocation.
func WithOnStep(fn func(Step)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnStep = fn
		}
	}
}
