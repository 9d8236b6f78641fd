// Package trace defines options, results, and sentinel errors for the
// budgeted path traversals over the lattice oracle.
package trace

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/primepath/grid"
)

// Sentinel errors for traversal execution.
var (
	// ErrOracleNil is returned if a nil oracle pointer is passed.
	ErrOracleNil = errors.New("trace: oracle is nil")
	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("trace: invalid option supplied")
)

// Strategy selects the backward ancestor-search algorithm.
type Strategy uint8

const (
	// BFS is the bounded predecessor breadth-first search — the
	// correctness baseline, valid for every rule configuration.
	BFS Strategy = iota
	// Bisect is the binary-search acceleration. Only meaningful for
	// jump-eligible configurations; any other configuration silently
	// routes to BFS.
	Bisect
)

// Target is the extremal-ancestor tie-break.
type Target uint8

const (
	// BottomRight prefers smallest y, then largest x.
	BottomRight Target = iota
	// Leftmost prefers smallest x, then smallest y.
	Leftmost
)

// DefaultBudget is the step budget applied when none is supplied.
const DefaultBudget = 10_000

// Option configures a traversal via functional arguments. An invalid
// Option is recorded internally and surfaced as ErrOptionViolation.
type Option func(*Options)

// Options holds traversal parameters.
type Options struct {
	// Budget is the step budget; traversal terminates exactly when it is
	// exhausted. Budgets are the only cancellation mechanism.
	Budget int
	// Strategy selects the ancestor-search algorithm (Ancestor only).
	Strategy Strategy
	// Target is the extremal tie-break (Ancestor only).
	Target Target

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with DefaultBudget, BFS, BottomRight.
func DefaultOptions() Options {
	return Options{Budget: DefaultBudget, Strategy: BFS, Target: BottomRight}
}

// WithBudget sets the step budget.
//
//	n > 0: use n steps
//	n <= 0: invalid option → ErrOptionViolation
func WithBudget(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			o.err = fmt.Errorf("%w: Budget must be positive (%d)", ErrOptionViolation, n)
			return
		}
		o.Budget = n
	}
}

// WithStrategy selects the ancestor-search algorithm.
func WithStrategy(s Strategy) Option {
	return func(o *Options) {
		if s != BFS && s != Bisect {
			o.err = fmt.Errorf("%w: unknown strategy (%d)", ErrOptionViolation, s)
			return
		}
		o.Strategy = s
	}
}

// WithTarget selects the extremal-ancestor tie-break.
func WithTarget(t Target) Option {
	return func(o *Options) {
		if t != BottomRight && t != Leftmost {
			o.err = fmt.Errorf("%w: unknown target (%d)", ErrOptionViolation, t)
			return
		}
		o.Target = t
	}
}

// buildOptions folds opts over the defaults and validates them.
func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return o, o.err
	}
	return o, nil
}

// Result holds the outcome of a traversal.
//   - Points: the ordered path; index 0 is always the original query point,
//     regardless of traversal direction.
//   - Steps: budget actually consumed.
//   - Exhausted: the budget ran out before the traversal finished on its
//     own — a defined terminal state, not a failure; Points is best-effort.
type Result struct {
	Points    []grid.Point
	Steps     int
	Exhausted bool
}

// Terminal returns the last point of the path (the far end from the
// query point).
func (r *Result) Terminal() grid.Point {
	return r.Points[len(r.Points)-1]
}

// better reports whether a beats b under the tie-break.
func (t Target) better(a, b grid.Point) bool {
	switch t {
	case Leftmost:
		if a.X != b.X {
			return a.X < b.X
		}
		return a.Y < b.Y
	default: // BottomRight
		if a.Y != b.Y {
			return a.Y < b.Y
		}
		return a.X > b.X
	}
}
