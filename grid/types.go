// Package grid defines core types, options, and sentinel errors for the
// direction oracle over the integer lattice.
package grid

import (
	"errors"
	"fmt"
)

// Sentinel errors for oracle construction.
var (
	// ErrNilTransform is returned when a nil compiled transform is passed.
	ErrNilTransform = errors.New("grid: transform is nil")
	// ErrNilPredicate is returned when a nil compiled predicate is passed.
	ErrNilPredicate = errors.New("grid: predicate is nil")
	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("grid: invalid option supplied")
)

// Point is a lattice point. Points are computed on demand; the graph over
// them is never materialized.
type Point struct {
	X, Y int64
}

// String renders the point as "(x,y)".
func (p Point) String() string { return fmt.Sprintf("(%d,%d)", p.X, p.Y) }

// Direction is the single outgoing edge of a lattice point.
type Direction uint8

const (
	// North advances y by one.
	North Direction = iota
	// East advances x by one.
	East
)

// String returns "north" or "east".
func (d Direction) String() string {
	if d == North {
		return "north"
	}
	return "east"
}

// DefaultCacheSize bounds each of the oracle's two exact-value caches.
const DefaultCacheSize = 4096

// Option configures an Oracle via functional arguments. An invalid Option
// is recorded internally and surfaced as ErrOptionViolation by NewOracle.
type Option func(*Options)

// Options holds the row-shift parameters and cache sizing for an Oracle.
type Options struct {
	// ShiftK is the row-shift amount k; 0 disables shifting.
	ShiftK int64
	// Randomize replaces the fixed shift magnitude with a deterministic
	// pseudo-random one in [0, |k|).
	Randomize bool
	// CacheSize bounds each exact-value LRU cache (entries).
	CacheSize int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with no row shift and DefaultCacheSize.
func DefaultOptions() Options {
	return Options{ShiftK: 0, Randomize: false, CacheSize: DefaultCacheSize}
}

// WithRowShift sets the row-shift amount k.
func WithRowShift(k int64) Option {
	return func(o *Options) { o.ShiftK = k }
}

// WithRandomize toggles the deterministic pseudo-random shift magnitude.
func WithRandomize(on bool) Option {
	return func(o *Options) { o.Randomize = on }
}

// WithCacheSize bounds each exact-value cache.
//
//	n > 0: use n entries
//	n == 0: keep the default
//	n < 0: invalid option → ErrOptionViolation
func WithCacheSize(n int) Option {
	return func(o *Options) {
		switch {
		case n < 0:
			o.err = fmt.Errorf("%w: CacheSize cannot be negative (%d)", ErrOptionViolation, n)
		case n == 0:
			// keep default
		default:
			o.CacheSize = n
		}
	}
}
