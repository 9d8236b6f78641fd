// Package grid is the direction oracle for the infinite lattice graph:
// every point (x, y) owns exactly one outgoing edge, North or East.
//
// What
//
//   - Offset — the pure per-row x-shift: fixed magnitude |k|, or a
//     deterministic pseudo-random magnitude in [0,|k|) when randomized.
//   - Oracle — composes a compiled transform and predicate (package expr)
//     with the row-shift parameters into Direction(x, y).
//   - Bounded LRU caches (hashicorp/golang-lru) memoize the exact
//     transform values and gcd results, keyed by coordinate under the
//     oracle's fingerprint.
//
// Why
//
//	The lattice is unbounded and lazily defined; rendering and tracing
//	layers ask for directions point by point. The decision must be exact
//	where float64 would lie (gcd beyond 2⁵³) and deterministic everywhere,
//	or the rendered graph stops being reproducible.
//
// Tiering
//
//	Direction preserves a strict three-tier fallback:
//	  1. exact     — default rule + exact transforms → big-integer gcd
//	  2. approximate — rounded float transforms → compiled predicate
//	  3. fallback  — predicate failure → plain coprimality of rounded inputs
//
// Concurrency
//
//	Oracles are immutable and safely shared; the caches are internally
//	locked, and racing writers overwrite idempotently because every entry
//	is a pure function of its key. A parameter change builds a new Oracle —
//	caches are replaced wholesale, never partially invalidated.
//
// Errors
//
//   - ErrNilTransform / ErrNilPredicate — nil compiled rules.
//   - ErrOptionViolation — invalid option (e.g. negative cache size).
//
// Direction itself never fails: every tier degrades to the next.
package grid
