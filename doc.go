// Package primepath is a rule compiler and path engine for an infinite
// directed graph over the integer lattice, where every point owns a single
// outgoing edge — "north" or "east" — decided by a user-authorable rule.
//
// 🚀 What is primepath?
//
//	A pure-Go engine that brings together:
//		• expr/  — lexer, recursive-descent parser and evaluators for a closed
//		           arithmetic/boolean expression grammar, with an exact
//		           arbitrary-precision fast path (no host eval, ever)
//		• grid/  — the direction oracle: row shifting, the three-tier
//		           exact → approximate → fallback decision, bounded LRU caches
//		• trace/ — budgeted forward tracing with a modular prime skip-ahead,
//		           plus bounded BFS and binary-search ancestor search
//
// ✨ Why choose primepath?
//
//   - Never panics across the public boundary – every compiled rule degrades
//     deterministically to plain coprimality
//   - Exact where it matters – gcd at magnitudes beyond float precision is
//     computed over big integers, or the engine declines rather than guesses
//   - Bounded by construction – every trace and search takes a step budget;
//     termination needs no cancellation token
//   - Pure Go – no cgo, no reflection tricks
//
// The lattice is lazily defined: no graph is ever materialized. A point's
// direction is "north" when the active predicate (default: gcd(x,y)==1,
// meaning "move east") is false for the transformed, row-shifted coordinates.
//
// Quick ASCII example (default rule, a trace east along row y=7):
//
//	y=8              N→…
//	y=7  E E E E E ⇒ ↑          east until 7 divides the effective x,
//	     ↑           x=105      then the edge turns north.
//	   x=100
//
// Dive into the per-package doc.go files for grammar, tiering and search
// details.
//
//	go get github.com/katalvlaran/primepath
package primepath
