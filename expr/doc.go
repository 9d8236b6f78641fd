// Package expr compiles textual arithmetic and boolean expressions into
// safe, immutable evaluators — without any host eval facility.
//
// What
//
//   - One lexer feeds two grammars: numeric (transforms) and boolean
//     (move predicates). Identifiers are case-insensitive.
//   - Implicit multiplication: "2x", "x(x+1)" and ")(…" multiply, while a
//     recognized function name directly followed by "(" is a call.
//   - Recursive-descent parsing with the precedence ladder
//     ||  <  &&  <  !  <  comparisons  <  + -  <  * / %  <  ^  <  unary -.
//     Exponentiation is right-associative; unary minus binds tighter.
//   - Static validation: unknown identifiers and wrong call arity are
//     rejected before any evaluation runs.
//   - Two evaluators: a float64 tree-walker, and a restricted
//     arbitrary-precision walker that declines — never approximates —
//     outside its exact subset (+ - *, exact /, bounded integer ^, fib,
//     integer literals, the variable).
//
// Why
//
//   - User-authored rules drive an infinite lattice renderer; a malformed
//     rule must degrade, not crash. CompileTransform and CompilePredicate
//     therefore never fail: they return a fallback evaluator (identity /
//     plain coprimality) plus a retained error for the UI to surface.
//   - gcd at magnitudes beyond 2⁵³ is meaningless in float64; the exact
//     path preserves it bit-for-bit.
//
// Built-ins (fixed arity)
//
//	sin cos tan sqrt log exp abs floor ceil round   — float math
//	fib fact                                        — exact, memoized
//	prime pi isprime spf lpf gpf                    — prime machinery
//	gcd mod                                         — two-argument integer ops
//
// "pi" and "e" resolve to constants only when not immediately followed by
// "(". Division and modulo by zero evaluate to the +Inf sentinel, never an
// error. fib uses iterative fast doubling, fact an iterative product; both
// memoize by absolute argument and never evict (bounded in practice by the
// argument caps).
//
// Errors
//
//   - ErrLex    — invalid character or malformed numeric literal.
//   - ErrParse  — grammar violation, unknown identifier, wrong arity.
//   - ErrEval   — reserved for unexpected tree-walk conditions.
//
// All are confined to Err() on the compiled rule; Eval never panics and is
// deterministic for identical inputs, which keeps the rendered graph
// reproducible.
package expr
