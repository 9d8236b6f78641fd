// Package trace provides budgeted traversals over the lattice oracle:
// forward path tracing and backward ancestor search.
//
// What
//
//   - Forward — iterate the oracle from a start point under a step budget.
//     On jump-eligible configurations (identity transform + default
//     coprimality rule) an east move on a prime row |y| = p skips straight
//     to the next multiple of p: non-coprimality with y occurs exactly
//     when y divides the effective x. Jumps are priced at their true cost
//     and show up as x-gaps between consecutive emitted points.
//   - Ancestor — find a path from a query point back to an extremal
//     reachable ancestor over the reverse adjacency:
//     a west neighbor connects iff its own direction is East, a south
//     neighbor iff its own direction is North. Two strategies:
//   - BFS    — bounded breadth-first baseline, any rule, best-effort
//     result on budget exhaustion;
//   - Bisect — ground-row probe + binary search, jump-eligible
//     configurations only (silently BFS otherwise).
//
// Why
//
//	The graph is infinite, so every query must finish in bounded time.
//	Budgets are the only cancellation mechanism: exhaustion is a defined
//	terminal state (Result.Exhausted), never an error.
//
// Orientation
//
//	Index 0 of Result.Points is always the original query point,
//	regardless of traversal direction.
//
// Complexity (B = budget)
//
//   - Forward: O(B) oracle queries, O(path) memory — jumps make the
//     traversed distance far exceed B on prime rows.
//   - Ancestor/BFS: O(B) oracle queries, O(B) memory.
//   - Ancestor/Bisect: O(B) for the probe + O(B·log B) worst-case for
//     classification, O(path) memory.
//
// Errors
//
//   - ErrOracleNil       if the oracle pointer is nil.
//   - ErrOptionViolation if an invalid Option is supplied (e.g. a
//     non-positive budget).
package trace
