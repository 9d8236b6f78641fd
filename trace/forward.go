package trace

import "github.com/katalvlaran/primepath/grid"

// Forward traces the single outgoing path from start until the step
// budget is exhausted. Every emitted point was actually visited; a
// modular skip-ahead appears as a larger x-gap between consecutive
// points, priced at its true cost in steps.
//
// The skip-ahead fires only when the configuration is jump-eligible
// (identity transform + default coprimality rule) and |y| is a prime
// p > 1: non-coprimality with y then occurs exactly when y divides the
// effective x, so the next north turn sits (p − effectiveX mod p)
// positions east and can be taken in one move.
func Forward(o *grid.Oracle, start grid.Point, opts ...Option) (*Result, error) {
	if o == nil {
		return nil, ErrOracleNil
	}
	opt, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	w := &forwardWalker{
		oracle: o,
		jumps:  o.JumpEligible(),
		cur:    start,
		left:   opt.Budget,
		res:    &Result{Points: []grid.Point{start}},
	}
	w.loop()
	w.res.Steps = opt.Budget - w.left
	w.res.Exhausted = w.left == 0
	return w.res, nil
}

// forwardWalker encapsulates mutable tracer state.
type forwardWalker struct {
	oracle *grid.Oracle
	jumps  bool
	cur    grid.Point
	left   int
	res    *Result
}

// loop advances one oracle decision at a time until the budget is gone.
func (w *forwardWalker) loop() {
	for w.left > 0 {
		if w.oracle.Direction(w.cur.X, w.cur.Y) == grid.North {
			w.step(grid.Point{X: w.cur.X, Y: w.cur.Y + 1}, 1)
			continue
		}
		w.east()
	}
}

// east advances eastward: by one, or by a capped modular jump.
func (w *forwardWalker) east() {
	p := w.cur.Y
	if p < 0 {
		p = -p
	}
	if !w.jumps || p <= 1 || !isPrime(p) {
		w.step(grid.Point{X: w.cur.X + 1, Y: w.cur.Y}, 1)
		return
	}
	eff := w.oracle.EffectiveX(w.cur.X, w.cur.Y)
	jump := p - floorMod(eff, p) // distance to the next multiple of p
	if jump > int64(w.left) {
		jump = int64(w.left) // cap at the remaining budget
	}
	w.step(grid.Point{X: w.cur.X + jump, Y: w.cur.Y}, int(jump))
}

// step emits a visited point and charges its cost.
func (w *forwardWalker) step(to grid.Point, cost int) {
	w.cur = to
	w.left -= cost
	w.res.Points = append(w.res.Points, to)
}

// floorMod is the remainder in [0, m) for m > 0.
func floorMod(v, m int64) int64 {
	r := v % m
	if r < 0 {
		r += m
	}
	return r
}

// isPrime is deterministic trial division over int64.
func isPrime(n int64) bool {
	if n < 2 {
		return false
	}
	if n%2 == 0 {
		return n == 2
	}
	if n%3 == 0 {
		return n == 3
	}
	for d := int64(5); d*d <= n; d += 6 {
		if n%d == 0 || n%(d+2) == 0 {
			return false
		}
	}
	return true
}
