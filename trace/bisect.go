package trace

import "github.com/katalvlaran/primepath/grid"

// Binary-search ancestor acceleration. Far cheaper than BFS at large
// magnitudes, but it rests on an assumption that is unproven for
// arbitrary predicates: that moving the starting x of a forward trace
// east shifts the whole trace weakly east. Ancestor therefore routes
// here only for jump-eligible configurations (identity transform +
// default coprimality rule), where the assumption holds along a single
// row run; everything else keeps the BFS baseline.

// probeClass is the outcome of one synthetic forward probe.
type probeClass uint8

const (
	classHit   probeClass = iota // trace passes exactly through the target
	classLeft                    // starting x too small (or undershoot)
	classRight                   // starting x too large
)

// ancestorBisect finds an extremal ancestor in three phases:
//
//  1. a greedy backward probe (prefer the connecting predecessor on the
//     tie-break side) descends to a "ground row" and a baseline ancestor;
//  2. binary search localizes the minimal starting x on the ground row
//     whose forward trace passes exactly through the query point;
//  3. the path is rebuilt by forward-walking from the found start to the
//     query point and reversing, so index 0 is the query point.
//
// If the binary search fails to localize a hit, the greedy baseline path
// is returned — best effort, mirroring BFS budget exhaustion.
func ancestorBisect(o *grid.Oracle, start grid.Point, opt Options) *Result {
	probe, ground, steps := greedyDescent(o, start, opt)
	exhausted := steps >= opt.Budget

	lo := start.X - int64(opt.Budget)
	hi := ground.X
	for lo < hi {
		mid := lo + (hi-lo)/2
		if classify(o, mid, ground.Y, start, opt.Budget) == classLeft {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	if classify(o, lo, ground.Y, start, opt.Budget) != classHit {
		return &Result{Points: probe, Steps: steps, Exhausted: exhausted}
	}

	fwd, cost := pathBetween(o, grid.Point{X: lo, Y: ground.Y}, start, opt.Budget)
	if last := fwd[len(fwd)-1]; last != start {
		// Reconstruction ran out of budget; keep the baseline.
		return &Result{Points: probe, Steps: steps, Exhausted: true}
	}
	pts := make([]grid.Point, 0, len(fwd))
	for i := len(fwd) - 1; i >= 0; i-- {
		pts = append(pts, fwd[i])
	}
	return &Result{Points: pts, Steps: steps + cost, Exhausted: exhausted}
}

// greedyDescent walks reverse edges from start, preferring the south
// predecessor for BottomRight (west for Leftmost), until neither
// predecessor connects or the budget runs out. The stop point doubles as
// the ground row anchor and the baseline ancestor.
func greedyDescent(o *grid.Oracle, start grid.Point, opt Options) (path []grid.Point, ground grid.Point, steps int) {
	path = []grid.Point{start}
	cur := start
	for steps < opt.Budget {
		south := grid.Point{X: cur.X, Y: cur.Y - 1}
		west := grid.Point{X: cur.X - 1, Y: cur.Y}
		first, second := south, west
		if opt.Target == Leftmost {
			first, second = west, south
		}
		if connects(o, first, cur) {
			cur = first
		} else if connects(o, second, cur) {
			cur = second
		} else {
			break
		}
		path = append(path, cur)
		steps++
	}
	return path, cur, steps
}

// connects reports whether the single outgoing edge of from lands on to.
func connects(o *grid.Oracle, from, to grid.Point) bool {
	if o.Direction(from.X, from.Y) == grid.North {
		return to.X == from.X && to.Y == from.Y+1
	}
	return to.Y == from.Y && to.X == from.X+1
}

// classify runs a synthetic forward probe from (sx, gy) and reports how
// it relates to the target. A jump's intermediate cells are on the path
// even though the tracer would not emit them, so an east run that reaches
// or passes the target column on the target row is a hit.
func classify(o *grid.Oracle, sx, gy int64, target grid.Point, budget int) probeClass {
	x, y := sx, gy
	for b := budget; b > 0; {
		if y == target.Y {
			return classifyRow(o, x, y, target, b)
		}
		if y > target.Y || x > target.X {
			// Left the corridor before reaching the target row.
			if x > target.X {
				return classRight
			}
			return classLeft
		}
		if o.Direction(x, y) == grid.North {
			y++
			b--
			continue
		}
		step := eastStep(o, x, y)
		x += step
		b -= int(step)
	}
	return classLeft // budget exhausted: treat as undershoot
}

// classifyRow resolves a probe that has entered the target row.
func classifyRow(o *grid.Oracle, x, y int64, target grid.Point, b int) probeClass {
	if x > target.X {
		return classRight // entered the row east of the target
	}
	for b > 0 {
		if x >= target.X {
			return classHit
		}
		if o.Direction(x, y) == grid.North {
			return classLeft // turned north west of the target
		}
		step := eastStep(o, x, y)
		x += step
		b -= int(step)
	}
	return classLeft
}

// eastStep is the modular skip-ahead distance for an east move at (x, y),
// or 1 where the row does not admit it.
func eastStep(o *grid.Oracle, x, y int64) int64 {
	p := y
	if p < 0 {
		p = -p
	}
	if p <= 1 || !isPrime(p) {
		return 1
	}
	eff := o.EffectiveX(x, y)
	return p - floorMod(eff, p)
}

// pathBetween forward-walks from a found start to the target, emitting
// visited points; jumps are capped so the walk lands exactly on the
// target. Returns the path and the budget consumed.
func pathBetween(o *grid.Oracle, from, target grid.Point, budget int) ([]grid.Point, int) {
	pts := []grid.Point{from}
	x, y := from.X, from.Y
	cost := 0
	for cost < budget && !(x == target.X && y == target.Y) {
		if o.Direction(x, y) == grid.North {
			y++
			cost++
		} else {
			step := eastStep(o, x, y)
			if y == target.Y && x+step > target.X {
				step = target.X - x
			}
			if rem := budget - cost; step > int64(rem) {
				step = int64(rem)
			}
			x += step
			cost += int(step)
		}
		pts = append(pts, grid.Point{X: x, Y: y})
	}
	return pts, cost
}
