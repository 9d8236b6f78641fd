package trace

import "github.com/katalvlaran/primepath/grid"

// Ancestor finds a path from start back to an extremal reachable
// ancestor, walking the reverse adjacency of the directed lattice.
// Strategy BFS is the correctness baseline; Bisect accelerates
// jump-eligible configurations and silently falls back to BFS otherwise.
// Index 0 of the result is always start.
func Ancestor(o *grid.Oracle, start grid.Point, opts ...Option) (*Result, error) {
	if o == nil {
		return nil, ErrOracleNil
	}
	opt, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	if opt.Strategy == Bisect && o.JumpEligible() {
		return ancestorBisect(o, start, opt), nil
	}
	return ancestorBFS(o, start, opt), nil
}

// bfsNode is one discovered lattice point with a link to the node it was
// discovered from — one step closer to the query point.
type bfsNode struct {
	p      grid.Point
	parent int // index into walker.nodes; -1 for the root
}

// bfsWalker encapsulates mutable search state.
type bfsWalker struct {
	oracle *grid.Oracle
	opt    Options
	nodes  []bfsNode
	seen   map[grid.Point]struct{}
	queue  []int
	best   int // index of the extremal node under the tie-break
	steps  int
}

// ancestorBFS explores predecessors breadth-first under the step budget.
// A west neighbor (x−1, y) connects iff its own direction is East; a
// south neighbor (x, y−1) connects iff its own direction is North. Each
// expanded node costs one step; on exhaustion the best ancestor found so
// far is returned — a defined terminal state, not a failure.
func ancestorBFS(o *grid.Oracle, start grid.Point, opt Options) *Result {
	w := &bfsWalker{
		oracle: o,
		opt:    opt,
		nodes:  []bfsNode{{p: start, parent: -1}},
		seen:   map[grid.Point]struct{}{start: {}},
		queue:  []int{0},
	}
	w.loop()
	return &Result{
		Points:    w.reconstruct(),
		Steps:     w.steps,
		Exhausted: len(w.queue) > 0,
	}
}

func (w *bfsWalker) loop() {
	for len(w.queue) > 0 && w.steps < w.opt.Budget {
		idx := w.queue[0]
		w.queue = w.queue[1:]
		w.steps++

		cur := w.nodes[idx].p
		west := grid.Point{X: cur.X - 1, Y: cur.Y}
		if w.oracle.Direction(west.X, west.Y) == grid.East {
			w.discover(west, idx)
		}
		south := grid.Point{X: cur.X, Y: cur.Y - 1}
		if w.oracle.Direction(south.X, south.Y) == grid.North {
			w.discover(south, idx)
		}
	}
}

// discover enqueues an unseen predecessor and updates the extremal node.
func (w *bfsWalker) discover(p grid.Point, parent int) {
	if _, ok := w.seen[p]; ok {
		return
	}
	w.seen[p] = struct{}{}
	w.nodes = append(w.nodes, bfsNode{p: p, parent: parent})
	idx := len(w.nodes) - 1
	w.queue = append(w.queue, idx)
	if w.opt.Target.better(p, w.nodes[w.best].p) {
		w.best = idx
	}
}

// reconstruct follows parent links best → … → start and reverses, so
// index 0 is the original query point.
func (w *bfsWalker) reconstruct() []grid.Point {
	var rev []grid.Point
	for i := w.best; i != -1; i = w.nodes[i].parent {
		rev = append(rev, w.nodes[i].p)
	}
	pts := make([]grid.Point, 0, len(rev))
	for i := len(rev) - 1; i >= 0; i-- {
		pts = append(pts, rev[i])
	}
	return pts
}
