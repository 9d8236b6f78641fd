package grid

import (
	"fmt"
	"math/big"

	"github.com/katalvlaran/primepath/expr"
)

// Oracle composes a compiled transform, a compiled predicate, and the
// row-shift parameters into a per-point north/east decision. It is
// immutable once built: a parameter change means building a new Oracle,
// which atomically replaces the caches wholesale (no partial
// invalidation, and no query can observe a half-rebuilt cache).
type Oracle struct {
	transform *expr.Transform
	predicate *expr.Predicate
	shiftK    int64
	randomize bool

	fingerprint string
	vals        *exactCache // coordinate → exact transform value
	gcds        *gcdCache   // (effX, y) → exact gcd
}

// NewOracle builds an Oracle from compiled rules and options.
// Returns ErrNilTransform / ErrNilPredicate for nil rules and
// ErrOptionViolation for invalid options.
func NewOracle(t *expr.Transform, p *expr.Predicate, opts ...Option) (*Oracle, error) {
	if t == nil {
		return nil, ErrNilTransform
	}
	if p == nil {
		return nil, ErrNilPredicate
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	return &Oracle{
		transform: t,
		predicate: p,
		shiftK:    o.ShiftK,
		randomize: o.Randomize,
		fingerprint: fmt.Sprintf("t=%s|p=%s|k=%d|rand=%t|default=%t",
			t.Source(), p.Source(), o.ShiftK, o.Randomize, p.IsDefault()),
		vals: newExactCache(o.CacheSize),
		gcds: newGCDCache(o.CacheSize),
	}, nil
}

// Fingerprint captures every parameter affecting cache validity:
// expression texts, row-shift amount, randomize flag, active-rule kind.
// Two oracles with equal fingerprints answer identically.
func (o *Oracle) Fingerprint() string { return o.fingerprint }

// EffectiveX is x minus the row-shift offset of y.
func (o *Oracle) EffectiveX(x, y int64) int64 {
	return x - Offset(y, o.shiftK, o.randomize)
}

// JumpEligible reports whether the configuration permits the modular
// skip-ahead: identity transform AND default coprimality rule.
func (o *Oracle) JumpEligible() bool {
	return o.transform.IsIdentity() && o.predicate.IsDefault()
}

// Direction decides the single outgoing edge of (x, y). Three tiers,
// deterministic for identical inputs:
//
//  1. exact — default rule and the exact transform succeeds for both the
//     effective x and y: North iff the exact gcd ≠ 1;
//  2. approximate — round the floating transform outputs and evaluate the
//     compiled predicate: North iff "move east" is false;
//  3. fallback — a failing predicate already degrades internally to plain
//     coprimality of the rounded inputs.
func (o *Oracle) Direction(x, y int64) Direction {
	eff := o.EffectiveX(x, y)
	if o.predicate.IsDefault() {
		if g, ok := o.ExactGCD(eff, y); ok {
			if g.CmpAbs(bigOne) != 0 {
				return North
			}
			return East
		}
	}
	rx := o.transform.Eval(float64(eff))
	ry := o.transform.Eval(float64(y))
	if o.predicate.Eval(roundAway(rx), roundAway(ry)) {
		return East
	}
	return North
}

// ExactGCD returns the exact gcd of transform(x) and transform(y), or
// ok == false when either transform leaves the exact subset. Results are
// LRU-cached; the returned big.Int is shared and must not be mutated.
func (o *Oracle) ExactGCD(x, y int64) (*big.Int, bool) {
	key := gcdKey{x: x, y: y}
	if g, ok := o.gcds.get(key); ok {
		return g, true
	}
	tx, ok := o.exactTransform(x)
	if !ok {
		return nil, false
	}
	ty, ok := o.exactTransform(y)
	if !ok {
		return nil, false
	}
	g := new(big.Int).GCD(nil, nil, new(big.Int).Abs(tx), new(big.Int).Abs(ty))
	o.gcds.add(key, g)
	return g, true
}

// GCDMagnitude is the tier-consistent gcd used by rendering layers for
// node coloring: exact when the exact tier applies, otherwise the gcd of
// the rounded floating transform outputs. Saturates to MaxInt64 when the
// exact value does not fit.
func (o *Oracle) GCDMagnitude(x, y int64) int64 {
	eff := o.EffectiveX(x, y)
	if g, ok := o.ExactGCD(eff, y); ok {
		if g.IsInt64() {
			return g.Int64()
		}
		return int64(^uint64(0) >> 1)
	}
	rx := o.transform.Eval(float64(eff))
	ry := o.transform.Eval(float64(y))
	return gcdInt(roundI64(rx), roundI64(ry))
}

// exactTransform evaluates the transform exactly at v, memoized by
// coordinate. Declines are not cached — re-deciding them is cheap.
func (o *Oracle) exactTransform(v int64) (*big.Int, bool) {
	if c, ok := o.vals.get(v); ok {
		return c, true
	}
	r, ok := o.transform.ExactEval(big.NewInt(v))
	if !ok {
		return nil, false
	}
	o.vals.add(v, r)
	return r, true
}

var bigOne = big.NewInt(1)
