package expr

import (
	"math"
	"math/big"
)

// Exact arbitrary-precision evaluation, used only as the precision fast
// path for the default coprimality rule. The supported subset is
// deliberately narrow: + - *, exact-only division, ^ with an integer
// exponent in [0, maxExactExp], fib, integer literals, and the variable.
// Anything else declines (ok == false) — the evaluator never approximates.

// maxExactExp bounds exponents on the exact path.
const maxExactExp = 4096

// exactNum evaluates a numeric tree over big integers with v bound to the
// transform variable. Declines on any construct outside the exact subset.
func exactNum(n *numNode, v *big.Int, fc *funcCache) (*big.Int, bool) {
	switch n.kind {
	case numLit:
		// Only literals that are exactly representable integers qualify.
		if n.lit != math.Trunc(n.lit) || math.Abs(n.lit) > 1<<53 {
			return nil, false
		}
		return big.NewInt(int64(n.lit)), true
	case numVar:
		return new(big.Int).Set(v), true
	case numNeg:
		inner, ok := exactNum(n.neg, v, fc)
		if !ok {
			return nil, false
		}
		return inner.Neg(inner), true
	case numBin:
		return exactBin(n, v, fc)
	case numCall:
		if n.fn != "fib" {
			return nil, false
		}
		arg, ok := exactNum(n.args[0], v, fc)
		if !ok || !arg.IsInt64() {
			return nil, false
		}
		a := arg.Int64()
		if a < -maxFibArg || a > maxFibArg {
			return nil, false
		}
		return new(big.Int).Set(fc.fibBig(a)), true
	}
	return nil, false
}

func exactBin(n *numNode, v *big.Int, fc *funcCache) (*big.Int, bool) {
	l, ok := exactNum(n.l, v, fc)
	if !ok {
		return nil, false
	}
	r, ok := exactNum(n.r, v, fc)
	if !ok {
		return nil, false
	}
	switch n.op {
	case opAdd:
		return l.Add(l, r), true
	case opSub:
		return l.Sub(l, r), true
	case opMul:
		return l.Mul(l, r), true
	case opDiv:
		// Exact division only: any remainder (or a zero divisor) declines.
		if r.Sign() == 0 {
			return nil, false
		}
		q, m := new(big.Int).QuoRem(l, r, new(big.Int))
		if m.Sign() != 0 {
			return nil, false
		}
		return q, true
	case opPow:
		if !r.IsInt64() {
			return nil, false
		}
		e := r.Int64()
		if e < 0 || e > maxExactExp {
			return nil, false
		}
		return l.Exp(l, big.NewInt(e), nil), true
	}
	// opMod is outside the exact subset.
	return nil, false
}
