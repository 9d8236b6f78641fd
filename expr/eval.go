package expr

import "math"

// Float tree-walk evaluation. Total: every operator yields a value for
// every input (division and modulo by zero yield the +Inf sentinel), so
// the walk itself cannot fail. The recover guard in compile.go exists for
// the boundary invariant, not because a failure mode is known.

// evalNum walks a numeric tree with the given coordinate bindings.
func evalNum(n *numNode, x, y float64, fc *funcCache) float64 {
	switch n.kind {
	case numLit:
		return n.lit
	case numVar:
		if n.slot == slotY {
			return y
		}
		return x
	case numNeg:
		return -evalNum(n.neg, x, y, fc)
	case numBin:
		l := evalNum(n.l, x, y, fc)
		r := evalNum(n.r, x, y, fc)
		switch n.op {
		case opAdd:
			return l + r
		case opSub:
			return l - r
		case opMul:
			return l * r
		case opDiv:
			if r == 0 {
				return math.Inf(1)
			}
			return l / r
		case opMod:
			if r == 0 {
				return math.Inf(1)
			}
			return math.Mod(l, r)
		case opPow:
			return math.Pow(l, r)
		}
	case numCall:
		args := make([]float64, len(n.args))
		for i, a := range n.args {
			args[i] = evalNum(a, x, y, fc)
		}
		return fc.callBuiltin(n.fn, args)
	}
	return math.NaN()
}

// evalBool walks a boolean tree with the given coordinate bindings.
func evalBool(b *boolNode, x, y float64, fc *funcCache) bool {
	switch b.kind {
	case boolLit:
		return b.lit
	case boolNot:
		return !evalBool(b.inner, x, y, fc)
	case boolLogic:
		if b.op == opAnd {
			return evalBool(b.l, x, y, fc) && evalBool(b.r, x, y, fc)
		}
		return evalBool(b.l, x, y, fc) || evalBool(b.r, x, y, fc)
	case boolCmp:
		l := evalNum(b.ln, x, y, fc)
		r := evalNum(b.rn, x, y, fc)
		switch b.cmp {
		case cmpEq:
			return l == r
		case cmpNeq:
			return l != r
		case cmpLT:
			return l < r
		case cmpLE:
			return l <= r
		case cmpGT:
			return l > r
		case cmpGE:
			return l >= r
		}
	}
	return false
}
