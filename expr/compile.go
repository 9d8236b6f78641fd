package expr

import (
	"math/big"
	"strings"
)

// Transform is a compiled numeric rule mapping one coordinate to another.
// Immutable once built and safe for concurrent use; the internal memo
// tables are mutex-guarded and idempotent.
type Transform struct {
	src      string
	root     *numNode
	err      error
	identity bool
	fc       *funcCache
}

// CompileTransform compiles src into a Transform. It never fails: blank
// input yields the identity transform, and any lex/parse error yields an
// identity-behaving fallback whose Err reports the problem.
func CompileTransform(src string) *Transform {
	t := &Transform{src: src, fc: newFuncCache()}
	text := strings.TrimSpace(src)
	if text == "" {
		text = DefaultTransformSource
	}
	root, err := parseNumSource(text, transformVars)
	if err != nil {
		t.err = err
		t.identity = true
		return t
	}
	t.root = root
	t.identity = root.isBareVar()
	return t
}

// Eval applies the transform to v in double precision. Never panics;
// an internal failure falls back to the identity value.
func (t *Transform) Eval(v float64) (out float64) {
	if t.err != nil || t.root == nil {
		return v
	}
	defer func() {
		if recover() != nil {
			out = v
		}
	}()
	return evalNum(t.root, v, v, t.fc)
}

// ExactEval applies the transform over big integers. The second result is
// false when the expression leaves the exact subset — an expected signal
// to use the floating path, not an error. The fallback identity transform
// is exact by construction.
func (t *Transform) ExactEval(v *big.Int) (*big.Int, bool) {
	if t.err != nil || t.root == nil {
		return new(big.Int).Set(v), true
	}
	return exactNum(t.root, v, t.fc)
}

// IsIdentity reports whether the compiled tree is a bare variable read
// ("n", "x", blank input, or a parenthesized spelling of those).
func (t *Transform) IsIdentity() bool { return t.identity }

// Err returns the retained compile error, or nil. A non-nil Err means
// Eval is running the identity fallback.
func (t *Transform) Err() error { return t.err }

// Source returns the original source text, unmodified.
func (t *Transform) Source() string { return t.src }

// Predicate is a compiled boolean move rule: true means "move east".
// Immutable once built and safe for concurrent use.
type Predicate struct {
	src       string
	root      *boolNode
	err       error
	isDefault bool
	fc        *funcCache
}

// CompilePredicate compiles src into a Predicate. It never fails: blank
// input yields the canonical coprimality rule, and any lex/parse error
// yields a coprimality fallback whose Err reports the problem.
func CompilePredicate(src string) *Predicate {
	p := &Predicate{src: src, fc: newFuncCache()}
	text := strings.TrimSpace(src)
	if text == "" {
		text = DefaultPredicateSource
	}
	p.isDefault = strings.EqualFold(text, DefaultPredicateSource)
	root, err := parseBoolSource(text, predicateVars)
	if err != nil {
		p.err = err
		return p
	}
	p.root = root
	return p
}

// Eval evaluates the predicate at (x, y). It never panics: a compile
// failure or an unexpected runtime condition falls back deterministically
// to plain coprimality of the rounded inputs.
func (p *Predicate) Eval(x, y float64) (east bool) {
	if p.err != nil || p.root == nil {
		return coprime(x, y)
	}
	defer func() {
		if recover() != nil {
			east = coprime(x, y)
		}
	}()
	return evalBool(p.root, x, y, p.fc)
}

// IsDefault reports whether the (trimmed) source is exactly the canonical
// coprimality rule, or blank. Only this rule enables the exact gcd tier
// and the prime skip-ahead optimizations downstream.
func (p *Predicate) IsDefault() bool { return p.isDefault }

// Err returns the retained compile error, or nil. A non-nil Err means
// Eval is running the coprimality fallback.
func (p *Predicate) Err() error { return p.err }

// Source returns the original source text, unmodified.
func (p *Predicate) Source() string { return p.src }

// coprime is the deterministic fallback rule: gcd of the rounded inputs
// equals one.
func coprime(x, y float64) bool {
	return gcd64(roundInt64(x), roundInt64(y)) == 1
}

// Validate is a convenience for UI layers: it compiles src under the
// predicate grammar and returns only the diagnostic, formatted for
// display, or "" when src is well-formed.
func Validate(src string) string {
	if err := CompilePredicate(src).Err(); err != nil {
		return err.Error()
	}
	return ""
}
