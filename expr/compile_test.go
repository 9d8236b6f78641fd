package expr_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/primepath/expr"
)

// TestCompileTransform_Defaults verifies blank input and both spellings of
// the identity transform.
func TestCompileTransform_Defaults(t *testing.T) {
	for _, src := range []string{"", "n", "x", " n ", "(x)"} {
		tr := expr.CompileTransform(src)
		require.NoError(t, tr.Err(), "source %q must compile", src)
		assert.True(t, tr.IsIdentity(), "source %q must be identity", src)
		for _, v := range []float64{-7, -1, 0, 1, 42, 1e12} {
			assert.Equal(t, v, tr.Eval(v), "identity %q at %v", src, v)
		}
	}
}

// TestCompileTransform_NeverFails verifies the identity fallback plus a
// retained error on malformed input.
func TestCompileTransform_NeverFails(t *testing.T) {
	for _, src := range []string{"n+", "n)", "foo", "y", "1.2.3", "gcd(n)"} {
		tr := expr.CompileTransform(src)
		require.Error(t, tr.Err(), "source %q must retain an error", src)
		assert.Equal(t, 5.0, tr.Eval(5), "fallback for %q must be identity", src)
	}
}

// TestCompilePredicate_Default verifies canonical-rule detection: true for
// exactly the canonical trimmed text (identifiers are case-insensitive).
func TestCompilePredicate_Default(t *testing.T) {
	for _, src := range []string{"", "gcd(x,y)==1", "  gcd(x,y)==1  ", "GCD(X,Y)==1"} {
		p := expr.CompilePredicate(src)
		require.NoError(t, p.Err(), "source %q", src)
		assert.True(t, p.IsDefault(), "source %q must be the default rule", src)
	}
	for _, src := range []string{"gcd(x, y)==1", "gcd(y,x)==1", "1==gcd(x,y)", "x>y"} {
		assert.False(t, expr.CompilePredicate(src).IsDefault(), "source %q is not canonical", src)
	}
}

// TestCompilePredicate_BlankEquivalence: compilePredicate("") behaves
// identically to the spelled-out coprimality rule.
func TestCompilePredicate_BlankEquivalence(t *testing.T) {
	blank := expr.CompilePredicate("")
	canon := expr.CompilePredicate("gcd(x,y)==1")
	for x := float64(-12); x <= 12; x++ {
		for y := float64(-12); y <= 12; y++ {
			assert.Equal(t, canon.Eval(x, y), blank.Eval(x, y), "at (%v,%v)", x, y)
		}
	}
}

// TestCompilePredicate_MalformedFallback: "gcd(x,y" yields a parse-flavored
// message while Eval still returns deterministic coprimality results.
func TestCompilePredicate_MalformedFallback(t *testing.T) {
	p := expr.CompilePredicate("gcd(x,y")
	require.Error(t, p.Err())
	assert.ErrorIs(t, p.Err(), expr.ErrParse)

	canon := expr.CompilePredicate("")
	for x := float64(0); x <= 20; x++ {
		for y := float64(0); y <= 20; y++ {
			assert.Equal(t, canon.Eval(x, y), p.Eval(x, y), "fallback at (%v,%v)", x, y)
		}
	}
}

// TestCompilePredicate_ErrorFlavors maps failure classes onto sentinels.
func TestCompilePredicate_ErrorFlavors(t *testing.T) {
	cases := []struct {
		src  string
		want error
	}{
		{"x @ y", expr.ErrLex},
		{"1.2.3 == x", expr.ErrLex},
		{"gcd(x,y", expr.ErrParse},
		{"x ==", expr.ErrParse},
		{"bogus(x) == 1", expr.ErrParse}, // unknown identifier
		{"gcd(x) == 1", expr.ErrParse},   // wrong arity
		{"x", expr.ErrParse},             // not a boolean expression
	}
	for _, c := range cases {
		err := expr.CompilePredicate(c.src).Err()
		if !errors.Is(err, c.want) {
			t.Errorf("CompilePredicate(%q).Err() = %v; want %v", c.src, err, c.want)
		}
	}
}

// TestPredicate_NeverRaises exercises hostile predicates over a grid and
// only requires that evaluation is total and deterministic.
func TestPredicate_NeverRaises(t *testing.T) {
	srcs := []string{
		"x/y == 1",          // division by zero on the y axis
		"x%y == 0",          // modulo by zero
		"fib(x) > fact(y)",  // heavy integer built-ins
		"gcd(x,y) != spf(x)",
		"1/0 == x",
		"log(x) < exp(y)",
	}
	for _, src := range srcs {
		p := expr.CompilePredicate(src)
		for x := float64(-6); x <= 6; x++ {
			for y := float64(-6); y <= 6; y++ {
				first := p.Eval(x, y)
				assert.Equal(t, first, p.Eval(x, y), "%q not deterministic at (%v,%v)", src, x, y)
			}
		}
	}
}

// TestValidate surfaces compile diagnostics for UI layers.
func TestValidate(t *testing.T) {
	assert.Empty(t, expr.Validate("gcd(x,y)==1"))
	assert.Empty(t, expr.Validate(""))
	assert.NotEmpty(t, expr.Validate("gcd(x,y"))
}

// TestTransform_EvalTotality: division and modulo by zero evaluate to the
// +Inf sentinel, not an error.
func TestTransform_EvalTotality(t *testing.T) {
	tr := expr.CompileTransform("n/0")
	require.NoError(t, tr.Err())
	assert.True(t, math.IsInf(tr.Eval(3), 1), "n/0 must be +Inf")

	tr = expr.CompileTransform("n%0")
	require.NoError(t, tr.Err())
	assert.True(t, math.IsInf(tr.Eval(3), 1), "n%%0 must be +Inf")

	tr = expr.CompileTransform("mod(n,0)")
	require.NoError(t, tr.Err())
	assert.True(t, math.IsInf(tr.Eval(3), 1), "mod(n,0) must be +Inf")
}
