package grid_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/primepath/expr"
	"github.com/katalvlaran/primepath/grid"
)

// defaultOracle builds an identity/coprimality oracle.
func defaultOracle(t *testing.T, opts ...grid.Option) *grid.Oracle {
	t.Helper()
	o, err := grid.NewOracle(expr.CompileTransform(""), expr.CompilePredicate(""), opts...)
	require.NoError(t, err)
	return o
}

// TestNewOracle_Errors verifies nil rules and invalid options are rejected.
func TestNewOracle_Errors(t *testing.T) {
	tr := expr.CompileTransform("")
	p := expr.CompilePredicate("")
	_, err := grid.NewOracle(nil, p)
	assert.ErrorIs(t, err, grid.ErrNilTransform)

	_, err = grid.NewOracle(tr, nil)
	assert.ErrorIs(t, err, grid.ErrNilPredicate)

	_, err = grid.NewOracle(tr, p, grid.WithCacheSize(-1))
	assert.ErrorIs(t, err, grid.ErrOptionViolation)
}

// TestDirection_DefaultRule: under identity+coprimality the direction is
// North exactly when gcd(x,y) ≠ 1.
func TestDirection_DefaultRule(t *testing.T) {
	o := defaultOracle(t)
	for x := int64(-10); x <= 10; x++ {
		for y := int64(-10); y <= 10; y++ {
			want := grid.East
			if gcd(x, y) != 1 {
				want = grid.North
			}
			assert.Equal(t, want, o.Direction(x, y), "at (%d,%d)", x, y)
		}
	}
}

// TestDirection_CustomPredicate runs tier 2: the predicate expresses
// "move east".
func TestDirection_CustomPredicate(t *testing.T) {
	o, err := grid.NewOracle(expr.CompileTransform(""), expr.CompilePredicate("x > y"))
	require.NoError(t, err)
	assert.Equal(t, grid.East, o.Direction(5, 3))
	assert.Equal(t, grid.North, o.Direction(3, 5))
	assert.Equal(t, grid.North, o.Direction(4, 4))
}

// TestDirection_BrokenPredicateFallsBack: tier 3 — a predicate that failed
// to compile decides by plain coprimality, identically to the default.
func TestDirection_BrokenPredicateFallsBack(t *testing.T) {
	broken, err := grid.NewOracle(expr.CompileTransform(""), expr.CompilePredicate("gcd(x,y"))
	require.NoError(t, err)
	canon := defaultOracle(t)
	for x := int64(0); x <= 15; x++ {
		for y := int64(0); y <= 15; y++ {
			assert.Equal(t, canon.Direction(x, y), broken.Direction(x, y), "at (%d,%d)", x, y)
		}
	}
}

// TestDirection_Deterministic: repeated queries agree — the caches must
// not change answers.
func TestDirection_Deterministic(t *testing.T) {
	o := defaultOracle(t, grid.WithCacheSize(8)) // tiny cache forces eviction
	for pass := 0; pass < 3; pass++ {
		for x := int64(0); x <= 30; x++ {
			for y := int64(0); y <= 5; y++ {
				first := o.Direction(x, y)
				assert.Equal(t, first, o.Direction(x, y), "at (%d,%d) pass %d", x, y, pass)
			}
		}
	}
}

// TestExactGCD_LargeMagnitude: gcd(2^61, 3·2^61) on the exact path is
// 2^61 exactly — the property float64 cannot guarantee.
func TestExactGCD_LargeMagnitude(t *testing.T) {
	o := defaultOracle(t)
	x := int64(1) << 61
	y := int64(3) << 61
	g, ok := o.ExactGCD(x, y)
	require.True(t, ok, "identity transform must not decline")
	want := new(big.Int).Lsh(big.NewInt(1), 61)
	assert.Zero(t, g.Cmp(want), "got %s want %s", g, want)
}

// TestExactGCD_DeclinesWithFloatTransform: a transform outside the exact
// subset declines, pushing the oracle to tier 2.
func TestExactGCD_DeclinesWithFloatTransform(t *testing.T) {
	o, err := grid.NewOracle(expr.CompileTransform("sin(n)"), expr.CompilePredicate(""))
	require.NoError(t, err)
	_, ok := o.ExactGCD(12, 8)
	assert.False(t, ok)
	// Direction still answers (tier 2).
	_ = o.Direction(12, 8)
}

// TestEffectiveX composes the row shift into the x coordinate.
func TestEffectiveX(t *testing.T) {
	o := defaultOracle(t, grid.WithRowShift(3))
	assert.Equal(t, int64(2), o.EffectiveX(5, 2)) // Offset(2,3,false) = +3
	assert.Equal(t, int64(8), o.EffectiveX(5, -2))
	assert.Equal(t, int64(5), o.EffectiveX(5, 0))
	assert.Equal(t, int64(5), o.EffectiveX(5, 4)) // |gy| > |k|: no shift
}

// TestDirection_RowShiftChangesDecision: shifting a row moves the
// coprimality pattern with it.
func TestDirection_RowShiftChangesDecision(t *testing.T) {
	plain := defaultOracle(t)
	shifted := defaultOracle(t, grid.WithRowShift(3))
	// (5,2): unshifted gcd(5,2)=1 → East; shifted effective x is 2,
	// gcd(2,2)=2 → North.
	assert.Equal(t, grid.East, plain.Direction(5, 2))
	assert.Equal(t, grid.North, shifted.Direction(5, 2))
}

// TestJumpEligible: only identity transform + default rule qualifies.
func TestJumpEligible(t *testing.T) {
	assert.True(t, defaultOracle(t).JumpEligible())

	o, err := grid.NewOracle(expr.CompileTransform("2n"), expr.CompilePredicate(""))
	require.NoError(t, err)
	assert.False(t, o.JumpEligible())

	o, err = grid.NewOracle(expr.CompileTransform(""), expr.CompilePredicate("x>y"))
	require.NoError(t, err)
	assert.False(t, o.JumpEligible())
}

// TestFingerprint captures every cache-relevant parameter.
func TestFingerprint(t *testing.T) {
	base := defaultOracle(t)
	same := defaultOracle(t)
	assert.Equal(t, base.Fingerprint(), same.Fingerprint())

	assert.NotEqual(t, base.Fingerprint(), defaultOracle(t, grid.WithRowShift(1)).Fingerprint())
	assert.NotEqual(t, base.Fingerprint(), defaultOracle(t, grid.WithRandomize(true)).Fingerprint())

	o, err := grid.NewOracle(expr.CompileTransform("2n"), expr.CompilePredicate(""))
	require.NoError(t, err)
	assert.NotEqual(t, base.Fingerprint(), o.Fingerprint())
}

// TestGCDMagnitude feeds the rendering layer's coloring.
func TestGCDMagnitude(t *testing.T) {
	o := defaultOracle(t)
	assert.Equal(t, int64(4), o.GCDMagnitude(12, 8))
	assert.Equal(t, int64(1), o.GCDMagnitude(9, 8))
	assert.Equal(t, int64(1)<<61, o.GCDMagnitude(1<<61, 3<<61))
}

func gcd(a, b int64) int64 {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	for b != 0 {
		a, b = b, a%b
	}
	return a
}
