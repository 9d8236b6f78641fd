// Package expr defines sentinel errors and the compiled-rule surface for
// the expression compiler.
package expr

import "errors"

// Sentinel errors for the compile pipeline. Compilation never propagates
// these as failures of the returned rule — the rule always evaluates via a
// deterministic fallback — but Err() reports them for display.
var (
	// ErrLex indicates an invalid character or malformed numeric literal.
	ErrLex = errors.New("expr: lex error")
	// ErrParse indicates a grammar violation, a missing token, an unknown
	// identifier, or a call with the wrong number of arguments.
	ErrParse = errors.New("expr: parse error")
	// ErrEval indicates an unexpected runtime condition during a tree walk.
	// It never escapes Eval; it is recorded for diagnostics only.
	ErrEval = errors.New("expr: evaluation failure")
)

// Canonical sources substituted for blank input.
const (
	// DefaultTransformSource is the identity transform.
	DefaultTransformSource = "n"
	// DefaultPredicateSource is the coprimality move rule ("move east").
	DefaultPredicateSource = "gcd(x,y)==1"
)
