// Package expr: token kinds shared by the numeric and boolean grammars.
package expr

// TokenKind enumerates every lexical category of the expression grammar.
type TokenKind uint8

const (
	// TokEOF is the end-of-input marker appended by the lexer.
	TokEOF TokenKind = iota
	// TokNumber is a numeric literal (integer or decimal).
	TokNumber
	// TokIdent is a case-insensitive identifier, lowered at lex time.
	TokIdent

	// Arithmetic operators.
	TokPlus    // +
	TokMinus   // -
	TokStar    // *
	TokSlash   // /
	TokPercent // %
	TokCaret   // ^

	// Comparison operators.
	TokEq  // ==
	TokNeq // !=
	TokLT  // <
	TokLE  // <=
	TokGT  // >
	TokGE  // >=

	// Boolean operators.
	TokAnd  // &&
	TokOr   // ||
	TokBang // !

	// Punctuation.
	TokComma  // ,
	TokLParen // (
	TokRParen // )
)

// Token is a single lexeme with its source position (byte offset).
type Token struct {
	Kind TokenKind
	Text string  // raw text; identifiers are lowered
	Num  float64 // parsed value when Kind == TokNumber
	Pos  int
}

// endsFactor reports whether a token can terminate a multiplicative factor,
// making it a candidate left side for implicit multiplication.
func (t Token) endsFactor() bool {
	return t.Kind == TokNumber || t.Kind == TokIdent || t.Kind == TokRParen
}

// startsFactor reports whether a token can begin a multiplicative factor,
// making it a candidate right side for implicit multiplication.
func (t Token) startsFactor() bool {
	return t.Kind == TokNumber || t.Kind == TokIdent || t.Kind == TokLParen
}
