package expr

import (
	"fmt"
	"strconv"
	"strings"
)

// lexer scans an expression source string into tokens.
// The grammar is ASCII-only; any rune outside it is ErrLex.
type lexer struct {
	src string
	pos int
}

// lex tokenizes src and inserts implicit multiplication operators.
// Returns ErrLex on an invalid character or malformed numeric literal.
func lex(src string) ([]Token, error) {
	l := &lexer{src: src}
	toks := make([]Token, 0, len(src)/2+1)
	for {
		tok, err := l.next()
		if err != nil {
			return nil, err
		}
		toks = append(toks, tok)
		if tok.Kind == TokEOF {
			break
		}
	}
	return insertImplicitMult(toks), nil
}

// next scans and returns the next token.
func (l *lexer) next() (Token, error) {
	l.skipSpace()
	start := l.pos
	if l.pos >= len(l.src) {
		return Token{Kind: TokEOF, Pos: start}, nil
	}
	c := l.src[l.pos]
	switch {
	case isDigit(c):
		return l.number()
	case isAlpha(c):
		return l.ident()
	}
	// One- and two-character operators.
	two := ""
	if l.pos+1 < len(l.src) {
		two = l.src[l.pos : l.pos+2]
	}
	switch two {
	case "==":
		l.pos += 2
		return Token{Kind: TokEq, Text: two, Pos: start}, nil
	case "!=":
		l.pos += 2
		return Token{Kind: TokNeq, Text: two, Pos: start}, nil
	case "<=":
		l.pos += 2
		return Token{Kind: TokLE, Text: two, Pos: start}, nil
	case ">=":
		l.pos += 2
		return Token{Kind: TokGE, Text: two, Pos: start}, nil
	case "&&":
		l.pos += 2
		return Token{Kind: TokAnd, Text: two, Pos: start}, nil
	case "||":
		l.pos += 2
		return Token{Kind: TokOr, Text: two, Pos: start}, nil
	}
	l.pos++
	one := string(c)
	var kind TokenKind
	switch c {
	case '+':
		kind = TokPlus
	case '-':
		kind = TokMinus
	case '*':
		kind = TokStar
	case '/':
		kind = TokSlash
	case '%':
		kind = TokPercent
	case '^':
		kind = TokCaret
	case '<':
		kind = TokLT
	case '>':
		kind = TokGT
	case '!':
		kind = TokBang
	case ',':
		kind = TokComma
	case '(':
		kind = TokLParen
	case ')':
		kind = TokRParen
	default:
		return Token{}, fmt.Errorf("%w: invalid character %q at offset %d", ErrLex, one, start)
	}
	return Token{Kind: kind, Text: one, Pos: start}, nil
}

// number scans an integer or decimal literal. A second decimal point
// (as in "1.2.3") is a malformed literal, not two tokens.
func (l *lexer) number() (Token, error) {
	start := l.pos
	for l.pos < len(l.src) && isDigit(l.src[l.pos]) {
		l.pos++
	}
	if l.pos < len(l.src) && l.src[l.pos] == '.' {
		l.pos++
		if l.pos >= len(l.src) || !isDigit(l.src[l.pos]) {
			return Token{}, fmt.Errorf("%w: malformed numeric literal at offset %d", ErrLex, start)
		}
		for l.pos < len(l.src) && isDigit(l.src[l.pos]) {
			l.pos++
		}
	}
	if l.pos < len(l.src) && l.src[l.pos] == '.' {
		return Token{}, fmt.Errorf("%w: malformed numeric literal at offset %d", ErrLex, start)
	}
	text := l.src[start:l.pos]
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return Token{}, fmt.Errorf("%w: malformed numeric literal %q at offset %d", ErrLex, text, start)
	}
	return Token{Kind: TokNumber, Text: text, Num: v, Pos: start}, nil
}

// ident scans a run of letters; identifiers are case-insensitive and
// lowered here so the parser compares plain strings.
func (l *lexer) ident() (Token, error) {
	start := l.pos
	for l.pos < len(l.src) && isAlpha(l.src[l.pos]) {
		l.pos++
	}
	return Token{Kind: TokIdent, Text: strings.ToLower(l.src[start:l.pos]), Pos: start}, nil
}

func (l *lexer) skipSpace() {
	for l.pos < len(l.src) {
		switch l.src[l.pos] {
		case ' ', '\t', '\n', '\r':
			l.pos++
		default:
			return
		}
	}
}

// insertImplicitMult inserts TokStar between a factor-ending token and a
// factor-starting token (so "2x" reads as "2*x" and "x(x+1)" as "x*(x+1)"),
// except when the left token is a recognized function name directly
// followed by "(" — that is a call, not a product.
func insertImplicitMult(toks []Token) []Token {
	out := make([]Token, 0, len(toks))
	for i, tok := range toks {
		if i > 0 {
			prev := toks[i-1]
			if prev.endsFactor() && tok.startsFactor() {
				call := prev.Kind == TokIdent && tok.Kind == TokLParen && isBuiltin(prev.Text)
				if !call {
					out = append(out, Token{Kind: TokStar, Text: "*", Pos: tok.Pos})
				}
			}
		}
		out = append(out, tok)
	}
	return out
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isAlpha(c byte) bool { return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') }
