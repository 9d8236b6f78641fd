package expr

import (
	"fmt"
	"math"
)

// parser is a recursive-descent parser over a lexed token stream.
// Precedence, loosest to tightest:
//
//	||  <  &&  <  !  <  comparisons  <  + -  <  * / %  <  ^ (right-assoc)  <  unary -  <  atoms
//
// Identifier and arity validation happens here, before any evaluation runs.
type parser struct {
	toks []Token
	pos  int
	vars map[string]varSlot
}

// transformVars maps the single transform input, spelled n or x.
var transformVars = map[string]varSlot{"n": slotX, "x": slotX}

// predicateVars maps the two predicate coordinates.
var predicateVars = map[string]varSlot{"x": slotX, "y": slotY}

// parseNumSource parses a complete numeric expression (transform grammar).
func parseNumSource(src string, vars map[string]varSlot) (*numNode, error) {
	toks, err := lex(src)
	if err != nil {
		return nil, err
	}
	p := &parser{toks: toks, vars: vars}
	n, err := p.parseNumExpr()
	if err != nil {
		return nil, err
	}
	if err = p.expectEOF(); err != nil {
		return nil, err
	}
	return n, nil
}

// parseBoolSource parses a complete boolean expression (predicate grammar).
func parseBoolSource(src string, vars map[string]varSlot) (*boolNode, error) {
	toks, err := lex(src)
	if err != nil {
		return nil, err
	}
	p := &parser{toks: toks, vars: vars}
	b, err := p.parseOr()
	if err != nil {
		return nil, err
	}
	if err = p.expectEOF(); err != nil {
		return nil, err
	}
	return b, nil
}

func (p *parser) cur() Token { return p.toks[p.pos] }

func (p *parser) advance() Token {
	t := p.toks[p.pos]
	if t.Kind != TokEOF {
		p.pos++
	}
	return t
}

func (p *parser) expectEOF() error {
	if t := p.cur(); t.Kind != TokEOF {
		return fmt.Errorf("%w: unexpected %q at offset %d", ErrParse, t.Text, t.Pos)
	}
	return nil
}

func (p *parser) expect(kind TokenKind, what string) error {
	if t := p.cur(); t.Kind != kind {
		return fmt.Errorf("%w: expected %s, found %q at offset %d", ErrParse, what, tokenDesc(t), t.Pos)
	}
	p.advance()
	return nil
}

func tokenDesc(t Token) string {
	if t.Kind == TokEOF {
		return "end of input"
	}
	return t.Text
}

// --- boolean grammar ---

func (p *parser) parseOr() (*boolNode, error) {
	l, err := p.parseAnd()
	if err != nil {
		return nil, err
	}
	for p.cur().Kind == TokOr {
		p.advance()
		r, err := p.parseAnd()
		if err != nil {
			return nil, err
		}
		l = &boolNode{kind: boolLogic, op: opOr, l: l, r: r}
	}
	return l, nil
}

func (p *parser) parseAnd() (*boolNode, error) {
	l, err := p.parseNot()
	if err != nil {
		return nil, err
	}
	for p.cur().Kind == TokAnd {
		p.advance()
		r, err := p.parseNot()
		if err != nil {
			return nil, err
		}
		l = &boolNode{kind: boolLogic, op: opAnd, l: l, r: r}
	}
	return l, nil
}

func (p *parser) parseNot() (*boolNode, error) {
	if p.cur().Kind == TokBang {
		p.advance()
		inner, err := p.parseNot()
		if err != nil {
			return nil, err
		}
		return &boolNode{kind: boolNot, inner: inner}, nil
	}
	return p.parseBoolAtom()
}

// parseBoolAtom handles literals, parenthesized boolean groups, and
// comparisons. A "(" is ambiguous — "(x<y)&&…" vs "(x+1)<y" — so a
// boolean group is attempted first and the position is restored on failure.
func (p *parser) parseBoolAtom() (*boolNode, error) {
	if t := p.cur(); t.Kind == TokIdent && (t.Text == "true" || t.Text == "false") {
		p.advance()
		return &boolNode{kind: boolLit, lit: t.Text == "true"}, nil
	}
	if p.cur().Kind == TokLParen {
		save := p.pos
		p.advance()
		if b, err := p.parseOr(); err == nil && p.cur().Kind == TokRParen {
			p.advance()
			return b, nil
		}
		p.pos = save
	}
	return p.parseComparison()
}

func (p *parser) parseComparison() (*boolNode, error) {
	l, err := p.parseNumExpr()
	if err != nil {
		return nil, err
	}
	var op cmpOp
	switch t := p.cur(); t.Kind {
	case TokEq:
		op = cmpEq
	case TokNeq:
		op = cmpNeq
	case TokLT:
		op = cmpLT
	case TokLE:
		op = cmpLE
	case TokGT:
		op = cmpGT
	case TokGE:
		op = cmpGE
	default:
		return nil, fmt.Errorf("%w: expected comparison operator, found %q at offset %d",
			ErrParse, tokenDesc(t), t.Pos)
	}
	p.advance()
	r, err := p.parseNumExpr()
	if err != nil {
		return nil, err
	}
	return &boolNode{kind: boolCmp, cmp: op, ln: l, rn: r}, nil
}

// --- numeric grammar ---

func (p *parser) parseNumExpr() (*numNode, error) {
	l, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	for {
		var op numOp
		switch p.cur().Kind {
		case TokPlus:
			op = opAdd
		case TokMinus:
			op = opSub
		default:
			return l, nil
		}
		p.advance()
		r, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		l = &numNode{kind: numBin, op: op, l: l, r: r}
	}
}

func (p *parser) parseTerm() (*numNode, error) {
	l, err := p.parsePower()
	if err != nil {
		return nil, err
	}
	for {
		var op numOp
		switch p.cur().Kind {
		case TokStar:
			op = opMul
		case TokSlash:
			op = opDiv
		case TokPercent:
			op = opMod
		default:
			return l, nil
		}
		p.advance()
		r, err := p.parsePower()
		if err != nil {
			return nil, err
		}
		l = &numNode{kind: numBin, op: op, l: l, r: r}
	}
}

// parsePower parses right-associative exponentiation. Unary minus binds
// tighter than ^, so "-2^2" is (-2)^2 and "2^-3" is 2^(-3).
func (p *parser) parsePower() (*numNode, error) {
	base, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	if p.cur().Kind != TokCaret {
		return base, nil
	}
	p.advance()
	exp, err := p.parsePower()
	if err != nil {
		return nil, err
	}
	return &numNode{kind: numBin, op: opPow, l: base, r: exp}, nil
}

func (p *parser) parseUnary() (*numNode, error) {
	if p.cur().Kind == TokMinus {
		p.advance()
		inner, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return &numNode{kind: numNeg, neg: inner}, nil
	}
	return p.parseAtom()
}

func (p *parser) parseAtom() (*numNode, error) {
	switch t := p.cur(); t.Kind {
	case TokNumber:
		p.advance()
		return &numNode{kind: numLit, lit: t.Num}, nil
	case TokLParen:
		p.advance()
		inner, err := p.parseNumExpr()
		if err != nil {
			return nil, err
		}
		if err = p.expect(TokRParen, `")"`); err != nil {
			return nil, err
		}
		return inner, nil
	case TokIdent:
		return p.parseIdent()
	default:
		return nil, fmt.Errorf("%w: expected number, identifier or \"(\", found %q at offset %d",
			ErrParse, tokenDesc(t), t.Pos)
	}
}

// parseIdent resolves an identifier: a built-in call, a coordinate
// variable, or one of the constants pi / e. "pi" directly followed by "("
// is the prime-counting function; bare "pi" is the circle constant.
func (p *parser) parseIdent() (*numNode, error) {
	t := p.advance()
	name := t.Text
	if isBuiltin(name) && p.cur().Kind == TokLParen {
		return p.parseCall(name, t.Pos)
	}
	if slot, ok := p.vars[name]; ok {
		return &numNode{kind: numVar, slot: slot}, nil
	}
	switch name {
	case "pi":
		return &numNode{kind: numLit, lit: math.Pi}, nil
	case "e":
		return &numNode{kind: numLit, lit: math.E}, nil
	}
	if isBuiltin(name) {
		return nil, fmt.Errorf("%w: function %q must be called with arguments at offset %d",
			ErrParse, name, t.Pos)
	}
	return nil, fmt.Errorf("%w: unknown identifier %q at offset %d", ErrParse, name, t.Pos)
}

func (p *parser) parseCall(name string, pos int) (*numNode, error) {
	if err := p.expect(TokLParen, `"("`); err != nil {
		return nil, err
	}
	var args []*numNode
	if p.cur().Kind != TokRParen {
		for {
			arg, err := p.parseNumExpr()
			if err != nil {
				return nil, err
			}
			args = append(args, arg)
			if p.cur().Kind != TokComma {
				break
			}
			p.advance()
		}
	}
	if err := p.expect(TokRParen, `")"`); err != nil {
		return nil, err
	}
	if want := builtinArity(name); len(args) != want {
		return nil, fmt.Errorf("%w: %s expects %d argument(s), got %d at offset %d",
			ErrParse, name, want, len(args), pos)
	}
	return &numNode{kind: numCall, fn: name, args: args}, nil
}
