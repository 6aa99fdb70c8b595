// Package arith evaluates the token strings produced by matchstick
// expressions: integer literals, unary and binary + and -, and the
// comparisons == and !=.
//
// Grammar, lowest precedence first:
//
//	comparison = sum { ("==" | "!=") sum }
//	sum        = unary { ("+" | "-") unary }
//	unary      = ("+" | "-") unary | INT
//
// A comparison chain a == b != c holds when every adjacent pair holds.
// Literals with a leading zero are octal, so 08 and 09 do not parse.
package arith

import (
	"errors"
	"math"
	"strconv"
)

type parser struct {
	code string
	toks []Token
	pos  int
}

// Eval parses and evaluates code. Code without a comparison yields an Int,
// code with one or more comparisons yields a Bool. Malformed code fails with
// an error wrapping ErrInvalidExpression.
func Eval(code string) (Value, error) {
	toks, err := Lex(code)
	if err != nil {
		return Value{}, err
	}
	p := &parser{code: code, toks: toks}
	v, err := p.comparison()
	if err != nil {
		return Value{}, err
	}
	if t := p.peek(); t.Type != TokenEOF {
		return Value{}, syntaxErr(code, t.Offset, "unexpected %s", t.Type)
	}
	return v, nil
}

func (p *parser) peek() Token { return p.toks[p.pos] }

func (p *parser) next() Token {
	t := p.toks[p.pos]
	if t.Type != TokenEOF {
		p.pos++
	}
	return t
}

func (p *parser) comparison() (Value, error) {
	left, err := p.sum()
	if err != nil {
		return Value{}, err
	}
	if t := p.peek().Type; t != TokenEq && t != TokenNe {
		return Int(left), nil
	}
	result := true
	for {
		op := p.peek().Type
		if op != TokenEq && op != TokenNe {
			return Bool(result), nil
		}
		p.next()
		right, err := p.sum()
		if err != nil {
			return Value{}, err
		}
		if op == TokenEq {
			result = result && left == right
		} else {
			result = result && left != right
		}
		left = right
	}
}

func (p *parser) sum() (int64, error) {
	acc, err := p.unary()
	if err != nil {
		return 0, err
	}
	for {
		t := p.peek()
		if t.Type != TokenPlus && t.Type != TokenMinus {
			return acc, nil
		}
		p.next()
		rhs, err := p.unary()
		if err != nil {
			return 0, err
		}
		if t.Type == TokenMinus {
			rhs = -rhs // literals stay within ±MaxInt64
		}
		if (rhs > 0 && acc > math.MaxInt64-rhs) || (rhs < 0 && acc < math.MinInt64-rhs) {
			return 0, syntaxErr(p.code, t.Offset, "integer overflow")
		}
		acc += rhs
	}
}

func (p *parser) unary() (int64, error) {
	t := p.next()
	switch t.Type {
	case TokenPlus:
		return p.unary()
	case TokenMinus:
		v, err := p.unary()
		if err != nil {
			return 0, err
		}
		return -v, nil
	case TokenInt:
		// a leading zero marks an octal literal: 00 is 0, 07 is 7, 010 is 8
		base := 10
		if len(t.Text) > 1 && t.Text[0] == '0' {
			base = 8
		}
		v, err := strconv.ParseInt(t.Text, base, 64)
		switch {
		case errors.Is(err, strconv.ErrRange):
			return 0, syntaxErr(p.code, t.Offset, "integer overflow")
		case err != nil:
			return 0, syntaxErr(p.code, t.Offset, "invalid octal literal %q", t.Text)
		}
		return v, nil
	case TokenEOF:
		return 0, syntaxErr(p.code, t.Offset, "unexpected end of expression")
	default:
		return 0, syntaxErr(p.code, t.Offset, "unexpected %s", t.Type)
	}
}
