package domain

import (
	"slices"
	"strings"

	"svw.info/matchsticks/internal/arith"
)

// Expression is an ordered, fixed-length sequence of shared Symbol
// references. Positions matter: moves are addressed by index.
type Expression struct {
	symbols []*Symbol
}

// NewExpression copies symbols into a new Expression.
func NewExpression(symbols ...*Symbol) Expression {
	return Expression{symbols: slices.Clone(symbols)}
}

func (e Expression) Len() int           { return len(e.symbols) }
func (e Expression) At(i int) *Symbol   { return e.symbols[i] }
func (e Expression) Symbols() []*Symbol { return slices.Clone(e.symbols) }

// Substitute returns a copy with position i replaced by s.
func (e Expression) Substitute(i int, s *Symbol) Expression {
	out := slices.Clone(e.symbols)
	out[i] = s
	return Expression{symbols: out}
}

// Code concatenates the evaluation tokens.
func (e Expression) Code() string {
	var b strings.Builder
	for _, s := range e.symbols {
		b.WriteString(s.code)
	}
	return b.String()
}

// DisplayCode concatenates the display tokens.
func (e Expression) DisplayCode() string {
	var b strings.Builder
	for _, s := range e.symbols {
		b.WriteString(s.display)
	}
	return b.String()
}

// Names lists the glyph names in order.
func (e Expression) Names() []string {
	out := make([]string, len(e.symbols))
	for i, s := range e.symbols {
		out[i] = s.name
	}
	return out
}

// EqualityPositions returns the indices of the equality operators in order.
func (e Expression) EqualityPositions() []int {
	var out []int
	for i, s := range e.symbols {
		if s.IsEquality() {
			out = append(out, i)
		}
	}
	return out
}

// Clause is one pairwise equality test of a chained statement.
type Clause struct {
	Equality int        // index of the clause's equality sign in the parent
	Offset   int        // index of the clause's first symbol in the parent
	Expr     Expression // operands either side of the sign, and the sign
}

// Clauses decomposes a chain a0 = a1 = ... = an into overlapping pairwise
// sub-expressions. Clause k spans from just after equality sign k-1 (or the
// start) to just before equality sign k+1 (or the end), so neighbouring
// clauses share one operand group. An expression with fewer than two
// equality signs is a single clause of itself.
func (e Expression) Clauses() []Clause {
	eqs := e.EqualityPositions()
	if len(eqs) < 2 {
		eq := -1
		if len(eqs) == 1 {
			eq = eqs[0]
		}
		return []Clause{{Equality: eq, Offset: 0, Expr: e}}
	}
	out := make([]Clause, len(eqs))
	for k, eq := range eqs {
		low := -1
		if k > 0 {
			low = eqs[k-1]
		}
		high := len(e.symbols)
		if k+1 < len(eqs) {
			high = eqs[k+1]
		}
		out[k] = Clause{
			Equality: eq,
			Offset:   low + 1,
			Expr:     Expression{symbols: e.symbols[low+1 : high : high]},
		}
	}
	return out
}

// Evaluate runs the expression. With more than one equality sign the result
// is the conjunction of every clause; otherwise Code is evaluated directly
// and yields an Int (no comparison) or a Bool. Malformed code fails with an
// error wrapping arith.ErrInvalidExpression.
func (e Expression) Evaluate() (arith.Value, error) {
	clauses := e.Clauses()
	if len(clauses) == 1 {
		return arith.Eval(e.Code())
	}
	result := true
	for _, c := range clauses {
		v, err := c.Expr.Evaluate()
		if err != nil {
			return arith.Value{}, err
		}
		result = result && v.IsTrue()
	}
	return arith.Bool(result), nil
}

func (e Expression) String() string { return e.DisplayCode() }
