package solver

import (
	"iter"

	"svw.info/matchsticks/internal/catalog"
	"svw.info/matchsticks/internal/domain"
)

// Candidate is the statement left after one physical stick move.
type Candidate struct {
	Source, Dest int
	// With Source == Dest both fields hold the same reshaped glyph.
	SourceSymbol, DestSymbol *domain.Symbol
	Expr                     domain.Expression
}

// Move describes the candidate as a repair of its base expression.
func (c Candidate) Move() domain.Move {
	return domain.Move{
		Source:     c.Source,
		Dest:       c.Dest,
		SourceCode: c.SourceSymbol.Code(),
		DestCode:   c.DestSymbol.Code(),
		Display:    c.Expr.DisplayCode(),
		Result:     c.Expr,
	}
}

// Candidates yields every statement one stick move away from base, source
// position by source position.
func Candidates(c *catalog.Catalog, base domain.Expression) iter.Seq[Candidate] {
	return func(yield func(Candidate) bool) {
		for src := range base.Len() {
			for cand := range CandidatesFrom(c, base, src) {
				if !yield(cand) {
					return
				}
			}
		}
	}
}

// CandidatesFrom yields the moves that take their stick from position src.
// For a destination other than src, the source glyph loses a stick and the
// destination glyph gains one; for src itself, the stick is moved within the
// glyph.
func CandidatesFrom(c *catalog.Catalog, base domain.Expression, src int) iter.Seq[Candidate] {
	return func(yield func(Candidate) bool) {
		from := base.At(src)
		for dst := range base.Len() {
			if dst == src {
				for _, m := range c.Moves(from) {
					if !yield(Candidate{Source: src, Dest: dst, SourceSymbol: m, DestSymbol: m, Expr: base.Substitute(src, m)}) {
						return
					}
				}
				continue
			}
			to := base.At(dst)
			for _, r := range c.Removals(from) {
				partial := base.Substitute(src, r)
				for _, a := range c.Additions(to) {
					if !yield(Candidate{Source: src, Dest: dst, SourceSymbol: r, DestSymbol: a, Expr: partial.Substitute(dst, a)}) {
						return
					}
				}
			}
		}
	}
}
