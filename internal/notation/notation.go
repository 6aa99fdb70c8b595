// Package notation turns puzzle input into base expressions.
//
// Text such as "6+4=4" is drawn with the canonical glyph of every character
// and a blank glyph before, between and after them, so a stick can always be
// laid down next to an existing glyph:
//
//	_6_+_4_=_4_
package notation

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"svw.info/matchsticks/internal/catalog"
	"svw.info/matchsticks/internal/domain"
	"svw.info/matchsticks/internal/glyphs"
)

var (
	ErrUnknownGlyph = errors.New("unknown glyph")
	ErrEmpty        = errors.New("empty puzzle")
)

// Parse draws text with the catalog's canonical glyphs. Whitespace is
// ignored and "!=" is read as ≠.
func Parse(c *catalog.Catalog, text string) (domain.Expression, error) {
	blank, ok := c.Lookup(glyphs.Blank)
	if !ok {
		return domain.Expression{}, fmt.Errorf("%w: %s", ErrUnknownGlyph, glyphs.Blank)
	}
	text = strings.ReplaceAll(text, "!=", "≠")
	syms := []*domain.Symbol{blank}
	for _, r := range text {
		if unicode.IsSpace(r) {
			continue
		}
		name, ok := glyphs.Canonical(r)
		if !ok {
			return domain.Expression{}, fmt.Errorf("%w: %q", ErrUnknownGlyph, r)
		}
		s, ok := c.Lookup(name)
		if !ok {
			return domain.Expression{}, fmt.Errorf("%w: %s", ErrUnknownGlyph, name)
		}
		syms = append(syms, s, blank)
	}
	if len(syms) == 1 {
		return domain.Expression{}, ErrEmpty
	}
	return domain.NewExpression(syms...), nil
}

// FromNames resolves an explicit list of glyph names, in order.
func FromNames(c *catalog.Catalog, names []string) (domain.Expression, error) {
	if len(names) == 0 {
		return domain.Expression{}, ErrEmpty
	}
	syms := make([]*domain.Symbol, len(names))
	for i, n := range names {
		s, ok := c.Lookup(strings.TrimSpace(n))
		if !ok {
			return domain.Expression{}, fmt.Errorf("%w: %q at position %d", ErrUnknownGlyph, n, i)
		}
		syms[i] = s
	}
	return domain.NewExpression(syms...), nil
}

// FromPuzzle prefers the puzzle's glyph list over its text.
func FromPuzzle(c *catalog.Catalog, p *domain.Puzzle) (domain.Expression, error) {
	if len(p.Glyphs) > 0 {
		return FromNames(c, p.Glyphs)
	}
	return Parse(c, p.Text)
}
