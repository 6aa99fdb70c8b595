// Package catalog indexes an alphabet of glyphs by which glyph each one can
// turn into by adding, removing or moving a single stick.
//
// The index is built once and never mutated, so a *Catalog may be shared
// freely between goroutines.
package catalog

import (
	"errors"
	"fmt"

	"svw.info/matchsticks/internal/domain"
)

var (
	ErrEmptyAlphabet = errors.New("catalog: empty alphabet")
	ErrDuplicateName = errors.New("catalog: duplicate glyph name")
)

// Catalog is the reachability index over a fixed alphabet. Every map is
// keyed by shape, so any symbol with a shape in the alphabet can be looked
// up, whatever its name.
type Catalog struct {
	symbols  []*domain.Symbol
	byName   map[string]*domain.Symbol
	byShape  map[domain.ShapeKey]*domain.Symbol
	addition map[domain.ShapeKey][]*domain.Symbol
	removal  map[domain.ShapeKey][]*domain.Symbol
	move     map[domain.ShapeKey][]*domain.Symbol
}

// New builds the index. Result sets keep alphabet order; when two glyphs
// share a shape the earlier one represents it.
//
// Cost: addition and removal are O(n²·k) pairwise checks, moves O(n²·k²)
// for n glyphs of at most k sticks.
func New(symbols []*domain.Symbol) (*Catalog, error) {
	if len(symbols) == 0 {
		return nil, ErrEmptyAlphabet
	}
	c := &Catalog{
		byName:   make(map[string]*domain.Symbol, len(symbols)),
		byShape:  make(map[domain.ShapeKey]*domain.Symbol, len(symbols)),
		addition: make(map[domain.ShapeKey][]*domain.Symbol, len(symbols)),
		removal:  make(map[domain.ShapeKey][]*domain.Symbol, len(symbols)),
		move:     make(map[domain.ShapeKey][]*domain.Symbol, len(symbols)),
	}
	for _, s := range symbols {
		if s.Name() != "" {
			if _, dup := c.byName[s.Name()]; dup {
				return nil, fmt.Errorf("%w: %s", ErrDuplicateName, s.Name())
			}
			c.byName[s.Name()] = s
		}
		if _, seen := c.byShape[s.Key()]; seen {
			continue
		}
		c.byShape[s.Key()] = s
		c.symbols = append(c.symbols, s)
	}

	for _, in := range c.symbols {
		var added, removed, moved []*domain.Symbol
		for _, out := range c.symbols {
			if out.ReachableByAdditionFrom(in) {
				added = append(added, out)
			}
			if in.ReachableByAdditionFrom(out) {
				removed = append(removed, out)
			}
		}
		variants := in.Shape().RemovalVariants()
		for _, out := range c.symbols {
			for _, v := range variants {
				if out.Shape().ReachableByAdditionFrom(v) {
					moved = append(moved, out)
					break
				}
			}
		}
		c.addition[in.Key()] = added
		c.removal[in.Key()] = removed
		c.move[in.Key()] = moved
	}
	return c, nil
}

// Symbols returns the alphabet with shape duplicates folded.
func (c *Catalog) Symbols() []*domain.Symbol {
	out := make([]*domain.Symbol, len(c.symbols))
	copy(out, c.symbols)
	return out
}

// Lookup finds a glyph by name.
func (c *Catalog) Lookup(name string) (*domain.Symbol, bool) {
	s, ok := c.byName[name]
	return s, ok
}

// ByShape finds the alphabet glyph drawn with a translation of shape.
func (c *Catalog) ByShape(shape domain.Shape) (*domain.Symbol, bool) {
	s, ok := c.byShape[shape.Key()]
	return s, ok
}

// Additions lists the glyphs reachable from s by adding one stick. The
// returned slices of Additions, Removals and Moves are shared and must not be
// modified.
func (c *Catalog) Additions(s *domain.Symbol) []*domain.Symbol { return c.addition[s.Key()] }

// Removals lists the glyphs reachable from s by removing one stick.
func (c *Catalog) Removals(s *domain.Symbol) []*domain.Symbol { return c.removal[s.Key()] }

// Moves lists the glyphs reachable from s by moving one of its sticks
// elsewhere on the same glyph. s itself is included whenever it has a stick.
func (c *Catalog) Moves(s *domain.Symbol) []*domain.Symbol { return c.move[s.Key()] }
