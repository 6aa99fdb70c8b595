// Package glyphs turns ASCII stick patterns into shapes and holds the
// standard matchstick alphabet.
//
// A pattern is a list of rows drawn over a Frame. Row k and column m of the
// pattern address the frame's k-th row id and m-th column id:
//
//	'|' vertical stick
//	'_' horizontal stick
//	'+' both
//	' ' nothing
package glyphs

import (
	"slices"

	"svw.info/matchsticks/internal/domain"
)

// Frame declares the grid a glyph is drawn on: the row and column ids the
// pattern maps onto and the sticks a glyph may use.
type Frame struct {
	Name    string
	rows    []int
	cols    []int
	allowed domain.Shape
}

// NewFrame derives rows and columns from the allowed sticks.
func NewFrame(name string, allowed ...domain.Stick) Frame {
	shape := domain.NewShape(allowed...)
	var rows, cols []int
	for _, s := range shape.Sticks() {
		if !slices.Contains(rows, s.Row) {
			rows = append(rows, s.Row)
		}
		if !slices.Contains(cols, s.Col) {
			cols = append(cols, s.Col)
		}
	}
	slices.Sort(rows)
	slices.Sort(cols)
	return Frame{Name: name, rows: rows, cols: cols, allowed: shape}
}

func (f Frame) Rows() int { return len(f.rows) }
func (f Frame) Cols() int { return len(f.cols) }

// Shape draws the pattern on the frame. It fails with a *ShapeError when the
// pattern uses an unknown character, runs past the frame or places a stick
// the frame does not allow.
func (f Frame) Shape(glyph string, pattern ...string) (domain.Shape, error) {
	if len(pattern) > len(f.rows) {
		return domain.Shape{}, &ShapeError{Glyph: glyph, Row: len(f.rows), Col: 0, Reason: "pattern has more rows than the " + f.Name + " frame"}
	}
	var sticks []domain.Stick
	for r, line := range pattern {
		for c, ch := range []rune(line) {
			var orients []domain.Orientation
			switch ch {
			case '|':
				orients = []domain.Orientation{domain.Vertical}
			case '_':
				orients = []domain.Orientation{domain.Horizontal}
			case '+':
				orients = []domain.Orientation{domain.Vertical, domain.Horizontal}
			case ' ':
				continue
			default:
				return domain.Shape{}, &ShapeError{Glyph: glyph, Row: r, Col: c, Reason: "unknown pattern character " + string(ch)}
			}
			if c >= len(f.cols) {
				return domain.Shape{}, &ShapeError{Glyph: glyph, Row: r, Col: c, Reason: "column outside the " + f.Name + " frame"}
			}
			for _, o := range orients {
				s := domain.Stick{Row: f.rows[r], Col: f.cols[c], Orientation: o}
				if !f.allowed.Contains(s) {
					return domain.Shape{}, &ShapeError{Glyph: glyph, Row: r, Col: c, Reason: "stick " + s.String() + " not in the " + f.Name + " frame"}
				}
				sticks = append(sticks, s)
			}
		}
	}
	return domain.NewShape(sticks...), nil
}
