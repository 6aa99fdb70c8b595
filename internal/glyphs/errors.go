package glyphs

import "fmt"

// ShapeError reports a glyph pattern that cannot be drawn on its frame.
// It is fatal: the alphabet is static data.
type ShapeError struct {
	Glyph    string
	Row, Col int
	Reason   string
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("glyph %q: cell (%d,%d): %s", e.Glyph, e.Row, e.Col, e.Reason)
}
