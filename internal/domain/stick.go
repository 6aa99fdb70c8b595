package domain

import (
	"cmp"
	"fmt"
)

// Stick is a single matchstick lying in a grid cell.
type Stick struct {
	Row         int         `json:"row"`
	Col         int         `json:"col"`
	Orientation Orientation `json:"orientation"`
}

func (s Stick) String() string {
	return fmt.Sprintf("(%d,%d,%s)", s.Row, s.Col, s.Orientation)
}

func compareSticks(a, b Stick) int {
	if c := cmp.Compare(a.Row, b.Row); c != 0 {
		return c
	}
	if c := cmp.Compare(a.Col, b.Col); c != 0 {
		return c
	}
	return cmp.Compare(a.Orientation, b.Orientation)
}
