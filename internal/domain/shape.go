package domain

import (
	"slices"
	"strconv"
	"strings"
)

// ShapeKey is the canonical encoding of a Shape's normalized sticks. Two
// shapes share a key iff one is a translation of the other.
type ShapeKey string

// Shape is an immutable set of sticks. Equality ignores translation: the
// sticks are shifted so the minimum row and column are both zero before
// being compared.
type Shape struct {
	sticks []Stick // sorted, no duplicates, original coordinates
	key    ShapeKey
}

// NewShape builds a Shape from sticks, dropping duplicates.
func NewShape(sticks ...Stick) Shape {
	set := make([]Stick, 0, len(sticks))
	for _, s := range sticks {
		if !slices.Contains(set, s) {
			set = append(set, s)
		}
	}
	slices.SortFunc(set, compareSticks)
	return Shape{sticks: set, key: normalize(set)}
}

func normalize(sorted []Stick) ShapeKey {
	if len(sorted) == 0 {
		return ""
	}
	minRow, minCol := sorted[0].Row, sorted[0].Col
	for _, s := range sorted[1:] {
		minRow = min(minRow, s.Row)
		minCol = min(minCol, s.Col)
	}
	// Shifting every stick by the same offset keeps the sort order.
	var b strings.Builder
	for i, s := range sorted {
		if i > 0 {
			b.WriteByte(';')
		}
		b.WriteString(strconv.Itoa(s.Row - minRow))
		b.WriteByte(',')
		b.WriteString(strconv.Itoa(s.Col - minCol))
		b.WriteString(s.Orientation.String())
	}
	return ShapeKey(b.String())
}

// Key returns the translation-invariant identity of the shape.
func (s Shape) Key() ShapeKey { return s.key }

// Len is the number of sticks.
func (s Shape) Len() int { return len(s.sticks) }

// Sticks returns a copy of the sticks in their original coordinates.
func (s Shape) Sticks() []Stick { return slices.Clone(s.sticks) }

// Normalized returns the sticks shifted so that min row and min column are 0.
func (s Shape) Normalized() []Stick {
	if len(s.sticks) == 0 {
		return nil
	}
	minRow, minCol := s.sticks[0].Row, s.sticks[0].Col
	for _, t := range s.sticks[1:] {
		minRow = min(minRow, t.Row)
		minCol = min(minCol, t.Col)
	}
	out := make([]Stick, len(s.sticks))
	for i, t := range s.sticks {
		out[i] = Stick{Row: t.Row - minRow, Col: t.Col - minCol, Orientation: t.Orientation}
	}
	return out
}

// Contains reports whether the exact stick (original coordinates) is present.
func (s Shape) Contains(t Stick) bool {
	_, ok := slices.BinarySearchFunc(s.sticks, t, compareSticks)
	return ok
}

// Equal reports whether the two shapes are translations of each other.
func (s Shape) Equal(o Shape) bool { return s.key == o.key }

// Add returns a copy of the shape with t added.
func (s Shape) Add(t Stick) Shape {
	return NewShape(append(slices.Clone(s.sticks), t)...)
}

// Remove returns a copy of the shape without t. If t is not present the
// shape is returned unchanged.
func (s Shape) Remove(t Stick) Shape {
	i, ok := slices.BinarySearchFunc(s.sticks, t, compareSticks)
	if !ok {
		return s
	}
	rest := slices.Delete(slices.Clone(s.sticks), i, i+1)
	return Shape{sticks: rest, key: normalize(rest)}
}

// RemovalVariants returns every distinct shape obtained by removing exactly
// one stick, in stick order.
func (s Shape) RemovalVariants() []Shape {
	out := make([]Shape, 0, len(s.sticks))
	seen := make(map[ShapeKey]struct{}, len(s.sticks))
	for _, t := range s.sticks {
		v := s.Remove(t)
		if _, dup := seen[v.key]; dup {
			continue
		}
		seen[v.key] = struct{}{}
		out = append(out, v)
	}
	return out
}

// ReachableByAdditionFrom reports whether adding one stick to other can
// produce s: s has exactly one more stick and dropping one of them leaves a
// translation of other.
func (s Shape) ReachableByAdditionFrom(other Shape) bool {
	if len(s.sticks) != len(other.sticks)+1 {
		return false
	}
	for _, t := range s.sticks {
		if s.Remove(t).key == other.key {
			return true
		}
	}
	return false
}

func (s Shape) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for i, t := range s.sticks {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(t.String())
	}
	b.WriteByte('}')
	return b.String()
}
