package glyphs

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/matchsticks/internal/domain"
)

func TestFrameShape(t *testing.T) {
	assert.Equal(t, 3, DigitFrame.Rows())
	assert.Equal(t, 3, DigitFrame.Cols())
	assert.Equal(t, 4, OperatorFrame.Rows())
	assert.Equal(t, 1, OperatorFrame.Cols())

	four, err := DigitFrame.Shape("four", "   ", "|_|", "  |")
	require.NoError(t, err)
	assert.Equal(t, []domain.Stick{
		{Row: 4, Col: 0, Orientation: domain.Vertical},
		{Row: 4, Col: 1, Orientation: domain.Horizontal},
		{Row: 4, Col: 2, Orientation: domain.Vertical},
		{Row: 8, Col: 2, Orientation: domain.Vertical},
	}, four.Sticks())
}

func TestFrameShapeBoth(t *testing.T) {
	// '+' places both sticks of a cell.
	frame := NewFrame("test",
		domain.Stick{Row: 0, Col: 0, Orientation: domain.Vertical},
		domain.Stick{Row: 0, Col: 0, Orientation: domain.Horizontal},
	)
	s, err := frame.Shape("cross", "+")
	require.NoError(t, err)
	assert.Equal(t, 2, s.Len())
}

func TestFrameShapeErrors(t *testing.T) {
	cases := []struct {
		name    string
		frame   Frame
		pattern []string
		row     int
		col     int
	}{
		{"unknown character", DigitFrame, []string{" x "}, 0, 1},
		{"too many rows", DigitFrame, []string{"   ", "   ", "   ", "   "}, 3, 0},
		{"too many columns", OperatorFrame, []string{" _"}, 0, 1},
		{"stick not in frame", DigitFrame, []string{"|  "}, 0, 0},
		{"both where only one fits", OperatorFrame, []string{"+"}, 0, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tc.frame.Shape("bad", tc.pattern...)
			var se *ShapeError
			require.True(t, errors.As(err, &se), "got %v", err)
			assert.Equal(t, "bad", se.Glyph)
			assert.Equal(t, tc.row, se.Row)
			assert.Equal(t, tc.col, se.Col)
		})
	}
}

func TestStandardAlphabet(t *testing.T) {
	syms, err := Standard()
	require.NoError(t, err)
	require.Len(t, syms, len(StandardDefinitions))

	seen := map[domain.ShapeKey]string{}
	for _, s := range syms {
		if other, dup := seen[s.Key()]; dup {
			t.Fatalf("%s and %s share a shape", s.Name(), other)
		}
		seen[s.Key()] = s.Name()
	}

	byName := map[string]*domain.Symbol{}
	for _, s := range syms {
		byName[s.Name()] = s
	}
	assert.Equal(t, 7, byName["eight"].Shape().Len())
	assert.Equal(t, 0, byName[Blank].Shape().Len())
	assert.Equal(t, "", byName[Blank].Code())
	assert.Equal(t, "==", byName[Equals].Code())
	assert.Equal(t, "≠", byName[NotEquals].Display())
	assert.True(t, byName[NotEquals].IsEquality())
	assert.False(t, byName[Minus].IsEquality())

	// A lone upright is the short one, whichever frame it is drawn on.
	upright, err := OperatorFrame.Shape("upright", " ", " ", " ", "|")
	require.NoError(t, err)
	assert.True(t, upright.Equal(byName["one_short"].Shape()))
}

func TestCanonical(t *testing.T) {
	for _, r := range "0123456789+-=≠" {
		name, ok := Canonical(r)
		require.True(t, ok, string(r))
		assert.NotEmpty(t, name)
	}
	_, ok := Canonical('*')
	assert.False(t, ok)
}

func TestBuildFailsFast(t *testing.T) {
	defs := []Definition{
		{Name: "ok", Kind: domain.KindOperator, Code: "-", Pattern: []string{"_"}},
		{Name: "broken", Kind: domain.KindOperator, Code: "-", Pattern: []string{"?"}},
	}
	_, err := Build(defs)
	var se *ShapeError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, "broken", se.Glyph)
}
