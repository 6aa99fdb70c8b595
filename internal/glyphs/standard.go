package glyphs

import (
	"svw.info/matchsticks/internal/domain"
)

// DigitFrame is the seven-segment cell: a top bar on row 0 and two
// half-height cells on rows 4 and 8, each with a left side, a bottom bar and
// a right side.
var DigitFrame = NewFrame("digit",
	domain.Stick{Row: 0, Col: 1, Orientation: domain.Horizontal},
	domain.Stick{Row: 4, Col: 0, Orientation: domain.Vertical},
	domain.Stick{Row: 4, Col: 1, Orientation: domain.Horizontal},
	domain.Stick{Row: 4, Col: 2, Orientation: domain.Vertical},
	domain.Stick{Row: 8, Col: 0, Orientation: domain.Vertical},
	domain.Stick{Row: 8, Col: 1, Orientation: domain.Horizontal},
	domain.Stick{Row: 8, Col: 2, Orientation: domain.Vertical},
)

// OperatorFrame has three bar heights and one upright.
var OperatorFrame = NewFrame("operator",
	domain.Stick{Row: 1, Col: 1, Orientation: domain.Horizontal},
	domain.Stick{Row: 2, Col: 1, Orientation: domain.Horizontal},
	domain.Stick{Row: 3, Col: 1, Orientation: domain.Horizontal},
	domain.Stick{Row: 4, Col: 1, Orientation: domain.Vertical},
)

// Definition describes one glyph of an alphabet.
type Definition struct {
	Name    string
	Kind    domain.Kind
	Code    string // operators only; digits derive it from Value
	Display string
	Value   int
	Blank   bool
	Pattern []string
}

// Standard glyph names used by the canonical notation.
const (
	Blank     = "blank"
	Plus      = "plus"
	Minus     = "minus"
	Equals    = "equals"
	NotEquals = "not_equals"
)

// StandardDefinitions is the full matchstick alphabet: every digit in each
// of its common stick layouts, and the +, -, = and ≠ signs at the bar
// heights the operator frame allows.
var StandardDefinitions = []Definition{
	{Name: Blank, Kind: domain.KindDigit, Blank: true, Pattern: []string{
		"   ",
		"   ",
		"   ",
	}},
	{Name: "zero", Kind: domain.KindDigit, Value: 0, Pattern: []string{
		" _ ",
		"| |",
		"|_|",
	}},
	{Name: "one", Kind: domain.KindDigit, Value: 1, Pattern: []string{
		"   ",
		"|  ",
		"|  ",
	}},
	{Name: "one_short", Kind: domain.KindDigit, Value: 1, Pattern: []string{
		"   ",
		"|  ",
		"   ",
	}},
	{Name: "two", Kind: domain.KindDigit, Value: 2, Pattern: []string{
		" _ ",
		" _|",
		"|_ ",
	}},
	{Name: "three", Kind: domain.KindDigit, Value: 3, Pattern: []string{
		" _ ",
		" _|",
		" _|",
	}},
	{Name: "four", Kind: domain.KindDigit, Value: 4, Pattern: []string{
		"   ",
		"|_|",
		"  |",
	}},
	{Name: "five", Kind: domain.KindDigit, Value: 5, Pattern: []string{
		" _ ",
		"|_ ",
		" _|",
	}},
	{Name: "six", Kind: domain.KindDigit, Value: 6, Pattern: []string{
		" _ ",
		"|_ ",
		"|_|",
	}},
	{Name: "six_open", Kind: domain.KindDigit, Value: 6, Pattern: []string{
		"   ",
		"|_ ",
		"|_|",
	}},
	{Name: "seven", Kind: domain.KindDigit, Value: 7, Pattern: []string{
		" _ ",
		"  |",
		"  |",
	}},
	{Name: "seven_hooked", Kind: domain.KindDigit, Value: 7, Pattern: []string{
		" _ ",
		"| |",
		"  |",
	}},
	{Name: "eight", Kind: domain.KindDigit, Value: 8, Pattern: []string{
		" _ ",
		"|_|",
		"|_|",
	}},
	{Name: "nine", Kind: domain.KindDigit, Value: 9, Pattern: []string{
		" _ ",
		"|_|",
		"  |",
	}},
	{Name: "nine_tailed", Kind: domain.KindDigit, Value: 9, Pattern: []string{
		" _ ",
		"|_|",
		" _|",
	}},
	{Name: "plus_high", Kind: domain.KindOperator, Code: "+", Pattern: []string{"_", " ", " ", "|"}},
	{Name: Plus, Kind: domain.KindOperator, Code: "+", Pattern: []string{" ", "_", " ", "|"}},
	{Name: "plus_low", Kind: domain.KindOperator, Code: "+", Pattern: []string{" ", " ", "_", "|"}},
	{Name: Minus, Kind: domain.KindOperator, Code: "-", Pattern: []string{"_", " ", " ", " "}},
	{Name: "equals_narrow", Kind: domain.KindEquality, Code: "==", Display: "=", Pattern: []string{"_", "_", " ", " "}},
	{Name: Equals, Kind: domain.KindEquality, Code: "==", Display: "=", Pattern: []string{"_", " ", "_", " "}},
	{Name: "not_equals_high", Kind: domain.KindEquality, Code: "!=", Display: "≠", Pattern: []string{"_", "_", " ", "|"}},
	{Name: NotEquals, Kind: domain.KindEquality, Code: "!=", Display: "≠", Pattern: []string{"_", " ", "_", "|"}},
	{Name: "not_equals_low", Kind: domain.KindEquality, Code: "!=", Display: "≠", Pattern: []string{" ", "_", "_", "|"}},
}

// canonical maps a character of puzzle text to the glyph it is drawn with.
var canonical = map[rune]string{
	'0': "zero",
	'1': "one",
	'2': "two",
	'3': "three",
	'4': "four",
	'5': "five",
	'6': "six",
	'7': "seven",
	'8': "eight",
	'9': "nine",
	'+': Plus,
	'-': Minus,
	'=': Equals,
	'≠': NotEquals,
}

// Canonical returns the standard glyph name for a character of puzzle text.
func Canonical(r rune) (string, bool) {
	name, ok := canonical[r]
	return name, ok
}

// Build draws every definition. The first ShapeError aborts the build.
func Build(defs []Definition) ([]*domain.Symbol, error) {
	out := make([]*domain.Symbol, 0, len(defs))
	for _, d := range defs {
		frame := OperatorFrame
		if d.Kind == domain.KindDigit {
			frame = DigitFrame
		}
		shape, err := frame.Shape(d.Name, d.Pattern...)
		if err != nil {
			return nil, err
		}
		var s *domain.Symbol
		switch {
		case d.Kind == domain.KindDigit && d.Blank:
			s = domain.NewBlank(shape, d.Name)
		case d.Kind == domain.KindDigit:
			s = domain.NewDigit(shape, d.Value, d.Name)
		case d.Kind == domain.KindEquality:
			s = domain.NewEqualityOperator(shape, d.Code, d.Display, d.Name)
		default:
			s = domain.NewOperator(shape, d.Code, d.Display, d.Name)
		}
		out = append(out, s)
	}
	return out, nil
}

// Standard builds the standard alphabet.
func Standard() ([]*domain.Symbol, error) { return Build(StandardDefinitions) }

// MustStandard is Standard for program start-up; a broken alphabet panics.
func MustStandard() []*domain.Symbol {
	syms, err := Standard()
	if err != nil {
		panic(err)
	}
	return syms
}
