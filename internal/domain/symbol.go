package domain

import "fmt"

// Symbol is a named glyph: a digit, an arithmetic operator or an equality
// operator. Its identity for matching is its Shape alone; two symbols with
// translated-equal shapes are the same symbol whatever their names.
type Symbol struct {
	shape    Shape
	kind     Kind
	name     string
	code     string // evaluation token
	display  string
	value    int
	hasValue bool
}

// NewDigit returns a digit glyph evaluating to the decimal value.
func NewDigit(shape Shape, value int, name string) *Symbol {
	v := fmt.Sprint(value)
	return &Symbol{shape: shape, kind: KindDigit, name: name, code: v, display: v, value: value, hasValue: true}
}

// NewBlank returns a digit glyph without a value; it contributes nothing to
// the evaluated code.
func NewBlank(shape Shape, name string) *Symbol {
	return &Symbol{shape: shape, kind: KindDigit, name: name}
}

// NewOperator returns an arithmetic operator glyph. An empty display token
// defaults to code.
func NewOperator(shape Shape, code, display, name string) *Symbol {
	if display == "" {
		display = code
	}
	return &Symbol{shape: shape, kind: KindOperator, name: name, code: code, display: display}
}

// NewEqualityOperator returns an == or != glyph.
func NewEqualityOperator(shape Shape, code, display, name string) *Symbol {
	s := NewOperator(shape, code, display, name)
	s.kind = KindEquality
	return s
}

// NewAnonymous wraps a shape that need not correspond to any named glyph.
func NewAnonymous(shape Shape) *Symbol {
	return &Symbol{shape: shape, kind: KindOperator}
}

func (s *Symbol) Shape() Shape    { return s.shape }
func (s *Symbol) Kind() Kind      { return s.kind }
func (s *Symbol) Name() string    { return s.name }
func (s *Symbol) Code() string    { return s.code }
func (s *Symbol) Display() string { return s.display }
func (s *Symbol) Key() ShapeKey   { return s.shape.key }

// Value returns the numeric value of a digit; blanks and operators report false.
func (s *Symbol) Value() (int, bool) { return s.value, s.hasValue }

// IsEquality reports whether the symbol is == or !=.
func (s *Symbol) IsEquality() bool { return s.kind == KindEquality }

// Equal compares by shape only.
func (s *Symbol) Equal(o *Symbol) bool { return s.shape.Equal(o.shape) }

// ReachableByAdditionFrom reports whether adding exactly one stick to other
// yields this symbol.
func (s *Symbol) ReachableByAdditionFrom(other *Symbol) bool {
	return s.shape.ReachableByAdditionFrom(other.shape)
}

func (s *Symbol) String() string {
	if s.name == "" {
		return s.shape.String()
	}
	return s.name
}
