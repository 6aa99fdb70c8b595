package domain

import (
	"fmt"
	"strings"
)

// Difficulty labels target puzzle generation & grading.
type Difficulty int

const (
	Easy Difficulty = iota
	Medium
	Hard
	Expert
)

func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "easy"
	case Hard:
		return "hard"
	case Expert:
		return "expert"
	default:
		return "medium"
	}
}

// ParseDifficulty accepts the names returned by String, in any case.
func ParseDifficulty(s string) (Difficulty, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy":
		return Easy, nil
	case "medium", "":
		return Medium, nil
	case "hard":
		return Hard, nil
	case "expert":
		return Expert, nil
	}
	return Medium, fmt.Errorf("unknown difficulty %q", s)
}

func (d Difficulty) MarshalText() ([]byte, error) { return []byte(d.String()), nil }

func (d *Difficulty) UnmarshalText(b []byte) error {
	v, err := ParseDifficulty(string(b))
	if err != nil {
		return err
	}
	*d = v
	return nil
}

// HintLevel limits how much of a solution a hint reveals.
type HintLevel int

const (
	HintSource   HintLevel = iota // which glyph gives up a stick
	HintMove                      // source and destination glyphs
	HintSolution                  // the repaired statement
)

// Kind tags the role a Symbol plays in an expression. KindEquality marks
// the == and != signs that split a chained statement.
type Kind uint8

const (
	KindDigit Kind = iota
	KindOperator
	KindEquality
)

func (k Kind) String() string {
	switch k {
	case KindDigit:
		return "digit"
	case KindOperator:
		return "operator"
	case KindEquality:
		return "equality"
	default:
		return "unknown"
	}
}

// Orientation of a single stick within its grid cell.
type Orientation uint8

const (
	Horizontal Orientation = iota
	Vertical
)

func (o Orientation) String() string {
	if o == Vertical {
		return "|"
	}
	return "_"
}
