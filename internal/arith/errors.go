package arith

import (
	"errors"
	"fmt"
)

// ErrInvalidExpression is returned for any code that is not a well-formed
// arithmetic or comparison expression.
var ErrInvalidExpression = errors.New("invalid expression")

// SyntaxError locates a parse failure within the evaluated code.
type SyntaxError struct {
	Code   string
	Offset int
	Msg    string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("invalid expression %q at offset %d: %s", e.Code, e.Offset, e.Msg)
}

func (e *SyntaxError) Unwrap() error { return ErrInvalidExpression }

func syntaxErr(code string, offset int, format string, args ...any) error {
	return &SyntaxError{Code: code, Offset: offset, Msg: fmt.Sprintf(format, args...)}
}
