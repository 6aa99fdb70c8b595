package arith

import "strconv"

// Value is the result of evaluating code: either an integer (no comparison
// present) or a boolean.
type Value struct {
	isBool bool
	n      int64
	b      bool
}

// Int wraps an arithmetic result.
func Int(n int64) Value { return Value{n: n} }

// Bool wraps a comparison result.
func Bool(b bool) Value { return Value{isBool: true, b: b} }

func (v Value) IsBool() bool { return v.isBool }

// AsInt returns the integer and whether v is an arithmetic result.
func (v Value) AsInt() (int64, bool) { return v.n, !v.isBool }

// AsBool returns the boolean and whether v is a comparison result.
func (v Value) AsBool() (bool, bool) { return v.b, v.isBool }

// IsTrue is true only for Bool(true). Int(1) is not true.
func (v Value) IsTrue() bool { return v.isBool && v.b }

func (v Value) String() string {
	if v.isBool {
		return strconv.FormatBool(v.b)
	}
	return strconv.FormatInt(v.n, 10)
}
