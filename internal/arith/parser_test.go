package arith

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvalComparisons(t *testing.T) {
	cases := []struct {
		code string
		want bool
	}{
		{"1+1==2", true},
		{"1+1==3", false},
		{"6-4!=4", true},
		{"0+4==4", true},
		{"2==2==2", true},
		{"2==2==3", false},
		{"1--1==2", true},
		{"-3==-3", true},
		{"+-+4==-4", true},
		{"10-1==9", true},
		{"5!=5", false},
		{"1==1!=2", true},
		{"00==0", true},
		{"00!=3", true},
		{"01==1", true},
		{"07==7", true},
		{"010==8", true},
		{"010==10", false},
		{"04+1==5", true},
	}
	for _, tc := range cases {
		t.Run(tc.code, func(t *testing.T) {
			v, err := Eval(tc.code)
			require.NoError(t, err)
			b, ok := v.AsBool()
			require.True(t, ok, "want bool result, got %v", v)
			assert.Equal(t, tc.want, b)
			assert.Equal(t, tc.want, v.IsTrue())
		})
	}
}

func TestEvalArithmeticIsNotTrue(t *testing.T) {
	v, err := Eval("1+1")
	require.NoError(t, err)
	n, ok := v.AsInt()
	require.True(t, ok)
	assert.EqualValues(t, 2, n)
	assert.False(t, v.IsTrue())

	one, err := Eval("1")
	require.NoError(t, err)
	assert.False(t, one.IsTrue(), "Int(1) must not count as true")
	assert.Equal(t, "1", one.String())
}

func TestEvalInvalid(t *testing.T) {
	for _, code := range []string{
		"",
		"+==2",
		"+=2",
		"==2",
		"1+",
		"1==",
		"1=2",
		"1!2",
		"08==8",
		"09",
		"1+0189==0",
		"0777777777777777777777777==1",
		"1 2",
		"2x",
		"99999999999999999999==1",
		"9223372036854775807+1==0",
	} {
		t.Run(code, func(t *testing.T) {
			_, err := Eval(code)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidExpression))
			var se *SyntaxError
			assert.True(t, errors.As(err, &se))
			assert.Equal(t, code, se.Code)
		})
	}
}

func TestEvalZeroLiteral(t *testing.T) {
	v, err := Eval("0==0")
	require.NoError(t, err)
	assert.True(t, v.IsTrue())
}

func TestLexOffsets(t *testing.T) {
	toks, err := Lex("12!=-3")
	require.NoError(t, err)
	types := make([]TokenType, 0, len(toks))
	for _, tok := range toks {
		types = append(types, tok.Type)
	}
	assert.Equal(t, []TokenType{TokenInt, TokenNe, TokenMinus, TokenInt, TokenEOF}, types)
	assert.Equal(t, 2, toks[1].Offset)
	assert.Equal(t, "12", toks[0].Text)
}
