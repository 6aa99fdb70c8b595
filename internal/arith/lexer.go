package arith

// TokenType represents the type of a lexer token.
type TokenType uint8

const (
	TokenEOF   TokenType = iota // end of input
	TokenInt                    // 42
	TokenPlus                   // +
	TokenMinus                  // -
	TokenEq                     // ==
	TokenNe                     // !=
)

// String returns the token type name.
func (t TokenType) String() string {
	switch t {
	case TokenEOF:
		return "EOF"
	case TokenInt:
		return "INT"
	case TokenPlus:
		return "+"
	case TokenMinus:
		return "-"
	case TokenEq:
		return "=="
	case TokenNe:
		return "!="
	default:
		return "?"
	}
}

// Token is a lexical token with its byte offset in the source.
type Token struct {
	Type   TokenType
	Text   string
	Offset int
}

// Lex splits code into tokens. The final token is always TokenEOF.
func Lex(code string) ([]Token, error) {
	var toks []Token
	for i := 0; i < len(code); {
		c := code[i]
		switch {
		case isDigit(c):
			j := i
			for j < len(code) && isDigit(code[j]) {
				j++
			}
			toks = append(toks, Token{Type: TokenInt, Text: code[i:j], Offset: i})
			i = j
		case c == '+':
			toks = append(toks, Token{Type: TokenPlus, Text: "+", Offset: i})
			i++
		case c == '-':
			toks = append(toks, Token{Type: TokenMinus, Text: "-", Offset: i})
			i++
		case c == '=' || c == '!':
			if i+1 >= len(code) || code[i+1] != '=' {
				return nil, syntaxErr(code, i, "expected '=' after %q", c)
			}
			t := TokenEq
			if c == '!' {
				t = TokenNe
			}
			toks = append(toks, Token{Type: t, Text: code[i : i+2], Offset: i})
			i += 2
		case c == ' ' || c == '\t':
			i++
		default:
			return nil, syntaxErr(code, i, "unexpected character %q", c)
		}
	}
	return append(toks, Token{Type: TokenEOF, Offset: len(code)}), nil
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }
