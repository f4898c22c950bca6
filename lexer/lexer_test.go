package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/akashmaji946/monkey-go/token"
)

func TestNextToken_Punctuation(t *testing.T) {
	input := `=+(){},;`

	expected := []token.Token{
		token.New(token.ASSIGN, "="),
		token.New(token.PLUS, "+"),
		token.New(token.LPAREN, "("),
		token.New(token.RPAREN, ")"),
		token.New(token.LBRACE, "{"),
		token.New(token.RBRACE, "}"),
		token.New(token.COMMA, ","),
		token.New(token.SEMICOLON, ";"),
		token.New(token.EOF, ""),
	}

	l := New(input)
	for i, want := range expected {
		got := l.NextToken()
		assert.Equalf(t, want, got, "token %d", i)
	}
}

func TestNextToken_Program(t *testing.T) {
	input := `
let five = 5;
let add = fn(x, y) { x + y; };
!-/*5;
5 < 10 > 5;
`

	expected := []token.Token{
		token.New(token.LET, "let"),
		token.New(token.IDENT, "five"),
		token.New(token.ASSIGN, "="),
		token.New(token.INT, "5"),
		token.New(token.SEMICOLON, ";"),

		token.New(token.LET, "let"),
		token.New(token.IDENT, "add"),
		token.New(token.ASSIGN, "="),
		token.New(token.FUNCTION, "fn"),
		token.New(token.LPAREN, "("),
		token.New(token.IDENT, "x"),
		token.New(token.COMMA, ","),
		token.New(token.IDENT, "y"),
		token.New(token.RPAREN, ")"),
		token.New(token.LBRACE, "{"),
		token.New(token.IDENT, "x"),
		token.New(token.PLUS, "+"),
		token.New(token.IDENT, "y"),
		token.New(token.SEMICOLON, ";"),
		token.New(token.RBRACE, "}"),
		token.New(token.SEMICOLON, ";"),

		token.New(token.BANG, "!"),
		token.New(token.MINUS, "-"),
		token.New(token.SLASH, "/"),
		token.New(token.ASTERISK, "*"),
		token.New(token.INT, "5"),
		token.New(token.SEMICOLON, ";"),

		token.New(token.INT, "5"),
		token.New(token.LT, "<"),
		token.New(token.INT, "10"),
		token.New(token.GT, ">"),
		token.New(token.INT, "5"),
		token.New(token.SEMICOLON, ";"),

		token.New(token.EOF, ""),
	}

	l := New(input)
	for i, want := range expected {
		got := l.NextToken()
		assert.Equalf(t, want, got, "token %d", i)
	}
}

func TestNextToken_TwoCharacterOperators(t *testing.T) {
	input := `10 == 10; 9 != 10;`

	expected := []token.Token{
		token.New(token.INT, "10"),
		token.New(token.EQ, "=="),
		token.New(token.INT, "10"),
		token.New(token.SEMICOLON, ";"),
		token.New(token.INT, "9"),
		token.New(token.NOT_EQ, "!="),
		token.New(token.INT, "10"),
		token.New(token.SEMICOLON, ";"),
		token.New(token.EOF, ""),
	}

	l := New(input)
	for i, want := range expected {
		got := l.NextToken()
		assert.Equalf(t, want, got, "token %d", i)
	}
}

func TestNextToken_EmptyInput(t *testing.T) {
	l := New("")
	assert.Equal(t, token.New(token.EOF, ""), l.NextToken())
	// Eof is sticky: further calls keep returning it.
	assert.Equal(t, token.New(token.EOF, ""), l.NextToken())
}

func TestNextToken_WhitespaceOnlyInput(t *testing.T) {
	l := New("   \t\n\r  ")
	assert.Equal(t, token.New(token.EOF, ""), l.NextToken())
}

func TestNextToken_IllegalCharacter(t *testing.T) {
	l := New("@")
	got := l.NextToken()
	assert.Equal(t, token.ILLEGAL, got.Type)
	assert.Equal(t, "@", got.Literal)
	assert.Equal(t, token.New(token.EOF, ""), l.NextToken())
}

func TestNextToken_AllKeywords(t *testing.T) {
	input := `fn let true false if else return`
	expected := []token.Type{
		token.FUNCTION, token.LET, token.TRUE, token.FALSE,
		token.IF, token.ELSE, token.RETURN, token.EOF,
	}

	l := New(input)
	for i, want := range expected {
		got := l.NextToken()
		assert.Equalf(t, want, got.Type, "token %d", i)
	}
}
