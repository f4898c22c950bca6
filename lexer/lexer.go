/*
File    : monkey-go/lexer/lexer.go
Author  : akashmaji946/monkey-go contributors
*/

// Package lexer scans Monkey source text into a lazy stream of
// token.Tokens. It is a stateful cursor over the input buffer it owns: each
// call to NextToken advances the cursor and returns exactly one token, with
// no backtracking.
package lexer

import (
	"strconv"

	"github.com/akashmaji946/monkey-go/token"
)

// Lexer scans a fixed input string one byte at a time. position indexes
// the byte currently held in ch; readPosition is the index of the byte
// that will be read next. ch is 0 once the input is exhausted.
type Lexer struct {
	input        string
	position     int
	readPosition int
	ch           byte
}

// New returns a Lexer primed to scan input, with ch already holding the
// first character (or 0 if input is empty).
func New(input string) *Lexer {
	l := &Lexer{input: input}
	l.readChar()
	return l
}

// readChar advances the cursor by one byte, setting ch to the new current
// character or 0 at end of input.
func (l *Lexer) readChar() {
	if l.readPosition >= len(l.input) {
		l.ch = 0
	} else {
		l.ch = l.input[l.readPosition]
	}
	l.position = l.readPosition
	l.readPosition++
}

// peekChar looks at the next byte without consuming it, returning 0 at end
// of input.
func (l *Lexer) peekChar() byte {
	if l.readPosition >= len(l.input) {
		return 0
	}
	return l.input[l.readPosition]
}

// NextToken skips whitespace, then scans and returns the next token. Once
// input is exhausted it returns token.EOF on every subsequent call.
func (l *Lexer) NextToken() token.Token {
	l.skipWhitespace()

	var tok token.Token

	switch l.ch {
	case '=':
		if l.peekChar() == '=' {
			l.readChar()
			tok = token.New(token.EQ, "==")
		} else {
			tok = token.New(token.ASSIGN, "=")
		}
	case '!':
		if l.peekChar() == '=' {
			l.readChar()
			tok = token.New(token.NOT_EQ, "!=")
		} else {
			tok = token.New(token.BANG, "!")
		}
	case '+':
		tok = token.New(token.PLUS, "+")
	case '-':
		tok = token.New(token.MINUS, "-")
	case '*':
		tok = token.New(token.ASTERISK, "*")
	case '/':
		tok = token.New(token.SLASH, "/")
	case '<':
		tok = token.New(token.LT, "<")
	case '>':
		tok = token.New(token.GT, ">")
	case ',':
		tok = token.New(token.COMMA, ",")
	case ';':
		tok = token.New(token.SEMICOLON, ";")
	case '(':
		tok = token.New(token.LPAREN, "(")
	case ')':
		tok = token.New(token.RPAREN, ")")
	case '{':
		tok = token.New(token.LBRACE, "{")
	case '}':
		tok = token.New(token.RBRACE, "}")
	case 0:
		tok = token.New(token.EOF, "")
	default:
		if isLetter(l.ch) {
			// readIdentifier already consumed up to the first
			// non-identifier character; return directly rather than
			// falling through to the trailing readChar below.
			literal := l.readIdentifier()
			return token.New(token.LookupIdent(literal), literal)
		}
		if isDigit(l.ch) {
			return l.readNumber()
		}
		tok = token.New(token.ILLEGAL, string(l.ch))
	}

	l.readChar()
	return tok
}

// skipWhitespace advances past runs of space, tab, newline and carriage
// return. These four characters are the only whitespace this lexer
// recognizes.
func (l *Lexer) skipWhitespace() {
	for l.ch == ' ' || l.ch == '\t' || l.ch == '\n' || l.ch == '\r' {
		l.readChar()
	}
}

// readIdentifier consumes a maximal run of letters, digits and
// underscores starting at the current position and returns the slice
// scanned. The cursor is left on the first character past the run.
func (l *Lexer) readIdentifier() string {
	start := l.position
	for isLetter(l.ch) || isDigit(l.ch) {
		l.readChar()
	}
	return l.input[start:l.position]
}

// readNumber consumes a maximal run of digits and parses it as a signed
// 64-bit integer. A run too large for int64 is a programmer-error
// condition this grammar does not contract to recover from, so it panics
// rather than returning a malformed token.
func (l *Lexer) readNumber() token.Token {
	start := l.position
	for isDigit(l.ch) {
		l.readChar()
	}
	literal := l.input[start:l.position]
	if _, err := strconv.ParseInt(literal, 10, 64); err != nil {
		panic("lexer: integer literal out of range: " + literal)
	}
	return token.New(token.INT, literal)
}

// isLetter reports whether c can start or continue an identifier:
// ASCII letters and underscore.
func isLetter(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || c == '_'
}

// isDigit reports whether c is an ASCII decimal digit.
func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}
