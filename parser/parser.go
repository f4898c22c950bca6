/*
File    : monkey-go/parser/parser.go
Author  : akashmaji946/monkey-go contributors
*/

// Package parser implements a Pratt (top-down operator precedence) parser
// that turns a lexer.Lexer's token stream into an *ast.Program.
//
// The parser keeps a two-token lookahead window (curToken/peekToken) and
// never backtracks — sufficient for this grammar's let/return/expression
// statements and its prefix/infix operator set. A failing parse function
// returns a Go error up to ParseProgram, which records its message as a
// plain string instead of stopping: each statement attempt either succeeds
// or appends one message and synchronizes by advancing to the next
// semicolon, so a single call to
// ParseProgram can report every error in a source file, not just the
// first.
package parser

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/akashmaji946/monkey-go/ast"
	"github.com/akashmaji946/monkey-go/lexer"
	"github.com/akashmaji946/monkey-go/token"
)

// Operator precedence levels, lowest to highest. Kept as a pure function
// from token.Type to int (see precedenceOf) rather than parser instance
// state, so the ladder can be unit-tested on its own.
const (
	_ int = iota
	LOWEST
	EQUALS      // == !=
	LESSGREATER // > or <
	SUM         // + -
	PRODUCT     // * /
	PREFIX      // -x or !x
	CALL        // myFunction(x) — reserved, not yet consumed
)

// precedences maps an infix operator's token type to its binding level.
// Tokens absent from this table (including EOF and non-operators) are
// treated as LOWEST by precedenceOf, which stops the infix loop.
var precedences = map[token.Type]int{
	token.EQ:       EQUALS,
	token.NOT_EQ:   EQUALS,
	token.LT:       LESSGREATER,
	token.GT:       LESSGREATER,
	token.PLUS:     SUM,
	token.MINUS:    SUM,
	token.SLASH:    PRODUCT,
	token.ASTERISK: PRODUCT,
}

func precedenceOf(t token.Type) int {
	if p, ok := precedences[t]; ok {
		return p
	}
	return LOWEST
}

type (
	prefixParseFn func() (ast.Expression, error)
	infixParseFn  func(ast.Expression) (ast.Expression, error)
)

// Parser consumes a lexer.Lexer one token at a time through a two-token
// lookahead window and accumulates human-readable error strings rather
// than failing fast.
type Parser struct {
	l      *lexer.Lexer
	errors []string

	curToken  token.Token
	peekToken token.Token

	prefixParseFns map[token.Type]prefixParseFn
	infixParseFns  map[token.Type]infixParseFn
}

// New returns a Parser reading from l. Construction advances the token
// window twice so curToken holds the first token and peekToken the
// second.
func New(l *lexer.Lexer) *Parser {
	p := &Parser{
		l:      l,
		errors: []string{},
	}

	p.prefixParseFns = make(map[token.Type]prefixParseFn)
	p.registerPrefix(token.IDENT, p.parseIdentifier)
	p.registerPrefix(token.INT, p.parseIntegerLiteral)
	p.registerPrefix(token.BANG, p.parsePrefixExpression)
	p.registerPrefix(token.MINUS, p.parsePrefixExpression)

	p.infixParseFns = make(map[token.Type]infixParseFn)
	p.registerInfix(token.PLUS, p.parseInfixExpression)
	p.registerInfix(token.MINUS, p.parseInfixExpression)
	p.registerInfix(token.SLASH, p.parseInfixExpression)
	p.registerInfix(token.ASTERISK, p.parseInfixExpression)
	p.registerInfix(token.EQ, p.parseInfixExpression)
	p.registerInfix(token.NOT_EQ, p.parseInfixExpression)
	p.registerInfix(token.LT, p.parseInfixExpression)
	p.registerInfix(token.GT, p.parseInfixExpression)

	p.nextToken()
	p.nextToken()
	return p
}

func (p *Parser) registerPrefix(t token.Type, fn prefixParseFn) {
	p.prefixParseFns[t] = fn
}

func (p *Parser) registerInfix(t token.Type, fn infixParseFn) {
	p.infixParseFns[t] = fn
}

// Errors returns every error message collected so far.
func (p *Parser) Errors() []string {
	return p.errors
}

func (p *Parser) addError(msg string) {
	p.errors = append(p.errors, msg)
}

// nextToken slides the lookahead window forward by one token:
// curToken <- peekToken, peekToken <- lexer.NextToken().
func (p *Parser) nextToken() {
	p.curToken = p.peekToken
	p.peekToken = p.l.NextToken()
}

func (p *Parser) curTokenIs(t token.Type) bool  { return p.curToken.Type == t }
func (p *Parser) peekTokenIs(t token.Type) bool { return p.peekToken.Type == t }

// expectPeek reports whether peekToken has the expected type; if so it
// advances past it and returns true. If not, it leaves the window
// unchanged and returns false — the caller is responsible for turning
// that into the §6 error message, since errors are recorded exactly once,
// at the point parseStatement's result reaches ParseProgram.
func (p *Parser) expectPeek(t token.Type) bool {
	if !p.peekTokenIs(t) {
		return false
	}
	p.nextToken()
	return true
}

func peekErrorMsg(expected token.Type, got token.Token) error {
	return fmt.Errorf("expected next token to be %s, got %s", expected, got.Debug())
}

// ParseProgram consumes the entire token stream and returns the resulting
// Program, or a newline-joined error string if any statement failed to
// parse. It is total: every finite input either yields a Program or a
// non-empty error list, and the loop below always makes progress (either
// nextToken() after a successful statement, or the synchronize() advance
// after a failed one).
func (p *Parser) ParseProgram() (*ast.Program, error) {
	program := &ast.Program{Statements: []ast.Statement{}}

	for !p.curTokenIs(token.EOF) {
		stmt, err := p.parseStatement()
		if err != nil {
			p.addError(err.Error())
			p.synchronize()
			continue
		}
		program.Statements = append(program.Statements, stmt)
		p.nextToken()
	}

	if len(p.errors) > 0 {
		return nil, errors.New(strings.Join(p.errors, "\n"))
	}
	return program, nil
}

// synchronize discards tokens up to and including the next semicolon,
// the only resync point this grammar needs, so later errors can still be
// reported in the same pass.
func (p *Parser) synchronize() {
	for !p.curTokenIs(token.SEMICOLON) && !p.curTokenIs(token.EOF) {
		p.nextToken()
	}
	if p.curTokenIs(token.SEMICOLON) {
		p.nextToken()
	}
}

func (p *Parser) parseStatement() (ast.Statement, error) {
	switch p.curToken.Type {
	case token.LET:
		return p.parseLetStatement()
	case token.RETURN:
		return p.parseReturnStatement()
	default:
		return p.parseExpressionStatement()
	}
}

// parseLetStatement parses "let <IDENT> = <rest>;". The value expression
// is not actually parsed here: per spec, the token immediately following
// "=" is recorded as a placeholder Identifier, and the parser then skips
// ahead to the terminating semicolon. This is a known, deliberately
// preserved limitation of this grammar's let statements, not a bug.
func (p *Parser) parseLetStatement() (ast.Statement, error) {
	stmt := &ast.LetStatement{Token: p.curToken}

	if !p.expectPeek(token.IDENT) {
		return nil, peekErrorMsg(token.IDENT, p.peekToken)
	}

	stmt.Name = &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal}

	if !p.expectPeek(token.ASSIGN) {
		return nil, peekErrorMsg(token.ASSIGN, p.peekToken)
	}

	p.nextToken() // advance past "="
	stmt.Value = &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal}

	for !p.curTokenIs(token.SEMICOLON) && !p.curTokenIs(token.EOF) {
		p.nextToken()
	}

	return stmt, nil
}

// parseReturnStatement parses "return <rest>;" with the same placeholder
// value-parsing behavior as parseLetStatement.
func (p *Parser) parseReturnStatement() (ast.Statement, error) {
	stmt := &ast.ReturnStatement{Token: p.curToken}

	p.nextToken()
	stmt.ReturnValue = &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal}

	for !p.curTokenIs(token.SEMICOLON) && !p.curTokenIs(token.EOF) {
		p.nextToken()
	}

	return stmt, nil
}

// parseExpressionStatement parses a bare expression at LOWEST precedence
// and wraps it as a statement. A trailing semicolon is optional and, if
// present, consumed.
func (p *Parser) parseExpressionStatement() (ast.Statement, error) {
	stmt := &ast.ExpressionStatement{Token: p.curToken}

	expr, err := p.parseExpression(LOWEST)
	if err != nil {
		return nil, err
	}
	stmt.Expression = expr

	if p.peekTokenIs(token.SEMICOLON) {
		p.nextToken()
	}

	return stmt, nil
}

// parseExpression is the heart of the Pratt parser: it looks up a prefix
// rule for curToken, then repeatedly extends the resulting expression
// with infix rules as long as an infix token follows with precedence
// strictly greater than the precedence this call was entered with. The
// strict "<" comparison is what makes equal-precedence operators
// associate left-to-right.
func (p *Parser) parseExpression(precedence int) (ast.Expression, error) {
	prefix, ok := p.prefixParseFns[p.curToken.Type]
	if !ok {
		return nil, fmt.Errorf("no prefix parse function for %s", p.curToken.Debug())
	}

	left, err := prefix()
	if err != nil {
		return nil, err
	}

	for !p.peekTokenIs(token.SEMICOLON) && precedence < precedenceOf(p.peekToken.Type) {
		infix, ok := p.infixParseFns[p.peekToken.Type]
		if !ok {
			return left, nil
		}
		p.nextToken()

		left, err = infix(left)
		if err != nil {
			return nil, err
		}
	}

	return left, nil
}

func (p *Parser) parseIdentifier() (ast.Expression, error) {
	return &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal}, nil
}

func (p *Parser) parseIntegerLiteral() (ast.Expression, error) {
	value, err := strconv.ParseInt(p.curToken.Literal, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("could not parse %q as integer", p.curToken.Literal)
	}
	return &ast.IntegerLiteral{Token: p.curToken, Value: value}, nil
}

// parsePrefixExpression handles "!x" and "-x": it captures the operator,
// advances past it, and recurses at PREFIX precedence so that, e.g.,
// "-a * b" parses as "(-a) * b" rather than "-(a * b)".
func (p *Parser) parsePrefixExpression() (ast.Expression, error) {
	expr := &ast.PrefixExpression{
		Token:    p.curToken,
		Operator: p.curToken.Literal,
	}

	p.nextToken()

	right, err := p.parseExpression(PREFIX)
	if err != nil {
		return nil, err
	}
	expr.Right = right

	return expr, nil
}

// parseInfixExpression handles a binary operator continuing an
// expression to the right: it captures the operator and its own
// precedence, advances past it, and recurses at that precedence.
func (p *Parser) parseInfixExpression(left ast.Expression) (ast.Expression, error) {
	expr := &ast.InfixExpression{
		Token:    p.curToken,
		Left:     left,
		Operator: p.curToken.Literal,
	}

	precedence := precedenceOf(p.curToken.Type)
	p.nextToken()

	right, err := p.parseExpression(precedence)
	if err != nil {
		return nil, err
	}
	expr.Right = right

	return expr, nil
}
