// ============================================================================
// lanpy - Lexer & Parser Toolkit
// ============================================================================
//
// Package:     parser
// Description: Extensible recursive-descent parser shell
// Author:      Mike Stoffels
// Created:     2026-02-14
// License:     MIT
// ============================================================================

package parser

import (
	"fmt"

	lperror "github.com/msto63/lanpy/pkg/core/error"
	lplog "github.com/msto63/lanpy/pkg/core/log"
	"github.com/msto63/lanpy/pkg/token"
)

// Expression is a recognized grammar fragment that evaluates to a value
type Expression interface {
	Eval() (any, error)
}

// Statement is a recognized grammar fragment that is executed for its effect
type Statement interface {
	Exec() error
}

// ExpressionFunc tries to recognize an expression at the current position.
// It returns (nil, nil) without consuming tokens when it does not apply.
type ExpressionFunc func(p *Parser) (Expression, error)

// StatementFunc tries to recognize a statement at the current position.
// It returns (nil, nil) without consuming tokens when it does not apply.
type StatementFunc func(p *Parser) (Statement, error)

// ParseError is returned when the token sequence does not fit the grammar
type ParseError struct {
	Message string
	Token   token.Token // offending token
	code    lperror.Code
}

// Error implements the error interface
func (e *ParseError) Error() string {
	return e.Message
}

// Code reports the error code used by the core error package
func (e *ParseError) Code() lperror.Code {
	return e.code
}

func newParseError(code lperror.Code, prefix string, tok token.Token) *ParseError {
	return &ParseError{
		Message: fmt.Sprintf("%s: %s.", prefix, tok),
		Token:   tok,
		code:    code,
	}
}

// Parser drives registered producers over a fixed token sequence.
// Producers are tried in registration order; the first one that recognizes
// the input wins. A Parser is not safe for concurrent use.
type Parser struct {
	tokens []token.Token
	pos    int

	expressions []ExpressionFunc
	statements  []StatementFunc

	logger *lplog.Logger
}

// New creates a parser over tokens. Reads past the end yield token.EOFToken,
// so tokens need not end with an explicit EOF.
func New(tokens []token.Token) *Parser {
	return &Parser{
		tokens: tokens,
	}
}

// WithLogger sets the logger used for debug and trace output
func (p *Parser) WithLogger(logger *lplog.Logger) *Parser {
	p.logger = logger
	return p
}

// RegisterExpression appends expression producers to the registry
func (p *Parser) RegisterExpression(fns ...ExpressionFunc) *Parser {
	p.expressions = append(p.expressions, fns...)
	return p
}

// RegisterStatement appends statement producers to the registry
func (p *Parser) RegisterStatement(fns ...StatementFunc) *Parser {
	p.statements = append(p.statements, fns...)
	return p
}

// Pos returns the index of the current token
func (p *Parser) Pos() int {
	return p.pos
}

// GetToken returns the token at cursor+rel, or token.EOFToken outside the sequence
func (p *Parser) GetToken(rel int) token.Token {
	position := p.pos + rel
	if position < 0 || position >= len(p.tokens) {
		return token.EOFToken
	}
	return p.tokens[position]
}

// Match consumes the current token if it is named name
func (p *Parser) Match(name string) bool {
	if p.GetToken(0).Name != name {
		return false
	}
	p.advance()
	return true
}

// LookMatch reports whether the token at cursor+rel is named name, without consuming
func (p *Parser) LookMatch(name string, rel int) bool {
	return p.GetToken(rel).Name == name
}

// Consume returns and consumes the current token, which must be named name
func (p *Parser) Consume(name string) (token.Token, error) {
	current := p.GetToken(0)
	if current.Name != name {
		return current, p.Unexpected()
	}
	p.advance()
	return current, nil
}

// Unexpected returns the error a producer reports when it has committed to a
// rule and the current token does not continue it
func (p *Parser) Unexpected() *ParseError {
	return newParseError(lperror.CodeUnexpectedToken, "unexpected token", p.GetToken(0))
}

// advance moves the cursor by one; matching the synthesized EOF leaves it at the end
func (p *Parser) advance() {
	if p.pos < len(p.tokens) {
		p.pos++
	}
}

// GetExpression evaluates the first expression any producer recognizes.
// The boolean is false when no producer applies; that is not an error.
func (p *Parser) GetExpression() (any, bool, error) {
	for _, produce := range p.expressions {
		expr, err := produce(p)
		if err != nil {
			return nil, false, err
		}
		if expr == nil {
			continue
		}

		value, err := expr.Eval()
		if err != nil {
			return nil, false, err
		}
		return value, true, nil
	}
	return nil, false, nil
}

// ExecStatement executes the first statement any producer recognizes.
// The boolean is false when no producer applies.
func (p *Parser) ExecStatement() (bool, error) {
	for _, produce := range p.statements {
		stmt, err := produce(p)
		if err != nil {
			return false, err
		}
		if stmt == nil {
			continue
		}

		if err := stmt.Exec(); err != nil {
			return false, err
		}
		return true, nil
	}
	return false, nil
}

// Parse executes statements until the EOF token is matched. It fails when no
// statement producer recognizes the current token, or when a statement is
// recognized without consuming any token, since either would loop forever.
func (p *Parser) Parse() error {
	logger := p.logger
	if logger == nil {
		logger = lplog.GetDefault()
	}
	logger = logger.WithField("component", "parser")
	trace := logger.IsLevelEnabled(lplog.LevelTrace)

	timer := logger.StartTimer("parse").WithField("tokens", len(p.tokens))
	statements := 0

	for !p.Match(token.EOF) {
		start := p.pos
		current := p.GetToken(0)

		ok, err := p.ExecStatement()
		if err != nil {
			timer.Cancel()
			return err
		}
		if !ok {
			timer.Cancel()
			return newParseError(lperror.CodeNoMatchingStatement, "no matching statement", current)
		}
		if p.pos == start {
			timer.Cancel()
			return newParseError(lperror.CodeNoMatchingStatement, "statement made no progress", current)
		}

		statements++
		if trace {
			logger.Trace("statement executed", lplog.Fields{"start": start, "end": p.pos, "first": current.String()})
		}
	}

	timer.WithField("statements", statements).Stop()
	return nil
}
