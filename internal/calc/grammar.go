// ============================================================================
// lanpy - Lexer & Parser Toolkit
// ============================================================================
//
// Package:     calc
// Description: Calculator grammar registered on the parser shell
// Author:      Mike Stoffels
// Created:     2026-02-14
// License:     MIT
// ============================================================================

package calc

import (
	"strconv"

	"github.com/msto63/lanpy/pkg/core/config"
	lperror "github.com/msto63/lanpy/pkg/core/error"
	"github.com/msto63/lanpy/pkg/parser"
	"github.com/msto63/lanpy/pkg/token"
)

// Token names produced by the calculator tables
const (
	Plus      = "PLUS"
	Minus     = "MINUS"
	Star      = "STAR"
	Slash     = "SLASH"
	LParen    = "LPAREN"
	RParen    = "RPAREN"
	Assign    = "ASSIGN"
	Semicolon = "SEMICOLON"
	Let       = "LET"
	Print     = "PRINT"
)

// Operators returns the operator table of the calculator language
func Operators() map[string]string {
	return map[string]string{
		"+": Plus,
		"-": Minus,
		"*": Star,
		"/": Slash,
		"(": LParen,
		")": RParen,
		"=": Assign,
		";": Semicolon,
	}
}

// Keywords returns the keyword table of the calculator language
func Keywords() map[string]string {
	return map[string]string{
		"let":   Let,
		"print": Print,
	}
}

// Config returns a grammar configuration holding the calculator tables
func Config() *config.Config {
	cfg := config.Default()
	cfg.Operators = Operators()
	cfg.Keywords = Keywords()
	return cfg
}

// Register installs the calculator grammar on p. Statement order matters:
// assignment has to be tried before the expression statement, otherwise
// "x = 1;" would start evaluating x as a variable.
func (in *Interpreter) Register(p *parser.Parser) *parser.Parser {
	return p.
		RegisterExpression(in.expression).
		RegisterStatement(
			in.letStatement,
			in.printStatement,
			in.assignStatement,
			in.expressionStatement,
		)
}

// letStatement: LET WORD ASSIGN expr SEMICOLON
func (in *Interpreter) letStatement(p *parser.Parser) (parser.Statement, error) {
	if !p.Match(Let) {
		return nil, nil
	}

	name, err := p.Consume(token.WORD)
	if err != nil {
		return nil, err
	}
	if _, err := p.Consume(Assign); err != nil {
		return nil, err
	}

	value, err := requireExpression(p)
	if err != nil {
		return nil, err
	}
	if _, err := p.Consume(Semicolon); err != nil {
		return nil, err
	}

	return &letStmt{interp: in, name: name.Value, value: value, declare: true}, nil
}

// assignStatement: WORD ASSIGN expr SEMICOLON
func (in *Interpreter) assignStatement(p *parser.Parser) (parser.Statement, error) {
	if !p.LookMatch(token.WORD, 0) || !p.LookMatch(Assign, 1) {
		return nil, nil
	}

	name := p.GetToken(0)
	p.Match(token.WORD)
	p.Match(Assign)

	value, err := requireExpression(p)
	if err != nil {
		return nil, err
	}
	if _, err := p.Consume(Semicolon); err != nil {
		return nil, err
	}

	return &letStmt{interp: in, name: name.Value, value: value}, nil
}

// printStatement: PRINT expr SEMICOLON
func (in *Interpreter) printStatement(p *parser.Parser) (parser.Statement, error) {
	if !p.Match(Print) {
		return nil, nil
	}

	value, err := requireExpression(p)
	if err != nil {
		return nil, err
	}
	if _, err := p.Consume(Semicolon); err != nil {
		return nil, err
	}

	return &printStmt{interp: in, value: value}, nil
}

// expressionStatement: expr SEMICOLON
func (in *Interpreter) expressionStatement(p *parser.Parser) (parser.Statement, error) {
	value, ok, err := p.GetExpression()
	if err != nil || !ok {
		return nil, err
	}
	if _, err := p.Consume(Semicolon); err != nil {
		return nil, err
	}

	return &exprStmt{interp: in, value: value}, nil
}

func requireExpression(p *parser.Parser) (any, error) {
	value, ok, err := p.GetExpression()
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, p.Unexpected()
	}
	return value, nil
}

// expression is the single registered expression producer. It declines when
// the current token cannot start an expression.
func (in *Interpreter) expression(p *parser.Parser) (parser.Expression, error) {
	return in.parseAdditive(p)
}

// parseAdditive parses + and - (lowest precedence)
func (in *Interpreter) parseAdditive(p *parser.Parser) (parser.Expression, error) {
	left, err := in.parseMultiplicative(p)
	if err != nil || left == nil {
		return nil, err
	}

	for p.LookMatch(Plus, 0) || p.LookMatch(Minus, 0) {
		op := p.GetToken(0).Name
		p.Match(op)

		right, err := in.parseMultiplicative(p)
		if err != nil {
			return nil, err
		}
		if right == nil {
			return nil, p.Unexpected()
		}

		left = &binaryExpr{left: left, op: op, right: right}
	}

	return left, nil
}

// parseMultiplicative parses * and /
func (in *Interpreter) parseMultiplicative(p *parser.Parser) (parser.Expression, error) {
	left, err := in.parseUnary(p)
	if err != nil || left == nil {
		return nil, err
	}

	for p.LookMatch(Star, 0) || p.LookMatch(Slash, 0) {
		op := p.GetToken(0).Name
		p.Match(op)

		right, err := in.parseUnary(p)
		if err != nil {
			return nil, err
		}
		if right == nil {
			return nil, p.Unexpected()
		}

		left = &binaryExpr{left: left, op: op, right: right}
	}

	return left, nil
}

// parseUnary parses a leading minus
func (in *Interpreter) parseUnary(p *parser.Parser) (parser.Expression, error) {
	if !p.Match(Minus) {
		return in.parsePrimary(p)
	}

	operand, err := in.parseUnary(p)
	if err != nil {
		return nil, err
	}
	if operand == nil {
		return nil, p.Unexpected()
	}
	return &negateExpr{operand: operand}, nil
}

// parsePrimary parses numbers, strings, variables and parenthesized expressions
func (in *Interpreter) parsePrimary(p *parser.Parser) (parser.Expression, error) {
	current := p.GetToken(0)

	switch current.Name {
	case token.NUMBER:
		p.Match(token.NUMBER)
		value, err := strconv.ParseFloat(current.Value, 64)
		if err != nil {
			return nil, lperror.Wrapf(err, "invalid number %q", current.Value).
				WithCode(lperror.CodeEvaluation).
				WithOperation("calc.parse")
		}
		return numberExpr(value), nil

	case token.STRING:
		p.Match(token.STRING)
		return stringExpr(current.Value), nil

	case token.WORD:
		p.Match(token.WORD)
		return &variableExpr{interp: in, name: current.Value}, nil

	case LParen:
		p.Match(LParen)
		inner, err := in.parseAdditive(p)
		if err != nil {
			return nil, err
		}
		if inner == nil {
			return nil, p.Unexpected()
		}
		if _, err := p.Consume(RParen); err != nil {
			return nil, err
		}
		return inner, nil

	default:
		return nil, nil
	}
}
