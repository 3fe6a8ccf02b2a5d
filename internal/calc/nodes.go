// ============================================================================
// lanpy - Lexer & Parser Toolkit
// ============================================================================
//
// Package:     calc
// Description: Expression and statement nodes of the calculator language
// Author:      Mike Stoffels
// Created:     2026-02-14
// License:     MIT
// ============================================================================

package calc

import (
	"fmt"
	"strconv"

	lperror "github.com/msto63/lanpy/pkg/core/error"
	"github.com/msto63/lanpy/pkg/parser"
)

// Values are float64 or string.

type numberExpr float64

func (n numberExpr) Eval() (any, error) { return float64(n), nil }

type stringExpr string

func (s stringExpr) Eval() (any, error) { return string(s), nil }

type variableExpr struct {
	interp *Interpreter
	name   string
}

func (v *variableExpr) Eval() (any, error) {
	value, ok := v.interp.Lookup(v.name)
	if !ok {
		return nil, evalError("undefined variable %q", v.name).WithDetail("variable", v.name)
	}
	return value, nil
}

type negateExpr struct {
	operand parser.Expression
}

func (n *negateExpr) Eval() (any, error) {
	value, err := n.operand.Eval()
	if err != nil {
		return nil, err
	}
	number, ok := value.(float64)
	if !ok {
		return nil, evalError("cannot negate %s", typeName(value))
	}
	return -number, nil
}

type binaryExpr struct {
	left  parser.Expression
	op    string
	right parser.Expression
}

func (b *binaryExpr) Eval() (any, error) {
	left, err := b.left.Eval()
	if err != nil {
		return nil, err
	}
	right, err := b.right.Eval()
	if err != nil {
		return nil, err
	}

	if ls, ok := left.(string); ok && b.op == Plus {
		rs, ok := right.(string)
		if !ok {
			return nil, b.mismatch(left, right)
		}
		return ls + rs, nil
	}

	l, lok := left.(float64)
	r, rok := right.(float64)
	if !lok || !rok {
		return nil, b.mismatch(left, right)
	}

	switch b.op {
	case Plus:
		return l + r, nil
	case Minus:
		return l - r, nil
	case Star:
		return l * r, nil
	case Slash:
		if r == 0 {
			return nil, evalError("division by zero")
		}
		return l / r, nil
	default:
		return nil, lperror.Newf("unknown operator %s", b.op).
			WithCode(lperror.CodeInternal).
			WithOperation("calc.eval")
	}
}

func (b *binaryExpr) mismatch(left, right any) *lperror.Error {
	return evalError("unsupported operand types for %s: %s and %s", b.op, typeName(left), typeName(right)).
		WithDetails(map[string]interface{}{
			"left":  typeName(left),
			"right": typeName(right),
		})
}

// letStmt binds a value. Without declare the variable must already exist.
type letStmt struct {
	interp  *Interpreter
	name    string
	value   any
	declare bool
}

func (s *letStmt) Exec() error {
	if !s.declare {
		if _, ok := s.interp.Lookup(s.name); !ok {
			return evalError("assignment to undeclared variable %q", s.name).WithDetail("variable", s.name)
		}
	}
	s.interp.set(s.name, s.value)
	return nil
}

type printStmt struct {
	interp *Interpreter
	value  any
}

func (s *printStmt) Exec() error {
	return s.interp.emit(s.value)
}

type exprStmt struct {
	interp *Interpreter
	value  any
}

func (s *exprStmt) Exec() error {
	s.interp.last = s.value
	if s.interp.echo {
		return s.interp.emit(s.value)
	}
	return nil
}

// FormatValue renders a calculator value the way print does
func FormatValue(value any) string {
	switch v := value.(type) {
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}

func typeName(value any) string {
	switch value.(type) {
	case float64:
		return "number"
	case string:
		return "string"
	default:
		return fmt.Sprintf("%T", value)
	}
}

func evalError(format string, args ...interface{}) *lperror.Error {
	return lperror.Newf(format, args...).
		WithCode(lperror.CodeEvaluation).
		WithOperation("calc.eval")
}
