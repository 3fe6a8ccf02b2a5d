// ============================================================================
// lanpy - Lexer & Parser Toolkit
// ============================================================================
//
// Package:     calc
// Description: Interpreter running calculator programs
// Author:      Mike Stoffels
// Created:     2026-02-14
// License:     MIT
// ============================================================================

package calc

import (
	"fmt"
	"io"
	"maps"

	"github.com/msto63/lanpy/pkg/core/config"
	lplog "github.com/msto63/lanpy/pkg/core/log"
	"github.com/msto63/lanpy/pkg/parser"
	"github.com/msto63/lanpy/pkg/token"
)

// Interpreter runs calculator programs. Variables survive between Run calls,
// so a REPL can feed it one line at a time. An Interpreter is not safe for
// concurrent use.
type Interpreter struct {
	out    io.Writer
	cfg    *config.Config
	logger *lplog.Logger

	vars map[string]any
	last any
	echo bool
}

// New creates an interpreter that prints to out
func New(out io.Writer) *Interpreter {
	return &Interpreter{
		out:  out,
		cfg:  Config(),
		vars: make(map[string]any),
	}
}

// WithLogger sets the logger handed to the lexer and parser
func (in *Interpreter) WithLogger(logger *lplog.Logger) *Interpreter {
	in.logger = logger
	return in
}

// WithEcho makes expression statements print their value
func (in *Interpreter) WithEcho(echo bool) *Interpreter {
	in.echo = echo
	return in
}

// Tokenize runs the lexer with the calculator tables
func (in *Interpreter) Tokenize(source string) ([]token.Token, error) {
	return in.cfg.Tokenize(source, in.logger)
}

// Run tokenizes and executes source. Statements before the first error
// keep their effects.
func (in *Interpreter) Run(source string) error {
	tokens, err := in.Tokenize(source)
	if err != nil {
		return err
	}

	p := parser.New(tokens).WithLogger(in.logger)
	in.Register(p)
	return p.Parse()
}

// Lookup returns the value bound to name
func (in *Interpreter) Lookup(name string) (any, bool) {
	value, ok := in.vars[name]
	return value, ok
}

// Variables returns a copy of all bindings
func (in *Interpreter) Variables() map[string]any {
	return maps.Clone(in.vars)
}

// Last returns the value of the most recent expression statement
func (in *Interpreter) Last() any {
	return in.last
}

// Reset drops all bindings
func (in *Interpreter) Reset() {
	clear(in.vars)
	in.last = nil
}

func (in *Interpreter) set(name string, value any) {
	in.vars[name] = value
}

func (in *Interpreter) emit(value any) error {
	if in.out == nil {
		return nil
	}
	_, err := fmt.Fprintln(in.out, FormatValue(value))
	return err
}
