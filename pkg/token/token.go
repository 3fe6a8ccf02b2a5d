// ============================================================================
// lanpy - Lexer & Parser Toolkit
// ============================================================================
//
// Package:     token
// Description: Immutable lexical unit shared by lexer and parser
// Author:      Mike Stoffels
// Created:     2026-02-14
// License:     MIT
// ============================================================================

package token

import (
	"fmt"
)

// Token names produced by the lexer itself. Operator and keyword token names
// come from the tables a caller passes to the lexer.
const (
	NUMBER = "NUMBER"
	WORD   = "WORD"
	STRING = "STRING"
	EOF    = "EOF"
)

// Token is a named lexical unit: a category name and the exact source text it
// was built from. Tokens are plain values and compare with ==.
type Token struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// EOFToken is returned for every read past the end of a token sequence.
var EOFToken = Token{Name: EOF}

// New creates a token
func New(name, value string) Token {
	return Token{Name: name, Value: value}
}

// Is reports whether the token belongs to the given category
func (t Token) Is(name string) bool {
	return t.Name == name
}

// String returns the token as Token(NAME, "value")
func (t Token) String() string {
	return fmt.Sprintf("Token(%s, \"%s\")", t.Name, t.Value)
}
