// ============================================================================
// lanpy - Lexer & Parser Toolkit
// ============================================================================
//
// Package:     error
// Description: Error code definitions
// Author:      Mike Stoffels
// Created:     2026-02-14
// License:     MIT
// ============================================================================

package error

// Code represents a structured error code for categorizing errors
type Code string

const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeNotFound     Code = "NOT_FOUND"
	CodeInvalidInput Code = "INVALID_INPUT"

	// Lexing and parsing
	CodeLexical             Code = "LEXICAL_ERROR"
	CodeUnexpectedToken     Code = "UNEXPECTED_TOKEN"
	CodeNoMatchingStatement Code = "NO_MATCHING_STATEMENT"
	CodeEvaluation          Code = "EVALUATION_ERROR"

	// Configuration
	CodeConfigError   Code = "CONFIG_ERROR"
	CodeMissingConfig Code = "MISSING_CONFIG"
	CodeInvalidConfig Code = "INVALID_CONFIG"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known valid code
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeNotFound, CodeInvalidInput,
		CodeLexical, CodeUnexpectedToken, CodeNoMatchingStatement, CodeEvaluation,
		CodeConfigError, CodeMissingConfig, CodeInvalidConfig:
		return true
	default:
		return false
	}
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeLexical:
		return "lexer"
	case CodeUnexpectedToken, CodeNoMatchingStatement:
		return "parser"
	case CodeEvaluation:
		return "evaluation"
	case CodeConfigError, CodeMissingConfig, CodeInvalidConfig:
		return "configuration"
	default:
		return "generic"
	}
}
