// ============================================================================
// lanpy - Lexer & Parser Toolkit
// ============================================================================
//
// Package:     error
// Description: Error severity levels
// Author:      Mike Stoffels
// Created:     2026-02-14
// License:     MIT
// ============================================================================

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow indicates bad user input, e.g. a malformed source text
	SeverityLow Severity = iota

	// SeverityMedium indicates an error that aborts an operation but not the process
	SeverityMedium

	// SeverityHigh indicates a broken setup, e.g. an unreadable config file
	SeverityHigh

	// SeverityCritical indicates an internal invariant was violated
	SeverityCritical
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// GetSeverityFromCode determines appropriate severity level based on error code
func GetSeverityFromCode(code Code) Severity {
	switch code {
	case CodeInternal:
		return SeverityCritical

	case CodeConfigError, CodeMissingConfig, CodeInvalidConfig:
		return SeverityHigh

	case CodeLexical, CodeUnexpectedToken, CodeNoMatchingStatement,
		CodeInvalidInput, CodeNotFound:
		return SeverityLow

	default:
		return SeverityMedium
	}
}
