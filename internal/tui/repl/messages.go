// ============================================================================
// lanpy - Lexer & Parser Toolkit
// ============================================================================
//
// Package:     repl
// Description: Message types for async evaluation in the REPL
// Author:      Mike Stoffels
// Created:     2026-02-14
// License:     MIT
// ============================================================================

package repl

// Entry is one input line of the transcript with what it produced
type Entry struct {
	Input  string
	Output string
	Err    error
}

// evalResultMsg is sent when a line has been evaluated
type evalResultMsg struct {
	entry Entry
}
