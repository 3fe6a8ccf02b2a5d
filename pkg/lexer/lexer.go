// ============================================================================
// lanpy - Lexer & Parser Toolkit
// ============================================================================
//
// Package:     lexer
// Description: Table-driven tokenizer with maximal-munch operator matching
// Author:      Mike Stoffels
// Created:     2026-02-14
// License:     MIT
// ============================================================================

package lexer

import (
	"fmt"
	"maps"
	"unicode"

	lperror "github.com/msto63/lanpy/pkg/core/error"
	lplog "github.com/msto63/lanpy/pkg/core/log"
	"github.com/msto63/lanpy/pkg/token"
)

// sentinel is returned by peek for positions past the end of the source
const sentinel rune = 0

// Options selects which scanning rules Tokenize applies. Each switch is
// independent; characters no enabled rule accepts are skipped.
type Options struct {
	Numbers      bool // digits and at most one '.' become NUMBER tokens
	Words        bool // letters followed by letters/digits become keyword or WORD tokens
	OnlyKeywords bool // with Words set, drop words that are not keywords instead of emitting WORD
	Strings      bool // double-quoted text becomes STRING tokens
}

// AllOptions enables every scanning rule and keeps plain words
func AllOptions() Options {
	return Options{Numbers: true, Words: true, Strings: true}
}

// LexicalError is returned when the source cannot be tokenized
type LexicalError struct {
	Message  string
	Position int // rune offset where the offending lexeme starts
}

// Error implements the error interface
func (e *LexicalError) Error() string {
	return fmt.Sprintf("%s at position %d", e.Message, e.Position)
}

// Code reports the error code used by the core error package
func (e *LexicalError) Code() lperror.Code {
	return lperror.CodeLexical
}

// Lexer turns a source string into a token sequence in a single pass.
// A Lexer is not safe for concurrent use.
type Lexer struct {
	source []rune
	pos    int
	tokens []token.Token

	operators map[string]string
	keywords  map[string]string
	opChars   map[rune]struct{}

	logger *lplog.Logger
	tracer *lplog.Logger // nil unless trace output is enabled for the current pass
}

// New creates a lexer for source. operators maps operator text to token names
// and keywords maps keyword text to token names. A nil operators map disables
// operator scanning entirely; a nil keywords map means there are no keywords.
func New(source string, operators, keywords map[string]string) *Lexer {
	l := &Lexer{
		source:    []rune(source),
		operators: maps.Clone(operators),
		keywords:  maps.Clone(keywords),
		opChars:   make(map[rune]struct{}),
	}

	for op := range l.operators {
		for _, r := range op {
			l.opChars[r] = struct{}{}
		}
	}

	return l
}

// WithLogger sets the logger used for debug and trace output
func (l *Lexer) WithLogger(logger *lplog.Logger) *Lexer {
	l.logger = logger
	return l
}

// Tokenize scans the whole source and returns the accumulated tokens.
// The first malformed lexeme aborts the pass with a *LexicalError.
func (l *Lexer) Tokenize(opts Options) ([]token.Token, error) {
	logger := l.logger
	if logger == nil {
		logger = lplog.GetDefault()
	}
	logger = logger.WithField("component", "lexer")
	l.tracer = nil
	if logger.IsLevelEnabled(lplog.LevelTrace) {
		l.tracer = logger.WithField("phase", "scan")
	}

	timer := logger.StartTimer("tokenize").WithField("source_length", len(l.source))

	for l.pos < len(l.source) {
		current := l.peek(0)

		var err error
		switch {
		case opts.Numbers && unicode.IsDigit(current):
			err = l.scanNumber()
		case opts.Words && unicode.IsLetter(current):
			l.scanWord(opts.OnlyKeywords)
		case l.operators != nil && l.isOperatorStart(current):
			err = l.scanOperator()
		case opts.Strings && current == '"':
			l.next()
			err = l.scanString()
		default:
			l.next()
		}

		if err != nil {
			timer.Cancel()
			return nil, err
		}
	}

	timer.WithField("tokens", len(l.tokens)).Stop()
	return l.tokens, nil
}

func (l *Lexer) scanNumber() error {
	start := l.pos
	seenDot := false

	for current := l.peek(0); unicode.IsDigit(current) || current == '.'; current = l.next() {
		if current == '.' {
			if seenDot {
				return &LexicalError{
					Message:  fmt.Sprintf("incorrect float number \"%s\"", string(l.source[start:l.pos])),
					Position: start,
				}
			}
			seenDot = true
		}
	}

	l.emit(token.NUMBER, start)
	return nil
}

// scanOperator grows the candidate one rune at a time for as long as the
// extended text is still an operator, so the longest table entry wins.
func (l *Lexer) scanOperator() error {
	start := l.pos
	candidate := string(l.peek(0))
	l.next()

	for l.pos < len(l.source) {
		extended := candidate + string(l.peek(0))
		if _, ok := l.operators[extended]; !ok {
			break
		}
		candidate = extended
		l.next()
	}

	name, ok := l.operators[candidate]
	if !ok {
		return &LexicalError{
			Message:  fmt.Sprintf("unknown operator \"%s\"", candidate),
			Position: start,
		}
	}

	l.add(name, candidate)
	return nil
}

func (l *Lexer) scanWord(onlyKeywords bool) {
	start := l.pos
	for current := l.peek(0); unicode.IsLetter(current) || unicode.IsDigit(current); current = l.next() {
	}

	word := string(l.source[start:l.pos])
	if name, ok := l.keywords[word]; ok {
		l.add(name, word)
	} else if !onlyKeywords {
		l.add(token.WORD, word)
	}
}

// scanString expects the opening quote to be consumed already
func (l *Lexer) scanString() error {
	start := l.pos

	for l.peek(0) != '"' {
		if l.pos >= len(l.source) {
			return &LexicalError{
				Message:  "unterminated string",
				Position: start - 1,
			}
		}
		l.next()
	}

	l.emit(token.STRING, start)
	l.next() // closing quote
	return nil
}

func (l *Lexer) isOperatorStart(r rune) bool {
	_, ok := l.opChars[r]
	return ok
}

// emit adds a token whose value is the source text from start to the cursor
func (l *Lexer) emit(name string, start int) {
	l.add(name, string(l.source[start:l.pos]))
}

func (l *Lexer) add(name, value string) {
	tok := token.New(name, value)
	l.tokens = append(l.tokens, tok)

	if l.tracer != nil {
		l.tracer.Trace("token", lplog.Fields{"name": tok.Name, "value": tok.Value, "end": l.pos})
	}
}

// peek returns the rune at cursor+offset, or the sentinel outside the source
func (l *Lexer) peek(offset int) rune {
	position := l.pos + offset
	if position < 0 || position >= len(l.source) {
		return sentinel
	}
	return l.source[position]
}

// next advances the cursor by one rune and returns the new current rune
func (l *Lexer) next() rune {
	if l.pos < len(l.source) {
		l.pos++
	}
	return l.peek(0)
}
