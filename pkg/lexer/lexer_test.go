package lexer

import (
	"bytes"
	"errors"
	"reflect"
	"strings"
	"testing"

	lperror "github.com/msto63/lanpy/pkg/core/error"
	lplog "github.com/msto63/lanpy/pkg/core/log"
	"github.com/msto63/lanpy/pkg/token"
)

var testOperators = map[string]string{
	"+":  "PLUS",
	"+=": "PLUS_EQ",
	"-":  "MINUS",
	"=":  "ASSIGN",
	"==": "EQ",
	">":  "GT",
	">=": "GE",
	"(":  "LPAREN",
	")":  "RPAREN",
	";":  "SEMICOLON",
}

var testKeywords = map[string]string{
	"if":    "IF",
	"print": "PRINT",
}

func tok(name, value string) token.Token {
	return token.New(name, value)
}

func TestLexer_Tokenize(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		operators map[string]string
		keywords  map[string]string
		opts      Options
		expected  []token.Token
	}{
		{
			name:      "numbers and operator",
			input:     "12+34",
			operators: map[string]string{"+": "PLUS"},
			opts:      Options{Numbers: true},
			expected:  []token.Token{tok("NUMBER", "12"), tok("PLUS", "+"), tok("NUMBER", "34")},
		},
		{
			name:      "maximal munch",
			input:     "+=",
			operators: map[string]string{"+": "PLUS", "+=": "PLUS_EQ"},
			expected:  []token.Token{tok("PLUS_EQ", "+=")},
		},
		{
			name:      "munch stops at longest valid prefix",
			input:     "+=+",
			operators: testOperators,
			expected:  []token.Token{tok("PLUS_EQ", "+="), tok("PLUS", "+")},
		},
		{
			name:      "adjacent operators",
			input:     "a>=b==c",
			operators: testOperators,
			opts:      Options{Words: true},
			expected: []token.Token{
				tok("WORD", "a"), tok("GE", ">="), tok("WORD", "b"), tok("EQ", "=="), tok("WORD", "c"),
			},
		},
		{
			name:     "keyword precedence over word",
			input:    "if",
			keywords: map[string]string{"if": "IF"},
			opts:     Options{Words: true},
			expected: []token.Token{tok("IF", "if")},
		},
		{
			name:     "words with digits",
			input:    "x1 y22z",
			opts:     Options{Words: true, Numbers: true},
			expected: []token.Token{tok("WORD", "x1"), tok("WORD", "y22z")},
		},
		{
			name:     "only keywords drops plain words",
			input:    "print foo if bar",
			keywords: testKeywords,
			opts:     Options{Words: true, OnlyKeywords: true},
			expected: []token.Token{tok("PRINT", "print"), tok("IF", "if")},
		},
		{
			name:     "float number",
			input:    "3.14 10.",
			opts:     Options{Numbers: true},
			expected: []token.Token{tok("NUMBER", "3.14"), tok("NUMBER", "10.")},
		},
		{
			name:     "string literal",
			input:    `print "hello world";`,
			keywords: testKeywords,
			opts:     Options{Words: true, Strings: true},
			expected: []token.Token{tok("PRINT", "print"), tok("STRING", "hello world")},
		},
		{
			name:     "empty string literal",
			input:    `""`,
			opts:     Options{Strings: true},
			expected: []token.Token{tok("STRING", "")},
		},
		{
			name:     "string keeps backslashes verbatim",
			input:    `"a\nb"`,
			opts:     Options{Strings: true},
			expected: []token.Token{tok("STRING", `a\nb`)},
		},
		{
			name:     "disabled categories are skipped",
			input:    `12 abc "s"`,
			opts:     Options{},
			expected: nil,
		},
		{
			name:      "nil operator table disables operators",
			input:     "1+2",
			operators: nil,
			opts:      Options{Numbers: true},
			expected:  []token.Token{tok("NUMBER", "1"), tok("NUMBER", "2")},
		},
		{
			name:     "unrecognized characters are skipped",
			input:    "1 @ # 2",
			opts:     Options{Numbers: true},
			expected: []token.Token{tok("NUMBER", "1"), tok("NUMBER", "2")},
		},
		{
			name:     "unicode letters",
			input:    "größe ß",
			opts:     Options{Words: true},
			expected: []token.Token{tok("WORD", "größe"), tok("WORD", "ß")},
		},
		{
			name:      "digits before operators in priority",
			input:     "1-2",
			operators: testOperators,
			opts:      Options{Numbers: true},
			expected:  []token.Token{tok("NUMBER", "1"), tok("MINUS", "-"), tok("NUMBER", "2")},
		},
		{
			name:     "empty input",
			input:    "",
			opts:     AllOptions(),
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens, err := New(tt.input, tt.operators, tt.keywords).Tokenize(tt.opts)
			if err != nil {
				t.Fatalf("Tokenize() error = %v", err)
			}

			if len(tokens) != len(tt.expected) {
				t.Fatalf("Tokenize() got %d tokens %v, want %d %v", len(tokens), tokens, len(tt.expected), tt.expected)
			}
			for i := range tokens {
				if tokens[i] != tt.expected[i] {
					t.Errorf("token %d = %v, want %v", i, tokens[i], tt.expected[i])
				}
			}
		})
	}
}

func TestLexer_Errors(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		operators map[string]string
		opts      Options
		wantMsg   string
		wantPos   int
	}{
		{
			name:    "two decimal points",
			input:   "1.2.3",
			opts:    Options{Numbers: true},
			wantMsg: `incorrect float number "1.2"`,
			wantPos: 0,
		},
		{
			name:    "two decimal points later in input",
			input:   "7 10..5",
			opts:    Options{Numbers: true},
			wantMsg: `incorrect float number "10."`,
			wantPos: 2,
		},
		{
			name:      "operator prefix not in table at end of input",
			input:     "=",
			operators: map[string]string{"==": "EQ"},
			wantMsg:   `unknown operator "="`,
			wantPos:   0,
		},
		{
			name:      "operator prefix not in table mid input",
			input:     "a =b",
			operators: map[string]string{"==": "EQ"},
			opts:      Options{Words: true},
			wantMsg:   `unknown operator "="`,
			wantPos:   2,
		},
		{
			name:    "unterminated string",
			input:   `x "abc`,
			opts:    Options{Words: true, Strings: true},
			wantMsg: "unterminated string",
			wantPos: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens, err := New(tt.input, tt.operators, nil).Tokenize(tt.opts)
			if err == nil {
				t.Fatalf("Tokenize() = %v, want error", tokens)
			}

			var lexErr *LexicalError
			if !errors.As(err, &lexErr) {
				t.Fatalf("error type = %T, want *LexicalError", err)
			}
			if lexErr.Message != tt.wantMsg {
				t.Errorf("Message = %q, want %q", lexErr.Message, tt.wantMsg)
			}
			if lexErr.Position != tt.wantPos {
				t.Errorf("Position = %d, want %d", lexErr.Position, tt.wantPos)
			}
			if !lperror.HasCode(err, lperror.CodeLexical) {
				t.Error("lexical error should carry LEXICAL_ERROR code")
			}
			if tokens != nil {
				t.Errorf("tokens = %v, want nil on error", tokens)
			}
		})
	}
}

// Every character of an input built only from enabled categories ends up in
// exactly one token; whitespace is the only thing skipped.
func TestLexer_Completeness(t *testing.T) {
	inputs := []string{
		"12+34",
		"a>=b == c+=1",
		"if x1 (y) ; 3.5-2",
		"((1))",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			tokens, err := New(input, testOperators, testKeywords).Tokenize(AllOptions())
			if err != nil {
				t.Fatalf("Tokenize() error = %v", err)
			}

			var b strings.Builder
			for _, tk := range tokens {
				b.WriteString(tk.Value)
			}
			want := strings.Join(strings.Fields(input), "")
			if b.String() != want {
				t.Errorf("concatenated tokens = %q, want %q", b.String(), want)
			}
		})
	}
}

func TestLexer_TablesAreCopied(t *testing.T) {
	ops := map[string]string{"+": "PLUS"}
	l := New("+", ops, nil)
	ops["+"] = "CHANGED"

	tokens, err := l.Tokenize(Options{})
	if err != nil {
		t.Fatalf("Tokenize() error = %v", err)
	}
	if !reflect.DeepEqual(tokens, []token.Token{tok("PLUS", "+")}) {
		t.Errorf("tokens = %v", tokens)
	}
}

func TestLexer_TokenizeIsSinglePass(t *testing.T) {
	l := New("1 2", nil, nil)
	first, err := l.Tokenize(Options{Numbers: true})
	if err != nil {
		t.Fatalf("Tokenize() error = %v", err)
	}
	second, err := l.Tokenize(Options{Numbers: true})
	if err != nil {
		t.Fatalf("second Tokenize() error = %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("second pass = %v, want %v", second, first)
	}
}

func TestLexer_TraceLogging(t *testing.T) {
	var buf bytes.Buffer
	logger := lplog.NewWithConfig(lplog.Config{
		Level:  lplog.LevelTrace,
		Format: lplog.FormatJSON,
		Output: &buf,
	})

	_, err := New("1+2", map[string]string{"+": "PLUS"}, nil).
		WithLogger(logger).
		Tokenize(Options{Numbers: true})
	if err != nil {
		t.Fatalf("Tokenize() error = %v", err)
	}

	out := buf.String()
	if got := strings.Count(out, `"message":"token"`); got != 3 {
		t.Errorf("got %d token trace lines, want 3:\n%s", got, out)
	}
	if !strings.Contains(out, `"message":"tokenize completed"`) {
		t.Errorf("missing completion line:\n%s", out)
	}
	if !strings.Contains(out, `"component":"lexer"`) {
		t.Errorf("missing component field:\n%s", out)
	}
}

func TestLexer_RepeatedPassesKeepLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := lplog.NewWithConfig(lplog.Config{
		Level:  lplog.LevelTrace,
		Format: lplog.FormatJSON,
		Output: &buf,
	})

	l := New("7", nil, nil).WithLogger(logger)
	for i := 0; i < 2; i++ {
		if _, err := l.Tokenize(Options{Numbers: true}); err != nil {
			t.Fatalf("pass %d: Tokenize() error = %v", i, err)
		}
	}

	if l.logger != logger {
		t.Error("Tokenize replaced the configured logger")
	}
	out := buf.String()
	if got := strings.Count(out, `"phase":"scan"`); got != 1 {
		t.Errorf("got %d scan trace lines, want 1:\n%s", got, out)
	}
	if got := strings.Count(out, `"message":"tokenize completed"`); got != 2 {
		t.Errorf("got %d completion lines, want 2:\n%s", got, out)
	}
}

func TestLexer_ErrorsAreNotLogged(t *testing.T) {
	var buf bytes.Buffer
	logger := lplog.NewWithConfig(lplog.Config{Level: lplog.LevelDebug, Output: &buf})

	if _, err := New("1..", nil, nil).WithLogger(logger).Tokenize(Options{Numbers: true}); err == nil {
		t.Fatal("expected error")
	}
	if buf.Len() != 0 {
		t.Errorf("lexer logged on failure: %q", buf.String())
	}
}
