/*
Package lexer turns source text into a sequence of tokens.

The lexer knows four lexical categories: numbers, words, operators and
double-quoted strings. Which of them are scanned is chosen per call through
Options; operator and keyword spellings come from tables the caller passes to
New, so the same scanner serves any small language:

	ops := map[string]string{"+": "PLUS", "+=": "PLUS_EQ"}
	kws := map[string]string{"if": "IF"}

	tokens, err := lexer.New(src, ops, kws).Tokenize(lexer.Options{Numbers: true, Words: true})

Operators use maximal munch: with the table above "+=" yields one PLUS_EQ
token. Characters that no enabled rule accepts, whitespace included, are
skipped silently. A second decimal point in a number, an operator prefix that
is not itself in the table, or a string without closing quote fail the whole
pass with a *LexicalError.
*/
package lexer
