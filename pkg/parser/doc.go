/*
Package parser provides a recursive-descent parser shell whose grammar is
registered at runtime.

The parser owns a token sequence and a cursor. Grammar rules are producers:
functions that inspect the upcoming tokens through GetToken and LookMatch and
either decline by returning nil without consuming anything, or commit by
consuming tokens with Match and Consume and return an Expression or Statement.

	p := parser.New(tokens)
	p.RegisterExpression(number, parenthesized)
	p.RegisterStatement(printStmt, assignment)
	if err := p.Parse(); err != nil {
		// *ParseError or an error returned by a producer, Eval or Exec
	}

Producers are tried in registration order and the first that recognizes the
input wins, so more specific rules must be registered before more general
ones. The parser does not roll back the cursor: a producer that looks further
ahead than one token has to use LookMatch before committing.
*/
package parser
