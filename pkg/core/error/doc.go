// Package error provides the structured error type shared by all lanpy packages.
//
// Errors carry a Code, a Severity and free-form details. The lexer and parser
// define their own error kinds (LexicalError, ParseError); they implement Coder
// so GetCode and HasCode work on them without wrapping.
//
// Usage:
//
//	import lperror "github.com/msto63/lanpy/pkg/core/error"
//
//	err := lperror.New("config file not found").
//		WithCode(lperror.CodeMissingConfig).
//		WithDetail("path", path)
//
//	if lperror.HasCode(err, lperror.CodeUnexpectedToken) {
//		// report the offending token
//	}
package error
