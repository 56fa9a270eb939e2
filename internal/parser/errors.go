package parser

import (
	"fmt"

	"jack-analyzer/internal/diag"
	"jack-analyzer/internal/span"
	"jack-analyzer/internal/token"
)

// SyntaxError is the first grammar violation found in a token stream.
type SyntaxError struct {
	// Expected describes what the parser was looking for, e.g. "'='",
	// "identifier" or "one of 'static', 'field'".
	Expected string
	// Values lists the acceptable lexemes, if the expectation named any.
	Values []string
	// Found is the offending token, nil when the input ended early.
	Found *token.Token
}

func (e *SyntaxError) Error() string {
	if e.Found == nil {
		return fmt.Sprintf("syntax error: expected %s, got end of input", e.Expected)
	}
	return fmt.Sprintf("syntax error at %s: expected %s, got %s %q",
		e.Found.Pos(), e.Expected, e.Found.Category, e.Found.Lexeme)
}

// Diagnostic converts the error to a compiler diagnostic.
func (e *SyntaxError) Diagnostic() diag.Diagnostic {
	var s span.Span
	got := "end of input"
	if e.Found != nil {
		s = e.Found.Span
		got = fmt.Sprintf("%s %q", e.Found.Category, e.Found.Lexeme)
	}
	return diag.Errorf(diag.CodeSyntax, s, "expected %s, got %s", e.Expected, got)
}
