// Package diag provides diagnostic types shared by the tokenizer and parser.
package diag

import (
	"fmt"
	"strings"

	"jack-analyzer/internal/span"
)

// Stable diagnostic codes.
const (
	CodeUnterminatedString  = "E1001"
	CodeUnterminatedComment = "E1002"
	CodeIntOutOfRange       = "E1003"
	CodeUnexpectedChar      = "E1004"

	CodeSyntax = "E2001"
)

// Severity indicates the severity of a diagnostic.
type Severity int

const (
	Error Severity = iota
)

func (s Severity) String() string {
	switch s {
	case Error:
		return "error"
	default:
		return "unknown"
	}
}

// Diagnostic is a single message tied to a source location.
type Diagnostic struct {
	Code     string    `json:"code"`
	Severity Severity  `json:"severity"`
	Message  string    `json:"message"`
	File     string    `json:"file,omitempty"`
	Span     span.Span `json:"span"`
	Hint     string    `json:"hint,omitempty"`
}

// String returns a human-readable representation of the diagnostic.
func (d Diagnostic) String() string {
	loc := d.Span.Start.String()
	if d.File != "" {
		loc = d.File + ":" + loc
	}
	msg := fmt.Sprintf("[%s] %s at %s: %s", d.Code, d.Severity, loc, d.Message)
	if d.Hint != "" {
		msg += " (hint: " + d.Hint + ")"
	}
	return msg
}

// Errorf creates an error diagnostic at the given span.
func Errorf(code string, s span.Span, format string, args ...interface{}) Diagnostic {
	return Diagnostic{
		Code:     code,
		Severity: Error,
		Message:  fmt.Sprintf(format, args...),
		Span:     s,
	}
}

// List is a set of diagnostics usable as an error.
type List []Diagnostic

func (l List) Error() string {
	switch len(l) {
	case 0:
		return "no diagnostics"
	case 1:
		return l[0].String()
	}
	lines := make([]string, len(l))
	for i, d := range l {
		lines[i] = d.String()
	}
	return strings.Join(lines, "\n")
}

// Err returns l as an error, or nil when it is empty.
func (l List) Err() error {
	if len(l) == 0 {
		return nil
	}
	return l
}

// WithFile returns a copy of l with File set on every diagnostic.
func (l List) WithFile(name string) List {
	out := make(List, len(l))
	for i, d := range l {
		d.File = name
		out[i] = d
	}
	return out
}
