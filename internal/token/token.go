// Package token defines the Jack token categories and the token stream the
// parser consumes.
package token

import (
	"fmt"

	"jack-analyzer/internal/span"
)

// Category classifies a token.
type Category int

const (
	Symbol Category = iota
	Keyword
	IntConst
	StringConst
	Identifier
)

// categoryNames are also the XML element names of leaf nodes.
var categoryNames = map[Category]string{
	Symbol:      "symbol",
	Keyword:     "keyword",
	IntConst:    "integerConstant",
	StringConst: "stringConstant",
	Identifier:  "identifier",
}

// String returns the element name used for the category in tree output.
func (c Category) String() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	return fmt.Sprintf("Category(%d)", int(c))
}

// MaxInt is the largest integer constant the language allows.
const MaxInt = 32767

var keywords = map[string]bool{
	"class":       true,
	"constructor": true,
	"function":    true,
	"method":      true,
	"field":       true,
	"static":      true,
	"var":         true,
	"int":         true,
	"char":        true,
	"boolean":     true,
	"void":        true,
	"true":        true,
	"false":       true,
	"null":        true,
	"this":        true,
	"let":         true,
	"do":          true,
	"if":          true,
	"else":        true,
	"while":       true,
	"return":      true,
}

// LookupIdent returns Keyword for reserved words and Identifier otherwise.
func LookupIdent(word string) Category {
	if keywords[word] {
		return Keyword
	}
	return Identifier
}

const symbols = "{}()[].,;+-*/&|<>=~"

// IsSymbol reports whether ch is one of the single-character symbols.
func IsSymbol(ch byte) bool {
	for i := 0; i < len(symbols); i++ {
		if symbols[i] == ch {
			return true
		}
	}
	return false
}

// Token is a classified lexical unit. For IntConst tokens IntVal holds the
// numeric value; for every category Lexeme holds the literal text (string
// constants without their quotes).
type Token struct {
	Category Category  `json:"category"`
	Lexeme   string    `json:"lexeme"`
	IntVal   int       `json:"intVal,omitempty"`
	Span     span.Span `json:"span"`
}

// Is reports whether the token has category c and, when values are given,
// a lexeme equal to one of them.
func (t Token) Is(c Category, values ...string) bool {
	if t.Category != c {
		return false
	}
	if len(values) == 0 {
		return true
	}
	for _, v := range values {
		if t.Lexeme == v {
			return true
		}
	}
	return false
}

// Pos returns the start position of the token.
func (t Token) Pos() span.Position {
	return t.Span.Start
}

// String returns a human-readable representation of the token.
func (t Token) String() string {
	return fmt.Sprintf("%s %q %s", t.Category, t.Lexeme, t.Span.Start)
}
