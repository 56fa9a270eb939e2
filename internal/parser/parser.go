// Package parser implements syntax analysis for Jack.
// It is a recursive-descent parser with one token of lookahead that builds a
// parse tree with one branch per matched grammar production.
package parser

import (
	"strings"

	"jack-analyzer/internal/token"
	"jack-analyzer/internal/tree"
)

// ============================================================
// Grammar symbol sets
// ============================================================

var (
	classVarKinds     = []string{"static", "field"}
	subroutineKinds   = []string{"constructor", "function", "method"}
	primitiveTypes    = []string{"int", "char", "boolean"}
	returnTypes       = []string{"int", "char", "boolean", "void"}
	statementStarters = []string{"let", "if", "while", "do", "return"}
	keywordConstants  = []string{"true", "false", "null", "this"}
	binaryOps         = []string{"+", "-", "*", "/", "&", "|", "<", ">", "="}
	unaryOps          = []string{"-", "~"}
)

// ============================================================
// Entry points
// ============================================================

// Parse parses a complete class from src. It returns a nil tree and a nil
// error when src has no tokens, and a *SyntaxError on the first grammar
// violation. No partial tree is returned on failure.
func Parse(src token.Source) (*tree.Node, error) {
	if !src.HasMoreTokens() {
		return nil, nil
	}
	p := &parser{src: src}
	p.class()
	p.expectEnd()
	return p.result()
}

// ParseTokens is Parse over a slice of tokens.
func ParseTokens(tokens []token.Token) (*tree.Node, error) {
	return Parse(token.NewStream(tokens))
}

// ParseStatements parses a statement sequence that must make up all of src.
// The result is a statements branch.
func ParseStatements(src token.Source) (*tree.Node, error) {
	if !src.HasMoreTokens() {
		return nil, nil
	}
	p := &parser{src: src}
	if !p.statements() {
		p.fail("statement", statementStarters)
	}
	p.expectEnd()
	return p.result()
}

// ParseExpression parses a single expression that must make up all of src.
func ParseExpression(src token.Source) (*tree.Node, error) {
	if !src.HasMoreTokens() {
		return nil, nil
	}
	p := &parser{src: src}
	p.expression(true)
	p.expectEnd()
	return p.result()
}

// ============================================================
// Parse context
// ============================================================

// parser holds the state of one parse: the token cursor, the tree under
// construction and the first error. Once err is set every primitive is a
// no-op and every lookahead reports no match, so productions unwind without
// consuming further tokens.
type parser struct {
	src token.Source
	b   tree.Builder
	err error
}

func (p *parser) result() (*tree.Node, error) {
	if p.err != nil {
		return nil, p.err
	}
	return p.b.Root(), nil
}

// at reports whether the current token has category c and, if values are
// given, one of those lexemes. It never consumes.
func (p *parser) at(c token.Category, values ...string) bool {
	if p.err != nil || !p.src.HasMoreTokens() {
		return false
	}
	return p.src.Current().Is(c, values...)
}

// next returns the token after the current one.
func (p *parser) next() (token.Token, bool) {
	if p.err != nil {
		return token.Token{}, false
	}
	return p.src.Peek(1)
}

// expect is the only place tokens are consumed: when the current token
// matches c and one of values it is appended as a leaf to the open branch
// and the cursor advances; otherwise the parse fails.
func (p *parser) expect(c token.Category, values ...string) {
	p.expectAs(describe(c, values), c, values...)
}

func (p *parser) expectAs(what string, c token.Category, values ...string) {
	if p.err != nil {
		return
	}
	if !p.at(c, values...) {
		p.fail(what, values)
		return
	}
	p.b.Leaf(p.src.Current())
	if err := p.src.Advance(); err != nil {
		p.err = &SyntaxError{Expected: what, Values: values}
	}
}

func (p *parser) expectEnd() {
	if p.err == nil && p.src.HasMoreTokens() {
		p.fail("end of input", nil)
	}
}

// fail records a syntax error at the current token unless one is already
// recorded.
func (p *parser) fail(what string, values []string) {
	if p.err != nil {
		return
	}
	e := &SyntaxError{Expected: what, Values: values}
	if p.src.HasMoreTokens() {
		found := p.src.Current()
		e.Found = &found
	}
	p.err = e
}

func describe(c token.Category, values []string) string {
	switch len(values) {
	case 0:
		return c.String()
	case 1:
		return quote(values[0])
	}
	quoted := make([]string, len(values))
	for i, v := range values {
		quoted[i] = quote(v)
	}
	return "one of " + strings.Join(quoted, ", ")
}

func quote(s string) string {
	return "'" + s + "'"
}
