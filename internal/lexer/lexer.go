// Package lexer implements the Jack tokenizer.
package lexer

import (
	"strconv"
	"unicode/utf8"

	"jack-analyzer/internal/diag"
	"jack-analyzer/internal/span"
	"jack-analyzer/internal/token"
)

// Lexer tokenizes Jack source code.
type Lexer struct {
	source   string
	filename string

	pos  int // current read position in source
	line int // current line (1-based)
	col  int // current column (1-based)

	diags diag.List
}

// New creates a new Lexer for the given source text.
func New(source, filename string) *Lexer {
	return &Lexer{
		source:   source,
		filename: filename,
		line:     1,
		col:      1,
	}
}

// Tokenize scans the entire source and returns all tokens and diagnostics.
// Scanning continues past errors so every problem in the file is reported.
func (l *Lexer) Tokenize() ([]token.Token, diag.List) {
	var tokens []token.Token
	for {
		l.skipTrivia()
		if l.pos >= len(l.source) {
			break
		}
		if tok, ok := l.nextToken(); ok {
			tokens = append(tokens, tok)
		}
	}
	return tokens, l.diags.WithFile(l.filename)
}

// ---- internal helpers ----

func (l *Lexer) peek() byte {
	if l.pos >= len(l.source) {
		return 0
	}
	return l.source[l.pos]
}

func (l *Lexer) peekNext() byte {
	if l.pos+1 >= len(l.source) {
		return 0
	}
	return l.source[l.pos+1]
}

func (l *Lexer) advance() byte {
	ch := l.source[l.pos]
	l.pos++
	if ch == '\n' {
		l.line++
		l.col = 1
	} else {
		l.col++
	}
	return ch
}

func (l *Lexer) curPos() span.Position {
	return span.Position{Offset: l.pos, Line: l.line, Column: l.col}
}

func (l *Lexer) makeSpan(start span.Position) span.Span {
	return span.Span{Start: start, End: l.curPos()}
}

func (l *Lexer) addError(code string, s span.Span, format string, args ...interface{}) {
	l.diags = append(l.diags, diag.Errorf(code, s, format, args...))
}

// skipTrivia skips whitespace, line comments and block comments
// (including /** doc comments */).
func (l *Lexer) skipTrivia() {
	for l.pos < len(l.source) {
		ch := l.peek()
		switch {
		case ch == ' ' || ch == '\t' || ch == '\r' || ch == '\n':
			l.advance()
		case ch == '/' && l.peekNext() == '/':
			for l.pos < len(l.source) && l.peek() != '\n' {
				l.advance()
			}
		case ch == '/' && l.peekNext() == '*':
			l.skipBlockComment()
		default:
			return
		}
	}
}

func (l *Lexer) skipBlockComment() {
	start := l.curPos()
	l.advance() // '/'
	l.advance() // '*'
	for l.pos < len(l.source) {
		if l.peek() == '*' && l.peekNext() == '/' {
			l.advance()
			l.advance()
			return
		}
		l.advance()
	}
	l.addError(diag.CodeUnterminatedComment, l.makeSpan(start), "unterminated comment")
}

// ---- token reading ----

func (l *Lexer) nextToken() (token.Token, bool) {
	start := l.curPos()
	ch := l.peek()

	switch {
	case ch == '"':
		return l.readString(start)
	case isDigit(ch):
		return l.readNumber(start)
	case isIdentStart(ch):
		return l.readIdentifier(start), true
	case token.IsSymbol(ch):
		l.advance()
		return token.Token{Category: token.Symbol, Lexeme: string(ch), Span: l.makeSpan(start)}, true
	}

	r, size := utf8.DecodeRuneInString(l.source[l.pos:])
	l.pos += size
	l.col++
	l.addError(diag.CodeUnexpectedChar, l.makeSpan(start), "unexpected character %q", r)
	return token.Token{}, false
}

// readString reads a string constant. Jack strings have no escapes and may
// not span lines.
func (l *Lexer) readString(start span.Position) (token.Token, bool) {
	l.advance() // opening "
	valueStart := l.pos
	for l.pos < len(l.source) {
		ch := l.peek()
		if ch == '"' {
			value := l.source[valueStart:l.pos]
			l.advance()
			return token.Token{Category: token.StringConst, Lexeme: value, Span: l.makeSpan(start)}, true
		}
		if ch == '\n' {
			break
		}
		l.advance()
	}
	l.addError(diag.CodeUnterminatedString, l.makeSpan(start), "unterminated string constant")
	return token.Token{}, false
}

func (l *Lexer) readNumber(start span.Position) (token.Token, bool) {
	numStart := l.pos
	for l.pos < len(l.source) && isDigit(l.peek()) {
		l.advance()
	}
	lexeme := l.source[numStart:l.pos]
	n, err := strconv.Atoi(lexeme)
	if err != nil || n > token.MaxInt {
		l.addError(diag.CodeIntOutOfRange, l.makeSpan(start),
			"integer constant %s out of range 0..%d", lexeme, token.MaxInt)
		return token.Token{}, false
	}
	return token.Token{Category: token.IntConst, Lexeme: lexeme, IntVal: n, Span: l.makeSpan(start)}, true
}

func (l *Lexer) readIdentifier(start span.Position) token.Token {
	identStart := l.pos
	for l.pos < len(l.source) && isIdentPart(l.peek()) {
		l.advance()
	}
	lexeme := l.source[identStart:l.pos]
	return token.Token{Category: token.LookupIdent(lexeme), Lexeme: lexeme, Span: l.makeSpan(start)}
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isIdentStart(ch byte) bool {
	return ch == '_' || (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

func isIdentPart(ch byte) bool {
	return isIdentStart(ch) || isDigit(ch)
}
