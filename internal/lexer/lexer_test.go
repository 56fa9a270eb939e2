package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jack-analyzer/internal/diag"
	"jack-analyzer/internal/token"
)

func tokenize(t *testing.T, source string) []token.Token {
	t.Helper()
	tokens, diags := New(source, "test.jack").Tokenize()
	require.Empty(t, diags)
	return tokens
}

func TestTokenizeSimple(t *testing.T) {
	tokens := tokenize(t, `let x = 1 + y;`)

	expected := []struct {
		cat    token.Category
		lexeme string
	}{
		{token.Keyword, "let"},
		{token.Identifier, "x"},
		{token.Symbol, "="},
		{token.IntConst, "1"},
		{token.Symbol, "+"},
		{token.Identifier, "y"},
		{token.Symbol, ";"},
	}

	require.Len(t, tokens, len(expected))
	for i, exp := range expected {
		assert.Equal(t, exp.cat, tokens[i].Category, "token[%d]", i)
		assert.Equal(t, exp.lexeme, tokens[i].Lexeme, "token[%d]", i)
	}
	assert.Equal(t, 1, tokens[3].IntVal)
}

func TestTokenizeKeywords(t *testing.T) {
	source := `class constructor function method field static var int char boolean
void true false null this let do if else while return`
	tokens := tokenize(t, source)
	require.Len(t, tokens, 21)
	for i, tok := range tokens {
		assert.Equal(t, token.Keyword, tok.Category, "token[%d] %q", i, tok.Lexeme)
	}
}

func TestTokenizeSymbols(t *testing.T) {
	tokens := tokenize(t, `{}()[].,;+-*/&|<>=~`)
	require.Len(t, tokens, 19)
	for _, tok := range tokens {
		assert.Equal(t, token.Symbol, tok.Category)
		assert.Len(t, tok.Lexeme, 1)
	}
}

func TestTokenizeComments(t *testing.T) {
	source := `/** API doc
 * spanning lines */
// line comment
do Output.printInt(1); /* trailing */ return;`
	tokens := tokenize(t, source)
	require.Len(t, tokens, 10)
	assert.Equal(t, "do", tokens[0].Lexeme)
	assert.Equal(t, 4, tokens[0].Span.Start.Line)
	assert.Equal(t, "return", tokens[8].Lexeme)
}

func TestTokenizeString(t *testing.T) {
	tokens := tokenize(t, `"Hello, <World> & \"`)
	require.Len(t, tokens, 1)
	assert.Equal(t, token.StringConst, tokens[0].Category)
	assert.Equal(t, `Hello, <World> & \`, tokens[0].Lexeme)
}

func TestTokenizeIdentifiers(t *testing.T) {
	tokens := tokenize(t, `_tmp x1 Main.main`)
	require.Len(t, tokens, 5)
	assert.Equal(t, token.Identifier, tokens[0].Category)
	assert.Equal(t, "x1", tokens[1].Lexeme)
	assert.Equal(t, ".", tokens[3].Lexeme)
}

func TestTokenizePositions(t *testing.T) {
	tokens := tokenize(t, "class Main {\n  field int x;\n}")
	require.Len(t, tokens, 8)
	field := tokens[3]
	assert.Equal(t, "field", field.Lexeme)
	assert.Equal(t, 2, field.Span.Start.Line)
	assert.Equal(t, 3, field.Span.Start.Column)
	assert.Equal(t, 5, field.Span.Len())
}

func TestTokenizeErrors(t *testing.T) {
	tests := []struct {
		name   string
		source string
		code   string
	}{
		{"unterminated string", "\"abc\nlet", diag.CodeUnterminatedString},
		{"unterminated comment", "let /* never closed", diag.CodeUnterminatedComment},
		{"int out of range", "32768", diag.CodeIntOutOfRange},
		{"unexpected char", "let x = 5 % 2;", diag.CodeUnexpectedChar},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, diags := New(tt.source, "bad.jack").Tokenize()
			require.Len(t, diags, 1)
			assert.Equal(t, tt.code, diags[0].Code)
			assert.Equal(t, "bad.jack", diags[0].File)
			assert.Error(t, diags.Err())
		})
	}
}

func TestTokenizeNonASCII(t *testing.T) {
	tokens, diags := New("let é = 1;", "bad.jack").Tokenize()
	require.Len(t, diags, 1)
	assert.Equal(t, diag.CodeUnexpectedChar, diags[0].Code)
	assert.Contains(t, diags[0].Message, "'é'")
	assert.Equal(t, 5, diags[0].Span.Start.Column)
	assert.Equal(t, 6, diags[0].Span.End.Column)

	require.Len(t, tokens, 4)
	assert.Equal(t, "=", tokens[1].Lexeme)
	assert.Equal(t, 7, tokens[1].Span.Start.Column)
}

func TestTokenizeMaxInt(t *testing.T) {
	tokens := tokenize(t, "32767")
	require.Len(t, tokens, 1)
	assert.Equal(t, token.MaxInt, tokens[0].IntVal)
}
