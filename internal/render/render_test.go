package render

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
	"gopkg.in/yaml.v3"

	"jack-analyzer/internal/lexer"
	"jack-analyzer/internal/parser"
	"jack-analyzer/internal/token"
	"jack-analyzer/internal/tree"
)

func testdata(t *testing.T, name string) []byte {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("..", "..", "testdata", name))
	require.NoError(t, err)
	return data
}

func parseSource(t *testing.T, source string) ([]token.Token, *tree.Node) {
	t.Helper()
	tokens, diags := lexer.New(source, "test.jack").Tokenize()
	require.Empty(t, diags)
	root, err := parser.ParseTokens(tokens)
	require.NoError(t, err)
	return tokens, root
}

func TestGoldenTreeXML(t *testing.T) {
	_, root := parseSource(t, string(testdata(t, "Square.jack")))

	var buf bytes.Buffer
	require.NoError(t, Tree(&buf, XML, root, DefaultOptions))

	want := testdata(t, "Square.xml")
	assert.Equal(t, string(want), buf.String())
	assert.NoError(t, Compare(buf.Bytes(), want))
}

func TestGoldenTokensXML(t *testing.T) {
	tokens, _ := parseSource(t, string(testdata(t, "Square.jack")))

	var buf bytes.Buffer
	require.NoError(t, TokensXML(&buf, tokens))
	assert.Equal(t, string(testdata(t, "SquareT.xml")), buf.String())
}

func TestTreeXMLEscapingAndEmptyBranches(t *testing.T) {
	_, root := parseSource(t, `class A { function void f() { do g(a < b, "x&y"); } }`)

	var buf bytes.Buffer
	require.NoError(t, TreeXML(&buf, root, Options{Indent: 0}))
	out := buf.String()

	assert.Contains(t, out, "<symbol> &lt; </symbol>\n")
	assert.Contains(t, out, "<stringConstant> x&amp;y </stringConstant>\n")
	assert.Contains(t, out, "<parameterList>\n</parameterList>\n")
	assert.NotContains(t, out, "<statements>\n</statements>")
}

func TestTreeJSON(t *testing.T) {
	_, root := parseSource(t, `class Main { field int x; }`)

	var buf bytes.Buffer
	require.NoError(t, Tree(&buf, JSON, root, DefaultOptions))
	out := buf.String()

	assert.Equal(t, "class", gjson.Get(out, "kind").String())
	assert.Equal(t, int64(5), gjson.Get(out, "children.#").Int())
	assert.Equal(t, "keyword", gjson.Get(out, "children.0.kind").String())
	assert.Equal(t, "Main", gjson.Get(out, "children.1.value").String())
	assert.Equal(t, "classVarDec", gjson.Get(out, "children.3.kind").String())
	assert.Equal(t, "x", gjson.Get(out, "children.3.children.2.value").String())
	assert.Equal(t, int64(1), gjson.Get(out, "span.start.line").Int())
}

func TestTreeYAML(t *testing.T) {
	_, root := parseSource(t, `class Main { }`)

	var buf bytes.Buffer
	require.NoError(t, Tree(&buf, YAML, root, DefaultOptions))

	var decoded struct {
		Kind     string `yaml:"kind"`
		Children []struct {
			Kind  string `yaml:"kind"`
			Value string `yaml:"value"`
		} `yaml:"children"`
	}
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "class", decoded.Kind)
	require.Len(t, decoded.Children, 4)
	assert.Equal(t, "symbol", decoded.Children[2].Kind)
	assert.Equal(t, "{", decoded.Children[2].Value)
}

func TestTreeNilRoot(t *testing.T) {
	var buf bytes.Buffer
	for _, f := range Formats {
		require.NoError(t, Tree(&buf, f, nil, DefaultOptions))
	}
	assert.Zero(t, buf.Len())
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in   string
		want Format
	}{
		{"xml", XML},
		{"JSON", JSON},
		{" yaml ", YAML},
		{"yml", YAML},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}

	_, err := ParseFormat("toml")
	assert.Error(t, err)
	assert.Equal(t, ".yaml", YAML.Ext())
}

func TestCompare(t *testing.T) {
	want := []byte("<a>\n  <b> 1 </b>\n</a>\n")

	assert.NoError(t, Compare([]byte("<a>\n<b> 1 </b>\n\n</a>"), want))

	err := Compare([]byte("<a>\n  <b> 2 </b>\n</a>\n"), want)
	var mismatch *MismatchError
	require.True(t, errors.As(err, &mismatch))
	assert.Equal(t, 2, mismatch.Line)
	assert.Equal(t, "<b> 1 </b>", mismatch.Want)
	assert.Equal(t, "<b> 2 </b>", mismatch.Got)

	err = Compare([]byte("<a>\n"), want)
	require.True(t, errors.As(err, &mismatch))
	assert.Equal(t, "<end of output>", mismatch.Got)

	err = Compare([]byte("<a>\n  <b> 1 </b>\n</a>\n<extra/>\n"), want)
	require.True(t, errors.As(err, &mismatch))
	assert.Equal(t, 4, mismatch.Line)
	assert.Equal(t, "<extra/>", mismatch.Got)

	assert.Error(t, Compare([]byte("x"), nil))
}
