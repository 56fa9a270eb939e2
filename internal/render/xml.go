package render

import (
	"bufio"
	"io"
	"strings"

	"jack-analyzer/internal/token"
	"jack-analyzer/internal/tree"
)

var xmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
)

// TreeXML writes root as nested elements, one leaf per line:
//
//	<term>
//	  <identifier> x </identifier>
//	</term>
//
// Branches without children are written as an open and a close tag on
// separate lines.
func TreeXML(w io.Writer, root *tree.Node, opts Options) error {
	bw := bufio.NewWriter(w)
	writeXML(bw, root, 0, opts.Indent)
	return bw.Flush()
}

func writeXML(w *bufio.Writer, n *tree.Node, depth, indent int) {
	pad := strings.Repeat(" ", depth*indent)
	if n.IsLeaf() {
		writeLeaf(w, pad, *n.Token)
		return
	}
	tag := n.Tag()
	w.WriteString(pad + "<" + tag + ">\n")
	for _, c := range n.Children {
		writeXML(w, c, depth+1, indent)
	}
	w.WriteString(pad + "</" + tag + ">\n")
}

func writeLeaf(w *bufio.Writer, pad string, tok token.Token) {
	tag := tok.Category.String()
	w.WriteString(pad + "<" + tag + "> " + xmlEscaper.Replace(tok.Lexeme) + " </" + tag + ">\n")
}

// TokensXML writes a flat <tokens> document, one element per token.
func TokensXML(w io.Writer, tokens []token.Token) error {
	bw := bufio.NewWriter(w)
	bw.WriteString("<tokens>\n")
	for _, tok := range tokens {
		writeLeaf(bw, "", tok)
	}
	bw.WriteString("</tokens>\n")
	return bw.Flush()
}
