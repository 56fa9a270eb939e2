// Package tree defines the parse tree produced by the parser: labeled branch
// nodes for grammar productions and leaf nodes wrapping consumed tokens.
package tree

import (
	"jack-analyzer/internal/span"
	"jack-analyzer/internal/token"
)

// Label names a grammar production.
type Label string

const (
	Class           Label = "class"
	ClassVarDec     Label = "classVarDec"
	SubroutineDec   Label = "subroutineDec"
	SubroutineBody  Label = "subroutineBody"
	ParameterList   Label = "parameterList"
	VarDec          Label = "varDec"
	Statements      Label = "statements"
	LetStatement    Label = "letStatement"
	IfStatement     Label = "ifStatement"
	WhileStatement  Label = "whileStatement"
	DoStatement     Label = "doStatement"
	ReturnStatement Label = "returnStatement"
	Expression      Label = "expression"
	Term            Label = "term"
	ExpressionList  Label = "expressionList"
)

// MayBeEmpty reports whether a branch with this label is allowed to have no
// children in a finished tree.
func (l Label) MayBeEmpty() bool {
	return l == ParameterList || l == ExpressionList
}

// Node is either a branch (Label set, Token nil) or a leaf (Token set).
type Node struct {
	Label    Label
	Token    *token.Token
	Children []*Node
}

// NewLeaf wraps a token in a leaf node.
func NewLeaf(tok token.Token) *Node {
	return &Node{Token: &tok}
}

// IsLeaf reports whether n wraps a token.
func (n *Node) IsLeaf() bool {
	return n.Token != nil
}

// Tag returns the element name for the node: the production label for
// branches and the token category for leaves.
func (n *Node) Tag() string {
	if n.IsLeaf() {
		return n.Token.Category.String()
	}
	return string(n.Label)
}

// Walk visits n and its descendants in pre-order. Returning false from fn
// skips the children of the node just visited.
func (n *Node) Walk(fn func(n *Node, depth int) bool) {
	n.walk(fn, 0)
}

func (n *Node) walk(fn func(*Node, int) bool, depth int) {
	if !fn(n, depth) {
		return
	}
	for _, c := range n.Children {
		c.walk(fn, depth+1)
	}
}

// Leaves returns every token under n in pre-order.
func (n *Node) Leaves() []token.Token {
	var out []token.Token
	n.Walk(func(c *Node, _ int) bool {
		if c.IsLeaf() {
			out = append(out, *c.Token)
		}
		return true
	})
	return out
}

// Find returns all branches labeled l under n, including n itself.
func (n *Node) Find(l Label) []*Node {
	var out []*Node
	n.Walk(func(c *Node, _ int) bool {
		if !c.IsLeaf() && c.Label == l {
			out = append(out, c)
		}
		return true
	})
	return out
}

// Child returns the i-th child or nil when out of range.
func (n *Node) Child(i int) *Node {
	if i < 0 || i >= len(n.Children) {
		return nil
	}
	return n.Children[i]
}

// Span returns the source range covered by the leaves under n.
func (n *Node) Span() span.Span {
	leaves := n.Leaves()
	if len(leaves) == 0 {
		return span.Span{}
	}
	return leaves[0].Span.Cover(leaves[len(leaves)-1].Span)
}

// Equal reports whether a and b have the same shape, labels and token
// categories and lexemes. Positions are ignored.
func Equal(a, b *Node) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.IsLeaf() != b.IsLeaf() {
		return false
	}
	if a.IsLeaf() {
		return a.Token.Category == b.Token.Category && a.Token.Lexeme == b.Token.Lexeme
	}
	if a.Label != b.Label || len(a.Children) != len(b.Children) {
		return false
	}
	for i := range a.Children {
		if !Equal(a.Children[i], b.Children[i]) {
			return false
		}
	}
	return true
}
