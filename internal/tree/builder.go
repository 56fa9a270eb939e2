package tree

import (
	"fmt"

	"jack-analyzer/internal/token"
)

// Builder assembles a tree in pre-order. An opened branch is only attached
// to its parent when it is closed, so abandoning a branch never disturbs
// nodes that are already in place.
type Builder struct {
	open []*Node
	root *Node
}

// Open starts a new branch nested in the innermost open branch.
func (b *Builder) Open(l Label) {
	b.open = append(b.open, &Node{Label: l})
}

// Leaf appends a leaf for tok to the innermost open branch.
func (b *Builder) Leaf(tok token.Token) {
	top := b.top("Leaf")
	top.Children = append(top.Children, NewLeaf(tok))
}

// Close finishes the innermost branch and attaches it to its parent. The
// label must match the one passed to Open.
func (b *Builder) Close(l Label) *Node {
	n := b.pop(l)
	b.attach(n)
	return n
}

// CloseNonEmpty behaves like Close when the branch has children and like
// Abandon otherwise. It reports whether the branch was attached.
func (b *Builder) CloseNonEmpty(l Label) bool {
	n := b.pop(l)
	if len(n.Children) == 0 {
		return false
	}
	b.attach(n)
	return true
}

// Abandon discards the innermost branch and everything appended to it.
func (b *Builder) Abandon(l Label) {
	b.pop(l)
}

// Root returns the outermost closed branch, or nil if none was closed.
func (b *Builder) Root() *Node {
	return b.root
}

func (b *Builder) top(op string) *Node {
	if len(b.open) == 0 {
		panic(fmt.Sprintf("tree: %s with no open branch", op))
	}
	return b.open[len(b.open)-1]
}

func (b *Builder) pop(l Label) *Node {
	n := b.top("close")
	if n.Label != l {
		panic(fmt.Sprintf("tree: closing %q while %q is open", l, n.Label))
	}
	b.open = b.open[:len(b.open)-1]
	return n
}

func (b *Builder) attach(n *Node) {
	if len(b.open) == 0 {
		b.root = n
		return
	}
	parent := b.open[len(b.open)-1]
	parent.Children = append(parent.Children, n)
}
