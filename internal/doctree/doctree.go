// Package doctree models a document as a tree of block-level nodes nested
// by heading hierarchy, with token sizes attached per node.
package doctree

import "strings"

// Kind tags the block-level variant a node represents.
type Kind int

const (
	KindDocument Kind = iota // implicit root
	KindHeading
	KindParagraph
	KindCode
	KindList
	KindOther
)

// Block is one block-level unit of the source document, in source order.
// Text is the exact raw source span the block covers, including its own
// markup and trailing blank lines, so consecutive block texts tile the
// document with no gaps.
type Block struct {
	Kind  Kind
	Level int    // heading depth, 0 for non-headings
	Title string // heading title, empty for non-headings
	Text  string
}

// Node is a recursive section of the document. A heading node owns every
// subsequent block up to the next heading of equal-or-shallower level.
type Node struct {
	Kind     Kind
	Level    int
	Title    string
	Text     string // own source span only; children carry theirs
	Children []*Node

	// Set by Annotate.
	OwnSize int
	Size    int

	annotated bool
}

// Counter reports the token count of a text under some tokenization scheme.
type Counter interface {
	Count(text string) int
}

// Build nests a flat block sequence by heading level. Content before the
// first heading hangs off the implicit root. Level numbers are taken as
// observed; a jump from h1 to h4 nests the h4 directly under the h1.
func Build(blocks []Block) *Node {
	root := &Node{Kind: KindDocument}

	type stackEntry struct {
		node  *Node
		level int
	}
	stack := []stackEntry{{node: root, level: 0}}

	for _, b := range blocks {
		if b.Kind == KindHeading {
			newNode := &Node{Kind: KindHeading, Level: b.Level, Title: b.Title, Text: b.Text}
			for len(stack) > 1 && stack[len(stack)-1].level >= b.Level {
				stack = stack[:len(stack)-1]
			}
			parent := stack[len(stack)-1].node
			parent.Children = append(parent.Children, newNode)
			stack = append(stack, stackEntry{node: newNode, level: b.Level})
			continue
		}
		top := stack[len(stack)-1].node
		top.Children = append(top.Children, &Node{Kind: b.Kind, Text: b.Text})
	}

	return root
}

// Annotate walks the tree post-order and attaches token sizes: OwnSize for
// the node's own text, Size for the whole subtree. A heading's title line
// counts toward its OwnSize only, never toward a descendant. Each node is
// sized exactly once; re-annotating an already-sized tree is a no-op.
func Annotate(n *Node, c Counter) {
	if n == nil || n.annotated {
		return
	}
	total := 0
	for _, child := range n.Children {
		Annotate(child, c)
		total += child.Size
	}
	if n.Text != "" {
		n.OwnSize = c.Count(n.Text)
	}
	n.Size = n.OwnSize + total
	n.annotated = true
}

// Markdown renders the node's full source span: its own text followed by
// every descendant's, in order.
func (n *Node) Markdown() string {
	var b strings.Builder
	n.render(&b)
	return b.String()
}

func (n *Node) render(b *strings.Builder) {
	b.WriteString(n.Text)
	for _, child := range n.Children {
		child.render(b)
	}
}
