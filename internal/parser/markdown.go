package parser

import (
	"bytes"
	"io"

	"github.com/dgallion1/mdsplit/internal/doctree"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// MarkdownParser handles Markdown files using goldmark.
//
// Unlike a renderer-based approach, block text is sliced straight out of the
// source, so concatenating the emitted block texts reproduces the document
// body byte for byte. The splitter depends on that tiling property.
type MarkdownParser struct{}

func (p *MarkdownParser) Parse(r io.Reader, filename string) (*doctree.Node, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	// Leading metadata never reaches the packer.
	_, body, err := StripFrontmatter(src)
	if err != nil {
		body = src
	}

	root := doctree.Build(ScanBlocks(body))
	root.Title = stripExt(filename, ".md", ".markdown")
	return root, nil
}

// ScanBlocks splits markdown source into top-level block spans in source
// order. Span boundaries are derived from the goldmark AST; each span runs
// from its block's first source line to the next block's first line, so the
// spans tile the source with no gaps.
func ScanBlocks(src []byte) []doctree.Block {
	md := goldmark.New()
	doc := md.Parser().Parse(text.NewReader(src))

	type rawBlock struct {
		node  ast.Node
		start int
	}
	var raws []rawBlock
	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		start := blockStart(n, src)
		if start < 0 {
			// Blocks goldmark keeps no source lines for (thematic breaks,
			// empty fences) are absorbed by the preceding span.
			continue
		}
		if len(raws) == 0 {
			start = 0 // keep leading blank lines
		} else if start <= raws[len(raws)-1].start {
			continue
		}
		raws = append(raws, rawBlock{node: n, start: start})
	}

	if len(raws) == 0 {
		if len(bytes.TrimSpace(src)) == 0 {
			return nil
		}
		return []doctree.Block{{Kind: doctree.KindOther, Text: string(src)}}
	}

	blocks := make([]doctree.Block, 0, len(raws))
	for i, rb := range raws {
		end := len(src)
		if i+1 < len(raws) {
			end = raws[i+1].start
		}
		b := doctree.Block{Kind: blockKind(rb.node), Text: string(src[rb.start:end])}
		if h, ok := rb.node.(*ast.Heading); ok {
			b.Level = h.Level
			b.Title = string(h.Text(src))
		}
		blocks = append(blocks, b)
	}
	return blocks
}

// blockStart finds the byte offset of the first source line of a top-level
// block, or -1 when the AST carries no position for it.
func blockStart(n ast.Node, src []byte) int {
	if fcb, ok := n.(*ast.FencedCodeBlock); ok {
		// Content lines start below the opening fence; the info string,
		// when present, sits on the fence line itself.
		if fcb.Info != nil {
			return lineStart(src, fcb.Info.Segment.Start)
		}
		if fcb.Lines().Len() > 0 {
			return prevLineStart(src, fcb.Lines().At(0).Start)
		}
		return -1
	}
	off := firstSegmentStart(n)
	if off < 0 {
		return -1
	}
	return lineStart(src, off)
}

// firstSegmentStart returns the smallest source offset reachable in the
// node's subtree, covering both block lines and inline text segments.
func firstSegmentStart(n ast.Node) int {
	best := -1
	if n.Type() == ast.TypeBlock {
		if lines := n.Lines(); lines != nil && lines.Len() > 0 {
			best = lines.At(0).Start
		}
	}
	if t, ok := n.(*ast.Text); ok {
		if best < 0 || t.Segment.Start < best {
			best = t.Segment.Start
		}
	}
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if s := firstSegmentStart(c); s >= 0 && (best < 0 || s < best) {
			best = s
		}
	}
	return best
}

func lineStart(src []byte, off int) int {
	if off > len(src) {
		off = len(src)
	}
	for off > 0 && src[off-1] != '\n' {
		off--
	}
	return off
}

func prevLineStart(src []byte, off int) int {
	ls := lineStart(src, off)
	if ls == 0 {
		return 0
	}
	return lineStart(src, ls-1)
}

func blockKind(n ast.Node) doctree.Kind {
	switch n.(type) {
	case *ast.Heading:
		return doctree.KindHeading
	case *ast.FencedCodeBlock, *ast.CodeBlock:
		return doctree.KindCode
	case *ast.List:
		return doctree.KindList
	case *ast.Paragraph, *ast.TextBlock:
		return doctree.KindParagraph
	default:
		return doctree.KindOther
	}
}
