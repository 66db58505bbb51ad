package parser

import (
	"bufio"
	"io"
	"strings"

	"github.com/dgallion1/mdsplit/internal/doctree"
)

// TextParser handles plain text files.
type TextParser struct{}

func (p *TextParser) Parse(r io.Reader, filename string) (*doctree.Node, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var paragraphs []string
	var current strings.Builder

	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			if current.Len() > 0 {
				paragraphs = append(paragraphs, current.String())
				current.Reset()
			}
		} else {
			if current.Len() > 0 {
				current.WriteString("\n")
			}
			current.WriteString(line)
		}
	}
	if current.Len() > 0 {
		paragraphs = append(paragraphs, current.String())
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	root := &doctree.Node{
		Kind:  doctree.KindDocument,
		Title: stripExt(filename, ".txt"),
	}

	// Each paragraph becomes a child node.
	for _, para := range paragraphs {
		root.Children = append(root.Children, paragraphNode(para))
	}

	return root, nil
}

// paragraphNode wraps plain text as a markdown paragraph span.
func paragraphNode(text string) *doctree.Node {
	return &doctree.Node{Kind: doctree.KindParagraph, Text: text + "\n\n"}
}

// headingNode synthesizes a markdown heading span for formats that carry
// structure but no markup of their own.
func headingNode(level int, title string) *doctree.Node {
	return &doctree.Node{
		Kind:  doctree.KindHeading,
		Level: level,
		Title: title,
		Text:  strings.Repeat("#", level) + " " + title + "\n\n",
	}
}
