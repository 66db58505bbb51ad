package doctree

import (
	"strings"
	"testing"
)

// fieldCounter counts whitespace-separated words and records how often each
// distinct text was counted.
type fieldCounter struct {
	calls map[string]int
}

func newFieldCounter() *fieldCounter {
	return &fieldCounter{calls: make(map[string]int)}
}

func (c *fieldCounter) Count(text string) int {
	c.calls[text]++
	return len(strings.Fields(text))
}

func TestBuild_HeadingHierarchy(t *testing.T) {
	blocks := []Block{
		{Kind: KindParagraph, Text: "preamble\n\n"},
		{Kind: KindHeading, Level: 1, Title: "Title", Text: "# Title\n\n"},
		{Kind: KindParagraph, Text: "intro\n\n"},
		{Kind: KindHeading, Level: 2, Title: "Section A", Text: "## Section A\n\n"},
		{Kind: KindParagraph, Text: "a content\n\n"},
		{Kind: KindHeading, Level: 3, Title: "Sub A1", Text: "### Sub A1\n\n"},
		{Kind: KindParagraph, Text: "a1 content\n\n"},
		{Kind: KindHeading, Level: 2, Title: "Section B", Text: "## Section B\n\n"},
		{Kind: KindParagraph, Text: "b content\n"},
	}

	root := Build(blocks)

	// Root: preamble + h1.
	if len(root.Children) != 2 {
		t.Fatalf("expected 2 root children, got %d", len(root.Children))
	}
	if root.Children[0].Kind != KindParagraph {
		t.Errorf("expected preamble paragraph first, got kind %v", root.Children[0].Kind)
	}

	h1 := root.Children[1]
	if h1.Title != "Title" {
		t.Errorf("expected h1 title %q, got %q", "Title", h1.Title)
	}
	// h1 owns: intro, Section A, Section B.
	if len(h1.Children) != 3 {
		t.Fatalf("expected 3 h1 children, got %d", len(h1.Children))
	}

	secA := h1.Children[1]
	if secA.Title != "Section A" {
		t.Errorf("expected %q, got %q", "Section A", secA.Title)
	}
	// Section A owns: a content, Sub A1.
	if len(secA.Children) != 2 {
		t.Fatalf("expected 2 children under Section A, got %d", len(secA.Children))
	}
	if secA.Children[1].Title != "Sub A1" {
		t.Errorf("expected %q, got %q", "Sub A1", secA.Children[1].Title)
	}

	secB := h1.Children[2]
	if secB.Title != "Section B" {
		t.Errorf("expected %q, got %q", "Section B", secB.Title)
	}
	if len(secB.Children) != 1 {
		t.Errorf("expected 1 child under Section B, got %d", len(secB.Children))
	}
}

func TestBuild_LevelJumpAcceptedAsIs(t *testing.T) {
	// h1 followed directly by h4: no normalization, h4 nests under h1.
	blocks := []Block{
		{Kind: KindHeading, Level: 1, Title: "Top", Text: "# Top\n\n"},
		{Kind: KindHeading, Level: 4, Title: "Deep", Text: "#### Deep\n\n"},
		{Kind: KindHeading, Level: 2, Title: "Next", Text: "## Next\n"},
	}
	root := Build(blocks)

	if len(root.Children) != 1 {
		t.Fatalf("expected 1 root child, got %d", len(root.Children))
	}
	top := root.Children[0]
	if len(top.Children) != 2 {
		t.Fatalf("expected 2 children under Top, got %d", len(top.Children))
	}
	if top.Children[0].Title != "Deep" {
		t.Errorf("expected Deep under Top, got %q", top.Children[0].Title)
	}
	// h2 pops back past the h4 to sit under the h1.
	if top.Children[1].Title != "Next" {
		t.Errorf("expected Next under Top, got %q", top.Children[1].Title)
	}
}

func TestBuild_EmptyInput(t *testing.T) {
	root := Build(nil)
	if root == nil {
		t.Fatal("expected non-nil root")
	}
	if len(root.Children) != 0 {
		t.Errorf("expected 0 children, got %d", len(root.Children))
	}
}

func TestMarkdown_ReconstructsSourceOrder(t *testing.T) {
	blocks := []Block{
		{Kind: KindParagraph, Text: "one\n\n"},
		{Kind: KindHeading, Level: 1, Title: "H", Text: "# H\n\n"},
		{Kind: KindParagraph, Text: "two\n\n"},
		{Kind: KindHeading, Level: 2, Title: "S", Text: "## S\n\n"},
		{Kind: KindParagraph, Text: "three\n"},
	}
	root := Build(blocks)

	var want strings.Builder
	for _, b := range blocks {
		want.WriteString(b.Text)
	}
	if got := root.Markdown(); got != want.String() {
		t.Errorf("expected reconstruction %q, got %q", want.String(), got)
	}
}

func TestAnnotate_SizesSumBottomUp(t *testing.T) {
	blocks := []Block{
		{Kind: KindHeading, Level: 1, Title: "H", Text: "# H\n\n"}, // 2 words
		{Kind: KindParagraph, Text: "alpha beta gamma\n\n"},        // 3 words
		{Kind: KindHeading, Level: 2, Title: "S", Text: "## S\n\n"}, // 2 words
		{Kind: KindParagraph, Text: "delta epsilon\n"},              // 2 words
	}
	root := Build(blocks)
	c := newFieldCounter()
	Annotate(root, c)

	h1 := root.Children[0]
	if h1.OwnSize != 2 {
		t.Errorf("expected h1 own size 2, got %d", h1.OwnSize)
	}
	if h1.Size != 9 {
		t.Errorf("expected h1 subtree size 9, got %d", h1.Size)
	}
	if root.Size != 9 {
		t.Errorf("expected root size 9, got %d", root.Size)
	}

	sub := h1.Children[1]
	if sub.Size != 4 {
		t.Errorf("expected h2 subtree size 4, got %d", sub.Size)
	}
}

func TestAnnotate_CountsEachNodeOnce(t *testing.T) {
	blocks := []Block{
		{Kind: KindHeading, Level: 1, Title: "H", Text: "# H\n\n"},
		{Kind: KindParagraph, Text: "alpha beta\n"},
	}
	root := Build(blocks)
	c := newFieldCounter()

	Annotate(root, c)
	Annotate(root, c) // second pass must be a no-op

	for text, n := range c.calls {
		if n != 1 {
			t.Errorf("text %q counted %d times, expected 1", text, n)
		}
	}
}

func TestAnnotate_EmptyText(t *testing.T) {
	root := Build(nil)
	c := newFieldCounter()
	Annotate(root, c)
	if root.Size != 0 {
		t.Errorf("expected size 0 for empty tree, got %d", root.Size)
	}
	if len(c.calls) != 0 {
		t.Errorf("expected no counter calls for empty text, got %v", c.calls)
	}
}
