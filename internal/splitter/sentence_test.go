package splitter

import (
	"strings"
	"testing"
)

func TestSentenceSegmenter_Boundaries(t *testing.T) {
	seg := SentenceSegmenter{}
	pieces := seg.Segment("First sentence. Second one! Third? Last")

	want := []string{"First sentence. ", "Second one! ", "Third? ", "Last"}
	if len(pieces) != len(want) {
		t.Fatalf("expected %d pieces, got %d: %v", len(want), len(pieces), pieces)
	}
	for i := range want {
		if pieces[i] != want[i] {
			t.Errorf("piece %d: expected %q, got %q", i, want[i], pieces[i])
		}
	}
}

func TestSentenceSegmenter_Reconstruction(t *testing.T) {
	seg := SentenceSegmenter{}
	inputs := []string{
		"One. Two.  Three.",
		"Quoted end.\" Next (parens.) Done",
		"No terminator at all",
		"Para one line.\n\nPara two line.\n",
		"Trailing spaces. \nAnd newlines.\n\n\n",
		"Decimal 3.14 stays whole. Next.",
	}
	for _, in := range inputs {
		pieces := seg.Segment(in)
		if got := strings.Join(pieces, ""); got != in {
			t.Errorf("pieces do not reconstruct input\nwant %q\ngot  %q (pieces %q)", in, got, pieces)
		}
	}
}

func TestSentenceSegmenter_DecimalNotSplit(t *testing.T) {
	seg := SentenceSegmenter{}
	pieces := seg.Segment("Pi is 3.14159 roughly. Yes.")
	if len(pieces) != 2 {
		t.Fatalf("expected 2 pieces, got %d: %v", len(pieces), pieces)
	}
	if !strings.Contains(pieces[0], "3.14159") {
		t.Errorf("decimal split across pieces: %v", pieces)
	}
}

func TestSentenceSegmenter_ParagraphBreakWithoutPunctuation(t *testing.T) {
	seg := SentenceSegmenter{}
	pieces := seg.Segment("line without period\n\nnext paragraph")
	if len(pieces) != 2 {
		t.Fatalf("expected 2 pieces, got %d: %v", len(pieces), pieces)
	}
	if pieces[0] != "line without period\n\n" {
		t.Errorf("unexpected first piece %q", pieces[0])
	}
}

func TestSentenceSegmenter_Empty(t *testing.T) {
	seg := SentenceSegmenter{}
	if pieces := seg.Segment(""); pieces != nil {
		t.Errorf("expected nil for empty input, got %v", pieces)
	}
}
