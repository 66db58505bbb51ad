package parser

import (
	"strings"
	"testing"
)

func TestStripFrontmatter(t *testing.T) {
	src := []byte("---\ntitle: Notes\ncount: 3\n---\nbody starts here\n")
	meta, body, err := StripFrontmatter(src)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if meta["title"] != "Notes" {
		t.Errorf("expected title %q, got %v", "Notes", meta["title"])
	}
	if meta["count"] != 3 {
		t.Errorf("expected count 3, got %v", meta["count"])
	}
	if string(body) != "body starts here\n" {
		t.Errorf("unexpected body %q", body)
	}
}

func TestStripFrontmatter_NoFrontmatter(t *testing.T) {
	src := []byte("# Heading\n\nplain document\n")
	meta, body, err := StripFrontmatter(src)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if meta != nil {
		t.Errorf("expected nil metadata, got %v", meta)
	}
	if string(body) != string(src) {
		t.Errorf("body changed: %q", body)
	}
}

func TestStripFrontmatter_Unterminated(t *testing.T) {
	// Opening delimiter with no close is content, not front matter.
	src := []byte("---\ntitle: dangling\nno close here\n")
	meta, body, err := StripFrontmatter(src)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if meta != nil {
		t.Errorf("expected nil metadata, got %v", meta)
	}
	if string(body) != string(src) {
		t.Errorf("body changed: %q", body)
	}
}

func TestStripFrontmatter_CloseAtEOF(t *testing.T) {
	src := []byte("---\ntitle: Short\n---")
	meta, body, err := StripFrontmatter(src)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if meta["title"] != "Short" {
		t.Errorf("expected title %q, got %v", "Short", meta["title"])
	}
	if len(body) != 0 {
		t.Errorf("expected empty body, got %q", body)
	}
}

func TestStripFrontmatter_BadYAML(t *testing.T) {
	src := []byte("---\n: [unbalanced\n---\nbody\n")
	_, body, err := StripFrontmatter(src)
	if err == nil {
		t.Fatal("expected error for malformed YAML")
	}
	if !strings.Contains(err.Error(), "front matter") {
		t.Errorf("unexpected error text: %v", err)
	}
	// Caller gets the original input back to fall back on.
	if string(body) != string(src) {
		t.Errorf("expected original input returned, got %q", body)
	}
}
