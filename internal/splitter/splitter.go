// Package splitter packs a size-annotated document tree into contiguous,
// token-bounded sections, preserving heading structure wherever a whole
// section fits and falling back to sentence boundaries only when it cannot.
package splitter

import (
	"errors"
	"log/slog"
	"strings"

	"github.com/dgallion1/mdsplit/internal/doctree"
)

// Section is one finalized, contiguous chunk of the document. Sections are
// only appended to the output once normalized; they are never mutated after.
type Section struct {
	Text string
	Size int
	// Oversized marks the degenerate case: a single atomic unit (one
	// sentence or one code block) that alone exceeds the limit.
	Oversized bool
}

// Segmenter splits prose into sentences. Concatenating the returned pieces
// must reconstruct the input exactly.
type Segmenter interface {
	Segment(text string) []string
}

var (
	ErrInvalidLimit = errors.New("splitter: limit must be positive")
	ErrNoCounter    = errors.New("splitter: token counter unavailable")
	ErrNoSegmenter  = errors.New("splitter: sentence segmenter unavailable")
)

// Splitter packs document trees into sections of at most limit tokens.
type Splitter struct {
	limit     int
	counter   doctree.Counter
	segmenter Segmenter
	log       *slog.Logger
}

// New validates the configuration and collaborators up front; Split itself
// cannot fail.
func New(limit int, counter doctree.Counter, segmenter Segmenter, log *slog.Logger) (*Splitter, error) {
	if limit <= 0 {
		return nil, ErrInvalidLimit
	}
	if counter == nil {
		return nil, ErrNoCounter
	}
	if segmenter == nil {
		return nil, ErrNoSegmenter
	}
	if log == nil {
		log = slog.Default()
	}
	return &Splitter{limit: limit, counter: counter, segmenter: segmenter, log: log}, nil
}

// Split annotates the tree (a no-op if already annotated) and packs it in a
// single depth-first pass. Sibling order is always preserved. An empty tree
// yields an empty result.
func (s *Splitter) Split(root *doctree.Node) []Section {
	if root == nil {
		return nil
	}
	doctree.Annotate(root, s.counter)

	p := &packer{s: s}
	if root.Text != "" {
		p.text(root.Text, root.OwnSize)
	}
	for _, child := range root.Children {
		p.node(child)
	}
	p.flush(false)
	return p.sections
}

// packer holds the one mutable in-progress segment.
type packer struct {
	s         *Splitter
	fragments []string
	size      int // running count of the fragments
	sections  []Section
}

func (p *packer) node(n *doctree.Node) {
	// Common case: the entire subtree fits in one segment, so there is no
	// need to look below the heading.
	if n.Size <= p.s.limit {
		p.fragment(n.Markdown(), n.Size)
		return
	}

	// The subtree cannot fit in any single section. Decompose it: own text
	// first (a heading line merges forward into the segment its first
	// child lands in), then the children as if they were top-level.
	if len(n.Children) > 0 {
		if n.Text != "" {
			p.text(n.Text, n.OwnSize)
		}
		for _, child := range n.Children {
			p.node(child)
		}
		return
	}

	p.leaf(n)
}

// fragment appends a piece known to fit within the limit on its own,
// flushing first when it cannot share the current segment. A piece landing
// exactly on the limit still fits.
func (p *packer) fragment(text string, size int) {
	if p.size+size > p.s.limit && len(p.fragments) > 0 {
		p.flush(false)
	}
	p.fragments = append(p.fragments, text)
	p.size += size
}

// text packs a node's own span, falling through to sentences when the span
// alone exceeds the limit.
func (p *packer) text(text string, size int) {
	if size <= p.s.limit {
		p.fragment(text, size)
		return
	}
	p.sentences(text)
}

// leaf handles an atomic block whose text exceeds the limit. Code blocks
// are indivisible; prose falls back to sentence boundaries.
func (p *packer) leaf(n *doctree.Node) {
	if n.Kind == doctree.KindCode {
		p.oversized(n.Text)
		return
	}
	p.sentences(n.Text)
}

// sentences greedily packs segmenter output under the same
// accumulate-until-exceeds-then-flush rule. A single sentence is the
// smallest unit; one longer than the limit is emitted as-is.
func (p *packer) sentences(text string) {
	for _, sent := range p.s.segmenter.Segment(text) {
		size := p.s.counter.Count(sent)
		if size > p.s.limit {
			p.oversized(sent)
			continue
		}
		p.fragment(sent, size)
	}
}

// oversized emits one indivisible unit that exceeds the limit as its own
// section.
func (p *packer) oversized(text string) {
	p.flush(false)
	p.fragments = append(p.fragments, text)
	p.flush(true)
}

// flush finalizes the in-progress segment: normalize, recount, append.
func (p *packer) flush(oversized bool) {
	if len(p.fragments) == 0 {
		return
	}
	text := Normalize(strings.Join(p.fragments, ""))
	p.fragments = nil
	p.size = 0
	if text == "" {
		return
	}
	size := p.s.counter.Count(text)
	oversized = oversized && size > p.s.limit
	if oversized {
		p.s.log.Warn("oversized atomic unit emitted as its own section",
			"size", size,
			"limit", p.s.limit,
		)
	}
	p.sections = append(p.sections, Section{Text: text, Size: size, Oversized: oversized})
}
