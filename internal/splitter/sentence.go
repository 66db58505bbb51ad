package splitter

import "unicode"

// SentenceSegmenter splits prose at sentence-ending punctuation and
// paragraph breaks. Each piece keeps its trailing whitespace, so joining
// the pieces reconstructs the input byte for byte.
type SentenceSegmenter struct{}

func (SentenceSegmenter) Segment(text string) []string {
	if text == "" {
		return nil
	}

	runes := []rune(text)
	var pieces []string
	start := 0

	for i := 0; i < len(runes); {
		r := runes[i]

		if r == '.' || r == '!' || r == '?' {
			j := i + 1
			for j < len(runes) && isClosing(runes[j]) {
				j++
			}
			if j < len(runes) && unicode.IsSpace(runes[j]) {
				for j < len(runes) && unicode.IsSpace(runes[j]) {
					j++
				}
				pieces = append(pieces, string(runes[start:j]))
				start = j
			}
			i = j
			continue
		}

		// A blank line ends a sentence even without punctuation.
		if r == '\n' && i+1 < len(runes) && runes[i+1] == '\n' {
			j := i
			for j < len(runes) && unicode.IsSpace(runes[j]) {
				j++
			}
			pieces = append(pieces, string(runes[start:j]))
			start = j
			i = j
			continue
		}

		i++
	}

	if start < len(runes) {
		pieces = append(pieces, string(runes[start:]))
	}
	return pieces
}

// isClosing matches punctuation that may trail a sentence terminator.
func isClosing(r rune) bool {
	switch r {
	case '.', '!', '?', '"', '\'', ')', ']', '”', '’':
		return true
	}
	return false
}
