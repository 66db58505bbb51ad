// Package tokenizer counts BPE tokens the way OpenAI models do, with a
// per-scheme memo cache.
package tokenizer

import (
	"fmt"

	tiktoken "github.com/pkoukk/tiktoken-go"
)

// encoder is the slice of the tiktoken API we use.
type encoder interface {
	Encode(text string, allowedSpecial, disallowedSpecial []string) []int
}

// Tokenizer wraps a tiktoken encoding and memoizes counts per distinct
// input string. The cache belongs to the instance, so counts from one
// tokenization scheme can never leak into another; to switch schemes,
// construct a new Tokenizer. Not safe for concurrent use.
type Tokenizer struct {
	enc    encoder
	scheme string
	cache  map[string]int
}

// ForModel resolves the encoding for an OpenAI model name.
func ForModel(model string) (*Tokenizer, error) {
	enc, err := tiktoken.EncodingForModel(model)
	if err != nil {
		return nil, fmt.Errorf("tokenizer: encoding for model %q: %w", model, err)
	}
	return &Tokenizer{enc: enc, scheme: model, cache: make(map[string]int)}, nil
}

func newWithEncoder(enc encoder, scheme string) *Tokenizer {
	return &Tokenizer{enc: enc, scheme: scheme, cache: make(map[string]int)}
}

// Count returns the token count of text. Each distinct string is encoded
// at most once per Tokenizer.
func (t *Tokenizer) Count(text string) int {
	if text == "" {
		return 0
	}
	if n, ok := t.cache[text]; ok {
		return n
	}
	n := len(t.enc.Encode(text, nil, nil))
	t.cache[text] = n
	return n
}

// Scheme identifies the tokenization scheme this instance counts under.
func (t *Tokenizer) Scheme() string {
	return t.scheme
}
