package parser

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"
)

var (
	fmOpen  = []byte("---\n")
	fmClose = []byte("\n---\n")
)

// StripFrontmatter detects a leading YAML metadata block delimited by ---
// lines, parses it, and returns the metadata together with the remaining
// document body. Input without front matter is returned unchanged with nil
// metadata. An unterminated opening delimiter is treated as content, not an
// error; malformed YAML between valid delimiters is an error and the caller
// decides whether to fall back to the raw input.
func StripFrontmatter(src []byte) (map[string]any, []byte, error) {
	if !bytes.HasPrefix(src, fmOpen) {
		return nil, src, nil
	}
	rest := src[len(fmOpen):]

	var yamlPart, body []byte
	if i := bytes.Index(rest, fmClose); i >= 0 {
		yamlPart = rest[:i]
		body = rest[i+len(fmClose):]
	} else if bytes.HasSuffix(rest, []byte("\n---")) {
		yamlPart = rest[:len(rest)-len("\n---")]
	} else {
		return nil, src, nil
	}

	meta := make(map[string]any)
	if err := yaml.Unmarshal(yamlPart, &meta); err != nil {
		return nil, src, fmt.Errorf("parse front matter: %w", err)
	}
	return meta, body, nil
}
