package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/dgallion1/mdsplit/internal/doctree"
	"github.com/dgallion1/mdsplit/internal/parser"
	"github.com/dgallion1/mdsplit/internal/splitter"
)

type splitRequest struct {
	Markdown string `json:"markdown"`
	Model    string `json:"model"`
	Limit    int    `json:"limit"`
}

type sectionPayload struct {
	Text      string `json:"text"`
	Size      int    `json:"size"`
	Oversized bool   `json:"oversized,omitempty"`
}

func (s *Server) handleSplit(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes)

	var req splitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.Markdown) == "" {
		jsonError(w, "markdown is required", http.StatusBadRequest)
		return
	}

	p := &parser.MarkdownParser{}
	tree, err := p.Parse(strings.NewReader(req.Markdown), "request.md")
	if err != nil {
		jsonError(w, "parse markdown: "+err.Error(), http.StatusBadRequest)
		return
	}

	s.respondSplit(w, tree, req.Model, req.Limit)
}

func (s *Server) handleSplitFile(w http.ResponseWriter, r *http.Request) {
	// Limit total request size.
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes+1024*1024) // extra 1MB for form overhead

	if err := r.ParseMultipartForm(32 << 20); err != nil {
		jsonError(w, "invalid multipart form: "+err.Error(), http.StatusBadRequest)
		return
	}
	defer r.MultipartForm.RemoveAll()

	file, header, err := r.FormFile("file")
	if err != nil {
		jsonError(w, "file is required: "+err.Error(), http.StatusBadRequest)
		return
	}
	defer file.Close()

	filename := sanitizeFilename(header.Filename)
	if !parser.IsSupportedExtension(filename) {
		jsonError(w, fmt.Sprintf("unsupported file type: %s", filepath.Ext(filename)), http.StatusBadRequest)
		return
	}

	data, err := io.ReadAll(io.LimitReader(file, s.cfg.MaxUploadBytes+1))
	if err != nil {
		jsonError(w, "failed to read file", http.StatusInternalServerError)
		return
	}
	if int64(len(data)) > s.cfg.MaxUploadBytes {
		jsonError(w, fmt.Sprintf("file exceeds max size (%d bytes)", s.cfg.MaxUploadBytes), http.StatusRequestEntityTooLarge)
		return
	}

	pr, err := parser.ForFile(filename)
	if err != nil {
		jsonError(w, err.Error(), http.StatusBadRequest)
		return
	}
	if pp, ok := pr.(*parser.PDFParser); ok {
		pp.FallbackPdftotext = s.cfg.PDFFallbackPdftotext
	}

	tree, err := pr.Parse(bytes.NewReader(data), filename)
	if err != nil {
		jsonError(w, "parse file: "+err.Error(), http.StatusUnprocessableEntity)
		return
	}

	limit := 0
	if v := r.FormValue("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			limit = n
		}
	}
	s.respondSplit(w, tree, r.FormValue("model"), limit)
}

// respondSplit runs the packer over a parsed tree and writes the section
// list. limit <= 0 falls back to the configured default, then the model's
// context size.
func (s *Server) respondSplit(w http.ResponseWriter, tree *doctree.Node, model string, limit int) {
	if model == "" {
		model = s.cfg.DefaultModel
	}
	if limit <= 0 {
		limit = s.cfg.Limit(model)
	}

	counter, err := s.newCounter(model)
	if err != nil {
		jsonError(w, "unknown model: "+err.Error(), http.StatusBadRequest)
		return
	}

	sp, err := splitter.New(limit, counter, splitter.SentenceSegmenter{}, s.log)
	if err != nil {
		jsonError(w, err.Error(), http.StatusBadRequest)
		return
	}

	sections := sp.Split(tree)

	payload := make([]sectionPayload, 0, len(sections))
	total := 0
	for _, sec := range sections {
		payload = append(payload, sectionPayload{Text: sec.Text, Size: sec.Size, Oversized: sec.Oversized})
		total += sec.Size
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"model":        model,
		"limit":        limit,
		"count":        len(payload),
		"total_tokens": total,
		"sections":     payload,
	})
}

func jsonError(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

func sanitizeFilename(name string) string {
	// Strip path components, keep only the base name.
	name = filepath.Base(name)
	// Remove any path separators that might have survived.
	name = strings.ReplaceAll(name, "/", "_")
	name = strings.ReplaceAll(name, "\\", "_")
	name = strings.ReplaceAll(name, "..", "_")
	if name == "" || name == "." {
		name = "unnamed"
	}
	return name
}
