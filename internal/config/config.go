package config

import (
	"os"
	"strconv"

	"github.com/dgallion1/mdsplit/internal/tokenizer"
)

// DefaultSeparator is printed between sections when joining them.
const DefaultSeparator = "=== SPLIT ==="

type Config struct {
	Port string

	// Auth; empty disables the auth middleware.
	APIKey string

	// Splitting defaults
	DefaultModel string
	DefaultLimit int // 0 means the model's context size
	Separator    string

	// Upload limits
	MaxUploadBytes int64

	// PDF
	PDFFallbackPdftotext bool
}

func Load() Config {
	cfg := Config{
		Port: envOr("PORT", "8091"),

		APIKey: os.Getenv("MDSPLIT_API_KEY"),

		DefaultModel: envOr("MDSPLIT_MODEL", tokenizer.DefaultModel),
		DefaultLimit: envInt("MDSPLIT_LIMIT", 0),
		Separator:    envOr("MDSPLIT_SEPARATOR", DefaultSeparator),

		MaxUploadBytes: envInt64("MAX_UPLOAD_BYTES", 52428800), // 50MB

		PDFFallbackPdftotext: envBool("PDF_FALLBACK_PDFTOTEXT", true),
	}

	if cfg.DefaultModel == "" {
		cfg.DefaultModel = tokenizer.DefaultModel
	}
	if cfg.DefaultLimit < 0 {
		cfg.DefaultLimit = 0
	}
	if cfg.Separator == "" {
		cfg.Separator = DefaultSeparator
	}
	if cfg.MaxUploadBytes <= 0 {
		cfg.MaxUploadBytes = 52428800
	}

	return cfg
}

// Limit resolves the effective section limit for a model: the configured
// limit when set, otherwise the model's maximum context size.
func (c Config) Limit(model string) int {
	if c.DefaultLimit > 0 {
		return c.DefaultLimit
	}
	return tokenizer.ContextSize(model)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envInt64(key string, fallback int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}
