package tokenizer

// DefaultModel is used when no model is configured.
const DefaultModel = "gpt-3.5-turbo"

// fallbackContextSize applies to models missing from the table.
const fallbackContextSize = 2048

// modelContextSizes maps model names to their maximum context window, used
// as the default section limit when none is configured.
var modelContextSizes = map[string]int{
	"gpt-4":                  8192,
	"gpt-4-32k":              32768,
	"gpt-4-32k-0613":         32768,
	"gpt-4-0613":             8192,
	"gpt-3.5-turbo":          4096,
	"gpt-3.5-turbo-0613":     4096,
	"gpt-3.5-turbo-16k":      16384,
	"gpt-3.5-turbo-16k-0613": 16384,
}

// ContextSize returns the maximum context window for a model.
func ContextSize(model string) int {
	if n, ok := modelContextSizes[model]; ok {
		return n
	}
	return fallbackContextSize
}
