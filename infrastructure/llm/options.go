package llm

import (
	"sync"
)

// DefaultMaxTokens bounds judge responses when the caller does not set
// max_tokens explicitly.
const DefaultMaxTokens = 1024

// RequestOptions is the provider-agnostic view of a judge request's
// sampling settings, extracted from the options map.
type RequestOptions struct {
	// MaxTokens caps the length of the generated response.
	MaxTokens int
	// Model overrides the provider's configured model when non-empty.
	Model string
	// Temperature controls sampling randomness; nil uses the provider
	// default.
	Temperature *float64
	// System is an optional system instruction.
	System string
}

// ParseRequestOptions extracts standard settings from an options map,
// falling back to defaults for missing or invalid entries.
func ParseRequestOptions(opts map[string]any, defaultModel string) RequestOptions {
	options := RequestOptions{
		MaxTokens: DefaultMaxTokens,
		Model:     defaultModel,
	}

	if v, ok := opts["max_tokens"].(int); ok && v > 0 {
		options.MaxTokens = v
	}
	if v, ok := opts["model"].(string); ok && v != "" {
		options.Model = v
	}
	if v, ok := opts["system"].(string); ok {
		options.System = v
	}
	if v, ok := toFloat64(opts["temperature"]); ok && v >= 0 && v <= 2 {
		options.Temperature = &v
	}

	return options
}

// toFloat64 converts the numeric types an options map may carry.
func toFloat64(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	default:
		return 0, false
	}
}

// clampFloat64 restricts a value to [min, max].
func clampFloat64(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// estimateTokens approximates token count at four characters per token,
// used when the provider response omits usage data.
func estimateTokens(text string) int {
	return (len(text) + 3) / 4
}

// BaseProvider supplies thread-safe model-name management shared by all
// provider implementations.
type BaseProvider struct {
	mu    sync.RWMutex
	model string
}

// GetModel returns the configured model name. Safe for concurrent use.
func (b *BaseProvider) GetModel() string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.model
}

// SetModel updates the model name. Safe for concurrent use.
func (b *BaseProvider) SetModel(model string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.model = model
}
