// Package llm provides the external judge client: a unified interface
// over multiple LLM providers with middleware for retries, timeouts,
// rate limiting, and metrics.
//
// The scoring core treats the judge as an opaque text generator behind
// ports.LLMClient. This package supplies that collaborator: provider
// implementations (Anthropic, OpenAI, Google Gemini) behind the CoreLLM
// interface, composed with cross-cutting middleware.
//
// Basic usage:
//
//	judge, err := llm.NewClient("anthropic", llm.ClientConfig{
//	    APIKey: os.Getenv("ANTHROPIC_API_KEY"),
//	    Middleware: []llm.Middleware{
//	        llm.RetryMiddleware(2, 500*time.Millisecond, 5*time.Second),
//	        llm.TimeoutMiddleware(30 * time.Second),
//	    },
//	})
package llm

import (
	"context"
	"fmt"

	"github.com/Swamyakshitha/debate-referee/internal/ports"
)

// CoreLLM is the minimal interface a judge provider must implement.
// Middleware wraps any conforming implementation.
type CoreLLM interface {
	// DoRequest sends a prompt to the provider and returns the response
	// text plus input and output token counts. The opts map carries
	// sampling settings such as temperature and max_tokens.
	DoRequest(ctx context.Context, prompt string, opts map[string]any) (response string, tokensIn, tokensOut int, err error)

	// GetModel returns the configured model name.
	GetModel() string

	// SetModel switches the model for subsequent requests.
	SetModel(model string)
}

// Middleware wraps a CoreLLM to add cross-cutting behavior such as
// retries or rate limiting without touching provider logic.
type Middleware func(CoreLLM) CoreLLM

// ClientConfig holds the settings for constructing a judge client.
type ClientConfig struct {
	// APIKey authenticates requests to the provider.
	APIKey string

	// Model selects the provider model; empty uses the provider default.
	Model string

	// BaseURL overrides the provider's default endpoint when non-empty.
	BaseURL string

	// Middleware is applied in order, first entry outermost.
	Middleware []Middleware
}

// Client adapts a middleware-wrapped CoreLLM to ports.LLMClient.
type Client struct {
	core CoreLLM
}

var _ ports.LLMClient = (*Client)(nil)

// ProviderFactory builds a CoreLLM from configuration. Providers
// register themselves at init time.
type ProviderFactory func(ClientConfig) (CoreLLM, error)

var providerFactories = map[string]ProviderFactory{}

// RegisterProviderFactory registers a provider under the given name.
// Built-in providers self-register; custom providers may be added before
// constructing a client.
func RegisterProviderFactory(name string, factory ProviderFactory) {
	providerFactories[name] = factory
}

// NewClient assembles a judge client for the named provider, applying
// the configured middleware chain.
func NewClient(provider string, config ClientConfig) (*Client, error) {
	if config.APIKey == "" {
		return nil, ErrEmptyAPIKey
	}

	factory, ok := providerFactories[provider]
	if !ok {
		return nil, fmt.Errorf("unknown judge provider: %s", provider)
	}

	core, err := factory(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s provider: %w", provider, err)
	}

	// Reverse order so the first middleware wraps the whole chain.
	for i := len(config.Middleware) - 1; i >= 0; i-- {
		core = config.Middleware[i](core)
	}

	return &Client{core: core}, nil
}

// Complete sends a prompt and returns the generated text, discarding
// token usage. Failures are marked ports.ErrJudgeUnavailable so callers
// can treat any judge outage uniformly; the provider error stays in the
// chain for diagnostics.
func (c *Client) Complete(ctx context.Context, prompt string, options map[string]any) (string, error) {
	response, _, _, err := c.core.DoRequest(ctx, prompt, options)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ports.ErrJudgeUnavailable, err)
	}
	return response, nil
}

// EstimateTokens approximates the token count of text using a
// character-based heuristic of four characters per token.
func (c *Client) EstimateTokens(text string) (int, error) {
	return (len(text) + 3) / 4, nil
}

// GetModel returns the model name of the underlying provider.
func (c *Client) GetModel() string { return c.core.GetModel() }
