package llm

import (
	"context"
	"fmt"
)

// NewProvider builds the configured backend and wraps it in the retry
// and logging decorators. Retry sits outside logging so every attempt
// lands in the event log. A nil log disables event logging; the "mock"
// provider comes back bare.
func NewProvider(ctx context.Context, cfg Config, log RequestLog) (Provider, error) {
	if cfg.Provider == "mock" {
		return NewMockProvider(), nil
	}

	base, err := newVendorProvider(ctx, cfg)
	if err != nil {
		return nil, err
	}

	return WithRetry(WithLogging(base, cfg.Provider, log), cfg.Retry), nil
}

func newVendorProvider(ctx context.Context, cfg Config) (Provider, error) {
	var (
		p   Provider
		err error
	)
	switch cfg.Provider {
	case "anthropic":
		p, err = NewAnthropicProvider(cfg.Anthropic)
	case "openai":
		p, err = NewOpenAIProvider(cfg.OpenAI)
	case "gemini":
		p, err = NewGeminiProvider(ctx, cfg.Gemini)
	case "openrouter":
		p, err = NewOpenRouterProvider(cfg.OpenRouter)
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}
	return p, nil
}
