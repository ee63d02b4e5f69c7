package llm

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// Config selects and tunes one model backend.
type Config struct {
	// Provider picks the backend: "anthropic", "openai", "gemini",
	// "openrouter", or "mock".
	Provider string

	Anthropic  AnthropicConfig
	OpenAI     OpenAIConfig
	Gemini     GeminiConfig
	OpenRouter OpenRouterConfig
	Retry      RetryConfig

	// Timeout bounds one request including its retries.
	Timeout time.Duration
}

// AnthropicConfig credentials and model for the Anthropic API.
type AnthropicConfig struct {
	APIKey string
	Model  string
}

// OpenAIConfig credentials and model for the OpenAI API. BaseURL
// retargets OpenAI-compatible endpoints.
type OpenAIConfig struct {
	APIKey  string
	Model   string
	BaseURL string
}

// GeminiConfig credentials and model for the Google Gemini API.
type GeminiConfig struct {
	APIKey string
	Model  string
}

// OpenRouterConfig credentials and model for OpenRouter. Model IDs use
// the "vendor/model" form.
type OpenRouterConfig struct {
	APIKey  string
	Model   string
	BaseURL string
}

// RetryConfig tunes the retry decorator. MaxAttempts counts calls, not
// retries, so 3 means at most two reattempts.
type RetryConfig struct {
	MaxAttempts int
	InitialWait time.Duration
	MaxWait     time.Duration
	Multiplier  float64
}

// DefaultConfig picks the cheap fast model on every vendor; question
// generation is a high-volume, low-difficulty workload.
func DefaultConfig() Config {
	return Config{
		Provider:   "anthropic",
		Anthropic:  AnthropicConfig{Model: "claude-haiku"},
		OpenAI:     OpenAIConfig{Model: "gpt-4o-mini"},
		Gemini:     GeminiConfig{Model: "gemini-flash"},
		OpenRouter: OpenRouterConfig{Model: "google/gemini-2.0-flash-exp"},
		Retry: RetryConfig{
			MaxAttempts: 3,
			InitialWait: 1 * time.Second,
			MaxWait:     10 * time.Second,
			Multiplier:  2.0,
		},
		Timeout: 30 * time.Second,
	}
}

// DiscoverConfig probes the vendors' own key variables (GEMINI_API_KEY,
// OPENAI_API_KEY, ANTHROPIC_API_KEY, OPENROUTER_API_KEY, in that order)
// and returns a Config for the first one set. It reports false when no
// key is found. This is the fallback when no SPROUT_* settings are
// present, so a bare API key in the environment is enough to start.
func DiscoverConfig() (Config, bool) {
	probes := []struct {
		env      string
		provider string
		set      func(*Config, string)
	}{
		{"GEMINI_API_KEY", "gemini", func(c *Config, k string) { c.Gemini.APIKey = k }},
		{"OPENAI_API_KEY", "openai", func(c *Config, k string) { c.OpenAI.APIKey = k }},
		{"ANTHROPIC_API_KEY", "anthropic", func(c *Config, k string) { c.Anthropic.APIKey = k }},
		{"OPENROUTER_API_KEY", "openrouter", func(c *Config, k string) { c.OpenRouter.APIKey = k }},
	}
	for _, p := range probes {
		if key := os.Getenv(p.env); key != "" {
			cfg := DefaultConfig()
			cfg.Provider = p.provider
			p.set(&cfg, key)
			return cfg, true
		}
	}
	return Config{}, false
}

// Validate checks the selected provider has its API key.
func (c Config) Validate() error {
	keys := map[string]string{
		"anthropic":  c.Anthropic.APIKey,
		"openai":     c.OpenAI.APIKey,
		"gemini":     c.Gemini.APIKey,
		"openrouter": c.OpenRouter.APIKey,
	}
	key, known := keys[c.Provider]
	if !known {
		if c.Provider == "mock" {
			return nil
		}
		return fmt.Errorf("unknown LLM provider: %q", c.Provider)
	}
	if key == "" {
		return fmt.Errorf("SPROUT_%s_API_KEY is required for the %s provider",
			strings.ToUpper(c.Provider), c.Provider)
	}
	return nil
}
