package llm

import (
	"strings"
	"testing"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{
			name:    "anthropic missing key",
			cfg:     Config{Provider: "anthropic"},
			wantErr: "SPROUT_ANTHROPIC_API_KEY",
		},
		{
			name: "anthropic with key",
			cfg:  Config{Provider: "anthropic", Anthropic: AnthropicConfig{APIKey: "sk-test"}},
		},
		{
			name:    "openai missing key",
			cfg:     Config{Provider: "openai"},
			wantErr: "SPROUT_OPENAI_API_KEY",
		},
		{
			name: "gemini with key",
			cfg:  Config{Provider: "gemini", Gemini: GeminiConfig{APIKey: "g-test"}},
		},
		{
			name:    "openrouter missing key",
			cfg:     Config{Provider: "openrouter"},
			wantErr: "SPROUT_OPENROUTER_API_KEY",
		},
		{
			name: "mock needs nothing",
			cfg:  Config{Provider: "mock"},
		},
		{
			name:    "unknown provider",
			cfg:     Config{Provider: "abacus"},
			wantErr: "unknown LLM provider",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("Validate: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("Validate passed, want error containing %q", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("Validate error %q, want it to contain %q", err, tt.wantErr)
			}
		})
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Provider != "anthropic" {
		t.Errorf("Provider = %q, want anthropic", cfg.Provider)
	}
	if cfg.Retry.MaxAttempts != 3 {
		t.Errorf("Retry.MaxAttempts = %d, want 3", cfg.Retry.MaxAttempts)
	}
	if cfg.Anthropic.Model == "" || cfg.OpenAI.Model == "" || cfg.Gemini.Model == "" {
		t.Error("every vendor should carry a default model")
	}
}

func TestDiscoverConfig(t *testing.T) {
	clear := func(t *testing.T) {
		t.Setenv("GEMINI_API_KEY", "")
		t.Setenv("OPENAI_API_KEY", "")
		t.Setenv("ANTHROPIC_API_KEY", "")
		t.Setenv("OPENROUTER_API_KEY", "")
	}

	t.Run("nothing set", func(t *testing.T) {
		clear(t)
		if _, ok := DiscoverConfig(); ok {
			t.Fatal("DiscoverConfig found a provider with no keys set")
		}
	})

	t.Run("gemini wins over anthropic", func(t *testing.T) {
		clear(t)
		t.Setenv("GEMINI_API_KEY", "g-key")
		t.Setenv("ANTHROPIC_API_KEY", "a-key")

		cfg, ok := DiscoverConfig()
		if !ok {
			t.Fatal("DiscoverConfig found nothing")
		}
		if cfg.Provider != "gemini" || cfg.Gemini.APIKey != "g-key" {
			t.Fatalf("picked %q with key %q, want gemini/g-key", cfg.Provider, cfg.Gemini.APIKey)
		}
	})

	t.Run("openrouter as last resort", func(t *testing.T) {
		clear(t)
		t.Setenv("OPENROUTER_API_KEY", "or-key")

		cfg, ok := DiscoverConfig()
		if !ok || cfg.Provider != "openrouter" {
			t.Fatalf("picked %q (found=%v), want openrouter", cfg.Provider, ok)
		}
	})
}
