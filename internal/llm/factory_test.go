package llm

import (
	"context"
	"strings"
	"testing"
)

func TestNewProviderMockComesBack(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Provider = "mock"

	p, err := NewProvider(context.Background(), cfg, nil)
	if err != nil {
		t.Fatalf("NewProvider: %v", err)
	}
	if _, ok := p.(*MockProvider); !ok {
		t.Fatalf("got %T, want a bare *MockProvider", p)
	}
}

func TestNewProviderWrapsRealBackends(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Provider = "anthropic"
	cfg.Anthropic.APIKey = "sk-test"

	p, err := NewProvider(context.Background(), cfg, nil)
	if err != nil {
		t.Fatalf("NewProvider: %v", err)
	}
	if _, ok := p.(*retrier); !ok {
		t.Fatalf("got %T, want the retry decorator outermost", p)
	}
	if p.ModelID() != "claude-haiku-4-5-20251001" {
		t.Errorf("ModelID = %q, want the resolved default haiku", p.ModelID())
	}
}

func TestNewProviderOpenRouter(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Provider = "openrouter"
	cfg.OpenRouter.APIKey = "sk-or-test"

	p, err := NewProvider(context.Background(), cfg, nil)
	if err != nil {
		t.Fatalf("NewProvider: %v", err)
	}
	if p.ModelID() != "google/gemini-2.0-flash-exp" {
		t.Errorf("ModelID = %q, want the default openrouter model", p.ModelID())
	}
}

func TestNewProviderUnknownBackend(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Provider = "carrier-pigeon"

	_, err := NewProvider(context.Background(), cfg, nil)
	if err == nil || !strings.Contains(err.Error(), "carrier-pigeon") {
		t.Fatalf("err = %v, want it to name the unknown provider", err)
	}
}

func TestNewProviderMissingKey(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Provider = "openai"

	if _, err := NewProvider(context.Background(), cfg, nil); err == nil {
		t.Fatal("NewProvider built an openai provider without a key")
	}
}
