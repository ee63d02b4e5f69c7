package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

// anthropicStub points the real SDK client at a local test server.
func anthropicStub(t *testing.T, handler http.HandlerFunc) *AnthropicProvider {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client := anthropic.NewClient(
		option.WithAPIKey("test-key"),
		option.WithBaseURL(srv.URL),
		// The SDK's own retry loop would sleep on 429s; the retry
		// decorator is under test elsewhere.
		option.WithMaxRetries(0),
	)
	return &AnthropicProvider{client: &client, model: "claude-haiku-4-5-20251001"}
}

func anthropicMessageBody(text, stopReason string) map[string]any {
	return map[string]any{
		"id":          "msg_test",
		"type":        "message",
		"role":        "assistant",
		"model":       "claude-haiku-4-5-20251001",
		"stop_reason": stopReason,
		"content":     []map[string]any{{"type": "text", "text": text}},
		"usage":       map[string]any{"input_tokens": 50, "output_tokens": 30},
	}
}

func TestAnthropicGenerate(t *testing.T) {
	p := anthropicStub(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(anthropicMessageBody(`{"prompt":"What is 2+3?","answer":"5"}`, "end_turn"))
	})

	resp, err := p.Generate(context.Background(), Request{
		System:    "You are a math tutor for children.",
		Messages:  []Message{{Role: RoleUser, Content: "One addition question."}},
		MaxTokens: 256,
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if resp.Usage.InputTokens != 50 || resp.Usage.OutputTokens != 30 {
		t.Errorf("usage = %+v, want 50 in / 30 out", resp.Usage)
	}
	if resp.StopReason != "end" {
		t.Errorf("StopReason = %q, want end", resp.StopReason)
	}
	if resp.Model != "claude-haiku-4-5-20251001" {
		t.Errorf("Model = %q", resp.Model)
	}
}

func TestAnthropicTruncation(t *testing.T) {
	p := anthropicStub(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(anthropicMessageBody(`{"prompt":"What is`, "max_tokens"))
	})

	_, err := p.Generate(context.Background(), Request{
		Messages:  []Message{{Role: RoleUser, Content: "hi"}},
		MaxTokens: 8,
	})
	var truncated *ErrMaxTokensExceeded
	if !errors.As(err, &truncated) {
		t.Fatalf("err = %T (%v), want ErrMaxTokensExceeded", err, err)
	}
	if string(truncated.Content) != `{"prompt":"What is` {
		t.Errorf("partial content = %q", truncated.Content)
	}
}

func TestAnthropicRateLimit(t *testing.T) {
	p := anthropicStub(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Retry-After", "7")
		w.WriteHeader(http.StatusTooManyRequests)
		json.NewEncoder(w).Encode(map[string]any{
			"type":  "error",
			"error": map[string]any{"type": "rate_limit_error", "message": "Rate limit exceeded"},
		})
	})

	_, err := p.Generate(context.Background(), Request{
		Messages:  []Message{{Role: RoleUser, Content: "hi"}},
		MaxTokens: 64,
	})
	var limited *ErrRateLimit
	if !errors.As(err, &limited) {
		t.Fatalf("err = %T (%v), want ErrRateLimit", err, err)
	}
	if limited.RetryAfter != 7*time.Second {
		t.Errorf("RetryAfter = %v, want the header's 7s", limited.RetryAfter)
	}
}

func TestAnthropicServerError(t *testing.T) {
	p := anthropicStub(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]any{
			"type":  "error",
			"error": map[string]any{"type": "api_error", "message": "Internal server error"},
		})
	})

	_, err := p.Generate(context.Background(), Request{
		Messages:  []Message{{Role: RoleUser, Content: "hi"}},
		MaxTokens: 64,
	})
	var unavail *ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("err = %T (%v), want ErrProviderUnavailable", err, err)
	}
}

func TestAnthropicNoTextBlock(t *testing.T) {
	p := anthropicStub(t, func(w http.ResponseWriter, r *http.Request) {
		body := anthropicMessageBody("", "end_turn")
		body["content"] = []map[string]any{}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(body)
	})

	_, err := p.Generate(context.Background(), Request{
		Messages:  []Message{{Role: RoleUser, Content: "hi"}},
		MaxTokens: 64,
	})
	var rejected *ErrInvalidResponse
	if !errors.As(err, &rejected) {
		t.Fatalf("err = %T (%v), want ErrInvalidResponse", err, err)
	}
}

func TestNewAnthropicProvider(t *testing.T) {
	if _, err := NewAnthropicProvider(AnthropicConfig{}); err == nil {
		t.Fatal("constructor accepted an empty API key")
	}

	aliases := []struct{ in, want string }{
		{"claude-haiku", "claude-haiku-4-5-20251001"},
		{"claude-sonnet", "claude-sonnet-4-20250514"},
		{"claude-opus-4-5", "claude-opus-4-5"},
	}
	for _, a := range aliases {
		p, err := NewAnthropicProvider(AnthropicConfig{APIKey: "sk-test", Model: a.in})
		if err != nil {
			t.Fatalf("NewAnthropicProvider(%q): %v", a.in, err)
		}
		if p.ModelID() != a.want {
			t.Errorf("ModelID(%q) = %q, want %q", a.in, p.ModelID(), a.want)
		}
	}
}
