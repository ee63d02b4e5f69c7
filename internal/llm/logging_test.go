package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/sproutedu/sprout/internal/store"
)

type capturingLog struct {
	records  []store.LLMRequestEventData
	writeErr error
}

func (c *capturingLog) AppendLLMRequest(_ context.Context, data store.LLMRequestEventData) error {
	c.records = append(c.records, data)
	return c.writeErr
}

// aliasedProvider reports a shorthand ModelID but answers with the full
// vendor model name, the way live adapters do.
type aliasedProvider struct{}

func (aliasedProvider) Generate(context.Context, Request) (*Response, error) {
	return &Response{
		Content: json.RawMessage(`{}`),
		Model:   "claude-haiku-4-5-20251001",
		Usage:   Usage{InputTokens: 200, OutputTokens: 80, TotalTokens: 280},
	}, nil
}

func (aliasedProvider) ModelID() string { return "claude-haiku" }

func TestLoggingRecordsSuccess(t *testing.T) {
	mock := NewMockProvider(MockResponse{
		Content: json.RawMessage(`{"ok":true}`),
		Usage:   Usage{InputTokens: 120, OutputTokens: 40, TotalTokens: 160},
	})
	log := &capturingLog{}
	p := WithLogging(mock, "mock", log)

	ctx := WithPurpose(context.Background(), "question-gen")
	if _, err := p.Generate(ctx, Request{}); err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if len(log.records) != 1 {
		t.Fatalf("records = %d, want 1", len(log.records))
	}
	rec := log.records[0]
	if rec.Provider != "mock" || rec.Purpose != "question-gen" {
		t.Errorf("provider/purpose = %q/%q", rec.Provider, rec.Purpose)
	}
	if rec.InputTokens != 120 || rec.OutputTokens != 40 {
		t.Errorf("tokens = %d/%d, want 120/40", rec.InputTokens, rec.OutputTokens)
	}
	if !rec.Success || rec.ErrorMessage != "" {
		t.Errorf("success = %v, error = %q, want a clean success record", rec.Success, rec.ErrorMessage)
	}
}

func TestLoggingRecordsFailure(t *testing.T) {
	mock := NewMockProvider(MockResponse{Err: &ErrProviderUnavailable{Err: errors.New("connection reset")}})
	log := &capturingLog{}
	p := WithLogging(mock, "mock", log)

	if _, err := p.Generate(context.Background(), Request{}); err == nil {
		t.Fatal("Generate should surface the outage")
	}

	if len(log.records) != 1 {
		t.Fatalf("records = %d, want 1", len(log.records))
	}
	rec := log.records[0]
	if rec.Success {
		t.Error("failure recorded as success")
	}
	if rec.ErrorMessage == "" {
		t.Error("failure record lost the error message")
	}
}

func TestLoggingRecordsServedModel(t *testing.T) {
	log := &capturingLog{}
	p := WithLogging(aliasedProvider{}, "anthropic", log)

	if _, err := p.Generate(context.Background(), Request{}); err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if got := log.records[0].Model; got != "claude-haiku-4-5-20251001" {
		t.Errorf("recorded model = %q, want the served model, not the alias", got)
	}
}

func TestLoggingWriteFailureDoesNotSinkRequest(t *testing.T) {
	mock := NewMockProvider(MockResponse{Content: json.RawMessage(`{"ok":true}`)})
	log := &capturingLog{writeErr: errors.New("database is locked")}
	p := WithLogging(mock, "mock", log)

	resp, err := p.Generate(context.Background(), Request{})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if string(resp.Content) != `{"ok":true}` {
		t.Errorf("content = %s", resp.Content)
	}
}

func TestLoggingNilLogUnwrapped(t *testing.T) {
	mock := NewMockProvider()
	if p := WithLogging(mock, "mock", nil); p != Provider(mock) {
		t.Fatal("nil log should return the provider itself")
	}
}
