package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
)

func TestMockProviderScriptsInOrder(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Content: json.RawMessage(`{"first":true}`), Usage: Usage{InputTokens: 12, OutputTokens: 3, TotalTokens: 15}},
		MockResponse{Content: json.RawMessage(`{"second":true}`)},
	)

	resp, err := mock.Generate(context.Background(), Request{})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if string(resp.Content) != `{"first":true}` {
		t.Errorf("content = %s, want first scripted response", resp.Content)
	}
	if resp.Usage.InputTokens != 12 || resp.Usage.OutputTokens != 3 {
		t.Errorf("usage = %+v, want the scripted counts", resp.Usage)
	}
	if resp.Model != "mock" || resp.StopReason != "end" {
		t.Errorf("model/stop = %q/%q, want mock/end", resp.Model, resp.StopReason)
	}

	resp, err = mock.Generate(context.Background(), Request{})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if string(resp.Content) != `{"second":true}` {
		t.Errorf("content = %s, want second scripted response", resp.Content)
	}
}

func TestMockProviderExhaustedScript(t *testing.T) {
	mock := NewMockProvider()

	_, err := mock.Generate(context.Background(), Request{})
	var unavail *ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("err = %T (%v), want ErrProviderUnavailable", err, err)
	}
}

func TestMockProviderRecordsRequests(t *testing.T) {
	mock := NewMockProvider(MockResponse{Content: json.RawMessage(`{}`)})

	_, _ = mock.Generate(context.Background(), Request{
		System:   "You are a tutor.",
		Messages: []Message{{Role: RoleUser, Content: "one fractions question"}},
	})

	if mock.CallCount() != 1 {
		t.Fatalf("CallCount = %d, want 1", mock.CallCount())
	}
	if mock.Calls[0].System != "You are a tutor." {
		t.Errorf("recorded system = %q", mock.Calls[0].System)
	}

	mock.AddResponse(MockResponse{Content: json.RawMessage(`{"queued":true}`)})
	resp, err := mock.Generate(context.Background(), Request{})
	if err != nil {
		t.Fatalf("Generate after AddResponse: %v", err)
	}
	if string(resp.Content) != `{"queued":true}` {
		t.Errorf("content = %s, want the queued response", resp.Content)
	}
}

func TestMockProviderScriptedError(t *testing.T) {
	mock := NewMockProvider(MockResponse{Err: &ErrRateLimit{}})

	_, err := mock.Generate(context.Background(), Request{})
	var limited *ErrRateLimit
	if !errors.As(err, &limited) {
		t.Fatalf("err = %T, want the scripted ErrRateLimit", err)
	}
	if mock.ModelID() != "mock" {
		t.Errorf("ModelID = %q, want mock", mock.ModelID())
	}
}

func TestPurposeRoundTrip(t *testing.T) {
	ctx := context.Background()
	if got := PurposeFrom(ctx); got != "unknown" {
		t.Errorf("PurposeFrom(empty) = %q, want unknown", got)
	}

	ctx = WithPurpose(ctx, "question-gen")
	if got := PurposeFrom(ctx); got != "question-gen" {
		t.Errorf("PurposeFrom = %q, want question-gen", got)
	}

	if got := PurposeFrom(WithPurpose(context.Background(), "")); got != "unknown" {
		t.Errorf("PurposeFrom(blank) = %q, want unknown", got)
	}
}

func TestResolveModel(t *testing.T) {
	aliases := map[string]string{"fast": "vendor-fast-2"}

	if got := resolveModel("fast", aliases); got != "vendor-fast-2" {
		t.Errorf("alias = %q, want vendor-fast-2", got)
	}
	if got := resolveModel("vendor-exact-1", aliases); got != "vendor-exact-1" {
		t.Errorf("exact ID = %q, want pass-through", got)
	}
}
