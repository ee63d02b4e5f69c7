package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"
)

func fastRetry() RetryConfig {
	return RetryConfig{
		MaxAttempts: 3,
		InitialWait: time.Millisecond,
		MaxWait:     5 * time.Millisecond,
		Multiplier:  2.0,
	}
}

func outage() MockResponse {
	return MockResponse{Err: &ErrProviderUnavailable{Err: errors.New("connection refused")}}
}

func TestRetrySucceedsFirstTry(t *testing.T) {
	mock := NewMockProvider(MockResponse{Content: json.RawMessage(`{"ok":true}`)})
	p := WithRetry(mock, fastRetry())

	resp, err := p.Generate(context.Background(), Request{})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if string(resp.Content) != `{"ok":true}` {
		t.Errorf("content = %s", resp.Content)
	}
	if mock.CallCount() != 1 {
		t.Errorf("calls = %d, want 1", mock.CallCount())
	}
}

func TestRetryRecoversFromOutage(t *testing.T) {
	mock := NewMockProvider(
		outage(),
		outage(),
		MockResponse{Content: json.RawMessage(`{"ok":true}`)},
	)
	p := WithRetry(mock, fastRetry())

	resp, err := p.Generate(context.Background(), Request{})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if string(resp.Content) != `{"ok":true}` {
		t.Errorf("content = %s", resp.Content)
	}
	if mock.CallCount() != 3 {
		t.Errorf("calls = %d, want 3", mock.CallCount())
	}
}

func TestRetryGivesUpAfterMaxAttempts(t *testing.T) {
	mock := NewMockProvider(outage(), outage(), outage(), outage())
	p := WithRetry(mock, fastRetry())

	_, err := p.Generate(context.Background(), Request{})
	var unavail *ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("err = %T, want the last outage", err)
	}
	if mock.CallCount() != 3 {
		t.Errorf("calls = %d, want MaxAttempts", mock.CallCount())
	}
}

func TestRetryStopsOnTruncation(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: &ErrMaxTokensExceeded{Content: json.RawMessage(`{"partial`)}},
		MockResponse{Content: json.RawMessage(`{"ok":true}`)},
	)
	p := WithRetry(mock, fastRetry())

	_, err := p.Generate(context.Background(), Request{})
	var truncated *ErrMaxTokensExceeded
	if !errors.As(err, &truncated) {
		t.Fatalf("err = %T, want ErrMaxTokensExceeded", err)
	}
	if mock.CallCount() != 1 {
		t.Errorf("calls = %d, truncation must not be retried", mock.CallCount())
	}
}

func TestRetryRejectedResponseRetriedOnce(t *testing.T) {
	bad := MockResponse{Err: &ErrInvalidResponse{
		Content: json.RawMessage(`{"difficulty":"impossible"}`),
		Err:     errors.New("value must be one of easy, medium, hard"),
	}}
	mock := NewMockProvider(bad, bad, MockResponse{Content: json.RawMessage(`{}`)})
	p := WithRetry(mock, fastRetry())

	_, err := p.Generate(context.Background(), Request{})
	var rejected *ErrInvalidResponse
	if !errors.As(err, &rejected) {
		t.Fatalf("err = %T, want ErrInvalidResponse", err)
	}
	if mock.CallCount() != 2 {
		t.Errorf("calls = %d, want exactly one reattempt", mock.CallCount())
	}
}

func TestRetryCanceledContext(t *testing.T) {
	mock := NewMockProvider(outage(), MockResponse{Content: json.RawMessage(`{}`)})
	p := WithRetry(mock, fastRetry())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := p.Generate(ctx, Request{})
	if err == nil {
		t.Fatal("Generate succeeded under a canceled context")
	}
}

func TestRetryHonorsRetryAfter(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: &ErrRateLimit{RetryAfter: time.Millisecond, Err: errors.New("429")}},
		MockResponse{Content: json.RawMessage(`{"ok":true}`)},
	)
	p := WithRetry(mock, fastRetry())

	start := time.Now()
	resp, err := p.Generate(context.Background(), Request{})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if string(resp.Content) != `{"ok":true}` {
		t.Errorf("content = %s", resp.Content)
	}
	if mock.CallCount() != 2 {
		t.Errorf("calls = %d, want 2", mock.CallCount())
	}
	if elapsed := time.Since(start); elapsed < time.Millisecond {
		t.Errorf("returned after %v, want at least the RetryAfter wait", elapsed)
	}
}

func TestRetrySingleAttemptNeverSleeps(t *testing.T) {
	cfg := fastRetry()
	cfg.MaxAttempts = 1
	cfg.InitialWait = time.Hour

	mock := NewMockProvider(outage(), MockResponse{Content: json.RawMessage(`{}`)})
	p := WithRetry(mock, cfg)

	done := make(chan struct{})
	go func() {
		defer close(done)
		_, _ = p.Generate(context.Background(), Request{})
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("Generate slept on its only attempt")
	}
	if mock.CallCount() != 1 {
		t.Errorf("calls = %d, want 1", mock.CallCount())
	}
}

func TestRetryModelID(t *testing.T) {
	p := WithRetry(NewMockProvider(), fastRetry())
	if p.ModelID() != "mock" {
		t.Errorf("ModelID = %q, want the wrapped provider's", p.ModelID())
	}
}
