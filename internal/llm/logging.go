package llm

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/sproutedu/sprout/internal/store"
)

// RequestLog receives one record per model API call. store.EventRepo
// satisfies it.
type RequestLog interface {
	AppendLLMRequest(ctx context.Context, data store.LLMRequestEventData) error
}

// WithLogging wraps p so every Generate call is recorded: provider,
// model, purpose, token counts, latency, outcome. A nil log returns p
// unwrapped.
func WithLogging(p Provider, provider string, log RequestLog) Provider {
	if log == nil {
		return p
	}
	return &requestLogger{next: p, provider: provider, log: log}
}

type requestLogger struct {
	next     Provider
	provider string
	log      RequestLog
}

func (l *requestLogger) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	resp, err := l.next.Generate(ctx, req)
	record := l.buildRecord(ctx, resp, err, time.Since(start))

	// A failed write must not sink the request itself.
	if logErr := l.log.AppendLLMRequest(ctx, record); logErr != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to log LLM request event: %v\n", logErr)
	}

	return resp, err
}

func (l *requestLogger) ModelID() string {
	return l.next.ModelID()
}

func (l *requestLogger) buildRecord(ctx context.Context, resp *Response, err error, elapsed time.Duration) store.LLMRequestEventData {
	record := store.LLMRequestEventData{
		Provider: l.provider,
		// The response may name a more specific model than configured.
		Model:     l.next.ModelID(),
		Purpose:   PurposeFrom(ctx),
		LatencyMs: elapsed.Milliseconds(),
		Success:   err == nil,
	}
	if resp != nil {
		record.Model = resp.Model
		record.InputTokens = resp.Usage.InputTokens
		record.OutputTokens = resp.Usage.OutputTokens
	}
	if err != nil {
		record.ErrorMessage = err.Error()
	}
	return record
}
