package llm

import (
	"context"
	"errors"
	"math"
	"math/rand/v2"
	"time"
)

// WithRetry wraps p so transient failures are reattempted with
// exponential backoff, up to cfg.MaxAttempts calls in total.
func WithRetry(p Provider, cfg RetryConfig) Provider {
	return &retrier{next: p, cfg: cfg}
}

type retrier struct {
	next Provider
	cfg  RetryConfig
}

func (r *retrier) Generate(ctx context.Context, req Request) (*Response, error) {
	var invalidSeen bool
	for attempt := 0; ; attempt++ {
		resp, err := r.next.Generate(ctx, req)
		if err == nil {
			return resp, nil
		}
		if attempt+1 >= r.cfg.MaxAttempts || !retryable(err, &invalidSeen) {
			return nil, err
		}
		if err := sleepFor(ctx, r.delay(attempt, err)); err != nil {
			return nil, err
		}
	}
}

func (r *retrier) ModelID() string {
	return r.next.ModelID()
}

// retryable reports whether err is worth another attempt. A schema
// rejection gets exactly one: the model rarely emits the same bad
// output twice, but a second rejection means the prompt is at fault.
func retryable(err error, invalidSeen *bool) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	var truncated *ErrMaxTokensExceeded
	if errors.As(err, &truncated) {
		// The same cap truncates the same way every time.
		return false
	}

	var rejected *ErrInvalidResponse
	if errors.As(err, &rejected) {
		if *invalidSeen {
			return false
		}
		*invalidSeen = true
		return true
	}

	// Rate limits, vendor outages, and plain network errors are all
	// transient.
	return true
}

// delay computes the wait before the next attempt. A vendor-supplied
// Retry-After always wins; otherwise exponential backoff with jitter
// so concurrent sessions do not reattempt in lockstep.
func (r *retrier) delay(attempt int, err error) time.Duration {
	var limited *ErrRateLimit
	if errors.As(err, &limited) && limited.RetryAfter > 0 {
		return limited.RetryAfter
	}

	wait := float64(r.cfg.InitialWait) * math.Pow(r.cfg.Multiplier, float64(attempt))
	wait = math.Min(wait, float64(r.cfg.MaxWait))
	wait *= 1 + 0.2*(2*rand.Float64()-1)
	return time.Duration(math.Max(wait, 0))
}

func sleepFor(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
