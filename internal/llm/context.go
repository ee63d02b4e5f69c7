package llm

import "context"

type purposeKeyType struct{}

var purposeKey purposeKeyType

// WithPurpose labels the context with what the call is for, e.g.
// "question-gen". The logging decorator records it on each event.
func WithPurpose(ctx context.Context, purpose string) context.Context {
	return context.WithValue(ctx, purposeKey, purpose)
}

// PurposeFrom reads the label back, or "unknown" when none was set.
func PurposeFrom(ctx context.Context) string {
	if p, ok := ctx.Value(purposeKey).(string); ok && p != "" {
		return p
	}
	return "unknown"
}
