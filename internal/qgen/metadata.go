package qgen

import (
	"fmt"

	"github.com/sproutedu/sprout/internal/question"
)

// MetadataValidator checks that the question matches what was requested
// and that the authored estimates are plausible.
type MetadataValidator struct{}

func (v *MetadataValidator) Name() string { return "metadata" }

func (v *MetadataValidator) Validate(q *question.Question, input GenerateInput) *ValidationError {
	if input.Topic != "" && q.Topic != input.Topic {
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("question topic %q does not match requested %q", q.Topic, input.Topic),
			Retryable: false,
		}
	}
	if input.Difficulty != "" && q.Difficulty != input.Difficulty {
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("question difficulty %q does not match requested %q", q.Difficulty, input.Difficulty),
			Retryable: false,
		}
	}

	allowed := input.Types
	if len(allowed) == 0 {
		allowed = GenerableTypes()
	}
	ok := false
	for _, t := range allowed {
		if q.Type == t {
			ok = true
			break
		}
	}
	if !ok {
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("question type %q not in the allowed set", q.Type),
			Retryable: true,
		}
	}

	if q.EstimatedTimeSeconds < 5 || q.EstimatedTimeSeconds > 600 {
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("estimated time %ds outside 5..600", q.EstimatedTimeSeconds),
			Retryable: true,
		}
	}
	if q.Points < 1 || q.Points > 100 {
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("points %d outside 1..100", q.Points),
			Retryable: true,
		}
	}
	return nil
}
