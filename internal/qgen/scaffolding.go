package qgen

import (
	"fmt"
	"strings"

	"github.com/sproutedu/sprout/internal/question"
)

// ScaffoldingValidator enforces the generation contract for help content:
// a full three-rung hint ladder (nudge, then guidance, then reveal) and a
// worked example that solves a similar problem, not the question itself.
// Authored questions may carry less scaffolding; generated ones may not.
type ScaffoldingValidator struct{}

func (v *ScaffoldingValidator) Name() string { return "scaffolding" }

var ladderKinds = []question.HintKind{
	question.HintNudge,
	question.HintGuidance,
	question.HintReveal,
}

func (v *ScaffoldingValidator) Validate(q *question.Question, _ GenerateInput) *ValidationError {
	hints := q.Scaffolding.Hints
	if len(hints) != 3 {
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("expected exactly 3 hints, got %d", len(hints)),
			Retryable: true,
		}
	}
	for i, h := range hints {
		if h.Level != i+1 {
			return &ValidationError{
				Validator: v.Name(),
				Message:   fmt.Sprintf("hint %d has level %d, want %d", i+1, h.Level, i+1),
				Retryable: true,
			}
		}
		if h.Kind != ladderKinds[i] {
			return &ValidationError{
				Validator: v.Name(),
				Message:   fmt.Sprintf("hint level %d has kind %q, want %q", h.Level, h.Kind, ladderKinds[i]),
				Retryable: true,
			}
		}
	}

	we := q.Scaffolding.WorkedExample
	if we == nil {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "worked example is missing",
			Retryable: true,
		}
	}
	if len(we.Steps) < 2 {
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("worked example has %d steps, want at least 2", len(we.Steps)),
			Retryable: true,
		}
	}
	for i, step := range we.Steps {
		if strings.TrimSpace(step) == "" {
			return &ValidationError{
				Validator: v.Name(),
				Message:   fmt.Sprintf("worked example step %d is blank", i+1),
				Retryable: true,
			}
		}
	}
	return nil
}
