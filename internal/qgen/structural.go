package qgen

import "github.com/sproutedu/sprout/internal/question"

// StructuralValidator checks that the question satisfies the engine's
// base invariants and stays within display length limits.
type StructuralValidator struct{}

func (v *StructuralValidator) Name() string { return "structural" }

func (v *StructuralValidator) Validate(q *question.Question, _ GenerateInput) *ValidationError {
	if err := q.Validate(); err != nil {
		return &ValidationError{
			Validator: v.Name(),
			Message:   err.Error(),
			Retryable: true,
		}
	}
	if len(q.Prompt) > 500 {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "prompt exceeds 500 characters",
			Retryable: true,
		}
	}
	for _, h := range q.Scaffolding.Hints {
		if len(h.Text) > 300 {
			return &ValidationError{
				Validator: v.Name(),
				Message:   "hint text exceeds 300 characters",
				Retryable: true,
			}
		}
	}
	if we := q.Scaffolding.WorkedExample; we != nil {
		if len(we.Steps) > 8 {
			return &ValidationError{
				Validator: v.Name(),
				Message:   "worked example has more than 8 steps",
				Retryable: true,
			}
		}
		for _, step := range we.Steps {
			if len(step) > 300 {
				return &ValidationError{
					Validator: v.Name(),
					Message:   "worked example step exceeds 300 characters",
					Retryable: true,
				}
			}
		}
	}
	return nil
}
