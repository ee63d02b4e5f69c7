package qgen

import (
	"context"

	"github.com/sproutedu/sprout/internal/question"
)

// Generator produces practice questions ready for a tutoring session.
type Generator interface {
	// Generate produces a single question for the given input context.
	// Returns a validated question or an error.
	// All configured validators are run before returning.
	Generate(ctx context.Context, input GenerateInput) (*question.Question, error)
}

// Batch generates count questions in sequence, feeding each generated
// prompt back into the input so later questions do not repeat earlier
// ones. On error it returns the questions generated so far alongside
// the error.
func Batch(ctx context.Context, g Generator, input GenerateInput, count int) ([]question.Question, error) {
	out := make([]question.Question, 0, count)
	for range count {
		q, err := g.Generate(ctx, input)
		if err != nil {
			return out, err
		}
		out = append(out, *q)
		input.PriorPrompts = append(input.PriorPrompts, q.Prompt)
	}
	return out, nil
}
