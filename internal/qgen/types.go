package qgen

import "github.com/sproutedu/sprout/internal/question"

// GenerateInput holds all context needed to generate a question.
type GenerateInput struct {
	// Topic is the curriculum topic to generate for, e.g. "fractions".
	// Subtopic optionally narrows it, e.g. "equivalent-fractions".
	Topic    string
	Subtopic string

	// Difficulty is the band the question must land on. The adaptive
	// loop picks it; the generator does not second-guess it.
	Difficulty question.Difficulty

	// Types restricts which question types may be produced. Empty means
	// any generable type.
	Types []question.Type

	// PriorPrompts contains the prompts of questions already asked in
	// this session for this topic. Used for deduplication in the prompt.
	PriorPrompts []string

	// RecentErrors contains descriptions of the learner's recent
	// mistakes on this topic, most recent last. Empty slice if no
	// history.
	RecentErrors []string

	// LearnerProfile is an optional short summary of the learner.
	// Included in the prompt when available for better personalization.
	LearnerProfile string
}

// GenerableTypes returns the question types the generator can produce.
// Matching, ordering, and open-response questions come from authored
// catalogs only.
func GenerableTypes() []question.Type {
	return []question.Type{
		question.TypeMultipleChoice,
		question.TypeMultipleSelect,
		question.TypeFillBlank,
		question.TypeTrueFalse,
		question.TypeNumeric,
		question.TypeShortAnswer,
	}
}

// Generable reports whether the generator can produce questions of type t.
func Generable(t question.Type) bool {
	for _, g := range GenerableTypes() {
		if t == g {
			return true
		}
	}
	return false
}
