package qgen

import (
	"fmt"
	"strings"

	"github.com/sproutedu/sprout/internal/question"
)

const systemPrompt = `You are a tutor writing practice questions for children aged 8-12.

Rules:
- Write a single question for the given topic and difficulty. Use plain ASCII text for all math: / for fractions, * for multiplication, standard operators. No LaTeX, no Unicode symbols.
- The prompt must be clear, self-contained, and age-appropriate.
- Pick the question type from the allowed list. Use "numeric" for computation, "multiple-choice" for concept and comparison questions, "multiple-select" when several options are correct, "fill-blank" or "short-answer" for recall, "true-false" for judgments.
- Multiple choice needs 3 to 5 distinct options with exactly one correct. Distractors should reflect common mistakes, not random values.
- Answers must be exact and in simplest form: reduce fractions, no trailing zeros on decimals.
- Always include exactly three hints, gentlest first. Level 1 is a "nudge" that points at the approach without giving anything away. Level 2 is "guidance" that walks through the method. Level 3 is a "reveal" that nearly gives the answer.
- Always include a worked example that solves a SIMILAR problem step by step. Never solve the question itself.
- Set cognitive_load for the format, estimate the seconds a child needs, and assign 5 to 25 points scaled by difficulty.
- Do not repeat any question from the "already asked" list.
- When recent mistakes are listed, target the same idea from a fresh angle.`

// difficultyGuide gives the model a concrete calibration per band.
var difficultyGuide = map[question.Difficulty]string{
	question.DifficultyBeginner: "single-step, small numbers, heavily familiar contexts",
	question.DifficultyEasy:     "single-step with slightly larger values or one small twist",
	question.DifficultyMedium:   "two steps or a less familiar representation",
	question.DifficultyHard:     "multi-step, larger values, method not immediately obvious",
	question.DifficultyAdvanced: "multi-step reasoning that combines ideas from the topic",
}

// buildUserMessage constructs the user message from GenerateInput and
// Config limits.
func buildUserMessage(input GenerateInput, cfg Config) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Topic: %s\n", input.Topic)
	if input.Subtopic != "" {
		fmt.Fprintf(&b, "Subtopic: %s\n", input.Subtopic)
	}
	fmt.Fprintf(&b, "Difficulty: %s (%s)\n", input.Difficulty, difficultyGuide[input.Difficulty])
	fmt.Fprintf(&b, "Allowed types: %s\n", joinTypes(input.Types))

	b.WriteString("\nAlready asked in this session:\n")
	b.WriteString(recentList(input.PriorPrompts, cfg.MaxPriorPrompts))

	b.WriteString("\nRecent mistakes by this student:\n")
	b.WriteString(recentList(input.RecentErrors, cfg.MaxRecentErrors))

	if input.LearnerProfile != "" {
		b.WriteString("\n\nLearner profile:\n")
		b.WriteString(input.LearnerProfile)
	}

	return b.String()
}

func joinTypes(types []question.Type) string {
	if len(types) == 0 {
		types = GenerableTypes()
	}
	parts := make([]string, len(types))
	for i, t := range types {
		parts[i] = string(t)
	}
	return strings.Join(parts, ", ")
}

// recentList formats the most recent max items as a numbered list.
// Returns "None" for an empty list.
func recentList(items []string, max int) string {
	if len(items) == 0 {
		return "None"
	}
	if max > 0 && len(items) > max {
		items = items[len(items)-max:]
	}

	var b strings.Builder
	for i, it := range items {
		fmt.Fprintf(&b, "%d. %s\n", i+1, it)
	}
	return strings.TrimRight(b.String(), "\n")
}
