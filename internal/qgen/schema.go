package qgen

import "github.com/sproutedu/sprout/internal/llm"

// QuestionSchema defines the JSON schema for generated question responses.
// Every field is required for strict structured output; fields that do
// not apply to the chosen type carry their empty value.
var QuestionSchema = &llm.Schema{
	Name:        "tutor-question",
	Description: "A single practice question with typed content and a full scaffolding ladder",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"prompt": map[string]any{
				"type":        "string",
				"description": "The question text shown to the learner, in plain ASCII",
			},
			"type": map[string]any{
				"type":        "string",
				"enum":        []any{"multiple-choice", "multiple-select", "fill-blank", "true-false", "numeric", "short-answer"},
				"description": "How the learner answers this question",
			},
			"subtopic": map[string]any{
				"type":        "string",
				"description": "Optional subtopic label, kebab-case. Empty string if none.",
			},
			"choices": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "3-5 options for multiple-choice or multiple-select. Empty array otherwise.",
			},
			"correct_index": map[string]any{
				"type":        "integer",
				"description": "Zero-based index of the correct option for multiple-choice. 0 otherwise.",
			},
			"correct_indices": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "integer"},
				"description": "Zero-based indices of all correct options for multiple-select. Empty array otherwise.",
			},
			"accepted": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "Accepted answers for fill-blank or short-answer, simplest form first. Empty array otherwise.",
			},
			"bool_answer": map[string]any{
				"type":        "boolean",
				"description": "The correct judgment for true-false. false otherwise.",
			},
			"numeric_answer": map[string]any{
				"type":        "number",
				"description": "The correct value for numeric questions. 0 otherwise.",
			},
			"tolerance": map[string]any{
				"type":        "number",
				"description": "Absolute tolerance for numeric comparison, 0 for exact.",
			},
			"unit": map[string]any{
				"type":        "string",
				"description": "Unit label for numeric answers, e.g. \"cm\". Empty string if none.",
			},
			"hints": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"level": map[string]any{
							"type":        "integer",
							"minimum":     1,
							"maximum":     3,
							"description": "1 for the gentlest hint through 3 for the most direct",
						},
						"kind": map[string]any{
							"type":        "string",
							"enum":        []any{"nudge", "guidance", "reveal"},
							"description": "nudge for level 1, guidance for level 2, reveal for level 3",
						},
						"text": map[string]any{
							"type":        "string",
							"description": "The hint text, age-appropriate",
						},
					},
					"required":             []any{"level", "kind", "text"},
					"additionalProperties": false,
				},
				"minItems":    3,
				"maxItems":    3,
				"description": "Exactly three hints ordered from gentlest to most direct",
			},
			"worked_example": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"intro": map[string]any{
						"type":        "string",
						"description": "One sentence introducing the similar problem",
					},
					"steps": map[string]any{
						"type":        "array",
						"items":       map[string]any{"type": "string"},
						"minItems":    2,
						"description": "Step-by-step solution of a SIMILAR problem, never this question",
					},
				},
				"required":             []any{"intro", "steps"},
				"additionalProperties": false,
				"description":          "A worked example solving a similar problem",
			},
			"cognitive_load": map[string]any{
				"type":        "string",
				"enum":        []any{"low", "medium", "high"},
				"description": "How demanding the question format is, independent of difficulty",
			},
			"estimated_time_seconds": map[string]any{
				"type":        "integer",
				"minimum":     5,
				"maximum":     600,
				"description": "Seconds a child at this level needs for the question",
			},
			"points": map[string]any{
				"type":        "integer",
				"minimum":     1,
				"maximum":     100,
				"description": "Display point value, typically 5-25",
			},
		},
		"required": []any{
			"prompt", "type", "subtopic", "choices", "correct_index",
			"correct_indices", "accepted", "bool_answer", "numeric_answer",
			"tolerance", "unit", "hints", "worked_example", "cognitive_load",
			"estimated_time_seconds", "points",
		},
		"additionalProperties": false,
	},
}
