package qgen

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/sproutedu/sprout/internal/llm"
	"github.com/sproutedu/sprout/internal/question"
)

// LLMGenerator implements Generator using a model provider.
type LLMGenerator struct {
	provider llm.Provider
	config   Config
}

// New creates a new LLMGenerator with the given provider and config.
func New(provider llm.Provider, cfg Config) *LLMGenerator {
	return &LLMGenerator{provider: provider, config: cfg}
}

// questionOutput is the raw model response before validation.
type questionOutput struct {
	Prompt               string              `json:"prompt"`
	Type                 string              `json:"type"`
	Subtopic             string              `json:"subtopic"`
	Choices              []string            `json:"choices"`
	CorrectIndex         int                 `json:"correct_index"`
	CorrectIndices       []int               `json:"correct_indices"`
	Accepted             []string            `json:"accepted"`
	BoolAnswer           bool                `json:"bool_answer"`
	NumericAnswer        float64             `json:"numeric_answer"`
	Tolerance            float64             `json:"tolerance"`
	Unit                 string              `json:"unit"`
	Hints                []hintOutput        `json:"hints"`
	WorkedExample        workedExampleOutput `json:"worked_example"`
	CognitiveLoad        string              `json:"cognitive_load"`
	EstimatedTimeSeconds int                 `json:"estimated_time_seconds"`
	Points               int                 `json:"points"`
}

type hintOutput struct {
	Level int    `json:"level"`
	Kind  string `json:"kind"`
	Text  string `json:"text"`
}

type workedExampleOutput struct {
	Intro string   `json:"intro"`
	Steps []string `json:"steps"`
}

// Generate produces a single question for the given input context.
func (g *LLMGenerator) Generate(ctx context.Context, input GenerateInput) (*question.Question, error) {
	ctx = llm.WithPurpose(ctx, "question-gen")

	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(input, g.config)},
		},
		Schema:      QuestionSchema,
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("question generation failed: %w", err)
	}

	var raw questionOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, fmt.Errorf("parse generated question: %w", err)
	}

	q, err := buildQuestion(raw, input)
	if err != nil {
		return nil, err
	}

	for _, v := range g.config.Validators {
		if verr := v.Validate(q, input); verr != nil {
			return nil, verr
		}
	}

	return q, nil
}

// buildQuestion maps the raw model output onto the engine's question
// record. Topic and difficulty always come from the request; the model
// does not get to move the band.
func buildQuestion(raw questionOutput, input GenerateInput) (*question.Question, error) {
	content, err := buildContent(raw)
	if err != nil {
		return nil, err
	}

	subtopic := raw.Subtopic
	if subtopic == "" {
		subtopic = input.Subtopic
	}

	hints := make([]question.Hint, len(raw.Hints))
	for i, h := range raw.Hints {
		hints[i] = question.Hint{
			Level: h.Level,
			Kind:  question.HintKind(h.Kind),
			Text:  h.Text,
		}
	}

	var worked *question.WorkedExample
	if len(raw.WorkedExample.Steps) > 0 {
		worked = &question.WorkedExample{
			Intro: raw.WorkedExample.Intro,
			Steps: raw.WorkedExample.Steps,
		}
	}

	return &question.Question{
		ID:            uuid.NewString(),
		Topic:         input.Topic,
		Subtopic:      subtopic,
		Type:          question.Type(raw.Type),
		Difficulty:    input.Difficulty,
		CognitiveLoad: question.CognitiveLoad(raw.CognitiveLoad),
		Prompt:        raw.Prompt,
		Content:       content,
		Scaffolding: question.Scaffolding{
			Hints:         hints,
			WorkedExample: worked,
		},
		EstimatedTimeSeconds: raw.EstimatedTimeSeconds,
		Points:               raw.Points,
	}, nil
}

// buildContent assembles the typed content payload from the flat output
// fields.
func buildContent(raw questionOutput) (question.Content, error) {
	switch question.Type(raw.Type) {
	case question.TypeMultipleChoice:
		return question.MultipleChoice{
			Choices:      raw.Choices,
			CorrectIndex: raw.CorrectIndex,
		}, nil
	case question.TypeMultipleSelect:
		return question.MultipleSelect{
			Choices:        raw.Choices,
			CorrectIndices: raw.CorrectIndices,
		}, nil
	case question.TypeFillBlank:
		return question.FillBlank{Accepted: raw.Accepted}, nil
	case question.TypeTrueFalse:
		return question.TrueFalse{Answer: raw.BoolAnswer}, nil
	case question.TypeNumeric:
		return question.Numeric{
			Answer:    raw.NumericAnswer,
			Tolerance: raw.Tolerance,
			Unit:      raw.Unit,
		}, nil
	case question.TypeShortAnswer:
		return question.ShortAnswer{Accepted: raw.Accepted}, nil
	default:
		return nil, fmt.Errorf("model produced non-generable type %q", raw.Type)
	}
}
