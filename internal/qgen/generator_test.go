package qgen

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/sproutedu/sprout/internal/llm"
	"github.com/sproutedu/sprout/internal/question"
)

func testInput() GenerateInput {
	return GenerateInput{
		Topic:      "addition",
		Subtopic:   "three-digit-addition",
		Difficulty: question.DifficultyMedium,
	}
}

func numericOutputJSON() json.RawMessage {
	return json.RawMessage(`{
		"prompt": "What is 345 + 278?",
		"type": "numeric",
		"subtopic": "three-digit-addition",
		"choices": [],
		"correct_index": 0,
		"correct_indices": [],
		"accepted": [],
		"bool_answer": false,
		"numeric_answer": 623,
		"tolerance": 0,
		"unit": "",
		"hints": [
			{"level": 1, "kind": "nudge", "text": "Start with the ones column."},
			{"level": 2, "kind": "guidance", "text": "5 + 8 = 13, so write 3 and carry 1 into the tens."},
			{"level": 3, "kind": "reveal", "text": "Carry through the tens and hundreds. The total is a bit over 600."}
		],
		"worked_example": {
			"intro": "Let's add 234 + 156.",
			"steps": [
				"Add the ones: 4 + 6 = 10. Write 0, carry 1.",
				"Add the tens: 3 + 5 + 1 = 9.",
				"Add the hundreds: 2 + 1 = 3. The sum is 390."
			]
		},
		"cognitive_load": "low",
		"estimated_time_seconds": 40,
		"points": 10
	}`)
}

func choiceOutputJSON() json.RawMessage {
	return json.RawMessage(`{
		"prompt": "Which fraction is equal to one half?",
		"type": "multiple-choice",
		"subtopic": "",
		"choices": ["2/4", "2/3", "3/4", "1/3"],
		"correct_index": 0,
		"correct_indices": [],
		"accepted": [],
		"bool_answer": false,
		"numeric_answer": 0,
		"tolerance": 0,
		"unit": "",
		"hints": [
			{"level": 1, "kind": "nudge", "text": "Half means the top is half of the bottom."},
			{"level": 2, "kind": "guidance", "text": "Check each option: is the numerator half the denominator?"},
			{"level": 3, "kind": "reveal", "text": "2 is half of 4."}
		],
		"worked_example": {
			"intro": "Is 3/6 equal to one half?",
			"steps": [
				"3 is half of 6.",
				"So 3/6 equals 1/2."
			]
		},
		"cognitive_load": "low",
		"estimated_time_seconds": 30,
		"points": 8
	}`)
}

func TestGenerate_Numeric(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: numericOutputJSON()})
	gen := New(mock, DefaultConfig())

	q, err := gen.Generate(context.Background(), testInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.ID == "" {
		t.Error("expected a generated question ID")
	}
	if q.Prompt != "What is 345 + 278?" {
		t.Errorf("unexpected prompt: %q", q.Prompt)
	}
	if q.Topic != "addition" {
		t.Errorf("topic = %q, want %q", q.Topic, "addition")
	}
	if q.Difficulty != question.DifficultyMedium {
		t.Errorf("difficulty = %q, want medium", q.Difficulty)
	}
	num, ok := q.Content.(question.Numeric)
	if !ok {
		t.Fatalf("content type = %T, want Numeric", q.Content)
	}
	if num.Answer != 623 {
		t.Errorf("answer = %v, want 623", num.Answer)
	}
	if q.Scaffolding.TotalHints() != 3 {
		t.Errorf("hints = %d, want 3", q.Scaffolding.TotalHints())
	}
	if q.Scaffolding.WorkedExample == nil {
		t.Error("expected a worked example")
	}
}

func TestGenerate_MultipleChoice(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: choiceOutputJSON()})
	input := GenerateInput{Topic: "fractions", Difficulty: question.DifficultyEasy}
	gen := New(mock, DefaultConfig())

	q, err := gen.Generate(context.Background(), input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	mc, ok := q.Content.(question.MultipleChoice)
	if !ok {
		t.Fatalf("content type = %T, want MultipleChoice", q.Content)
	}
	if len(mc.Choices) != 4 {
		t.Errorf("choices = %d, want 4", len(mc.Choices))
	}
	if mc.CorrectIndex != 0 {
		t.Errorf("correct index = %d, want 0", mc.CorrectIndex)
	}
	// Empty model subtopic falls back to the requested one.
	if q.Subtopic != "" {
		t.Errorf("subtopic = %q, want empty", q.Subtopic)
	}
}

func TestGenerate_NonGenerableType(t *testing.T) {
	raw := json.RawMessage(`{
		"prompt": "Match these.",
		"type": "matching",
		"subtopic": "",
		"choices": [],
		"correct_index": 0,
		"correct_indices": [],
		"accepted": [],
		"bool_answer": false,
		"numeric_answer": 0,
		"tolerance": 0,
		"unit": "",
		"hints": [],
		"worked_example": {"intro": "", "steps": []},
		"cognitive_load": "low",
		"estimated_time_seconds": 30,
		"points": 5
	}`)
	mock := llm.NewMockProvider(llm.MockResponse{Content: raw})
	gen := New(mock, DefaultConfig())

	_, err := gen.Generate(context.Background(), testInput())
	if err == nil {
		t.Fatal("expected error for non-generable type")
	}
	if !strings.Contains(err.Error(), "matching") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestGenerate_ScaffoldingValidationFailure(t *testing.T) {
	// Two hints instead of three.
	raw := json.RawMessage(`{
		"prompt": "What is 10 + 5?",
		"type": "numeric",
		"subtopic": "",
		"choices": [],
		"correct_index": 0,
		"correct_indices": [],
		"accepted": [],
		"bool_answer": false,
		"numeric_answer": 15,
		"tolerance": 0,
		"unit": "",
		"hints": [
			{"level": 1, "kind": "nudge", "text": "Count up from ten."},
			{"level": 2, "kind": "guidance", "text": "Ten plus five more."}
		],
		"worked_example": {"intro": "Adding 10 + 3.", "steps": ["Start at 10.", "Count up 3: 11, 12, 13."]},
		"cognitive_load": "low",
		"estimated_time_seconds": 15,
		"points": 5
	}`)
	mock := llm.NewMockProvider(llm.MockResponse{Content: raw})
	gen := New(mock, DefaultConfig())

	_, err := gen.Generate(context.Background(), testInput())
	if err == nil {
		t.Fatal("expected validation error")
	}
	var valErr *ValidationError
	if !errors.As(err, &valErr) {
		t.Fatalf("expected *ValidationError, got %T", err)
	}
	if valErr.Validator != "scaffolding" {
		t.Errorf("expected scaffolding validator, got %q", valErr.Validator)
	}
}

func TestGenerate_StructuralValidationFailure(t *testing.T) {
	// Correct index out of range.
	raw := json.RawMessage(`{
		"prompt": "Pick one.",
		"type": "multiple-choice",
		"subtopic": "",
		"choices": ["a", "b"],
		"correct_index": 5,
		"correct_indices": [],
		"accepted": [],
		"bool_answer": false,
		"numeric_answer": 0,
		"tolerance": 0,
		"unit": "",
		"hints": [
			{"level": 1, "kind": "nudge", "text": "h1"},
			{"level": 2, "kind": "guidance", "text": "h2"},
			{"level": 3, "kind": "reveal", "text": "h3"}
		],
		"worked_example": {"intro": "x", "steps": ["s1", "s2"]},
		"cognitive_load": "low",
		"estimated_time_seconds": 20,
		"points": 5
	}`)
	mock := llm.NewMockProvider(llm.MockResponse{Content: raw})
	gen := New(mock, DefaultConfig())

	_, err := gen.Generate(context.Background(), testInput())
	if err == nil {
		t.Fatal("expected validation error")
	}
	var valErr *ValidationError
	if !errors.As(err, &valErr) {
		t.Fatalf("expected *ValidationError, got %T", err)
	}
	if valErr.Validator != "structural" {
		t.Errorf("expected structural validator, got %q", valErr.Validator)
	}
}

// rejectAll always fails, for ordering tests.
type rejectAll struct{ name string }

func (v *rejectAll) Name() string { return v.name }
func (v *rejectAll) Validate(*question.Question, GenerateInput) *ValidationError {
	return &ValidationError{Validator: v.name, Message: "rejected", Retryable: true}
}

// tracking records whether it was called.
type tracking struct{ called bool }

func (v *tracking) Name() string { return "tracking" }
func (v *tracking) Validate(*question.Question, GenerateInput) *ValidationError {
	v.called = true
	return nil
}

func TestGenerate_ValidatorOrder(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: numericOutputJSON()})
	tracker := &tracking{}
	cfg := DefaultConfig()
	cfg.Validators = []Validator{&rejectAll{name: "first"}, tracker}
	gen := New(mock, cfg)

	_, err := gen.Generate(context.Background(), testInput())
	if err == nil {
		t.Fatal("expected first validator to reject")
	}
	var valErr *ValidationError
	if !errors.As(err, &valErr) {
		t.Fatalf("expected *ValidationError, got %T", err)
	}
	if valErr.Validator != "first" {
		t.Errorf("expected error from 'first', got %q", valErr.Validator)
	}
	if tracker.called {
		t.Error("second validator should not have been called")
	}
}

func TestGenerate_NoValidators(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: numericOutputJSON()})
	cfg := DefaultConfig()
	cfg.Validators = nil
	gen := New(mock, cfg)

	q, err := gen.Generate(context.Background(), testInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.Prompt != "What is 345 + 278?" {
		t.Errorf("unexpected prompt: %q", q.Prompt)
	}
}

func TestGenerate_PriorPromptsInMessage(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: numericOutputJSON()})
	gen := New(mock, DefaultConfig())

	input := testInput()
	input.PriorPrompts = []string{"What is 1+1?", "What is 2+2?", "What is 3+3?"}
	if _, err := gen.Generate(context.Background(), input); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 call, got %d", mock.CallCount())
	}
	userMsg := mock.Calls[0].Messages[0].Content
	for _, p := range input.PriorPrompts {
		if !strings.Contains(userMsg, p) {
			t.Errorf("expected user message to contain %q", p)
		}
	}
}

func TestGenerate_RecentErrorsInMessage(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: numericOutputJSON()})
	gen := New(mock, DefaultConfig())

	input := testInput()
	input.RecentErrors = []string{
		"Answered 890 for '456 + 378', correct was 834",
		"Answered 1/3 for '1/4 + 1/4', correct was 1/2",
	}
	if _, err := gen.Generate(context.Background(), input); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	userMsg := mock.Calls[0].Messages[0].Content
	for _, e := range input.RecentErrors {
		if !strings.Contains(userMsg, e) {
			t.Errorf("expected user message to contain %q", e)
		}
	}
}

func TestGenerate_ConfigOverrides(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: numericOutputJSON()})
	cfg := DefaultConfig()
	cfg.MaxTokens = 256
	cfg.Temperature = 0.5
	gen := New(mock, cfg)

	if _, err := gen.Generate(context.Background(), testInput()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if mock.Calls[0].MaxTokens != 256 {
		t.Errorf("expected MaxTokens 256, got %d", mock.Calls[0].MaxTokens)
	}
	if mock.Calls[0].Temperature != 0.5 {
		t.Errorf("expected Temperature 0.5, got %f", mock.Calls[0].Temperature)
	}
	if mock.Calls[0].Schema != QuestionSchema {
		t.Error("expected the question schema on the request")
	}
}

func TestGenerate_ProviderError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: errors.New("API error")})
	gen := New(mock, DefaultConfig())

	_, err := gen.Generate(context.Background(), testInput())
	if err == nil {
		t.Fatal("expected error from provider")
	}
	if !strings.Contains(err.Error(), "question generation failed") {
		t.Errorf("unexpected error message: %v", err)
	}
}

func TestBatch_FeedsPromptsForward(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: numericOutputJSON()},
		llm.MockResponse{Content: choiceOutputJSON()},
	)
	gen := New(mock, DefaultConfig())

	qs, err := Batch(context.Background(), gen, testInput(), 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(qs) != 2 {
		t.Fatalf("expected 2 questions, got %d", len(qs))
	}

	secondMsg := mock.Calls[1].Messages[0].Content
	if !strings.Contains(secondMsg, qs[0].Prompt) {
		t.Error("expected the second request to list the first prompt as already asked")
	}
}

func TestBatch_ReturnsPartialOnError(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: numericOutputJSON()},
	)
	gen := New(mock, DefaultConfig())

	qs, err := Batch(context.Background(), gen, testInput(), 3)
	if err == nil {
		t.Fatal("expected error once the mock queue drained")
	}
	if len(qs) != 1 {
		t.Fatalf("expected 1 question before the failure, got %d", len(qs))
	}
}
