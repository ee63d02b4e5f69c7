package qgen

import (
	"strings"
	"testing"

	"github.com/sproutedu/sprout/internal/question"
)

// generatedNumeric builds a question that passes the full default chain.
func generatedNumeric() *question.Question {
	return &question.Question{
		ID:            "q-test",
		Topic:         "addition",
		Subtopic:      "three-digit-addition",
		Type:          question.TypeNumeric,
		Difficulty:    question.DifficultyMedium,
		CognitiveLoad: question.LoadLow,
		Prompt:        "What is 345 + 278?",
		Content:       question.Numeric{Answer: 623},
		Scaffolding: question.Scaffolding{
			Hints: []question.Hint{
				{Level: 1, Kind: question.HintNudge, Text: "Start with the ones column."},
				{Level: 2, Kind: question.HintGuidance, Text: "5 + 8 = 13, write 3 and carry 1."},
				{Level: 3, Kind: question.HintReveal, Text: "The total is a bit over 600."},
			},
			WorkedExample: &question.WorkedExample{
				Intro: "Let's add 234 + 156.",
				Steps: []string{
					"Add the ones: 4 + 6 = 10. Write 0, carry 1.",
					"Add the tens: 3 + 5 + 1 = 9.",
					"Add the hundreds: 2 + 1 = 3. The sum is 390.",
				},
			},
		},
		EstimatedTimeSeconds: 40,
		Points:               10,
	}
}

func generatedInput() GenerateInput {
	return GenerateInput{Topic: "addition", Difficulty: question.DifficultyMedium}
}

func TestValidationError_Error(t *testing.T) {
	err := &ValidationError{Validator: "metadata", Message: "points 0 outside 1..100"}
	want := `validator "metadata": points 0 outside 1..100`
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestDefaultConfig_ValidatorChain(t *testing.T) {
	cfg := DefaultConfig()

	want := []string{"structural", "scaffolding", "metadata", "arithmetic"}
	if len(cfg.Validators) != len(want) {
		t.Fatalf("expected %d validators, got %d", len(want), len(cfg.Validators))
	}
	for i, name := range want {
		if got := cfg.Validators[i].Name(); got != name {
			t.Errorf("validator %d = %q, want %q", i, got, name)
		}
	}
}

func TestDefaultConfig_Values(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.MaxTokens != 1024 {
		t.Errorf("MaxTokens = %d, want 1024", cfg.MaxTokens)
	}
	if cfg.Temperature != 0.7 {
		t.Errorf("Temperature = %f, want 0.7", cfg.Temperature)
	}
	if cfg.MaxPriorPrompts != 8 {
		t.Errorf("MaxPriorPrompts = %d, want 8", cfg.MaxPriorPrompts)
	}
	if cfg.MaxRecentErrors != 5 {
		t.Errorf("MaxRecentErrors = %d, want 5", cfg.MaxRecentErrors)
	}
}

func TestStructuralValidator(t *testing.T) {
	v := &StructuralValidator{}
	input := generatedInput()

	tests := []struct {
		name    string
		mutate  func(q *question.Question)
		wantErr string
	}{
		{
			name:   "valid question passes",
			mutate: func(q *question.Question) {},
		},
		{
			name:    "empty prompt",
			mutate:  func(q *question.Question) { q.Prompt = "" },
			wantErr: "prompt",
		},
		{
			name: "overlong prompt",
			mutate: func(q *question.Question) {
				q.Prompt = strings.Repeat("x", 501)
			},
			wantErr: "500 characters",
		},
		{
			name: "overlong hint",
			mutate: func(q *question.Question) {
				q.Scaffolding.Hints[0].Text = strings.Repeat("x", 301)
			},
			wantErr: "hint text exceeds",
		},
		{
			name: "too many worked example steps",
			mutate: func(q *question.Question) {
				q.Scaffolding.WorkedExample.Steps = make([]string, 9)
				for i := range q.Scaffolding.WorkedExample.Steps {
					q.Scaffolding.WorkedExample.Steps[i] = "step"
				}
			},
			wantErr: "more than 8 steps",
		},
		{
			name: "overlong worked example step",
			mutate: func(q *question.Question) {
				q.Scaffolding.WorkedExample.Steps[0] = strings.Repeat("x", 301)
			},
			wantErr: "step exceeds",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := generatedNumeric()
			tt.mutate(q)
			err := v.Validate(q, input)
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Message, tt.wantErr) {
				t.Errorf("message %q does not contain %q", err.Message, tt.wantErr)
			}
		})
	}
}

func TestScaffoldingValidator(t *testing.T) {
	v := &ScaffoldingValidator{}
	input := generatedInput()

	tests := []struct {
		name    string
		mutate  func(q *question.Question)
		wantErr string
	}{
		{
			name:   "full ladder passes",
			mutate: func(q *question.Question) {},
		},
		{
			name: "two hints rejected",
			mutate: func(q *question.Question) {
				q.Scaffolding.Hints = q.Scaffolding.Hints[:2]
			},
			wantErr: "exactly 3 hints",
		},
		{
			name: "wrong kind order",
			mutate: func(q *question.Question) {
				q.Scaffolding.Hints[0].Kind = question.HintGuidance
			},
			wantErr: `kind "guidance", want "nudge"`,
		},
		{
			name: "missing worked example",
			mutate: func(q *question.Question) {
				q.Scaffolding.WorkedExample = nil
			},
			wantErr: "worked example is missing",
		},
		{
			name: "single step worked example",
			mutate: func(q *question.Question) {
				q.Scaffolding.WorkedExample.Steps = q.Scaffolding.WorkedExample.Steps[:1]
			},
			wantErr: "at least 2",
		},
		{
			name: "blank step",
			mutate: func(q *question.Question) {
				q.Scaffolding.WorkedExample.Steps[1] = "   "
			},
			wantErr: "step 2 is blank",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := generatedNumeric()
			tt.mutate(q)
			err := v.Validate(q, input)
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Message, tt.wantErr) {
				t.Errorf("message %q does not contain %q", err.Message, tt.wantErr)
			}
		})
	}
}

func TestMetadataValidator(t *testing.T) {
	v := &MetadataValidator{}

	tests := []struct {
		name      string
		mutate    func(q *question.Question, input *GenerateInput)
		wantErr   string
		retryable bool
	}{
		{
			name:   "matching metadata passes",
			mutate: func(q *question.Question, input *GenerateInput) {},
		},
		{
			name: "topic mismatch is not retryable",
			mutate: func(q *question.Question, input *GenerateInput) {
				q.Topic = "subtraction"
			},
			wantErr: "does not match requested",
		},
		{
			name: "difficulty mismatch",
			mutate: func(q *question.Question, input *GenerateInput) {
				q.Difficulty = question.DifficultyHard
			},
			wantErr: `difficulty "hard"`,
		},
		{
			name: "type outside requested set",
			mutate: func(q *question.Question, input *GenerateInput) {
				input.Types = []question.Type{question.TypeMultipleChoice}
			},
			wantErr:   "not in the allowed set",
			retryable: true,
		},
		{
			name: "estimated time too low",
			mutate: func(q *question.Question, input *GenerateInput) {
				q.EstimatedTimeSeconds = 2
			},
			wantErr:   "outside 5..600",
			retryable: true,
		},
		{
			name: "points too high",
			mutate: func(q *question.Question, input *GenerateInput) {
				q.Points = 500
			},
			wantErr:   "outside 1..100",
			retryable: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := generatedNumeric()
			input := generatedInput()
			tt.mutate(q, &input)
			err := v.Validate(q, input)
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Message, tt.wantErr) {
				t.Errorf("message %q does not contain %q", err.Message, tt.wantErr)
			}
			if err.Retryable != tt.retryable {
				t.Errorf("Retryable = %v, want %v", err.Retryable, tt.retryable)
			}
		})
	}
}

func TestMetadataValidator_EmptyInputSkipsMatching(t *testing.T) {
	v := &MetadataValidator{}
	q := generatedNumeric()
	q.Topic = "anything"
	q.Difficulty = question.DifficultyAdvanced

	// No requested topic or difficulty means nothing to match against.
	err := v.Validate(q, GenerateInput{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestGenerableTypes(t *testing.T) {
	types := GenerableTypes()
	if len(types) != 6 {
		t.Fatalf("expected 6 generable types, got %d", len(types))
	}
	for _, excluded := range []question.Type{
		question.TypeMatching,
		question.TypeOrdering,
		question.TypeOpenResponse,
	} {
		if Generable(excluded) {
			t.Errorf("%s should not be generable", excluded)
		}
	}
	if !Generable(question.TypeNumeric) {
		t.Error("numeric should be generable")
	}
}
