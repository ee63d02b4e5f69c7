package qgen

import (
	"math"
	"strings"
	"testing"

	"github.com/sproutedu/sprout/internal/question"
)

func TestComputeFromPrompt(t *testing.T) {
	tests := []struct {
		name    string
		prompt  string
		want    float64
		wantErr bool
	}{
		{name: "integer addition", prompt: "What is 345 + 278?", want: 623},
		{name: "integer subtraction", prompt: "What is 52 - 17?", want: 35},
		{name: "integer multiplication", prompt: "What is 12 * 8?", want: 96},
		{name: "unicode multiplication", prompt: "What is 6 × 7?", want: 42},
		{name: "spaced division", prompt: "What is 144 / 12?", want: 12},
		{name: "unicode division", prompt: "What is 15 ÷ 3?", want: 5},
		{name: "decimal addition", prompt: "What is 0.5 + 0.25?", want: 0.75},
		{name: "decimal multiplication", prompt: "What is 1.2 * 0.5?", want: 0.6},
		{name: "negative operand", prompt: "What is -5 + 3?", want: -2},
		{name: "fraction addition", prompt: "What is 1/4 + 1/4?", want: 0.5},
		{name: "fraction subtraction", prompt: "What is 3/4 - 1/2?", want: 0.25},
		{name: "fraction multiplication", prompt: "What is 2/3 * 3/4?", want: 0.5},
		{name: "fraction division", prompt: "What is 1/2 ÷ 1/4?", want: 2},
		{name: "fraction of a number is not computable", prompt: "What is 3/4 of 12?", wantErr: true},
		{name: "word problem is not computable", prompt: "Mia has 24 crayons in each of 7 boxes. How many crayons in all?", wantErr: true},
		{name: "no numbers", prompt: "Which is larger?", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := computeFromPrompt(tt.prompt)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %v", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("computeFromPrompt(%q) = %v, want %v", tt.prompt, got, tt.want)
			}
		})
	}
}

func TestArithmeticValidator(t *testing.T) {
	v := &ArithmeticValidator{}
	input := generatedInput()

	tests := []struct {
		name    string
		prompt  string
		content question.Content
		wantErr string
	}{
		{
			name:    "correct answer passes",
			prompt:  "What is 345 + 278?",
			content: question.Numeric{Answer: 623},
		},
		{
			name:    "wrong answer rejected",
			prompt:  "What is 10 + 5?",
			content: question.Numeric{Answer: 16},
			wantErr: "prompt computes to 15 but answer claims 16",
		},
		{
			name:    "wrong fraction answer rejected",
			prompt:  "What is 1/4 + 1/4?",
			content: question.Numeric{Answer: 0.75},
			wantErr: "claims 0.75",
		},
		{
			name:    "tolerance accepts rounded answer",
			prompt:  "What is 10 / 3?",
			content: question.Numeric{Answer: 3.33, Tolerance: 0.01},
		},
		{
			name:    "tolerance still rejects far answers",
			prompt:  "What is 10 / 3?",
			content: question.Numeric{Answer: 3.5, Tolerance: 0.01},
			wantErr: "claims 3.5",
		},
		{
			name:    "word problems pass through",
			prompt:  "A box holds 24 crayons. How many crayons are in 7 boxes?",
			content: question.Numeric{Answer: 168},
		},
		{
			name:    "non-numeric content skipped",
			prompt:  "What is 10 + 5?",
			content: question.MultipleChoice{Choices: []string{"15", "16"}, CorrectIndex: 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := generatedNumeric()
			q.Prompt = tt.prompt
			q.Content = tt.content

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
			if !err.Retryable {
				t.Error("arithmetic failures should be retryable")
			}
		})
	}
}
