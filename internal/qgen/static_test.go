package qgen

import (
	"context"
	"strings"
	"testing"

	"github.com/sproutedu/sprout/internal/question"
)

func TestStaticGenerator_PicksRequestedDifficulty(t *testing.T) {
	gen := NewStatic(nil)

	q, err := gen.Generate(context.Background(), GenerateInput{
		Topic:      "fractions",
		Difficulty: question.DifficultyEasy,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.Difficulty != question.DifficultyEasy {
		t.Errorf("difficulty = %q, want easy", q.Difficulty)
	}
	if q.Topic != "fractions" {
		t.Errorf("topic = %q, want fractions", q.Topic)
	}
	if q.ID == "" || strings.HasPrefix(q.ID, "fractions-") {
		t.Errorf("expected a fresh ID, got %q", q.ID)
	}
}

func TestStaticGenerator_FreshIDPerServe(t *testing.T) {
	gen := NewStatic(nil)
	input := GenerateInput{Topic: "decimals", Difficulty: question.DifficultyEasy}

	q1, err := gen.Generate(context.Background(), input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	q2, err := gen.Generate(context.Background(), input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q1.ID == q2.ID {
		t.Error("expected distinct IDs for repeated serves")
	}
}

func TestStaticGenerator_SkipsAskedPrompts(t *testing.T) {
	gen := NewStatic(nil)
	input := GenerateInput{Topic: "fractions", Difficulty: question.DifficultyEasy}

	first, err := gen.Generate(context.Background(), input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	input.PriorPrompts = []string{first.Prompt}
	second, err := gen.Generate(context.Background(), input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if second.Prompt == first.Prompt {
		t.Error("expected a different question once the first was asked")
	}
}

func TestStaticGenerator_NearestDifficultyFallback(t *testing.T) {
	catalog := map[string][]question.Question{
		"counting": {
			{
				ID: "c-1", Topic: "counting", Type: question.TypeNumeric,
				Difficulty: question.DifficultyMedium, CognitiveLoad: question.LoadLow,
				Prompt:  "What is 5 + 5?",
				Content: question.Numeric{Answer: 10},
			},
		},
	}
	gen := NewStatic(catalog)

	q, err := gen.Generate(context.Background(), GenerateInput{
		Topic:      "counting",
		Difficulty: question.DifficultyAdvanced,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.Difficulty != question.DifficultyMedium {
		t.Errorf("expected the nearest available difficulty, got %q", q.Difficulty)
	}
}

func TestStaticGenerator_RepeatsWhenExhausted(t *testing.T) {
	catalog := map[string][]question.Question{
		"counting": {
			{
				ID: "c-1", Topic: "counting", Type: question.TypeNumeric,
				Difficulty: question.DifficultyEasy, CognitiveLoad: question.LoadLow,
				Prompt:  "What is 5 + 5?",
				Content: question.Numeric{Answer: 10},
			},
		},
	}
	gen := NewStatic(catalog)

	q, err := gen.Generate(context.Background(), GenerateInput{
		Topic:        "counting",
		Difficulty:   question.DifficultyEasy,
		PriorPrompts: []string{"What is 5 + 5?"},
	})
	if err != nil {
		t.Fatalf("expected a repeat rather than an error, got: %v", err)
	}
	if q.Prompt != "What is 5 + 5?" {
		t.Errorf("unexpected prompt: %q", q.Prompt)
	}
}

func TestStaticGenerator_PrefersRequestedType(t *testing.T) {
	catalog := map[string][]question.Question{
		"counting": {
			{
				ID: "c-1", Topic: "counting", Type: question.TypeNumeric,
				Difficulty: question.DifficultyMedium, CognitiveLoad: question.LoadLow,
				Prompt:  "What is 5 + 5?",
				Content: question.Numeric{Answer: 10},
			},
			{
				ID: "c-2", Topic: "counting", Type: question.TypeMultipleChoice,
				Difficulty: question.DifficultyMedium, CognitiveLoad: question.LoadLow,
				Prompt:  "Which number comes after 9?",
				Content: question.MultipleChoice{Choices: []string{"10", "8"}, CorrectIndex: 0},
			},
		},
	}
	gen := NewStatic(catalog)

	q, err := gen.Generate(context.Background(), GenerateInput{
		Topic:      "counting",
		Difficulty: question.DifficultyMedium,
		Types:      []question.Type{question.TypeMultipleChoice},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.Type != question.TypeMultipleChoice {
		t.Errorf("type = %q, want multiple-choice", q.Type)
	}
}

func TestStaticGenerator_UnknownTopic(t *testing.T) {
	gen := NewStatic(nil)

	_, err := gen.Generate(context.Background(), GenerateInput{
		Topic:      "geometry",
		Difficulty: question.DifficultyEasy,
	})
	if err == nil {
		t.Fatal("expected error for unknown topic")
	}
	if !strings.Contains(err.Error(), `"geometry"`) {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestStaticGenerator_Topics(t *testing.T) {
	gen := NewStatic(nil)

	got := gen.Topics()
	want := []string{"decimals", "fractions", "multiplication"}
	if len(got) != len(want) {
		t.Fatalf("topics = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("topics[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestDefaultCatalog_AllEntriesValid(t *testing.T) {
	seen := make(map[string]bool)
	for topic, pool := range DefaultCatalog() {
		if len(pool) == 0 {
			t.Errorf("topic %q has no questions", topic)
		}
		for _, q := range pool {
			if err := q.Validate(); err != nil {
				t.Errorf("%s: %v", q.ID, err)
			}
			if q.Topic != topic {
				t.Errorf("%s: topic %q filed under %q", q.ID, q.Topic, topic)
			}
			if seen[q.ID] {
				t.Errorf("duplicate catalog ID %q", q.ID)
			}
			seen[q.ID] = true
		}
	}
}
