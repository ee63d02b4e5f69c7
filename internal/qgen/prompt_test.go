package qgen

import (
	"fmt"
	"strings"
	"testing"

	"github.com/sproutedu/sprout/internal/question"
)

func TestBuildUserMessage_Basics(t *testing.T) {
	input := GenerateInput{Topic: "fractions", Difficulty: question.DifficultyMedium}
	msg := buildUserMessage(input, DefaultConfig())

	wantParts := []string{
		"Topic: fractions",
		"Difficulty: medium (two steps or a less familiar representation)",
		"Allowed types: multiple-choice, multiple-select, fill-blank, true-false, numeric, short-answer",
		"Already asked in this session:\nNone",
		"Recent mistakes by this student:\nNone",
	}
	for _, part := range wantParts {
		if !strings.Contains(msg, part) {
			t.Errorf("expected message to contain %q\ngot:\n%s", part, msg)
		}
	}
	if strings.Contains(msg, "Subtopic:") {
		t.Error("unexpected subtopic line for empty subtopic")
	}
	if strings.Contains(msg, "Learner profile:") {
		t.Error("unexpected learner profile section")
	}
}

func TestBuildUserMessage_Subtopic(t *testing.T) {
	input := GenerateInput{
		Topic:      "fractions",
		Subtopic:   "equivalent-fractions",
		Difficulty: question.DifficultyEasy,
	}
	msg := buildUserMessage(input, DefaultConfig())

	if !strings.Contains(msg, "Subtopic: equivalent-fractions") {
		t.Errorf("expected subtopic line, got:\n%s", msg)
	}
}

func TestBuildUserMessage_TypeFilter(t *testing.T) {
	input := GenerateInput{
		Topic:      "decimals",
		Difficulty: question.DifficultyHard,
		Types:      []question.Type{question.TypeNumeric, question.TypeTrueFalse},
	}
	msg := buildUserMessage(input, DefaultConfig())

	if !strings.Contains(msg, "Allowed types: numeric, true-false") {
		t.Errorf("expected filtered type list, got:\n%s", msg)
	}
}

func TestBuildUserMessage_TruncatesPriorPrompts(t *testing.T) {
	input := GenerateInput{Topic: "addition", Difficulty: question.DifficultyEasy}
	for i := 1; i <= 12; i++ {
		input.PriorPrompts = append(input.PriorPrompts, fmt.Sprintf("Solve puzzle %d", i))
	}
	msg := buildUserMessage(input, DefaultConfig())

	// Default keeps the last 8.
	for i := 1; i <= 4; i++ {
		if strings.Contains(msg, fmt.Sprintf("Solve puzzle %d\n", i)) {
			t.Errorf("expected puzzle %d to be dropped", i)
		}
	}
	if !strings.Contains(msg, "Solve puzzle 5") {
		t.Error("expected puzzle 5 to be kept")
	}
	if !strings.Contains(msg, "Solve puzzle 12") {
		t.Error("expected puzzle 12 to be kept")
	}
	if !strings.Contains(msg, "1. Solve puzzle 5") {
		t.Error("expected the kept list to be renumbered from 1")
	}
}

func TestBuildUserMessage_TruncatesRecentErrors(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxRecentErrors = 2

	input := GenerateInput{
		Topic:      "addition",
		Difficulty: question.DifficultyEasy,
		RecentErrors: []string{
			"first mistake",
			"second mistake",
			"third mistake",
		},
	}
	msg := buildUserMessage(input, cfg)

	if strings.Contains(msg, "first mistake") {
		t.Error("expected oldest mistake to be dropped")
	}
	if !strings.Contains(msg, "1. second mistake") {
		t.Errorf("expected second mistake kept, got:\n%s", msg)
	}
	if !strings.Contains(msg, "2. third mistake") {
		t.Errorf("expected third mistake kept, got:\n%s", msg)
	}
}

func TestBuildUserMessage_LearnerProfile(t *testing.T) {
	input := GenerateInput{
		Topic:          "multiplication",
		Difficulty:     question.DifficultyMedium,
		LearnerProfile: "Struggles with carrying. Responds well to visual grouping.",
	}
	msg := buildUserMessage(input, DefaultConfig())

	if !strings.Contains(msg, "Learner profile:\nStruggles with carrying.") {
		t.Errorf("expected learner profile section, got:\n%s", msg)
	}
}

func TestRecentList(t *testing.T) {
	tests := []struct {
		name  string
		items []string
		max   int
		want  string
	}{
		{name: "empty", items: nil, max: 5, want: "None"},
		{name: "single", items: []string{"a"}, max: 5, want: "1. a"},
		{name: "several", items: []string{"a", "b"}, max: 5, want: "1. a\n2. b"},
		{name: "over limit keeps tail", items: []string{"a", "b", "c"}, max: 2, want: "1. b\n2. c"},
		{name: "zero max keeps all", items: []string{"a", "b"}, max: 0, want: "1. a\n2. b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := recentList(tt.items, tt.max); got != tt.want {
				t.Errorf("recentList() = %q, want %q", got, tt.want)
			}
		})
	}
}
