package question

import (
	"encoding/json"
	"testing"
)

func validQuestion() *Question {
	return &Question{
		ID:            "frac-add-001",
		Topic:         "fractions",
		Subtopic:      "addition",
		Type:          TypeMultipleChoice,
		Difficulty:    DifficultyMedium,
		CognitiveLoad: LoadMedium,
		Prompt:        "What is 1/4 + 1/4?",
		Content: MultipleChoice{
			Choices:      []string{"1/2", "2/8", "1/4", "2/4 of a whole"},
			CorrectIndex: 0,
		},
		Scaffolding: Scaffolding{
			Hints: []Hint{
				{Level: 1, Kind: HintNudge, Text: "The denominators already match."},
				{Level: 2, Kind: HintGuidance, Text: "Add the numerators and keep the denominator."},
				{Level: 3, Kind: HintReveal, Text: "1 + 1 = 2, so the answer is 2/4, which simplifies to 1/2."},
			},
			WorkedExample: &WorkedExample{
				Intro: "Adding fractions with the same denominator",
				Steps: []string{"Check the denominators match", "Add the numerators", "Simplify"},
			},
		},
		EstimatedTimeSeconds: 30,
		Points:               10,
	}
}

func TestQuestionValidate(t *testing.T) {
	q := validQuestion()
	if err := q.Validate(); err != nil {
		t.Fatalf("valid question rejected: %v", err)
	}
}

func TestQuestionValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Question)
	}{
		{"missing id", func(q *Question) { q.ID = "" }},
		{"missing topic", func(q *Question) { q.Topic = "" }},
		{"unknown type", func(q *Question) { q.Type = "essay" }},
		{"unknown difficulty", func(q *Question) { q.Difficulty = "expert" }},
		{"unknown load", func(q *Question) { q.CognitiveLoad = "extreme" }},
		{"missing prompt", func(q *Question) { q.Prompt = "" }},
		{"nil content", func(q *Question) { q.Content = nil }},
		{"content type mismatch", func(q *Question) { q.Content = TrueFalse{Answer: true} }},
		{"bad correct index", func(q *Question) {
			q.Content = MultipleChoice{Choices: []string{"a", "b"}, CorrectIndex: 5}
		}},
		{"hint level out of range", func(q *Question) {
			q.Scaffolding.Hints = []Hint{{Level: 4, Kind: HintNudge, Text: "x"}}
		}},
		{"hint levels not increasing", func(q *Question) {
			q.Scaffolding.Hints = []Hint{
				{Level: 2, Kind: HintNudge, Text: "a"},
				{Level: 1, Kind: HintGuidance, Text: "b"},
			}
		}},
		{"duplicate hint level", func(q *Question) {
			q.Scaffolding.Hints = []Hint{
				{Level: 1, Kind: HintNudge, Text: "a"},
				{Level: 1, Kind: HintGuidance, Text: "b"},
			}
		}},
		{"empty hint text", func(q *Question) {
			q.Scaffolding.Hints = []Hint{{Level: 1, Kind: HintNudge, Text: ""}}
		}},
		{"worked example without steps", func(q *Question) {
			q.Scaffolding.WorkedExample = &WorkedExample{Intro: "x"}
		}},
		{"negative time", func(q *Question) { q.EstimatedTimeSeconds = -1 }},
		{"negative points", func(q *Question) { q.Points = -5 }},
	}

	for _, tc := range tests {
		q := validQuestion()
		tc.mutate(q)
		if err := q.Validate(); err == nil {
			t.Errorf("%s: Validate() = nil, want error", tc.name)
		}
	}
}

func TestQuestionJSONRoundTrip(t *testing.T) {
	q := validQuestion()

	data, err := json.Marshal(q)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var got Question
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	mc, ok := got.Content.(MultipleChoice)
	if !ok {
		t.Fatalf("content decoded as %T, want MultipleChoice", got.Content)
	}
	if mc.CorrectIndex != 0 || len(mc.Choices) != 4 {
		t.Errorf("content fields lost in round trip: %+v", mc)
	}
	if len(got.Scaffolding.Hints) != 3 {
		t.Errorf("hints lost in round trip: %d", len(got.Scaffolding.Hints))
	}
	if got.Scaffolding.WorkedExample == nil {
		t.Error("worked example lost in round trip")
	}
	if err := got.Validate(); err != nil {
		t.Errorf("round-tripped question invalid: %v", err)
	}
}

func TestQuestionJSONNumericVariant(t *testing.T) {
	raw := `{
		"id": "num-1",
		"topic": "decimals",
		"type": "numeric",
		"difficulty": "easy",
		"cognitiveLoad": "low",
		"prompt": "What is 0.2 + 0.3?",
		"content": {"answer": 0.5, "tolerance": 0.001},
		"estimatedTimeSeconds": 20,
		"points": 10
	}`

	var q Question
	if err := json.Unmarshal([]byte(raw), &q); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	n, ok := q.Content.(Numeric)
	if !ok {
		t.Fatalf("content decoded as %T, want Numeric", q.Content)
	}
	if n.Answer != 0.5 {
		t.Errorf("answer = %v, want 0.5", n.Answer)
	}
	if !CheckAnswer(&q, "1/2") {
		t.Error("decoded numeric question rejects equivalent fraction")
	}
}

func TestScaffoldingTotalHints(t *testing.T) {
	q := validQuestion()
	if got := q.Scaffolding.TotalHints(); got != 3 {
		t.Errorf("TotalHints() = %d, want 3", got)
	}
	var empty Scaffolding
	if got := empty.TotalHints(); got != 0 {
		t.Errorf("TotalHints() on empty = %d, want 0", got)
	}
}
