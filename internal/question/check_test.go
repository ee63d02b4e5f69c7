package question

import "testing"

func mcQuestion() *Question {
	return &Question{
		ID:            "q1",
		Topic:         "fractions",
		Type:          TypeMultipleChoice,
		Difficulty:    DifficultyMedium,
		CognitiveLoad: LoadLow,
		Prompt:        "Which fraction is larger?",
		Content: MultipleChoice{
			Choices:      []string{"1/3", "3/4", "2/5", "1/2"},
			CorrectIndex: 1,
		},
	}
}

func TestCheckAnswer_MultipleChoice(t *testing.T) {
	q := mcQuestion()

	tests := []struct {
		input string
		want  bool
	}{
		{"2", true},
		{"3/4", true},
		{" 3/4 ", true},
		{"1", false},
		{"1/3", false},
		{"5", false},
		{"", false},
	}

	for _, tc := range tests {
		got := CheckAnswer(q, tc.input)
		if got != tc.want {
			t.Errorf("CheckAnswer(%q) = %v, want %v", tc.input, got, tc.want)
		}
	}
}

func TestCheckAnswer_MultipleSelect(t *testing.T) {
	q := &Question{
		Type: TypeMultipleSelect,
		Content: MultipleSelect{
			Choices:        []string{"2", "3", "4", "5"},
			CorrectIndices: []int{0, 2},
		},
	}

	tests := []struct {
		input string
		want  bool
	}{
		{"1,3", true},
		{"3,1", true},
		{"2, 4", true}, // by text
		{"1", false},
		{"1,2", false},
		{"1,3,4", false},
		{"1,1", false},
	}

	for _, tc := range tests {
		got := CheckAnswer(q, tc.input)
		if got != tc.want {
			t.Errorf("CheckAnswer(%q) = %v, want %v", tc.input, got, tc.want)
		}
	}
}

func TestCheckAnswer_Numeric(t *testing.T) {
	q := &Question{
		Type:    TypeNumeric,
		Content: Numeric{Answer: 0.5},
	}

	tests := []struct {
		input string
		want  bool
	}{
		{"0.5", true},
		{"0.50", true},
		{"1/2", true},
		{"2/4", true},
		{" .5 ", true},
		{"0.51", false},
		{"abc", false},
		{"1/0", false},
	}

	for _, tc := range tests {
		got := CheckAnswer(q, tc.input)
		if got != tc.want {
			t.Errorf("CheckAnswer(%q) = %v, want %v", tc.input, got, tc.want)
		}
	}
}

func TestCheckAnswer_NumericToleranceAndUnit(t *testing.T) {
	q := &Question{
		Type:    TypeNumeric,
		Content: Numeric{Answer: 12.0, Tolerance: 0.1, Unit: "cm"},
	}

	tests := []struct {
		input string
		want  bool
	}{
		{"12", true},
		{"12.05", true},
		{"11.9", true},
		{"12 cm", true},
		{"12.2", false},
	}

	for _, tc := range tests {
		got := CheckAnswer(q, tc.input)
		if got != tc.want {
			t.Errorf("CheckAnswer(%q) = %v, want %v", tc.input, got, tc.want)
		}
	}
}

func TestCheckAnswer_TrueFalse(t *testing.T) {
	plain := &Question{Type: TypeTrueFalse, Content: TrueFalse{Answer: true}}
	explain := &Question{Type: TypeTrueFalse, Content: TrueFalse{Answer: false, RequireExplanation: true}}

	if !CheckAnswer(plain, "true") {
		t.Error("CheckAnswer(true) = false, want true")
	}
	if !CheckAnswer(plain, "T") {
		t.Error("CheckAnswer(T) = false, want true")
	}
	if CheckAnswer(plain, "false") {
		t.Error("CheckAnswer(false) = true, want false")
	}
	if CheckAnswer(plain, "maybe") {
		t.Error("CheckAnswer(maybe) = true, want false")
	}
	if CheckAnswer(explain, "false") {
		t.Error("explanation required: bare answer accepted")
	}
	if !CheckAnswer(explain, "false because the sides differ") {
		t.Error("explanation given but answer rejected")
	}
}

func TestCheckAnswer_ShortAnswerAndFillBlank(t *testing.T) {
	short := &Question{Type: TypeShortAnswer, Content: ShortAnswer{Accepted: []string{"denominator"}}}
	blank := &Question{Type: TypeFillBlank, Content: FillBlank{Accepted: []string{"1/2", "one half"}}}

	if !CheckAnswer(short, "Denominator") {
		t.Error("case-insensitive match failed")
	}
	if CheckAnswer(short, "numerator") {
		t.Error("wrong answer accepted")
	}
	if !CheckAnswer(blank, "2/4") {
		t.Error("equivalent fraction rejected for fill-blank")
	}
	if !CheckAnswer(blank, "one half") {
		t.Error("text variant rejected for fill-blank")
	}
}

func TestCheckAnswer_OpenResponse(t *testing.T) {
	q := &Question{Type: TypeOpenResponse, Content: OpenResponse{MinWords: 3}}

	if CheckAnswer(q, "   ") {
		t.Error("blank open response accepted")
	}
	if CheckAnswer(q, "too short") {
		t.Error("response under min words accepted")
	}
	if !CheckAnswer(q, "the area grows fourfold") {
		t.Error("valid open response rejected")
	}
}

func TestCheckAnswer_Matching(t *testing.T) {
	q := &Question{
		Type: TypeMatching,
		Content: Matching{
			Left:  []string{"1/2", "1/4", "3/4"},
			Right: []string{"0.25", "0.75", "0.5"},
			Pairs: []int{2, 0, 1},
		},
	}

	tests := []struct {
		input string
		want  bool
	}{
		{"0:2,1:0,2:1", true},
		{"2:1, 0:2, 1:0", true},
		{"0:2,1:0,2:0", false},
		{"0:2,1:0", false},
		{"0:2,0:2,1:0", false},
		{"garbage", false},
	}

	for _, tc := range tests {
		got := CheckAnswer(q, tc.input)
		if got != tc.want {
			t.Errorf("CheckAnswer(%q) = %v, want %v", tc.input, got, tc.want)
		}
	}
}

func TestCheckAnswer_Ordering(t *testing.T) {
	q := &Question{
		Type: TypeOrdering,
		Content: Ordering{
			Items:   []string{"0.75", "0.25", "0.5"},
			Correct: []int{1, 2, 0},
		},
	}

	if !CheckAnswer(q, "1,2,0") {
		t.Error("correct order rejected")
	}
	if CheckAnswer(q, "0,1,2") {
		t.Error("wrong order accepted")
	}
	if CheckAnswer(q, "1,2") {
		t.Error("partial order accepted")
	}
}
