package intervention

import (
	"testing"

	"github.com/sproutedu/sprout/internal/question"
)

func withWorkedExample() *question.Question {
	return &question.Question{
		ID:   "q1",
		Type: question.TypeNumeric,
		Scaffolding: question.Scaffolding{
			Hints: []question.Hint{
				{Level: 1, Kind: question.HintNudge, Text: "a"},
				{Level: 2, Kind: question.HintGuidance, Text: "b"},
			},
			WorkedExample: &question.WorkedExample{Steps: []string{"one", "two"}},
		},
	}
}

func TestOnStruggleTiers(t *testing.T) {
	cfg := DefaultConfig()
	q := withWorkedExample()

	tests := []struct {
		attempts int
		kind     Kind
		priority Priority
	}{
		{1, KindEncouragement, PriorityLow},
		{2, KindHint, PriorityMedium},
		{3, KindWorkedExample, PriorityHigh},
		{5, KindWorkedExample, PriorityHigh},
	}

	for _, tc := range tests {
		d := OnStruggle(tc.attempts, q, cfg)
		if d.Kind != tc.kind || d.Priority != tc.priority {
			t.Errorf("OnStruggle(%d) = %s/%s, want %s/%s",
				tc.attempts, d.Kind, d.Priority, tc.kind, tc.priority)
		}
	}
}

func TestOnStruggleEscalationMarksFrustration(t *testing.T) {
	d := OnStruggle(3, withWorkedExample(), DefaultConfig())
	if d.Emotion != EmotionFrustrated {
		t.Errorf("Emotion = %q, want frustrated", d.Emotion)
	}

	mild := OnStruggle(1, withWorkedExample(), DefaultConfig())
	if mild.Emotion != "" {
		t.Errorf("first miss set emotion %q", mild.Emotion)
	}
}

func TestOnStruggleBreakWhenNoWorkedExample(t *testing.T) {
	bare := &question.Question{ID: "q2", Type: question.TypeNumeric}

	d := OnStruggle(3, bare, DefaultConfig())
	if d.Kind != KindBreak {
		t.Errorf("Kind = %s, want break suggestion", d.Kind)
	}
	if d.Emotion != EmotionFrustrated {
		t.Errorf("Emotion = %q, want frustrated", d.Emotion)
	}
}

func TestOnMasteryTiers(t *testing.T) {
	cfg := DefaultConfig()

	d := OnMastery(3, cfg)
	if d.Kind != KindEncouragement || d.Priority != PriorityHigh {
		t.Errorf("streak 3 = %s/%s, want encouragement/high", d.Kind, d.Priority)
	}
	if d.Emotion != EmotionExcited || d.Phase != PhaseCelebrated {
		t.Errorf("streak 3 = %+v, want excited/celebrated", d)
	}

	d = OnMastery(2, cfg)
	if d.Priority != PriorityMedium || d.Emotion != EmotionConfident {
		t.Errorf("streak 2 = %+v, want medium/confident", d)
	}

	d = OnMastery(1, cfg)
	if d.Priority != PriorityLow || d.Emotion != "" {
		t.Errorf("streak 1 = %+v, want low with no emotion change", d)
	}
}

func TestOnFrustrationThresholds(t *testing.T) {
	cfg := DefaultConfig()

	tests := []struct {
		level    float64
		wrong    int
		kind     Kind
		priority Priority
	}{
		{0.9, 0, KindBreak, PriorityUrgent},
		{0.2, 3, KindBreak, PriorityUrgent},
		{0.6, 0, KindTopicSwitch, PriorityHigh},
		{0.5, 2, KindTopicSwitch, PriorityHigh},
		{0.5, 1, KindEncouragement, PriorityMedium},
		{0.7, 0, KindTopicSwitch, PriorityHigh},
		{0.1, 0, KindEncouragement, PriorityMedium},
	}

	for _, tc := range tests {
		d := OnFrustration(tc.level, tc.wrong, cfg)
		if d.Kind != tc.kind || d.Priority != tc.priority {
			t.Errorf("OnFrustration(%.1f, %d) = %s/%s, want %s/%s",
				tc.level, tc.wrong, d.Kind, d.Priority, tc.kind, tc.priority)
		}
	}
}

func TestOnFrustrationClampsLevel(t *testing.T) {
	d := OnFrustration(3.5, 0, DefaultConfig())
	if d.Kind != KindBreak {
		t.Errorf("level above 1 = %s, want break suggestion", d.Kind)
	}
	d = OnFrustration(-2, 0, DefaultConfig())
	if d.Kind != KindEncouragement {
		t.Errorf("level below 0 = %s, want encouragement", d.Kind)
	}
}

func TestNeedsIntervention(t *testing.T) {
	cfg := DefaultConfig()
	q := withWorkedExample()

	tests := []struct {
		name     string
		timeMs   int64
		attempts int
		hints    int
		want     bool
	}{
		{"fresh", 5_000, 0, 0, false},
		{"slow", 61_000, 0, 0, true},
		{"repeat attempts", 5_000, 2, 0, true},
		{"hints exhausted", 5_000, 1, 2, true},
		{"one attempt some hints", 5_000, 1, 1, false},
	}

	for _, tc := range tests {
		got := NeedsIntervention(q, tc.timeMs, tc.attempts, tc.hints, cfg)
		if got != tc.want {
			t.Errorf("%s: NeedsIntervention = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestNeedsInterventionIgnoresHintsWhenQuestionHasNone(t *testing.T) {
	bare := &question.Question{ID: "q2", Type: question.TypeNumeric}
	if NeedsIntervention(bare, 1_000, 0, 0, DefaultConfig()) {
		t.Error("hintless question flagged on zero hints used")
	}
}

func TestStrongestPrefersPriorityThenDisruption(t *testing.T) {
	breakNow := Decision{Kind: KindBreak, Priority: PriorityUrgent}
	hint := Decision{Kind: KindHint, Priority: PriorityMedium}
	topicSwitch := Decision{Kind: KindTopicSwitch, Priority: PriorityHigh}
	worked := Decision{Kind: KindWorkedExample, Priority: PriorityHigh}

	if got := Strongest(hint, breakNow); got.Kind != KindBreak {
		t.Errorf("Strongest = %s, want break suggestion", got.Kind)
	}
	if got := Strongest(worked, topicSwitch); got.Kind != KindTopicSwitch {
		t.Errorf("tie on priority = %s, want topic-switch", got.Kind)
	}
	if got := Strongest(hint); got.Kind != KindHint {
		t.Errorf("single decision = %s, want hint", got.Kind)
	}
}

func TestMessageForKnownAndUnknownKeys(t *testing.T) {
	d := OnStruggle(1, withWorkedExample(), DefaultConfig())
	if MessageFor(d.MessageKey) == d.MessageKey {
		t.Errorf("no catalog line for %q", d.MessageKey)
	}
	if got := MessageFor("no.such.key"); got != "no.such.key" {
		t.Errorf("unknown key resolved to %q", got)
	}
}
