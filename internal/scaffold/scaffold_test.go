package scaffold

import (
	"testing"

	"github.com/sproutedu/sprout/internal/performance"
	"github.com/sproutedu/sprout/internal/question"
)

func ladderQuestion() *question.Question {
	return &question.Question{
		ID:   "q1",
		Type: question.TypeNumeric,
		Scaffolding: question.Scaffolding{
			Hints: []question.Hint{
				{Level: 1, Kind: question.HintNudge, Text: "Look at the denominators."},
				{Level: 2, Kind: question.HintGuidance, Text: "Make the denominators match first."},
				{Level: 3, Kind: question.HintReveal, Text: "Rewrite 1/2 as 2/4, then add."},
			},
			WorkedExample: &question.WorkedExample{
				Intro: "Adding quarters",
				Steps: []string{"Match denominators", "Add numerators"},
			},
		},
	}
}

func lowUsage() performance.State {
	return performance.State{Recent: []performance.Observation{
		{Correct: true, HintsUsed: 0},
		{Correct: true, HintsUsed: 0},
	}}
}

func heavyUsage() performance.State {
	return performance.State{Recent: []performance.Observation{
		{Correct: true, HintsUsed: 1},
		{Correct: false, HintsUsed: 2},
		{Correct: true, HintsUsed: 1},
	}}
}

func TestForAttemptFirstTryGetsNothing(t *testing.T) {
	res, err := ForAttempt(ladderQuestion(), 1, lowUsage(), DefaultConfig())
	if err != nil {
		t.Fatalf("ForAttempt: %v", err)
	}
	if !res.Empty() {
		t.Errorf("attempt 1 served support: %+v", res)
	}
}

func TestForAttemptSecondTryEntryLevel(t *testing.T) {
	q := ladderQuestion()
	cfg := DefaultConfig()

	res, err := ForAttempt(q, 2, lowUsage(), cfg)
	if err != nil {
		t.Fatalf("ForAttempt: %v", err)
	}
	if res.Hint == nil || res.Hint.Level != 1 {
		t.Errorf("low usage attempt 2 = %+v, want level-1 hint", res)
	}

	res, err = ForAttempt(q, 2, heavyUsage(), cfg)
	if err != nil {
		t.Fatalf("ForAttempt: %v", err)
	}
	if res.Hint == nil || res.Hint.Level != 2 {
		t.Errorf("heavy usage attempt 2 = %+v, want level-2 hint", res)
	}
}

func TestForAttemptThirdTryWorkedExample(t *testing.T) {
	res, err := ForAttempt(ladderQuestion(), 3, lowUsage(), DefaultConfig())
	if err != nil {
		t.Fatalf("ForAttempt: %v", err)
	}
	if res.WorkedExample == nil {
		t.Errorf("attempt 3 = %+v, want worked example", res)
	}
}

func TestForAttemptExhaustsWithoutThrowing(t *testing.T) {
	bare := &question.Question{ID: "q2", Type: question.TypeNumeric}

	for _, attempt := range []int{2, 3, 7} {
		res, err := ForAttempt(bare, attempt, lowUsage(), DefaultConfig())
		if err != nil {
			t.Fatalf("attempt %d: %v", attempt, err)
		}
		if !res.Exhausted {
			t.Errorf("attempt %d on bare question = %+v, want exhausted", attempt, res)
		}
	}
}

func TestForAttemptRejectsBadAttempt(t *testing.T) {
	for _, attempt := range []int{0, -1} {
		if _, err := ForAttempt(ladderQuestion(), attempt, lowUsage(), DefaultConfig()); err == nil {
			t.Errorf("attempt %d accepted, want error", attempt)
		}
	}
}

func TestNextClimbsTheLadder(t *testing.T) {
	q := ladderQuestion()
	cfg := DefaultConfig()
	state := lowUsage()

	var p Progress
	wantLevels := []int{1, 2, 3}
	for _, want := range wantLevels {
		var res Result
		res, p = Next(q, state, cfg, p)
		if res.Hint == nil || res.Hint.Level != want {
			t.Fatalf("Next = %+v, want level-%d hint", res, want)
		}
	}

	res, p := Next(q, state, cfg, p)
	if res.WorkedExample == nil {
		t.Fatalf("after all hints Next = %+v, want worked example", res)
	}
	if !p.WorkedShown {
		t.Error("progress did not record worked example")
	}

	res, _ = Next(q, state, cfg, p)
	if !res.Exhausted {
		t.Errorf("Next after ladder end = %+v, want exhausted", res)
	}
}

func TestNextHeavyUsageSkipsNudge(t *testing.T) {
	res, p := Next(ladderQuestion(), heavyUsage(), DefaultConfig(), Progress{})
	if res.Hint == nil || res.Hint.Level != 2 {
		t.Fatalf("first request = %+v, want level-2 hint", res)
	}
	if p.HintsServed() != 1 {
		t.Errorf("HintsServed() = %d, want 1", p.HintsServed())
	}

	res, _ = Next(ladderQuestion(), heavyUsage(), DefaultConfig(), p)
	if res.Hint == nil || res.Hint.Level != 3 {
		t.Errorf("second request = %+v, want level-3 hint", res)
	}
}
