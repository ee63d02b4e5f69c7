package zpd

import (
	"testing"

	"github.com/sproutedu/sprout/internal/performance"
	"github.com/sproutedu/sprout/internal/question"
)

func window(results ...bool) []performance.Observation {
	obs := make([]performance.Observation, len(results))
	for i, correct := range results {
		obs[i] = performance.Observation{Correct: correct}
	}
	return obs
}

func TestEvaluateMasteryStreak(t *testing.T) {
	state := performance.State{
		Streak: 3,
		Recent: window(true, true, true),
	}

	d := Evaluate(question.DifficultyMedium, state, DefaultConfig())
	if d.To != question.DifficultyHard {
		t.Errorf("To = %s, want hard", d.To)
	}
	if d.Reason != ReasonMasteryStreak {
		t.Errorf("Reason = %q, want %q", d.Reason, ReasonMasteryStreak)
	}
	if !d.Moved() {
		t.Error("Moved() = false")
	}
}

func TestEvaluateStreakAloneIsNotEnough(t *testing.T) {
	// Three recent correct but a weak window overall.
	state := performance.State{
		Streak: 3,
		Recent: window(false, false, false, false, true, true, true),
	}

	d := Evaluate(question.DifficultyMedium, state, DefaultConfig())
	if d.Reason == ReasonMasteryStreak {
		t.Errorf("advanced on %.2f accuracy", state.AccuracyRate())
	}
}

func TestEvaluateStruggleOnLastTwoWrong(t *testing.T) {
	state := performance.State{
		Recent: window(true, true, true, false, false),
	}

	d := Evaluate(question.DifficultyEasy, state, DefaultConfig())
	if d.To != question.DifficultyBeginner {
		t.Errorf("To = %s, want beginner", d.To)
	}
	if d.Reason != ReasonStruggleDetected {
		t.Errorf("Reason = %q, want %q", d.Reason, ReasonStruggleDetected)
	}
}

func TestEvaluateStruggleOnLowAccuracy(t *testing.T) {
	// Under 40% across the window, but the very last answer was right,
	// so the last-two-wrong trigger stays quiet.
	state := performance.State{
		Streak: 1,
		Recent: window(false, false, false, false, true),
	}

	d := Evaluate(question.DifficultyMedium, state, DefaultConfig())
	if d.Reason != ReasonStruggleDetected {
		t.Errorf("Reason = %q, want %q", d.Reason, ReasonStruggleDetected)
	}
	if d.To != question.DifficultyEasy {
		t.Errorf("To = %s, want easy", d.To)
	}
}

func TestEvaluateLowAccuracyNeedsMinWindow(t *testing.T) {
	// One wrong answer is not a pattern.
	state := performance.State{
		Recent: window(false),
	}

	d := Evaluate(question.DifficultyMedium, state, DefaultConfig())
	if d.Reason != ReasonSteadyState {
		t.Errorf("Reason = %q, want %q", d.Reason, ReasonSteadyState)
	}
}

func TestEvaluateSteadyState(t *testing.T) {
	state := performance.State{
		Streak: 1,
		Recent: window(true, false, true, false, true),
	}

	d := Evaluate(question.DifficultyMedium, state, DefaultConfig())
	if d.Moved() {
		t.Errorf("moved %s -> %s on mixed results", d.From, d.To)
	}
	if d.Reason != ReasonSteadyState {
		t.Errorf("Reason = %q, want %q", d.Reason, ReasonSteadyState)
	}
}

func TestEvaluateEmptyWindowHoldsSteady(t *testing.T) {
	d := Evaluate(question.DifficultyMedium, performance.State{}, DefaultConfig())
	if d.Moved() || d.Reason != ReasonSteadyState {
		t.Errorf("fresh student got %+v, want steady state", d)
	}
}

func TestEvaluateClampedAtEdges(t *testing.T) {
	up := performance.State{Streak: 5, Recent: window(true, true, true, true, true)}
	d := Evaluate(question.DifficultyAdvanced, up, DefaultConfig())
	if d.To != question.DifficultyAdvanced {
		t.Errorf("stepped past advanced: %s", d.To)
	}

	down := performance.State{Recent: window(false, false, false)}
	d = Evaluate(question.DifficultyBeginner, down, DefaultConfig())
	if d.To != question.DifficultyBeginner {
		t.Errorf("stepped below beginner: %s", d.To)
	}
}

func TestEvaluateIsIdempotent(t *testing.T) {
	state := performance.State{Streak: 4, Recent: window(true, true, true, true)}

	first := Evaluate(question.DifficultyMedium, state, DefaultConfig())
	second := Evaluate(question.DifficultyMedium, state, DefaultConfig())
	if first != second {
		t.Errorf("decisions differ: %+v vs %+v", first, second)
	}
}
