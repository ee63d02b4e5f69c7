package performance

import (
	"testing"
	"time"
)

func obs(correct bool, hints int) Observation {
	return Observation{
		QuestionID:  "q",
		Topic:       "fractions",
		Correct:     correct,
		TimeSpentMs: 5000,
		HintsUsed:   hints,
		Timestamp:   time.Unix(1700000000, 0),
	}
}

func TestRecordAnswerStreak(t *testing.T) {
	cfg := DefaultConfig()
	s := New("ada", "fractions")

	for i := 0; i < 4; i++ {
		s = RecordAnswer(s, obs(true, 0), cfg)
	}
	if s.Streak != 4 || s.LongestStreak != 4 {
		t.Fatalf("streak = %d/%d, want 4/4", s.Streak, s.LongestStreak)
	}

	s = RecordAnswer(s, obs(false, 0), cfg)
	if s.Streak != 0 {
		t.Errorf("streak after wrong = %d, want 0", s.Streak)
	}
	if s.LongestStreak != 4 {
		t.Errorf("longest streak shrank to %d", s.LongestStreak)
	}

	s = RecordAnswer(s, obs(true, 0), cfg)
	if s.Streak != 1 || s.LongestStreak != 4 {
		t.Errorf("streak = %d/%d, want 1/4", s.Streak, s.LongestStreak)
	}
}

func TestRecordAnswerWindowBound(t *testing.T) {
	cfg := DefaultConfig()
	cfg.WindowSize = 5

	s := New("ada", "fractions")
	for i := 0; i < 12; i++ {
		s = RecordAnswer(s, obs(i%2 == 0, 0), cfg)
		if len(s.Recent) > cfg.WindowSize {
			t.Fatalf("window grew to %d, cap %d", len(s.Recent), cfg.WindowSize)
		}
	}
	if len(s.Recent) != cfg.WindowSize {
		t.Errorf("window = %d, want %d", len(s.Recent), cfg.WindowSize)
	}
	if s.TotalAnswered != 12 {
		t.Errorf("totalAnswered = %d, want 12", s.TotalAnswered)
	}
}

func TestRecordAnswerMastery(t *testing.T) {
	cfg := DefaultConfig()
	s := New("ada", "fractions")
	if s.Mastery != 50 {
		t.Fatalf("fresh mastery = %d, want 50", s.Mastery)
	}

	s = RecordAnswer(s, obs(true, 0), cfg)
	if s.Mastery != 52 {
		t.Errorf("after correct no hints: %d, want 52", s.Mastery)
	}
	s = RecordAnswer(s, obs(true, 2), cfg)
	if s.Mastery != 53 {
		t.Errorf("after correct with hints: %d, want 53", s.Mastery)
	}
	s = RecordAnswer(s, obs(false, 0), cfg)
	if s.Mastery != 52 {
		t.Errorf("after incorrect: %d, want 52", s.Mastery)
	}
}

func TestRecordAnswerMasteryClamped(t *testing.T) {
	cfg := DefaultConfig()

	low := New("ada", "fractions")
	low.Mastery = 0
	low = RecordAnswer(low, obs(false, 0), cfg)
	if low.Mastery != 0 {
		t.Errorf("mastery fell below 0: %d", low.Mastery)
	}

	high := New("ada", "fractions")
	high.Mastery = 99
	high = RecordAnswer(high, obs(true, 0), cfg)
	if high.Mastery != 100 {
		t.Errorf("mastery = %d, want 100", high.Mastery)
	}
	high = RecordAnswer(high, obs(true, 0), cfg)
	if high.Mastery != 100 {
		t.Errorf("mastery exceeded 100: %d", high.Mastery)
	}
}

func TestRecordAnswerDoesNotMutateInput(t *testing.T) {
	cfg := DefaultConfig()
	s := New("ada", "fractions")
	s = RecordAnswer(s, obs(true, 0), cfg)
	s = RecordAnswer(s, obs(true, 0), cfg)

	before := len(s.Recent)
	streak := s.Streak
	_ = RecordAnswer(s, obs(false, 0), cfg)

	if len(s.Recent) != before || s.Streak != streak {
		t.Error("input state was mutated")
	}
}

func TestRecordAnswerTags(t *testing.T) {
	cfg := DefaultConfig()
	s := New("ada", "fractions")

	wrong := obs(false, 0)
	wrong.Subtopic = "division"
	for i := 0; i < 3; i++ {
		s = RecordAnswer(s, wrong, cfg)
	}
	if !contains(s.Struggling, "fractions") || !contains(s.Struggling, "fractions/division") {
		t.Fatalf("struggle tags missing: %v", s.Struggling)
	}

	right := obs(true, 0)
	right.Subtopic = "division"
	for i := 0; i < 14; i++ {
		s = RecordAnswer(s, right, cfg)
	}
	if contains(s.Struggling, "fractions") {
		t.Errorf("stale struggle tag: %v", s.Struggling)
	}
	if !contains(s.Strengths, "fractions") {
		t.Errorf("strength tag missing: %v", s.Strengths)
	}
}

func TestRecordAnswerTagsNeedMinSample(t *testing.T) {
	cfg := DefaultConfig()
	s := New("ada", "fractions")

	s = RecordAnswer(s, obs(false, 0), cfg)
	s = RecordAnswer(s, obs(false, 0), cfg)
	if len(s.Struggling) != 0 {
		t.Errorf("tagged struggling on %d samples: %v", len(s.Recent), s.Struggling)
	}
}

func contains(list []string, want string) bool {
	for _, s := range list {
		if s == want {
			return true
		}
	}
	return false
}
