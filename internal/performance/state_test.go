package performance

import (
	"testing"
	"time"
)

func TestDerivedMetricsEmptyWindow(t *testing.T) {
	s := New("ada", "fractions")

	if got := s.AccuracyRate(); got != NeutralAccuracy {
		t.Errorf("AccuracyRate() on empty = %v, want %v", got, NeutralAccuracy)
	}
	if got := s.AverageTimeMs(); got != 0 {
		t.Errorf("AverageTimeMs() on empty = %v, want 0", got)
	}
	if got := s.HintsUsageRate(); got != 0 {
		t.Errorf("HintsUsageRate() on empty = %v, want 0", got)
	}
}

func TestDerivedMetrics(t *testing.T) {
	ts := time.Unix(1700000000, 0)
	s := State{
		Recent: []Observation{
			{Correct: true, TimeSpentMs: 4000, HintsUsed: 0, Timestamp: ts},
			{Correct: true, TimeSpentMs: 6000, HintsUsed: 1, Timestamp: ts},
			{Correct: false, TimeSpentMs: 8000, HintsUsed: 2, Timestamp: ts},
			{Correct: true, TimeSpentMs: 2000, HintsUsed: 0, Timestamp: ts},
		},
	}

	if got := s.AccuracyRate(); got != 0.75 {
		t.Errorf("AccuracyRate() = %v, want 0.75", got)
	}
	if got := s.AverageTimeMs(); got != 5000 {
		t.Errorf("AverageTimeMs() = %v, want 5000", got)
	}
	if got := s.HintsUsageRate(); got != 0.5 {
		t.Errorf("HintsUsageRate() = %v, want 0.5", got)
	}
}

func TestLastNWrong(t *testing.T) {
	s := State{
		Recent: []Observation{
			{Correct: true},
			{Correct: false},
			{Correct: false},
		},
	}

	if !s.LastNWrong(2) {
		t.Error("LastNWrong(2) = false, want true")
	}
	if s.LastNWrong(3) {
		t.Error("LastNWrong(3) = true, want false")
	}
	if s.LastNWrong(4) {
		t.Error("LastNWrong(4) on 3 answers = true, want false")
	}

	var empty State
	if empty.LastNWrong(2) {
		t.Error("LastNWrong on empty = true, want false")
	}
}
