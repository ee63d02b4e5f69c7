// Package performance tracks per-student, per-topic answer history and
// derives the rolling signals the rest of the engine reads: accuracy,
// pace, hint reliance, streaks, and a 0-100 mastery score.
//
// Everything here is plain data plus total functions. Persistence and
// timers belong to the caller.
package performance

import "time"

// NeutralAccuracy is what an empty window reads as, so a brand-new
// student is neither flagged as struggling nor promoted.
const NeutralAccuracy = 0.75

// Observation is one answered question as seen by the tracker.
type Observation struct {
	QuestionID  string    `json:"questionId"`
	Topic       string    `json:"topic"`
	Subtopic    string    `json:"subtopic,omitempty"`
	Correct     bool      `json:"correct"`
	TimeSpentMs int64     `json:"timeSpentMs"`
	HintsUsed   int       `json:"hintsUsed"`
	Timestamp   time.Time `json:"timestamp"`
}

// State is the rolling performance picture for one student on one topic.
type State struct {
	StudentID     string        `json:"studentId"`
	Topic         string        `json:"topic"`
	Recent        []Observation `json:"recent,omitempty"`
	Streak        int           `json:"streak"`
	LongestStreak int           `json:"longestStreak"`
	Mastery       int           `json:"mastery"`
	TotalAnswered int           `json:"totalAnswered"`
	TotalCorrect  int           `json:"totalCorrect"`
	Struggling    []string      `json:"struggling,omitempty"`
	Strengths     []string      `json:"strengths,omitempty"`
	UpdatedAt     time.Time     `json:"updatedAt"`
}

// New returns a fresh state with mastery at the midpoint.
func New(studentID, topic string) State {
	return State{StudentID: studentID, Topic: topic, Mastery: 50}
}

// AccuracyRate is the fraction of recent answers that were correct.
func (s *State) AccuracyRate() float64 {
	if len(s.Recent) == 0 {
		return NeutralAccuracy
	}
	correct := 0
	for _, o := range s.Recent {
		if o.Correct {
			correct++
		}
	}
	return float64(correct) / float64(len(s.Recent))
}

// AverageTimeMs is the mean time per recent answer, 0 when empty.
func (s *State) AverageTimeMs() float64 {
	if len(s.Recent) == 0 {
		return 0
	}
	var total int64
	for _, o := range s.Recent {
		total += o.TimeSpentMs
	}
	return float64(total) / float64(len(s.Recent))
}

// HintsUsageRate is the fraction of recent answers that needed at
// least one hint, 0 when empty.
func (s *State) HintsUsageRate() float64 {
	if len(s.Recent) == 0 {
		return 0
	}
	hinted := 0
	for _, o := range s.Recent {
		if o.HintsUsed > 0 {
			hinted++
		}
	}
	return float64(hinted) / float64(len(s.Recent))
}

// LastNWrong reports whether the n most recent answers were all
// incorrect. False when fewer than n answers have been seen.
func (s *State) LastNWrong(n int) bool {
	if n <= 0 || len(s.Recent) < n {
		return false
	}
	for _, o := range s.Recent[len(s.Recent)-n:] {
		if o.Correct {
			return false
		}
	}
	return true
}
