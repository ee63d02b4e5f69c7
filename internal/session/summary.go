package session

import (
	"time"

	"github.com/sproutedu/sprout/internal/rewards"
)

// Report condenses a session for summary surfaces.
type Report struct {
	SessionID      string           `json:"sessionId"`
	StudentID      string           `json:"studentId"`
	Topic          string           `json:"topic"`
	Status         Status           `json:"status"`
	Duration       time.Duration    `json:"duration"`
	TotalQuestions int              `json:"totalQuestions"`
	TotalAnswered  int              `json:"totalAnswered"`
	TotalCorrect   int              `json:"totalCorrect"`
	Accuracy       float64          `json:"accuracy"`
	HintsUsed      int              `json:"hintsUsed"`
	Interventions  int              `json:"interventions"`
	Rewards        *rewards.Summary `json:"rewards,omitempty"`
}

// BuildReport summarizes a session in any state. Duration stays zero
// until the session ends.
func BuildReport(s *Session) *Report {
	correct := 0
	hints := 0
	for _, a := range s.Answers {
		if a.Correct {
			correct++
		}
		hints += a.HintsUsed
	}

	var accuracy float64
	if len(s.Answers) > 0 {
		accuracy = float64(correct) / float64(len(s.Answers))
	}

	var duration time.Duration
	if !s.EndedAt.IsZero() {
		duration = s.EndedAt.Sub(s.StartedAt)
	}

	return &Report{
		SessionID:      s.ID,
		StudentID:      s.StudentID,
		Topic:          s.Topic,
		Status:         s.Status,
		Duration:       duration,
		TotalQuestions: len(s.Questions),
		TotalAnswered:  len(s.Answers),
		TotalCorrect:   correct,
		Accuracy:       accuracy,
		HintsUsed:      hints,
		Interventions:  s.InterventionsUsed,
		Rewards:        s.Rewards,
	}
}
