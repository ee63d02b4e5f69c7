// Package session sequences the tutoring engine across one practice
// run: it owns the question list and answer log, routes every answer
// through performance tracking, difficulty adjustment, and
// intervention selection, and hands completed sessions to the reward
// calculator exactly once.
package session

import (
	"time"

	"github.com/sproutedu/sprout/internal/intervention"
	"github.com/sproutedu/sprout/internal/question"
	"github.com/sproutedu/sprout/internal/rewards"
	"github.com/sproutedu/sprout/internal/scaffold"
)

// Status is the session lifecycle state.
type Status string

const (
	StatusNotStarted Status = "not-started"
	StatusInProgress Status = "in-progress"
	StatusCompleted  Status = "completed"
	StatusAbandoned  Status = "abandoned"
)

// Terminal reports whether no further transitions are allowed.
func (s Status) Terminal() bool {
	return s == StatusCompleted || s == StatusAbandoned
}

// Answer is one resolved question: recorded once, when the student
// either gets it right or runs out of attempts. TimeSpentMs and
// HintsUsed accumulate across every attempt on the question.
type Answer struct {
	QuestionID  string    `json:"questionId"`
	Value       string    `json:"value"`
	Correct     bool      `json:"correct"`
	TimeSpentMs int64     `json:"timeSpentMs"`
	HintsUsed   int       `json:"hintsUsed"`
	Attempts    int       `json:"attempts"`
	Timestamp   time.Time `json:"timestamp"`
}

// Session is one bounded practice run for a student on a topic. The
// question list is fixed at start; answers grow monotonically and
// never outnumber questions.
type Session struct {
	ID         string              `json:"id"`
	StudentID  string              `json:"studentId"`
	Topic      string              `json:"topic"`
	Questions  []question.Question `json:"questions"`
	Index      int                 `json:"index"`
	Answers    []Answer            `json:"answers,omitempty"`
	Status     Status              `json:"status"`
	Difficulty question.Difficulty `json:"difficulty"`

	// Scratch state for the active question, reset on advance.
	Attempts    int               `json:"attempts"`
	HintsUsed   int               `json:"hintsUsed"`
	TimeSpentMs int64             `json:"timeSpentMs"`
	Ladder      scaffold.Progress `json:"ladder"`

	WrongStreak       int                  `json:"wrongStreak"`
	Frustration       float64              `json:"frustration"`
	Emotion           intervention.Emotion `json:"emotion"`
	Phase             intervention.Phase   `json:"phase"`
	InterventionsUsed int                  `json:"interventionsUsed"`

	StartedAt time.Time        `json:"startedAt"`
	EndedAt   time.Time        `json:"endedAt,omitempty"`
	Rewards   *rewards.Summary `json:"rewards,omitempty"`
}

// newSession validates the setup and opens the session in progress.
func newSession(id, studentID, topic string, questions []question.Question, difficulty question.Difficulty, now time.Time) (*Session, error) {
	if studentID == "" {
		return nil, &ConfigurationError{Reason: "student id is required"}
	}
	if topic == "" {
		return nil, &ConfigurationError{Reason: "topic is required"}
	}
	if len(questions) == 0 {
		return nil, &ConfigurationError{Reason: "question list is empty"}
	}
	if !difficulty.Valid() {
		return nil, &ConfigurationError{Reason: "unknown difficulty " + string(difficulty)}
	}
	for i := range questions {
		if err := questions[i].Validate(); err != nil {
			return nil, &ConfigurationError{Reason: "question " + questions[i].ID + ": " + err.Error()}
		}
	}

	return &Session{
		ID:         id,
		StudentID:  studentID,
		Topic:      topic,
		Questions:  questions,
		Status:     StatusInProgress,
		Difficulty: difficulty,
		Emotion:    intervention.EmotionNeutral,
		Phase:      intervention.PhaseIdle,
		StartedAt:  now,
	}, nil
}

// Active returns the question awaiting an answer, nil when the session
// is not accepting answers.
func (s *Session) Active() *question.Question {
	if s.Status != StatusInProgress || s.Index >= len(s.Questions) {
		return nil
	}
	return &s.Questions[s.Index]
}

// Remaining is how many questions have not been resolved yet.
func (s *Session) Remaining() int {
	return len(s.Questions) - len(s.Answers)
}

// advance moves to the next question and resets per-question state.
func (s *Session) advance() {
	s.Index++
	s.Attempts = 0
	s.HintsUsed = 0
	s.TimeSpentMs = 0
	s.Ladder = scaffold.Progress{}
	s.Phase = intervention.PhaseIdle
}

// applyDecision records an intervention's session side effects.
func (s *Session) applyDecision(d intervention.Decision) {
	if d.Emotion != "" {
		s.Emotion = d.Emotion
	}
	s.Phase = d.Phase
	s.InterventionsUsed++
}

// snapshot returns a copy safe to hand outside the service. Questions
// are authored upstream and treated as immutable, so the slice is
// shared.
func (s *Session) snapshot() *Session {
	cp := *s
	cp.Answers = append([]Answer(nil), s.Answers...)
	cp.Ladder.Levels = append([]int(nil), s.Ladder.Levels...)
	if s.Rewards != nil {
		r := *s.Rewards
		cp.Rewards = &r
	}
	return &cp
}
