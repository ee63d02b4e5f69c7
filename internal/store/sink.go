package store

import (
	"context"

	"go.uber.org/zap"

	"github.com/sproutedu/sprout/internal/intervention"
	"github.com/sproutedu/sprout/internal/performance"
	"github.com/sproutedu/sprout/internal/session"
	"github.com/sproutedu/sprout/internal/zpd"
)

// Recorder adapts the event log to the session service's sink. Append
// failures are logged and swallowed: the audit trail must never fail a
// tutoring operation.
type Recorder struct {
	events EventRepo
	log    *zap.Logger
}

// NewRecorder wires a Recorder. A nil logger silences it.
func NewRecorder(events EventRepo, log *zap.Logger) *Recorder {
	if log == nil {
		log = zap.NewNop()
	}
	return &Recorder{events: events, log: log}
}

func (r *Recorder) SessionStarted(ctx context.Context, s *session.Session) {
	err := r.events.AppendSessionEvent(ctx, SessionEventData{
		SessionID:      s.ID,
		StudentID:      s.StudentID,
		Topic:          s.Topic,
		Action:         ActionStarted,
		Difficulty:     string(s.Difficulty),
		QuestionsTotal: len(s.Questions),
	})
	if err != nil {
		r.log.Warn("append session event", zap.String("session", s.ID), zap.Error(err))
	}
}

func (r *Recorder) AnswerResolved(ctx context.Context, s *session.Session, ans session.Answer, state performance.State, d zpd.Decision) {
	data := AnswerEventData{
		SessionID:        s.ID,
		StudentID:        s.StudentID,
		Topic:            s.Topic,
		QuestionID:       ans.QuestionID,
		Value:            ans.Value,
		Correct:          ans.Correct,
		TimeMs:           ans.TimeSpentMs,
		HintsUsed:        ans.HintsUsed,
		Attempts:         ans.Attempts,
		StreakAfter:      state.Streak,
		MasteryAfter:     state.Mastery,
		DifficultyAfter:  string(d.To),
		DifficultyReason: d.Reason,
	}
	for i := range s.Questions {
		if s.Questions[i].ID == ans.QuestionID {
			data.Subtopic = s.Questions[i].Subtopic
			data.QuestionType = string(s.Questions[i].Type)
			data.Difficulty = string(s.Questions[i].Difficulty)
			break
		}
	}

	if err := r.events.AppendAnswerEvent(ctx, data); err != nil {
		r.log.Warn("append answer event", zap.String("session", s.ID), zap.Error(err))
	}
}

func (r *Recorder) InterventionServed(ctx context.Context, s *session.Session, d intervention.Decision) {
	err := r.events.AppendInterventionEvent(ctx, InterventionEventData{
		SessionID:  s.ID,
		StudentID:  s.StudentID,
		Topic:      s.Topic,
		Kind:       string(d.Kind),
		Priority:   string(d.Priority),
		MessageKey: d.MessageKey,
		Emotion:    string(d.Emotion),
		Phase:      string(d.Phase),
	})
	if err != nil {
		r.log.Warn("append intervention event", zap.String("session", s.ID), zap.Error(err))
	}
}

func (r *Recorder) SessionEnded(ctx context.Context, s *session.Session) {
	action := ActionAbandoned
	if s.Status == session.StatusCompleted {
		action = ActionCompleted
	}

	correct := 0
	for _, a := range s.Answers {
		if a.Correct {
			correct++
		}
	}

	data := SessionEventData{
		SessionID:         s.ID,
		StudentID:         s.StudentID,
		Topic:             s.Topic,
		Action:            action,
		Difficulty:        string(s.Difficulty),
		QuestionsTotal:    len(s.Questions),
		QuestionsAnswered: len(s.Answers),
		CorrectAnswers:    correct,
		InterventionsUsed: s.InterventionsUsed,
	}
	if !s.EndedAt.IsZero() {
		data.DurationMs = s.EndedAt.Sub(s.StartedAt).Milliseconds()
	}
	if s.Rewards != nil {
		data.XPAwarded = s.Rewards.XP
	}

	if err := r.events.AppendSessionEvent(ctx, data); err != nil {
		r.log.Warn("append session event", zap.String("session", s.ID), zap.Error(err))
	}

	if s.Rewards == nil {
		return
	}

	reward := RewardEventData{
		SessionID:   s.ID,
		StudentID:   s.StudentID,
		XP:          s.Rewards.XP,
		BadgeXP:     s.Rewards.BadgeXP,
		LevelBefore: s.Rewards.LevelBefore,
		LevelAfter:  s.Rewards.LevelAfter,
	}
	for _, b := range s.Rewards.NewBadges {
		reward.Badges = append(reward.Badges, b.ID)
	}
	for _, w := range s.Rewards.UnlockedWorlds {
		reward.Worlds = append(reward.Worlds, w.ID)
	}

	if err := r.events.AppendRewardEvent(ctx, reward); err != nil {
		r.log.Warn("append reward event", zap.String("session", s.ID), zap.Error(err))
	}
}
