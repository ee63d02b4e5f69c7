package store

import (
	"context"
	"fmt"

	"github.com/sproutedu/sprout/ent"
	"github.com/sproutedu/sprout/ent/sessionevent"
)

func (r *eventRepo) AppendSessionEvent(ctx context.Context, data SessionEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.SessionEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetStudentID(data.StudentID).
		SetTopic(data.Topic).
		SetAction(data.Action).
		SetDifficulty(data.Difficulty).
		SetQuestionsTotal(data.QuestionsTotal).
		SetQuestionsAnswered(data.QuestionsAnswered).
		SetCorrectAnswers(data.CorrectAnswers).
		SetInterventionsUsed(data.InterventionsUsed).
		SetDurationMs(data.DurationMs).
		SetXpAwarded(data.XPAwarded).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save session event: %w", err)
	}
	return nil
}

func (r *eventRepo) SessionHistory(ctx context.Context, studentID string, opts QueryOpts) ([]SessionEventData, error) {
	q := r.client.SessionEvent.Query().
		Where(sessionevent.StudentID(studentID))
	if opts.After > 0 {
		q = q.Where(sessionevent.SequenceGT(opts.After))
	}
	if opts.Before > 0 {
		q = q.Where(sessionevent.SequenceLT(opts.Before))
	}
	if !opts.From.IsZero() {
		q = q.Where(sessionevent.TimestampGTE(opts.From))
	}
	if !opts.To.IsZero() {
		q = q.Where(sessionevent.TimestampLTE(opts.To))
	}
	// Limit selects the most recent rows; the result still reads oldest
	// first.
	q = q.Order(ent.Desc(sessionevent.FieldSequence))
	if opts.Limit > 0 {
		q = q.Limit(opts.Limit)
	}

	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query session history: %w", err)
	}

	out := make([]SessionEventData, 0, len(rows))
	for i := len(rows) - 1; i >= 0; i-- {
		e := rows[i]
		out = append(out, SessionEventData{
			Sequence:          e.Sequence,
			Timestamp:         e.Timestamp,
			SessionID:         e.SessionID,
			StudentID:         e.StudentID,
			Topic:             e.Topic,
			Action:            e.Action,
			Difficulty:        e.Difficulty,
			QuestionsTotal:    e.QuestionsTotal,
			QuestionsAnswered: e.QuestionsAnswered,
			CorrectAnswers:    e.CorrectAnswers,
			InterventionsUsed: e.InterventionsUsed,
			DurationMs:        e.DurationMs,
			XPAwarded:         e.XpAwarded,
		})
	}
	return out, nil
}
