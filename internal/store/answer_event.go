package store

import (
	"context"
	"fmt"

	"github.com/sproutedu/sprout/ent"
	"github.com/sproutedu/sprout/ent/answerevent"
)

func (r *eventRepo) AppendAnswerEvent(ctx context.Context, data AnswerEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.AnswerEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetStudentID(data.StudentID).
		SetTopic(data.Topic).
		SetSubtopic(data.Subtopic).
		SetQuestionID(data.QuestionID).
		SetQuestionType(data.QuestionType).
		SetDifficulty(data.Difficulty).
		SetValue(data.Value).
		SetCorrect(data.Correct).
		SetTimeMs(data.TimeMs).
		SetHintsUsed(data.HintsUsed).
		SetAttempts(data.Attempts).
		SetStreakAfter(data.StreakAfter).
		SetMasteryAfter(data.MasteryAfter).
		SetDifficultyAfter(data.DifficultyAfter).
		SetDifficultyReason(data.DifficultyReason).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save answer event: %w", err)
	}
	return nil
}

func (r *eventRepo) AnswerHistory(ctx context.Context, studentID, topic string, opts QueryOpts) ([]AnswerEventData, error) {
	q := r.client.AnswerEvent.Query().
		Where(answerevent.StudentID(studentID), answerevent.Topic(topic))
	if opts.After > 0 {
		q = q.Where(answerevent.SequenceGT(opts.After))
	}
	if opts.Before > 0 {
		q = q.Where(answerevent.SequenceLT(opts.Before))
	}
	if !opts.From.IsZero() {
		q = q.Where(answerevent.TimestampGTE(opts.From))
	}
	if !opts.To.IsZero() {
		q = q.Where(answerevent.TimestampLTE(opts.To))
	}
	// Limit selects the most recent rows; the result still reads oldest
	// first.
	q = q.Order(ent.Desc(answerevent.FieldSequence))
	if opts.Limit > 0 {
		q = q.Limit(opts.Limit)
	}

	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query answer history: %w", err)
	}

	out := make([]AnswerEventData, 0, len(rows))
	for i := len(rows) - 1; i >= 0; i-- {
		e := rows[i]
		out = append(out, AnswerEventData{
			Sequence:         e.Sequence,
			Timestamp:        e.Timestamp,
			SessionID:        e.SessionID,
			StudentID:        e.StudentID,
			Topic:            e.Topic,
			Subtopic:         e.Subtopic,
			QuestionID:       e.QuestionID,
			QuestionType:     e.QuestionType,
			Difficulty:       e.Difficulty,
			Value:            e.Value,
			Correct:          e.Correct,
			TimeMs:           e.TimeMs,
			HintsUsed:        e.HintsUsed,
			Attempts:         e.Attempts,
			StreakAfter:      e.StreakAfter,
			MasteryAfter:     e.MasteryAfter,
			DifficultyAfter:  e.DifficultyAfter,
			DifficultyReason: e.DifficultyReason,
		})
	}
	return out, nil
}

func (r *eventRepo) TopicAccuracy(ctx context.Context, studentID, topic string) (float64, error) {
	total, err := r.client.AnswerEvent.Query().
		Where(answerevent.StudentID(studentID), answerevent.Topic(topic)).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count answers: %w", err)
	}
	if total == 0 {
		return 0, nil
	}

	correct, err := r.client.AnswerEvent.Query().
		Where(answerevent.StudentID(studentID), answerevent.Topic(topic), answerevent.Correct(true)).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count correct answers: %w", err)
	}
	return float64(correct) / float64(total), nil
}
