package store

import (
	"context"
	"fmt"

	"github.com/sproutedu/sprout/ent/interventionevent"
)

func (r *eventRepo) AppendInterventionEvent(ctx context.Context, data InterventionEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.InterventionEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetStudentID(data.StudentID).
		SetTopic(data.Topic).
		SetKind(data.Kind).
		SetPriority(data.Priority).
		SetMessageKey(data.MessageKey).
		SetEmotion(data.Emotion).
		SetPhase(data.Phase).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save intervention event: %w", err)
	}
	return nil
}

func (r *eventRepo) InterventionCounts(ctx context.Context, studentID string) (map[string]int, error) {
	rows, err := r.client.InterventionEvent.Query().
		Where(interventionevent.StudentID(studentID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query interventions: %w", err)
	}

	counts := make(map[string]int, len(rows))
	for _, e := range rows {
		counts[e.Kind]++
	}
	return counts, nil
}
