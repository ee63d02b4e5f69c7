package store

import (
	"context"
	"fmt"
)

func (r *eventRepo) AppendRewardEvent(ctx context.Context, data RewardEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	builder := r.client.RewardEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetStudentID(data.StudentID).
		SetXp(data.XP).
		SetBadgeXp(data.BadgeXP).
		SetLevelBefore(data.LevelBefore).
		SetLevelAfter(data.LevelAfter)

	if len(data.Badges) > 0 {
		builder = builder.SetBadges(data.Badges)
	}
	if len(data.Worlds) > 0 {
		builder = builder.SetWorlds(data.Worlds)
	}

	_, err = builder.Save(ctx)
	if err != nil {
		return fmt.Errorf("save reward event: %w", err)
	}
	return nil
}
