package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/sproutedu/sprout/internal/performance"
	"github.com/sproutedu/sprout/internal/rewards"
)

// DefaultKeepSnapshots bounds per-key snapshot history. Older rows are
// pruned after each save.
const DefaultKeepSnapshots = 20

// PerformanceRepo persists performance state as keyed snapshots, the
// newest row per (student, topic) winning.
type PerformanceRepo struct {
	snaps SnapshotRepo

	// Keep overrides DefaultKeepSnapshots when positive.
	Keep int
}

func perfKey(studentID, topic string) string {
	return studentID + "/" + topic
}

// LoadPerformance returns the stored state, or nil when the student has
// no history on the topic.
func (r *PerformanceRepo) LoadPerformance(ctx context.Context, studentID, topic string) (*performance.State, error) {
	snap, err := r.snaps.Latest(ctx, KindPerformance, perfKey(studentID, topic))
	if err != nil {
		return nil, err
	}
	if snap == nil {
		return nil, nil
	}

	var state performance.State
	if err := json.Unmarshal(snap.Data, &state); err != nil {
		return nil, fmt.Errorf("decode performance state: %w", err)
	}
	return &state, nil
}

// SavePerformance appends a new snapshot of the state and prunes old
// rows beyond the retention bound.
func (r *PerformanceRepo) SavePerformance(ctx context.Context, state performance.State) error {
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("encode performance state: %w", err)
	}

	key := perfKey(state.StudentID, state.Topic)
	if err := r.snaps.Save(ctx, &Snapshot{Kind: KindPerformance, Key: key, Data: data}); err != nil {
		return err
	}
	return r.snaps.Prune(ctx, KindPerformance, key, r.keep())
}

func (r *PerformanceRepo) keep() int {
	if r.Keep > 0 {
		return r.Keep
	}
	return DefaultKeepSnapshots
}

// ProgressRepo persists cumulative reward progress as keyed snapshots.
type ProgressRepo struct {
	snaps SnapshotRepo

	Keep int
}

// LoadProgress returns the stored record, or nil when the student has
// none yet.
func (r *ProgressRepo) LoadProgress(ctx context.Context, studentID string) (*rewards.Progress, error) {
	snap, err := r.snaps.Latest(ctx, KindProgress, studentID)
	if err != nil {
		return nil, err
	}
	if snap == nil {
		return nil, nil
	}

	var p rewards.Progress
	if err := json.Unmarshal(snap.Data, &p); err != nil {
		return nil, fmt.Errorf("decode progress: %w", err)
	}
	return &p, nil
}

// SaveProgress appends a new snapshot of the record and prunes old rows
// beyond the retention bound.
func (r *ProgressRepo) SaveProgress(ctx context.Context, p rewards.Progress) error {
	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("encode progress: %w", err)
	}

	if err := r.snaps.Save(ctx, &Snapshot{Kind: KindProgress, Key: p.StudentID, Data: data}); err != nil {
		return err
	}
	return r.snaps.Prune(ctx, KindProgress, p.StudentID, r.keep())
}

func (r *ProgressRepo) keep() int {
	if r.Keep > 0 {
		return r.Keep
	}
	return DefaultKeepSnapshots
}
