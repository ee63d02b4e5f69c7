package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/sproutedu/sprout/ent"
	"github.com/sproutedu/sprout/ent/snapshot"
)

// snapshotRepo implements SnapshotRepo using the ent client. Saved
// snapshots are stamped with the current event sequence so state can be
// correlated with the log.
type snapshotRepo struct {
	client *ent.Client
	seq    *eventSequence
}

func (r *snapshotRepo) Save(ctx context.Context, snap *Snapshot) error {
	if snap.Kind == "" || snap.Key == "" {
		return fmt.Errorf("snapshot kind and key are required")
	}

	var dataMap map[string]any
	if err := json.Unmarshal(snap.Data, &dataMap); err != nil {
		return fmt.Errorf("decode snapshot data: %w", err)
	}

	seqNum := snap.Sequence
	if seqNum == 0 {
		n, err := r.seq.Next(ctx)
		if err != nil {
			return err
		}
		seqNum = n
	}

	builder := r.client.Snapshot.Create().
		SetKind(snap.Kind).
		SetKey(snap.Key).
		SetSequence(seqNum).
		SetData(dataMap)
	if !snap.Timestamp.IsZero() {
		builder = builder.SetTimestamp(snap.Timestamp)
	}

	if _, err := builder.Save(ctx); err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	return nil
}

func (r *snapshotRepo) Latest(ctx context.Context, kind, key string) (*Snapshot, error) {
	s, err := r.client.Snapshot.Query().
		Where(snapshot.Kind(kind), snapshot.Key(key)).
		Order(ent.Desc(snapshot.FieldSequence)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query latest snapshot: %w", err)
	}

	data, err := json.Marshal(s.Data)
	if err != nil {
		return nil, fmt.Errorf("encode snapshot data: %w", err)
	}
	return &Snapshot{
		ID:        s.ID,
		Kind:      s.Kind,
		Key:       s.Key,
		Sequence:  s.Sequence,
		Timestamp: s.Timestamp,
		Data:      data,
	}, nil
}

func (r *snapshotRepo) Prune(ctx context.Context, kind, key string, keep int) error {
	// Find the cutoff: the sequence of the Nth most recent snapshot.
	rows, err := r.client.Snapshot.Query().
		Where(snapshot.Kind(kind), snapshot.Key(key)).
		Order(ent.Desc(snapshot.FieldSequence)).
		Offset(keep).
		Limit(1).
		All(ctx)
	if err != nil {
		return fmt.Errorf("query snapshots for prune: %w", err)
	}
	if len(rows) == 0 {
		return nil // fewer than keep snapshots exist
	}

	cutoff := rows[0].Sequence
	_, err = r.client.Snapshot.Delete().
		Where(snapshot.Kind(kind), snapshot.Key(key), snapshot.SequenceLTE(cutoff)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("prune snapshots: %w", err)
	}
	return nil
}
