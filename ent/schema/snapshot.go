package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Snapshot is a point-in-time capture of derived state, keyed by kind
// and subject. Performance states and reward progress live here; the
// latest row per key wins, older rows exist for audit until pruned.
type Snapshot struct {
	ent.Schema
}

func (Snapshot) Fields() []ent.Field {
	return []ent.Field{
		field.String("kind").
			NotEmpty().
			Comment("State family: performance or progress"),
		field.String("key").
			NotEmpty().
			Comment("Subject within the family, e.g. student/topic"),
		field.Int64("sequence").
			Comment("Event timeline position the capture reflects"),
		field.Time("timestamp").
			Default(time.Now).
			Comment("When the capture was taken"),
		field.JSON("data", map[string]any{}).
			Comment("The state itself, encoded by the repo"),
	}
}

func (Snapshot) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("kind", "key", "timestamp"),
		index.Fields("sequence"),
	}
}
