package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// RewardEvent records what a completed session paid out.
type RewardEvent struct {
	ent.Schema
}

func (RewardEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (RewardEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty(),
		field.String("student_id").
			NotEmpty(),
		field.Int("xp").
			Default(0).
			Comment("Answer XP from the session"),
		field.Int("badge_xp").
			Default(0).
			Comment("Bonus XP from newly earned badges"),
		field.JSON("badges", []string{}).
			Optional().
			Comment("IDs of badges earned by this session"),
		field.JSON("worlds", []string{}).
			Optional().
			Comment("IDs of worlds unlocked by this session"),
		field.Int("level_before").
			Default(1),
		field.Int("level_after").
			Default(1),
	}
}

func (RewardEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("student_id"),
	}
}
