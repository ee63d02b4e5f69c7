package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SessionEvent records session lifecycle transitions: one row when a
// session starts and one when it reaches a terminal state.
type SessionEvent struct {
	ent.Schema
}

func (SessionEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (SessionEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("UUID grouping events in a session"),
		field.String("student_id").
			NotEmpty(),
		field.String("topic").
			NotEmpty(),
		field.String("action").
			NotEmpty().
			Comment("started, completed, or abandoned"),
		field.String("difficulty").
			NotEmpty().
			Comment("Session difficulty at the time of the event"),
		field.Int("questions_total").
			Default(0),
		field.Int("questions_answered").
			Default(0).
			Comment("Resolved answers (on end only)"),
		field.Int("correct_answers").
			Default(0).
			Comment("Correct answers (on end only)"),
		field.Int("interventions_used").
			Default(0).
			Comment("Interventions served during the session (on end only)"),
		field.Int64("duration_ms").
			Default(0).
			Comment("Wall-clock session length (on end only)"),
		field.Int("xp_awarded").
			Default(0).
			Comment("Answer XP granted on completion; zero when abandoned"),
	}
}

func (SessionEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("student_id"),
		index.Fields("action"),
	}
}
