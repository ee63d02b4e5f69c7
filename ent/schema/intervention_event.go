package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// InterventionEvent records every intervention served to a student,
// whether the engine initiated it or the student asked for help.
type InterventionEvent struct {
	ent.Schema
}

func (InterventionEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (InterventionEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty(),
		field.String("student_id").
			NotEmpty(),
		field.String("topic").
			NotEmpty(),
		field.String("kind").
			NotEmpty().
			Comment("encouragement, hint, worked-example, break-suggestion, or topic-switch"),
		field.String("priority").
			NotEmpty().
			Comment("low, medium, high, or urgent"),
		field.String("message_key").
			NotEmpty().
			Comment("Stable key the presentation layer resolves to text"),
		field.String("emotion").
			Optional().
			Comment("Emotional state the decision set, if any"),
		field.String("phase").
			Optional().
			Comment("Intervention phase after the decision"),
	}
}

func (InterventionEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("student_id"),
		index.Fields("kind"),
	}
}
