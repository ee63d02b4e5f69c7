package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AnswerEvent records one resolved answer: the submission itself plus
// the performance and difficulty state it produced.
type AnswerEvent struct {
	ent.Schema
}

func (AnswerEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AnswerEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("Links to SessionEvent"),
		field.String("student_id").
			NotEmpty(),
		field.String("topic").
			NotEmpty(),
		field.String("subtopic").
			Optional(),
		field.String("question_id").
			NotEmpty(),
		field.String("question_type").
			NotEmpty().
			Comment("multiple-choice, numeric, and so on"),
		field.String("difficulty").
			NotEmpty().
			Comment("Question difficulty when served"),
		field.String("value").
			Comment("What the student submitted"),
		field.Bool("correct"),
		field.Int64("time_ms").
			Comment("Cumulative milliseconds across attempts"),
		field.Int("hints_used").
			Default(0),
		field.Int("attempts").
			Default(1).
			Comment("Submissions it took to resolve the question"),
		field.Int("streak_after").
			Default(0).
			Comment("Correct streak once this answer was folded in"),
		field.Int("mastery_after").
			Default(0).
			Comment("Mastery score 0..100 once this answer was folded in"),
		field.String("difficulty_after").
			NotEmpty().
			Comment("Session difficulty after re-evaluation"),
		field.String("difficulty_reason").
			NotEmpty().
			Comment("Why difficulty moved or held"),
	}
}

func (AnswerEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("student_id", "topic"),
		index.Fields("correct"),
	}
}
