package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// LLMRequestEvent is the audit record of one model API call. The stats
// command aggregates these into per-model usage and cost.
type LLMRequestEvent struct {
	ent.Schema
}

func (LLMRequestEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (LLMRequestEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("provider").
			Comment("Vendor the call went to: anthropic, openai, gemini, openrouter"),
		field.String("model").
			Comment("Model that served the call, as reported by the vendor"),
		field.String("purpose").
			Comment("What the call was for, e.g. question-gen"),
		field.Int("input_tokens").
			Default(0).
			Comment("Prompt tokens billed"),
		field.Int("output_tokens").
			Default(0).
			Comment("Completion tokens billed"),
		field.Int64("latency_ms").
			Default(0).
			Comment("Round-trip time in milliseconds"),
		field.Bool("success").
			Comment("False when the call errored"),
		field.String("error_message").
			Default("").
			Comment("Error text for failed calls"),
	}
}

func (LLMRequestEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("provider"),
		index.Fields("purpose"),
		index.Fields("success"),
	}
}
