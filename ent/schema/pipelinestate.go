package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// PipelineState holds the schema definition for the orchestrator's per-case
// routing snapshot, upserted after every decision.
type PipelineState struct {
	ent.Schema
}

// Fields of the PipelineState.
func (PipelineState) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("case_id").
			Unique().
			Immutable(),
		field.String("current_stage"),
		field.String("next_stage").
			Optional().
			Nillable().
			Comment("null when terminal or gated to human review"),
		field.Float("confidence"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}
