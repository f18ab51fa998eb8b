package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// HumanReview holds the schema definition for a gated routing decision parked
// for an operator. Keyed <case_id>_<stage> so repeated gating of the same
// decision collapses onto one record.
type HumanReview struct {
	ent.Schema
}

// Fields of the HumanReview.
func (HumanReview) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("review_id").
			Unique().
			Immutable(),
		field.String("case_id"),
		field.String("stage").
			Comment("The flagged producing stage (data_analysis, diagnosis, rca)"),
		field.Float("confidence"),
		field.JSON("message", map[string]any{}).
			Optional().
			Comment("The envelope that would have been routed downstream"),
		field.Enum("review_status").
			Values("pending", "resolved").
			Default("pending"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("resolved_at").
			Optional().
			Nillable(),
	}
}

// Indexes of the HumanReview.
func (HumanReview) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("review_status"),
		index.Fields("case_id"),
	}
}
