package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// EngagementCase holds the schema definition for the customer-engagement stage
// output. Engagement cases are terminal: they are written once, completed.
type EngagementCase struct {
	ent.Schema
}

// Fields of the EngagementCase.
func (EngagementCase) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("engagement_id").
			Unique().
			Immutable(),
		field.String("scheduling_id"),
		field.String("rca_id").
			Optional(),
		field.String("case_id"),
		field.String("vehicle_id"),
		field.String("customer_phone").
			Optional().
			Nillable(),
		field.String("customer_name").
			Optional().
			Nillable(),
		field.Enum("customer_decision").
			Values("confirmed", "declined", "no_response"),
		field.String("booking_id").
			Optional().
			Nillable().
			Comment("Set exactly when customer_decision=confirmed"),
		field.JSON("transcript", []map[string]any{}).
			Optional().
			Comment("Simulated dialogue turns ({speaker, text})"),
		field.Enum("status").
			Values("completed").
			Default("completed"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the EngagementCase.
func (EngagementCase) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("scheduling_id"),
		index.Fields("case_id"),
	}
}
