package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SchedulingCase holds the schema definition for the scheduling stage output.
type SchedulingCase struct {
	ent.Schema
}

// Fields of the SchedulingCase.
func (SchedulingCase) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("scheduling_id").
			Unique().
			Immutable(),
		field.String("rca_id"),
		field.String("diagnosis_id"),
		field.String("case_id"),
		field.String("vehicle_id"),
		field.Time("best_slot").
			Comment("UTC instant inside the chosen center's operating hours"),
		field.String("service_center"),
		field.Enum("slot_type").
			Values("urgent", "normal", "delayed").
			Comment("Derived from the diagnosis RUL band"),
		field.JSON("fallback_slots", []string{}).
			Comment("At least two ISO-8601 UTC instants"),
		field.Enum("status").
			Values("pending_engagement", "engagement_complete").
			Default("pending_engagement"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the SchedulingCase.
func (SchedulingCase) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("rca_id"),
		index.Fields("case_id"),
	}
}
