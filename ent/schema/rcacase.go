package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// RcaCase holds the schema definition for the root-cause-analysis stage output.
type RcaCase struct {
	ent.Schema
}

// Fields of the RcaCase.
func (RcaCase) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("rca_id").
			Unique().
			Immutable(),
		field.String("diagnosis_id"),
		field.String("case_id"),
		field.String("vehicle_id"),
		field.Text("root_cause"),
		field.Float("confidence").
			Comment("[0,1]; gating input for the orchestrator"),
		field.Text("recommended_action"),
		field.Enum("capa_type").
			Values("Corrective", "Preventive"),
		field.Enum("status").
			Values("pending_scheduling", "scheduled", "engaged", "completed").
			Default("pending_scheduling"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the RcaCase.
func (RcaCase) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("diagnosis_id"),
		index.Fields("case_id"),
	}
}
