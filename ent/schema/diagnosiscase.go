package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// DiagnosisCase holds the schema definition for the diagnosis stage output.
type DiagnosisCase struct {
	ent.Schema
}

// Fields of the DiagnosisCase.
func (DiagnosisCase) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("diagnosis_id").
			Unique().
			Immutable(),
		field.String("case_id").
			Comment("Upstream anomaly case"),
		field.String("vehicle_id"),
		field.String("component").
			Comment("Affected subsystem (engine_coolant_system, battery, ...)"),
		field.Float("failure_probability").
			Comment("[0,1]; the severity label bands derive from it"),
		field.Int("estimated_rul_days").
			Comment("Remaining useful life, floor 1"),
		field.Enum("severity").
			Values("Low", "Medium", "High"),
		field.JSON("context_event_ids", []string{}).
			Optional().
			Comment("Telemetry window forwarded unchanged from the anomaly case"),
		field.Enum("status").
			Values("pending_rca", "rca_complete", "scheduled", "engaged", "completed").
			Default("pending_rca"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the DiagnosisCase.
func (DiagnosisCase) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("case_id"),
		index.Fields("vehicle_id"),
	}
}
