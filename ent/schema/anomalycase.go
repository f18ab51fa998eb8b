package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AnomalyCase holds the schema definition for the anomaly-detection stage output.
// One case per vehicle per quiet period; the duplicate gates enforce that.
type AnomalyCase struct {
	ent.Schema
}

// Fields of the AnomalyCase.
func (AnomalyCase) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("case_id").
			Unique().
			Immutable().
			Comment("case_<hex>; the subject key for the whole downstream pipeline"),
		field.String("vehicle_id"),
		field.Bool("anomaly_detected").
			Default(false),
		field.Enum("anomaly_type").
			Values(
				"thermal_overheat",
				"oil_overheat",
				"battery_degradation",
				"low_charge",
				"rpm_spike",
				"rpm_stall",
				"dtc_fault",
				"speed_anomaly",
				"gps_anomaly",
			).
			Optional().
			Nillable().
			Comment("null exactly when anomaly_detected=false"),
		field.Float("severity_score").
			Optional().
			Nillable().
			Comment("[0,1]; null exactly when anomaly_detected=false"),
		field.JSON("telemetry_event_ids", []string{}).
			Optional(),
		field.Enum("status").
			Values("pending_diagnosis", "diagnosing", "diagnosed", "scheduled", "engaged", "completed").
			Default("pending_diagnosis"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the AnomalyCase.
func (AnomalyCase) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("vehicle_id"),
		// Duplicate gates query pending cases per vehicle by recency.
		index.Fields("vehicle_id", "status", "created_at"),
	}
}
