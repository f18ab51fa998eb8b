package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ManufacturingCase holds the schema definition for the manufacturing-quality
// insight derived from a feedback case and fleet recurrence counts.
type ManufacturingCase struct {
	ent.Schema
}

// Fields of the ManufacturingCase.
func (ManufacturingCase) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("manufacturing_id").
			Unique().
			Immutable(),
		field.String("feedback_id"),
		field.String("case_id"),
		field.String("vehicle_id"),
		field.Text("issue"),
		field.Text("capa_recommendation"),
		field.Enum("severity").
			Values("Low", "Medium", "High"),
		field.Int("recurrence_cluster_size").
			Comment("max(vehicle, anomaly-type, component counts, model value); >=1"),
		field.Int("vehicle_recurrence_count").
			Default(0),
		field.Int("anomaly_type_recurrence_count").
			Default(0).
			Comment("Fleet-wide occurrences of the same anomaly type"),
		field.Int("component_recurrence_count").
			Default(0).
			Comment("Fleet-wide occurrences against the same component"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the ManufacturingCase.
func (ManufacturingCase) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("feedback_id"),
		index.Fields("case_id"),
	}
}
