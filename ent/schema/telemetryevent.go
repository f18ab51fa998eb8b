package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// TelemetryEvent holds the schema definition for one ingested telemetry sample.
// Immutable after insert; the ingest handler is the only writer.
type TelemetryEvent struct {
	ent.Schema
}

// Fields of the TelemetryEvent.
func (TelemetryEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("event_id").
			Unique().
			Immutable().
			Comment("External or generated key (evt_<hex>)"),
		field.String("vehicle_id").
			Immutable(),
		field.Time("timestamp").
			Immutable().
			Comment("Sample instant (UTC) as reported by the vehicle"),
		field.Float("latitude").
			Optional().
			Nillable(),
		field.Float("longitude").
			Optional().
			Nillable(),
		field.Float("speed_kmph").
			Default(0),
		field.Float("odometer_km").
			Default(0),
		field.Float("engine_rpm").
			Default(0),
		field.Float("coolant_temp_c").
			Default(0),
		field.Float("oil_temp_c").
			Default(0),
		field.Float("fuel_level_pct").
			Default(0),
		field.Float("battery_soc_pct").
			Default(0),
		field.Float("battery_soh_pct").
			Default(100),
		field.JSON("dtc_codes", []string{}).
			Optional().
			Comment("Ordered diagnostic trouble codes present in the sample"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the TelemetryEvent.
func (TelemetryEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("vehicle_id"),
		// Window queries: last N samples per vehicle.
		index.Fields("vehicle_id", "timestamp"),
	}
}
