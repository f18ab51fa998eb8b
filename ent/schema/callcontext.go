package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// CallContext holds the schema definition for the short-lived lookup that lets
// the telephony webhook correlate a provider call back to its communication
// case without touching the bus. Swept after 24h.
type CallContext struct {
	ent.Schema
}

// Fields of the CallContext.
func (CallContext) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("call_sid").
			Unique().
			Immutable(),
		field.String("communication_id"),
		field.String("engagement_id"),
		field.String("case_id"),
		field.String("vehicle_id"),
		field.String("customer_phone"),
		field.String("customer_name").
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the CallContext.
func (CallContext) Indexes() []ent.Index {
	return []ent.Index{
		// Retention sweeps by age.
		index.Fields("created_at"),
	}
}
