package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// BusMessage holds the schema definition for the durable message bus record.
// Delivery is at-least-once: publishers insert pending rows and notify, the
// dispatcher claims and invokes handlers, failures go back to pending with an
// availability backoff.
type BusMessage struct {
	ent.Schema
}

// Fields of the BusMessage.
func (BusMessage) Fields() []ent.Field {
	return []ent.Field{
		field.Int64("id").
			Immutable().
			Comment("BIGSERIAL assigned by the database"),
		field.String("topic"),
		field.JSON("payload", map[string]any{}),
		field.Enum("status").
			Values("pending", "delivered", "failed").
			Default("pending"),
		field.Int("attempts").
			Default(0),
		field.Time("available_at").
			Default(time.Now).
			Comment("Redelivery backoff horizon; claimable only at or after it"),
		field.String("claimed_by").
			Optional().
			Nillable().
			Comment("pod_id of the worker holding the claim"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the BusMessage.
func (BusMessage) Indexes() []ent.Index {
	return []ent.Index{
		// Claim scan.
		index.Fields("topic", "status", "available_at"),
		// Retention sweep of delivered/failed rows.
		index.Fields("status", "created_at"),
	}
}
