package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Booking holds the schema definition for a confirmed or pending service
// appointment at a service center.
type Booking struct {
	ent.Schema
}

// Fields of the Booking.
func (Booking) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("booking_id").
			Unique().
			Immutable().
			Comment("booking_<hex>, minted by the engagement stage"),
		field.String("case_id"),
		field.String("vehicle_id"),
		field.String("service_center"),
		field.Time("scheduled_slot"),
		field.Enum("status").
			Values("confirmed", "pending", "feedback_complete").
			Default("confirmed"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the Booking.
func (Booking) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("case_id"),
		index.Fields("vehicle_id"),
		// Slot availability subtracts booked slots per center.
		index.Fields("service_center", "scheduled_slot"),
	}
}
