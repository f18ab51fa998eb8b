package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// CommunicationCase holds the schema definition for the live-call stage.
// Unlike the other case records it is mutated in place by the telephony
// webhook as the conversation advances.
type CommunicationCase struct {
	ent.Schema
}

// Fields of the CommunicationCase.
func (CommunicationCase) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("communication_id").
			Unique().
			Immutable(),
		field.String("engagement_id").
			Comment("Duplicate suppression for this stage keys on it"),
		field.String("case_id"),
		field.String("vehicle_id"),
		field.String("customer_phone"),
		field.String("customer_name").
			Optional().
			Nillable(),
		field.Enum("call_status").
			Values("initiating", "initiated", "ringing", "answered", "completed", "failed").
			Default("initiating"),
		field.Enum("conversation_stage").
			Values("pending", "greeting", "explanation", "scheduling", "questions", "completed").
			Default("pending"),
		field.JSON("conversation_transcript", []map[string]any{}).
			Optional().
			Comment("Ordered turns ({speaker, text})"),
		field.Enum("outcome").
			Values("confirmed", "declined").
			Optional().
			Nillable(),
		field.String("booking_id").
			Optional().
			Nillable(),
		field.String("call_sid").
			Optional().
			Nillable().
			Comment("Provider call correlator"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the CommunicationCase.
func (CommunicationCase) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("engagement_id"),
		index.Fields("call_sid"),
	}
}
