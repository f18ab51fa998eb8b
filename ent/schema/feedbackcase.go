package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// FeedbackCase holds the schema definition for the post-service feedback
// evaluation.
type FeedbackCase struct {
	ent.Schema
}

// Fields of the FeedbackCase.
func (FeedbackCase) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("feedback_id").
			Unique().
			Immutable(),
		field.String("booking_id"),
		field.String("case_id"),
		field.String("vehicle_id"),
		field.Float("cei_score").
			Comment("Customer Effort Index, [1.0,5.0]"),
		field.Enum("validation_label").
			Values("Correct", "Recurring", "Incorrect"),
		field.Bool("recommended_retrain").
			Comment("True exactly when validation_label is Recurring or Incorrect"),
		field.Text("technician_notes").
			Optional(),
		field.Int("customer_rating").
			Optional().
			Nillable(),
		field.Enum("status").
			Values("pending_manufacturing", "manufacturing_complete").
			Default("pending_manufacturing"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the FeedbackCase.
func (FeedbackCase) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("booking_id"),
		index.Fields("case_id"),
	}
}
