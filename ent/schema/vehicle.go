package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// Vehicle holds the schema definition for the owner-contact registry read by
// the engagement and communication stages.
type Vehicle struct {
	ent.Schema
}

// Fields of the Vehicle.
func (Vehicle) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("vehicle_id").
			Unique().
			Immutable(),
		field.String("owner_name").
			Optional().
			Nillable(),
		field.String("owner_phone").
			Optional().
			Nillable(),
		field.String("make").
			Optional(),
		field.String("model").
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}
