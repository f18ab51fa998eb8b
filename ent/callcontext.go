// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/fleetsense/fleetsense/ent/callcontext"
)

// CallContext is the model entity for the CallContext schema.
type CallContext struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// CommunicationID holds the value of the "communication_id" field.
	CommunicationID string `json:"communication_id,omitempty"`
	// EngagementID holds the value of the "engagement_id" field.
	EngagementID string `json:"engagement_id,omitempty"`
	// CaseID holds the value of the "case_id" field.
	CaseID string `json:"case_id,omitempty"`
	// VehicleID holds the value of the "vehicle_id" field.
	VehicleID string `json:"vehicle_id,omitempty"`
	// CustomerPhone holds the value of the "customer_phone" field.
	CustomerPhone string `json:"customer_phone,omitempty"`
	// CustomerName holds the value of the "customer_name" field.
	CustomerName string `json:"customer_name,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*CallContext) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case callcontext.FieldID, callcontext.FieldCommunicationID, callcontext.FieldEngagementID, callcontext.FieldCaseID, callcontext.FieldVehicleID, callcontext.FieldCustomerPhone, callcontext.FieldCustomerName:
			values[i] = new(sql.NullString)
		case callcontext.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the CallContext fields.
func (_m *CallContext) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case callcontext.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case callcontext.FieldCommunicationID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field communication_id", values[i])
			} else if value.Valid {
				_m.CommunicationID = value.String
			}
		case callcontext.FieldEngagementID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field engagement_id", values[i])
			} else if value.Valid {
				_m.EngagementID = value.String
			}
		case callcontext.FieldCaseID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field case_id", values[i])
			} else if value.Valid {
				_m.CaseID = value.String
			}
		case callcontext.FieldVehicleID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field vehicle_id", values[i])
			} else if value.Valid {
				_m.VehicleID = value.String
			}
		case callcontext.FieldCustomerPhone:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field customer_phone", values[i])
			} else if value.Valid {
				_m.CustomerPhone = value.String
			}
		case callcontext.FieldCustomerName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field customer_name", values[i])
			} else if value.Valid {
				_m.CustomerName = value.String
			}
		case callcontext.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the CallContext.
// This includes values selected through modifiers, order, etc.
func (_m *CallContext) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this CallContext.
// Note that you need to call CallContext.Unwrap() before calling this method if this CallContext
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *CallContext) Update() *CallContextUpdateOne {
	return NewCallContextClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the CallContext entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *CallContext) Unwrap() *CallContext {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: CallContext is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *CallContext) String() string {
	var builder strings.Builder
	builder.WriteString("CallContext(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("communication_id=")
	builder.WriteString(_m.CommunicationID)
	builder.WriteString(", ")
	builder.WriteString("engagement_id=")
	builder.WriteString(_m.EngagementID)
	builder.WriteString(", ")
	builder.WriteString("case_id=")
	builder.WriteString(_m.CaseID)
	builder.WriteString(", ")
	builder.WriteString("vehicle_id=")
	builder.WriteString(_m.VehicleID)
	builder.WriteString(", ")
	builder.WriteString("customer_phone=")
	builder.WriteString(_m.CustomerPhone)
	builder.WriteString(", ")
	builder.WriteString("customer_name=")
	builder.WriteString(_m.CustomerName)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// CallContexts is a parsable slice of CallContext.
type CallContexts []*CallContext
