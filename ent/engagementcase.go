// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/fleetsense/fleetsense/ent/engagementcase"
)

// EngagementCase is the model entity for the EngagementCase schema.
type EngagementCase struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// SchedulingID holds the value of the "scheduling_id" field.
	SchedulingID string `json:"scheduling_id,omitempty"`
	// RcaID holds the value of the "rca_id" field.
	RcaID string `json:"rca_id,omitempty"`
	// CaseID holds the value of the "case_id" field.
	CaseID string `json:"case_id,omitempty"`
	// VehicleID holds the value of the "vehicle_id" field.
	VehicleID string `json:"vehicle_id,omitempty"`
	// CustomerPhone holds the value of the "customer_phone" field.
	CustomerPhone *string `json:"customer_phone,omitempty"`
	// CustomerName holds the value of the "customer_name" field.
	CustomerName *string `json:"customer_name,omitempty"`
	// CustomerDecision holds the value of the "customer_decision" field.
	CustomerDecision engagementcase.CustomerDecision `json:"customer_decision,omitempty"`
	// Set exactly when customer_decision=confirmed
	BookingID *string `json:"booking_id,omitempty"`
	// Simulated dialogue turns ({speaker, text})
	Transcript []map[string]interface{} `json:"transcript,omitempty"`
	// Status holds the value of the "status" field.
	Status engagementcase.Status `json:"status,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*EngagementCase) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case engagementcase.FieldTranscript:
			values[i] = new([]byte)
		case engagementcase.FieldID, engagementcase.FieldSchedulingID, engagementcase.FieldRcaID, engagementcase.FieldCaseID, engagementcase.FieldVehicleID, engagementcase.FieldCustomerPhone, engagementcase.FieldCustomerName, engagementcase.FieldCustomerDecision, engagementcase.FieldBookingID, engagementcase.FieldStatus:
			values[i] = new(sql.NullString)
		case engagementcase.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the EngagementCase fields.
func (_m *EngagementCase) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case engagementcase.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case engagementcase.FieldSchedulingID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field scheduling_id", values[i])
			} else if value.Valid {
				_m.SchedulingID = value.String
			}
		case engagementcase.FieldRcaID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field rca_id", values[i])
			} else if value.Valid {
				_m.RcaID = value.String
			}
		case engagementcase.FieldCaseID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field case_id", values[i])
			} else if value.Valid {
				_m.CaseID = value.String
			}
		case engagementcase.FieldVehicleID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field vehicle_id", values[i])
			} else if value.Valid {
				_m.VehicleID = value.String
			}
		case engagementcase.FieldCustomerPhone:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field customer_phone", values[i])
			} else if value.Valid {
				_m.CustomerPhone = new(string)
				*_m.CustomerPhone = value.String
			}
		case engagementcase.FieldCustomerName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field customer_name", values[i])
			} else if value.Valid {
				_m.CustomerName = new(string)
				*_m.CustomerName = value.String
			}
		case engagementcase.FieldCustomerDecision:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field customer_decision", values[i])
			} else if value.Valid {
				_m.CustomerDecision = engagementcase.CustomerDecision(value.String)
			}
		case engagementcase.FieldBookingID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field booking_id", values[i])
			} else if value.Valid {
				_m.BookingID = new(string)
				*_m.BookingID = value.String
			}
		case engagementcase.FieldTranscript:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field transcript", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Transcript); err != nil {
					return fmt.Errorf("unmarshal field transcript: %w", err)
				}
			}
		case engagementcase.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = engagementcase.Status(value.String)
			}
		case engagementcase.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the EngagementCase.
// This includes values selected through modifiers, order, etc.
func (_m *EngagementCase) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this EngagementCase.
// Note that you need to call EngagementCase.Unwrap() before calling this method if this EngagementCase
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *EngagementCase) Update() *EngagementCaseUpdateOne {
	return NewEngagementCaseClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the EngagementCase entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *EngagementCase) Unwrap() *EngagementCase {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: EngagementCase is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *EngagementCase) String() string {
	var builder strings.Builder
	builder.WriteString("EngagementCase(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("scheduling_id=")
	builder.WriteString(_m.SchedulingID)
	builder.WriteString(", ")
	builder.WriteString("rca_id=")
	builder.WriteString(_m.RcaID)
	builder.WriteString(", ")
	builder.WriteString("case_id=")
	builder.WriteString(_m.CaseID)
	builder.WriteString(", ")
	builder.WriteString("vehicle_id=")
	builder.WriteString(_m.VehicleID)
	builder.WriteString(", ")
	if v := _m.CustomerPhone; v != nil {
		builder.WriteString("customer_phone=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.CustomerName; v != nil {
		builder.WriteString("customer_name=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("customer_decision=")
	builder.WriteString(fmt.Sprintf("%v", _m.CustomerDecision))
	builder.WriteString(", ")
	if v := _m.BookingID; v != nil {
		builder.WriteString("booking_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("transcript=")
	builder.WriteString(fmt.Sprintf("%v", _m.Transcript))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// EngagementCases is a parsable slice of EngagementCase.
type EngagementCases []*EngagementCase
