// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/fleetsense/fleetsense/ent/communicationcase"
)

// CommunicationCase is the model entity for the CommunicationCase schema.
type CommunicationCase struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Duplicate suppression for this stage keys on it
	EngagementID string `json:"engagement_id,omitempty"`
	// CaseID holds the value of the "case_id" field.
	CaseID string `json:"case_id,omitempty"`
	// VehicleID holds the value of the "vehicle_id" field.
	VehicleID string `json:"vehicle_id,omitempty"`
	// CustomerPhone holds the value of the "customer_phone" field.
	CustomerPhone string `json:"customer_phone,omitempty"`
	// CustomerName holds the value of the "customer_name" field.
	CustomerName *string `json:"customer_name,omitempty"`
	// CallStatus holds the value of the "call_status" field.
	CallStatus communicationcase.CallStatus `json:"call_status,omitempty"`
	// ConversationStage holds the value of the "conversation_stage" field.
	ConversationStage communicationcase.ConversationStage `json:"conversation_stage,omitempty"`
	// Ordered turns ({speaker, text})
	ConversationTranscript []map[string]interface{} `json:"conversation_transcript,omitempty"`
	// Outcome holds the value of the "outcome" field.
	Outcome *communicationcase.Outcome `json:"outcome,omitempty"`
	// BookingID holds the value of the "booking_id" field.
	BookingID *string `json:"booking_id,omitempty"`
	// Provider call correlator
	CallSid *string `json:"call_sid,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*CommunicationCase) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case communicationcase.FieldConversationTranscript:
			values[i] = new([]byte)
		case communicationcase.FieldID, communicationcase.FieldEngagementID, communicationcase.FieldCaseID, communicationcase.FieldVehicleID, communicationcase.FieldCustomerPhone, communicationcase.FieldCustomerName, communicationcase.FieldCallStatus, communicationcase.FieldConversationStage, communicationcase.FieldOutcome, communicationcase.FieldBookingID, communicationcase.FieldCallSid:
			values[i] = new(sql.NullString)
		case communicationcase.FieldCreatedAt, communicationcase.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the CommunicationCase fields.
func (_m *CommunicationCase) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case communicationcase.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case communicationcase.FieldEngagementID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field engagement_id", values[i])
			} else if value.Valid {
				_m.EngagementID = value.String
			}
		case communicationcase.FieldCaseID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field case_id", values[i])
			} else if value.Valid {
				_m.CaseID = value.String
			}
		case communicationcase.FieldVehicleID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field vehicle_id", values[i])
			} else if value.Valid {
				_m.VehicleID = value.String
			}
		case communicationcase.FieldCustomerPhone:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field customer_phone", values[i])
			} else if value.Valid {
				_m.CustomerPhone = value.String
			}
		case communicationcase.FieldCustomerName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field customer_name", values[i])
			} else if value.Valid {
				_m.CustomerName = new(string)
				*_m.CustomerName = value.String
			}
		case communicationcase.FieldCallStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field call_status", values[i])
			} else if value.Valid {
				_m.CallStatus = communicationcase.CallStatus(value.String)
			}
		case communicationcase.FieldConversationStage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field conversation_stage", values[i])
			} else if value.Valid {
				_m.ConversationStage = communicationcase.ConversationStage(value.String)
			}
		case communicationcase.FieldConversationTranscript:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field conversation_transcript", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ConversationTranscript); err != nil {
					return fmt.Errorf("unmarshal field conversation_transcript: %w", err)
				}
			}
		case communicationcase.FieldOutcome:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field outcome", values[i])
			} else if value.Valid {
				_m.Outcome = new(communicationcase.Outcome)
				*_m.Outcome = communicationcase.Outcome(value.String)
			}
		case communicationcase.FieldBookingID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field booking_id", values[i])
			} else if value.Valid {
				_m.BookingID = new(string)
				*_m.BookingID = value.String
			}
		case communicationcase.FieldCallSid:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field call_sid", values[i])
			} else if value.Valid {
				_m.CallSid = new(string)
				*_m.CallSid = value.String
			}
		case communicationcase.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case communicationcase.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the CommunicationCase.
// This includes values selected through modifiers, order, etc.
func (_m *CommunicationCase) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this CommunicationCase.
// Note that you need to call CommunicationCase.Unwrap() before calling this method if this CommunicationCase
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *CommunicationCase) Update() *CommunicationCaseUpdateOne {
	return NewCommunicationCaseClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the CommunicationCase entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *CommunicationCase) Unwrap() *CommunicationCase {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: CommunicationCase is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *CommunicationCase) String() string {
	var builder strings.Builder
	builder.WriteString("CommunicationCase(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
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
	if v := _m.CustomerName; v != nil {
		builder.WriteString("customer_name=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("call_status=")
	builder.WriteString(fmt.Sprintf("%v", _m.CallStatus))
	builder.WriteString(", ")
	builder.WriteString("conversation_stage=")
	builder.WriteString(fmt.Sprintf("%v", _m.ConversationStage))
	builder.WriteString(", ")
	builder.WriteString("conversation_transcript=")
	builder.WriteString(fmt.Sprintf("%v", _m.ConversationTranscript))
	builder.WriteString(", ")
	if v := _m.Outcome; v != nil {
		builder.WriteString("outcome=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.BookingID; v != nil {
		builder.WriteString("booking_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.CallSid; v != nil {
		builder.WriteString("call_sid=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// CommunicationCases is a parsable slice of CommunicationCase.
type CommunicationCases []*CommunicationCase
