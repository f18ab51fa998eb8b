// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/fleetsense/fleetsense/ent/schedulingcase"
)

// SchedulingCase is the model entity for the SchedulingCase schema.
type SchedulingCase struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// RcaID holds the value of the "rca_id" field.
	RcaID string `json:"rca_id,omitempty"`
	// DiagnosisID holds the value of the "diagnosis_id" field.
	DiagnosisID string `json:"diagnosis_id,omitempty"`
	// CaseID holds the value of the "case_id" field.
	CaseID string `json:"case_id,omitempty"`
	// VehicleID holds the value of the "vehicle_id" field.
	VehicleID string `json:"vehicle_id,omitempty"`
	// UTC instant inside the chosen center's operating hours
	BestSlot time.Time `json:"best_slot,omitempty"`
	// ServiceCenter holds the value of the "service_center" field.
	ServiceCenter string `json:"service_center,omitempty"`
	// Derived from the diagnosis RUL band
	SlotType schedulingcase.SlotType `json:"slot_type,omitempty"`
	// At least two ISO-8601 UTC instants
	FallbackSlots []string `json:"fallback_slots,omitempty"`
	// Status holds the value of the "status" field.
	Status schedulingcase.Status `json:"status,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*SchedulingCase) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case schedulingcase.FieldFallbackSlots:
			values[i] = new([]byte)
		case schedulingcase.FieldID, schedulingcase.FieldRcaID, schedulingcase.FieldDiagnosisID, schedulingcase.FieldCaseID, schedulingcase.FieldVehicleID, schedulingcase.FieldServiceCenter, schedulingcase.FieldSlotType, schedulingcase.FieldStatus:
			values[i] = new(sql.NullString)
		case schedulingcase.FieldBestSlot, schedulingcase.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the SchedulingCase fields.
func (_m *SchedulingCase) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case schedulingcase.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case schedulingcase.FieldRcaID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field rca_id", values[i])
			} else if value.Valid {
				_m.RcaID = value.String
			}
		case schedulingcase.FieldDiagnosisID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field diagnosis_id", values[i])
			} else if value.Valid {
				_m.DiagnosisID = value.String
			}
		case schedulingcase.FieldCaseID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field case_id", values[i])
			} else if value.Valid {
				_m.CaseID = value.String
			}
		case schedulingcase.FieldVehicleID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field vehicle_id", values[i])
			} else if value.Valid {
				_m.VehicleID = value.String
			}
		case schedulingcase.FieldBestSlot:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field best_slot", values[i])
			} else if value.Valid {
				_m.BestSlot = value.Time
			}
		case schedulingcase.FieldServiceCenter:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field service_center", values[i])
			} else if value.Valid {
				_m.ServiceCenter = value.String
			}
		case schedulingcase.FieldSlotType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field slot_type", values[i])
			} else if value.Valid {
				_m.SlotType = schedulingcase.SlotType(value.String)
			}
		case schedulingcase.FieldFallbackSlots:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field fallback_slots", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.FallbackSlots); err != nil {
					return fmt.Errorf("unmarshal field fallback_slots: %w", err)
				}
			}
		case schedulingcase.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = schedulingcase.Status(value.String)
			}
		case schedulingcase.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the SchedulingCase.
// This includes values selected through modifiers, order, etc.
func (_m *SchedulingCase) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this SchedulingCase.
// Note that you need to call SchedulingCase.Unwrap() before calling this method if this SchedulingCase
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *SchedulingCase) Update() *SchedulingCaseUpdateOne {
	return NewSchedulingCaseClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the SchedulingCase entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *SchedulingCase) Unwrap() *SchedulingCase {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: SchedulingCase is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *SchedulingCase) String() string {
	var builder strings.Builder
	builder.WriteString("SchedulingCase(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("rca_id=")
	builder.WriteString(_m.RcaID)
	builder.WriteString(", ")
	builder.WriteString("diagnosis_id=")
	builder.WriteString(_m.DiagnosisID)
	builder.WriteString(", ")
	builder.WriteString("case_id=")
	builder.WriteString(_m.CaseID)
	builder.WriteString(", ")
	builder.WriteString("vehicle_id=")
	builder.WriteString(_m.VehicleID)
	builder.WriteString(", ")
	builder.WriteString("best_slot=")
	builder.WriteString(_m.BestSlot.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("service_center=")
	builder.WriteString(_m.ServiceCenter)
	builder.WriteString(", ")
	builder.WriteString("slot_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.SlotType))
	builder.WriteString(", ")
	builder.WriteString("fallback_slots=")
	builder.WriteString(fmt.Sprintf("%v", _m.FallbackSlots))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// SchedulingCases is a parsable slice of SchedulingCase.
type SchedulingCases []*SchedulingCase
