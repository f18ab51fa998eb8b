// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/fleetsense/fleetsense/ent/rcacase"
)

// RcaCase is the model entity for the RcaCase schema.
type RcaCase struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// DiagnosisID holds the value of the "diagnosis_id" field.
	DiagnosisID string `json:"diagnosis_id,omitempty"`
	// CaseID holds the value of the "case_id" field.
	CaseID string `json:"case_id,omitempty"`
	// VehicleID holds the value of the "vehicle_id" field.
	VehicleID string `json:"vehicle_id,omitempty"`
	// RootCause holds the value of the "root_cause" field.
	RootCause string `json:"root_cause,omitempty"`
	// [0,1]; gating input for the orchestrator
	Confidence float64 `json:"confidence,omitempty"`
	// RecommendedAction holds the value of the "recommended_action" field.
	RecommendedAction string `json:"recommended_action,omitempty"`
	// CapaType holds the value of the "capa_type" field.
	CapaType rcacase.CapaType `json:"capa_type,omitempty"`
	// Status holds the value of the "status" field.
	Status rcacase.Status `json:"status,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*RcaCase) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case rcacase.FieldConfidence:
			values[i] = new(sql.NullFloat64)
		case rcacase.FieldID, rcacase.FieldDiagnosisID, rcacase.FieldCaseID, rcacase.FieldVehicleID, rcacase.FieldRootCause, rcacase.FieldRecommendedAction, rcacase.FieldCapaType, rcacase.FieldStatus:
			values[i] = new(sql.NullString)
		case rcacase.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the RcaCase fields.
func (_m *RcaCase) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case rcacase.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case rcacase.FieldDiagnosisID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field diagnosis_id", values[i])
			} else if value.Valid {
				_m.DiagnosisID = value.String
			}
		case rcacase.FieldCaseID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field case_id", values[i])
			} else if value.Valid {
				_m.CaseID = value.String
			}
		case rcacase.FieldVehicleID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field vehicle_id", values[i])
			} else if value.Valid {
				_m.VehicleID = value.String
			}
		case rcacase.FieldRootCause:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field root_cause", values[i])
			} else if value.Valid {
				_m.RootCause = value.String
			}
		case rcacase.FieldConfidence:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field confidence", values[i])
			} else if value.Valid {
				_m.Confidence = value.Float64
			}
		case rcacase.FieldRecommendedAction:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field recommended_action", values[i])
			} else if value.Valid {
				_m.RecommendedAction = value.String
			}
		case rcacase.FieldCapaType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field capa_type", values[i])
			} else if value.Valid {
				_m.CapaType = rcacase.CapaType(value.String)
			}
		case rcacase.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = rcacase.Status(value.String)
			}
		case rcacase.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the RcaCase.
// This includes values selected through modifiers, order, etc.
func (_m *RcaCase) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this RcaCase.
// Note that you need to call RcaCase.Unwrap() before calling this method if this RcaCase
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *RcaCase) Update() *RcaCaseUpdateOne {
	return NewRcaCaseClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the RcaCase entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *RcaCase) Unwrap() *RcaCase {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: RcaCase is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *RcaCase) String() string {
	var builder strings.Builder
	builder.WriteString("RcaCase(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("diagnosis_id=")
	builder.WriteString(_m.DiagnosisID)
	builder.WriteString(", ")
	builder.WriteString("case_id=")
	builder.WriteString(_m.CaseID)
	builder.WriteString(", ")
	builder.WriteString("vehicle_id=")
	builder.WriteString(_m.VehicleID)
	builder.WriteString(", ")
	builder.WriteString("root_cause=")
	builder.WriteString(_m.RootCause)
	builder.WriteString(", ")
	builder.WriteString("confidence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Confidence))
	builder.WriteString(", ")
	builder.WriteString("recommended_action=")
	builder.WriteString(_m.RecommendedAction)
	builder.WriteString(", ")
	builder.WriteString("capa_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.CapaType))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// RcaCases is a parsable slice of RcaCase.
type RcaCases []*RcaCase
