// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/fleetsense/fleetsense/ent/diagnosiscase"
)

// DiagnosisCase is the model entity for the DiagnosisCase schema.
type DiagnosisCase struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Upstream anomaly case
	CaseID string `json:"case_id,omitempty"`
	// VehicleID holds the value of the "vehicle_id" field.
	VehicleID string `json:"vehicle_id,omitempty"`
	// Affected subsystem (engine_coolant_system, battery, ...)
	Component string `json:"component,omitempty"`
	// [0,1]; the severity label bands derive from it
	FailureProbability float64 `json:"failure_probability,omitempty"`
	// Remaining useful life, floor 1
	EstimatedRulDays int `json:"estimated_rul_days,omitempty"`
	// Severity holds the value of the "severity" field.
	Severity diagnosiscase.Severity `json:"severity,omitempty"`
	// Telemetry window forwarded unchanged from the anomaly case
	ContextEventIds []string `json:"context_event_ids,omitempty"`
	// Status holds the value of the "status" field.
	Status diagnosiscase.Status `json:"status,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*DiagnosisCase) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case diagnosiscase.FieldContextEventIds:
			values[i] = new([]byte)
		case diagnosiscase.FieldFailureProbability:
			values[i] = new(sql.NullFloat64)
		case diagnosiscase.FieldEstimatedRulDays:
			values[i] = new(sql.NullInt64)
		case diagnosiscase.FieldID, diagnosiscase.FieldCaseID, diagnosiscase.FieldVehicleID, diagnosiscase.FieldComponent, diagnosiscase.FieldSeverity, diagnosiscase.FieldStatus:
			values[i] = new(sql.NullString)
		case diagnosiscase.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the DiagnosisCase fields.
func (_m *DiagnosisCase) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case diagnosiscase.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case diagnosiscase.FieldCaseID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field case_id", values[i])
			} else if value.Valid {
				_m.CaseID = value.String
			}
		case diagnosiscase.FieldVehicleID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field vehicle_id", values[i])
			} else if value.Valid {
				_m.VehicleID = value.String
			}
		case diagnosiscase.FieldComponent:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field component", values[i])
			} else if value.Valid {
				_m.Component = value.String
			}
		case diagnosiscase.FieldFailureProbability:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field failure_probability", values[i])
			} else if value.Valid {
				_m.FailureProbability = value.Float64
			}
		case diagnosiscase.FieldEstimatedRulDays:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field estimated_rul_days", values[i])
			} else if value.Valid {
				_m.EstimatedRulDays = int(value.Int64)
			}
		case diagnosiscase.FieldSeverity:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field severity", values[i])
			} else if value.Valid {
				_m.Severity = diagnosiscase.Severity(value.String)
			}
		case diagnosiscase.FieldContextEventIds:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field context_event_ids", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ContextEventIds); err != nil {
					return fmt.Errorf("unmarshal field context_event_ids: %w", err)
				}
			}
		case diagnosiscase.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = diagnosiscase.Status(value.String)
			}
		case diagnosiscase.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the DiagnosisCase.
// This includes values selected through modifiers, order, etc.
func (_m *DiagnosisCase) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this DiagnosisCase.
// Note that you need to call DiagnosisCase.Unwrap() before calling this method if this DiagnosisCase
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *DiagnosisCase) Update() *DiagnosisCaseUpdateOne {
	return NewDiagnosisCaseClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the DiagnosisCase entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *DiagnosisCase) Unwrap() *DiagnosisCase {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: DiagnosisCase is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *DiagnosisCase) String() string {
	var builder strings.Builder
	builder.WriteString("DiagnosisCase(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("case_id=")
	builder.WriteString(_m.CaseID)
	builder.WriteString(", ")
	builder.WriteString("vehicle_id=")
	builder.WriteString(_m.VehicleID)
	builder.WriteString(", ")
	builder.WriteString("component=")
	builder.WriteString(_m.Component)
	builder.WriteString(", ")
	builder.WriteString("failure_probability=")
	builder.WriteString(fmt.Sprintf("%v", _m.FailureProbability))
	builder.WriteString(", ")
	builder.WriteString("estimated_rul_days=")
	builder.WriteString(fmt.Sprintf("%v", _m.EstimatedRulDays))
	builder.WriteString(", ")
	builder.WriteString("severity=")
	builder.WriteString(fmt.Sprintf("%v", _m.Severity))
	builder.WriteString(", ")
	builder.WriteString("context_event_ids=")
	builder.WriteString(fmt.Sprintf("%v", _m.ContextEventIds))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// DiagnosisCases is a parsable slice of DiagnosisCase.
type DiagnosisCases []*DiagnosisCase
