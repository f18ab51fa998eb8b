// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/fleetsense/fleetsense/ent/manufacturingcase"
)

// ManufacturingCase is the model entity for the ManufacturingCase schema.
type ManufacturingCase struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// FeedbackID holds the value of the "feedback_id" field.
	FeedbackID string `json:"feedback_id,omitempty"`
	// CaseID holds the value of the "case_id" field.
	CaseID string `json:"case_id,omitempty"`
	// VehicleID holds the value of the "vehicle_id" field.
	VehicleID string `json:"vehicle_id,omitempty"`
	// Issue holds the value of the "issue" field.
	Issue string `json:"issue,omitempty"`
	// CapaRecommendation holds the value of the "capa_recommendation" field.
	CapaRecommendation string `json:"capa_recommendation,omitempty"`
	// Severity holds the value of the "severity" field.
	Severity manufacturingcase.Severity `json:"severity,omitempty"`
	// max(vehicle, anomaly-type, component counts, model value); >=1
	RecurrenceClusterSize int `json:"recurrence_cluster_size,omitempty"`
	// VehicleRecurrenceCount holds the value of the "vehicle_recurrence_count" field.
	VehicleRecurrenceCount int `json:"vehicle_recurrence_count,omitempty"`
	// Fleet-wide occurrences of the same anomaly type
	AnomalyTypeRecurrenceCount int `json:"anomaly_type_recurrence_count,omitempty"`
	// Fleet-wide occurrences against the same component
	ComponentRecurrenceCount int `json:"component_recurrence_count,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ManufacturingCase) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case manufacturingcase.FieldRecurrenceClusterSize, manufacturingcase.FieldVehicleRecurrenceCount, manufacturingcase.FieldAnomalyTypeRecurrenceCount, manufacturingcase.FieldComponentRecurrenceCount:
			values[i] = new(sql.NullInt64)
		case manufacturingcase.FieldID, manufacturingcase.FieldFeedbackID, manufacturingcase.FieldCaseID, manufacturingcase.FieldVehicleID, manufacturingcase.FieldIssue, manufacturingcase.FieldCapaRecommendation, manufacturingcase.FieldSeverity:
			values[i] = new(sql.NullString)
		case manufacturingcase.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ManufacturingCase fields.
func (_m *ManufacturingCase) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case manufacturingcase.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case manufacturingcase.FieldFeedbackID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field feedback_id", values[i])
			} else if value.Valid {
				_m.FeedbackID = value.String
			}
		case manufacturingcase.FieldCaseID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field case_id", values[i])
			} else if value.Valid {
				_m.CaseID = value.String
			}
		case manufacturingcase.FieldVehicleID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field vehicle_id", values[i])
			} else if value.Valid {
				_m.VehicleID = value.String
			}
		case manufacturingcase.FieldIssue:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field issue", values[i])
			} else if value.Valid {
				_m.Issue = value.String
			}
		case manufacturingcase.FieldCapaRecommendation:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field capa_recommendation", values[i])
			} else if value.Valid {
				_m.CapaRecommendation = value.String
			}
		case manufacturingcase.FieldSeverity:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field severity", values[i])
			} else if value.Valid {
				_m.Severity = manufacturingcase.Severity(value.String)
			}
		case manufacturingcase.FieldRecurrenceClusterSize:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field recurrence_cluster_size", values[i])
			} else if value.Valid {
				_m.RecurrenceClusterSize = int(value.Int64)
			}
		case manufacturingcase.FieldVehicleRecurrenceCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field vehicle_recurrence_count", values[i])
			} else if value.Valid {
				_m.VehicleRecurrenceCount = int(value.Int64)
			}
		case manufacturingcase.FieldAnomalyTypeRecurrenceCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field anomaly_type_recurrence_count", values[i])
			} else if value.Valid {
				_m.AnomalyTypeRecurrenceCount = int(value.Int64)
			}
		case manufacturingcase.FieldComponentRecurrenceCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field component_recurrence_count", values[i])
			} else if value.Valid {
				_m.ComponentRecurrenceCount = int(value.Int64)
			}
		case manufacturingcase.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the ManufacturingCase.
// This includes values selected through modifiers, order, etc.
func (_m *ManufacturingCase) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ManufacturingCase.
// Note that you need to call ManufacturingCase.Unwrap() before calling this method if this ManufacturingCase
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ManufacturingCase) Update() *ManufacturingCaseUpdateOne {
	return NewManufacturingCaseClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ManufacturingCase entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ManufacturingCase) Unwrap() *ManufacturingCase {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ManufacturingCase is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ManufacturingCase) String() string {
	var builder strings.Builder
	builder.WriteString("ManufacturingCase(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("feedback_id=")
	builder.WriteString(_m.FeedbackID)
	builder.WriteString(", ")
	builder.WriteString("case_id=")
	builder.WriteString(_m.CaseID)
	builder.WriteString(", ")
	builder.WriteString("vehicle_id=")
	builder.WriteString(_m.VehicleID)
	builder.WriteString(", ")
	builder.WriteString("issue=")
	builder.WriteString(_m.Issue)
	builder.WriteString(", ")
	builder.WriteString("capa_recommendation=")
	builder.WriteString(_m.CapaRecommendation)
	builder.WriteString(", ")
	builder.WriteString("severity=")
	builder.WriteString(fmt.Sprintf("%v", _m.Severity))
	builder.WriteString(", ")
	builder.WriteString("recurrence_cluster_size=")
	builder.WriteString(fmt.Sprintf("%v", _m.RecurrenceClusterSize))
	builder.WriteString(", ")
	builder.WriteString("vehicle_recurrence_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.VehicleRecurrenceCount))
	builder.WriteString(", ")
	builder.WriteString("anomaly_type_recurrence_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.AnomalyTypeRecurrenceCount))
	builder.WriteString(", ")
	builder.WriteString("component_recurrence_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.ComponentRecurrenceCount))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ManufacturingCases is a parsable slice of ManufacturingCase.
type ManufacturingCases []*ManufacturingCase
