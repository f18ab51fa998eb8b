// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/fleetsense/fleetsense/ent/anomalycase"
)

// AnomalyCase is the model entity for the AnomalyCase schema.
type AnomalyCase struct {
	config `json:"-"`
	// ID of the ent.
	// case_<hex>; the subject key for the whole downstream pipeline
	ID string `json:"id,omitempty"`
	// VehicleID holds the value of the "vehicle_id" field.
	VehicleID string `json:"vehicle_id,omitempty"`
	// AnomalyDetected holds the value of the "anomaly_detected" field.
	AnomalyDetected bool `json:"anomaly_detected,omitempty"`
	// null exactly when anomaly_detected=false
	AnomalyType *anomalycase.AnomalyType `json:"anomaly_type,omitempty"`
	// [0,1]; null exactly when anomaly_detected=false
	SeverityScore *float64 `json:"severity_score,omitempty"`
	// TelemetryEventIds holds the value of the "telemetry_event_ids" field.
	TelemetryEventIds []string `json:"telemetry_event_ids,omitempty"`
	// Status holds the value of the "status" field.
	Status anomalycase.Status `json:"status,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*AnomalyCase) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case anomalycase.FieldTelemetryEventIds:
			values[i] = new([]byte)
		case anomalycase.FieldAnomalyDetected:
			values[i] = new(sql.NullBool)
		case anomalycase.FieldSeverityScore:
			values[i] = new(sql.NullFloat64)
		case anomalycase.FieldID, anomalycase.FieldVehicleID, anomalycase.FieldAnomalyType, anomalycase.FieldStatus:
			values[i] = new(sql.NullString)
		case anomalycase.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the AnomalyCase fields.
func (_m *AnomalyCase) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case anomalycase.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case anomalycase.FieldVehicleID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field vehicle_id", values[i])
			} else if value.Valid {
				_m.VehicleID = value.String
			}
		case anomalycase.FieldAnomalyDetected:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field anomaly_detected", values[i])
			} else if value.Valid {
				_m.AnomalyDetected = value.Bool
			}
		case anomalycase.FieldAnomalyType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field anomaly_type", values[i])
			} else if value.Valid {
				_m.AnomalyType = new(anomalycase.AnomalyType)
				*_m.AnomalyType = anomalycase.AnomalyType(value.String)
			}
		case anomalycase.FieldSeverityScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field severity_score", values[i])
			} else if value.Valid {
				_m.SeverityScore = new(float64)
				*_m.SeverityScore = value.Float64
			}
		case anomalycase.FieldTelemetryEventIds:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field telemetry_event_ids", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.TelemetryEventIds); err != nil {
					return fmt.Errorf("unmarshal field telemetry_event_ids: %w", err)
				}
			}
		case anomalycase.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = anomalycase.Status(value.String)
			}
		case anomalycase.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the AnomalyCase.
// This includes values selected through modifiers, order, etc.
func (_m *AnomalyCase) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this AnomalyCase.
// Note that you need to call AnomalyCase.Unwrap() before calling this method if this AnomalyCase
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *AnomalyCase) Update() *AnomalyCaseUpdateOne {
	return NewAnomalyCaseClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the AnomalyCase entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *AnomalyCase) Unwrap() *AnomalyCase {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: AnomalyCase is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *AnomalyCase) String() string {
	var builder strings.Builder
	builder.WriteString("AnomalyCase(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("vehicle_id=")
	builder.WriteString(_m.VehicleID)
	builder.WriteString(", ")
	builder.WriteString("anomaly_detected=")
	builder.WriteString(fmt.Sprintf("%v", _m.AnomalyDetected))
	builder.WriteString(", ")
	if v := _m.AnomalyType; v != nil {
		builder.WriteString("anomaly_type=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.SeverityScore; v != nil {
		builder.WriteString("severity_score=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("telemetry_event_ids=")
	builder.WriteString(fmt.Sprintf("%v", _m.TelemetryEventIds))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// AnomalyCases is a parsable slice of AnomalyCase.
type AnomalyCases []*AnomalyCase
