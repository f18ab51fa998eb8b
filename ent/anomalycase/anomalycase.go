// Code generated by ent, DO NOT EDIT.

package anomalycase

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the anomalycase type in the database.
	Label = "anomaly_case"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "case_id"
	// FieldVehicleID holds the string denoting the vehicle_id field in the database.
	FieldVehicleID = "vehicle_id"
	// FieldAnomalyDetected holds the string denoting the anomaly_detected field in the database.
	FieldAnomalyDetected = "anomaly_detected"
	// FieldAnomalyType holds the string denoting the anomaly_type field in the database.
	FieldAnomalyType = "anomaly_type"
	// FieldSeverityScore holds the string denoting the severity_score field in the database.
	FieldSeverityScore = "severity_score"
	// FieldTelemetryEventIds holds the string denoting the telemetry_event_ids field in the database.
	FieldTelemetryEventIds = "telemetry_event_ids"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the anomalycase in the database.
	Table = "anomaly_cases"
)

// Columns holds all SQL columns for anomalycase fields.
var Columns = []string{
	FieldID,
	FieldVehicleID,
	FieldAnomalyDetected,
	FieldAnomalyType,
	FieldSeverityScore,
	FieldTelemetryEventIds,
	FieldStatus,
	FieldCreatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultAnomalyDetected holds the default value on creation for the "anomaly_detected" field.
	DefaultAnomalyDetected bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// AnomalyType defines the type for the "anomaly_type" enum field.
type AnomalyType string

// AnomalyType values.
const (
	AnomalyTypeThermalOverheat    AnomalyType = "thermal_overheat"
	AnomalyTypeOilOverheat        AnomalyType = "oil_overheat"
	AnomalyTypeBatteryDegradation AnomalyType = "battery_degradation"
	AnomalyTypeLowCharge          AnomalyType = "low_charge"
	AnomalyTypeRpmSpike           AnomalyType = "rpm_spike"
	AnomalyTypeRpmStall           AnomalyType = "rpm_stall"
	AnomalyTypeDtcFault           AnomalyType = "dtc_fault"
	AnomalyTypeSpeedAnomaly       AnomalyType = "speed_anomaly"
	AnomalyTypeGpsAnomaly         AnomalyType = "gps_anomaly"
)

func (at AnomalyType) String() string {
	return string(at)
}

// AnomalyTypeValidator is a validator for the "anomaly_type" field enum values. It is called by the builders before save.
func AnomalyTypeValidator(at AnomalyType) error {
	switch at {
	case AnomalyTypeThermalOverheat, AnomalyTypeOilOverheat, AnomalyTypeBatteryDegradation, AnomalyTypeLowCharge, AnomalyTypeRpmSpike, AnomalyTypeRpmStall, AnomalyTypeDtcFault, AnomalyTypeSpeedAnomaly, AnomalyTypeGpsAnomaly:
		return nil
	default:
		return fmt.Errorf("anomalycase: invalid enum value for anomaly_type field: %q", at)
	}
}

// Status defines the type for the "status" enum field.
type Status string

// StatusPendingDiagnosis is the default value of the Status enum.
const DefaultStatus = StatusPendingDiagnosis

// Status values.
const (
	StatusPendingDiagnosis Status = "pending_diagnosis"
	StatusDiagnosing       Status = "diagnosing"
	StatusDiagnosed        Status = "diagnosed"
	StatusScheduled        Status = "scheduled"
	StatusEngaged          Status = "engaged"
	StatusCompleted        Status = "completed"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusPendingDiagnosis, StatusDiagnosing, StatusDiagnosed, StatusScheduled, StatusEngaged, StatusCompleted:
		return nil
	default:
		return fmt.Errorf("anomalycase: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the AnomalyCase queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByVehicleID orders the results by the vehicle_id field.
func ByVehicleID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVehicleID, opts...).ToFunc()
}

// ByAnomalyDetected orders the results by the anomaly_detected field.
func ByAnomalyDetected(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAnomalyDetected, opts...).ToFunc()
}

// ByAnomalyType orders the results by the anomaly_type field.
func ByAnomalyType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAnomalyType, opts...).ToFunc()
}

// BySeverityScore orders the results by the severity_score field.
func BySeverityScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSeverityScore, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
