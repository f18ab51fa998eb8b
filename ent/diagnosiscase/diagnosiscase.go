// Code generated by ent, DO NOT EDIT.

package diagnosiscase

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the diagnosiscase type in the database.
	Label = "diagnosis_case"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "diagnosis_id"
	// FieldCaseID holds the string denoting the case_id field in the database.
	FieldCaseID = "case_id"
	// FieldVehicleID holds the string denoting the vehicle_id field in the database.
	FieldVehicleID = "vehicle_id"
	// FieldComponent holds the string denoting the component field in the database.
	FieldComponent = "component"
	// FieldFailureProbability holds the string denoting the failure_probability field in the database.
	FieldFailureProbability = "failure_probability"
	// FieldEstimatedRulDays holds the string denoting the estimated_rul_days field in the database.
	FieldEstimatedRulDays = "estimated_rul_days"
	// FieldSeverity holds the string denoting the severity field in the database.
	FieldSeverity = "severity"
	// FieldContextEventIds holds the string denoting the context_event_ids field in the database.
	FieldContextEventIds = "context_event_ids"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the diagnosiscase in the database.
	Table = "diagnosis_cases"
)

// Columns holds all SQL columns for diagnosiscase fields.
var Columns = []string{
	FieldID,
	FieldCaseID,
	FieldVehicleID,
	FieldComponent,
	FieldFailureProbability,
	FieldEstimatedRulDays,
	FieldSeverity,
	FieldContextEventIds,
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
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// Severity defines the type for the "severity" enum field.
type Severity string

// Severity values.
const (
	SeverityLow    Severity = "Low"
	SeverityMedium Severity = "Medium"
	SeverityHigh   Severity = "High"
)

func (s Severity) String() string {
	return string(s)
}

// SeverityValidator is a validator for the "severity" field enum values. It is called by the builders before save.
func SeverityValidator(s Severity) error {
	switch s {
	case SeverityLow, SeverityMedium, SeverityHigh:
		return nil
	default:
		return fmt.Errorf("diagnosiscase: invalid enum value for severity field: %q", s)
	}
}

// Status defines the type for the "status" enum field.
type Status string

// StatusPendingRca is the default value of the Status enum.
const DefaultStatus = StatusPendingRca

// Status values.
const (
	StatusPendingRca  Status = "pending_rca"
	StatusRcaComplete Status = "rca_complete"
	StatusScheduled   Status = "scheduled"
	StatusEngaged     Status = "engaged"
	StatusCompleted   Status = "completed"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusPendingRca, StatusRcaComplete, StatusScheduled, StatusEngaged, StatusCompleted:
		return nil
	default:
		return fmt.Errorf("diagnosiscase: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the DiagnosisCase queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCaseID orders the results by the case_id field.
func ByCaseID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCaseID, opts...).ToFunc()
}

// ByVehicleID orders the results by the vehicle_id field.
func ByVehicleID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVehicleID, opts...).ToFunc()
}

// ByComponent orders the results by the component field.
func ByComponent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldComponent, opts...).ToFunc()
}

// ByFailureProbability orders the results by the failure_probability field.
func ByFailureProbability(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFailureProbability, opts...).ToFunc()
}

// ByEstimatedRulDays orders the results by the estimated_rul_days field.
func ByEstimatedRulDays(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEstimatedRulDays, opts...).ToFunc()
}

// BySeverity orders the results by the severity field.
func BySeverity(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSeverity, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
