// Code generated by ent, DO NOT EDIT.

package rcacase

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the rcacase type in the database.
	Label = "rca_case"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "rca_id"
	// FieldDiagnosisID holds the string denoting the diagnosis_id field in the database.
	FieldDiagnosisID = "diagnosis_id"
	// FieldCaseID holds the string denoting the case_id field in the database.
	FieldCaseID = "case_id"
	// FieldVehicleID holds the string denoting the vehicle_id field in the database.
	FieldVehicleID = "vehicle_id"
	// FieldRootCause holds the string denoting the root_cause field in the database.
	FieldRootCause = "root_cause"
	// FieldConfidence holds the string denoting the confidence field in the database.
	FieldConfidence = "confidence"
	// FieldRecommendedAction holds the string denoting the recommended_action field in the database.
	FieldRecommendedAction = "recommended_action"
	// FieldCapaType holds the string denoting the capa_type field in the database.
	FieldCapaType = "capa_type"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the rcacase in the database.
	Table = "rca_cases"
)

// Columns holds all SQL columns for rcacase fields.
var Columns = []string{
	FieldID,
	FieldDiagnosisID,
	FieldCaseID,
	FieldVehicleID,
	FieldRootCause,
	FieldConfidence,
	FieldRecommendedAction,
	FieldCapaType,
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

// CapaType defines the type for the "capa_type" enum field.
type CapaType string

// CapaType values.
const (
	CapaTypeCorrective CapaType = "Corrective"
	CapaTypePreventive CapaType = "Preventive"
)

func (ct CapaType) String() string {
	return string(ct)
}

// CapaTypeValidator is a validator for the "capa_type" field enum values. It is called by the builders before save.
func CapaTypeValidator(ct CapaType) error {
	switch ct {
	case CapaTypeCorrective, CapaTypePreventive:
		return nil
	default:
		return fmt.Errorf("rcacase: invalid enum value for capa_type field: %q", ct)
	}
}

// Status defines the type for the "status" enum field.
type Status string

// StatusPendingScheduling is the default value of the Status enum.
const DefaultStatus = StatusPendingScheduling

// Status values.
const (
	StatusPendingScheduling Status = "pending_scheduling"
	StatusScheduled         Status = "scheduled"
	StatusEngaged           Status = "engaged"
	StatusCompleted         Status = "completed"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusPendingScheduling, StatusScheduled, StatusEngaged, StatusCompleted:
		return nil
	default:
		return fmt.Errorf("rcacase: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the RcaCase queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByDiagnosisID orders the results by the diagnosis_id field.
func ByDiagnosisID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDiagnosisID, opts...).ToFunc()
}

// ByCaseID orders the results by the case_id field.
func ByCaseID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCaseID, opts...).ToFunc()
}

// ByVehicleID orders the results by the vehicle_id field.
func ByVehicleID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVehicleID, opts...).ToFunc()
}

// ByRootCause orders the results by the root_cause field.
func ByRootCause(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRootCause, opts...).ToFunc()
}

// ByConfidence orders the results by the confidence field.
func ByConfidence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConfidence, opts...).ToFunc()
}

// ByRecommendedAction orders the results by the recommended_action field.
func ByRecommendedAction(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRecommendedAction, opts...).ToFunc()
}

// ByCapaType orders the results by the capa_type field.
func ByCapaType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCapaType, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
