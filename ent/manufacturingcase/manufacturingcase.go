// Code generated by ent, DO NOT EDIT.

package manufacturingcase

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the manufacturingcase type in the database.
	Label = "manufacturing_case"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "manufacturing_id"
	// FieldFeedbackID holds the string denoting the feedback_id field in the database.
	FieldFeedbackID = "feedback_id"
	// FieldCaseID holds the string denoting the case_id field in the database.
	FieldCaseID = "case_id"
	// FieldVehicleID holds the string denoting the vehicle_id field in the database.
	FieldVehicleID = "vehicle_id"
	// FieldIssue holds the string denoting the issue field in the database.
	FieldIssue = "issue"
	// FieldCapaRecommendation holds the string denoting the capa_recommendation field in the database.
	FieldCapaRecommendation = "capa_recommendation"
	// FieldSeverity holds the string denoting the severity field in the database.
	FieldSeverity = "severity"
	// FieldRecurrenceClusterSize holds the string denoting the recurrence_cluster_size field in the database.
	FieldRecurrenceClusterSize = "recurrence_cluster_size"
	// FieldVehicleRecurrenceCount holds the string denoting the vehicle_recurrence_count field in the database.
	FieldVehicleRecurrenceCount = "vehicle_recurrence_count"
	// FieldAnomalyTypeRecurrenceCount holds the string denoting the anomaly_type_recurrence_count field in the database.
	FieldAnomalyTypeRecurrenceCount = "anomaly_type_recurrence_count"
	// FieldComponentRecurrenceCount holds the string denoting the component_recurrence_count field in the database.
	FieldComponentRecurrenceCount = "component_recurrence_count"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the manufacturingcase in the database.
	Table = "manufacturing_cases"
)

// Columns holds all SQL columns for manufacturingcase fields.
var Columns = []string{
	FieldID,
	FieldFeedbackID,
	FieldCaseID,
	FieldVehicleID,
	FieldIssue,
	FieldCapaRecommendation,
	FieldSeverity,
	FieldRecurrenceClusterSize,
	FieldVehicleRecurrenceCount,
	FieldAnomalyTypeRecurrenceCount,
	FieldComponentRecurrenceCount,
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
	// DefaultVehicleRecurrenceCount holds the default value on creation for the "vehicle_recurrence_count" field.
	DefaultVehicleRecurrenceCount int
	// DefaultAnomalyTypeRecurrenceCount holds the default value on creation for the "anomaly_type_recurrence_count" field.
	DefaultAnomalyTypeRecurrenceCount int
	// DefaultComponentRecurrenceCount holds the default value on creation for the "component_recurrence_count" field.
	DefaultComponentRecurrenceCount int
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
		return fmt.Errorf("manufacturingcase: invalid enum value for severity field: %q", s)
	}
}

// OrderOption defines the ordering options for the ManufacturingCase queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByFeedbackID orders the results by the feedback_id field.
func ByFeedbackID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFeedbackID, opts...).ToFunc()
}

// ByCaseID orders the results by the case_id field.
func ByCaseID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCaseID, opts...).ToFunc()
}

// ByVehicleID orders the results by the vehicle_id field.
func ByVehicleID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVehicleID, opts...).ToFunc()
}

// ByIssue orders the results by the issue field.
func ByIssue(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIssue, opts...).ToFunc()
}

// ByCapaRecommendation orders the results by the capa_recommendation field.
func ByCapaRecommendation(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCapaRecommendation, opts...).ToFunc()
}

// BySeverity orders the results by the severity field.
func BySeverity(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSeverity, opts...).ToFunc()
}

// ByRecurrenceClusterSize orders the results by the recurrence_cluster_size field.
func ByRecurrenceClusterSize(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRecurrenceClusterSize, opts...).ToFunc()
}

// ByVehicleRecurrenceCount orders the results by the vehicle_recurrence_count field.
func ByVehicleRecurrenceCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVehicleRecurrenceCount, opts...).ToFunc()
}

// ByAnomalyTypeRecurrenceCount orders the results by the anomaly_type_recurrence_count field.
func ByAnomalyTypeRecurrenceCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAnomalyTypeRecurrenceCount, opts...).ToFunc()
}

// ByComponentRecurrenceCount orders the results by the component_recurrence_count field.
func ByComponentRecurrenceCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldComponentRecurrenceCount, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
