// Code generated by ent, DO NOT EDIT.

package engagementcase

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the engagementcase type in the database.
	Label = "engagement_case"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "engagement_id"
	// FieldSchedulingID holds the string denoting the scheduling_id field in the database.
	FieldSchedulingID = "scheduling_id"
	// FieldRcaID holds the string denoting the rca_id field in the database.
	FieldRcaID = "rca_id"
	// FieldCaseID holds the string denoting the case_id field in the database.
	FieldCaseID = "case_id"
	// FieldVehicleID holds the string denoting the vehicle_id field in the database.
	FieldVehicleID = "vehicle_id"
	// FieldCustomerPhone holds the string denoting the customer_phone field in the database.
	FieldCustomerPhone = "customer_phone"
	// FieldCustomerName holds the string denoting the customer_name field in the database.
	FieldCustomerName = "customer_name"
	// FieldCustomerDecision holds the string denoting the customer_decision field in the database.
	FieldCustomerDecision = "customer_decision"
	// FieldBookingID holds the string denoting the booking_id field in the database.
	FieldBookingID = "booking_id"
	// FieldTranscript holds the string denoting the transcript field in the database.
	FieldTranscript = "transcript"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the engagementcase in the database.
	Table = "engagement_cases"
)

// Columns holds all SQL columns for engagementcase fields.
var Columns = []string{
	FieldID,
	FieldSchedulingID,
	FieldRcaID,
	FieldCaseID,
	FieldVehicleID,
	FieldCustomerPhone,
	FieldCustomerName,
	FieldCustomerDecision,
	FieldBookingID,
	FieldTranscript,
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

// CustomerDecision defines the type for the "customer_decision" enum field.
type CustomerDecision string

// CustomerDecision values.
const (
	CustomerDecisionConfirmed  CustomerDecision = "confirmed"
	CustomerDecisionDeclined   CustomerDecision = "declined"
	CustomerDecisionNoResponse CustomerDecision = "no_response"
)

func (cd CustomerDecision) String() string {
	return string(cd)
}

// CustomerDecisionValidator is a validator for the "customer_decision" field enum values. It is called by the builders before save.
func CustomerDecisionValidator(cd CustomerDecision) error {
	switch cd {
	case CustomerDecisionConfirmed, CustomerDecisionDeclined, CustomerDecisionNoResponse:
		return nil
	default:
		return fmt.Errorf("engagementcase: invalid enum value for customer_decision field: %q", cd)
	}
}

// Status defines the type for the "status" enum field.
type Status string

// StatusCompleted is the default value of the Status enum.
const DefaultStatus = StatusCompleted

// Status values.
const (
	StatusCompleted Status = "completed"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusCompleted:
		return nil
	default:
		return fmt.Errorf("engagementcase: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the EngagementCase queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySchedulingID orders the results by the scheduling_id field.
func BySchedulingID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSchedulingID, opts...).ToFunc()
}

// ByRcaID orders the results by the rca_id field.
func ByRcaID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRcaID, opts...).ToFunc()
}

// ByCaseID orders the results by the case_id field.
func ByCaseID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCaseID, opts...).ToFunc()
}

// ByVehicleID orders the results by the vehicle_id field.
func ByVehicleID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVehicleID, opts...).ToFunc()
}

// ByCustomerPhone orders the results by the customer_phone field.
func ByCustomerPhone(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCustomerPhone, opts...).ToFunc()
}

// ByCustomerName orders the results by the customer_name field.
func ByCustomerName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCustomerName, opts...).ToFunc()
}

// ByCustomerDecision orders the results by the customer_decision field.
func ByCustomerDecision(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCustomerDecision, opts...).ToFunc()
}

// ByBookingID orders the results by the booking_id field.
func ByBookingID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBookingID, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
