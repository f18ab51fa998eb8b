// Code generated by ent, DO NOT EDIT.

package booking

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the booking type in the database.
	Label = "booking"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "booking_id"
	// FieldCaseID holds the string denoting the case_id field in the database.
	FieldCaseID = "case_id"
	// FieldVehicleID holds the string denoting the vehicle_id field in the database.
	FieldVehicleID = "vehicle_id"
	// FieldServiceCenter holds the string denoting the service_center field in the database.
	FieldServiceCenter = "service_center"
	// FieldScheduledSlot holds the string denoting the scheduled_slot field in the database.
	FieldScheduledSlot = "scheduled_slot"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the booking in the database.
	Table = "bookings"
)

// Columns holds all SQL columns for booking fields.
var Columns = []string{
	FieldID,
	FieldCaseID,
	FieldVehicleID,
	FieldServiceCenter,
	FieldScheduledSlot,
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

// Status defines the type for the "status" enum field.
type Status string

// StatusConfirmed is the default value of the Status enum.
const DefaultStatus = StatusConfirmed

// Status values.
const (
	StatusConfirmed        Status = "confirmed"
	StatusPending          Status = "pending"
	StatusFeedbackComplete Status = "feedback_complete"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusConfirmed, StatusPending, StatusFeedbackComplete:
		return nil
	default:
		return fmt.Errorf("booking: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the Booking queries.
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

// ByServiceCenter orders the results by the service_center field.
func ByServiceCenter(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldServiceCenter, opts...).ToFunc()
}

// ByScheduledSlot orders the results by the scheduled_slot field.
func ByScheduledSlot(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScheduledSlot, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
