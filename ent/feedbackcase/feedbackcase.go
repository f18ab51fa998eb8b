// Code generated by ent, DO NOT EDIT.

package feedbackcase

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the feedbackcase type in the database.
	Label = "feedback_case"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "feedback_id"
	// FieldBookingID holds the string denoting the booking_id field in the database.
	FieldBookingID = "booking_id"
	// FieldCaseID holds the string denoting the case_id field in the database.
	FieldCaseID = "case_id"
	// FieldVehicleID holds the string denoting the vehicle_id field in the database.
	FieldVehicleID = "vehicle_id"
	// FieldCeiScore holds the string denoting the cei_score field in the database.
	FieldCeiScore = "cei_score"
	// FieldValidationLabel holds the string denoting the validation_label field in the database.
	FieldValidationLabel = "validation_label"
	// FieldRecommendedRetrain holds the string denoting the recommended_retrain field in the database.
	FieldRecommendedRetrain = "recommended_retrain"
	// FieldTechnicianNotes holds the string denoting the technician_notes field in the database.
	FieldTechnicianNotes = "technician_notes"
	// FieldCustomerRating holds the string denoting the customer_rating field in the database.
	FieldCustomerRating = "customer_rating"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the feedbackcase in the database.
	Table = "feedback_cases"
)

// Columns holds all SQL columns for feedbackcase fields.
var Columns = []string{
	FieldID,
	FieldBookingID,
	FieldCaseID,
	FieldVehicleID,
	FieldCeiScore,
	FieldValidationLabel,
	FieldRecommendedRetrain,
	FieldTechnicianNotes,
	FieldCustomerRating,
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

// ValidationLabel defines the type for the "validation_label" enum field.
type ValidationLabel string

// ValidationLabel values.
const (
	ValidationLabelCorrect   ValidationLabel = "Correct"
	ValidationLabelRecurring ValidationLabel = "Recurring"
	ValidationLabelIncorrect ValidationLabel = "Incorrect"
)

func (vl ValidationLabel) String() string {
	return string(vl)
}

// ValidationLabelValidator is a validator for the "validation_label" field enum values. It is called by the builders before save.
func ValidationLabelValidator(vl ValidationLabel) error {
	switch vl {
	case ValidationLabelCorrect, ValidationLabelRecurring, ValidationLabelIncorrect:
		return nil
	default:
		return fmt.Errorf("feedbackcase: invalid enum value for validation_label field: %q", vl)
	}
}

// Status defines the type for the "status" enum field.
type Status string

// StatusPendingManufacturing is the default value of the Status enum.
const DefaultStatus = StatusPendingManufacturing

// Status values.
const (
	StatusPendingManufacturing  Status = "pending_manufacturing"
	StatusManufacturingComplete Status = "manufacturing_complete"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusPendingManufacturing, StatusManufacturingComplete:
		return nil
	default:
		return fmt.Errorf("feedbackcase: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the FeedbackCase queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByBookingID orders the results by the booking_id field.
func ByBookingID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBookingID, opts...).ToFunc()
}

// ByCaseID orders the results by the case_id field.
func ByCaseID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCaseID, opts...).ToFunc()
}

// ByVehicleID orders the results by the vehicle_id field.
func ByVehicleID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVehicleID, opts...).ToFunc()
}

// ByCeiScore orders the results by the cei_score field.
func ByCeiScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCeiScore, opts...).ToFunc()
}

// ByValidationLabel orders the results by the validation_label field.
func ByValidationLabel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldValidationLabel, opts...).ToFunc()
}

// ByRecommendedRetrain orders the results by the recommended_retrain field.
func ByRecommendedRetrain(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRecommendedRetrain, opts...).ToFunc()
}

// ByTechnicianNotes orders the results by the technician_notes field.
func ByTechnicianNotes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTechnicianNotes, opts...).ToFunc()
}

// ByCustomerRating orders the results by the customer_rating field.
func ByCustomerRating(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCustomerRating, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
