// Code generated by ent, DO NOT EDIT.

package schedulingcase

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the schedulingcase type in the database.
	Label = "scheduling_case"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "scheduling_id"
	// FieldRcaID holds the string denoting the rca_id field in the database.
	FieldRcaID = "rca_id"
	// FieldDiagnosisID holds the string denoting the diagnosis_id field in the database.
	FieldDiagnosisID = "diagnosis_id"
	// FieldCaseID holds the string denoting the case_id field in the database.
	FieldCaseID = "case_id"
	// FieldVehicleID holds the string denoting the vehicle_id field in the database.
	FieldVehicleID = "vehicle_id"
	// FieldBestSlot holds the string denoting the best_slot field in the database.
	FieldBestSlot = "best_slot"
	// FieldServiceCenter holds the string denoting the service_center field in the database.
	FieldServiceCenter = "service_center"
	// FieldSlotType holds the string denoting the slot_type field in the database.
	FieldSlotType = "slot_type"
	// FieldFallbackSlots holds the string denoting the fallback_slots field in the database.
	FieldFallbackSlots = "fallback_slots"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the schedulingcase in the database.
	Table = "scheduling_cases"
)

// Columns holds all SQL columns for schedulingcase fields.
var Columns = []string{
	FieldID,
	FieldRcaID,
	FieldDiagnosisID,
	FieldCaseID,
	FieldVehicleID,
	FieldBestSlot,
	FieldServiceCenter,
	FieldSlotType,
	FieldFallbackSlots,
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

// SlotType defines the type for the "slot_type" enum field.
type SlotType string

// SlotType values.
const (
	SlotTypeUrgent  SlotType = "urgent"
	SlotTypeNormal  SlotType = "normal"
	SlotTypeDelayed SlotType = "delayed"
)

func (st SlotType) String() string {
	return string(st)
}

// SlotTypeValidator is a validator for the "slot_type" field enum values. It is called by the builders before save.
func SlotTypeValidator(st SlotType) error {
	switch st {
	case SlotTypeUrgent, SlotTypeNormal, SlotTypeDelayed:
		return nil
	default:
		return fmt.Errorf("schedulingcase: invalid enum value for slot_type field: %q", st)
	}
}

// Status defines the type for the "status" enum field.
type Status string

// StatusPendingEngagement is the default value of the Status enum.
const DefaultStatus = StatusPendingEngagement

// Status values.
const (
	StatusPendingEngagement  Status = "pending_engagement"
	StatusEngagementComplete Status = "engagement_complete"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusPendingEngagement, StatusEngagementComplete:
		return nil
	default:
		return fmt.Errorf("schedulingcase: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the SchedulingCase queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByRcaID orders the results by the rca_id field.
func ByRcaID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRcaID, opts...).ToFunc()
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

// ByBestSlot orders the results by the best_slot field.
func ByBestSlot(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBestSlot, opts...).ToFunc()
}

// ByServiceCenter orders the results by the service_center field.
func ByServiceCenter(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldServiceCenter, opts...).ToFunc()
}

// BySlotType orders the results by the slot_type field.
func BySlotType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSlotType, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
