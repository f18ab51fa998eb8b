// Code generated by ent, DO NOT EDIT.

package communicationcase

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the communicationcase type in the database.
	Label = "communication_case"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "communication_id"
	// FieldEngagementID holds the string denoting the engagement_id field in the database.
	FieldEngagementID = "engagement_id"
	// FieldCaseID holds the string denoting the case_id field in the database.
	FieldCaseID = "case_id"
	// FieldVehicleID holds the string denoting the vehicle_id field in the database.
	FieldVehicleID = "vehicle_id"
	// FieldCustomerPhone holds the string denoting the customer_phone field in the database.
	FieldCustomerPhone = "customer_phone"
	// FieldCustomerName holds the string denoting the customer_name field in the database.
	FieldCustomerName = "customer_name"
	// FieldCallStatus holds the string denoting the call_status field in the database.
	FieldCallStatus = "call_status"
	// FieldConversationStage holds the string denoting the conversation_stage field in the database.
	FieldConversationStage = "conversation_stage"
	// FieldConversationTranscript holds the string denoting the conversation_transcript field in the database.
	FieldConversationTranscript = "conversation_transcript"
	// FieldOutcome holds the string denoting the outcome field in the database.
	FieldOutcome = "outcome"
	// FieldBookingID holds the string denoting the booking_id field in the database.
	FieldBookingID = "booking_id"
	// FieldCallSid holds the string denoting the call_sid field in the database.
	FieldCallSid = "call_sid"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the communicationcase in the database.
	Table = "communication_cases"
)

// Columns holds all SQL columns for communicationcase fields.
var Columns = []string{
	FieldID,
	FieldEngagementID,
	FieldCaseID,
	FieldVehicleID,
	FieldCustomerPhone,
	FieldCustomerName,
	FieldCallStatus,
	FieldConversationStage,
	FieldConversationTranscript,
	FieldOutcome,
	FieldBookingID,
	FieldCallSid,
	FieldCreatedAt,
	FieldUpdatedAt,
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
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// CallStatus defines the type for the "call_status" enum field.
type CallStatus string

// CallStatusInitiating is the default value of the CallStatus enum.
const DefaultCallStatus = CallStatusInitiating

// CallStatus values.
const (
	CallStatusInitiating CallStatus = "initiating"
	CallStatusInitiated  CallStatus = "initiated"
	CallStatusRinging    CallStatus = "ringing"
	CallStatusAnswered   CallStatus = "answered"
	CallStatusCompleted  CallStatus = "completed"
	CallStatusFailed     CallStatus = "failed"
)

func (cs CallStatus) String() string {
	return string(cs)
}

// CallStatusValidator is a validator for the "call_status" field enum values. It is called by the builders before save.
func CallStatusValidator(cs CallStatus) error {
	switch cs {
	case CallStatusInitiating, CallStatusInitiated, CallStatusRinging, CallStatusAnswered, CallStatusCompleted, CallStatusFailed:
		return nil
	default:
		return fmt.Errorf("communicationcase: invalid enum value for call_status field: %q", cs)
	}
}

// ConversationStage defines the type for the "conversation_stage" enum field.
type ConversationStage string

// ConversationStagePending is the default value of the ConversationStage enum.
const DefaultConversationStage = ConversationStagePending

// ConversationStage values.
const (
	ConversationStagePending     ConversationStage = "pending"
	ConversationStageGreeting    ConversationStage = "greeting"
	ConversationStageExplanation ConversationStage = "explanation"
	ConversationStageScheduling  ConversationStage = "scheduling"
	ConversationStageQuestions   ConversationStage = "questions"
	ConversationStageCompleted   ConversationStage = "completed"
)

func (cs ConversationStage) String() string {
	return string(cs)
}

// ConversationStageValidator is a validator for the "conversation_stage" field enum values. It is called by the builders before save.
func ConversationStageValidator(cs ConversationStage) error {
	switch cs {
	case ConversationStagePending, ConversationStageGreeting, ConversationStageExplanation, ConversationStageScheduling, ConversationStageQuestions, ConversationStageCompleted:
		return nil
	default:
		return fmt.Errorf("communicationcase: invalid enum value for conversation_stage field: %q", cs)
	}
}

// Outcome defines the type for the "outcome" enum field.
type Outcome string

// Outcome values.
const (
	OutcomeConfirmed Outcome = "confirmed"
	OutcomeDeclined  Outcome = "declined"
)

func (o Outcome) String() string {
	return string(o)
}

// OutcomeValidator is a validator for the "outcome" field enum values. It is called by the builders before save.
func OutcomeValidator(o Outcome) error {
	switch o {
	case OutcomeConfirmed, OutcomeDeclined:
		return nil
	default:
		return fmt.Errorf("communicationcase: invalid enum value for outcome field: %q", o)
	}
}

// OrderOption defines the ordering options for the CommunicationCase queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByEngagementID orders the results by the engagement_id field.
func ByEngagementID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEngagementID, opts...).ToFunc()
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

// ByCallStatus orders the results by the call_status field.
func ByCallStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCallStatus, opts...).ToFunc()
}

// ByConversationStage orders the results by the conversation_stage field.
func ByConversationStage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConversationStage, opts...).ToFunc()
}

// ByOutcome orders the results by the outcome field.
func ByOutcome(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOutcome, opts...).ToFunc()
}

// ByBookingID orders the results by the booking_id field.
func ByBookingID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBookingID, opts...).ToFunc()
}

// ByCallSid orders the results by the call_sid field.
func ByCallSid(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCallSid, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
