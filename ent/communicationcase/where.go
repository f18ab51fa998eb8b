// Code generated by ent, DO NOT EDIT.

package communicationcase

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/fleetsense/fleetsense/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.CommunicationCase {
	return predicate.CommunicationCase(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.CommunicationCase {
	return predicate.CommunicationCase(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.CommunicationCase {
	return predicate.CommunicationCase(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.CommunicationCase {
	return predicate.CommunicationCase(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.CommunicationCase {
	return predicate.CommunicationCase(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.CommunicationCase {
	return predicate.CommunicationCase(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.CommunicationCase {
	return predicate.CommunicationCase(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.CommunicationCase {
	return predicate.CommunicationCase(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.CommunicationCase {
	return predicate.CommunicationCase(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.CommunicationCase {
	return predicate.CommunicationCase(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.CommunicationCase {
	return predicate.CommunicationCase(sql.FieldContainsFold(FieldID, id))
}

// EngagementID applies equality check predicate on the "engagement_id" field. It's identical to EngagementIDEQ.
func EngagementID(v string) predicate.CommunicationCase {
	return predicate.CommunicationCase(sql.FieldEQ(FieldEngagementID, v))
}

// CaseID applies equality check predicate on the "case_id" field. It's identical to CaseIDEQ.
func CaseID(v string) predicate.CommunicationCase {
	return predicate.CommunicationCase(sql.FieldEQ(FieldCaseID, v))
}

// VehicleID applies equality check predicate on the "vehicle_id" field. It's identical to VehicleIDEQ.
func VehicleID(v string) predicate.CommunicationCase {
	return predicate.CommunicationCase(sql.FieldEQ(FieldVehicleID, v))
}

// CustomerPhone applies equality check predicate on the "customer_phone" field. It's identical to CustomerPhoneEQ.
func CustomerPhone(v string) predicate.CommunicationCase {
	return predicate.CommunicationCase(sql.FieldEQ(FieldCustomerPhone, v))
}

// CustomerName applies equality check predicate on the "customer_name" field. It's identical to CustomerNameEQ.
func CustomerName(v string) predicate.CommunicationCase {
	return predicate.CommunicationCase(sql.FieldEQ(FieldCustomerName, v))
}

// BookingID applies equality check predicate on the "booking_id" field. It's identical to BookingIDEQ.
func BookingID(v string) predicate.CommunicationCase {
	return predicate.CommunicationCase(sql.FieldEQ(FieldBookingID, v))
}

// CallSid applies equality check predicate on the "call_sid" field. It's identical to CallSidEQ.
func CallSid(v string) predicate.CommunicationCase {
	return predicate.CommunicationCase(sql.FieldEQ(FieldCallSid, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.CommunicationCase {
	return predicate.CommunicationCase(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.CommunicationCase {
	return predicate.CommunicationCase(sql.FieldEQ(FieldUpdatedAt, v))
}

// EngagementIDEQ applies the EQ predicate on the "engagement_id" field.
func EngagementIDEQ(v string) predicate.CommunicationCase {
	return predicate.CommunicationCase(sql.FieldEQ(FieldEngagementID, v))
}

// EngagementIDNEQ applies the NEQ predicate on the "engagement_id" field.
func EngagementIDNEQ(v string) predicate.CommunicationCase {
	return predicate.CommunicationCase(sql.FieldNEQ(FieldEngagementID, v))
}

// EngagementIDIn applies the In predicate on the "engagement_id" field.
func EngagementIDIn(vs ...string) predicate.CommunicationCase {
	return predicate.CommunicationCase(sql.FieldIn(FieldEngagementID, vs...))
}

// EngagementIDNotIn applies the NotIn predicate on the "engagement_id" field.
func EngagementIDNotIn(vs ...string) predicate.CommunicationCase {
	return predicate.CommunicationCase(sql.FieldNotIn(FieldEngagementID, vs...))
}

// EngagementIDGT applies the GT predicate on the "engagement_id" field.
func EngagementIDGT(v string) predicate.CommunicationCase {
	return predicate.CommunicationCase(sql.FieldGT(FieldEngagementID, v))
}

// EngagementIDGTE applies the GTE predicate on the "engagement_id" field.
func EngagementIDGTE(v string) predicate.CommunicationCase {
	return predicate.CommunicationCase(sql.FieldGTE(FieldEngagementID, v))
}

// EngagementIDLT applies the LT predicate on the "engagement_id" field.
func EngagementIDLT(v string) predicate.CommunicationCase {
	return predicate.CommunicationCase(sql.FieldLT(FieldEngagementID, v))
}

// EngagementIDLTE applies the LTE predicate on the "engagement_id" field.
func EngagementIDLTE(v string) predicate.CommunicationCase {
	return predicate.CommunicationCase(sql.FieldLTE(FieldEngagementID, v))
}

// EngagementIDContains applies the Contains predicate on the "engagement_id" field.
func EngagementIDContains(v string) predicate.CommunicationCase {
	return predicate.CommunicationCase(sql.FieldContains(FieldEngagementID, v))
}

// EngagementIDHasPrefix applies the HasPrefix predicate on the "engagement_id" field.
func EngagementIDHasPrefix(v string) predicate.CommunicationCase {
	return predicate.CommunicationCase(sql.FieldHasPrefix(FieldEngagementID, v))
}

// EngagementIDHasSuffix applies the HasSuffix predicate on the "engagement_id" field.
func EngagementIDHasSuffix(v string) predicate.CommunicationCase {
	return predicate.CommunicationCase(sql.FieldHasSuffix(FieldEngagementID, v))
}

// EngagementIDEqualFold applies the EqualFold predicate on the "engagement_id" field.
func EngagementIDEqualFold(v string) predicate.CommunicationCase {
	return predicate.CommunicationCase(sql.FieldEqualFold(FieldEngagementID, v))
}

// EngagementIDContainsFold applies the ContainsFold predicate on the "engagement_id" field.
func EngagementIDContainsFold(v string) predicate.CommunicationCase {
	return predicate.CommunicationCase(sql.FieldContainsFold(FieldEngagementID, v))
}

// CaseIDEQ applies the EQ predicate on the "case_id" field.
func CaseIDEQ(v string) predicate.CommunicationCase {
	return predicate.CommunicationCase(sql.FieldEQ(FieldCaseID, v))
}

// CaseIDNEQ applies the NEQ predicate on the "case_id" field.
func CaseIDNEQ(v string) predicate.CommunicationCase {
	return predicate.CommunicationCase(sql.FieldNEQ(FieldCaseID, v))
}

// CaseIDIn applies the In predicate on the "case_id" field.
func CaseIDIn(vs ...string) predicate.CommunicationCase {
	return predicate.CommunicationCase(sql.FieldIn(FieldCaseID, vs...))
}

// CaseIDNotIn applies the NotIn predicate on the "case_id" field.
func CaseIDNotIn(vs ...string) predicate.CommunicationCase {
	return predicate.CommunicationCase(sql.FieldNotIn(FieldCaseID, vs...))
}

// CaseIDGT applies the GT predicate on the "case_id" field.
func CaseIDGT(v string) predicate.CommunicationCase {
	return predicate.CommunicationCase(sql.FieldGT(FieldCaseID, v))
}

// CaseIDGTE applies the GTE predicate on the "case_id" field.
func CaseIDGTE(v string) predicate.CommunicationCase {
	return predicate.CommunicationCase(sql.FieldGTE(FieldCaseID, v))
}

// CaseIDLT applies the LT predicate on the "case_id" field.
func CaseIDLT(v string) predicate.CommunicationCase {
	return predicate.CommunicationCase(sql.FieldLT(FieldCaseID, v))
}

// CaseIDLTE applies the LTE predicate on the "case_id" field.
func CaseIDLTE(v string) predicate.CommunicationCase {
	return predicate.CommunicationCase(sql.FieldLTE(FieldCaseID, v))
}

// CaseIDContains applies the Contains predicate on the "case_id" field.
func CaseIDContains(v string) predicate.CommunicationCase {
	return predicate.CommunicationCase(sql.FieldContains(FieldCaseID, v))
}

// CaseIDHasPrefix applies the HasPrefix predicate on the "case_id" field.
func CaseIDHasPrefix(v string) predicate.CommunicationCase {
	return predicate.CommunicationCase(sql.FieldHasPrefix(FieldCaseID, v))
}

// CaseIDHasSuffix applies the HasSuffix predicate on the "case_id" field.
func CaseIDHasSuffix(v string) predicate.CommunicationCase {
	return predicate.CommunicationCase(sql.FieldHasSuffix(FieldCaseID, v))
}

// CaseIDEqualFold applies the EqualFold predicate on the "case_id" field.
func CaseIDEqualFold(v string) predicate.CommunicationCase {
	return predicate.CommunicationCase(sql.FieldEqualFold(FieldCaseID, v))
}

// CaseIDContainsFold applies the ContainsFold predicate on the "case_id" field.
func CaseIDContainsFold(v string) predicate.CommunicationCase {
	return predicate.CommunicationCase(sql.FieldContainsFold(FieldCaseID, v))
}

// VehicleIDEQ applies the EQ predicate on the "vehicle_id" field.
func VehicleIDEQ(v string) predicate.CommunicationCase {
	return predicate.CommunicationCase(sql.FieldEQ(FieldVehicleID, v))
}

// VehicleIDNEQ applies the NEQ predicate on the "vehicle_id" field.
func VehicleIDNEQ(v string) predicate.CommunicationCase {
	return predicate.CommunicationCase(sql.FieldNEQ(FieldVehicleID, v))
}

// VehicleIDIn applies the In predicate on the "vehicle_id" field.
func VehicleIDIn(vs ...string) predicate.CommunicationCase {
	return predicate.CommunicationCase(sql.FieldIn(FieldVehicleID, vs...))
}

// VehicleIDNotIn applies the NotIn predicate on the "vehicle_id" field.
func VehicleIDNotIn(vs ...string) predicate.CommunicationCase {
	return predicate.CommunicationCase(sql.FieldNotIn(FieldVehicleID, vs...))
}

// VehicleIDGT applies the GT predicate on the "vehicle_id" field.
func VehicleIDGT(v string) predicate.CommunicationCase {
	return predicate.CommunicationCase(sql.FieldGT(FieldVehicleID, v))
}

// VehicleIDGTE applies the GTE predicate on the "vehicle_id" field.
func VehicleIDGTE(v string) predicate.CommunicationCase {
	return predicate.CommunicationCase(sql.FieldGTE(FieldVehicleID, v))
}

// VehicleIDLT applies the LT predicate on the "vehicle_id" field.
func VehicleIDLT(v string) predicate.CommunicationCase {
	return predicate.CommunicationCase(sql.FieldLT(FieldVehicleID, v))
}

// VehicleIDLTE applies the LTE predicate on the "vehicle_id" field.
func VehicleIDLTE(v string) predicate.CommunicationCase {
	return predicate.CommunicationCase(sql.FieldLTE(FieldVehicleID, v))
}

// VehicleIDContains applies the Contains predicate on the "vehicle_id" field.
func VehicleIDContains(v string) predicate.CommunicationCase {
	return predicate.CommunicationCase(sql.FieldContains(FieldVehicleID, v))
}

// VehicleIDHasPrefix applies the HasPrefix predicate on the "vehicle_id" field.
func VehicleIDHasPrefix(v string) predicate.CommunicationCase {
	return predicate.CommunicationCase(sql.FieldHasPrefix(FieldVehicleID, v))
}

// VehicleIDHasSuffix applies the HasSuffix predicate on the "vehicle_id" field.
func VehicleIDHasSuffix(v string) predicate.CommunicationCase {
	return predicate.CommunicationCase(sql.FieldHasSuffix(FieldVehicleID, v))
}

// VehicleIDEqualFold applies the EqualFold predicate on the "vehicle_id" field.
func VehicleIDEqualFold(v string) predicate.CommunicationCase {
	return predicate.CommunicationCase(sql.FieldEqualFold(FieldVehicleID, v))
}

// VehicleIDContainsFold applies the ContainsFold predicate on the "vehicle_id" field.
func VehicleIDContainsFold(v string) predicate.CommunicationCase {
	return predicate.CommunicationCase(sql.FieldContainsFold(FieldVehicleID, v))
}

// CustomerPhoneEQ applies the EQ predicate on the "customer_phone" field.
func CustomerPhoneEQ(v string) predicate.CommunicationCase {
	return predicate.CommunicationCase(sql.FieldEQ(FieldCustomerPhone, v))
}

// CustomerPhoneNEQ applies the NEQ predicate on the "customer_phone" field.
func CustomerPhoneNEQ(v string) predicate.CommunicationCase {
	return predicate.CommunicationCase(sql.FieldNEQ(FieldCustomerPhone, v))
}

// CustomerPhoneIn applies the In predicate on the "customer_phone" field.
func CustomerPhoneIn(vs ...string) predicate.CommunicationCase {
	return predicate.CommunicationCase(sql.FieldIn(FieldCustomerPhone, vs...))
}

// CustomerPhoneNotIn applies the NotIn predicate on the "customer_phone" field.
func CustomerPhoneNotIn(vs ...string) predicate.CommunicationCase {
	return predicate.CommunicationCase(sql.FieldNotIn(FieldCustomerPhone, vs...))
}

// CustomerPhoneGT applies the GT predicate on the "customer_phone" field.
func CustomerPhoneGT(v string) predicate.CommunicationCase {
	return predicate.CommunicationCase(sql.FieldGT(FieldCustomerPhone, v))
}

// CustomerPhoneGTE applies the GTE predicate on the "customer_phone" field.
func CustomerPhoneGTE(v string) predicate.CommunicationCase {
	return predicate.CommunicationCase(sql.FieldGTE(FieldCustomerPhone, v))
}

// CustomerPhoneLT applies the LT predicate on the "customer_phone" field.
func CustomerPhoneLT(v string) predicate.CommunicationCase {
	return predicate.CommunicationCase(sql.FieldLT(FieldCustomerPhone, v))
}

// CustomerPhoneLTE applies the LTE predicate on the "customer_phone" field.
func CustomerPhoneLTE(v string) predicate.CommunicationCase {
	return predicate.CommunicationCase(sql.FieldLTE(FieldCustomerPhone, v))
}

// CustomerPhoneContains applies the Contains predicate on the "customer_phone" field.
func CustomerPhoneContains(v string) predicate.CommunicationCase {
	return predicate.CommunicationCase(sql.FieldContains(FieldCustomerPhone, v))
}

// CustomerPhoneHasPrefix applies the HasPrefix predicate on the "customer_phone" field.
func CustomerPhoneHasPrefix(v string) predicate.CommunicationCase {
	return predicate.CommunicationCase(sql.FieldHasPrefix(FieldCustomerPhone, v))
}

// CustomerPhoneHasSuffix applies the HasSuffix predicate on the "customer_phone" field.
func CustomerPhoneHasSuffix(v string) predicate.CommunicationCase {
	return predicate.CommunicationCase(sql.FieldHasSuffix(FieldCustomerPhone, v))
}

// CustomerPhoneEqualFold applies the EqualFold predicate on the "customer_phone" field.
func CustomerPhoneEqualFold(v string) predicate.CommunicationCase {
	return predicate.CommunicationCase(sql.FieldEqualFold(FieldCustomerPhone, v))
}

// CustomerPhoneContainsFold applies the ContainsFold predicate on the "customer_phone" field.
func CustomerPhoneContainsFold(v string) predicate.CommunicationCase {
	return predicate.CommunicationCase(sql.FieldContainsFold(FieldCustomerPhone, v))
}

// CustomerNameEQ applies the EQ predicate on the "customer_name" field.
func CustomerNameEQ(v string) predicate.CommunicationCase {
	return predicate.CommunicationCase(sql.FieldEQ(FieldCustomerName, v))
}

// CustomerNameNEQ applies the NEQ predicate on the "customer_name" field.
func CustomerNameNEQ(v string) predicate.CommunicationCase {
	return predicate.CommunicationCase(sql.FieldNEQ(FieldCustomerName, v))
}

// CustomerNameIn applies the In predicate on the "customer_name" field.
func CustomerNameIn(vs ...string) predicate.CommunicationCase {
	return predicate.CommunicationCase(sql.FieldIn(FieldCustomerName, vs...))
}

// CustomerNameNotIn applies the NotIn predicate on the "customer_name" field.
func CustomerNameNotIn(vs ...string) predicate.CommunicationCase {
	return predicate.CommunicationCase(sql.FieldNotIn(FieldCustomerName, vs...))
}

// CustomerNameGT applies the GT predicate on the "customer_name" field.
func CustomerNameGT(v string) predicate.CommunicationCase {
	return predicate.CommunicationCase(sql.FieldGT(FieldCustomerName, v))
}

// CustomerNameGTE applies the GTE predicate on the "customer_name" field.
func CustomerNameGTE(v string) predicate.CommunicationCase {
	return predicate.CommunicationCase(sql.FieldGTE(FieldCustomerName, v))
}

// CustomerNameLT applies the LT predicate on the "customer_name" field.
func CustomerNameLT(v string) predicate.CommunicationCase {
	return predicate.CommunicationCase(sql.FieldLT(FieldCustomerName, v))
}

// CustomerNameLTE applies the LTE predicate on the "customer_name" field.
func CustomerNameLTE(v string) predicate.CommunicationCase {
	return predicate.CommunicationCase(sql.FieldLTE(FieldCustomerName, v))
}

// CustomerNameContains applies the Contains predicate on the "customer_name" field.
func CustomerNameContains(v string) predicate.CommunicationCase {
	return predicate.CommunicationCase(sql.FieldContains(FieldCustomerName, v))
}

// CustomerNameHasPrefix applies the HasPrefix predicate on the "customer_name" field.
func CustomerNameHasPrefix(v string) predicate.CommunicationCase {
	return predicate.CommunicationCase(sql.FieldHasPrefix(FieldCustomerName, v))
}

// CustomerNameHasSuffix applies the HasSuffix predicate on the "customer_name" field.
func CustomerNameHasSuffix(v string) predicate.CommunicationCase {
	return predicate.CommunicationCase(sql.FieldHasSuffix(FieldCustomerName, v))
}

// CustomerNameIsNil applies the IsNil predicate on the "customer_name" field.
func CustomerNameIsNil() predicate.CommunicationCase {
	return predicate.CommunicationCase(sql.FieldIsNull(FieldCustomerName))
}

// CustomerNameNotNil applies the NotNil predicate on the "customer_name" field.
func CustomerNameNotNil() predicate.CommunicationCase {
	return predicate.CommunicationCase(sql.FieldNotNull(FieldCustomerName))
}

// CustomerNameEqualFold applies the EqualFold predicate on the "customer_name" field.
func CustomerNameEqualFold(v string) predicate.CommunicationCase {
	return predicate.CommunicationCase(sql.FieldEqualFold(FieldCustomerName, v))
}

// CustomerNameContainsFold applies the ContainsFold predicate on the "customer_name" field.
func CustomerNameContainsFold(v string) predicate.CommunicationCase {
	return predicate.CommunicationCase(sql.FieldContainsFold(FieldCustomerName, v))
}

// CallStatusEQ applies the EQ predicate on the "call_status" field.
func CallStatusEQ(v CallStatus) predicate.CommunicationCase {
	return predicate.CommunicationCase(sql.FieldEQ(FieldCallStatus, v))
}

// CallStatusNEQ applies the NEQ predicate on the "call_status" field.
func CallStatusNEQ(v CallStatus) predicate.CommunicationCase {
	return predicate.CommunicationCase(sql.FieldNEQ(FieldCallStatus, v))
}

// CallStatusIn applies the In predicate on the "call_status" field.
func CallStatusIn(vs ...CallStatus) predicate.CommunicationCase {
	return predicate.CommunicationCase(sql.FieldIn(FieldCallStatus, vs...))
}

// CallStatusNotIn applies the NotIn predicate on the "call_status" field.
func CallStatusNotIn(vs ...CallStatus) predicate.CommunicationCase {
	return predicate.CommunicationCase(sql.FieldNotIn(FieldCallStatus, vs...))
}

// ConversationStageEQ applies the EQ predicate on the "conversation_stage" field.
func ConversationStageEQ(v ConversationStage) predicate.CommunicationCase {
	return predicate.CommunicationCase(sql.FieldEQ(FieldConversationStage, v))
}

// ConversationStageNEQ applies the NEQ predicate on the "conversation_stage" field.
func ConversationStageNEQ(v ConversationStage) predicate.CommunicationCase {
	return predicate.CommunicationCase(sql.FieldNEQ(FieldConversationStage, v))
}

// ConversationStageIn applies the In predicate on the "conversation_stage" field.
func ConversationStageIn(vs ...ConversationStage) predicate.CommunicationCase {
	return predicate.CommunicationCase(sql.FieldIn(FieldConversationStage, vs...))
}

// ConversationStageNotIn applies the NotIn predicate on the "conversation_stage" field.
func ConversationStageNotIn(vs ...ConversationStage) predicate.CommunicationCase {
	return predicate.CommunicationCase(sql.FieldNotIn(FieldConversationStage, vs...))
}

// ConversationTranscriptIsNil applies the IsNil predicate on the "conversation_transcript" field.
func ConversationTranscriptIsNil() predicate.CommunicationCase {
	return predicate.CommunicationCase(sql.FieldIsNull(FieldConversationTranscript))
}

// ConversationTranscriptNotNil applies the NotNil predicate on the "conversation_transcript" field.
func ConversationTranscriptNotNil() predicate.CommunicationCase {
	return predicate.CommunicationCase(sql.FieldNotNull(FieldConversationTranscript))
}

// OutcomeEQ applies the EQ predicate on the "outcome" field.
func OutcomeEQ(v Outcome) predicate.CommunicationCase {
	return predicate.CommunicationCase(sql.FieldEQ(FieldOutcome, v))
}

// OutcomeNEQ applies the NEQ predicate on the "outcome" field.
func OutcomeNEQ(v Outcome) predicate.CommunicationCase {
	return predicate.CommunicationCase(sql.FieldNEQ(FieldOutcome, v))
}

// OutcomeIn applies the In predicate on the "outcome" field.
func OutcomeIn(vs ...Outcome) predicate.CommunicationCase {
	return predicate.CommunicationCase(sql.FieldIn(FieldOutcome, vs...))
}

// OutcomeNotIn applies the NotIn predicate on the "outcome" field.
func OutcomeNotIn(vs ...Outcome) predicate.CommunicationCase {
	return predicate.CommunicationCase(sql.FieldNotIn(FieldOutcome, vs...))
}

// OutcomeIsNil applies the IsNil predicate on the "outcome" field.
func OutcomeIsNil() predicate.CommunicationCase {
	return predicate.CommunicationCase(sql.FieldIsNull(FieldOutcome))
}

// OutcomeNotNil applies the NotNil predicate on the "outcome" field.
func OutcomeNotNil() predicate.CommunicationCase {
	return predicate.CommunicationCase(sql.FieldNotNull(FieldOutcome))
}

// BookingIDEQ applies the EQ predicate on the "booking_id" field.
func BookingIDEQ(v string) predicate.CommunicationCase {
	return predicate.CommunicationCase(sql.FieldEQ(FieldBookingID, v))
}

// BookingIDNEQ applies the NEQ predicate on the "booking_id" field.
func BookingIDNEQ(v string) predicate.CommunicationCase {
	return predicate.CommunicationCase(sql.FieldNEQ(FieldBookingID, v))
}

// BookingIDIn applies the In predicate on the "booking_id" field.
func BookingIDIn(vs ...string) predicate.CommunicationCase {
	return predicate.CommunicationCase(sql.FieldIn(FieldBookingID, vs...))
}

// BookingIDNotIn applies the NotIn predicate on the "booking_id" field.
func BookingIDNotIn(vs ...string) predicate.CommunicationCase {
	return predicate.CommunicationCase(sql.FieldNotIn(FieldBookingID, vs...))
}

// BookingIDGT applies the GT predicate on the "booking_id" field.
func BookingIDGT(v string) predicate.CommunicationCase {
	return predicate.CommunicationCase(sql.FieldGT(FieldBookingID, v))
}

// BookingIDGTE applies the GTE predicate on the "booking_id" field.
func BookingIDGTE(v string) predicate.CommunicationCase {
	return predicate.CommunicationCase(sql.FieldGTE(FieldBookingID, v))
}

// BookingIDLT applies the LT predicate on the "booking_id" field.
func BookingIDLT(v string) predicate.CommunicationCase {
	return predicate.CommunicationCase(sql.FieldLT(FieldBookingID, v))
}

// BookingIDLTE applies the LTE predicate on the "booking_id" field.
func BookingIDLTE(v string) predicate.CommunicationCase {
	return predicate.CommunicationCase(sql.FieldLTE(FieldBookingID, v))
}

// BookingIDContains applies the Contains predicate on the "booking_id" field.
func BookingIDContains(v string) predicate.CommunicationCase {
	return predicate.CommunicationCase(sql.FieldContains(FieldBookingID, v))
}

// BookingIDHasPrefix applies the HasPrefix predicate on the "booking_id" field.
func BookingIDHasPrefix(v string) predicate.CommunicationCase {
	return predicate.CommunicationCase(sql.FieldHasPrefix(FieldBookingID, v))
}

// BookingIDHasSuffix applies the HasSuffix predicate on the "booking_id" field.
func BookingIDHasSuffix(v string) predicate.CommunicationCase {
	return predicate.CommunicationCase(sql.FieldHasSuffix(FieldBookingID, v))
}

// BookingIDIsNil applies the IsNil predicate on the "booking_id" field.
func BookingIDIsNil() predicate.CommunicationCase {
	return predicate.CommunicationCase(sql.FieldIsNull(FieldBookingID))
}

// BookingIDNotNil applies the NotNil predicate on the "booking_id" field.
func BookingIDNotNil() predicate.CommunicationCase {
	return predicate.CommunicationCase(sql.FieldNotNull(FieldBookingID))
}

// BookingIDEqualFold applies the EqualFold predicate on the "booking_id" field.
func BookingIDEqualFold(v string) predicate.CommunicationCase {
	return predicate.CommunicationCase(sql.FieldEqualFold(FieldBookingID, v))
}

// BookingIDContainsFold applies the ContainsFold predicate on the "booking_id" field.
func BookingIDContainsFold(v string) predicate.CommunicationCase {
	return predicate.CommunicationCase(sql.FieldContainsFold(FieldBookingID, v))
}

// CallSidEQ applies the EQ predicate on the "call_sid" field.
func CallSidEQ(v string) predicate.CommunicationCase {
	return predicate.CommunicationCase(sql.FieldEQ(FieldCallSid, v))
}

// CallSidNEQ applies the NEQ predicate on the "call_sid" field.
func CallSidNEQ(v string) predicate.CommunicationCase {
	return predicate.CommunicationCase(sql.FieldNEQ(FieldCallSid, v))
}

// CallSidIn applies the In predicate on the "call_sid" field.
func CallSidIn(vs ...string) predicate.CommunicationCase {
	return predicate.CommunicationCase(sql.FieldIn(FieldCallSid, vs...))
}

// CallSidNotIn applies the NotIn predicate on the "call_sid" field.
func CallSidNotIn(vs ...string) predicate.CommunicationCase {
	return predicate.CommunicationCase(sql.FieldNotIn(FieldCallSid, vs...))
}

// CallSidGT applies the GT predicate on the "call_sid" field.
func CallSidGT(v string) predicate.CommunicationCase {
	return predicate.CommunicationCase(sql.FieldGT(FieldCallSid, v))
}

// CallSidGTE applies the GTE predicate on the "call_sid" field.
func CallSidGTE(v string) predicate.CommunicationCase {
	return predicate.CommunicationCase(sql.FieldGTE(FieldCallSid, v))
}

// CallSidLT applies the LT predicate on the "call_sid" field.
func CallSidLT(v string) predicate.CommunicationCase {
	return predicate.CommunicationCase(sql.FieldLT(FieldCallSid, v))
}

// CallSidLTE applies the LTE predicate on the "call_sid" field.
func CallSidLTE(v string) predicate.CommunicationCase {
	return predicate.CommunicationCase(sql.FieldLTE(FieldCallSid, v))
}

// CallSidContains applies the Contains predicate on the "call_sid" field.
func CallSidContains(v string) predicate.CommunicationCase {
	return predicate.CommunicationCase(sql.FieldContains(FieldCallSid, v))
}

// CallSidHasPrefix applies the HasPrefix predicate on the "call_sid" field.
func CallSidHasPrefix(v string) predicate.CommunicationCase {
	return predicate.CommunicationCase(sql.FieldHasPrefix(FieldCallSid, v))
}

// CallSidHasSuffix applies the HasSuffix predicate on the "call_sid" field.
func CallSidHasSuffix(v string) predicate.CommunicationCase {
	return predicate.CommunicationCase(sql.FieldHasSuffix(FieldCallSid, v))
}

// CallSidIsNil applies the IsNil predicate on the "call_sid" field.
func CallSidIsNil() predicate.CommunicationCase {
	return predicate.CommunicationCase(sql.FieldIsNull(FieldCallSid))
}

// CallSidNotNil applies the NotNil predicate on the "call_sid" field.
func CallSidNotNil() predicate.CommunicationCase {
	return predicate.CommunicationCase(sql.FieldNotNull(FieldCallSid))
}

// CallSidEqualFold applies the EqualFold predicate on the "call_sid" field.
func CallSidEqualFold(v string) predicate.CommunicationCase {
	return predicate.CommunicationCase(sql.FieldEqualFold(FieldCallSid, v))
}

// CallSidContainsFold applies the ContainsFold predicate on the "call_sid" field.
func CallSidContainsFold(v string) predicate.CommunicationCase {
	return predicate.CommunicationCase(sql.FieldContainsFold(FieldCallSid, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.CommunicationCase {
	return predicate.CommunicationCase(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.CommunicationCase {
	return predicate.CommunicationCase(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.CommunicationCase {
	return predicate.CommunicationCase(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.CommunicationCase {
	return predicate.CommunicationCase(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.CommunicationCase {
	return predicate.CommunicationCase(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.CommunicationCase {
	return predicate.CommunicationCase(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.CommunicationCase {
	return predicate.CommunicationCase(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.CommunicationCase {
	return predicate.CommunicationCase(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.CommunicationCase {
	return predicate.CommunicationCase(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.CommunicationCase {
	return predicate.CommunicationCase(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.CommunicationCase {
	return predicate.CommunicationCase(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.CommunicationCase {
	return predicate.CommunicationCase(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.CommunicationCase {
	return predicate.CommunicationCase(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.CommunicationCase {
	return predicate.CommunicationCase(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.CommunicationCase {
	return predicate.CommunicationCase(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.CommunicationCase {
	return predicate.CommunicationCase(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.CommunicationCase) predicate.CommunicationCase {
	return predicate.CommunicationCase(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.CommunicationCase) predicate.CommunicationCase {
	return predicate.CommunicationCase(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.CommunicationCase) predicate.CommunicationCase {
	return predicate.CommunicationCase(sql.NotPredicates(p))
}
