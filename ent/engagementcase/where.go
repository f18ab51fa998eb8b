// Code generated by ent, DO NOT EDIT.

package engagementcase

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/fleetsense/fleetsense/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.EngagementCase {
	return predicate.EngagementCase(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.EngagementCase {
	return predicate.EngagementCase(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.EngagementCase {
	return predicate.EngagementCase(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.EngagementCase {
	return predicate.EngagementCase(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.EngagementCase {
	return predicate.EngagementCase(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.EngagementCase {
	return predicate.EngagementCase(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.EngagementCase {
	return predicate.EngagementCase(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.EngagementCase {
	return predicate.EngagementCase(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.EngagementCase {
	return predicate.EngagementCase(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.EngagementCase {
	return predicate.EngagementCase(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.EngagementCase {
	return predicate.EngagementCase(sql.FieldContainsFold(FieldID, id))
}

// SchedulingID applies equality check predicate on the "scheduling_id" field. It's identical to SchedulingIDEQ.
func SchedulingID(v string) predicate.EngagementCase {
	return predicate.EngagementCase(sql.FieldEQ(FieldSchedulingID, v))
}

// RcaID applies equality check predicate on the "rca_id" field. It's identical to RcaIDEQ.
func RcaID(v string) predicate.EngagementCase {
	return predicate.EngagementCase(sql.FieldEQ(FieldRcaID, v))
}

// CaseID applies equality check predicate on the "case_id" field. It's identical to CaseIDEQ.
func CaseID(v string) predicate.EngagementCase {
	return predicate.EngagementCase(sql.FieldEQ(FieldCaseID, v))
}

// VehicleID applies equality check predicate on the "vehicle_id" field. It's identical to VehicleIDEQ.
func VehicleID(v string) predicate.EngagementCase {
	return predicate.EngagementCase(sql.FieldEQ(FieldVehicleID, v))
}

// CustomerPhone applies equality check predicate on the "customer_phone" field. It's identical to CustomerPhoneEQ.
func CustomerPhone(v string) predicate.EngagementCase {
	return predicate.EngagementCase(sql.FieldEQ(FieldCustomerPhone, v))
}

// CustomerName applies equality check predicate on the "customer_name" field. It's identical to CustomerNameEQ.
func CustomerName(v string) predicate.EngagementCase {
	return predicate.EngagementCase(sql.FieldEQ(FieldCustomerName, v))
}

// BookingID applies equality check predicate on the "booking_id" field. It's identical to BookingIDEQ.
func BookingID(v string) predicate.EngagementCase {
	return predicate.EngagementCase(sql.FieldEQ(FieldBookingID, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.EngagementCase {
	return predicate.EngagementCase(sql.FieldEQ(FieldCreatedAt, v))
}

// SchedulingIDEQ applies the EQ predicate on the "scheduling_id" field.
func SchedulingIDEQ(v string) predicate.EngagementCase {
	return predicate.EngagementCase(sql.FieldEQ(FieldSchedulingID, v))
}

// SchedulingIDNEQ applies the NEQ predicate on the "scheduling_id" field.
func SchedulingIDNEQ(v string) predicate.EngagementCase {
	return predicate.EngagementCase(sql.FieldNEQ(FieldSchedulingID, v))
}

// SchedulingIDIn applies the In predicate on the "scheduling_id" field.
func SchedulingIDIn(vs ...string) predicate.EngagementCase {
	return predicate.EngagementCase(sql.FieldIn(FieldSchedulingID, vs...))
}

// SchedulingIDNotIn applies the NotIn predicate on the "scheduling_id" field.
func SchedulingIDNotIn(vs ...string) predicate.EngagementCase {
	return predicate.EngagementCase(sql.FieldNotIn(FieldSchedulingID, vs...))
}

// SchedulingIDGT applies the GT predicate on the "scheduling_id" field.
func SchedulingIDGT(v string) predicate.EngagementCase {
	return predicate.EngagementCase(sql.FieldGT(FieldSchedulingID, v))
}

// SchedulingIDGTE applies the GTE predicate on the "scheduling_id" field.
func SchedulingIDGTE(v string) predicate.EngagementCase {
	return predicate.EngagementCase(sql.FieldGTE(FieldSchedulingID, v))
}

// SchedulingIDLT applies the LT predicate on the "scheduling_id" field.
func SchedulingIDLT(v string) predicate.EngagementCase {
	return predicate.EngagementCase(sql.FieldLT(FieldSchedulingID, v))
}

// SchedulingIDLTE applies the LTE predicate on the "scheduling_id" field.
func SchedulingIDLTE(v string) predicate.EngagementCase {
	return predicate.EngagementCase(sql.FieldLTE(FieldSchedulingID, v))
}

// SchedulingIDContains applies the Contains predicate on the "scheduling_id" field.
func SchedulingIDContains(v string) predicate.EngagementCase {
	return predicate.EngagementCase(sql.FieldContains(FieldSchedulingID, v))
}

// SchedulingIDHasPrefix applies the HasPrefix predicate on the "scheduling_id" field.
func SchedulingIDHasPrefix(v string) predicate.EngagementCase {
	return predicate.EngagementCase(sql.FieldHasPrefix(FieldSchedulingID, v))
}

// SchedulingIDHasSuffix applies the HasSuffix predicate on the "scheduling_id" field.
func SchedulingIDHasSuffix(v string) predicate.EngagementCase {
	return predicate.EngagementCase(sql.FieldHasSuffix(FieldSchedulingID, v))
}

// SchedulingIDEqualFold applies the EqualFold predicate on the "scheduling_id" field.
func SchedulingIDEqualFold(v string) predicate.EngagementCase {
	return predicate.EngagementCase(sql.FieldEqualFold(FieldSchedulingID, v))
}

// SchedulingIDContainsFold applies the ContainsFold predicate on the "scheduling_id" field.
func SchedulingIDContainsFold(v string) predicate.EngagementCase {
	return predicate.EngagementCase(sql.FieldContainsFold(FieldSchedulingID, v))
}

// RcaIDEQ applies the EQ predicate on the "rca_id" field.
func RcaIDEQ(v string) predicate.EngagementCase {
	return predicate.EngagementCase(sql.FieldEQ(FieldRcaID, v))
}

// RcaIDNEQ applies the NEQ predicate on the "rca_id" field.
func RcaIDNEQ(v string) predicate.EngagementCase {
	return predicate.EngagementCase(sql.FieldNEQ(FieldRcaID, v))
}

// RcaIDIn applies the In predicate on the "rca_id" field.
func RcaIDIn(vs ...string) predicate.EngagementCase {
	return predicate.EngagementCase(sql.FieldIn(FieldRcaID, vs...))
}

// RcaIDNotIn applies the NotIn predicate on the "rca_id" field.
func RcaIDNotIn(vs ...string) predicate.EngagementCase {
	return predicate.EngagementCase(sql.FieldNotIn(FieldRcaID, vs...))
}

// RcaIDGT applies the GT predicate on the "rca_id" field.
func RcaIDGT(v string) predicate.EngagementCase {
	return predicate.EngagementCase(sql.FieldGT(FieldRcaID, v))
}

// RcaIDGTE applies the GTE predicate on the "rca_id" field.
func RcaIDGTE(v string) predicate.EngagementCase {
	return predicate.EngagementCase(sql.FieldGTE(FieldRcaID, v))
}

// RcaIDLT applies the LT predicate on the "rca_id" field.
func RcaIDLT(v string) predicate.EngagementCase {
	return predicate.EngagementCase(sql.FieldLT(FieldRcaID, v))
}

// RcaIDLTE applies the LTE predicate on the "rca_id" field.
func RcaIDLTE(v string) predicate.EngagementCase {
	return predicate.EngagementCase(sql.FieldLTE(FieldRcaID, v))
}

// RcaIDContains applies the Contains predicate on the "rca_id" field.
func RcaIDContains(v string) predicate.EngagementCase {
	return predicate.EngagementCase(sql.FieldContains(FieldRcaID, v))
}

// RcaIDHasPrefix applies the HasPrefix predicate on the "rca_id" field.
func RcaIDHasPrefix(v string) predicate.EngagementCase {
	return predicate.EngagementCase(sql.FieldHasPrefix(FieldRcaID, v))
}

// RcaIDHasSuffix applies the HasSuffix predicate on the "rca_id" field.
func RcaIDHasSuffix(v string) predicate.EngagementCase {
	return predicate.EngagementCase(sql.FieldHasSuffix(FieldRcaID, v))
}

// RcaIDIsNil applies the IsNil predicate on the "rca_id" field.
func RcaIDIsNil() predicate.EngagementCase {
	return predicate.EngagementCase(sql.FieldIsNull(FieldRcaID))
}

// RcaIDNotNil applies the NotNil predicate on the "rca_id" field.
func RcaIDNotNil() predicate.EngagementCase {
	return predicate.EngagementCase(sql.FieldNotNull(FieldRcaID))
}

// RcaIDEqualFold applies the EqualFold predicate on the "rca_id" field.
func RcaIDEqualFold(v string) predicate.EngagementCase {
	return predicate.EngagementCase(sql.FieldEqualFold(FieldRcaID, v))
}

// RcaIDContainsFold applies the ContainsFold predicate on the "rca_id" field.
func RcaIDContainsFold(v string) predicate.EngagementCase {
	return predicate.EngagementCase(sql.FieldContainsFold(FieldRcaID, v))
}

// CaseIDEQ applies the EQ predicate on the "case_id" field.
func CaseIDEQ(v string) predicate.EngagementCase {
	return predicate.EngagementCase(sql.FieldEQ(FieldCaseID, v))
}

// CaseIDNEQ applies the NEQ predicate on the "case_id" field.
func CaseIDNEQ(v string) predicate.EngagementCase {
	return predicate.EngagementCase(sql.FieldNEQ(FieldCaseID, v))
}

// CaseIDIn applies the In predicate on the "case_id" field.
func CaseIDIn(vs ...string) predicate.EngagementCase {
	return predicate.EngagementCase(sql.FieldIn(FieldCaseID, vs...))
}

// CaseIDNotIn applies the NotIn predicate on the "case_id" field.
func CaseIDNotIn(vs ...string) predicate.EngagementCase {
	return predicate.EngagementCase(sql.FieldNotIn(FieldCaseID, vs...))
}

// CaseIDGT applies the GT predicate on the "case_id" field.
func CaseIDGT(v string) predicate.EngagementCase {
	return predicate.EngagementCase(sql.FieldGT(FieldCaseID, v))
}

// CaseIDGTE applies the GTE predicate on the "case_id" field.
func CaseIDGTE(v string) predicate.EngagementCase {
	return predicate.EngagementCase(sql.FieldGTE(FieldCaseID, v))
}

// CaseIDLT applies the LT predicate on the "case_id" field.
func CaseIDLT(v string) predicate.EngagementCase {
	return predicate.EngagementCase(sql.FieldLT(FieldCaseID, v))
}

// CaseIDLTE applies the LTE predicate on the "case_id" field.
func CaseIDLTE(v string) predicate.EngagementCase {
	return predicate.EngagementCase(sql.FieldLTE(FieldCaseID, v))
}

// CaseIDContains applies the Contains predicate on the "case_id" field.
func CaseIDContains(v string) predicate.EngagementCase {
	return predicate.EngagementCase(sql.FieldContains(FieldCaseID, v))
}

// CaseIDHasPrefix applies the HasPrefix predicate on the "case_id" field.
func CaseIDHasPrefix(v string) predicate.EngagementCase {
	return predicate.EngagementCase(sql.FieldHasPrefix(FieldCaseID, v))
}

// CaseIDHasSuffix applies the HasSuffix predicate on the "case_id" field.
func CaseIDHasSuffix(v string) predicate.EngagementCase {
	return predicate.EngagementCase(sql.FieldHasSuffix(FieldCaseID, v))
}

// CaseIDEqualFold applies the EqualFold predicate on the "case_id" field.
func CaseIDEqualFold(v string) predicate.EngagementCase {
	return predicate.EngagementCase(sql.FieldEqualFold(FieldCaseID, v))
}

// CaseIDContainsFold applies the ContainsFold predicate on the "case_id" field.
func CaseIDContainsFold(v string) predicate.EngagementCase {
	return predicate.EngagementCase(sql.FieldContainsFold(FieldCaseID, v))
}

// VehicleIDEQ applies the EQ predicate on the "vehicle_id" field.
func VehicleIDEQ(v string) predicate.EngagementCase {
	return predicate.EngagementCase(sql.FieldEQ(FieldVehicleID, v))
}

// VehicleIDNEQ applies the NEQ predicate on the "vehicle_id" field.
func VehicleIDNEQ(v string) predicate.EngagementCase {
	return predicate.EngagementCase(sql.FieldNEQ(FieldVehicleID, v))
}

// VehicleIDIn applies the In predicate on the "vehicle_id" field.
func VehicleIDIn(vs ...string) predicate.EngagementCase {
	return predicate.EngagementCase(sql.FieldIn(FieldVehicleID, vs...))
}

// VehicleIDNotIn applies the NotIn predicate on the "vehicle_id" field.
func VehicleIDNotIn(vs ...string) predicate.EngagementCase {
	return predicate.EngagementCase(sql.FieldNotIn(FieldVehicleID, vs...))
}

// VehicleIDGT applies the GT predicate on the "vehicle_id" field.
func VehicleIDGT(v string) predicate.EngagementCase {
	return predicate.EngagementCase(sql.FieldGT(FieldVehicleID, v))
}

// VehicleIDGTE applies the GTE predicate on the "vehicle_id" field.
func VehicleIDGTE(v string) predicate.EngagementCase {
	return predicate.EngagementCase(sql.FieldGTE(FieldVehicleID, v))
}

// VehicleIDLT applies the LT predicate on the "vehicle_id" field.
func VehicleIDLT(v string) predicate.EngagementCase {
	return predicate.EngagementCase(sql.FieldLT(FieldVehicleID, v))
}

// VehicleIDLTE applies the LTE predicate on the "vehicle_id" field.
func VehicleIDLTE(v string) predicate.EngagementCase {
	return predicate.EngagementCase(sql.FieldLTE(FieldVehicleID, v))
}

// VehicleIDContains applies the Contains predicate on the "vehicle_id" field.
func VehicleIDContains(v string) predicate.EngagementCase {
	return predicate.EngagementCase(sql.FieldContains(FieldVehicleID, v))
}

// VehicleIDHasPrefix applies the HasPrefix predicate on the "vehicle_id" field.
func VehicleIDHasPrefix(v string) predicate.EngagementCase {
	return predicate.EngagementCase(sql.FieldHasPrefix(FieldVehicleID, v))
}

// VehicleIDHasSuffix applies the HasSuffix predicate on the "vehicle_id" field.
func VehicleIDHasSuffix(v string) predicate.EngagementCase {
	return predicate.EngagementCase(sql.FieldHasSuffix(FieldVehicleID, v))
}

// VehicleIDEqualFold applies the EqualFold predicate on the "vehicle_id" field.
func VehicleIDEqualFold(v string) predicate.EngagementCase {
	return predicate.EngagementCase(sql.FieldEqualFold(FieldVehicleID, v))
}

// VehicleIDContainsFold applies the ContainsFold predicate on the "vehicle_id" field.
func VehicleIDContainsFold(v string) predicate.EngagementCase {
	return predicate.EngagementCase(sql.FieldContainsFold(FieldVehicleID, v))
}

// CustomerPhoneEQ applies the EQ predicate on the "customer_phone" field.
func CustomerPhoneEQ(v string) predicate.EngagementCase {
	return predicate.EngagementCase(sql.FieldEQ(FieldCustomerPhone, v))
}

// CustomerPhoneNEQ applies the NEQ predicate on the "customer_phone" field.
func CustomerPhoneNEQ(v string) predicate.EngagementCase {
	return predicate.EngagementCase(sql.FieldNEQ(FieldCustomerPhone, v))
}

// CustomerPhoneIn applies the In predicate on the "customer_phone" field.
func CustomerPhoneIn(vs ...string) predicate.EngagementCase {
	return predicate.EngagementCase(sql.FieldIn(FieldCustomerPhone, vs...))
}

// CustomerPhoneNotIn applies the NotIn predicate on the "customer_phone" field.
func CustomerPhoneNotIn(vs ...string) predicate.EngagementCase {
	return predicate.EngagementCase(sql.FieldNotIn(FieldCustomerPhone, vs...))
}

// CustomerPhoneGT applies the GT predicate on the "customer_phone" field.
func CustomerPhoneGT(v string) predicate.EngagementCase {
	return predicate.EngagementCase(sql.FieldGT(FieldCustomerPhone, v))
}

// CustomerPhoneGTE applies the GTE predicate on the "customer_phone" field.
func CustomerPhoneGTE(v string) predicate.EngagementCase {
	return predicate.EngagementCase(sql.FieldGTE(FieldCustomerPhone, v))
}

// CustomerPhoneLT applies the LT predicate on the "customer_phone" field.
func CustomerPhoneLT(v string) predicate.EngagementCase {
	return predicate.EngagementCase(sql.FieldLT(FieldCustomerPhone, v))
}

// CustomerPhoneLTE applies the LTE predicate on the "customer_phone" field.
func CustomerPhoneLTE(v string) predicate.EngagementCase {
	return predicate.EngagementCase(sql.FieldLTE(FieldCustomerPhone, v))
}

// CustomerPhoneContains applies the Contains predicate on the "customer_phone" field.
func CustomerPhoneContains(v string) predicate.EngagementCase {
	return predicate.EngagementCase(sql.FieldContains(FieldCustomerPhone, v))
}

// CustomerPhoneHasPrefix applies the HasPrefix predicate on the "customer_phone" field.
func CustomerPhoneHasPrefix(v string) predicate.EngagementCase {
	return predicate.EngagementCase(sql.FieldHasPrefix(FieldCustomerPhone, v))
}

// CustomerPhoneHasSuffix applies the HasSuffix predicate on the "customer_phone" field.
func CustomerPhoneHasSuffix(v string) predicate.EngagementCase {
	return predicate.EngagementCase(sql.FieldHasSuffix(FieldCustomerPhone, v))
}

// CustomerPhoneIsNil applies the IsNil predicate on the "customer_phone" field.
func CustomerPhoneIsNil() predicate.EngagementCase {
	return predicate.EngagementCase(sql.FieldIsNull(FieldCustomerPhone))
}

// CustomerPhoneNotNil applies the NotNil predicate on the "customer_phone" field.
func CustomerPhoneNotNil() predicate.EngagementCase {
	return predicate.EngagementCase(sql.FieldNotNull(FieldCustomerPhone))
}

// CustomerPhoneEqualFold applies the EqualFold predicate on the "customer_phone" field.
func CustomerPhoneEqualFold(v string) predicate.EngagementCase {
	return predicate.EngagementCase(sql.FieldEqualFold(FieldCustomerPhone, v))
}

// CustomerPhoneContainsFold applies the ContainsFold predicate on the "customer_phone" field.
func CustomerPhoneContainsFold(v string) predicate.EngagementCase {
	return predicate.EngagementCase(sql.FieldContainsFold(FieldCustomerPhone, v))
}

// CustomerNameEQ applies the EQ predicate on the "customer_name" field.
func CustomerNameEQ(v string) predicate.EngagementCase {
	return predicate.EngagementCase(sql.FieldEQ(FieldCustomerName, v))
}

// CustomerNameNEQ applies the NEQ predicate on the "customer_name" field.
func CustomerNameNEQ(v string) predicate.EngagementCase {
	return predicate.EngagementCase(sql.FieldNEQ(FieldCustomerName, v))
}

// CustomerNameIn applies the In predicate on the "customer_name" field.
func CustomerNameIn(vs ...string) predicate.EngagementCase {
	return predicate.EngagementCase(sql.FieldIn(FieldCustomerName, vs...))
}

// CustomerNameNotIn applies the NotIn predicate on the "customer_name" field.
func CustomerNameNotIn(vs ...string) predicate.EngagementCase {
	return predicate.EngagementCase(sql.FieldNotIn(FieldCustomerName, vs...))
}

// CustomerNameGT applies the GT predicate on the "customer_name" field.
func CustomerNameGT(v string) predicate.EngagementCase {
	return predicate.EngagementCase(sql.FieldGT(FieldCustomerName, v))
}

// CustomerNameGTE applies the GTE predicate on the "customer_name" field.
func CustomerNameGTE(v string) predicate.EngagementCase {
	return predicate.EngagementCase(sql.FieldGTE(FieldCustomerName, v))
}

// CustomerNameLT applies the LT predicate on the "customer_name" field.
func CustomerNameLT(v string) predicate.EngagementCase {
	return predicate.EngagementCase(sql.FieldLT(FieldCustomerName, v))
}

// CustomerNameLTE applies the LTE predicate on the "customer_name" field.
func CustomerNameLTE(v string) predicate.EngagementCase {
	return predicate.EngagementCase(sql.FieldLTE(FieldCustomerName, v))
}

// CustomerNameContains applies the Contains predicate on the "customer_name" field.
func CustomerNameContains(v string) predicate.EngagementCase {
	return predicate.EngagementCase(sql.FieldContains(FieldCustomerName, v))
}

// CustomerNameHasPrefix applies the HasPrefix predicate on the "customer_name" field.
func CustomerNameHasPrefix(v string) predicate.EngagementCase {
	return predicate.EngagementCase(sql.FieldHasPrefix(FieldCustomerName, v))
}

// CustomerNameHasSuffix applies the HasSuffix predicate on the "customer_name" field.
func CustomerNameHasSuffix(v string) predicate.EngagementCase {
	return predicate.EngagementCase(sql.FieldHasSuffix(FieldCustomerName, v))
}

// CustomerNameIsNil applies the IsNil predicate on the "customer_name" field.
func CustomerNameIsNil() predicate.EngagementCase {
	return predicate.EngagementCase(sql.FieldIsNull(FieldCustomerName))
}

// CustomerNameNotNil applies the NotNil predicate on the "customer_name" field.
func CustomerNameNotNil() predicate.EngagementCase {
	return predicate.EngagementCase(sql.FieldNotNull(FieldCustomerName))
}

// CustomerNameEqualFold applies the EqualFold predicate on the "customer_name" field.
func CustomerNameEqualFold(v string) predicate.EngagementCase {
	return predicate.EngagementCase(sql.FieldEqualFold(FieldCustomerName, v))
}

// CustomerNameContainsFold applies the ContainsFold predicate on the "customer_name" field.
func CustomerNameContainsFold(v string) predicate.EngagementCase {
	return predicate.EngagementCase(sql.FieldContainsFold(FieldCustomerName, v))
}

// CustomerDecisionEQ applies the EQ predicate on the "customer_decision" field.
func CustomerDecisionEQ(v CustomerDecision) predicate.EngagementCase {
	return predicate.EngagementCase(sql.FieldEQ(FieldCustomerDecision, v))
}

// CustomerDecisionNEQ applies the NEQ predicate on the "customer_decision" field.
func CustomerDecisionNEQ(v CustomerDecision) predicate.EngagementCase {
	return predicate.EngagementCase(sql.FieldNEQ(FieldCustomerDecision, v))
}

// CustomerDecisionIn applies the In predicate on the "customer_decision" field.
func CustomerDecisionIn(vs ...CustomerDecision) predicate.EngagementCase {
	return predicate.EngagementCase(sql.FieldIn(FieldCustomerDecision, vs...))
}

// CustomerDecisionNotIn applies the NotIn predicate on the "customer_decision" field.
func CustomerDecisionNotIn(vs ...CustomerDecision) predicate.EngagementCase {
	return predicate.EngagementCase(sql.FieldNotIn(FieldCustomerDecision, vs...))
}

// BookingIDEQ applies the EQ predicate on the "booking_id" field.
func BookingIDEQ(v string) predicate.EngagementCase {
	return predicate.EngagementCase(sql.FieldEQ(FieldBookingID, v))
}

// BookingIDNEQ applies the NEQ predicate on the "booking_id" field.
func BookingIDNEQ(v string) predicate.EngagementCase {
	return predicate.EngagementCase(sql.FieldNEQ(FieldBookingID, v))
}

// BookingIDIn applies the In predicate on the "booking_id" field.
func BookingIDIn(vs ...string) predicate.EngagementCase {
	return predicate.EngagementCase(sql.FieldIn(FieldBookingID, vs...))
}

// BookingIDNotIn applies the NotIn predicate on the "booking_id" field.
func BookingIDNotIn(vs ...string) predicate.EngagementCase {
	return predicate.EngagementCase(sql.FieldNotIn(FieldBookingID, vs...))
}

// BookingIDGT applies the GT predicate on the "booking_id" field.
func BookingIDGT(v string) predicate.EngagementCase {
	return predicate.EngagementCase(sql.FieldGT(FieldBookingID, v))
}

// BookingIDGTE applies the GTE predicate on the "booking_id" field.
func BookingIDGTE(v string) predicate.EngagementCase {
	return predicate.EngagementCase(sql.FieldGTE(FieldBookingID, v))
}

// BookingIDLT applies the LT predicate on the "booking_id" field.
func BookingIDLT(v string) predicate.EngagementCase {
	return predicate.EngagementCase(sql.FieldLT(FieldBookingID, v))
}

// BookingIDLTE applies the LTE predicate on the "booking_id" field.
func BookingIDLTE(v string) predicate.EngagementCase {
	return predicate.EngagementCase(sql.FieldLTE(FieldBookingID, v))
}

// BookingIDContains applies the Contains predicate on the "booking_id" field.
func BookingIDContains(v string) predicate.EngagementCase {
	return predicate.EngagementCase(sql.FieldContains(FieldBookingID, v))
}

// BookingIDHasPrefix applies the HasPrefix predicate on the "booking_id" field.
func BookingIDHasPrefix(v string) predicate.EngagementCase {
	return predicate.EngagementCase(sql.FieldHasPrefix(FieldBookingID, v))
}

// BookingIDHasSuffix applies the HasSuffix predicate on the "booking_id" field.
func BookingIDHasSuffix(v string) predicate.EngagementCase {
	return predicate.EngagementCase(sql.FieldHasSuffix(FieldBookingID, v))
}

// BookingIDIsNil applies the IsNil predicate on the "booking_id" field.
func BookingIDIsNil() predicate.EngagementCase {
	return predicate.EngagementCase(sql.FieldIsNull(FieldBookingID))
}

// BookingIDNotNil applies the NotNil predicate on the "booking_id" field.
func BookingIDNotNil() predicate.EngagementCase {
	return predicate.EngagementCase(sql.FieldNotNull(FieldBookingID))
}

// BookingIDEqualFold applies the EqualFold predicate on the "booking_id" field.
func BookingIDEqualFold(v string) predicate.EngagementCase {
	return predicate.EngagementCase(sql.FieldEqualFold(FieldBookingID, v))
}

// BookingIDContainsFold applies the ContainsFold predicate on the "booking_id" field.
func BookingIDContainsFold(v string) predicate.EngagementCase {
	return predicate.EngagementCase(sql.FieldContainsFold(FieldBookingID, v))
}

// TranscriptIsNil applies the IsNil predicate on the "transcript" field.
func TranscriptIsNil() predicate.EngagementCase {
	return predicate.EngagementCase(sql.FieldIsNull(FieldTranscript))
}

// TranscriptNotNil applies the NotNil predicate on the "transcript" field.
func TranscriptNotNil() predicate.EngagementCase {
	return predicate.EngagementCase(sql.FieldNotNull(FieldTranscript))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.EngagementCase {
	return predicate.EngagementCase(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.EngagementCase {
	return predicate.EngagementCase(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.EngagementCase {
	return predicate.EngagementCase(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.EngagementCase {
	return predicate.EngagementCase(sql.FieldNotIn(FieldStatus, vs...))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.EngagementCase {
	return predicate.EngagementCase(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.EngagementCase {
	return predicate.EngagementCase(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.EngagementCase {
	return predicate.EngagementCase(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.EngagementCase {
	return predicate.EngagementCase(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.EngagementCase {
	return predicate.EngagementCase(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.EngagementCase {
	return predicate.EngagementCase(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.EngagementCase {
	return predicate.EngagementCase(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.EngagementCase {
	return predicate.EngagementCase(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.EngagementCase) predicate.EngagementCase {
	return predicate.EngagementCase(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.EngagementCase) predicate.EngagementCase {
	return predicate.EngagementCase(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.EngagementCase) predicate.EngagementCase {
	return predicate.EngagementCase(sql.NotPredicates(p))
}
