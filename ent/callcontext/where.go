// Code generated by ent, DO NOT EDIT.

package callcontext

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/fleetsense/fleetsense/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.CallContext {
	return predicate.CallContext(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.CallContext {
	return predicate.CallContext(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.CallContext {
	return predicate.CallContext(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.CallContext {
	return predicate.CallContext(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.CallContext {
	return predicate.CallContext(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.CallContext {
	return predicate.CallContext(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.CallContext {
	return predicate.CallContext(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.CallContext {
	return predicate.CallContext(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.CallContext {
	return predicate.CallContext(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.CallContext {
	return predicate.CallContext(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.CallContext {
	return predicate.CallContext(sql.FieldContainsFold(FieldID, id))
}

// CommunicationID applies equality check predicate on the "communication_id" field. It's identical to CommunicationIDEQ.
func CommunicationID(v string) predicate.CallContext {
	return predicate.CallContext(sql.FieldEQ(FieldCommunicationID, v))
}

// EngagementID applies equality check predicate on the "engagement_id" field. It's identical to EngagementIDEQ.
func EngagementID(v string) predicate.CallContext {
	return predicate.CallContext(sql.FieldEQ(FieldEngagementID, v))
}

// CaseID applies equality check predicate on the "case_id" field. It's identical to CaseIDEQ.
func CaseID(v string) predicate.CallContext {
	return predicate.CallContext(sql.FieldEQ(FieldCaseID, v))
}

// VehicleID applies equality check predicate on the "vehicle_id" field. It's identical to VehicleIDEQ.
func VehicleID(v string) predicate.CallContext {
	return predicate.CallContext(sql.FieldEQ(FieldVehicleID, v))
}

// CustomerPhone applies equality check predicate on the "customer_phone" field. It's identical to CustomerPhoneEQ.
func CustomerPhone(v string) predicate.CallContext {
	return predicate.CallContext(sql.FieldEQ(FieldCustomerPhone, v))
}

// CustomerName applies equality check predicate on the "customer_name" field. It's identical to CustomerNameEQ.
func CustomerName(v string) predicate.CallContext {
	return predicate.CallContext(sql.FieldEQ(FieldCustomerName, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.CallContext {
	return predicate.CallContext(sql.FieldEQ(FieldCreatedAt, v))
}

// CommunicationIDEQ applies the EQ predicate on the "communication_id" field.
func CommunicationIDEQ(v string) predicate.CallContext {
	return predicate.CallContext(sql.FieldEQ(FieldCommunicationID, v))
}

// CommunicationIDNEQ applies the NEQ predicate on the "communication_id" field.
func CommunicationIDNEQ(v string) predicate.CallContext {
	return predicate.CallContext(sql.FieldNEQ(FieldCommunicationID, v))
}

// CommunicationIDIn applies the In predicate on the "communication_id" field.
func CommunicationIDIn(vs ...string) predicate.CallContext {
	return predicate.CallContext(sql.FieldIn(FieldCommunicationID, vs...))
}

// CommunicationIDNotIn applies the NotIn predicate on the "communication_id" field.
func CommunicationIDNotIn(vs ...string) predicate.CallContext {
	return predicate.CallContext(sql.FieldNotIn(FieldCommunicationID, vs...))
}

// CommunicationIDGT applies the GT predicate on the "communication_id" field.
func CommunicationIDGT(v string) predicate.CallContext {
	return predicate.CallContext(sql.FieldGT(FieldCommunicationID, v))
}

// CommunicationIDGTE applies the GTE predicate on the "communication_id" field.
func CommunicationIDGTE(v string) predicate.CallContext {
	return predicate.CallContext(sql.FieldGTE(FieldCommunicationID, v))
}

// CommunicationIDLT applies the LT predicate on the "communication_id" field.
func CommunicationIDLT(v string) predicate.CallContext {
	return predicate.CallContext(sql.FieldLT(FieldCommunicationID, v))
}

// CommunicationIDLTE applies the LTE predicate on the "communication_id" field.
func CommunicationIDLTE(v string) predicate.CallContext {
	return predicate.CallContext(sql.FieldLTE(FieldCommunicationID, v))
}

// CommunicationIDContains applies the Contains predicate on the "communication_id" field.
func CommunicationIDContains(v string) predicate.CallContext {
	return predicate.CallContext(sql.FieldContains(FieldCommunicationID, v))
}

// CommunicationIDHasPrefix applies the HasPrefix predicate on the "communication_id" field.
func CommunicationIDHasPrefix(v string) predicate.CallContext {
	return predicate.CallContext(sql.FieldHasPrefix(FieldCommunicationID, v))
}

// CommunicationIDHasSuffix applies the HasSuffix predicate on the "communication_id" field.
func CommunicationIDHasSuffix(v string) predicate.CallContext {
	return predicate.CallContext(sql.FieldHasSuffix(FieldCommunicationID, v))
}

// CommunicationIDEqualFold applies the EqualFold predicate on the "communication_id" field.
func CommunicationIDEqualFold(v string) predicate.CallContext {
	return predicate.CallContext(sql.FieldEqualFold(FieldCommunicationID, v))
}

// CommunicationIDContainsFold applies the ContainsFold predicate on the "communication_id" field.
func CommunicationIDContainsFold(v string) predicate.CallContext {
	return predicate.CallContext(sql.FieldContainsFold(FieldCommunicationID, v))
}

// EngagementIDEQ applies the EQ predicate on the "engagement_id" field.
func EngagementIDEQ(v string) predicate.CallContext {
	return predicate.CallContext(sql.FieldEQ(FieldEngagementID, v))
}

// EngagementIDNEQ applies the NEQ predicate on the "engagement_id" field.
func EngagementIDNEQ(v string) predicate.CallContext {
	return predicate.CallContext(sql.FieldNEQ(FieldEngagementID, v))
}

// EngagementIDIn applies the In predicate on the "engagement_id" field.
func EngagementIDIn(vs ...string) predicate.CallContext {
	return predicate.CallContext(sql.FieldIn(FieldEngagementID, vs...))
}

// EngagementIDNotIn applies the NotIn predicate on the "engagement_id" field.
func EngagementIDNotIn(vs ...string) predicate.CallContext {
	return predicate.CallContext(sql.FieldNotIn(FieldEngagementID, vs...))
}

// EngagementIDGT applies the GT predicate on the "engagement_id" field.
func EngagementIDGT(v string) predicate.CallContext {
	return predicate.CallContext(sql.FieldGT(FieldEngagementID, v))
}

// EngagementIDGTE applies the GTE predicate on the "engagement_id" field.
func EngagementIDGTE(v string) predicate.CallContext {
	return predicate.CallContext(sql.FieldGTE(FieldEngagementID, v))
}

// EngagementIDLT applies the LT predicate on the "engagement_id" field.
func EngagementIDLT(v string) predicate.CallContext {
	return predicate.CallContext(sql.FieldLT(FieldEngagementID, v))
}

// EngagementIDLTE applies the LTE predicate on the "engagement_id" field.
func EngagementIDLTE(v string) predicate.CallContext {
	return predicate.CallContext(sql.FieldLTE(FieldEngagementID, v))
}

// EngagementIDContains applies the Contains predicate on the "engagement_id" field.
func EngagementIDContains(v string) predicate.CallContext {
	return predicate.CallContext(sql.FieldContains(FieldEngagementID, v))
}

// EngagementIDHasPrefix applies the HasPrefix predicate on the "engagement_id" field.
func EngagementIDHasPrefix(v string) predicate.CallContext {
	return predicate.CallContext(sql.FieldHasPrefix(FieldEngagementID, v))
}

// EngagementIDHasSuffix applies the HasSuffix predicate on the "engagement_id" field.
func EngagementIDHasSuffix(v string) predicate.CallContext {
	return predicate.CallContext(sql.FieldHasSuffix(FieldEngagementID, v))
}

// EngagementIDEqualFold applies the EqualFold predicate on the "engagement_id" field.
func EngagementIDEqualFold(v string) predicate.CallContext {
	return predicate.CallContext(sql.FieldEqualFold(FieldEngagementID, v))
}

// EngagementIDContainsFold applies the ContainsFold predicate on the "engagement_id" field.
func EngagementIDContainsFold(v string) predicate.CallContext {
	return predicate.CallContext(sql.FieldContainsFold(FieldEngagementID, v))
}

// CaseIDEQ applies the EQ predicate on the "case_id" field.
func CaseIDEQ(v string) predicate.CallContext {
	return predicate.CallContext(sql.FieldEQ(FieldCaseID, v))
}

// CaseIDNEQ applies the NEQ predicate on the "case_id" field.
func CaseIDNEQ(v string) predicate.CallContext {
	return predicate.CallContext(sql.FieldNEQ(FieldCaseID, v))
}

// CaseIDIn applies the In predicate on the "case_id" field.
func CaseIDIn(vs ...string) predicate.CallContext {
	return predicate.CallContext(sql.FieldIn(FieldCaseID, vs...))
}

// CaseIDNotIn applies the NotIn predicate on the "case_id" field.
func CaseIDNotIn(vs ...string) predicate.CallContext {
	return predicate.CallContext(sql.FieldNotIn(FieldCaseID, vs...))
}

// CaseIDGT applies the GT predicate on the "case_id" field.
func CaseIDGT(v string) predicate.CallContext {
	return predicate.CallContext(sql.FieldGT(FieldCaseID, v))
}

// CaseIDGTE applies the GTE predicate on the "case_id" field.
func CaseIDGTE(v string) predicate.CallContext {
	return predicate.CallContext(sql.FieldGTE(FieldCaseID, v))
}

// CaseIDLT applies the LT predicate on the "case_id" field.
func CaseIDLT(v string) predicate.CallContext {
	return predicate.CallContext(sql.FieldLT(FieldCaseID, v))
}

// CaseIDLTE applies the LTE predicate on the "case_id" field.
func CaseIDLTE(v string) predicate.CallContext {
	return predicate.CallContext(sql.FieldLTE(FieldCaseID, v))
}

// CaseIDContains applies the Contains predicate on the "case_id" field.
func CaseIDContains(v string) predicate.CallContext {
	return predicate.CallContext(sql.FieldContains(FieldCaseID, v))
}

// CaseIDHasPrefix applies the HasPrefix predicate on the "case_id" field.
func CaseIDHasPrefix(v string) predicate.CallContext {
	return predicate.CallContext(sql.FieldHasPrefix(FieldCaseID, v))
}

// CaseIDHasSuffix applies the HasSuffix predicate on the "case_id" field.
func CaseIDHasSuffix(v string) predicate.CallContext {
	return predicate.CallContext(sql.FieldHasSuffix(FieldCaseID, v))
}

// CaseIDEqualFold applies the EqualFold predicate on the "case_id" field.
func CaseIDEqualFold(v string) predicate.CallContext {
	return predicate.CallContext(sql.FieldEqualFold(FieldCaseID, v))
}

// CaseIDContainsFold applies the ContainsFold predicate on the "case_id" field.
func CaseIDContainsFold(v string) predicate.CallContext {
	return predicate.CallContext(sql.FieldContainsFold(FieldCaseID, v))
}

// VehicleIDEQ applies the EQ predicate on the "vehicle_id" field.
func VehicleIDEQ(v string) predicate.CallContext {
	return predicate.CallContext(sql.FieldEQ(FieldVehicleID, v))
}

// VehicleIDNEQ applies the NEQ predicate on the "vehicle_id" field.
func VehicleIDNEQ(v string) predicate.CallContext {
	return predicate.CallContext(sql.FieldNEQ(FieldVehicleID, v))
}

// VehicleIDIn applies the In predicate on the "vehicle_id" field.
func VehicleIDIn(vs ...string) predicate.CallContext {
	return predicate.CallContext(sql.FieldIn(FieldVehicleID, vs...))
}

// VehicleIDNotIn applies the NotIn predicate on the "vehicle_id" field.
func VehicleIDNotIn(vs ...string) predicate.CallContext {
	return predicate.CallContext(sql.FieldNotIn(FieldVehicleID, vs...))
}

// VehicleIDGT applies the GT predicate on the "vehicle_id" field.
func VehicleIDGT(v string) predicate.CallContext {
	return predicate.CallContext(sql.FieldGT(FieldVehicleID, v))
}

// VehicleIDGTE applies the GTE predicate on the "vehicle_id" field.
func VehicleIDGTE(v string) predicate.CallContext {
	return predicate.CallContext(sql.FieldGTE(FieldVehicleID, v))
}

// VehicleIDLT applies the LT predicate on the "vehicle_id" field.
func VehicleIDLT(v string) predicate.CallContext {
	return predicate.CallContext(sql.FieldLT(FieldVehicleID, v))
}

// VehicleIDLTE applies the LTE predicate on the "vehicle_id" field.
func VehicleIDLTE(v string) predicate.CallContext {
	return predicate.CallContext(sql.FieldLTE(FieldVehicleID, v))
}

// VehicleIDContains applies the Contains predicate on the "vehicle_id" field.
func VehicleIDContains(v string) predicate.CallContext {
	return predicate.CallContext(sql.FieldContains(FieldVehicleID, v))
}

// VehicleIDHasPrefix applies the HasPrefix predicate on the "vehicle_id" field.
func VehicleIDHasPrefix(v string) predicate.CallContext {
	return predicate.CallContext(sql.FieldHasPrefix(FieldVehicleID, v))
}

// VehicleIDHasSuffix applies the HasSuffix predicate on the "vehicle_id" field.
func VehicleIDHasSuffix(v string) predicate.CallContext {
	return predicate.CallContext(sql.FieldHasSuffix(FieldVehicleID, v))
}

// VehicleIDEqualFold applies the EqualFold predicate on the "vehicle_id" field.
func VehicleIDEqualFold(v string) predicate.CallContext {
	return predicate.CallContext(sql.FieldEqualFold(FieldVehicleID, v))
}

// VehicleIDContainsFold applies the ContainsFold predicate on the "vehicle_id" field.
func VehicleIDContainsFold(v string) predicate.CallContext {
	return predicate.CallContext(sql.FieldContainsFold(FieldVehicleID, v))
}

// CustomerPhoneEQ applies the EQ predicate on the "customer_phone" field.
func CustomerPhoneEQ(v string) predicate.CallContext {
	return predicate.CallContext(sql.FieldEQ(FieldCustomerPhone, v))
}

// CustomerPhoneNEQ applies the NEQ predicate on the "customer_phone" field.
func CustomerPhoneNEQ(v string) predicate.CallContext {
	return predicate.CallContext(sql.FieldNEQ(FieldCustomerPhone, v))
}

// CustomerPhoneIn applies the In predicate on the "customer_phone" field.
func CustomerPhoneIn(vs ...string) predicate.CallContext {
	return predicate.CallContext(sql.FieldIn(FieldCustomerPhone, vs...))
}

// CustomerPhoneNotIn applies the NotIn predicate on the "customer_phone" field.
func CustomerPhoneNotIn(vs ...string) predicate.CallContext {
	return predicate.CallContext(sql.FieldNotIn(FieldCustomerPhone, vs...))
}

// CustomerPhoneGT applies the GT predicate on the "customer_phone" field.
func CustomerPhoneGT(v string) predicate.CallContext {
	return predicate.CallContext(sql.FieldGT(FieldCustomerPhone, v))
}

// CustomerPhoneGTE applies the GTE predicate on the "customer_phone" field.
func CustomerPhoneGTE(v string) predicate.CallContext {
	return predicate.CallContext(sql.FieldGTE(FieldCustomerPhone, v))
}

// CustomerPhoneLT applies the LT predicate on the "customer_phone" field.
func CustomerPhoneLT(v string) predicate.CallContext {
	return predicate.CallContext(sql.FieldLT(FieldCustomerPhone, v))
}

// CustomerPhoneLTE applies the LTE predicate on the "customer_phone" field.
func CustomerPhoneLTE(v string) predicate.CallContext {
	return predicate.CallContext(sql.FieldLTE(FieldCustomerPhone, v))
}

// CustomerPhoneContains applies the Contains predicate on the "customer_phone" field.
func CustomerPhoneContains(v string) predicate.CallContext {
	return predicate.CallContext(sql.FieldContains(FieldCustomerPhone, v))
}

// CustomerPhoneHasPrefix applies the HasPrefix predicate on the "customer_phone" field.
func CustomerPhoneHasPrefix(v string) predicate.CallContext {
	return predicate.CallContext(sql.FieldHasPrefix(FieldCustomerPhone, v))
}

// CustomerPhoneHasSuffix applies the HasSuffix predicate on the "customer_phone" field.
func CustomerPhoneHasSuffix(v string) predicate.CallContext {
	return predicate.CallContext(sql.FieldHasSuffix(FieldCustomerPhone, v))
}

// CustomerPhoneEqualFold applies the EqualFold predicate on the "customer_phone" field.
func CustomerPhoneEqualFold(v string) predicate.CallContext {
	return predicate.CallContext(sql.FieldEqualFold(FieldCustomerPhone, v))
}

// CustomerPhoneContainsFold applies the ContainsFold predicate on the "customer_phone" field.
func CustomerPhoneContainsFold(v string) predicate.CallContext {
	return predicate.CallContext(sql.FieldContainsFold(FieldCustomerPhone, v))
}

// CustomerNameEQ applies the EQ predicate on the "customer_name" field.
func CustomerNameEQ(v string) predicate.CallContext {
	return predicate.CallContext(sql.FieldEQ(FieldCustomerName, v))
}

// CustomerNameNEQ applies the NEQ predicate on the "customer_name" field.
func CustomerNameNEQ(v string) predicate.CallContext {
	return predicate.CallContext(sql.FieldNEQ(FieldCustomerName, v))
}

// CustomerNameIn applies the In predicate on the "customer_name" field.
func CustomerNameIn(vs ...string) predicate.CallContext {
	return predicate.CallContext(sql.FieldIn(FieldCustomerName, vs...))
}

// CustomerNameNotIn applies the NotIn predicate on the "customer_name" field.
func CustomerNameNotIn(vs ...string) predicate.CallContext {
	return predicate.CallContext(sql.FieldNotIn(FieldCustomerName, vs...))
}

// CustomerNameGT applies the GT predicate on the "customer_name" field.
func CustomerNameGT(v string) predicate.CallContext {
	return predicate.CallContext(sql.FieldGT(FieldCustomerName, v))
}

// CustomerNameGTE applies the GTE predicate on the "customer_name" field.
func CustomerNameGTE(v string) predicate.CallContext {
	return predicate.CallContext(sql.FieldGTE(FieldCustomerName, v))
}

// CustomerNameLT applies the LT predicate on the "customer_name" field.
func CustomerNameLT(v string) predicate.CallContext {
	return predicate.CallContext(sql.FieldLT(FieldCustomerName, v))
}

// CustomerNameLTE applies the LTE predicate on the "customer_name" field.
func CustomerNameLTE(v string) predicate.CallContext {
	return predicate.CallContext(sql.FieldLTE(FieldCustomerName, v))
}

// CustomerNameContains applies the Contains predicate on the "customer_name" field.
func CustomerNameContains(v string) predicate.CallContext {
	return predicate.CallContext(sql.FieldContains(FieldCustomerName, v))
}

// CustomerNameHasPrefix applies the HasPrefix predicate on the "customer_name" field.
func CustomerNameHasPrefix(v string) predicate.CallContext {
	return predicate.CallContext(sql.FieldHasPrefix(FieldCustomerName, v))
}

// CustomerNameHasSuffix applies the HasSuffix predicate on the "customer_name" field.
func CustomerNameHasSuffix(v string) predicate.CallContext {
	return predicate.CallContext(sql.FieldHasSuffix(FieldCustomerName, v))
}

// CustomerNameIsNil applies the IsNil predicate on the "customer_name" field.
func CustomerNameIsNil() predicate.CallContext {
	return predicate.CallContext(sql.FieldIsNull(FieldCustomerName))
}

// CustomerNameNotNil applies the NotNil predicate on the "customer_name" field.
func CustomerNameNotNil() predicate.CallContext {
	return predicate.CallContext(sql.FieldNotNull(FieldCustomerName))
}

// CustomerNameEqualFold applies the EqualFold predicate on the "customer_name" field.
func CustomerNameEqualFold(v string) predicate.CallContext {
	return predicate.CallContext(sql.FieldEqualFold(FieldCustomerName, v))
}

// CustomerNameContainsFold applies the ContainsFold predicate on the "customer_name" field.
func CustomerNameContainsFold(v string) predicate.CallContext {
	return predicate.CallContext(sql.FieldContainsFold(FieldCustomerName, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.CallContext {
	return predicate.CallContext(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.CallContext {
	return predicate.CallContext(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.CallContext {
	return predicate.CallContext(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.CallContext {
	return predicate.CallContext(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.CallContext {
	return predicate.CallContext(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.CallContext {
	return predicate.CallContext(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.CallContext {
	return predicate.CallContext(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.CallContext {
	return predicate.CallContext(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.CallContext) predicate.CallContext {
	return predicate.CallContext(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.CallContext) predicate.CallContext {
	return predicate.CallContext(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.CallContext) predicate.CallContext {
	return predicate.CallContext(sql.NotPredicates(p))
}
