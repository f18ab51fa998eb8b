// Code generated by ent, DO NOT EDIT.

package booking

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/fleetsense/fleetsense/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Booking {
	return predicate.Booking(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Booking {
	return predicate.Booking(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Booking {
	return predicate.Booking(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Booking {
	return predicate.Booking(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Booking {
	return predicate.Booking(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Booking {
	return predicate.Booking(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Booking {
	return predicate.Booking(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Booking {
	return predicate.Booking(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Booking {
	return predicate.Booking(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Booking {
	return predicate.Booking(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Booking {
	return predicate.Booking(sql.FieldContainsFold(FieldID, id))
}

// CaseID applies equality check predicate on the "case_id" field. It's identical to CaseIDEQ.
func CaseID(v string) predicate.Booking {
	return predicate.Booking(sql.FieldEQ(FieldCaseID, v))
}

// VehicleID applies equality check predicate on the "vehicle_id" field. It's identical to VehicleIDEQ.
func VehicleID(v string) predicate.Booking {
	return predicate.Booking(sql.FieldEQ(FieldVehicleID, v))
}

// ServiceCenter applies equality check predicate on the "service_center" field. It's identical to ServiceCenterEQ.
func ServiceCenter(v string) predicate.Booking {
	return predicate.Booking(sql.FieldEQ(FieldServiceCenter, v))
}

// ScheduledSlot applies equality check predicate on the "scheduled_slot" field. It's identical to ScheduledSlotEQ.
func ScheduledSlot(v time.Time) predicate.Booking {
	return predicate.Booking(sql.FieldEQ(FieldScheduledSlot, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Booking {
	return predicate.Booking(sql.FieldEQ(FieldCreatedAt, v))
}

// CaseIDEQ applies the EQ predicate on the "case_id" field.
func CaseIDEQ(v string) predicate.Booking {
	return predicate.Booking(sql.FieldEQ(FieldCaseID, v))
}

// CaseIDNEQ applies the NEQ predicate on the "case_id" field.
func CaseIDNEQ(v string) predicate.Booking {
	return predicate.Booking(sql.FieldNEQ(FieldCaseID, v))
}

// CaseIDIn applies the In predicate on the "case_id" field.
func CaseIDIn(vs ...string) predicate.Booking {
	return predicate.Booking(sql.FieldIn(FieldCaseID, vs...))
}

// CaseIDNotIn applies the NotIn predicate on the "case_id" field.
func CaseIDNotIn(vs ...string) predicate.Booking {
	return predicate.Booking(sql.FieldNotIn(FieldCaseID, vs...))
}

// CaseIDGT applies the GT predicate on the "case_id" field.
func CaseIDGT(v string) predicate.Booking {
	return predicate.Booking(sql.FieldGT(FieldCaseID, v))
}

// CaseIDGTE applies the GTE predicate on the "case_id" field.
func CaseIDGTE(v string) predicate.Booking {
	return predicate.Booking(sql.FieldGTE(FieldCaseID, v))
}

// CaseIDLT applies the LT predicate on the "case_id" field.
func CaseIDLT(v string) predicate.Booking {
	return predicate.Booking(sql.FieldLT(FieldCaseID, v))
}

// CaseIDLTE applies the LTE predicate on the "case_id" field.
func CaseIDLTE(v string) predicate.Booking {
	return predicate.Booking(sql.FieldLTE(FieldCaseID, v))
}

// CaseIDContains applies the Contains predicate on the "case_id" field.
func CaseIDContains(v string) predicate.Booking {
	return predicate.Booking(sql.FieldContains(FieldCaseID, v))
}

// CaseIDHasPrefix applies the HasPrefix predicate on the "case_id" field.
func CaseIDHasPrefix(v string) predicate.Booking {
	return predicate.Booking(sql.FieldHasPrefix(FieldCaseID, v))
}

// CaseIDHasSuffix applies the HasSuffix predicate on the "case_id" field.
func CaseIDHasSuffix(v string) predicate.Booking {
	return predicate.Booking(sql.FieldHasSuffix(FieldCaseID, v))
}

// CaseIDEqualFold applies the EqualFold predicate on the "case_id" field.
func CaseIDEqualFold(v string) predicate.Booking {
	return predicate.Booking(sql.FieldEqualFold(FieldCaseID, v))
}

// CaseIDContainsFold applies the ContainsFold predicate on the "case_id" field.
func CaseIDContainsFold(v string) predicate.Booking {
	return predicate.Booking(sql.FieldContainsFold(FieldCaseID, v))
}

// VehicleIDEQ applies the EQ predicate on the "vehicle_id" field.
func VehicleIDEQ(v string) predicate.Booking {
	return predicate.Booking(sql.FieldEQ(FieldVehicleID, v))
}

// VehicleIDNEQ applies the NEQ predicate on the "vehicle_id" field.
func VehicleIDNEQ(v string) predicate.Booking {
	return predicate.Booking(sql.FieldNEQ(FieldVehicleID, v))
}

// VehicleIDIn applies the In predicate on the "vehicle_id" field.
func VehicleIDIn(vs ...string) predicate.Booking {
	return predicate.Booking(sql.FieldIn(FieldVehicleID, vs...))
}

// VehicleIDNotIn applies the NotIn predicate on the "vehicle_id" field.
func VehicleIDNotIn(vs ...string) predicate.Booking {
	return predicate.Booking(sql.FieldNotIn(FieldVehicleID, vs...))
}

// VehicleIDGT applies the GT predicate on the "vehicle_id" field.
func VehicleIDGT(v string) predicate.Booking {
	return predicate.Booking(sql.FieldGT(FieldVehicleID, v))
}

// VehicleIDGTE applies the GTE predicate on the "vehicle_id" field.
func VehicleIDGTE(v string) predicate.Booking {
	return predicate.Booking(sql.FieldGTE(FieldVehicleID, v))
}

// VehicleIDLT applies the LT predicate on the "vehicle_id" field.
func VehicleIDLT(v string) predicate.Booking {
	return predicate.Booking(sql.FieldLT(FieldVehicleID, v))
}

// VehicleIDLTE applies the LTE predicate on the "vehicle_id" field.
func VehicleIDLTE(v string) predicate.Booking {
	return predicate.Booking(sql.FieldLTE(FieldVehicleID, v))
}

// VehicleIDContains applies the Contains predicate on the "vehicle_id" field.
func VehicleIDContains(v string) predicate.Booking {
	return predicate.Booking(sql.FieldContains(FieldVehicleID, v))
}

// VehicleIDHasPrefix applies the HasPrefix predicate on the "vehicle_id" field.
func VehicleIDHasPrefix(v string) predicate.Booking {
	return predicate.Booking(sql.FieldHasPrefix(FieldVehicleID, v))
}

// VehicleIDHasSuffix applies the HasSuffix predicate on the "vehicle_id" field.
func VehicleIDHasSuffix(v string) predicate.Booking {
	return predicate.Booking(sql.FieldHasSuffix(FieldVehicleID, v))
}

// VehicleIDEqualFold applies the EqualFold predicate on the "vehicle_id" field.
func VehicleIDEqualFold(v string) predicate.Booking {
	return predicate.Booking(sql.FieldEqualFold(FieldVehicleID, v))
}

// VehicleIDContainsFold applies the ContainsFold predicate on the "vehicle_id" field.
func VehicleIDContainsFold(v string) predicate.Booking {
	return predicate.Booking(sql.FieldContainsFold(FieldVehicleID, v))
}

// ServiceCenterEQ applies the EQ predicate on the "service_center" field.
func ServiceCenterEQ(v string) predicate.Booking {
	return predicate.Booking(sql.FieldEQ(FieldServiceCenter, v))
}

// ServiceCenterNEQ applies the NEQ predicate on the "service_center" field.
func ServiceCenterNEQ(v string) predicate.Booking {
	return predicate.Booking(sql.FieldNEQ(FieldServiceCenter, v))
}

// ServiceCenterIn applies the In predicate on the "service_center" field.
func ServiceCenterIn(vs ...string) predicate.Booking {
	return predicate.Booking(sql.FieldIn(FieldServiceCenter, vs...))
}

// ServiceCenterNotIn applies the NotIn predicate on the "service_center" field.
func ServiceCenterNotIn(vs ...string) predicate.Booking {
	return predicate.Booking(sql.FieldNotIn(FieldServiceCenter, vs...))
}

// ServiceCenterGT applies the GT predicate on the "service_center" field.
func ServiceCenterGT(v string) predicate.Booking {
	return predicate.Booking(sql.FieldGT(FieldServiceCenter, v))
}

// ServiceCenterGTE applies the GTE predicate on the "service_center" field.
func ServiceCenterGTE(v string) predicate.Booking {
	return predicate.Booking(sql.FieldGTE(FieldServiceCenter, v))
}

// ServiceCenterLT applies the LT predicate on the "service_center" field.
func ServiceCenterLT(v string) predicate.Booking {
	return predicate.Booking(sql.FieldLT(FieldServiceCenter, v))
}

// ServiceCenterLTE applies the LTE predicate on the "service_center" field.
func ServiceCenterLTE(v string) predicate.Booking {
	return predicate.Booking(sql.FieldLTE(FieldServiceCenter, v))
}

// ServiceCenterContains applies the Contains predicate on the "service_center" field.
func ServiceCenterContains(v string) predicate.Booking {
	return predicate.Booking(sql.FieldContains(FieldServiceCenter, v))
}

// ServiceCenterHasPrefix applies the HasPrefix predicate on the "service_center" field.
func ServiceCenterHasPrefix(v string) predicate.Booking {
	return predicate.Booking(sql.FieldHasPrefix(FieldServiceCenter, v))
}

// ServiceCenterHasSuffix applies the HasSuffix predicate on the "service_center" field.
func ServiceCenterHasSuffix(v string) predicate.Booking {
	return predicate.Booking(sql.FieldHasSuffix(FieldServiceCenter, v))
}

// ServiceCenterEqualFold applies the EqualFold predicate on the "service_center" field.
func ServiceCenterEqualFold(v string) predicate.Booking {
	return predicate.Booking(sql.FieldEqualFold(FieldServiceCenter, v))
}

// ServiceCenterContainsFold applies the ContainsFold predicate on the "service_center" field.
func ServiceCenterContainsFold(v string) predicate.Booking {
	return predicate.Booking(sql.FieldContainsFold(FieldServiceCenter, v))
}

// ScheduledSlotEQ applies the EQ predicate on the "scheduled_slot" field.
func ScheduledSlotEQ(v time.Time) predicate.Booking {
	return predicate.Booking(sql.FieldEQ(FieldScheduledSlot, v))
}

// ScheduledSlotNEQ applies the NEQ predicate on the "scheduled_slot" field.
func ScheduledSlotNEQ(v time.Time) predicate.Booking {
	return predicate.Booking(sql.FieldNEQ(FieldScheduledSlot, v))
}

// ScheduledSlotIn applies the In predicate on the "scheduled_slot" field.
func ScheduledSlotIn(vs ...time.Time) predicate.Booking {
	return predicate.Booking(sql.FieldIn(FieldScheduledSlot, vs...))
}

// ScheduledSlotNotIn applies the NotIn predicate on the "scheduled_slot" field.
func ScheduledSlotNotIn(vs ...time.Time) predicate.Booking {
	return predicate.Booking(sql.FieldNotIn(FieldScheduledSlot, vs...))
}

// ScheduledSlotGT applies the GT predicate on the "scheduled_slot" field.
func ScheduledSlotGT(v time.Time) predicate.Booking {
	return predicate.Booking(sql.FieldGT(FieldScheduledSlot, v))
}

// ScheduledSlotGTE applies the GTE predicate on the "scheduled_slot" field.
func ScheduledSlotGTE(v time.Time) predicate.Booking {
	return predicate.Booking(sql.FieldGTE(FieldScheduledSlot, v))
}

// ScheduledSlotLT applies the LT predicate on the "scheduled_slot" field.
func ScheduledSlotLT(v time.Time) predicate.Booking {
	return predicate.Booking(sql.FieldLT(FieldScheduledSlot, v))
}

// ScheduledSlotLTE applies the LTE predicate on the "scheduled_slot" field.
func ScheduledSlotLTE(v time.Time) predicate.Booking {
	return predicate.Booking(sql.FieldLTE(FieldScheduledSlot, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Booking {
	return predicate.Booking(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Booking {
	return predicate.Booking(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Booking {
	return predicate.Booking(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Booking {
	return predicate.Booking(sql.FieldNotIn(FieldStatus, vs...))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Booking {
	return predicate.Booking(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Booking {
	return predicate.Booking(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Booking {
	return predicate.Booking(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Booking {
	return predicate.Booking(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Booking {
	return predicate.Booking(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Booking {
	return predicate.Booking(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Booking {
	return predicate.Booking(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Booking {
	return predicate.Booking(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Booking) predicate.Booking {
	return predicate.Booking(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Booking) predicate.Booking {
	return predicate.Booking(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Booking) predicate.Booking {
	return predicate.Booking(sql.NotPredicates(p))
}
