// Code generated by ent, DO NOT EDIT.

package schedulingcase

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/fleetsense/fleetsense/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.SchedulingCase {
	return predicate.SchedulingCase(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.SchedulingCase {
	return predicate.SchedulingCase(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.SchedulingCase {
	return predicate.SchedulingCase(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.SchedulingCase {
	return predicate.SchedulingCase(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.SchedulingCase {
	return predicate.SchedulingCase(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.SchedulingCase {
	return predicate.SchedulingCase(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.SchedulingCase {
	return predicate.SchedulingCase(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.SchedulingCase {
	return predicate.SchedulingCase(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.SchedulingCase {
	return predicate.SchedulingCase(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.SchedulingCase {
	return predicate.SchedulingCase(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.SchedulingCase {
	return predicate.SchedulingCase(sql.FieldContainsFold(FieldID, id))
}

// RcaID applies equality check predicate on the "rca_id" field. It's identical to RcaIDEQ.
func RcaID(v string) predicate.SchedulingCase {
	return predicate.SchedulingCase(sql.FieldEQ(FieldRcaID, v))
}

// DiagnosisID applies equality check predicate on the "diagnosis_id" field. It's identical to DiagnosisIDEQ.
func DiagnosisID(v string) predicate.SchedulingCase {
	return predicate.SchedulingCase(sql.FieldEQ(FieldDiagnosisID, v))
}

// CaseID applies equality check predicate on the "case_id" field. It's identical to CaseIDEQ.
func CaseID(v string) predicate.SchedulingCase {
	return predicate.SchedulingCase(sql.FieldEQ(FieldCaseID, v))
}

// VehicleID applies equality check predicate on the "vehicle_id" field. It's identical to VehicleIDEQ.
func VehicleID(v string) predicate.SchedulingCase {
	return predicate.SchedulingCase(sql.FieldEQ(FieldVehicleID, v))
}

// BestSlot applies equality check predicate on the "best_slot" field. It's identical to BestSlotEQ.
func BestSlot(v time.Time) predicate.SchedulingCase {
	return predicate.SchedulingCase(sql.FieldEQ(FieldBestSlot, v))
}

// ServiceCenter applies equality check predicate on the "service_center" field. It's identical to ServiceCenterEQ.
func ServiceCenter(v string) predicate.SchedulingCase {
	return predicate.SchedulingCase(sql.FieldEQ(FieldServiceCenter, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.SchedulingCase {
	return predicate.SchedulingCase(sql.FieldEQ(FieldCreatedAt, v))
}

// RcaIDEQ applies the EQ predicate on the "rca_id" field.
func RcaIDEQ(v string) predicate.SchedulingCase {
	return predicate.SchedulingCase(sql.FieldEQ(FieldRcaID, v))
}

// RcaIDNEQ applies the NEQ predicate on the "rca_id" field.
func RcaIDNEQ(v string) predicate.SchedulingCase {
	return predicate.SchedulingCase(sql.FieldNEQ(FieldRcaID, v))
}

// RcaIDIn applies the In predicate on the "rca_id" field.
func RcaIDIn(vs ...string) predicate.SchedulingCase {
	return predicate.SchedulingCase(sql.FieldIn(FieldRcaID, vs...))
}

// RcaIDNotIn applies the NotIn predicate on the "rca_id" field.
func RcaIDNotIn(vs ...string) predicate.SchedulingCase {
	return predicate.SchedulingCase(sql.FieldNotIn(FieldRcaID, vs...))
}

// RcaIDGT applies the GT predicate on the "rca_id" field.
func RcaIDGT(v string) predicate.SchedulingCase {
	return predicate.SchedulingCase(sql.FieldGT(FieldRcaID, v))
}

// RcaIDGTE applies the GTE predicate on the "rca_id" field.
func RcaIDGTE(v string) predicate.SchedulingCase {
	return predicate.SchedulingCase(sql.FieldGTE(FieldRcaID, v))
}

// RcaIDLT applies the LT predicate on the "rca_id" field.
func RcaIDLT(v string) predicate.SchedulingCase {
	return predicate.SchedulingCase(sql.FieldLT(FieldRcaID, v))
}

// RcaIDLTE applies the LTE predicate on the "rca_id" field.
func RcaIDLTE(v string) predicate.SchedulingCase {
	return predicate.SchedulingCase(sql.FieldLTE(FieldRcaID, v))
}

// RcaIDContains applies the Contains predicate on the "rca_id" field.
func RcaIDContains(v string) predicate.SchedulingCase {
	return predicate.SchedulingCase(sql.FieldContains(FieldRcaID, v))
}

// RcaIDHasPrefix applies the HasPrefix predicate on the "rca_id" field.
func RcaIDHasPrefix(v string) predicate.SchedulingCase {
	return predicate.SchedulingCase(sql.FieldHasPrefix(FieldRcaID, v))
}

// RcaIDHasSuffix applies the HasSuffix predicate on the "rca_id" field.
func RcaIDHasSuffix(v string) predicate.SchedulingCase {
	return predicate.SchedulingCase(sql.FieldHasSuffix(FieldRcaID, v))
}

// RcaIDEqualFold applies the EqualFold predicate on the "rca_id" field.
func RcaIDEqualFold(v string) predicate.SchedulingCase {
	return predicate.SchedulingCase(sql.FieldEqualFold(FieldRcaID, v))
}

// RcaIDContainsFold applies the ContainsFold predicate on the "rca_id" field.
func RcaIDContainsFold(v string) predicate.SchedulingCase {
	return predicate.SchedulingCase(sql.FieldContainsFold(FieldRcaID, v))
}

// DiagnosisIDEQ applies the EQ predicate on the "diagnosis_id" field.
func DiagnosisIDEQ(v string) predicate.SchedulingCase {
	return predicate.SchedulingCase(sql.FieldEQ(FieldDiagnosisID, v))
}

// DiagnosisIDNEQ applies the NEQ predicate on the "diagnosis_id" field.
func DiagnosisIDNEQ(v string) predicate.SchedulingCase {
	return predicate.SchedulingCase(sql.FieldNEQ(FieldDiagnosisID, v))
}

// DiagnosisIDIn applies the In predicate on the "diagnosis_id" field.
func DiagnosisIDIn(vs ...string) predicate.SchedulingCase {
	return predicate.SchedulingCase(sql.FieldIn(FieldDiagnosisID, vs...))
}

// DiagnosisIDNotIn applies the NotIn predicate on the "diagnosis_id" field.
func DiagnosisIDNotIn(vs ...string) predicate.SchedulingCase {
	return predicate.SchedulingCase(sql.FieldNotIn(FieldDiagnosisID, vs...))
}

// DiagnosisIDGT applies the GT predicate on the "diagnosis_id" field.
func DiagnosisIDGT(v string) predicate.SchedulingCase {
	return predicate.SchedulingCase(sql.FieldGT(FieldDiagnosisID, v))
}

// DiagnosisIDGTE applies the GTE predicate on the "diagnosis_id" field.
func DiagnosisIDGTE(v string) predicate.SchedulingCase {
	return predicate.SchedulingCase(sql.FieldGTE(FieldDiagnosisID, v))
}

// DiagnosisIDLT applies the LT predicate on the "diagnosis_id" field.
func DiagnosisIDLT(v string) predicate.SchedulingCase {
	return predicate.SchedulingCase(sql.FieldLT(FieldDiagnosisID, v))
}

// DiagnosisIDLTE applies the LTE predicate on the "diagnosis_id" field.
func DiagnosisIDLTE(v string) predicate.SchedulingCase {
	return predicate.SchedulingCase(sql.FieldLTE(FieldDiagnosisID, v))
}

// DiagnosisIDContains applies the Contains predicate on the "diagnosis_id" field.
func DiagnosisIDContains(v string) predicate.SchedulingCase {
	return predicate.SchedulingCase(sql.FieldContains(FieldDiagnosisID, v))
}

// DiagnosisIDHasPrefix applies the HasPrefix predicate on the "diagnosis_id" field.
func DiagnosisIDHasPrefix(v string) predicate.SchedulingCase {
	return predicate.SchedulingCase(sql.FieldHasPrefix(FieldDiagnosisID, v))
}

// DiagnosisIDHasSuffix applies the HasSuffix predicate on the "diagnosis_id" field.
func DiagnosisIDHasSuffix(v string) predicate.SchedulingCase {
	return predicate.SchedulingCase(sql.FieldHasSuffix(FieldDiagnosisID, v))
}

// DiagnosisIDEqualFold applies the EqualFold predicate on the "diagnosis_id" field.
func DiagnosisIDEqualFold(v string) predicate.SchedulingCase {
	return predicate.SchedulingCase(sql.FieldEqualFold(FieldDiagnosisID, v))
}

// DiagnosisIDContainsFold applies the ContainsFold predicate on the "diagnosis_id" field.
func DiagnosisIDContainsFold(v string) predicate.SchedulingCase {
	return predicate.SchedulingCase(sql.FieldContainsFold(FieldDiagnosisID, v))
}

// CaseIDEQ applies the EQ predicate on the "case_id" field.
func CaseIDEQ(v string) predicate.SchedulingCase {
	return predicate.SchedulingCase(sql.FieldEQ(FieldCaseID, v))
}

// CaseIDNEQ applies the NEQ predicate on the "case_id" field.
func CaseIDNEQ(v string) predicate.SchedulingCase {
	return predicate.SchedulingCase(sql.FieldNEQ(FieldCaseID, v))
}

// CaseIDIn applies the In predicate on the "case_id" field.
func CaseIDIn(vs ...string) predicate.SchedulingCase {
	return predicate.SchedulingCase(sql.FieldIn(FieldCaseID, vs...))
}

// CaseIDNotIn applies the NotIn predicate on the "case_id" field.
func CaseIDNotIn(vs ...string) predicate.SchedulingCase {
	return predicate.SchedulingCase(sql.FieldNotIn(FieldCaseID, vs...))
}

// CaseIDGT applies the GT predicate on the "case_id" field.
func CaseIDGT(v string) predicate.SchedulingCase {
	return predicate.SchedulingCase(sql.FieldGT(FieldCaseID, v))
}

// CaseIDGTE applies the GTE predicate on the "case_id" field.
func CaseIDGTE(v string) predicate.SchedulingCase {
	return predicate.SchedulingCase(sql.FieldGTE(FieldCaseID, v))
}

// CaseIDLT applies the LT predicate on the "case_id" field.
func CaseIDLT(v string) predicate.SchedulingCase {
	return predicate.SchedulingCase(sql.FieldLT(FieldCaseID, v))
}

// CaseIDLTE applies the LTE predicate on the "case_id" field.
func CaseIDLTE(v string) predicate.SchedulingCase {
	return predicate.SchedulingCase(sql.FieldLTE(FieldCaseID, v))
}

// CaseIDContains applies the Contains predicate on the "case_id" field.
func CaseIDContains(v string) predicate.SchedulingCase {
	return predicate.SchedulingCase(sql.FieldContains(FieldCaseID, v))
}

// CaseIDHasPrefix applies the HasPrefix predicate on the "case_id" field.
func CaseIDHasPrefix(v string) predicate.SchedulingCase {
	return predicate.SchedulingCase(sql.FieldHasPrefix(FieldCaseID, v))
}

// CaseIDHasSuffix applies the HasSuffix predicate on the "case_id" field.
func CaseIDHasSuffix(v string) predicate.SchedulingCase {
	return predicate.SchedulingCase(sql.FieldHasSuffix(FieldCaseID, v))
}

// CaseIDEqualFold applies the EqualFold predicate on the "case_id" field.
func CaseIDEqualFold(v string) predicate.SchedulingCase {
	return predicate.SchedulingCase(sql.FieldEqualFold(FieldCaseID, v))
}

// CaseIDContainsFold applies the ContainsFold predicate on the "case_id" field.
func CaseIDContainsFold(v string) predicate.SchedulingCase {
	return predicate.SchedulingCase(sql.FieldContainsFold(FieldCaseID, v))
}

// VehicleIDEQ applies the EQ predicate on the "vehicle_id" field.
func VehicleIDEQ(v string) predicate.SchedulingCase {
	return predicate.SchedulingCase(sql.FieldEQ(FieldVehicleID, v))
}

// VehicleIDNEQ applies the NEQ predicate on the "vehicle_id" field.
func VehicleIDNEQ(v string) predicate.SchedulingCase {
	return predicate.SchedulingCase(sql.FieldNEQ(FieldVehicleID, v))
}

// VehicleIDIn applies the In predicate on the "vehicle_id" field.
func VehicleIDIn(vs ...string) predicate.SchedulingCase {
	return predicate.SchedulingCase(sql.FieldIn(FieldVehicleID, vs...))
}

// VehicleIDNotIn applies the NotIn predicate on the "vehicle_id" field.
func VehicleIDNotIn(vs ...string) predicate.SchedulingCase {
	return predicate.SchedulingCase(sql.FieldNotIn(FieldVehicleID, vs...))
}

// VehicleIDGT applies the GT predicate on the "vehicle_id" field.
func VehicleIDGT(v string) predicate.SchedulingCase {
	return predicate.SchedulingCase(sql.FieldGT(FieldVehicleID, v))
}

// VehicleIDGTE applies the GTE predicate on the "vehicle_id" field.
func VehicleIDGTE(v string) predicate.SchedulingCase {
	return predicate.SchedulingCase(sql.FieldGTE(FieldVehicleID, v))
}

// VehicleIDLT applies the LT predicate on the "vehicle_id" field.
func VehicleIDLT(v string) predicate.SchedulingCase {
	return predicate.SchedulingCase(sql.FieldLT(FieldVehicleID, v))
}

// VehicleIDLTE applies the LTE predicate on the "vehicle_id" field.
func VehicleIDLTE(v string) predicate.SchedulingCase {
	return predicate.SchedulingCase(sql.FieldLTE(FieldVehicleID, v))
}

// VehicleIDContains applies the Contains predicate on the "vehicle_id" field.
func VehicleIDContains(v string) predicate.SchedulingCase {
	return predicate.SchedulingCase(sql.FieldContains(FieldVehicleID, v))
}

// VehicleIDHasPrefix applies the HasPrefix predicate on the "vehicle_id" field.
func VehicleIDHasPrefix(v string) predicate.SchedulingCase {
	return predicate.SchedulingCase(sql.FieldHasPrefix(FieldVehicleID, v))
}

// VehicleIDHasSuffix applies the HasSuffix predicate on the "vehicle_id" field.
func VehicleIDHasSuffix(v string) predicate.SchedulingCase {
	return predicate.SchedulingCase(sql.FieldHasSuffix(FieldVehicleID, v))
}

// VehicleIDEqualFold applies the EqualFold predicate on the "vehicle_id" field.
func VehicleIDEqualFold(v string) predicate.SchedulingCase {
	return predicate.SchedulingCase(sql.FieldEqualFold(FieldVehicleID, v))
}

// VehicleIDContainsFold applies the ContainsFold predicate on the "vehicle_id" field.
func VehicleIDContainsFold(v string) predicate.SchedulingCase {
	return predicate.SchedulingCase(sql.FieldContainsFold(FieldVehicleID, v))
}

// BestSlotEQ applies the EQ predicate on the "best_slot" field.
func BestSlotEQ(v time.Time) predicate.SchedulingCase {
	return predicate.SchedulingCase(sql.FieldEQ(FieldBestSlot, v))
}

// BestSlotNEQ applies the NEQ predicate on the "best_slot" field.
func BestSlotNEQ(v time.Time) predicate.SchedulingCase {
	return predicate.SchedulingCase(sql.FieldNEQ(FieldBestSlot, v))
}

// BestSlotIn applies the In predicate on the "best_slot" field.
func BestSlotIn(vs ...time.Time) predicate.SchedulingCase {
	return predicate.SchedulingCase(sql.FieldIn(FieldBestSlot, vs...))
}

// BestSlotNotIn applies the NotIn predicate on the "best_slot" field.
func BestSlotNotIn(vs ...time.Time) predicate.SchedulingCase {
	return predicate.SchedulingCase(sql.FieldNotIn(FieldBestSlot, vs...))
}

// BestSlotGT applies the GT predicate on the "best_slot" field.
func BestSlotGT(v time.Time) predicate.SchedulingCase {
	return predicate.SchedulingCase(sql.FieldGT(FieldBestSlot, v))
}

// BestSlotGTE applies the GTE predicate on the "best_slot" field.
func BestSlotGTE(v time.Time) predicate.SchedulingCase {
	return predicate.SchedulingCase(sql.FieldGTE(FieldBestSlot, v))
}

// BestSlotLT applies the LT predicate on the "best_slot" field.
func BestSlotLT(v time.Time) predicate.SchedulingCase {
	return predicate.SchedulingCase(sql.FieldLT(FieldBestSlot, v))
}

// BestSlotLTE applies the LTE predicate on the "best_slot" field.
func BestSlotLTE(v time.Time) predicate.SchedulingCase {
	return predicate.SchedulingCase(sql.FieldLTE(FieldBestSlot, v))
}

// ServiceCenterEQ applies the EQ predicate on the "service_center" field.
func ServiceCenterEQ(v string) predicate.SchedulingCase {
	return predicate.SchedulingCase(sql.FieldEQ(FieldServiceCenter, v))
}

// ServiceCenterNEQ applies the NEQ predicate on the "service_center" field.
func ServiceCenterNEQ(v string) predicate.SchedulingCase {
	return predicate.SchedulingCase(sql.FieldNEQ(FieldServiceCenter, v))
}

// ServiceCenterIn applies the In predicate on the "service_center" field.
func ServiceCenterIn(vs ...string) predicate.SchedulingCase {
	return predicate.SchedulingCase(sql.FieldIn(FieldServiceCenter, vs...))
}

// ServiceCenterNotIn applies the NotIn predicate on the "service_center" field.
func ServiceCenterNotIn(vs ...string) predicate.SchedulingCase {
	return predicate.SchedulingCase(sql.FieldNotIn(FieldServiceCenter, vs...))
}

// ServiceCenterGT applies the GT predicate on the "service_center" field.
func ServiceCenterGT(v string) predicate.SchedulingCase {
	return predicate.SchedulingCase(sql.FieldGT(FieldServiceCenter, v))
}

// ServiceCenterGTE applies the GTE predicate on the "service_center" field.
func ServiceCenterGTE(v string) predicate.SchedulingCase {
	return predicate.SchedulingCase(sql.FieldGTE(FieldServiceCenter, v))
}

// ServiceCenterLT applies the LT predicate on the "service_center" field.
func ServiceCenterLT(v string) predicate.SchedulingCase {
	return predicate.SchedulingCase(sql.FieldLT(FieldServiceCenter, v))
}

// ServiceCenterLTE applies the LTE predicate on the "service_center" field.
func ServiceCenterLTE(v string) predicate.SchedulingCase {
	return predicate.SchedulingCase(sql.FieldLTE(FieldServiceCenter, v))
}

// ServiceCenterContains applies the Contains predicate on the "service_center" field.
func ServiceCenterContains(v string) predicate.SchedulingCase {
	return predicate.SchedulingCase(sql.FieldContains(FieldServiceCenter, v))
}

// ServiceCenterHasPrefix applies the HasPrefix predicate on the "service_center" field.
func ServiceCenterHasPrefix(v string) predicate.SchedulingCase {
	return predicate.SchedulingCase(sql.FieldHasPrefix(FieldServiceCenter, v))
}

// ServiceCenterHasSuffix applies the HasSuffix predicate on the "service_center" field.
func ServiceCenterHasSuffix(v string) predicate.SchedulingCase {
	return predicate.SchedulingCase(sql.FieldHasSuffix(FieldServiceCenter, v))
}

// ServiceCenterEqualFold applies the EqualFold predicate on the "service_center" field.
func ServiceCenterEqualFold(v string) predicate.SchedulingCase {
	return predicate.SchedulingCase(sql.FieldEqualFold(FieldServiceCenter, v))
}

// ServiceCenterContainsFold applies the ContainsFold predicate on the "service_center" field.
func ServiceCenterContainsFold(v string) predicate.SchedulingCase {
	return predicate.SchedulingCase(sql.FieldContainsFold(FieldServiceCenter, v))
}

// SlotTypeEQ applies the EQ predicate on the "slot_type" field.
func SlotTypeEQ(v SlotType) predicate.SchedulingCase {
	return predicate.SchedulingCase(sql.FieldEQ(FieldSlotType, v))
}

// SlotTypeNEQ applies the NEQ predicate on the "slot_type" field.
func SlotTypeNEQ(v SlotType) predicate.SchedulingCase {
	return predicate.SchedulingCase(sql.FieldNEQ(FieldSlotType, v))
}

// SlotTypeIn applies the In predicate on the "slot_type" field.
func SlotTypeIn(vs ...SlotType) predicate.SchedulingCase {
	return predicate.SchedulingCase(sql.FieldIn(FieldSlotType, vs...))
}

// SlotTypeNotIn applies the NotIn predicate on the "slot_type" field.
func SlotTypeNotIn(vs ...SlotType) predicate.SchedulingCase {
	return predicate.SchedulingCase(sql.FieldNotIn(FieldSlotType, vs...))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.SchedulingCase {
	return predicate.SchedulingCase(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.SchedulingCase {
	return predicate.SchedulingCase(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.SchedulingCase {
	return predicate.SchedulingCase(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.SchedulingCase {
	return predicate.SchedulingCase(sql.FieldNotIn(FieldStatus, vs...))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.SchedulingCase {
	return predicate.SchedulingCase(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.SchedulingCase {
	return predicate.SchedulingCase(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.SchedulingCase {
	return predicate.SchedulingCase(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.SchedulingCase {
	return predicate.SchedulingCase(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.SchedulingCase {
	return predicate.SchedulingCase(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.SchedulingCase {
	return predicate.SchedulingCase(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.SchedulingCase {
	return predicate.SchedulingCase(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.SchedulingCase {
	return predicate.SchedulingCase(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.SchedulingCase) predicate.SchedulingCase {
	return predicate.SchedulingCase(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.SchedulingCase) predicate.SchedulingCase {
	return predicate.SchedulingCase(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.SchedulingCase) predicate.SchedulingCase {
	return predicate.SchedulingCase(sql.NotPredicates(p))
}
