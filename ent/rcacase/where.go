// Code generated by ent, DO NOT EDIT.

package rcacase

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/fleetsense/fleetsense/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.RcaCase {
	return predicate.RcaCase(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.RcaCase {
	return predicate.RcaCase(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.RcaCase {
	return predicate.RcaCase(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.RcaCase {
	return predicate.RcaCase(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.RcaCase {
	return predicate.RcaCase(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.RcaCase {
	return predicate.RcaCase(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.RcaCase {
	return predicate.RcaCase(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.RcaCase {
	return predicate.RcaCase(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.RcaCase {
	return predicate.RcaCase(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.RcaCase {
	return predicate.RcaCase(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.RcaCase {
	return predicate.RcaCase(sql.FieldContainsFold(FieldID, id))
}

// DiagnosisID applies equality check predicate on the "diagnosis_id" field. It's identical to DiagnosisIDEQ.
func DiagnosisID(v string) predicate.RcaCase {
	return predicate.RcaCase(sql.FieldEQ(FieldDiagnosisID, v))
}

// CaseID applies equality check predicate on the "case_id" field. It's identical to CaseIDEQ.
func CaseID(v string) predicate.RcaCase {
	return predicate.RcaCase(sql.FieldEQ(FieldCaseID, v))
}

// VehicleID applies equality check predicate on the "vehicle_id" field. It's identical to VehicleIDEQ.
func VehicleID(v string) predicate.RcaCase {
	return predicate.RcaCase(sql.FieldEQ(FieldVehicleID, v))
}

// RootCause applies equality check predicate on the "root_cause" field. It's identical to RootCauseEQ.
func RootCause(v string) predicate.RcaCase {
	return predicate.RcaCase(sql.FieldEQ(FieldRootCause, v))
}

// Confidence applies equality check predicate on the "confidence" field. It's identical to ConfidenceEQ.
func Confidence(v float64) predicate.RcaCase {
	return predicate.RcaCase(sql.FieldEQ(FieldConfidence, v))
}

// RecommendedAction applies equality check predicate on the "recommended_action" field. It's identical to RecommendedActionEQ.
func RecommendedAction(v string) predicate.RcaCase {
	return predicate.RcaCase(sql.FieldEQ(FieldRecommendedAction, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.RcaCase {
	return predicate.RcaCase(sql.FieldEQ(FieldCreatedAt, v))
}

// DiagnosisIDEQ applies the EQ predicate on the "diagnosis_id" field.
func DiagnosisIDEQ(v string) predicate.RcaCase {
	return predicate.RcaCase(sql.FieldEQ(FieldDiagnosisID, v))
}

// DiagnosisIDNEQ applies the NEQ predicate on the "diagnosis_id" field.
func DiagnosisIDNEQ(v string) predicate.RcaCase {
	return predicate.RcaCase(sql.FieldNEQ(FieldDiagnosisID, v))
}

// DiagnosisIDIn applies the In predicate on the "diagnosis_id" field.
func DiagnosisIDIn(vs ...string) predicate.RcaCase {
	return predicate.RcaCase(sql.FieldIn(FieldDiagnosisID, vs...))
}

// DiagnosisIDNotIn applies the NotIn predicate on the "diagnosis_id" field.
func DiagnosisIDNotIn(vs ...string) predicate.RcaCase {
	return predicate.RcaCase(sql.FieldNotIn(FieldDiagnosisID, vs...))
}

// DiagnosisIDGT applies the GT predicate on the "diagnosis_id" field.
func DiagnosisIDGT(v string) predicate.RcaCase {
	return predicate.RcaCase(sql.FieldGT(FieldDiagnosisID, v))
}

// DiagnosisIDGTE applies the GTE predicate on the "diagnosis_id" field.
func DiagnosisIDGTE(v string) predicate.RcaCase {
	return predicate.RcaCase(sql.FieldGTE(FieldDiagnosisID, v))
}

// DiagnosisIDLT applies the LT predicate on the "diagnosis_id" field.
func DiagnosisIDLT(v string) predicate.RcaCase {
	return predicate.RcaCase(sql.FieldLT(FieldDiagnosisID, v))
}

// DiagnosisIDLTE applies the LTE predicate on the "diagnosis_id" field.
func DiagnosisIDLTE(v string) predicate.RcaCase {
	return predicate.RcaCase(sql.FieldLTE(FieldDiagnosisID, v))
}

// DiagnosisIDContains applies the Contains predicate on the "diagnosis_id" field.
func DiagnosisIDContains(v string) predicate.RcaCase {
	return predicate.RcaCase(sql.FieldContains(FieldDiagnosisID, v))
}

// DiagnosisIDHasPrefix applies the HasPrefix predicate on the "diagnosis_id" field.
func DiagnosisIDHasPrefix(v string) predicate.RcaCase {
	return predicate.RcaCase(sql.FieldHasPrefix(FieldDiagnosisID, v))
}

// DiagnosisIDHasSuffix applies the HasSuffix predicate on the "diagnosis_id" field.
func DiagnosisIDHasSuffix(v string) predicate.RcaCase {
	return predicate.RcaCase(sql.FieldHasSuffix(FieldDiagnosisID, v))
}

// DiagnosisIDEqualFold applies the EqualFold predicate on the "diagnosis_id" field.
func DiagnosisIDEqualFold(v string) predicate.RcaCase {
	return predicate.RcaCase(sql.FieldEqualFold(FieldDiagnosisID, v))
}

// DiagnosisIDContainsFold applies the ContainsFold predicate on the "diagnosis_id" field.
func DiagnosisIDContainsFold(v string) predicate.RcaCase {
	return predicate.RcaCase(sql.FieldContainsFold(FieldDiagnosisID, v))
}

// CaseIDEQ applies the EQ predicate on the "case_id" field.
func CaseIDEQ(v string) predicate.RcaCase {
	return predicate.RcaCase(sql.FieldEQ(FieldCaseID, v))
}

// CaseIDNEQ applies the NEQ predicate on the "case_id" field.
func CaseIDNEQ(v string) predicate.RcaCase {
	return predicate.RcaCase(sql.FieldNEQ(FieldCaseID, v))
}

// CaseIDIn applies the In predicate on the "case_id" field.
func CaseIDIn(vs ...string) predicate.RcaCase {
	return predicate.RcaCase(sql.FieldIn(FieldCaseID, vs...))
}

// CaseIDNotIn applies the NotIn predicate on the "case_id" field.
func CaseIDNotIn(vs ...string) predicate.RcaCase {
	return predicate.RcaCase(sql.FieldNotIn(FieldCaseID, vs...))
}

// CaseIDGT applies the GT predicate on the "case_id" field.
func CaseIDGT(v string) predicate.RcaCase {
	return predicate.RcaCase(sql.FieldGT(FieldCaseID, v))
}

// CaseIDGTE applies the GTE predicate on the "case_id" field.
func CaseIDGTE(v string) predicate.RcaCase {
	return predicate.RcaCase(sql.FieldGTE(FieldCaseID, v))
}

// CaseIDLT applies the LT predicate on the "case_id" field.
func CaseIDLT(v string) predicate.RcaCase {
	return predicate.RcaCase(sql.FieldLT(FieldCaseID, v))
}

// CaseIDLTE applies the LTE predicate on the "case_id" field.
func CaseIDLTE(v string) predicate.RcaCase {
	return predicate.RcaCase(sql.FieldLTE(FieldCaseID, v))
}

// CaseIDContains applies the Contains predicate on the "case_id" field.
func CaseIDContains(v string) predicate.RcaCase {
	return predicate.RcaCase(sql.FieldContains(FieldCaseID, v))
}

// CaseIDHasPrefix applies the HasPrefix predicate on the "case_id" field.
func CaseIDHasPrefix(v string) predicate.RcaCase {
	return predicate.RcaCase(sql.FieldHasPrefix(FieldCaseID, v))
}

// CaseIDHasSuffix applies the HasSuffix predicate on the "case_id" field.
func CaseIDHasSuffix(v string) predicate.RcaCase {
	return predicate.RcaCase(sql.FieldHasSuffix(FieldCaseID, v))
}

// CaseIDEqualFold applies the EqualFold predicate on the "case_id" field.
func CaseIDEqualFold(v string) predicate.RcaCase {
	return predicate.RcaCase(sql.FieldEqualFold(FieldCaseID, v))
}

// CaseIDContainsFold applies the ContainsFold predicate on the "case_id" field.
func CaseIDContainsFold(v string) predicate.RcaCase {
	return predicate.RcaCase(sql.FieldContainsFold(FieldCaseID, v))
}

// VehicleIDEQ applies the EQ predicate on the "vehicle_id" field.
func VehicleIDEQ(v string) predicate.RcaCase {
	return predicate.RcaCase(sql.FieldEQ(FieldVehicleID, v))
}

// VehicleIDNEQ applies the NEQ predicate on the "vehicle_id" field.
func VehicleIDNEQ(v string) predicate.RcaCase {
	return predicate.RcaCase(sql.FieldNEQ(FieldVehicleID, v))
}

// VehicleIDIn applies the In predicate on the "vehicle_id" field.
func VehicleIDIn(vs ...string) predicate.RcaCase {
	return predicate.RcaCase(sql.FieldIn(FieldVehicleID, vs...))
}

// VehicleIDNotIn applies the NotIn predicate on the "vehicle_id" field.
func VehicleIDNotIn(vs ...string) predicate.RcaCase {
	return predicate.RcaCase(sql.FieldNotIn(FieldVehicleID, vs...))
}

// VehicleIDGT applies the GT predicate on the "vehicle_id" field.
func VehicleIDGT(v string) predicate.RcaCase {
	return predicate.RcaCase(sql.FieldGT(FieldVehicleID, v))
}

// VehicleIDGTE applies the GTE predicate on the "vehicle_id" field.
func VehicleIDGTE(v string) predicate.RcaCase {
	return predicate.RcaCase(sql.FieldGTE(FieldVehicleID, v))
}

// VehicleIDLT applies the LT predicate on the "vehicle_id" field.
func VehicleIDLT(v string) predicate.RcaCase {
	return predicate.RcaCase(sql.FieldLT(FieldVehicleID, v))
}

// VehicleIDLTE applies the LTE predicate on the "vehicle_id" field.
func VehicleIDLTE(v string) predicate.RcaCase {
	return predicate.RcaCase(sql.FieldLTE(FieldVehicleID, v))
}

// VehicleIDContains applies the Contains predicate on the "vehicle_id" field.
func VehicleIDContains(v string) predicate.RcaCase {
	return predicate.RcaCase(sql.FieldContains(FieldVehicleID, v))
}

// VehicleIDHasPrefix applies the HasPrefix predicate on the "vehicle_id" field.
func VehicleIDHasPrefix(v string) predicate.RcaCase {
	return predicate.RcaCase(sql.FieldHasPrefix(FieldVehicleID, v))
}

// VehicleIDHasSuffix applies the HasSuffix predicate on the "vehicle_id" field.
func VehicleIDHasSuffix(v string) predicate.RcaCase {
	return predicate.RcaCase(sql.FieldHasSuffix(FieldVehicleID, v))
}

// VehicleIDEqualFold applies the EqualFold predicate on the "vehicle_id" field.
func VehicleIDEqualFold(v string) predicate.RcaCase {
	return predicate.RcaCase(sql.FieldEqualFold(FieldVehicleID, v))
}

// VehicleIDContainsFold applies the ContainsFold predicate on the "vehicle_id" field.
func VehicleIDContainsFold(v string) predicate.RcaCase {
	return predicate.RcaCase(sql.FieldContainsFold(FieldVehicleID, v))
}

// RootCauseEQ applies the EQ predicate on the "root_cause" field.
func RootCauseEQ(v string) predicate.RcaCase {
	return predicate.RcaCase(sql.FieldEQ(FieldRootCause, v))
}

// RootCauseNEQ applies the NEQ predicate on the "root_cause" field.
func RootCauseNEQ(v string) predicate.RcaCase {
	return predicate.RcaCase(sql.FieldNEQ(FieldRootCause, v))
}

// RootCauseIn applies the In predicate on the "root_cause" field.
func RootCauseIn(vs ...string) predicate.RcaCase {
	return predicate.RcaCase(sql.FieldIn(FieldRootCause, vs...))
}

// RootCauseNotIn applies the NotIn predicate on the "root_cause" field.
func RootCauseNotIn(vs ...string) predicate.RcaCase {
	return predicate.RcaCase(sql.FieldNotIn(FieldRootCause, vs...))
}

// RootCauseGT applies the GT predicate on the "root_cause" field.
func RootCauseGT(v string) predicate.RcaCase {
	return predicate.RcaCase(sql.FieldGT(FieldRootCause, v))
}

// RootCauseGTE applies the GTE predicate on the "root_cause" field.
func RootCauseGTE(v string) predicate.RcaCase {
	return predicate.RcaCase(sql.FieldGTE(FieldRootCause, v))
}

// RootCauseLT applies the LT predicate on the "root_cause" field.
func RootCauseLT(v string) predicate.RcaCase {
	return predicate.RcaCase(sql.FieldLT(FieldRootCause, v))
}

// RootCauseLTE applies the LTE predicate on the "root_cause" field.
func RootCauseLTE(v string) predicate.RcaCase {
	return predicate.RcaCase(sql.FieldLTE(FieldRootCause, v))
}

// RootCauseContains applies the Contains predicate on the "root_cause" field.
func RootCauseContains(v string) predicate.RcaCase {
	return predicate.RcaCase(sql.FieldContains(FieldRootCause, v))
}

// RootCauseHasPrefix applies the HasPrefix predicate on the "root_cause" field.
func RootCauseHasPrefix(v string) predicate.RcaCase {
	return predicate.RcaCase(sql.FieldHasPrefix(FieldRootCause, v))
}

// RootCauseHasSuffix applies the HasSuffix predicate on the "root_cause" field.
func RootCauseHasSuffix(v string) predicate.RcaCase {
	return predicate.RcaCase(sql.FieldHasSuffix(FieldRootCause, v))
}

// RootCauseEqualFold applies the EqualFold predicate on the "root_cause" field.
func RootCauseEqualFold(v string) predicate.RcaCase {
	return predicate.RcaCase(sql.FieldEqualFold(FieldRootCause, v))
}

// RootCauseContainsFold applies the ContainsFold predicate on the "root_cause" field.
func RootCauseContainsFold(v string) predicate.RcaCase {
	return predicate.RcaCase(sql.FieldContainsFold(FieldRootCause, v))
}

// ConfidenceEQ applies the EQ predicate on the "confidence" field.
func ConfidenceEQ(v float64) predicate.RcaCase {
	return predicate.RcaCase(sql.FieldEQ(FieldConfidence, v))
}

// ConfidenceNEQ applies the NEQ predicate on the "confidence" field.
func ConfidenceNEQ(v float64) predicate.RcaCase {
	return predicate.RcaCase(sql.FieldNEQ(FieldConfidence, v))
}

// ConfidenceIn applies the In predicate on the "confidence" field.
func ConfidenceIn(vs ...float64) predicate.RcaCase {
	return predicate.RcaCase(sql.FieldIn(FieldConfidence, vs...))
}

// ConfidenceNotIn applies the NotIn predicate on the "confidence" field.
func ConfidenceNotIn(vs ...float64) predicate.RcaCase {
	return predicate.RcaCase(sql.FieldNotIn(FieldConfidence, vs...))
}

// ConfidenceGT applies the GT predicate on the "confidence" field.
func ConfidenceGT(v float64) predicate.RcaCase {
	return predicate.RcaCase(sql.FieldGT(FieldConfidence, v))
}

// ConfidenceGTE applies the GTE predicate on the "confidence" field.
func ConfidenceGTE(v float64) predicate.RcaCase {
	return predicate.RcaCase(sql.FieldGTE(FieldConfidence, v))
}

// ConfidenceLT applies the LT predicate on the "confidence" field.
func ConfidenceLT(v float64) predicate.RcaCase {
	return predicate.RcaCase(sql.FieldLT(FieldConfidence, v))
}

// ConfidenceLTE applies the LTE predicate on the "confidence" field.
func ConfidenceLTE(v float64) predicate.RcaCase {
	return predicate.RcaCase(sql.FieldLTE(FieldConfidence, v))
}

// RecommendedActionEQ applies the EQ predicate on the "recommended_action" field.
func RecommendedActionEQ(v string) predicate.RcaCase {
	return predicate.RcaCase(sql.FieldEQ(FieldRecommendedAction, v))
}

// RecommendedActionNEQ applies the NEQ predicate on the "recommended_action" field.
func RecommendedActionNEQ(v string) predicate.RcaCase {
	return predicate.RcaCase(sql.FieldNEQ(FieldRecommendedAction, v))
}

// RecommendedActionIn applies the In predicate on the "recommended_action" field.
func RecommendedActionIn(vs ...string) predicate.RcaCase {
	return predicate.RcaCase(sql.FieldIn(FieldRecommendedAction, vs...))
}

// RecommendedActionNotIn applies the NotIn predicate on the "recommended_action" field.
func RecommendedActionNotIn(vs ...string) predicate.RcaCase {
	return predicate.RcaCase(sql.FieldNotIn(FieldRecommendedAction, vs...))
}

// RecommendedActionGT applies the GT predicate on the "recommended_action" field.
func RecommendedActionGT(v string) predicate.RcaCase {
	return predicate.RcaCase(sql.FieldGT(FieldRecommendedAction, v))
}

// RecommendedActionGTE applies the GTE predicate on the "recommended_action" field.
func RecommendedActionGTE(v string) predicate.RcaCase {
	return predicate.RcaCase(sql.FieldGTE(FieldRecommendedAction, v))
}

// RecommendedActionLT applies the LT predicate on the "recommended_action" field.
func RecommendedActionLT(v string) predicate.RcaCase {
	return predicate.RcaCase(sql.FieldLT(FieldRecommendedAction, v))
}

// RecommendedActionLTE applies the LTE predicate on the "recommended_action" field.
func RecommendedActionLTE(v string) predicate.RcaCase {
	return predicate.RcaCase(sql.FieldLTE(FieldRecommendedAction, v))
}

// RecommendedActionContains applies the Contains predicate on the "recommended_action" field.
func RecommendedActionContains(v string) predicate.RcaCase {
	return predicate.RcaCase(sql.FieldContains(FieldRecommendedAction, v))
}

// RecommendedActionHasPrefix applies the HasPrefix predicate on the "recommended_action" field.
func RecommendedActionHasPrefix(v string) predicate.RcaCase {
	return predicate.RcaCase(sql.FieldHasPrefix(FieldRecommendedAction, v))
}

// RecommendedActionHasSuffix applies the HasSuffix predicate on the "recommended_action" field.
func RecommendedActionHasSuffix(v string) predicate.RcaCase {
	return predicate.RcaCase(sql.FieldHasSuffix(FieldRecommendedAction, v))
}

// RecommendedActionEqualFold applies the EqualFold predicate on the "recommended_action" field.
func RecommendedActionEqualFold(v string) predicate.RcaCase {
	return predicate.RcaCase(sql.FieldEqualFold(FieldRecommendedAction, v))
}

// RecommendedActionContainsFold applies the ContainsFold predicate on the "recommended_action" field.
func RecommendedActionContainsFold(v string) predicate.RcaCase {
	return predicate.RcaCase(sql.FieldContainsFold(FieldRecommendedAction, v))
}

// CapaTypeEQ applies the EQ predicate on the "capa_type" field.
func CapaTypeEQ(v CapaType) predicate.RcaCase {
	return predicate.RcaCase(sql.FieldEQ(FieldCapaType, v))
}

// CapaTypeNEQ applies the NEQ predicate on the "capa_type" field.
func CapaTypeNEQ(v CapaType) predicate.RcaCase {
	return predicate.RcaCase(sql.FieldNEQ(FieldCapaType, v))
}

// CapaTypeIn applies the In predicate on the "capa_type" field.
func CapaTypeIn(vs ...CapaType) predicate.RcaCase {
	return predicate.RcaCase(sql.FieldIn(FieldCapaType, vs...))
}

// CapaTypeNotIn applies the NotIn predicate on the "capa_type" field.
func CapaTypeNotIn(vs ...CapaType) predicate.RcaCase {
	return predicate.RcaCase(sql.FieldNotIn(FieldCapaType, vs...))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.RcaCase {
	return predicate.RcaCase(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.RcaCase {
	return predicate.RcaCase(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.RcaCase {
	return predicate.RcaCase(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.RcaCase {
	return predicate.RcaCase(sql.FieldNotIn(FieldStatus, vs...))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.RcaCase {
	return predicate.RcaCase(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.RcaCase {
	return predicate.RcaCase(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.RcaCase {
	return predicate.RcaCase(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.RcaCase {
	return predicate.RcaCase(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.RcaCase {
	return predicate.RcaCase(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.RcaCase {
	return predicate.RcaCase(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.RcaCase {
	return predicate.RcaCase(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.RcaCase {
	return predicate.RcaCase(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.RcaCase) predicate.RcaCase {
	return predicate.RcaCase(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.RcaCase) predicate.RcaCase {
	return predicate.RcaCase(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.RcaCase) predicate.RcaCase {
	return predicate.RcaCase(sql.NotPredicates(p))
}
