// Code generated by ent, DO NOT EDIT.

package diagnosiscase

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/fleetsense/fleetsense/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.DiagnosisCase {
	return predicate.DiagnosisCase(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.DiagnosisCase {
	return predicate.DiagnosisCase(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.DiagnosisCase {
	return predicate.DiagnosisCase(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.DiagnosisCase {
	return predicate.DiagnosisCase(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.DiagnosisCase {
	return predicate.DiagnosisCase(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.DiagnosisCase {
	return predicate.DiagnosisCase(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.DiagnosisCase {
	return predicate.DiagnosisCase(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.DiagnosisCase {
	return predicate.DiagnosisCase(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.DiagnosisCase {
	return predicate.DiagnosisCase(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.DiagnosisCase {
	return predicate.DiagnosisCase(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.DiagnosisCase {
	return predicate.DiagnosisCase(sql.FieldContainsFold(FieldID, id))
}

// CaseID applies equality check predicate on the "case_id" field. It's identical to CaseIDEQ.
func CaseID(v string) predicate.DiagnosisCase {
	return predicate.DiagnosisCase(sql.FieldEQ(FieldCaseID, v))
}

// VehicleID applies equality check predicate on the "vehicle_id" field. It's identical to VehicleIDEQ.
func VehicleID(v string) predicate.DiagnosisCase {
	return predicate.DiagnosisCase(sql.FieldEQ(FieldVehicleID, v))
}

// Component applies equality check predicate on the "component" field. It's identical to ComponentEQ.
func Component(v string) predicate.DiagnosisCase {
	return predicate.DiagnosisCase(sql.FieldEQ(FieldComponent, v))
}

// FailureProbability applies equality check predicate on the "failure_probability" field. It's identical to FailureProbabilityEQ.
func FailureProbability(v float64) predicate.DiagnosisCase {
	return predicate.DiagnosisCase(sql.FieldEQ(FieldFailureProbability, v))
}

// EstimatedRulDays applies equality check predicate on the "estimated_rul_days" field. It's identical to EstimatedRulDaysEQ.
func EstimatedRulDays(v int) predicate.DiagnosisCase {
	return predicate.DiagnosisCase(sql.FieldEQ(FieldEstimatedRulDays, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.DiagnosisCase {
	return predicate.DiagnosisCase(sql.FieldEQ(FieldCreatedAt, v))
}

// CaseIDEQ applies the EQ predicate on the "case_id" field.
func CaseIDEQ(v string) predicate.DiagnosisCase {
	return predicate.DiagnosisCase(sql.FieldEQ(FieldCaseID, v))
}

// CaseIDNEQ applies the NEQ predicate on the "case_id" field.
func CaseIDNEQ(v string) predicate.DiagnosisCase {
	return predicate.DiagnosisCase(sql.FieldNEQ(FieldCaseID, v))
}

// CaseIDIn applies the In predicate on the "case_id" field.
func CaseIDIn(vs ...string) predicate.DiagnosisCase {
	return predicate.DiagnosisCase(sql.FieldIn(FieldCaseID, vs...))
}

// CaseIDNotIn applies the NotIn predicate on the "case_id" field.
func CaseIDNotIn(vs ...string) predicate.DiagnosisCase {
	return predicate.DiagnosisCase(sql.FieldNotIn(FieldCaseID, vs...))
}

// CaseIDGT applies the GT predicate on the "case_id" field.
func CaseIDGT(v string) predicate.DiagnosisCase {
	return predicate.DiagnosisCase(sql.FieldGT(FieldCaseID, v))
}

// CaseIDGTE applies the GTE predicate on the "case_id" field.
func CaseIDGTE(v string) predicate.DiagnosisCase {
	return predicate.DiagnosisCase(sql.FieldGTE(FieldCaseID, v))
}

// CaseIDLT applies the LT predicate on the "case_id" field.
func CaseIDLT(v string) predicate.DiagnosisCase {
	return predicate.DiagnosisCase(sql.FieldLT(FieldCaseID, v))
}

// CaseIDLTE applies the LTE predicate on the "case_id" field.
func CaseIDLTE(v string) predicate.DiagnosisCase {
	return predicate.DiagnosisCase(sql.FieldLTE(FieldCaseID, v))
}

// CaseIDContains applies the Contains predicate on the "case_id" field.
func CaseIDContains(v string) predicate.DiagnosisCase {
	return predicate.DiagnosisCase(sql.FieldContains(FieldCaseID, v))
}

// CaseIDHasPrefix applies the HasPrefix predicate on the "case_id" field.
func CaseIDHasPrefix(v string) predicate.DiagnosisCase {
	return predicate.DiagnosisCase(sql.FieldHasPrefix(FieldCaseID, v))
}

// CaseIDHasSuffix applies the HasSuffix predicate on the "case_id" field.
func CaseIDHasSuffix(v string) predicate.DiagnosisCase {
	return predicate.DiagnosisCase(sql.FieldHasSuffix(FieldCaseID, v))
}

// CaseIDEqualFold applies the EqualFold predicate on the "case_id" field.
func CaseIDEqualFold(v string) predicate.DiagnosisCase {
	return predicate.DiagnosisCase(sql.FieldEqualFold(FieldCaseID, v))
}

// CaseIDContainsFold applies the ContainsFold predicate on the "case_id" field.
func CaseIDContainsFold(v string) predicate.DiagnosisCase {
	return predicate.DiagnosisCase(sql.FieldContainsFold(FieldCaseID, v))
}

// VehicleIDEQ applies the EQ predicate on the "vehicle_id" field.
func VehicleIDEQ(v string) predicate.DiagnosisCase {
	return predicate.DiagnosisCase(sql.FieldEQ(FieldVehicleID, v))
}

// VehicleIDNEQ applies the NEQ predicate on the "vehicle_id" field.
func VehicleIDNEQ(v string) predicate.DiagnosisCase {
	return predicate.DiagnosisCase(sql.FieldNEQ(FieldVehicleID, v))
}

// VehicleIDIn applies the In predicate on the "vehicle_id" field.
func VehicleIDIn(vs ...string) predicate.DiagnosisCase {
	return predicate.DiagnosisCase(sql.FieldIn(FieldVehicleID, vs...))
}

// VehicleIDNotIn applies the NotIn predicate on the "vehicle_id" field.
func VehicleIDNotIn(vs ...string) predicate.DiagnosisCase {
	return predicate.DiagnosisCase(sql.FieldNotIn(FieldVehicleID, vs...))
}

// VehicleIDGT applies the GT predicate on the "vehicle_id" field.
func VehicleIDGT(v string) predicate.DiagnosisCase {
	return predicate.DiagnosisCase(sql.FieldGT(FieldVehicleID, v))
}

// VehicleIDGTE applies the GTE predicate on the "vehicle_id" field.
func VehicleIDGTE(v string) predicate.DiagnosisCase {
	return predicate.DiagnosisCase(sql.FieldGTE(FieldVehicleID, v))
}

// VehicleIDLT applies the LT predicate on the "vehicle_id" field.
func VehicleIDLT(v string) predicate.DiagnosisCase {
	return predicate.DiagnosisCase(sql.FieldLT(FieldVehicleID, v))
}

// VehicleIDLTE applies the LTE predicate on the "vehicle_id" field.
func VehicleIDLTE(v string) predicate.DiagnosisCase {
	return predicate.DiagnosisCase(sql.FieldLTE(FieldVehicleID, v))
}

// VehicleIDContains applies the Contains predicate on the "vehicle_id" field.
func VehicleIDContains(v string) predicate.DiagnosisCase {
	return predicate.DiagnosisCase(sql.FieldContains(FieldVehicleID, v))
}

// VehicleIDHasPrefix applies the HasPrefix predicate on the "vehicle_id" field.
func VehicleIDHasPrefix(v string) predicate.DiagnosisCase {
	return predicate.DiagnosisCase(sql.FieldHasPrefix(FieldVehicleID, v))
}

// VehicleIDHasSuffix applies the HasSuffix predicate on the "vehicle_id" field.
func VehicleIDHasSuffix(v string) predicate.DiagnosisCase {
	return predicate.DiagnosisCase(sql.FieldHasSuffix(FieldVehicleID, v))
}

// VehicleIDEqualFold applies the EqualFold predicate on the "vehicle_id" field.
func VehicleIDEqualFold(v string) predicate.DiagnosisCase {
	return predicate.DiagnosisCase(sql.FieldEqualFold(FieldVehicleID, v))
}

// VehicleIDContainsFold applies the ContainsFold predicate on the "vehicle_id" field.
func VehicleIDContainsFold(v string) predicate.DiagnosisCase {
	return predicate.DiagnosisCase(sql.FieldContainsFold(FieldVehicleID, v))
}

// ComponentEQ applies the EQ predicate on the "component" field.
func ComponentEQ(v string) predicate.DiagnosisCase {
	return predicate.DiagnosisCase(sql.FieldEQ(FieldComponent, v))
}

// ComponentNEQ applies the NEQ predicate on the "component" field.
func ComponentNEQ(v string) predicate.DiagnosisCase {
	return predicate.DiagnosisCase(sql.FieldNEQ(FieldComponent, v))
}

// ComponentIn applies the In predicate on the "component" field.
func ComponentIn(vs ...string) predicate.DiagnosisCase {
	return predicate.DiagnosisCase(sql.FieldIn(FieldComponent, vs...))
}

// ComponentNotIn applies the NotIn predicate on the "component" field.
func ComponentNotIn(vs ...string) predicate.DiagnosisCase {
	return predicate.DiagnosisCase(sql.FieldNotIn(FieldComponent, vs...))
}

// ComponentGT applies the GT predicate on the "component" field.
func ComponentGT(v string) predicate.DiagnosisCase {
	return predicate.DiagnosisCase(sql.FieldGT(FieldComponent, v))
}

// ComponentGTE applies the GTE predicate on the "component" field.
func ComponentGTE(v string) predicate.DiagnosisCase {
	return predicate.DiagnosisCase(sql.FieldGTE(FieldComponent, v))
}

// ComponentLT applies the LT predicate on the "component" field.
func ComponentLT(v string) predicate.DiagnosisCase {
	return predicate.DiagnosisCase(sql.FieldLT(FieldComponent, v))
}

// ComponentLTE applies the LTE predicate on the "component" field.
func ComponentLTE(v string) predicate.DiagnosisCase {
	return predicate.DiagnosisCase(sql.FieldLTE(FieldComponent, v))
}

// ComponentContains applies the Contains predicate on the "component" field.
func ComponentContains(v string) predicate.DiagnosisCase {
	return predicate.DiagnosisCase(sql.FieldContains(FieldComponent, v))
}

// ComponentHasPrefix applies the HasPrefix predicate on the "component" field.
func ComponentHasPrefix(v string) predicate.DiagnosisCase {
	return predicate.DiagnosisCase(sql.FieldHasPrefix(FieldComponent, v))
}

// ComponentHasSuffix applies the HasSuffix predicate on the "component" field.
func ComponentHasSuffix(v string) predicate.DiagnosisCase {
	return predicate.DiagnosisCase(sql.FieldHasSuffix(FieldComponent, v))
}

// ComponentEqualFold applies the EqualFold predicate on the "component" field.
func ComponentEqualFold(v string) predicate.DiagnosisCase {
	return predicate.DiagnosisCase(sql.FieldEqualFold(FieldComponent, v))
}

// ComponentContainsFold applies the ContainsFold predicate on the "component" field.
func ComponentContainsFold(v string) predicate.DiagnosisCase {
	return predicate.DiagnosisCase(sql.FieldContainsFold(FieldComponent, v))
}

// FailureProbabilityEQ applies the EQ predicate on the "failure_probability" field.
func FailureProbabilityEQ(v float64) predicate.DiagnosisCase {
	return predicate.DiagnosisCase(sql.FieldEQ(FieldFailureProbability, v))
}

// FailureProbabilityNEQ applies the NEQ predicate on the "failure_probability" field.
func FailureProbabilityNEQ(v float64) predicate.DiagnosisCase {
	return predicate.DiagnosisCase(sql.FieldNEQ(FieldFailureProbability, v))
}

// FailureProbabilityIn applies the In predicate on the "failure_probability" field.
func FailureProbabilityIn(vs ...float64) predicate.DiagnosisCase {
	return predicate.DiagnosisCase(sql.FieldIn(FieldFailureProbability, vs...))
}

// FailureProbabilityNotIn applies the NotIn predicate on the "failure_probability" field.
func FailureProbabilityNotIn(vs ...float64) predicate.DiagnosisCase {
	return predicate.DiagnosisCase(sql.FieldNotIn(FieldFailureProbability, vs...))
}

// FailureProbabilityGT applies the GT predicate on the "failure_probability" field.
func FailureProbabilityGT(v float64) predicate.DiagnosisCase {
	return predicate.DiagnosisCase(sql.FieldGT(FieldFailureProbability, v))
}

// FailureProbabilityGTE applies the GTE predicate on the "failure_probability" field.
func FailureProbabilityGTE(v float64) predicate.DiagnosisCase {
	return predicate.DiagnosisCase(sql.FieldGTE(FieldFailureProbability, v))
}

// FailureProbabilityLT applies the LT predicate on the "failure_probability" field.
func FailureProbabilityLT(v float64) predicate.DiagnosisCase {
	return predicate.DiagnosisCase(sql.FieldLT(FieldFailureProbability, v))
}

// FailureProbabilityLTE applies the LTE predicate on the "failure_probability" field.
func FailureProbabilityLTE(v float64) predicate.DiagnosisCase {
	return predicate.DiagnosisCase(sql.FieldLTE(FieldFailureProbability, v))
}

// EstimatedRulDaysEQ applies the EQ predicate on the "estimated_rul_days" field.
func EstimatedRulDaysEQ(v int) predicate.DiagnosisCase {
	return predicate.DiagnosisCase(sql.FieldEQ(FieldEstimatedRulDays, v))
}

// EstimatedRulDaysNEQ applies the NEQ predicate on the "estimated_rul_days" field.
func EstimatedRulDaysNEQ(v int) predicate.DiagnosisCase {
	return predicate.DiagnosisCase(sql.FieldNEQ(FieldEstimatedRulDays, v))
}

// EstimatedRulDaysIn applies the In predicate on the "estimated_rul_days" field.
func EstimatedRulDaysIn(vs ...int) predicate.DiagnosisCase {
	return predicate.DiagnosisCase(sql.FieldIn(FieldEstimatedRulDays, vs...))
}

// EstimatedRulDaysNotIn applies the NotIn predicate on the "estimated_rul_days" field.
func EstimatedRulDaysNotIn(vs ...int) predicate.DiagnosisCase {
	return predicate.DiagnosisCase(sql.FieldNotIn(FieldEstimatedRulDays, vs...))
}

// EstimatedRulDaysGT applies the GT predicate on the "estimated_rul_days" field.
func EstimatedRulDaysGT(v int) predicate.DiagnosisCase {
	return predicate.DiagnosisCase(sql.FieldGT(FieldEstimatedRulDays, v))
}

// EstimatedRulDaysGTE applies the GTE predicate on the "estimated_rul_days" field.
func EstimatedRulDaysGTE(v int) predicate.DiagnosisCase {
	return predicate.DiagnosisCase(sql.FieldGTE(FieldEstimatedRulDays, v))
}

// EstimatedRulDaysLT applies the LT predicate on the "estimated_rul_days" field.
func EstimatedRulDaysLT(v int) predicate.DiagnosisCase {
	return predicate.DiagnosisCase(sql.FieldLT(FieldEstimatedRulDays, v))
}

// EstimatedRulDaysLTE applies the LTE predicate on the "estimated_rul_days" field.
func EstimatedRulDaysLTE(v int) predicate.DiagnosisCase {
	return predicate.DiagnosisCase(sql.FieldLTE(FieldEstimatedRulDays, v))
}

// SeverityEQ applies the EQ predicate on the "severity" field.
func SeverityEQ(v Severity) predicate.DiagnosisCase {
	return predicate.DiagnosisCase(sql.FieldEQ(FieldSeverity, v))
}

// SeverityNEQ applies the NEQ predicate on the "severity" field.
func SeverityNEQ(v Severity) predicate.DiagnosisCase {
	return predicate.DiagnosisCase(sql.FieldNEQ(FieldSeverity, v))
}

// SeverityIn applies the In predicate on the "severity" field.
func SeverityIn(vs ...Severity) predicate.DiagnosisCase {
	return predicate.DiagnosisCase(sql.FieldIn(FieldSeverity, vs...))
}

// SeverityNotIn applies the NotIn predicate on the "severity" field.
func SeverityNotIn(vs ...Severity) predicate.DiagnosisCase {
	return predicate.DiagnosisCase(sql.FieldNotIn(FieldSeverity, vs...))
}

// ContextEventIdsIsNil applies the IsNil predicate on the "context_event_ids" field.
func ContextEventIdsIsNil() predicate.DiagnosisCase {
	return predicate.DiagnosisCase(sql.FieldIsNull(FieldContextEventIds))
}

// ContextEventIdsNotNil applies the NotNil predicate on the "context_event_ids" field.
func ContextEventIdsNotNil() predicate.DiagnosisCase {
	return predicate.DiagnosisCase(sql.FieldNotNull(FieldContextEventIds))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.DiagnosisCase {
	return predicate.DiagnosisCase(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.DiagnosisCase {
	return predicate.DiagnosisCase(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.DiagnosisCase {
	return predicate.DiagnosisCase(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.DiagnosisCase {
	return predicate.DiagnosisCase(sql.FieldNotIn(FieldStatus, vs...))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.DiagnosisCase {
	return predicate.DiagnosisCase(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.DiagnosisCase {
	return predicate.DiagnosisCase(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.DiagnosisCase {
	return predicate.DiagnosisCase(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.DiagnosisCase {
	return predicate.DiagnosisCase(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.DiagnosisCase {
	return predicate.DiagnosisCase(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.DiagnosisCase {
	return predicate.DiagnosisCase(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.DiagnosisCase {
	return predicate.DiagnosisCase(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.DiagnosisCase {
	return predicate.DiagnosisCase(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.DiagnosisCase) predicate.DiagnosisCase {
	return predicate.DiagnosisCase(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.DiagnosisCase) predicate.DiagnosisCase {
	return predicate.DiagnosisCase(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.DiagnosisCase) predicate.DiagnosisCase {
	return predicate.DiagnosisCase(sql.NotPredicates(p))
}
