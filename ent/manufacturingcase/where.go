// Code generated by ent, DO NOT EDIT.

package manufacturingcase

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/fleetsense/fleetsense/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.ManufacturingCase {
	return predicate.ManufacturingCase(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.ManufacturingCase {
	return predicate.ManufacturingCase(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.ManufacturingCase {
	return predicate.ManufacturingCase(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.ManufacturingCase {
	return predicate.ManufacturingCase(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.ManufacturingCase {
	return predicate.ManufacturingCase(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.ManufacturingCase {
	return predicate.ManufacturingCase(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.ManufacturingCase {
	return predicate.ManufacturingCase(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.ManufacturingCase {
	return predicate.ManufacturingCase(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.ManufacturingCase {
	return predicate.ManufacturingCase(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.ManufacturingCase {
	return predicate.ManufacturingCase(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.ManufacturingCase {
	return predicate.ManufacturingCase(sql.FieldContainsFold(FieldID, id))
}

// FeedbackID applies equality check predicate on the "feedback_id" field. It's identical to FeedbackIDEQ.
func FeedbackID(v string) predicate.ManufacturingCase {
	return predicate.ManufacturingCase(sql.FieldEQ(FieldFeedbackID, v))
}

// CaseID applies equality check predicate on the "case_id" field. It's identical to CaseIDEQ.
func CaseID(v string) predicate.ManufacturingCase {
	return predicate.ManufacturingCase(sql.FieldEQ(FieldCaseID, v))
}

// VehicleID applies equality check predicate on the "vehicle_id" field. It's identical to VehicleIDEQ.
func VehicleID(v string) predicate.ManufacturingCase {
	return predicate.ManufacturingCase(sql.FieldEQ(FieldVehicleID, v))
}

// Issue applies equality check predicate on the "issue" field. It's identical to IssueEQ.
func Issue(v string) predicate.ManufacturingCase {
	return predicate.ManufacturingCase(sql.FieldEQ(FieldIssue, v))
}

// CapaRecommendation applies equality check predicate on the "capa_recommendation" field. It's identical to CapaRecommendationEQ.
func CapaRecommendation(v string) predicate.ManufacturingCase {
	return predicate.ManufacturingCase(sql.FieldEQ(FieldCapaRecommendation, v))
}

// RecurrenceClusterSize applies equality check predicate on the "recurrence_cluster_size" field. It's identical to RecurrenceClusterSizeEQ.
func RecurrenceClusterSize(v int) predicate.ManufacturingCase {
	return predicate.ManufacturingCase(sql.FieldEQ(FieldRecurrenceClusterSize, v))
}

// VehicleRecurrenceCount applies equality check predicate on the "vehicle_recurrence_count" field. It's identical to VehicleRecurrenceCountEQ.
func VehicleRecurrenceCount(v int) predicate.ManufacturingCase {
	return predicate.ManufacturingCase(sql.FieldEQ(FieldVehicleRecurrenceCount, v))
}

// AnomalyTypeRecurrenceCount applies equality check predicate on the "anomaly_type_recurrence_count" field. It's identical to AnomalyTypeRecurrenceCountEQ.
func AnomalyTypeRecurrenceCount(v int) predicate.ManufacturingCase {
	return predicate.ManufacturingCase(sql.FieldEQ(FieldAnomalyTypeRecurrenceCount, v))
}

// ComponentRecurrenceCount applies equality check predicate on the "component_recurrence_count" field. It's identical to ComponentRecurrenceCountEQ.
func ComponentRecurrenceCount(v int) predicate.ManufacturingCase {
	return predicate.ManufacturingCase(sql.FieldEQ(FieldComponentRecurrenceCount, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ManufacturingCase {
	return predicate.ManufacturingCase(sql.FieldEQ(FieldCreatedAt, v))
}

// FeedbackIDEQ applies the EQ predicate on the "feedback_id" field.
func FeedbackIDEQ(v string) predicate.ManufacturingCase {
	return predicate.ManufacturingCase(sql.FieldEQ(FieldFeedbackID, v))
}

// FeedbackIDNEQ applies the NEQ predicate on the "feedback_id" field.
func FeedbackIDNEQ(v string) predicate.ManufacturingCase {
	return predicate.ManufacturingCase(sql.FieldNEQ(FieldFeedbackID, v))
}

// FeedbackIDIn applies the In predicate on the "feedback_id" field.
func FeedbackIDIn(vs ...string) predicate.ManufacturingCase {
	return predicate.ManufacturingCase(sql.FieldIn(FieldFeedbackID, vs...))
}

// FeedbackIDNotIn applies the NotIn predicate on the "feedback_id" field.
func FeedbackIDNotIn(vs ...string) predicate.ManufacturingCase {
	return predicate.ManufacturingCase(sql.FieldNotIn(FieldFeedbackID, vs...))
}

// FeedbackIDGT applies the GT predicate on the "feedback_id" field.
func FeedbackIDGT(v string) predicate.ManufacturingCase {
	return predicate.ManufacturingCase(sql.FieldGT(FieldFeedbackID, v))
}

// FeedbackIDGTE applies the GTE predicate on the "feedback_id" field.
func FeedbackIDGTE(v string) predicate.ManufacturingCase {
	return predicate.ManufacturingCase(sql.FieldGTE(FieldFeedbackID, v))
}

// FeedbackIDLT applies the LT predicate on the "feedback_id" field.
func FeedbackIDLT(v string) predicate.ManufacturingCase {
	return predicate.ManufacturingCase(sql.FieldLT(FieldFeedbackID, v))
}

// FeedbackIDLTE applies the LTE predicate on the "feedback_id" field.
func FeedbackIDLTE(v string) predicate.ManufacturingCase {
	return predicate.ManufacturingCase(sql.FieldLTE(FieldFeedbackID, v))
}

// FeedbackIDContains applies the Contains predicate on the "feedback_id" field.
func FeedbackIDContains(v string) predicate.ManufacturingCase {
	return predicate.ManufacturingCase(sql.FieldContains(FieldFeedbackID, v))
}

// FeedbackIDHasPrefix applies the HasPrefix predicate on the "feedback_id" field.
func FeedbackIDHasPrefix(v string) predicate.ManufacturingCase {
	return predicate.ManufacturingCase(sql.FieldHasPrefix(FieldFeedbackID, v))
}

// FeedbackIDHasSuffix applies the HasSuffix predicate on the "feedback_id" field.
func FeedbackIDHasSuffix(v string) predicate.ManufacturingCase {
	return predicate.ManufacturingCase(sql.FieldHasSuffix(FieldFeedbackID, v))
}

// FeedbackIDEqualFold applies the EqualFold predicate on the "feedback_id" field.
func FeedbackIDEqualFold(v string) predicate.ManufacturingCase {
	return predicate.ManufacturingCase(sql.FieldEqualFold(FieldFeedbackID, v))
}

// FeedbackIDContainsFold applies the ContainsFold predicate on the "feedback_id" field.
func FeedbackIDContainsFold(v string) predicate.ManufacturingCase {
	return predicate.ManufacturingCase(sql.FieldContainsFold(FieldFeedbackID, v))
}

// CaseIDEQ applies the EQ predicate on the "case_id" field.
func CaseIDEQ(v string) predicate.ManufacturingCase {
	return predicate.ManufacturingCase(sql.FieldEQ(FieldCaseID, v))
}

// CaseIDNEQ applies the NEQ predicate on the "case_id" field.
func CaseIDNEQ(v string) predicate.ManufacturingCase {
	return predicate.ManufacturingCase(sql.FieldNEQ(FieldCaseID, v))
}

// CaseIDIn applies the In predicate on the "case_id" field.
func CaseIDIn(vs ...string) predicate.ManufacturingCase {
	return predicate.ManufacturingCase(sql.FieldIn(FieldCaseID, vs...))
}

// CaseIDNotIn applies the NotIn predicate on the "case_id" field.
func CaseIDNotIn(vs ...string) predicate.ManufacturingCase {
	return predicate.ManufacturingCase(sql.FieldNotIn(FieldCaseID, vs...))
}

// CaseIDGT applies the GT predicate on the "case_id" field.
func CaseIDGT(v string) predicate.ManufacturingCase {
	return predicate.ManufacturingCase(sql.FieldGT(FieldCaseID, v))
}

// CaseIDGTE applies the GTE predicate on the "case_id" field.
func CaseIDGTE(v string) predicate.ManufacturingCase {
	return predicate.ManufacturingCase(sql.FieldGTE(FieldCaseID, v))
}

// CaseIDLT applies the LT predicate on the "case_id" field.
func CaseIDLT(v string) predicate.ManufacturingCase {
	return predicate.ManufacturingCase(sql.FieldLT(FieldCaseID, v))
}

// CaseIDLTE applies the LTE predicate on the "case_id" field.
func CaseIDLTE(v string) predicate.ManufacturingCase {
	return predicate.ManufacturingCase(sql.FieldLTE(FieldCaseID, v))
}

// CaseIDContains applies the Contains predicate on the "case_id" field.
func CaseIDContains(v string) predicate.ManufacturingCase {
	return predicate.ManufacturingCase(sql.FieldContains(FieldCaseID, v))
}

// CaseIDHasPrefix applies the HasPrefix predicate on the "case_id" field.
func CaseIDHasPrefix(v string) predicate.ManufacturingCase {
	return predicate.ManufacturingCase(sql.FieldHasPrefix(FieldCaseID, v))
}

// CaseIDHasSuffix applies the HasSuffix predicate on the "case_id" field.
func CaseIDHasSuffix(v string) predicate.ManufacturingCase {
	return predicate.ManufacturingCase(sql.FieldHasSuffix(FieldCaseID, v))
}

// CaseIDEqualFold applies the EqualFold predicate on the "case_id" field.
func CaseIDEqualFold(v string) predicate.ManufacturingCase {
	return predicate.ManufacturingCase(sql.FieldEqualFold(FieldCaseID, v))
}

// CaseIDContainsFold applies the ContainsFold predicate on the "case_id" field.
func CaseIDContainsFold(v string) predicate.ManufacturingCase {
	return predicate.ManufacturingCase(sql.FieldContainsFold(FieldCaseID, v))
}

// VehicleIDEQ applies the EQ predicate on the "vehicle_id" field.
func VehicleIDEQ(v string) predicate.ManufacturingCase {
	return predicate.ManufacturingCase(sql.FieldEQ(FieldVehicleID, v))
}

// VehicleIDNEQ applies the NEQ predicate on the "vehicle_id" field.
func VehicleIDNEQ(v string) predicate.ManufacturingCase {
	return predicate.ManufacturingCase(sql.FieldNEQ(FieldVehicleID, v))
}

// VehicleIDIn applies the In predicate on the "vehicle_id" field.
func VehicleIDIn(vs ...string) predicate.ManufacturingCase {
	return predicate.ManufacturingCase(sql.FieldIn(FieldVehicleID, vs...))
}

// VehicleIDNotIn applies the NotIn predicate on the "vehicle_id" field.
func VehicleIDNotIn(vs ...string) predicate.ManufacturingCase {
	return predicate.ManufacturingCase(sql.FieldNotIn(FieldVehicleID, vs...))
}

// VehicleIDGT applies the GT predicate on the "vehicle_id" field.
func VehicleIDGT(v string) predicate.ManufacturingCase {
	return predicate.ManufacturingCase(sql.FieldGT(FieldVehicleID, v))
}

// VehicleIDGTE applies the GTE predicate on the "vehicle_id" field.
func VehicleIDGTE(v string) predicate.ManufacturingCase {
	return predicate.ManufacturingCase(sql.FieldGTE(FieldVehicleID, v))
}

// VehicleIDLT applies the LT predicate on the "vehicle_id" field.
func VehicleIDLT(v string) predicate.ManufacturingCase {
	return predicate.ManufacturingCase(sql.FieldLT(FieldVehicleID, v))
}

// VehicleIDLTE applies the LTE predicate on the "vehicle_id" field.
func VehicleIDLTE(v string) predicate.ManufacturingCase {
	return predicate.ManufacturingCase(sql.FieldLTE(FieldVehicleID, v))
}

// VehicleIDContains applies the Contains predicate on the "vehicle_id" field.
func VehicleIDContains(v string) predicate.ManufacturingCase {
	return predicate.ManufacturingCase(sql.FieldContains(FieldVehicleID, v))
}

// VehicleIDHasPrefix applies the HasPrefix predicate on the "vehicle_id" field.
func VehicleIDHasPrefix(v string) predicate.ManufacturingCase {
	return predicate.ManufacturingCase(sql.FieldHasPrefix(FieldVehicleID, v))
}

// VehicleIDHasSuffix applies the HasSuffix predicate on the "vehicle_id" field.
func VehicleIDHasSuffix(v string) predicate.ManufacturingCase {
	return predicate.ManufacturingCase(sql.FieldHasSuffix(FieldVehicleID, v))
}

// VehicleIDEqualFold applies the EqualFold predicate on the "vehicle_id" field.
func VehicleIDEqualFold(v string) predicate.ManufacturingCase {
	return predicate.ManufacturingCase(sql.FieldEqualFold(FieldVehicleID, v))
}

// VehicleIDContainsFold applies the ContainsFold predicate on the "vehicle_id" field.
func VehicleIDContainsFold(v string) predicate.ManufacturingCase {
	return predicate.ManufacturingCase(sql.FieldContainsFold(FieldVehicleID, v))
}

// IssueEQ applies the EQ predicate on the "issue" field.
func IssueEQ(v string) predicate.ManufacturingCase {
	return predicate.ManufacturingCase(sql.FieldEQ(FieldIssue, v))
}

// IssueNEQ applies the NEQ predicate on the "issue" field.
func IssueNEQ(v string) predicate.ManufacturingCase {
	return predicate.ManufacturingCase(sql.FieldNEQ(FieldIssue, v))
}

// IssueIn applies the In predicate on the "issue" field.
func IssueIn(vs ...string) predicate.ManufacturingCase {
	return predicate.ManufacturingCase(sql.FieldIn(FieldIssue, vs...))
}

// IssueNotIn applies the NotIn predicate on the "issue" field.
func IssueNotIn(vs ...string) predicate.ManufacturingCase {
	return predicate.ManufacturingCase(sql.FieldNotIn(FieldIssue, vs...))
}

// IssueGT applies the GT predicate on the "issue" field.
func IssueGT(v string) predicate.ManufacturingCase {
	return predicate.ManufacturingCase(sql.FieldGT(FieldIssue, v))
}

// IssueGTE applies the GTE predicate on the "issue" field.
func IssueGTE(v string) predicate.ManufacturingCase {
	return predicate.ManufacturingCase(sql.FieldGTE(FieldIssue, v))
}

// IssueLT applies the LT predicate on the "issue" field.
func IssueLT(v string) predicate.ManufacturingCase {
	return predicate.ManufacturingCase(sql.FieldLT(FieldIssue, v))
}

// IssueLTE applies the LTE predicate on the "issue" field.
func IssueLTE(v string) predicate.ManufacturingCase {
	return predicate.ManufacturingCase(sql.FieldLTE(FieldIssue, v))
}

// IssueContains applies the Contains predicate on the "issue" field.
func IssueContains(v string) predicate.ManufacturingCase {
	return predicate.ManufacturingCase(sql.FieldContains(FieldIssue, v))
}

// IssueHasPrefix applies the HasPrefix predicate on the "issue" field.
func IssueHasPrefix(v string) predicate.ManufacturingCase {
	return predicate.ManufacturingCase(sql.FieldHasPrefix(FieldIssue, v))
}

// IssueHasSuffix applies the HasSuffix predicate on the "issue" field.
func IssueHasSuffix(v string) predicate.ManufacturingCase {
	return predicate.ManufacturingCase(sql.FieldHasSuffix(FieldIssue, v))
}

// IssueEqualFold applies the EqualFold predicate on the "issue" field.
func IssueEqualFold(v string) predicate.ManufacturingCase {
	return predicate.ManufacturingCase(sql.FieldEqualFold(FieldIssue, v))
}

// IssueContainsFold applies the ContainsFold predicate on the "issue" field.
func IssueContainsFold(v string) predicate.ManufacturingCase {
	return predicate.ManufacturingCase(sql.FieldContainsFold(FieldIssue, v))
}

// CapaRecommendationEQ applies the EQ predicate on the "capa_recommendation" field.
func CapaRecommendationEQ(v string) predicate.ManufacturingCase {
	return predicate.ManufacturingCase(sql.FieldEQ(FieldCapaRecommendation, v))
}

// CapaRecommendationNEQ applies the NEQ predicate on the "capa_recommendation" field.
func CapaRecommendationNEQ(v string) predicate.ManufacturingCase {
	return predicate.ManufacturingCase(sql.FieldNEQ(FieldCapaRecommendation, v))
}

// CapaRecommendationIn applies the In predicate on the "capa_recommendation" field.
func CapaRecommendationIn(vs ...string) predicate.ManufacturingCase {
	return predicate.ManufacturingCase(sql.FieldIn(FieldCapaRecommendation, vs...))
}

// CapaRecommendationNotIn applies the NotIn predicate on the "capa_recommendation" field.
func CapaRecommendationNotIn(vs ...string) predicate.ManufacturingCase {
	return predicate.ManufacturingCase(sql.FieldNotIn(FieldCapaRecommendation, vs...))
}

// CapaRecommendationGT applies the GT predicate on the "capa_recommendation" field.
func CapaRecommendationGT(v string) predicate.ManufacturingCase {
	return predicate.ManufacturingCase(sql.FieldGT(FieldCapaRecommendation, v))
}

// CapaRecommendationGTE applies the GTE predicate on the "capa_recommendation" field.
func CapaRecommendationGTE(v string) predicate.ManufacturingCase {
	return predicate.ManufacturingCase(sql.FieldGTE(FieldCapaRecommendation, v))
}

// CapaRecommendationLT applies the LT predicate on the "capa_recommendation" field.
func CapaRecommendationLT(v string) predicate.ManufacturingCase {
	return predicate.ManufacturingCase(sql.FieldLT(FieldCapaRecommendation, v))
}

// CapaRecommendationLTE applies the LTE predicate on the "capa_recommendation" field.
func CapaRecommendationLTE(v string) predicate.ManufacturingCase {
	return predicate.ManufacturingCase(sql.FieldLTE(FieldCapaRecommendation, v))
}

// CapaRecommendationContains applies the Contains predicate on the "capa_recommendation" field.
func CapaRecommendationContains(v string) predicate.ManufacturingCase {
	return predicate.ManufacturingCase(sql.FieldContains(FieldCapaRecommendation, v))
}

// CapaRecommendationHasPrefix applies the HasPrefix predicate on the "capa_recommendation" field.
func CapaRecommendationHasPrefix(v string) predicate.ManufacturingCase {
	return predicate.ManufacturingCase(sql.FieldHasPrefix(FieldCapaRecommendation, v))
}

// CapaRecommendationHasSuffix applies the HasSuffix predicate on the "capa_recommendation" field.
func CapaRecommendationHasSuffix(v string) predicate.ManufacturingCase {
	return predicate.ManufacturingCase(sql.FieldHasSuffix(FieldCapaRecommendation, v))
}

// CapaRecommendationEqualFold applies the EqualFold predicate on the "capa_recommendation" field.
func CapaRecommendationEqualFold(v string) predicate.ManufacturingCase {
	return predicate.ManufacturingCase(sql.FieldEqualFold(FieldCapaRecommendation, v))
}

// CapaRecommendationContainsFold applies the ContainsFold predicate on the "capa_recommendation" field.
func CapaRecommendationContainsFold(v string) predicate.ManufacturingCase {
	return predicate.ManufacturingCase(sql.FieldContainsFold(FieldCapaRecommendation, v))
}

// SeverityEQ applies the EQ predicate on the "severity" field.
func SeverityEQ(v Severity) predicate.ManufacturingCase {
	return predicate.ManufacturingCase(sql.FieldEQ(FieldSeverity, v))
}

// SeverityNEQ applies the NEQ predicate on the "severity" field.
func SeverityNEQ(v Severity) predicate.ManufacturingCase {
	return predicate.ManufacturingCase(sql.FieldNEQ(FieldSeverity, v))
}

// SeverityIn applies the In predicate on the "severity" field.
func SeverityIn(vs ...Severity) predicate.ManufacturingCase {
	return predicate.ManufacturingCase(sql.FieldIn(FieldSeverity, vs...))
}

// SeverityNotIn applies the NotIn predicate on the "severity" field.
func SeverityNotIn(vs ...Severity) predicate.ManufacturingCase {
	return predicate.ManufacturingCase(sql.FieldNotIn(FieldSeverity, vs...))
}

// RecurrenceClusterSizeEQ applies the EQ predicate on the "recurrence_cluster_size" field.
func RecurrenceClusterSizeEQ(v int) predicate.ManufacturingCase {
	return predicate.ManufacturingCase(sql.FieldEQ(FieldRecurrenceClusterSize, v))
}

// RecurrenceClusterSizeNEQ applies the NEQ predicate on the "recurrence_cluster_size" field.
func RecurrenceClusterSizeNEQ(v int) predicate.ManufacturingCase {
	return predicate.ManufacturingCase(sql.FieldNEQ(FieldRecurrenceClusterSize, v))
}

// RecurrenceClusterSizeIn applies the In predicate on the "recurrence_cluster_size" field.
func RecurrenceClusterSizeIn(vs ...int) predicate.ManufacturingCase {
	return predicate.ManufacturingCase(sql.FieldIn(FieldRecurrenceClusterSize, vs...))
}

// RecurrenceClusterSizeNotIn applies the NotIn predicate on the "recurrence_cluster_size" field.
func RecurrenceClusterSizeNotIn(vs ...int) predicate.ManufacturingCase {
	return predicate.ManufacturingCase(sql.FieldNotIn(FieldRecurrenceClusterSize, vs...))
}

// RecurrenceClusterSizeGT applies the GT predicate on the "recurrence_cluster_size" field.
func RecurrenceClusterSizeGT(v int) predicate.ManufacturingCase {
	return predicate.ManufacturingCase(sql.FieldGT(FieldRecurrenceClusterSize, v))
}

// RecurrenceClusterSizeGTE applies the GTE predicate on the "recurrence_cluster_size" field.
func RecurrenceClusterSizeGTE(v int) predicate.ManufacturingCase {
	return predicate.ManufacturingCase(sql.FieldGTE(FieldRecurrenceClusterSize, v))
}

// RecurrenceClusterSizeLT applies the LT predicate on the "recurrence_cluster_size" field.
func RecurrenceClusterSizeLT(v int) predicate.ManufacturingCase {
	return predicate.ManufacturingCase(sql.FieldLT(FieldRecurrenceClusterSize, v))
}

// RecurrenceClusterSizeLTE applies the LTE predicate on the "recurrence_cluster_size" field.
func RecurrenceClusterSizeLTE(v int) predicate.ManufacturingCase {
	return predicate.ManufacturingCase(sql.FieldLTE(FieldRecurrenceClusterSize, v))
}

// VehicleRecurrenceCountEQ applies the EQ predicate on the "vehicle_recurrence_count" field.
func VehicleRecurrenceCountEQ(v int) predicate.ManufacturingCase {
	return predicate.ManufacturingCase(sql.FieldEQ(FieldVehicleRecurrenceCount, v))
}

// VehicleRecurrenceCountNEQ applies the NEQ predicate on the "vehicle_recurrence_count" field.
func VehicleRecurrenceCountNEQ(v int) predicate.ManufacturingCase {
	return predicate.ManufacturingCase(sql.FieldNEQ(FieldVehicleRecurrenceCount, v))
}

// VehicleRecurrenceCountIn applies the In predicate on the "vehicle_recurrence_count" field.
func VehicleRecurrenceCountIn(vs ...int) predicate.ManufacturingCase {
	return predicate.ManufacturingCase(sql.FieldIn(FieldVehicleRecurrenceCount, vs...))
}

// VehicleRecurrenceCountNotIn applies the NotIn predicate on the "vehicle_recurrence_count" field.
func VehicleRecurrenceCountNotIn(vs ...int) predicate.ManufacturingCase {
	return predicate.ManufacturingCase(sql.FieldNotIn(FieldVehicleRecurrenceCount, vs...))
}

// VehicleRecurrenceCountGT applies the GT predicate on the "vehicle_recurrence_count" field.
func VehicleRecurrenceCountGT(v int) predicate.ManufacturingCase {
	return predicate.ManufacturingCase(sql.FieldGT(FieldVehicleRecurrenceCount, v))
}

// VehicleRecurrenceCountGTE applies the GTE predicate on the "vehicle_recurrence_count" field.
func VehicleRecurrenceCountGTE(v int) predicate.ManufacturingCase {
	return predicate.ManufacturingCase(sql.FieldGTE(FieldVehicleRecurrenceCount, v))
}

// VehicleRecurrenceCountLT applies the LT predicate on the "vehicle_recurrence_count" field.
func VehicleRecurrenceCountLT(v int) predicate.ManufacturingCase {
	return predicate.ManufacturingCase(sql.FieldLT(FieldVehicleRecurrenceCount, v))
}

// VehicleRecurrenceCountLTE applies the LTE predicate on the "vehicle_recurrence_count" field.
func VehicleRecurrenceCountLTE(v int) predicate.ManufacturingCase {
	return predicate.ManufacturingCase(sql.FieldLTE(FieldVehicleRecurrenceCount, v))
}

// AnomalyTypeRecurrenceCountEQ applies the EQ predicate on the "anomaly_type_recurrence_count" field.
func AnomalyTypeRecurrenceCountEQ(v int) predicate.ManufacturingCase {
	return predicate.ManufacturingCase(sql.FieldEQ(FieldAnomalyTypeRecurrenceCount, v))
}

// AnomalyTypeRecurrenceCountNEQ applies the NEQ predicate on the "anomaly_type_recurrence_count" field.
func AnomalyTypeRecurrenceCountNEQ(v int) predicate.ManufacturingCase {
	return predicate.ManufacturingCase(sql.FieldNEQ(FieldAnomalyTypeRecurrenceCount, v))
}

// AnomalyTypeRecurrenceCountIn applies the In predicate on the "anomaly_type_recurrence_count" field.
func AnomalyTypeRecurrenceCountIn(vs ...int) predicate.ManufacturingCase {
	return predicate.ManufacturingCase(sql.FieldIn(FieldAnomalyTypeRecurrenceCount, vs...))
}

// AnomalyTypeRecurrenceCountNotIn applies the NotIn predicate on the "anomaly_type_recurrence_count" field.
func AnomalyTypeRecurrenceCountNotIn(vs ...int) predicate.ManufacturingCase {
	return predicate.ManufacturingCase(sql.FieldNotIn(FieldAnomalyTypeRecurrenceCount, vs...))
}

// AnomalyTypeRecurrenceCountGT applies the GT predicate on the "anomaly_type_recurrence_count" field.
func AnomalyTypeRecurrenceCountGT(v int) predicate.ManufacturingCase {
	return predicate.ManufacturingCase(sql.FieldGT(FieldAnomalyTypeRecurrenceCount, v))
}

// AnomalyTypeRecurrenceCountGTE applies the GTE predicate on the "anomaly_type_recurrence_count" field.
func AnomalyTypeRecurrenceCountGTE(v int) predicate.ManufacturingCase {
	return predicate.ManufacturingCase(sql.FieldGTE(FieldAnomalyTypeRecurrenceCount, v))
}

// AnomalyTypeRecurrenceCountLT applies the LT predicate on the "anomaly_type_recurrence_count" field.
func AnomalyTypeRecurrenceCountLT(v int) predicate.ManufacturingCase {
	return predicate.ManufacturingCase(sql.FieldLT(FieldAnomalyTypeRecurrenceCount, v))
}

// AnomalyTypeRecurrenceCountLTE applies the LTE predicate on the "anomaly_type_recurrence_count" field.
func AnomalyTypeRecurrenceCountLTE(v int) predicate.ManufacturingCase {
	return predicate.ManufacturingCase(sql.FieldLTE(FieldAnomalyTypeRecurrenceCount, v))
}

// ComponentRecurrenceCountEQ applies the EQ predicate on the "component_recurrence_count" field.
func ComponentRecurrenceCountEQ(v int) predicate.ManufacturingCase {
	return predicate.ManufacturingCase(sql.FieldEQ(FieldComponentRecurrenceCount, v))
}

// ComponentRecurrenceCountNEQ applies the NEQ predicate on the "component_recurrence_count" field.
func ComponentRecurrenceCountNEQ(v int) predicate.ManufacturingCase {
	return predicate.ManufacturingCase(sql.FieldNEQ(FieldComponentRecurrenceCount, v))
}

// ComponentRecurrenceCountIn applies the In predicate on the "component_recurrence_count" field.
func ComponentRecurrenceCountIn(vs ...int) predicate.ManufacturingCase {
	return predicate.ManufacturingCase(sql.FieldIn(FieldComponentRecurrenceCount, vs...))
}

// ComponentRecurrenceCountNotIn applies the NotIn predicate on the "component_recurrence_count" field.
func ComponentRecurrenceCountNotIn(vs ...int) predicate.ManufacturingCase {
	return predicate.ManufacturingCase(sql.FieldNotIn(FieldComponentRecurrenceCount, vs...))
}

// ComponentRecurrenceCountGT applies the GT predicate on the "component_recurrence_count" field.
func ComponentRecurrenceCountGT(v int) predicate.ManufacturingCase {
	return predicate.ManufacturingCase(sql.FieldGT(FieldComponentRecurrenceCount, v))
}

// ComponentRecurrenceCountGTE applies the GTE predicate on the "component_recurrence_count" field.
func ComponentRecurrenceCountGTE(v int) predicate.ManufacturingCase {
	return predicate.ManufacturingCase(sql.FieldGTE(FieldComponentRecurrenceCount, v))
}

// ComponentRecurrenceCountLT applies the LT predicate on the "component_recurrence_count" field.
func ComponentRecurrenceCountLT(v int) predicate.ManufacturingCase {
	return predicate.ManufacturingCase(sql.FieldLT(FieldComponentRecurrenceCount, v))
}

// ComponentRecurrenceCountLTE applies the LTE predicate on the "component_recurrence_count" field.
func ComponentRecurrenceCountLTE(v int) predicate.ManufacturingCase {
	return predicate.ManufacturingCase(sql.FieldLTE(FieldComponentRecurrenceCount, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ManufacturingCase {
	return predicate.ManufacturingCase(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ManufacturingCase {
	return predicate.ManufacturingCase(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ManufacturingCase {
	return predicate.ManufacturingCase(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ManufacturingCase {
	return predicate.ManufacturingCase(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ManufacturingCase {
	return predicate.ManufacturingCase(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ManufacturingCase {
	return predicate.ManufacturingCase(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ManufacturingCase {
	return predicate.ManufacturingCase(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ManufacturingCase {
	return predicate.ManufacturingCase(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ManufacturingCase) predicate.ManufacturingCase {
	return predicate.ManufacturingCase(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ManufacturingCase) predicate.ManufacturingCase {
	return predicate.ManufacturingCase(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ManufacturingCase) predicate.ManufacturingCase {
	return predicate.ManufacturingCase(sql.NotPredicates(p))
}
