// Code generated by ent, DO NOT EDIT.

package anomalycase

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/fleetsense/fleetsense/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.AnomalyCase {
	return predicate.AnomalyCase(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.AnomalyCase {
	return predicate.AnomalyCase(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.AnomalyCase {
	return predicate.AnomalyCase(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.AnomalyCase {
	return predicate.AnomalyCase(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.AnomalyCase {
	return predicate.AnomalyCase(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.AnomalyCase {
	return predicate.AnomalyCase(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.AnomalyCase {
	return predicate.AnomalyCase(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.AnomalyCase {
	return predicate.AnomalyCase(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.AnomalyCase {
	return predicate.AnomalyCase(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.AnomalyCase {
	return predicate.AnomalyCase(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.AnomalyCase {
	return predicate.AnomalyCase(sql.FieldContainsFold(FieldID, id))
}

// VehicleID applies equality check predicate on the "vehicle_id" field. It's identical to VehicleIDEQ.
func VehicleID(v string) predicate.AnomalyCase {
	return predicate.AnomalyCase(sql.FieldEQ(FieldVehicleID, v))
}

// AnomalyDetected applies equality check predicate on the "anomaly_detected" field. It's identical to AnomalyDetectedEQ.
func AnomalyDetected(v bool) predicate.AnomalyCase {
	return predicate.AnomalyCase(sql.FieldEQ(FieldAnomalyDetected, v))
}

// SeverityScore applies equality check predicate on the "severity_score" field. It's identical to SeverityScoreEQ.
func SeverityScore(v float64) predicate.AnomalyCase {
	return predicate.AnomalyCase(sql.FieldEQ(FieldSeverityScore, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.AnomalyCase {
	return predicate.AnomalyCase(sql.FieldEQ(FieldCreatedAt, v))
}

// VehicleIDEQ applies the EQ predicate on the "vehicle_id" field.
func VehicleIDEQ(v string) predicate.AnomalyCase {
	return predicate.AnomalyCase(sql.FieldEQ(FieldVehicleID, v))
}

// VehicleIDNEQ applies the NEQ predicate on the "vehicle_id" field.
func VehicleIDNEQ(v string) predicate.AnomalyCase {
	return predicate.AnomalyCase(sql.FieldNEQ(FieldVehicleID, v))
}

// VehicleIDIn applies the In predicate on the "vehicle_id" field.
func VehicleIDIn(vs ...string) predicate.AnomalyCase {
	return predicate.AnomalyCase(sql.FieldIn(FieldVehicleID, vs...))
}

// VehicleIDNotIn applies the NotIn predicate on the "vehicle_id" field.
func VehicleIDNotIn(vs ...string) predicate.AnomalyCase {
	return predicate.AnomalyCase(sql.FieldNotIn(FieldVehicleID, vs...))
}

// VehicleIDGT applies the GT predicate on the "vehicle_id" field.
func VehicleIDGT(v string) predicate.AnomalyCase {
	return predicate.AnomalyCase(sql.FieldGT(FieldVehicleID, v))
}

// VehicleIDGTE applies the GTE predicate on the "vehicle_id" field.
func VehicleIDGTE(v string) predicate.AnomalyCase {
	return predicate.AnomalyCase(sql.FieldGTE(FieldVehicleID, v))
}

// VehicleIDLT applies the LT predicate on the "vehicle_id" field.
func VehicleIDLT(v string) predicate.AnomalyCase {
	return predicate.AnomalyCase(sql.FieldLT(FieldVehicleID, v))
}

// VehicleIDLTE applies the LTE predicate on the "vehicle_id" field.
func VehicleIDLTE(v string) predicate.AnomalyCase {
	return predicate.AnomalyCase(sql.FieldLTE(FieldVehicleID, v))
}

// VehicleIDContains applies the Contains predicate on the "vehicle_id" field.
func VehicleIDContains(v string) predicate.AnomalyCase {
	return predicate.AnomalyCase(sql.FieldContains(FieldVehicleID, v))
}

// VehicleIDHasPrefix applies the HasPrefix predicate on the "vehicle_id" field.
func VehicleIDHasPrefix(v string) predicate.AnomalyCase {
	return predicate.AnomalyCase(sql.FieldHasPrefix(FieldVehicleID, v))
}

// VehicleIDHasSuffix applies the HasSuffix predicate on the "vehicle_id" field.
func VehicleIDHasSuffix(v string) predicate.AnomalyCase {
	return predicate.AnomalyCase(sql.FieldHasSuffix(FieldVehicleID, v))
}

// VehicleIDEqualFold applies the EqualFold predicate on the "vehicle_id" field.
func VehicleIDEqualFold(v string) predicate.AnomalyCase {
	return predicate.AnomalyCase(sql.FieldEqualFold(FieldVehicleID, v))
}

// VehicleIDContainsFold applies the ContainsFold predicate on the "vehicle_id" field.
func VehicleIDContainsFold(v string) predicate.AnomalyCase {
	return predicate.AnomalyCase(sql.FieldContainsFold(FieldVehicleID, v))
}

// AnomalyDetectedEQ applies the EQ predicate on the "anomaly_detected" field.
func AnomalyDetectedEQ(v bool) predicate.AnomalyCase {
	return predicate.AnomalyCase(sql.FieldEQ(FieldAnomalyDetected, v))
}

// AnomalyDetectedNEQ applies the NEQ predicate on the "anomaly_detected" field.
func AnomalyDetectedNEQ(v bool) predicate.AnomalyCase {
	return predicate.AnomalyCase(sql.FieldNEQ(FieldAnomalyDetected, v))
}

// AnomalyTypeEQ applies the EQ predicate on the "anomaly_type" field.
func AnomalyTypeEQ(v AnomalyType) predicate.AnomalyCase {
	return predicate.AnomalyCase(sql.FieldEQ(FieldAnomalyType, v))
}

// AnomalyTypeNEQ applies the NEQ predicate on the "anomaly_type" field.
func AnomalyTypeNEQ(v AnomalyType) predicate.AnomalyCase {
	return predicate.AnomalyCase(sql.FieldNEQ(FieldAnomalyType, v))
}

// AnomalyTypeIn applies the In predicate on the "anomaly_type" field.
func AnomalyTypeIn(vs ...AnomalyType) predicate.AnomalyCase {
	return predicate.AnomalyCase(sql.FieldIn(FieldAnomalyType, vs...))
}

// AnomalyTypeNotIn applies the NotIn predicate on the "anomaly_type" field.
func AnomalyTypeNotIn(vs ...AnomalyType) predicate.AnomalyCase {
	return predicate.AnomalyCase(sql.FieldNotIn(FieldAnomalyType, vs...))
}

// AnomalyTypeIsNil applies the IsNil predicate on the "anomaly_type" field.
func AnomalyTypeIsNil() predicate.AnomalyCase {
	return predicate.AnomalyCase(sql.FieldIsNull(FieldAnomalyType))
}

// AnomalyTypeNotNil applies the NotNil predicate on the "anomaly_type" field.
func AnomalyTypeNotNil() predicate.AnomalyCase {
	return predicate.AnomalyCase(sql.FieldNotNull(FieldAnomalyType))
}

// SeverityScoreEQ applies the EQ predicate on the "severity_score" field.
func SeverityScoreEQ(v float64) predicate.AnomalyCase {
	return predicate.AnomalyCase(sql.FieldEQ(FieldSeverityScore, v))
}

// SeverityScoreNEQ applies the NEQ predicate on the "severity_score" field.
func SeverityScoreNEQ(v float64) predicate.AnomalyCase {
	return predicate.AnomalyCase(sql.FieldNEQ(FieldSeverityScore, v))
}

// SeverityScoreIn applies the In predicate on the "severity_score" field.
func SeverityScoreIn(vs ...float64) predicate.AnomalyCase {
	return predicate.AnomalyCase(sql.FieldIn(FieldSeverityScore, vs...))
}

// SeverityScoreNotIn applies the NotIn predicate on the "severity_score" field.
func SeverityScoreNotIn(vs ...float64) predicate.AnomalyCase {
	return predicate.AnomalyCase(sql.FieldNotIn(FieldSeverityScore, vs...))
}

// SeverityScoreGT applies the GT predicate on the "severity_score" field.
func SeverityScoreGT(v float64) predicate.AnomalyCase {
	return predicate.AnomalyCase(sql.FieldGT(FieldSeverityScore, v))
}

// SeverityScoreGTE applies the GTE predicate on the "severity_score" field.
func SeverityScoreGTE(v float64) predicate.AnomalyCase {
	return predicate.AnomalyCase(sql.FieldGTE(FieldSeverityScore, v))
}

// SeverityScoreLT applies the LT predicate on the "severity_score" field.
func SeverityScoreLT(v float64) predicate.AnomalyCase {
	return predicate.AnomalyCase(sql.FieldLT(FieldSeverityScore, v))
}

// SeverityScoreLTE applies the LTE predicate on the "severity_score" field.
func SeverityScoreLTE(v float64) predicate.AnomalyCase {
	return predicate.AnomalyCase(sql.FieldLTE(FieldSeverityScore, v))
}

// SeverityScoreIsNil applies the IsNil predicate on the "severity_score" field.
func SeverityScoreIsNil() predicate.AnomalyCase {
	return predicate.AnomalyCase(sql.FieldIsNull(FieldSeverityScore))
}

// SeverityScoreNotNil applies the NotNil predicate on the "severity_score" field.
func SeverityScoreNotNil() predicate.AnomalyCase {
	return predicate.AnomalyCase(sql.FieldNotNull(FieldSeverityScore))
}

// TelemetryEventIdsIsNil applies the IsNil predicate on the "telemetry_event_ids" field.
func TelemetryEventIdsIsNil() predicate.AnomalyCase {
	return predicate.AnomalyCase(sql.FieldIsNull(FieldTelemetryEventIds))
}

// TelemetryEventIdsNotNil applies the NotNil predicate on the "telemetry_event_ids" field.
func TelemetryEventIdsNotNil() predicate.AnomalyCase {
	return predicate.AnomalyCase(sql.FieldNotNull(FieldTelemetryEventIds))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.AnomalyCase {
	return predicate.AnomalyCase(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.AnomalyCase {
	return predicate.AnomalyCase(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.AnomalyCase {
	return predicate.AnomalyCase(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.AnomalyCase {
	return predicate.AnomalyCase(sql.FieldNotIn(FieldStatus, vs...))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.AnomalyCase {
	return predicate.AnomalyCase(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.AnomalyCase {
	return predicate.AnomalyCase(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.AnomalyCase {
	return predicate.AnomalyCase(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.AnomalyCase {
	return predicate.AnomalyCase(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.AnomalyCase {
	return predicate.AnomalyCase(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.AnomalyCase {
	return predicate.AnomalyCase(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.AnomalyCase {
	return predicate.AnomalyCase(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.AnomalyCase {
	return predicate.AnomalyCase(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.AnomalyCase) predicate.AnomalyCase {
	return predicate.AnomalyCase(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.AnomalyCase) predicate.AnomalyCase {
	return predicate.AnomalyCase(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.AnomalyCase) predicate.AnomalyCase {
	return predicate.AnomalyCase(sql.NotPredicates(p))
}
