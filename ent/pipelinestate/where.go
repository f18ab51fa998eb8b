// Code generated by ent, DO NOT EDIT.

package pipelinestate

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/fleetsense/fleetsense/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.PipelineState {
	return predicate.PipelineState(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.PipelineState {
	return predicate.PipelineState(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.PipelineState {
	return predicate.PipelineState(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.PipelineState {
	return predicate.PipelineState(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.PipelineState {
	return predicate.PipelineState(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.PipelineState {
	return predicate.PipelineState(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.PipelineState {
	return predicate.PipelineState(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.PipelineState {
	return predicate.PipelineState(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.PipelineState {
	return predicate.PipelineState(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.PipelineState {
	return predicate.PipelineState(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.PipelineState {
	return predicate.PipelineState(sql.FieldContainsFold(FieldID, id))
}

// CurrentStage applies equality check predicate on the "current_stage" field. It's identical to CurrentStageEQ.
func CurrentStage(v string) predicate.PipelineState {
	return predicate.PipelineState(sql.FieldEQ(FieldCurrentStage, v))
}

// NextStage applies equality check predicate on the "next_stage" field. It's identical to NextStageEQ.
func NextStage(v string) predicate.PipelineState {
	return predicate.PipelineState(sql.FieldEQ(FieldNextStage, v))
}

// Confidence applies equality check predicate on the "confidence" field. It's identical to ConfidenceEQ.
func Confidence(v float64) predicate.PipelineState {
	return predicate.PipelineState(sql.FieldEQ(FieldConfidence, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.PipelineState {
	return predicate.PipelineState(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.PipelineState {
	return predicate.PipelineState(sql.FieldEQ(FieldUpdatedAt, v))
}

// CurrentStageEQ applies the EQ predicate on the "current_stage" field.
func CurrentStageEQ(v string) predicate.PipelineState {
	return predicate.PipelineState(sql.FieldEQ(FieldCurrentStage, v))
}

// CurrentStageNEQ applies the NEQ predicate on the "current_stage" field.
func CurrentStageNEQ(v string) predicate.PipelineState {
	return predicate.PipelineState(sql.FieldNEQ(FieldCurrentStage, v))
}

// CurrentStageIn applies the In predicate on the "current_stage" field.
func CurrentStageIn(vs ...string) predicate.PipelineState {
	return predicate.PipelineState(sql.FieldIn(FieldCurrentStage, vs...))
}

// CurrentStageNotIn applies the NotIn predicate on the "current_stage" field.
func CurrentStageNotIn(vs ...string) predicate.PipelineState {
	return predicate.PipelineState(sql.FieldNotIn(FieldCurrentStage, vs...))
}

// CurrentStageGT applies the GT predicate on the "current_stage" field.
func CurrentStageGT(v string) predicate.PipelineState {
	return predicate.PipelineState(sql.FieldGT(FieldCurrentStage, v))
}

// CurrentStageGTE applies the GTE predicate on the "current_stage" field.
func CurrentStageGTE(v string) predicate.PipelineState {
	return predicate.PipelineState(sql.FieldGTE(FieldCurrentStage, v))
}

// CurrentStageLT applies the LT predicate on the "current_stage" field.
func CurrentStageLT(v string) predicate.PipelineState {
	return predicate.PipelineState(sql.FieldLT(FieldCurrentStage, v))
}

// CurrentStageLTE applies the LTE predicate on the "current_stage" field.
func CurrentStageLTE(v string) predicate.PipelineState {
	return predicate.PipelineState(sql.FieldLTE(FieldCurrentStage, v))
}

// CurrentStageContains applies the Contains predicate on the "current_stage" field.
func CurrentStageContains(v string) predicate.PipelineState {
	return predicate.PipelineState(sql.FieldContains(FieldCurrentStage, v))
}

// CurrentStageHasPrefix applies the HasPrefix predicate on the "current_stage" field.
func CurrentStageHasPrefix(v string) predicate.PipelineState {
	return predicate.PipelineState(sql.FieldHasPrefix(FieldCurrentStage, v))
}

// CurrentStageHasSuffix applies the HasSuffix predicate on the "current_stage" field.
func CurrentStageHasSuffix(v string) predicate.PipelineState {
	return predicate.PipelineState(sql.FieldHasSuffix(FieldCurrentStage, v))
}

// CurrentStageEqualFold applies the EqualFold predicate on the "current_stage" field.
func CurrentStageEqualFold(v string) predicate.PipelineState {
	return predicate.PipelineState(sql.FieldEqualFold(FieldCurrentStage, v))
}

// CurrentStageContainsFold applies the ContainsFold predicate on the "current_stage" field.
func CurrentStageContainsFold(v string) predicate.PipelineState {
	return predicate.PipelineState(sql.FieldContainsFold(FieldCurrentStage, v))
}

// NextStageEQ applies the EQ predicate on the "next_stage" field.
func NextStageEQ(v string) predicate.PipelineState {
	return predicate.PipelineState(sql.FieldEQ(FieldNextStage, v))
}

// NextStageNEQ applies the NEQ predicate on the "next_stage" field.
func NextStageNEQ(v string) predicate.PipelineState {
	return predicate.PipelineState(sql.FieldNEQ(FieldNextStage, v))
}

// NextStageIn applies the In predicate on the "next_stage" field.
func NextStageIn(vs ...string) predicate.PipelineState {
	return predicate.PipelineState(sql.FieldIn(FieldNextStage, vs...))
}

// NextStageNotIn applies the NotIn predicate on the "next_stage" field.
func NextStageNotIn(vs ...string) predicate.PipelineState {
	return predicate.PipelineState(sql.FieldNotIn(FieldNextStage, vs...))
}

// NextStageGT applies the GT predicate on the "next_stage" field.
func NextStageGT(v string) predicate.PipelineState {
	return predicate.PipelineState(sql.FieldGT(FieldNextStage, v))
}

// NextStageGTE applies the GTE predicate on the "next_stage" field.
func NextStageGTE(v string) predicate.PipelineState {
	return predicate.PipelineState(sql.FieldGTE(FieldNextStage, v))
}

// NextStageLT applies the LT predicate on the "next_stage" field.
func NextStageLT(v string) predicate.PipelineState {
	return predicate.PipelineState(sql.FieldLT(FieldNextStage, v))
}

// NextStageLTE applies the LTE predicate on the "next_stage" field.
func NextStageLTE(v string) predicate.PipelineState {
	return predicate.PipelineState(sql.FieldLTE(FieldNextStage, v))
}

// NextStageContains applies the Contains predicate on the "next_stage" field.
func NextStageContains(v string) predicate.PipelineState {
	return predicate.PipelineState(sql.FieldContains(FieldNextStage, v))
}

// NextStageHasPrefix applies the HasPrefix predicate on the "next_stage" field.
func NextStageHasPrefix(v string) predicate.PipelineState {
	return predicate.PipelineState(sql.FieldHasPrefix(FieldNextStage, v))
}

// NextStageHasSuffix applies the HasSuffix predicate on the "next_stage" field.
func NextStageHasSuffix(v string) predicate.PipelineState {
	return predicate.PipelineState(sql.FieldHasSuffix(FieldNextStage, v))
}

// NextStageIsNil applies the IsNil predicate on the "next_stage" field.
func NextStageIsNil() predicate.PipelineState {
	return predicate.PipelineState(sql.FieldIsNull(FieldNextStage))
}

// NextStageNotNil applies the NotNil predicate on the "next_stage" field.
func NextStageNotNil() predicate.PipelineState {
	return predicate.PipelineState(sql.FieldNotNull(FieldNextStage))
}

// NextStageEqualFold applies the EqualFold predicate on the "next_stage" field.
func NextStageEqualFold(v string) predicate.PipelineState {
	return predicate.PipelineState(sql.FieldEqualFold(FieldNextStage, v))
}

// NextStageContainsFold applies the ContainsFold predicate on the "next_stage" field.
func NextStageContainsFold(v string) predicate.PipelineState {
	return predicate.PipelineState(sql.FieldContainsFold(FieldNextStage, v))
}

// ConfidenceEQ applies the EQ predicate on the "confidence" field.
func ConfidenceEQ(v float64) predicate.PipelineState {
	return predicate.PipelineState(sql.FieldEQ(FieldConfidence, v))
}

// ConfidenceNEQ applies the NEQ predicate on the "confidence" field.
func ConfidenceNEQ(v float64) predicate.PipelineState {
	return predicate.PipelineState(sql.FieldNEQ(FieldConfidence, v))
}

// ConfidenceIn applies the In predicate on the "confidence" field.
func ConfidenceIn(vs ...float64) predicate.PipelineState {
	return predicate.PipelineState(sql.FieldIn(FieldConfidence, vs...))
}

// ConfidenceNotIn applies the NotIn predicate on the "confidence" field.
func ConfidenceNotIn(vs ...float64) predicate.PipelineState {
	return predicate.PipelineState(sql.FieldNotIn(FieldConfidence, vs...))
}

// ConfidenceGT applies the GT predicate on the "confidence" field.
func ConfidenceGT(v float64) predicate.PipelineState {
	return predicate.PipelineState(sql.FieldGT(FieldConfidence, v))
}

// ConfidenceGTE applies the GTE predicate on the "confidence" field.
func ConfidenceGTE(v float64) predicate.PipelineState {
	return predicate.PipelineState(sql.FieldGTE(FieldConfidence, v))
}

// ConfidenceLT applies the LT predicate on the "confidence" field.
func ConfidenceLT(v float64) predicate.PipelineState {
	return predicate.PipelineState(sql.FieldLT(FieldConfidence, v))
}

// ConfidenceLTE applies the LTE predicate on the "confidence" field.
func ConfidenceLTE(v float64) predicate.PipelineState {
	return predicate.PipelineState(sql.FieldLTE(FieldConfidence, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.PipelineState {
	return predicate.PipelineState(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.PipelineState {
	return predicate.PipelineState(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.PipelineState {
	return predicate.PipelineState(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.PipelineState {
	return predicate.PipelineState(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.PipelineState {
	return predicate.PipelineState(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.PipelineState {
	return predicate.PipelineState(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.PipelineState {
	return predicate.PipelineState(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.PipelineState {
	return predicate.PipelineState(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.PipelineState {
	return predicate.PipelineState(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.PipelineState {
	return predicate.PipelineState(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.PipelineState {
	return predicate.PipelineState(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.PipelineState {
	return predicate.PipelineState(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.PipelineState {
	return predicate.PipelineState(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.PipelineState {
	return predicate.PipelineState(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.PipelineState {
	return predicate.PipelineState(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.PipelineState {
	return predicate.PipelineState(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.PipelineState) predicate.PipelineState {
	return predicate.PipelineState(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.PipelineState) predicate.PipelineState {
	return predicate.PipelineState(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.PipelineState) predicate.PipelineState {
	return predicate.PipelineState(sql.NotPredicates(p))
}
