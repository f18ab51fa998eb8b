// Code generated by ent, DO NOT EDIT.

package feedbackcase

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/fleetsense/fleetsense/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.FeedbackCase {
	return predicate.FeedbackCase(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.FeedbackCase {
	return predicate.FeedbackCase(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.FeedbackCase {
	return predicate.FeedbackCase(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.FeedbackCase {
	return predicate.FeedbackCase(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.FeedbackCase {
	return predicate.FeedbackCase(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.FeedbackCase {
	return predicate.FeedbackCase(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.FeedbackCase {
	return predicate.FeedbackCase(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.FeedbackCase {
	return predicate.FeedbackCase(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.FeedbackCase {
	return predicate.FeedbackCase(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.FeedbackCase {
	return predicate.FeedbackCase(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.FeedbackCase {
	return predicate.FeedbackCase(sql.FieldContainsFold(FieldID, id))
}

// BookingID applies equality check predicate on the "booking_id" field. It's identical to BookingIDEQ.
func BookingID(v string) predicate.FeedbackCase {
	return predicate.FeedbackCase(sql.FieldEQ(FieldBookingID, v))
}

// CaseID applies equality check predicate on the "case_id" field. It's identical to CaseIDEQ.
func CaseID(v string) predicate.FeedbackCase {
	return predicate.FeedbackCase(sql.FieldEQ(FieldCaseID, v))
}

// VehicleID applies equality check predicate on the "vehicle_id" field. It's identical to VehicleIDEQ.
func VehicleID(v string) predicate.FeedbackCase {
	return predicate.FeedbackCase(sql.FieldEQ(FieldVehicleID, v))
}

// CeiScore applies equality check predicate on the "cei_score" field. It's identical to CeiScoreEQ.
func CeiScore(v float64) predicate.FeedbackCase {
	return predicate.FeedbackCase(sql.FieldEQ(FieldCeiScore, v))
}

// RecommendedRetrain applies equality check predicate on the "recommended_retrain" field. It's identical to RecommendedRetrainEQ.
func RecommendedRetrain(v bool) predicate.FeedbackCase {
	return predicate.FeedbackCase(sql.FieldEQ(FieldRecommendedRetrain, v))
}

// TechnicianNotes applies equality check predicate on the "technician_notes" field. It's identical to TechnicianNotesEQ.
func TechnicianNotes(v string) predicate.FeedbackCase {
	return predicate.FeedbackCase(sql.FieldEQ(FieldTechnicianNotes, v))
}

// CustomerRating applies equality check predicate on the "customer_rating" field. It's identical to CustomerRatingEQ.
func CustomerRating(v int) predicate.FeedbackCase {
	return predicate.FeedbackCase(sql.FieldEQ(FieldCustomerRating, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.FeedbackCase {
	return predicate.FeedbackCase(sql.FieldEQ(FieldCreatedAt, v))
}

// BookingIDEQ applies the EQ predicate on the "booking_id" field.
func BookingIDEQ(v string) predicate.FeedbackCase {
	return predicate.FeedbackCase(sql.FieldEQ(FieldBookingID, v))
}

// BookingIDNEQ applies the NEQ predicate on the "booking_id" field.
func BookingIDNEQ(v string) predicate.FeedbackCase {
	return predicate.FeedbackCase(sql.FieldNEQ(FieldBookingID, v))
}

// BookingIDIn applies the In predicate on the "booking_id" field.
func BookingIDIn(vs ...string) predicate.FeedbackCase {
	return predicate.FeedbackCase(sql.FieldIn(FieldBookingID, vs...))
}

// BookingIDNotIn applies the NotIn predicate on the "booking_id" field.
func BookingIDNotIn(vs ...string) predicate.FeedbackCase {
	return predicate.FeedbackCase(sql.FieldNotIn(FieldBookingID, vs...))
}

// BookingIDGT applies the GT predicate on the "booking_id" field.
func BookingIDGT(v string) predicate.FeedbackCase {
	return predicate.FeedbackCase(sql.FieldGT(FieldBookingID, v))
}

// BookingIDGTE applies the GTE predicate on the "booking_id" field.
func BookingIDGTE(v string) predicate.FeedbackCase {
	return predicate.FeedbackCase(sql.FieldGTE(FieldBookingID, v))
}

// BookingIDLT applies the LT predicate on the "booking_id" field.
func BookingIDLT(v string) predicate.FeedbackCase {
	return predicate.FeedbackCase(sql.FieldLT(FieldBookingID, v))
}

// BookingIDLTE applies the LTE predicate on the "booking_id" field.
func BookingIDLTE(v string) predicate.FeedbackCase {
	return predicate.FeedbackCase(sql.FieldLTE(FieldBookingID, v))
}

// BookingIDContains applies the Contains predicate on the "booking_id" field.
func BookingIDContains(v string) predicate.FeedbackCase {
	return predicate.FeedbackCase(sql.FieldContains(FieldBookingID, v))
}

// BookingIDHasPrefix applies the HasPrefix predicate on the "booking_id" field.
func BookingIDHasPrefix(v string) predicate.FeedbackCase {
	return predicate.FeedbackCase(sql.FieldHasPrefix(FieldBookingID, v))
}

// BookingIDHasSuffix applies the HasSuffix predicate on the "booking_id" field.
func BookingIDHasSuffix(v string) predicate.FeedbackCase {
	return predicate.FeedbackCase(sql.FieldHasSuffix(FieldBookingID, v))
}

// BookingIDEqualFold applies the EqualFold predicate on the "booking_id" field.
func BookingIDEqualFold(v string) predicate.FeedbackCase {
	return predicate.FeedbackCase(sql.FieldEqualFold(FieldBookingID, v))
}

// BookingIDContainsFold applies the ContainsFold predicate on the "booking_id" field.
func BookingIDContainsFold(v string) predicate.FeedbackCase {
	return predicate.FeedbackCase(sql.FieldContainsFold(FieldBookingID, v))
}

// CaseIDEQ applies the EQ predicate on the "case_id" field.
func CaseIDEQ(v string) predicate.FeedbackCase {
	return predicate.FeedbackCase(sql.FieldEQ(FieldCaseID, v))
}

// CaseIDNEQ applies the NEQ predicate on the "case_id" field.
func CaseIDNEQ(v string) predicate.FeedbackCase {
	return predicate.FeedbackCase(sql.FieldNEQ(FieldCaseID, v))
}

// CaseIDIn applies the In predicate on the "case_id" field.
func CaseIDIn(vs ...string) predicate.FeedbackCase {
	return predicate.FeedbackCase(sql.FieldIn(FieldCaseID, vs...))
}

// CaseIDNotIn applies the NotIn predicate on the "case_id" field.
func CaseIDNotIn(vs ...string) predicate.FeedbackCase {
	return predicate.FeedbackCase(sql.FieldNotIn(FieldCaseID, vs...))
}

// CaseIDGT applies the GT predicate on the "case_id" field.
func CaseIDGT(v string) predicate.FeedbackCase {
	return predicate.FeedbackCase(sql.FieldGT(FieldCaseID, v))
}

// CaseIDGTE applies the GTE predicate on the "case_id" field.
func CaseIDGTE(v string) predicate.FeedbackCase {
	return predicate.FeedbackCase(sql.FieldGTE(FieldCaseID, v))
}

// CaseIDLT applies the LT predicate on the "case_id" field.
func CaseIDLT(v string) predicate.FeedbackCase {
	return predicate.FeedbackCase(sql.FieldLT(FieldCaseID, v))
}

// CaseIDLTE applies the LTE predicate on the "case_id" field.
func CaseIDLTE(v string) predicate.FeedbackCase {
	return predicate.FeedbackCase(sql.FieldLTE(FieldCaseID, v))
}

// CaseIDContains applies the Contains predicate on the "case_id" field.
func CaseIDContains(v string) predicate.FeedbackCase {
	return predicate.FeedbackCase(sql.FieldContains(FieldCaseID, v))
}

// CaseIDHasPrefix applies the HasPrefix predicate on the "case_id" field.
func CaseIDHasPrefix(v string) predicate.FeedbackCase {
	return predicate.FeedbackCase(sql.FieldHasPrefix(FieldCaseID, v))
}

// CaseIDHasSuffix applies the HasSuffix predicate on the "case_id" field.
func CaseIDHasSuffix(v string) predicate.FeedbackCase {
	return predicate.FeedbackCase(sql.FieldHasSuffix(FieldCaseID, v))
}

// CaseIDEqualFold applies the EqualFold predicate on the "case_id" field.
func CaseIDEqualFold(v string) predicate.FeedbackCase {
	return predicate.FeedbackCase(sql.FieldEqualFold(FieldCaseID, v))
}

// CaseIDContainsFold applies the ContainsFold predicate on the "case_id" field.
func CaseIDContainsFold(v string) predicate.FeedbackCase {
	return predicate.FeedbackCase(sql.FieldContainsFold(FieldCaseID, v))
}

// VehicleIDEQ applies the EQ predicate on the "vehicle_id" field.
func VehicleIDEQ(v string) predicate.FeedbackCase {
	return predicate.FeedbackCase(sql.FieldEQ(FieldVehicleID, v))
}

// VehicleIDNEQ applies the NEQ predicate on the "vehicle_id" field.
func VehicleIDNEQ(v string) predicate.FeedbackCase {
	return predicate.FeedbackCase(sql.FieldNEQ(FieldVehicleID, v))
}

// VehicleIDIn applies the In predicate on the "vehicle_id" field.
func VehicleIDIn(vs ...string) predicate.FeedbackCase {
	return predicate.FeedbackCase(sql.FieldIn(FieldVehicleID, vs...))
}

// VehicleIDNotIn applies the NotIn predicate on the "vehicle_id" field.
func VehicleIDNotIn(vs ...string) predicate.FeedbackCase {
	return predicate.FeedbackCase(sql.FieldNotIn(FieldVehicleID, vs...))
}

// VehicleIDGT applies the GT predicate on the "vehicle_id" field.
func VehicleIDGT(v string) predicate.FeedbackCase {
	return predicate.FeedbackCase(sql.FieldGT(FieldVehicleID, v))
}

// VehicleIDGTE applies the GTE predicate on the "vehicle_id" field.
func VehicleIDGTE(v string) predicate.FeedbackCase {
	return predicate.FeedbackCase(sql.FieldGTE(FieldVehicleID, v))
}

// VehicleIDLT applies the LT predicate on the "vehicle_id" field.
func VehicleIDLT(v string) predicate.FeedbackCase {
	return predicate.FeedbackCase(sql.FieldLT(FieldVehicleID, v))
}

// VehicleIDLTE applies the LTE predicate on the "vehicle_id" field.
func VehicleIDLTE(v string) predicate.FeedbackCase {
	return predicate.FeedbackCase(sql.FieldLTE(FieldVehicleID, v))
}

// VehicleIDContains applies the Contains predicate on the "vehicle_id" field.
func VehicleIDContains(v string) predicate.FeedbackCase {
	return predicate.FeedbackCase(sql.FieldContains(FieldVehicleID, v))
}

// VehicleIDHasPrefix applies the HasPrefix predicate on the "vehicle_id" field.
func VehicleIDHasPrefix(v string) predicate.FeedbackCase {
	return predicate.FeedbackCase(sql.FieldHasPrefix(FieldVehicleID, v))
}

// VehicleIDHasSuffix applies the HasSuffix predicate on the "vehicle_id" field.
func VehicleIDHasSuffix(v string) predicate.FeedbackCase {
	return predicate.FeedbackCase(sql.FieldHasSuffix(FieldVehicleID, v))
}

// VehicleIDEqualFold applies the EqualFold predicate on the "vehicle_id" field.
func VehicleIDEqualFold(v string) predicate.FeedbackCase {
	return predicate.FeedbackCase(sql.FieldEqualFold(FieldVehicleID, v))
}

// VehicleIDContainsFold applies the ContainsFold predicate on the "vehicle_id" field.
func VehicleIDContainsFold(v string) predicate.FeedbackCase {
	return predicate.FeedbackCase(sql.FieldContainsFold(FieldVehicleID, v))
}

// CeiScoreEQ applies the EQ predicate on the "cei_score" field.
func CeiScoreEQ(v float64) predicate.FeedbackCase {
	return predicate.FeedbackCase(sql.FieldEQ(FieldCeiScore, v))
}

// CeiScoreNEQ applies the NEQ predicate on the "cei_score" field.
func CeiScoreNEQ(v float64) predicate.FeedbackCase {
	return predicate.FeedbackCase(sql.FieldNEQ(FieldCeiScore, v))
}

// CeiScoreIn applies the In predicate on the "cei_score" field.
func CeiScoreIn(vs ...float64) predicate.FeedbackCase {
	return predicate.FeedbackCase(sql.FieldIn(FieldCeiScore, vs...))
}

// CeiScoreNotIn applies the NotIn predicate on the "cei_score" field.
func CeiScoreNotIn(vs ...float64) predicate.FeedbackCase {
	return predicate.FeedbackCase(sql.FieldNotIn(FieldCeiScore, vs...))
}

// CeiScoreGT applies the GT predicate on the "cei_score" field.
func CeiScoreGT(v float64) predicate.FeedbackCase {
	return predicate.FeedbackCase(sql.FieldGT(FieldCeiScore, v))
}

// CeiScoreGTE applies the GTE predicate on the "cei_score" field.
func CeiScoreGTE(v float64) predicate.FeedbackCase {
	return predicate.FeedbackCase(sql.FieldGTE(FieldCeiScore, v))
}

// CeiScoreLT applies the LT predicate on the "cei_score" field.
func CeiScoreLT(v float64) predicate.FeedbackCase {
	return predicate.FeedbackCase(sql.FieldLT(FieldCeiScore, v))
}

// CeiScoreLTE applies the LTE predicate on the "cei_score" field.
func CeiScoreLTE(v float64) predicate.FeedbackCase {
	return predicate.FeedbackCase(sql.FieldLTE(FieldCeiScore, v))
}

// ValidationLabelEQ applies the EQ predicate on the "validation_label" field.
func ValidationLabelEQ(v ValidationLabel) predicate.FeedbackCase {
	return predicate.FeedbackCase(sql.FieldEQ(FieldValidationLabel, v))
}

// ValidationLabelNEQ applies the NEQ predicate on the "validation_label" field.
func ValidationLabelNEQ(v ValidationLabel) predicate.FeedbackCase {
	return predicate.FeedbackCase(sql.FieldNEQ(FieldValidationLabel, v))
}

// ValidationLabelIn applies the In predicate on the "validation_label" field.
func ValidationLabelIn(vs ...ValidationLabel) predicate.FeedbackCase {
	return predicate.FeedbackCase(sql.FieldIn(FieldValidationLabel, vs...))
}

// ValidationLabelNotIn applies the NotIn predicate on the "validation_label" field.
func ValidationLabelNotIn(vs ...ValidationLabel) predicate.FeedbackCase {
	return predicate.FeedbackCase(sql.FieldNotIn(FieldValidationLabel, vs...))
}

// RecommendedRetrainEQ applies the EQ predicate on the "recommended_retrain" field.
func RecommendedRetrainEQ(v bool) predicate.FeedbackCase {
	return predicate.FeedbackCase(sql.FieldEQ(FieldRecommendedRetrain, v))
}

// RecommendedRetrainNEQ applies the NEQ predicate on the "recommended_retrain" field.
func RecommendedRetrainNEQ(v bool) predicate.FeedbackCase {
	return predicate.FeedbackCase(sql.FieldNEQ(FieldRecommendedRetrain, v))
}

// TechnicianNotesEQ applies the EQ predicate on the "technician_notes" field.
func TechnicianNotesEQ(v string) predicate.FeedbackCase {
	return predicate.FeedbackCase(sql.FieldEQ(FieldTechnicianNotes, v))
}

// TechnicianNotesNEQ applies the NEQ predicate on the "technician_notes" field.
func TechnicianNotesNEQ(v string) predicate.FeedbackCase {
	return predicate.FeedbackCase(sql.FieldNEQ(FieldTechnicianNotes, v))
}

// TechnicianNotesIn applies the In predicate on the "technician_notes" field.
func TechnicianNotesIn(vs ...string) predicate.FeedbackCase {
	return predicate.FeedbackCase(sql.FieldIn(FieldTechnicianNotes, vs...))
}

// TechnicianNotesNotIn applies the NotIn predicate on the "technician_notes" field.
func TechnicianNotesNotIn(vs ...string) predicate.FeedbackCase {
	return predicate.FeedbackCase(sql.FieldNotIn(FieldTechnicianNotes, vs...))
}

// TechnicianNotesGT applies the GT predicate on the "technician_notes" field.
func TechnicianNotesGT(v string) predicate.FeedbackCase {
	return predicate.FeedbackCase(sql.FieldGT(FieldTechnicianNotes, v))
}

// TechnicianNotesGTE applies the GTE predicate on the "technician_notes" field.
func TechnicianNotesGTE(v string) predicate.FeedbackCase {
	return predicate.FeedbackCase(sql.FieldGTE(FieldTechnicianNotes, v))
}

// TechnicianNotesLT applies the LT predicate on the "technician_notes" field.
func TechnicianNotesLT(v string) predicate.FeedbackCase {
	return predicate.FeedbackCase(sql.FieldLT(FieldTechnicianNotes, v))
}

// TechnicianNotesLTE applies the LTE predicate on the "technician_notes" field.
func TechnicianNotesLTE(v string) predicate.FeedbackCase {
	return predicate.FeedbackCase(sql.FieldLTE(FieldTechnicianNotes, v))
}

// TechnicianNotesContains applies the Contains predicate on the "technician_notes" field.
func TechnicianNotesContains(v string) predicate.FeedbackCase {
	return predicate.FeedbackCase(sql.FieldContains(FieldTechnicianNotes, v))
}

// TechnicianNotesHasPrefix applies the HasPrefix predicate on the "technician_notes" field.
func TechnicianNotesHasPrefix(v string) predicate.FeedbackCase {
	return predicate.FeedbackCase(sql.FieldHasPrefix(FieldTechnicianNotes, v))
}

// TechnicianNotesHasSuffix applies the HasSuffix predicate on the "technician_notes" field.
func TechnicianNotesHasSuffix(v string) predicate.FeedbackCase {
	return predicate.FeedbackCase(sql.FieldHasSuffix(FieldTechnicianNotes, v))
}

// TechnicianNotesIsNil applies the IsNil predicate on the "technician_notes" field.
func TechnicianNotesIsNil() predicate.FeedbackCase {
	return predicate.FeedbackCase(sql.FieldIsNull(FieldTechnicianNotes))
}

// TechnicianNotesNotNil applies the NotNil predicate on the "technician_notes" field.
func TechnicianNotesNotNil() predicate.FeedbackCase {
	return predicate.FeedbackCase(sql.FieldNotNull(FieldTechnicianNotes))
}

// TechnicianNotesEqualFold applies the EqualFold predicate on the "technician_notes" field.
func TechnicianNotesEqualFold(v string) predicate.FeedbackCase {
	return predicate.FeedbackCase(sql.FieldEqualFold(FieldTechnicianNotes, v))
}

// TechnicianNotesContainsFold applies the ContainsFold predicate on the "technician_notes" field.
func TechnicianNotesContainsFold(v string) predicate.FeedbackCase {
	return predicate.FeedbackCase(sql.FieldContainsFold(FieldTechnicianNotes, v))
}

// CustomerRatingEQ applies the EQ predicate on the "customer_rating" field.
func CustomerRatingEQ(v int) predicate.FeedbackCase {
	return predicate.FeedbackCase(sql.FieldEQ(FieldCustomerRating, v))
}

// CustomerRatingNEQ applies the NEQ predicate on the "customer_rating" field.
func CustomerRatingNEQ(v int) predicate.FeedbackCase {
	return predicate.FeedbackCase(sql.FieldNEQ(FieldCustomerRating, v))
}

// CustomerRatingIn applies the In predicate on the "customer_rating" field.
func CustomerRatingIn(vs ...int) predicate.FeedbackCase {
	return predicate.FeedbackCase(sql.FieldIn(FieldCustomerRating, vs...))
}

// CustomerRatingNotIn applies the NotIn predicate on the "customer_rating" field.
func CustomerRatingNotIn(vs ...int) predicate.FeedbackCase {
	return predicate.FeedbackCase(sql.FieldNotIn(FieldCustomerRating, vs...))
}

// CustomerRatingGT applies the GT predicate on the "customer_rating" field.
func CustomerRatingGT(v int) predicate.FeedbackCase {
	return predicate.FeedbackCase(sql.FieldGT(FieldCustomerRating, v))
}

// CustomerRatingGTE applies the GTE predicate on the "customer_rating" field.
func CustomerRatingGTE(v int) predicate.FeedbackCase {
	return predicate.FeedbackCase(sql.FieldGTE(FieldCustomerRating, v))
}

// CustomerRatingLT applies the LT predicate on the "customer_rating" field.
func CustomerRatingLT(v int) predicate.FeedbackCase {
	return predicate.FeedbackCase(sql.FieldLT(FieldCustomerRating, v))
}

// CustomerRatingLTE applies the LTE predicate on the "customer_rating" field.
func CustomerRatingLTE(v int) predicate.FeedbackCase {
	return predicate.FeedbackCase(sql.FieldLTE(FieldCustomerRating, v))
}

// CustomerRatingIsNil applies the IsNil predicate on the "customer_rating" field.
func CustomerRatingIsNil() predicate.FeedbackCase {
	return predicate.FeedbackCase(sql.FieldIsNull(FieldCustomerRating))
}

// CustomerRatingNotNil applies the NotNil predicate on the "customer_rating" field.
func CustomerRatingNotNil() predicate.FeedbackCase {
	return predicate.FeedbackCase(sql.FieldNotNull(FieldCustomerRating))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.FeedbackCase {
	return predicate.FeedbackCase(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.FeedbackCase {
	return predicate.FeedbackCase(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.FeedbackCase {
	return predicate.FeedbackCase(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.FeedbackCase {
	return predicate.FeedbackCase(sql.FieldNotIn(FieldStatus, vs...))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.FeedbackCase {
	return predicate.FeedbackCase(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.FeedbackCase {
	return predicate.FeedbackCase(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.FeedbackCase {
	return predicate.FeedbackCase(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.FeedbackCase {
	return predicate.FeedbackCase(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.FeedbackCase {
	return predicate.FeedbackCase(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.FeedbackCase {
	return predicate.FeedbackCase(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.FeedbackCase {
	return predicate.FeedbackCase(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.FeedbackCase {
	return predicate.FeedbackCase(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.FeedbackCase) predicate.FeedbackCase {
	return predicate.FeedbackCase(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.FeedbackCase) predicate.FeedbackCase {
	return predicate.FeedbackCase(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.FeedbackCase) predicate.FeedbackCase {
	return predicate.FeedbackCase(sql.NotPredicates(p))
}
