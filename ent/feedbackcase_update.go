// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/fleetsense/fleetsense/ent/feedbackcase"
	"github.com/fleetsense/fleetsense/ent/predicate"
)

// FeedbackCaseUpdate is the builder for updating FeedbackCase entities.
type FeedbackCaseUpdate struct {
	config
	hooks    []Hook
	mutation *FeedbackCaseMutation
}

// Where appends a list predicates to the FeedbackCaseUpdate builder.
func (_u *FeedbackCaseUpdate) Where(ps ...predicate.FeedbackCase) *FeedbackCaseUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetBookingID sets the "booking_id" field.
func (_u *FeedbackCaseUpdate) SetBookingID(v string) *FeedbackCaseUpdate {
	_u.mutation.SetBookingID(v)
	return _u
}

// SetNillableBookingID sets the "booking_id" field if the given value is not nil.
func (_u *FeedbackCaseUpdate) SetNillableBookingID(v *string) *FeedbackCaseUpdate {
	if v != nil {
		_u.SetBookingID(*v)
	}
	return _u
}

// SetCaseID sets the "case_id" field.
func (_u *FeedbackCaseUpdate) SetCaseID(v string) *FeedbackCaseUpdate {
	_u.mutation.SetCaseID(v)
	return _u
}

// SetNillableCaseID sets the "case_id" field if the given value is not nil.
func (_u *FeedbackCaseUpdate) SetNillableCaseID(v *string) *FeedbackCaseUpdate {
	if v != nil {
		_u.SetCaseID(*v)
	}
	return _u
}

// SetVehicleID sets the "vehicle_id" field.
func (_u *FeedbackCaseUpdate) SetVehicleID(v string) *FeedbackCaseUpdate {
	_u.mutation.SetVehicleID(v)
	return _u
}

// SetNillableVehicleID sets the "vehicle_id" field if the given value is not nil.
func (_u *FeedbackCaseUpdate) SetNillableVehicleID(v *string) *FeedbackCaseUpdate {
	if v != nil {
		_u.SetVehicleID(*v)
	}
	return _u
}

// SetCeiScore sets the "cei_score" field.
func (_u *FeedbackCaseUpdate) SetCeiScore(v float64) *FeedbackCaseUpdate {
	_u.mutation.ResetCeiScore()
	_u.mutation.SetCeiScore(v)
	return _u
}

// SetNillableCeiScore sets the "cei_score" field if the given value is not nil.
func (_u *FeedbackCaseUpdate) SetNillableCeiScore(v *float64) *FeedbackCaseUpdate {
	if v != nil {
		_u.SetCeiScore(*v)
	}
	return _u
}

// AddCeiScore adds value to the "cei_score" field.
func (_u *FeedbackCaseUpdate) AddCeiScore(v float64) *FeedbackCaseUpdate {
	_u.mutation.AddCeiScore(v)
	return _u
}

// SetValidationLabel sets the "validation_label" field.
func (_u *FeedbackCaseUpdate) SetValidationLabel(v feedbackcase.ValidationLabel) *FeedbackCaseUpdate {
	_u.mutation.SetValidationLabel(v)
	return _u
}

// SetNillableValidationLabel sets the "validation_label" field if the given value is not nil.
func (_u *FeedbackCaseUpdate) SetNillableValidationLabel(v *feedbackcase.ValidationLabel) *FeedbackCaseUpdate {
	if v != nil {
		_u.SetValidationLabel(*v)
	}
	return _u
}

// SetRecommendedRetrain sets the "recommended_retrain" field.
func (_u *FeedbackCaseUpdate) SetRecommendedRetrain(v bool) *FeedbackCaseUpdate {
	_u.mutation.SetRecommendedRetrain(v)
	return _u
}

// SetNillableRecommendedRetrain sets the "recommended_retrain" field if the given value is not nil.
func (_u *FeedbackCaseUpdate) SetNillableRecommendedRetrain(v *bool) *FeedbackCaseUpdate {
	if v != nil {
		_u.SetRecommendedRetrain(*v)
	}
	return _u
}

// SetTechnicianNotes sets the "technician_notes" field.
func (_u *FeedbackCaseUpdate) SetTechnicianNotes(v string) *FeedbackCaseUpdate {
	_u.mutation.SetTechnicianNotes(v)
	return _u
}

// SetNillableTechnicianNotes sets the "technician_notes" field if the given value is not nil.
func (_u *FeedbackCaseUpdate) SetNillableTechnicianNotes(v *string) *FeedbackCaseUpdate {
	if v != nil {
		_u.SetTechnicianNotes(*v)
	}
	return _u
}

// ClearTechnicianNotes clears the value of the "technician_notes" field.
func (_u *FeedbackCaseUpdate) ClearTechnicianNotes() *FeedbackCaseUpdate {
	_u.mutation.ClearTechnicianNotes()
	return _u
}

// SetCustomerRating sets the "customer_rating" field.
func (_u *FeedbackCaseUpdate) SetCustomerRating(v int) *FeedbackCaseUpdate {
	_u.mutation.ResetCustomerRating()
	_u.mutation.SetCustomerRating(v)
	return _u
}

// SetNillableCustomerRating sets the "customer_rating" field if the given value is not nil.
func (_u *FeedbackCaseUpdate) SetNillableCustomerRating(v *int) *FeedbackCaseUpdate {
	if v != nil {
		_u.SetCustomerRating(*v)
	}
	return _u
}

// AddCustomerRating adds value to the "customer_rating" field.
func (_u *FeedbackCaseUpdate) AddCustomerRating(v int) *FeedbackCaseUpdate {
	_u.mutation.AddCustomerRating(v)
	return _u
}

// ClearCustomerRating clears the value of the "customer_rating" field.
func (_u *FeedbackCaseUpdate) ClearCustomerRating() *FeedbackCaseUpdate {
	_u.mutation.ClearCustomerRating()
	return _u
}

// SetStatus sets the "status" field.
func (_u *FeedbackCaseUpdate) SetStatus(v feedbackcase.Status) *FeedbackCaseUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *FeedbackCaseUpdate) SetNillableStatus(v *feedbackcase.Status) *FeedbackCaseUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// Mutation returns the FeedbackCaseMutation object of the builder.
func (_u *FeedbackCaseUpdate) Mutation() *FeedbackCaseMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *FeedbackCaseUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FeedbackCaseUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *FeedbackCaseUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FeedbackCaseUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *FeedbackCaseUpdate) check() error {
	if v, ok := _u.mutation.ValidationLabel(); ok {
		if err := feedbackcase.ValidationLabelValidator(v); err != nil {
			return &ValidationError{Name: "validation_label", err: fmt.Errorf(`ent: validator failed for field "FeedbackCase.validation_label": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := feedbackcase.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "FeedbackCase.status": %w`, err)}
		}
	}
	return nil
}

func (_u *FeedbackCaseUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(feedbackcase.Table, feedbackcase.Columns, sqlgraph.NewFieldSpec(feedbackcase.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.BookingID(); ok {
		_spec.SetField(feedbackcase.FieldBookingID, field.TypeString, value)
	}
	if value, ok := _u.mutation.CaseID(); ok {
		_spec.SetField(feedbackcase.FieldCaseID, field.TypeString, value)
	}
	if value, ok := _u.mutation.VehicleID(); ok {
		_spec.SetField(feedbackcase.FieldVehicleID, field.TypeString, value)
	}
	if value, ok := _u.mutation.CeiScore(); ok {
		_spec.SetField(feedbackcase.FieldCeiScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCeiScore(); ok {
		_spec.AddField(feedbackcase.FieldCeiScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ValidationLabel(); ok {
		_spec.SetField(feedbackcase.FieldValidationLabel, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.RecommendedRetrain(); ok {
		_spec.SetField(feedbackcase.FieldRecommendedRetrain, field.TypeBool, value)
	}
	if value, ok := _u.mutation.TechnicianNotes(); ok {
		_spec.SetField(feedbackcase.FieldTechnicianNotes, field.TypeString, value)
	}
	if _u.mutation.TechnicianNotesCleared() {
		_spec.ClearField(feedbackcase.FieldTechnicianNotes, field.TypeString)
	}
	if value, ok := _u.mutation.CustomerRating(); ok {
		_spec.SetField(feedbackcase.FieldCustomerRating, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCustomerRating(); ok {
		_spec.AddField(feedbackcase.FieldCustomerRating, field.TypeInt, value)
	}
	if _u.mutation.CustomerRatingCleared() {
		_spec.ClearField(feedbackcase.FieldCustomerRating, field.TypeInt)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(feedbackcase.FieldStatus, field.TypeEnum, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{feedbackcase.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// FeedbackCaseUpdateOne is the builder for updating a single FeedbackCase entity.
type FeedbackCaseUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *FeedbackCaseMutation
}

// SetBookingID sets the "booking_id" field.
func (_u *FeedbackCaseUpdateOne) SetBookingID(v string) *FeedbackCaseUpdateOne {
	_u.mutation.SetBookingID(v)
	return _u
}

// SetNillableBookingID sets the "booking_id" field if the given value is not nil.
func (_u *FeedbackCaseUpdateOne) SetNillableBookingID(v *string) *FeedbackCaseUpdateOne {
	if v != nil {
		_u.SetBookingID(*v)
	}
	return _u
}

// SetCaseID sets the "case_id" field.
func (_u *FeedbackCaseUpdateOne) SetCaseID(v string) *FeedbackCaseUpdateOne {
	_u.mutation.SetCaseID(v)
	return _u
}

// SetNillableCaseID sets the "case_id" field if the given value is not nil.
func (_u *FeedbackCaseUpdateOne) SetNillableCaseID(v *string) *FeedbackCaseUpdateOne {
	if v != nil {
		_u.SetCaseID(*v)
	}
	return _u
}

// SetVehicleID sets the "vehicle_id" field.
func (_u *FeedbackCaseUpdateOne) SetVehicleID(v string) *FeedbackCaseUpdateOne {
	_u.mutation.SetVehicleID(v)
	return _u
}

// SetNillableVehicleID sets the "vehicle_id" field if the given value is not nil.
func (_u *FeedbackCaseUpdateOne) SetNillableVehicleID(v *string) *FeedbackCaseUpdateOne {
	if v != nil {
		_u.SetVehicleID(*v)
	}
	return _u
}

// SetCeiScore sets the "cei_score" field.
func (_u *FeedbackCaseUpdateOne) SetCeiScore(v float64) *FeedbackCaseUpdateOne {
	_u.mutation.ResetCeiScore()
	_u.mutation.SetCeiScore(v)
	return _u
}

// SetNillableCeiScore sets the "cei_score" field if the given value is not nil.
func (_u *FeedbackCaseUpdateOne) SetNillableCeiScore(v *float64) *FeedbackCaseUpdateOne {
	if v != nil {
		_u.SetCeiScore(*v)
	}
	return _u
}

// AddCeiScore adds value to the "cei_score" field.
func (_u *FeedbackCaseUpdateOne) AddCeiScore(v float64) *FeedbackCaseUpdateOne {
	_u.mutation.AddCeiScore(v)
	return _u
}

// SetValidationLabel sets the "validation_label" field.
func (_u *FeedbackCaseUpdateOne) SetValidationLabel(v feedbackcase.ValidationLabel) *FeedbackCaseUpdateOne {
	_u.mutation.SetValidationLabel(v)
	return _u
}

// SetNillableValidationLabel sets the "validation_label" field if the given value is not nil.
func (_u *FeedbackCaseUpdateOne) SetNillableValidationLabel(v *feedbackcase.ValidationLabel) *FeedbackCaseUpdateOne {
	if v != nil {
		_u.SetValidationLabel(*v)
	}
	return _u
}

// SetRecommendedRetrain sets the "recommended_retrain" field.
func (_u *FeedbackCaseUpdateOne) SetRecommendedRetrain(v bool) *FeedbackCaseUpdateOne {
	_u.mutation.SetRecommendedRetrain(v)
	return _u
}

// SetNillableRecommendedRetrain sets the "recommended_retrain" field if the given value is not nil.
func (_u *FeedbackCaseUpdateOne) SetNillableRecommendedRetrain(v *bool) *FeedbackCaseUpdateOne {
	if v != nil {
		_u.SetRecommendedRetrain(*v)
	}
	return _u
}

// SetTechnicianNotes sets the "technician_notes" field.
func (_u *FeedbackCaseUpdateOne) SetTechnicianNotes(v string) *FeedbackCaseUpdateOne {
	_u.mutation.SetTechnicianNotes(v)
	return _u
}

// SetNillableTechnicianNotes sets the "technician_notes" field if the given value is not nil.
func (_u *FeedbackCaseUpdateOne) SetNillableTechnicianNotes(v *string) *FeedbackCaseUpdateOne {
	if v != nil {
		_u.SetTechnicianNotes(*v)
	}
	return _u
}

// ClearTechnicianNotes clears the value of the "technician_notes" field.
func (_u *FeedbackCaseUpdateOne) ClearTechnicianNotes() *FeedbackCaseUpdateOne {
	_u.mutation.ClearTechnicianNotes()
	return _u
}

// SetCustomerRating sets the "customer_rating" field.
func (_u *FeedbackCaseUpdateOne) SetCustomerRating(v int) *FeedbackCaseUpdateOne {
	_u.mutation.ResetCustomerRating()
	_u.mutation.SetCustomerRating(v)
	return _u
}

// SetNillableCustomerRating sets the "customer_rating" field if the given value is not nil.
func (_u *FeedbackCaseUpdateOne) SetNillableCustomerRating(v *int) *FeedbackCaseUpdateOne {
	if v != nil {
		_u.SetCustomerRating(*v)
	}
	return _u
}

// AddCustomerRating adds value to the "customer_rating" field.
func (_u *FeedbackCaseUpdateOne) AddCustomerRating(v int) *FeedbackCaseUpdateOne {
	_u.mutation.AddCustomerRating(v)
	return _u
}

// ClearCustomerRating clears the value of the "customer_rating" field.
func (_u *FeedbackCaseUpdateOne) ClearCustomerRating() *FeedbackCaseUpdateOne {
	_u.mutation.ClearCustomerRating()
	return _u
}

// SetStatus sets the "status" field.
func (_u *FeedbackCaseUpdateOne) SetStatus(v feedbackcase.Status) *FeedbackCaseUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *FeedbackCaseUpdateOne) SetNillableStatus(v *feedbackcase.Status) *FeedbackCaseUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// Mutation returns the FeedbackCaseMutation object of the builder.
func (_u *FeedbackCaseUpdateOne) Mutation() *FeedbackCaseMutation {
	return _u.mutation
}

// Where appends a list predicates to the FeedbackCaseUpdate builder.
func (_u *FeedbackCaseUpdateOne) Where(ps ...predicate.FeedbackCase) *FeedbackCaseUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *FeedbackCaseUpdateOne) Select(field string, fields ...string) *FeedbackCaseUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated FeedbackCase entity.
func (_u *FeedbackCaseUpdateOne) Save(ctx context.Context) (*FeedbackCase, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FeedbackCaseUpdateOne) SaveX(ctx context.Context) *FeedbackCase {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *FeedbackCaseUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FeedbackCaseUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *FeedbackCaseUpdateOne) check() error {
	if v, ok := _u.mutation.ValidationLabel(); ok {
		if err := feedbackcase.ValidationLabelValidator(v); err != nil {
			return &ValidationError{Name: "validation_label", err: fmt.Errorf(`ent: validator failed for field "FeedbackCase.validation_label": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := feedbackcase.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "FeedbackCase.status": %w`, err)}
		}
	}
	return nil
}

func (_u *FeedbackCaseUpdateOne) sqlSave(ctx context.Context) (_node *FeedbackCase, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(feedbackcase.Table, feedbackcase.Columns, sqlgraph.NewFieldSpec(feedbackcase.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "FeedbackCase.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, feedbackcase.FieldID)
		for _, f := range fields {
			if !feedbackcase.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != feedbackcase.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.BookingID(); ok {
		_spec.SetField(feedbackcase.FieldBookingID, field.TypeString, value)
	}
	if value, ok := _u.mutation.CaseID(); ok {
		_spec.SetField(feedbackcase.FieldCaseID, field.TypeString, value)
	}
	if value, ok := _u.mutation.VehicleID(); ok {
		_spec.SetField(feedbackcase.FieldVehicleID, field.TypeString, value)
	}
	if value, ok := _u.mutation.CeiScore(); ok {
		_spec.SetField(feedbackcase.FieldCeiScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCeiScore(); ok {
		_spec.AddField(feedbackcase.FieldCeiScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ValidationLabel(); ok {
		_spec.SetField(feedbackcase.FieldValidationLabel, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.RecommendedRetrain(); ok {
		_spec.SetField(feedbackcase.FieldRecommendedRetrain, field.TypeBool, value)
	}
	if value, ok := _u.mutation.TechnicianNotes(); ok {
		_spec.SetField(feedbackcase.FieldTechnicianNotes, field.TypeString, value)
	}
	if _u.mutation.TechnicianNotesCleared() {
		_spec.ClearField(feedbackcase.FieldTechnicianNotes, field.TypeString)
	}
	if value, ok := _u.mutation.CustomerRating(); ok {
		_spec.SetField(feedbackcase.FieldCustomerRating, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCustomerRating(); ok {
		_spec.AddField(feedbackcase.FieldCustomerRating, field.TypeInt, value)
	}
	if _u.mutation.CustomerRatingCleared() {
		_spec.ClearField(feedbackcase.FieldCustomerRating, field.TypeInt)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(feedbackcase.FieldStatus, field.TypeEnum, value)
	}
	_node = &FeedbackCase{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{feedbackcase.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
