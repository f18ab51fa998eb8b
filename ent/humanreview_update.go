// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/fleetsense/fleetsense/ent/humanreview"
	"github.com/fleetsense/fleetsense/ent/predicate"
)

// HumanReviewUpdate is the builder for updating HumanReview entities.
type HumanReviewUpdate struct {
	config
	hooks    []Hook
	mutation *HumanReviewMutation
}

// Where appends a list predicates to the HumanReviewUpdate builder.
func (_u *HumanReviewUpdate) Where(ps ...predicate.HumanReview) *HumanReviewUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetCaseID sets the "case_id" field.
func (_u *HumanReviewUpdate) SetCaseID(v string) *HumanReviewUpdate {
	_u.mutation.SetCaseID(v)
	return _u
}

// SetNillableCaseID sets the "case_id" field if the given value is not nil.
func (_u *HumanReviewUpdate) SetNillableCaseID(v *string) *HumanReviewUpdate {
	if v != nil {
		_u.SetCaseID(*v)
	}
	return _u
}

// SetStage sets the "stage" field.
func (_u *HumanReviewUpdate) SetStage(v string) *HumanReviewUpdate {
	_u.mutation.SetStage(v)
	return _u
}

// SetNillableStage sets the "stage" field if the given value is not nil.
func (_u *HumanReviewUpdate) SetNillableStage(v *string) *HumanReviewUpdate {
	if v != nil {
		_u.SetStage(*v)
	}
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *HumanReviewUpdate) SetConfidence(v float64) *HumanReviewUpdate {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *HumanReviewUpdate) SetNillableConfidence(v *float64) *HumanReviewUpdate {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *HumanReviewUpdate) AddConfidence(v float64) *HumanReviewUpdate {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetMessage sets the "message" field.
func (_u *HumanReviewUpdate) SetMessage(v map[string]interface{}) *HumanReviewUpdate {
	_u.mutation.SetMessage(v)
	return _u
}

// ClearMessage clears the value of the "message" field.
func (_u *HumanReviewUpdate) ClearMessage() *HumanReviewUpdate {
	_u.mutation.ClearMessage()
	return _u
}

// SetReviewStatus sets the "review_status" field.
func (_u *HumanReviewUpdate) SetReviewStatus(v humanreview.ReviewStatus) *HumanReviewUpdate {
	_u.mutation.SetReviewStatus(v)
	return _u
}

// SetNillableReviewStatus sets the "review_status" field if the given value is not nil.
func (_u *HumanReviewUpdate) SetNillableReviewStatus(v *humanreview.ReviewStatus) *HumanReviewUpdate {
	if v != nil {
		_u.SetReviewStatus(*v)
	}
	return _u
}

// SetResolvedAt sets the "resolved_at" field.
func (_u *HumanReviewUpdate) SetResolvedAt(v time.Time) *HumanReviewUpdate {
	_u.mutation.SetResolvedAt(v)
	return _u
}

// SetNillableResolvedAt sets the "resolved_at" field if the given value is not nil.
func (_u *HumanReviewUpdate) SetNillableResolvedAt(v *time.Time) *HumanReviewUpdate {
	if v != nil {
		_u.SetResolvedAt(*v)
	}
	return _u
}

// ClearResolvedAt clears the value of the "resolved_at" field.
func (_u *HumanReviewUpdate) ClearResolvedAt() *HumanReviewUpdate {
	_u.mutation.ClearResolvedAt()
	return _u
}

// Mutation returns the HumanReviewMutation object of the builder.
func (_u *HumanReviewUpdate) Mutation() *HumanReviewMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *HumanReviewUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *HumanReviewUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *HumanReviewUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *HumanReviewUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *HumanReviewUpdate) check() error {
	if v, ok := _u.mutation.ReviewStatus(); ok {
		if err := humanreview.ReviewStatusValidator(v); err != nil {
			return &ValidationError{Name: "review_status", err: fmt.Errorf(`ent: validator failed for field "HumanReview.review_status": %w`, err)}
		}
	}
	return nil
}

func (_u *HumanReviewUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(humanreview.Table, humanreview.Columns, sqlgraph.NewFieldSpec(humanreview.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.CaseID(); ok {
		_spec.SetField(humanreview.FieldCaseID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Stage(); ok {
		_spec.SetField(humanreview.FieldStage, field.TypeString, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(humanreview.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(humanreview.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Message(); ok {
		_spec.SetField(humanreview.FieldMessage, field.TypeJSON, value)
	}
	if _u.mutation.MessageCleared() {
		_spec.ClearField(humanreview.FieldMessage, field.TypeJSON)
	}
	if value, ok := _u.mutation.ReviewStatus(); ok {
		_spec.SetField(humanreview.FieldReviewStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ResolvedAt(); ok {
		_spec.SetField(humanreview.FieldResolvedAt, field.TypeTime, value)
	}
	if _u.mutation.ResolvedAtCleared() {
		_spec.ClearField(humanreview.FieldResolvedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{humanreview.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// HumanReviewUpdateOne is the builder for updating a single HumanReview entity.
type HumanReviewUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *HumanReviewMutation
}

// SetCaseID sets the "case_id" field.
func (_u *HumanReviewUpdateOne) SetCaseID(v string) *HumanReviewUpdateOne {
	_u.mutation.SetCaseID(v)
	return _u
}

// SetNillableCaseID sets the "case_id" field if the given value is not nil.
func (_u *HumanReviewUpdateOne) SetNillableCaseID(v *string) *HumanReviewUpdateOne {
	if v != nil {
		_u.SetCaseID(*v)
	}
	return _u
}

// SetStage sets the "stage" field.
func (_u *HumanReviewUpdateOne) SetStage(v string) *HumanReviewUpdateOne {
	_u.mutation.SetStage(v)
	return _u
}

// SetNillableStage sets the "stage" field if the given value is not nil.
func (_u *HumanReviewUpdateOne) SetNillableStage(v *string) *HumanReviewUpdateOne {
	if v != nil {
		_u.SetStage(*v)
	}
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *HumanReviewUpdateOne) SetConfidence(v float64) *HumanReviewUpdateOne {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *HumanReviewUpdateOne) SetNillableConfidence(v *float64) *HumanReviewUpdateOne {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *HumanReviewUpdateOne) AddConfidence(v float64) *HumanReviewUpdateOne {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetMessage sets the "message" field.
func (_u *HumanReviewUpdateOne) SetMessage(v map[string]interface{}) *HumanReviewUpdateOne {
	_u.mutation.SetMessage(v)
	return _u
}

// ClearMessage clears the value of the "message" field.
func (_u *HumanReviewUpdateOne) ClearMessage() *HumanReviewUpdateOne {
	_u.mutation.ClearMessage()
	return _u
}

// SetReviewStatus sets the "review_status" field.
func (_u *HumanReviewUpdateOne) SetReviewStatus(v humanreview.ReviewStatus) *HumanReviewUpdateOne {
	_u.mutation.SetReviewStatus(v)
	return _u
}

// SetNillableReviewStatus sets the "review_status" field if the given value is not nil.
func (_u *HumanReviewUpdateOne) SetNillableReviewStatus(v *humanreview.ReviewStatus) *HumanReviewUpdateOne {
	if v != nil {
		_u.SetReviewStatus(*v)
	}
	return _u
}

// SetResolvedAt sets the "resolved_at" field.
func (_u *HumanReviewUpdateOne) SetResolvedAt(v time.Time) *HumanReviewUpdateOne {
	_u.mutation.SetResolvedAt(v)
	return _u
}

// SetNillableResolvedAt sets the "resolved_at" field if the given value is not nil.
func (_u *HumanReviewUpdateOne) SetNillableResolvedAt(v *time.Time) *HumanReviewUpdateOne {
	if v != nil {
		_u.SetResolvedAt(*v)
	}
	return _u
}

// ClearResolvedAt clears the value of the "resolved_at" field.
func (_u *HumanReviewUpdateOne) ClearResolvedAt() *HumanReviewUpdateOne {
	_u.mutation.ClearResolvedAt()
	return _u
}

// Mutation returns the HumanReviewMutation object of the builder.
func (_u *HumanReviewUpdateOne) Mutation() *HumanReviewMutation {
	return _u.mutation
}

// Where appends a list predicates to the HumanReviewUpdate builder.
func (_u *HumanReviewUpdateOne) Where(ps ...predicate.HumanReview) *HumanReviewUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *HumanReviewUpdateOne) Select(field string, fields ...string) *HumanReviewUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated HumanReview entity.
func (_u *HumanReviewUpdateOne) Save(ctx context.Context) (*HumanReview, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *HumanReviewUpdateOne) SaveX(ctx context.Context) *HumanReview {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *HumanReviewUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *HumanReviewUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *HumanReviewUpdateOne) check() error {
	if v, ok := _u.mutation.ReviewStatus(); ok {
		if err := humanreview.ReviewStatusValidator(v); err != nil {
			return &ValidationError{Name: "review_status", err: fmt.Errorf(`ent: validator failed for field "HumanReview.review_status": %w`, err)}
		}
	}
	return nil
}

func (_u *HumanReviewUpdateOne) sqlSave(ctx context.Context) (_node *HumanReview, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(humanreview.Table, humanreview.Columns, sqlgraph.NewFieldSpec(humanreview.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "HumanReview.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, humanreview.FieldID)
		for _, f := range fields {
			if !humanreview.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != humanreview.FieldID {
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
	if value, ok := _u.mutation.CaseID(); ok {
		_spec.SetField(humanreview.FieldCaseID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Stage(); ok {
		_spec.SetField(humanreview.FieldStage, field.TypeString, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(humanreview.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(humanreview.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Message(); ok {
		_spec.SetField(humanreview.FieldMessage, field.TypeJSON, value)
	}
	if _u.mutation.MessageCleared() {
		_spec.ClearField(humanreview.FieldMessage, field.TypeJSON)
	}
	if value, ok := _u.mutation.ReviewStatus(); ok {
		_spec.SetField(humanreview.FieldReviewStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ResolvedAt(); ok {
		_spec.SetField(humanreview.FieldResolvedAt, field.TypeTime, value)
	}
	if _u.mutation.ResolvedAtCleared() {
		_spec.ClearField(humanreview.FieldResolvedAt, field.TypeTime)
	}
	_node = &HumanReview{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{humanreview.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
