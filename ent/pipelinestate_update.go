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
	"github.com/fleetsense/fleetsense/ent/pipelinestate"
	"github.com/fleetsense/fleetsense/ent/predicate"
)

// PipelineStateUpdate is the builder for updating PipelineState entities.
type PipelineStateUpdate struct {
	config
	hooks    []Hook
	mutation *PipelineStateMutation
}

// Where appends a list predicates to the PipelineStateUpdate builder.
func (_u *PipelineStateUpdate) Where(ps ...predicate.PipelineState) *PipelineStateUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetCurrentStage sets the "current_stage" field.
func (_u *PipelineStateUpdate) SetCurrentStage(v string) *PipelineStateUpdate {
	_u.mutation.SetCurrentStage(v)
	return _u
}

// SetNillableCurrentStage sets the "current_stage" field if the given value is not nil.
func (_u *PipelineStateUpdate) SetNillableCurrentStage(v *string) *PipelineStateUpdate {
	if v != nil {
		_u.SetCurrentStage(*v)
	}
	return _u
}

// SetNextStage sets the "next_stage" field.
func (_u *PipelineStateUpdate) SetNextStage(v string) *PipelineStateUpdate {
	_u.mutation.SetNextStage(v)
	return _u
}

// SetNillableNextStage sets the "next_stage" field if the given value is not nil.
func (_u *PipelineStateUpdate) SetNillableNextStage(v *string) *PipelineStateUpdate {
	if v != nil {
		_u.SetNextStage(*v)
	}
	return _u
}

// ClearNextStage clears the value of the "next_stage" field.
func (_u *PipelineStateUpdate) ClearNextStage() *PipelineStateUpdate {
	_u.mutation.ClearNextStage()
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *PipelineStateUpdate) SetConfidence(v float64) *PipelineStateUpdate {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *PipelineStateUpdate) SetNillableConfidence(v *float64) *PipelineStateUpdate {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *PipelineStateUpdate) AddConfidence(v float64) *PipelineStateUpdate {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PipelineStateUpdate) SetUpdatedAt(v time.Time) *PipelineStateUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the PipelineStateMutation object of the builder.
func (_u *PipelineStateUpdate) Mutation() *PipelineStateMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PipelineStateUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PipelineStateUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PipelineStateUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PipelineStateUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PipelineStateUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := pipelinestate.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *PipelineStateUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(pipelinestate.Table, pipelinestate.Columns, sqlgraph.NewFieldSpec(pipelinestate.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.CurrentStage(); ok {
		_spec.SetField(pipelinestate.FieldCurrentStage, field.TypeString, value)
	}
	if value, ok := _u.mutation.NextStage(); ok {
		_spec.SetField(pipelinestate.FieldNextStage, field.TypeString, value)
	}
	if _u.mutation.NextStageCleared() {
		_spec.ClearField(pipelinestate.FieldNextStage, field.TypeString)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(pipelinestate.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(pipelinestate.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(pipelinestate.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{pipelinestate.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PipelineStateUpdateOne is the builder for updating a single PipelineState entity.
type PipelineStateUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PipelineStateMutation
}

// SetCurrentStage sets the "current_stage" field.
func (_u *PipelineStateUpdateOne) SetCurrentStage(v string) *PipelineStateUpdateOne {
	_u.mutation.SetCurrentStage(v)
	return _u
}

// SetNillableCurrentStage sets the "current_stage" field if the given value is not nil.
func (_u *PipelineStateUpdateOne) SetNillableCurrentStage(v *string) *PipelineStateUpdateOne {
	if v != nil {
		_u.SetCurrentStage(*v)
	}
	return _u
}

// SetNextStage sets the "next_stage" field.
func (_u *PipelineStateUpdateOne) SetNextStage(v string) *PipelineStateUpdateOne {
	_u.mutation.SetNextStage(v)
	return _u
}

// SetNillableNextStage sets the "next_stage" field if the given value is not nil.
func (_u *PipelineStateUpdateOne) SetNillableNextStage(v *string) *PipelineStateUpdateOne {
	if v != nil {
		_u.SetNextStage(*v)
	}
	return _u
}

// ClearNextStage clears the value of the "next_stage" field.
func (_u *PipelineStateUpdateOne) ClearNextStage() *PipelineStateUpdateOne {
	_u.mutation.ClearNextStage()
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *PipelineStateUpdateOne) SetConfidence(v float64) *PipelineStateUpdateOne {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *PipelineStateUpdateOne) SetNillableConfidence(v *float64) *PipelineStateUpdateOne {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *PipelineStateUpdateOne) AddConfidence(v float64) *PipelineStateUpdateOne {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PipelineStateUpdateOne) SetUpdatedAt(v time.Time) *PipelineStateUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the PipelineStateMutation object of the builder.
func (_u *PipelineStateUpdateOne) Mutation() *PipelineStateMutation {
	return _u.mutation
}

// Where appends a list predicates to the PipelineStateUpdate builder.
func (_u *PipelineStateUpdateOne) Where(ps ...predicate.PipelineState) *PipelineStateUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PipelineStateUpdateOne) Select(field string, fields ...string) *PipelineStateUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PipelineState entity.
func (_u *PipelineStateUpdateOne) Save(ctx context.Context) (*PipelineState, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PipelineStateUpdateOne) SaveX(ctx context.Context) *PipelineState {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PipelineStateUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PipelineStateUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PipelineStateUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := pipelinestate.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *PipelineStateUpdateOne) sqlSave(ctx context.Context) (_node *PipelineState, err error) {
	_spec := sqlgraph.NewUpdateSpec(pipelinestate.Table, pipelinestate.Columns, sqlgraph.NewFieldSpec(pipelinestate.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PipelineState.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, pipelinestate.FieldID)
		for _, f := range fields {
			if !pipelinestate.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != pipelinestate.FieldID {
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
	if value, ok := _u.mutation.CurrentStage(); ok {
		_spec.SetField(pipelinestate.FieldCurrentStage, field.TypeString, value)
	}
	if value, ok := _u.mutation.NextStage(); ok {
		_spec.SetField(pipelinestate.FieldNextStage, field.TypeString, value)
	}
	if _u.mutation.NextStageCleared() {
		_spec.ClearField(pipelinestate.FieldNextStage, field.TypeString)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(pipelinestate.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(pipelinestate.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(pipelinestate.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &PipelineState{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{pipelinestate.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
