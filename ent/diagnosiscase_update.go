// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/fleetsense/fleetsense/ent/diagnosiscase"
	"github.com/fleetsense/fleetsense/ent/predicate"
)

// DiagnosisCaseUpdate is the builder for updating DiagnosisCase entities.
type DiagnosisCaseUpdate struct {
	config
	hooks    []Hook
	mutation *DiagnosisCaseMutation
}

// Where appends a list predicates to the DiagnosisCaseUpdate builder.
func (_u *DiagnosisCaseUpdate) Where(ps ...predicate.DiagnosisCase) *DiagnosisCaseUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetCaseID sets the "case_id" field.
func (_u *DiagnosisCaseUpdate) SetCaseID(v string) *DiagnosisCaseUpdate {
	_u.mutation.SetCaseID(v)
	return _u
}

// SetNillableCaseID sets the "case_id" field if the given value is not nil.
func (_u *DiagnosisCaseUpdate) SetNillableCaseID(v *string) *DiagnosisCaseUpdate {
	if v != nil {
		_u.SetCaseID(*v)
	}
	return _u
}

// SetVehicleID sets the "vehicle_id" field.
func (_u *DiagnosisCaseUpdate) SetVehicleID(v string) *DiagnosisCaseUpdate {
	_u.mutation.SetVehicleID(v)
	return _u
}

// SetNillableVehicleID sets the "vehicle_id" field if the given value is not nil.
func (_u *DiagnosisCaseUpdate) SetNillableVehicleID(v *string) *DiagnosisCaseUpdate {
	if v != nil {
		_u.SetVehicleID(*v)
	}
	return _u
}

// SetComponent sets the "component" field.
func (_u *DiagnosisCaseUpdate) SetComponent(v string) *DiagnosisCaseUpdate {
	_u.mutation.SetComponent(v)
	return _u
}

// SetNillableComponent sets the "component" field if the given value is not nil.
func (_u *DiagnosisCaseUpdate) SetNillableComponent(v *string) *DiagnosisCaseUpdate {
	if v != nil {
		_u.SetComponent(*v)
	}
	return _u
}

// SetFailureProbability sets the "failure_probability" field.
func (_u *DiagnosisCaseUpdate) SetFailureProbability(v float64) *DiagnosisCaseUpdate {
	_u.mutation.ResetFailureProbability()
	_u.mutation.SetFailureProbability(v)
	return _u
}

// SetNillableFailureProbability sets the "failure_probability" field if the given value is not nil.
func (_u *DiagnosisCaseUpdate) SetNillableFailureProbability(v *float64) *DiagnosisCaseUpdate {
	if v != nil {
		_u.SetFailureProbability(*v)
	}
	return _u
}

// AddFailureProbability adds value to the "failure_probability" field.
func (_u *DiagnosisCaseUpdate) AddFailureProbability(v float64) *DiagnosisCaseUpdate {
	_u.mutation.AddFailureProbability(v)
	return _u
}

// SetEstimatedRulDays sets the "estimated_rul_days" field.
func (_u *DiagnosisCaseUpdate) SetEstimatedRulDays(v int) *DiagnosisCaseUpdate {
	_u.mutation.ResetEstimatedRulDays()
	_u.mutation.SetEstimatedRulDays(v)
	return _u
}

// SetNillableEstimatedRulDays sets the "estimated_rul_days" field if the given value is not nil.
func (_u *DiagnosisCaseUpdate) SetNillableEstimatedRulDays(v *int) *DiagnosisCaseUpdate {
	if v != nil {
		_u.SetEstimatedRulDays(*v)
	}
	return _u
}

// AddEstimatedRulDays adds value to the "estimated_rul_days" field.
func (_u *DiagnosisCaseUpdate) AddEstimatedRulDays(v int) *DiagnosisCaseUpdate {
	_u.mutation.AddEstimatedRulDays(v)
	return _u
}

// SetSeverity sets the "severity" field.
func (_u *DiagnosisCaseUpdate) SetSeverity(v diagnosiscase.Severity) *DiagnosisCaseUpdate {
	_u.mutation.SetSeverity(v)
	return _u
}

// SetNillableSeverity sets the "severity" field if the given value is not nil.
func (_u *DiagnosisCaseUpdate) SetNillableSeverity(v *diagnosiscase.Severity) *DiagnosisCaseUpdate {
	if v != nil {
		_u.SetSeverity(*v)
	}
	return _u
}

// SetContextEventIds sets the "context_event_ids" field.
func (_u *DiagnosisCaseUpdate) SetContextEventIds(v []string) *DiagnosisCaseUpdate {
	_u.mutation.SetContextEventIds(v)
	return _u
}

// AppendContextEventIds appends value to the "context_event_ids" field.
func (_u *DiagnosisCaseUpdate) AppendContextEventIds(v []string) *DiagnosisCaseUpdate {
	_u.mutation.AppendContextEventIds(v)
	return _u
}

// ClearContextEventIds clears the value of the "context_event_ids" field.
func (_u *DiagnosisCaseUpdate) ClearContextEventIds() *DiagnosisCaseUpdate {
	_u.mutation.ClearContextEventIds()
	return _u
}

// SetStatus sets the "status" field.
func (_u *DiagnosisCaseUpdate) SetStatus(v diagnosiscase.Status) *DiagnosisCaseUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *DiagnosisCaseUpdate) SetNillableStatus(v *diagnosiscase.Status) *DiagnosisCaseUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// Mutation returns the DiagnosisCaseMutation object of the builder.
func (_u *DiagnosisCaseUpdate) Mutation() *DiagnosisCaseMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DiagnosisCaseUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DiagnosisCaseUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DiagnosisCaseUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DiagnosisCaseUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DiagnosisCaseUpdate) check() error {
	if v, ok := _u.mutation.Severity(); ok {
		if err := diagnosiscase.SeverityValidator(v); err != nil {
			return &ValidationError{Name: "severity", err: fmt.Errorf(`ent: validator failed for field "DiagnosisCase.severity": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := diagnosiscase.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "DiagnosisCase.status": %w`, err)}
		}
	}
	return nil
}

func (_u *DiagnosisCaseUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(diagnosiscase.Table, diagnosiscase.Columns, sqlgraph.NewFieldSpec(diagnosiscase.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.CaseID(); ok {
		_spec.SetField(diagnosiscase.FieldCaseID, field.TypeString, value)
	}
	if value, ok := _u.mutation.VehicleID(); ok {
		_spec.SetField(diagnosiscase.FieldVehicleID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Component(); ok {
		_spec.SetField(diagnosiscase.FieldComponent, field.TypeString, value)
	}
	if value, ok := _u.mutation.FailureProbability(); ok {
		_spec.SetField(diagnosiscase.FieldFailureProbability, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedFailureProbability(); ok {
		_spec.AddField(diagnosiscase.FieldFailureProbability, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.EstimatedRulDays(); ok {
		_spec.SetField(diagnosiscase.FieldEstimatedRulDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedEstimatedRulDays(); ok {
		_spec.AddField(diagnosiscase.FieldEstimatedRulDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Severity(); ok {
		_spec.SetField(diagnosiscase.FieldSeverity, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ContextEventIds(); ok {
		_spec.SetField(diagnosiscase.FieldContextEventIds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedContextEventIds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, diagnosiscase.FieldContextEventIds, value)
		})
	}
	if _u.mutation.ContextEventIdsCleared() {
		_spec.ClearField(diagnosiscase.FieldContextEventIds, field.TypeJSON)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(diagnosiscase.FieldStatus, field.TypeEnum, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{diagnosiscase.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DiagnosisCaseUpdateOne is the builder for updating a single DiagnosisCase entity.
type DiagnosisCaseUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DiagnosisCaseMutation
}

// SetCaseID sets the "case_id" field.
func (_u *DiagnosisCaseUpdateOne) SetCaseID(v string) *DiagnosisCaseUpdateOne {
	_u.mutation.SetCaseID(v)
	return _u
}

// SetNillableCaseID sets the "case_id" field if the given value is not nil.
func (_u *DiagnosisCaseUpdateOne) SetNillableCaseID(v *string) *DiagnosisCaseUpdateOne {
	if v != nil {
		_u.SetCaseID(*v)
	}
	return _u
}

// SetVehicleID sets the "vehicle_id" field.
func (_u *DiagnosisCaseUpdateOne) SetVehicleID(v string) *DiagnosisCaseUpdateOne {
	_u.mutation.SetVehicleID(v)
	return _u
}

// SetNillableVehicleID sets the "vehicle_id" field if the given value is not nil.
func (_u *DiagnosisCaseUpdateOne) SetNillableVehicleID(v *string) *DiagnosisCaseUpdateOne {
	if v != nil {
		_u.SetVehicleID(*v)
	}
	return _u
}

// SetComponent sets the "component" field.
func (_u *DiagnosisCaseUpdateOne) SetComponent(v string) *DiagnosisCaseUpdateOne {
	_u.mutation.SetComponent(v)
	return _u
}

// SetNillableComponent sets the "component" field if the given value is not nil.
func (_u *DiagnosisCaseUpdateOne) SetNillableComponent(v *string) *DiagnosisCaseUpdateOne {
	if v != nil {
		_u.SetComponent(*v)
	}
	return _u
}

// SetFailureProbability sets the "failure_probability" field.
func (_u *DiagnosisCaseUpdateOne) SetFailureProbability(v float64) *DiagnosisCaseUpdateOne {
	_u.mutation.ResetFailureProbability()
	_u.mutation.SetFailureProbability(v)
	return _u
}

// SetNillableFailureProbability sets the "failure_probability" field if the given value is not nil.
func (_u *DiagnosisCaseUpdateOne) SetNillableFailureProbability(v *float64) *DiagnosisCaseUpdateOne {
	if v != nil {
		_u.SetFailureProbability(*v)
	}
	return _u
}

// AddFailureProbability adds value to the "failure_probability" field.
func (_u *DiagnosisCaseUpdateOne) AddFailureProbability(v float64) *DiagnosisCaseUpdateOne {
	_u.mutation.AddFailureProbability(v)
	return _u
}

// SetEstimatedRulDays sets the "estimated_rul_days" field.
func (_u *DiagnosisCaseUpdateOne) SetEstimatedRulDays(v int) *DiagnosisCaseUpdateOne {
	_u.mutation.ResetEstimatedRulDays()
	_u.mutation.SetEstimatedRulDays(v)
	return _u
}

// SetNillableEstimatedRulDays sets the "estimated_rul_days" field if the given value is not nil.
func (_u *DiagnosisCaseUpdateOne) SetNillableEstimatedRulDays(v *int) *DiagnosisCaseUpdateOne {
	if v != nil {
		_u.SetEstimatedRulDays(*v)
	}
	return _u
}

// AddEstimatedRulDays adds value to the "estimated_rul_days" field.
func (_u *DiagnosisCaseUpdateOne) AddEstimatedRulDays(v int) *DiagnosisCaseUpdateOne {
	_u.mutation.AddEstimatedRulDays(v)
	return _u
}

// SetSeverity sets the "severity" field.
func (_u *DiagnosisCaseUpdateOne) SetSeverity(v diagnosiscase.Severity) *DiagnosisCaseUpdateOne {
	_u.mutation.SetSeverity(v)
	return _u
}

// SetNillableSeverity sets the "severity" field if the given value is not nil.
func (_u *DiagnosisCaseUpdateOne) SetNillableSeverity(v *diagnosiscase.Severity) *DiagnosisCaseUpdateOne {
	if v != nil {
		_u.SetSeverity(*v)
	}
	return _u
}

// SetContextEventIds sets the "context_event_ids" field.
func (_u *DiagnosisCaseUpdateOne) SetContextEventIds(v []string) *DiagnosisCaseUpdateOne {
	_u.mutation.SetContextEventIds(v)
	return _u
}

// AppendContextEventIds appends value to the "context_event_ids" field.
func (_u *DiagnosisCaseUpdateOne) AppendContextEventIds(v []string) *DiagnosisCaseUpdateOne {
	_u.mutation.AppendContextEventIds(v)
	return _u
}

// ClearContextEventIds clears the value of the "context_event_ids" field.
func (_u *DiagnosisCaseUpdateOne) ClearContextEventIds() *DiagnosisCaseUpdateOne {
	_u.mutation.ClearContextEventIds()
	return _u
}

// SetStatus sets the "status" field.
func (_u *DiagnosisCaseUpdateOne) SetStatus(v diagnosiscase.Status) *DiagnosisCaseUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *DiagnosisCaseUpdateOne) SetNillableStatus(v *diagnosiscase.Status) *DiagnosisCaseUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// Mutation returns the DiagnosisCaseMutation object of the builder.
func (_u *DiagnosisCaseUpdateOne) Mutation() *DiagnosisCaseMutation {
	return _u.mutation
}

// Where appends a list predicates to the DiagnosisCaseUpdate builder.
func (_u *DiagnosisCaseUpdateOne) Where(ps ...predicate.DiagnosisCase) *DiagnosisCaseUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DiagnosisCaseUpdateOne) Select(field string, fields ...string) *DiagnosisCaseUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated DiagnosisCase entity.
func (_u *DiagnosisCaseUpdateOne) Save(ctx context.Context) (*DiagnosisCase, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DiagnosisCaseUpdateOne) SaveX(ctx context.Context) *DiagnosisCase {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DiagnosisCaseUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DiagnosisCaseUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DiagnosisCaseUpdateOne) check() error {
	if v, ok := _u.mutation.Severity(); ok {
		if err := diagnosiscase.SeverityValidator(v); err != nil {
			return &ValidationError{Name: "severity", err: fmt.Errorf(`ent: validator failed for field "DiagnosisCase.severity": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := diagnosiscase.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "DiagnosisCase.status": %w`, err)}
		}
	}
	return nil
}

func (_u *DiagnosisCaseUpdateOne) sqlSave(ctx context.Context) (_node *DiagnosisCase, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(diagnosiscase.Table, diagnosiscase.Columns, sqlgraph.NewFieldSpec(diagnosiscase.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "DiagnosisCase.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, diagnosiscase.FieldID)
		for _, f := range fields {
			if !diagnosiscase.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != diagnosiscase.FieldID {
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
		_spec.SetField(diagnosiscase.FieldCaseID, field.TypeString, value)
	}
	if value, ok := _u.mutation.VehicleID(); ok {
		_spec.SetField(diagnosiscase.FieldVehicleID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Component(); ok {
		_spec.SetField(diagnosiscase.FieldComponent, field.TypeString, value)
	}
	if value, ok := _u.mutation.FailureProbability(); ok {
		_spec.SetField(diagnosiscase.FieldFailureProbability, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedFailureProbability(); ok {
		_spec.AddField(diagnosiscase.FieldFailureProbability, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.EstimatedRulDays(); ok {
		_spec.SetField(diagnosiscase.FieldEstimatedRulDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedEstimatedRulDays(); ok {
		_spec.AddField(diagnosiscase.FieldEstimatedRulDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Severity(); ok {
		_spec.SetField(diagnosiscase.FieldSeverity, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ContextEventIds(); ok {
		_spec.SetField(diagnosiscase.FieldContextEventIds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedContextEventIds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, diagnosiscase.FieldContextEventIds, value)
		})
	}
	if _u.mutation.ContextEventIdsCleared() {
		_spec.ClearField(diagnosiscase.FieldContextEventIds, field.TypeJSON)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(diagnosiscase.FieldStatus, field.TypeEnum, value)
	}
	_node = &DiagnosisCase{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{diagnosiscase.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
