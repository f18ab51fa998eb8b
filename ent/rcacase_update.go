// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/fleetsense/fleetsense/ent/predicate"
	"github.com/fleetsense/fleetsense/ent/rcacase"
)

// RcaCaseUpdate is the builder for updating RcaCase entities.
type RcaCaseUpdate struct {
	config
	hooks    []Hook
	mutation *RcaCaseMutation
}

// Where appends a list predicates to the RcaCaseUpdate builder.
func (_u *RcaCaseUpdate) Where(ps ...predicate.RcaCase) *RcaCaseUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetDiagnosisID sets the "diagnosis_id" field.
func (_u *RcaCaseUpdate) SetDiagnosisID(v string) *RcaCaseUpdate {
	_u.mutation.SetDiagnosisID(v)
	return _u
}

// SetNillableDiagnosisID sets the "diagnosis_id" field if the given value is not nil.
func (_u *RcaCaseUpdate) SetNillableDiagnosisID(v *string) *RcaCaseUpdate {
	if v != nil {
		_u.SetDiagnosisID(*v)
	}
	return _u
}

// SetCaseID sets the "case_id" field.
func (_u *RcaCaseUpdate) SetCaseID(v string) *RcaCaseUpdate {
	_u.mutation.SetCaseID(v)
	return _u
}

// SetNillableCaseID sets the "case_id" field if the given value is not nil.
func (_u *RcaCaseUpdate) SetNillableCaseID(v *string) *RcaCaseUpdate {
	if v != nil {
		_u.SetCaseID(*v)
	}
	return _u
}

// SetVehicleID sets the "vehicle_id" field.
func (_u *RcaCaseUpdate) SetVehicleID(v string) *RcaCaseUpdate {
	_u.mutation.SetVehicleID(v)
	return _u
}

// SetNillableVehicleID sets the "vehicle_id" field if the given value is not nil.
func (_u *RcaCaseUpdate) SetNillableVehicleID(v *string) *RcaCaseUpdate {
	if v != nil {
		_u.SetVehicleID(*v)
	}
	return _u
}

// SetRootCause sets the "root_cause" field.
func (_u *RcaCaseUpdate) SetRootCause(v string) *RcaCaseUpdate {
	_u.mutation.SetRootCause(v)
	return _u
}

// SetNillableRootCause sets the "root_cause" field if the given value is not nil.
func (_u *RcaCaseUpdate) SetNillableRootCause(v *string) *RcaCaseUpdate {
	if v != nil {
		_u.SetRootCause(*v)
	}
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *RcaCaseUpdate) SetConfidence(v float64) *RcaCaseUpdate {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *RcaCaseUpdate) SetNillableConfidence(v *float64) *RcaCaseUpdate {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *RcaCaseUpdate) AddConfidence(v float64) *RcaCaseUpdate {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetRecommendedAction sets the "recommended_action" field.
func (_u *RcaCaseUpdate) SetRecommendedAction(v string) *RcaCaseUpdate {
	_u.mutation.SetRecommendedAction(v)
	return _u
}

// SetNillableRecommendedAction sets the "recommended_action" field if the given value is not nil.
func (_u *RcaCaseUpdate) SetNillableRecommendedAction(v *string) *RcaCaseUpdate {
	if v != nil {
		_u.SetRecommendedAction(*v)
	}
	return _u
}

// SetCapaType sets the "capa_type" field.
func (_u *RcaCaseUpdate) SetCapaType(v rcacase.CapaType) *RcaCaseUpdate {
	_u.mutation.SetCapaType(v)
	return _u
}

// SetNillableCapaType sets the "capa_type" field if the given value is not nil.
func (_u *RcaCaseUpdate) SetNillableCapaType(v *rcacase.CapaType) *RcaCaseUpdate {
	if v != nil {
		_u.SetCapaType(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *RcaCaseUpdate) SetStatus(v rcacase.Status) *RcaCaseUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *RcaCaseUpdate) SetNillableStatus(v *rcacase.Status) *RcaCaseUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// Mutation returns the RcaCaseMutation object of the builder.
func (_u *RcaCaseUpdate) Mutation() *RcaCaseMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *RcaCaseUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RcaCaseUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *RcaCaseUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RcaCaseUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RcaCaseUpdate) check() error {
	if v, ok := _u.mutation.CapaType(); ok {
		if err := rcacase.CapaTypeValidator(v); err != nil {
			return &ValidationError{Name: "capa_type", err: fmt.Errorf(`ent: validator failed for field "RcaCase.capa_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := rcacase.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "RcaCase.status": %w`, err)}
		}
	}
	return nil
}

func (_u *RcaCaseUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(rcacase.Table, rcacase.Columns, sqlgraph.NewFieldSpec(rcacase.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.DiagnosisID(); ok {
		_spec.SetField(rcacase.FieldDiagnosisID, field.TypeString, value)
	}
	if value, ok := _u.mutation.CaseID(); ok {
		_spec.SetField(rcacase.FieldCaseID, field.TypeString, value)
	}
	if value, ok := _u.mutation.VehicleID(); ok {
		_spec.SetField(rcacase.FieldVehicleID, field.TypeString, value)
	}
	if value, ok := _u.mutation.RootCause(); ok {
		_spec.SetField(rcacase.FieldRootCause, field.TypeString, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(rcacase.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(rcacase.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.RecommendedAction(); ok {
		_spec.SetField(rcacase.FieldRecommendedAction, field.TypeString, value)
	}
	if value, ok := _u.mutation.CapaType(); ok {
		_spec.SetField(rcacase.FieldCapaType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(rcacase.FieldStatus, field.TypeEnum, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{rcacase.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// RcaCaseUpdateOne is the builder for updating a single RcaCase entity.
type RcaCaseUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *RcaCaseMutation
}

// SetDiagnosisID sets the "diagnosis_id" field.
func (_u *RcaCaseUpdateOne) SetDiagnosisID(v string) *RcaCaseUpdateOne {
	_u.mutation.SetDiagnosisID(v)
	return _u
}

// SetNillableDiagnosisID sets the "diagnosis_id" field if the given value is not nil.
func (_u *RcaCaseUpdateOne) SetNillableDiagnosisID(v *string) *RcaCaseUpdateOne {
	if v != nil {
		_u.SetDiagnosisID(*v)
	}
	return _u
}

// SetCaseID sets the "case_id" field.
func (_u *RcaCaseUpdateOne) SetCaseID(v string) *RcaCaseUpdateOne {
	_u.mutation.SetCaseID(v)
	return _u
}

// SetNillableCaseID sets the "case_id" field if the given value is not nil.
func (_u *RcaCaseUpdateOne) SetNillableCaseID(v *string) *RcaCaseUpdateOne {
	if v != nil {
		_u.SetCaseID(*v)
	}
	return _u
}

// SetVehicleID sets the "vehicle_id" field.
func (_u *RcaCaseUpdateOne) SetVehicleID(v string) *RcaCaseUpdateOne {
	_u.mutation.SetVehicleID(v)
	return _u
}

// SetNillableVehicleID sets the "vehicle_id" field if the given value is not nil.
func (_u *RcaCaseUpdateOne) SetNillableVehicleID(v *string) *RcaCaseUpdateOne {
	if v != nil {
		_u.SetVehicleID(*v)
	}
	return _u
}

// SetRootCause sets the "root_cause" field.
func (_u *RcaCaseUpdateOne) SetRootCause(v string) *RcaCaseUpdateOne {
	_u.mutation.SetRootCause(v)
	return _u
}

// SetNillableRootCause sets the "root_cause" field if the given value is not nil.
func (_u *RcaCaseUpdateOne) SetNillableRootCause(v *string) *RcaCaseUpdateOne {
	if v != nil {
		_u.SetRootCause(*v)
	}
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *RcaCaseUpdateOne) SetConfidence(v float64) *RcaCaseUpdateOne {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *RcaCaseUpdateOne) SetNillableConfidence(v *float64) *RcaCaseUpdateOne {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *RcaCaseUpdateOne) AddConfidence(v float64) *RcaCaseUpdateOne {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetRecommendedAction sets the "recommended_action" field.
func (_u *RcaCaseUpdateOne) SetRecommendedAction(v string) *RcaCaseUpdateOne {
	_u.mutation.SetRecommendedAction(v)
	return _u
}

// SetNillableRecommendedAction sets the "recommended_action" field if the given value is not nil.
func (_u *RcaCaseUpdateOne) SetNillableRecommendedAction(v *string) *RcaCaseUpdateOne {
	if v != nil {
		_u.SetRecommendedAction(*v)
	}
	return _u
}

// SetCapaType sets the "capa_type" field.
func (_u *RcaCaseUpdateOne) SetCapaType(v rcacase.CapaType) *RcaCaseUpdateOne {
	_u.mutation.SetCapaType(v)
	return _u
}

// SetNillableCapaType sets the "capa_type" field if the given value is not nil.
func (_u *RcaCaseUpdateOne) SetNillableCapaType(v *rcacase.CapaType) *RcaCaseUpdateOne {
	if v != nil {
		_u.SetCapaType(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *RcaCaseUpdateOne) SetStatus(v rcacase.Status) *RcaCaseUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *RcaCaseUpdateOne) SetNillableStatus(v *rcacase.Status) *RcaCaseUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// Mutation returns the RcaCaseMutation object of the builder.
func (_u *RcaCaseUpdateOne) Mutation() *RcaCaseMutation {
	return _u.mutation
}

// Where appends a list predicates to the RcaCaseUpdate builder.
func (_u *RcaCaseUpdateOne) Where(ps ...predicate.RcaCase) *RcaCaseUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *RcaCaseUpdateOne) Select(field string, fields ...string) *RcaCaseUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated RcaCase entity.
func (_u *RcaCaseUpdateOne) Save(ctx context.Context) (*RcaCase, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RcaCaseUpdateOne) SaveX(ctx context.Context) *RcaCase {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *RcaCaseUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RcaCaseUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RcaCaseUpdateOne) check() error {
	if v, ok := _u.mutation.CapaType(); ok {
		if err := rcacase.CapaTypeValidator(v); err != nil {
			return &ValidationError{Name: "capa_type", err: fmt.Errorf(`ent: validator failed for field "RcaCase.capa_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := rcacase.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "RcaCase.status": %w`, err)}
		}
	}
	return nil
}

func (_u *RcaCaseUpdateOne) sqlSave(ctx context.Context) (_node *RcaCase, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(rcacase.Table, rcacase.Columns, sqlgraph.NewFieldSpec(rcacase.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "RcaCase.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, rcacase.FieldID)
		for _, f := range fields {
			if !rcacase.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != rcacase.FieldID {
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
	if value, ok := _u.mutation.DiagnosisID(); ok {
		_spec.SetField(rcacase.FieldDiagnosisID, field.TypeString, value)
	}
	if value, ok := _u.mutation.CaseID(); ok {
		_spec.SetField(rcacase.FieldCaseID, field.TypeString, value)
	}
	if value, ok := _u.mutation.VehicleID(); ok {
		_spec.SetField(rcacase.FieldVehicleID, field.TypeString, value)
	}
	if value, ok := _u.mutation.RootCause(); ok {
		_spec.SetField(rcacase.FieldRootCause, field.TypeString, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(rcacase.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(rcacase.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.RecommendedAction(); ok {
		_spec.SetField(rcacase.FieldRecommendedAction, field.TypeString, value)
	}
	if value, ok := _u.mutation.CapaType(); ok {
		_spec.SetField(rcacase.FieldCapaType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(rcacase.FieldStatus, field.TypeEnum, value)
	}
	_node = &RcaCase{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{rcacase.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
