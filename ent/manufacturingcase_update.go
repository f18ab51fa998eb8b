// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/fleetsense/fleetsense/ent/manufacturingcase"
	"github.com/fleetsense/fleetsense/ent/predicate"
)

// ManufacturingCaseUpdate is the builder for updating ManufacturingCase entities.
type ManufacturingCaseUpdate struct {
	config
	hooks    []Hook
	mutation *ManufacturingCaseMutation
}

// Where appends a list predicates to the ManufacturingCaseUpdate builder.
func (_u *ManufacturingCaseUpdate) Where(ps ...predicate.ManufacturingCase) *ManufacturingCaseUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetFeedbackID sets the "feedback_id" field.
func (_u *ManufacturingCaseUpdate) SetFeedbackID(v string) *ManufacturingCaseUpdate {
	_u.mutation.SetFeedbackID(v)
	return _u
}

// SetNillableFeedbackID sets the "feedback_id" field if the given value is not nil.
func (_u *ManufacturingCaseUpdate) SetNillableFeedbackID(v *string) *ManufacturingCaseUpdate {
	if v != nil {
		_u.SetFeedbackID(*v)
	}
	return _u
}

// SetCaseID sets the "case_id" field.
func (_u *ManufacturingCaseUpdate) SetCaseID(v string) *ManufacturingCaseUpdate {
	_u.mutation.SetCaseID(v)
	return _u
}

// SetNillableCaseID sets the "case_id" field if the given value is not nil.
func (_u *ManufacturingCaseUpdate) SetNillableCaseID(v *string) *ManufacturingCaseUpdate {
	if v != nil {
		_u.SetCaseID(*v)
	}
	return _u
}

// SetVehicleID sets the "vehicle_id" field.
func (_u *ManufacturingCaseUpdate) SetVehicleID(v string) *ManufacturingCaseUpdate {
	_u.mutation.SetVehicleID(v)
	return _u
}

// SetNillableVehicleID sets the "vehicle_id" field if the given value is not nil.
func (_u *ManufacturingCaseUpdate) SetNillableVehicleID(v *string) *ManufacturingCaseUpdate {
	if v != nil {
		_u.SetVehicleID(*v)
	}
	return _u
}

// SetIssue sets the "issue" field.
func (_u *ManufacturingCaseUpdate) SetIssue(v string) *ManufacturingCaseUpdate {
	_u.mutation.SetIssue(v)
	return _u
}

// SetNillableIssue sets the "issue" field if the given value is not nil.
func (_u *ManufacturingCaseUpdate) SetNillableIssue(v *string) *ManufacturingCaseUpdate {
	if v != nil {
		_u.SetIssue(*v)
	}
	return _u
}

// SetCapaRecommendation sets the "capa_recommendation" field.
func (_u *ManufacturingCaseUpdate) SetCapaRecommendation(v string) *ManufacturingCaseUpdate {
	_u.mutation.SetCapaRecommendation(v)
	return _u
}

// SetNillableCapaRecommendation sets the "capa_recommendation" field if the given value is not nil.
func (_u *ManufacturingCaseUpdate) SetNillableCapaRecommendation(v *string) *ManufacturingCaseUpdate {
	if v != nil {
		_u.SetCapaRecommendation(*v)
	}
	return _u
}

// SetSeverity sets the "severity" field.
func (_u *ManufacturingCaseUpdate) SetSeverity(v manufacturingcase.Severity) *ManufacturingCaseUpdate {
	_u.mutation.SetSeverity(v)
	return _u
}

// SetNillableSeverity sets the "severity" field if the given value is not nil.
func (_u *ManufacturingCaseUpdate) SetNillableSeverity(v *manufacturingcase.Severity) *ManufacturingCaseUpdate {
	if v != nil {
		_u.SetSeverity(*v)
	}
	return _u
}

// SetRecurrenceClusterSize sets the "recurrence_cluster_size" field.
func (_u *ManufacturingCaseUpdate) SetRecurrenceClusterSize(v int) *ManufacturingCaseUpdate {
	_u.mutation.ResetRecurrenceClusterSize()
	_u.mutation.SetRecurrenceClusterSize(v)
	return _u
}

// SetNillableRecurrenceClusterSize sets the "recurrence_cluster_size" field if the given value is not nil.
func (_u *ManufacturingCaseUpdate) SetNillableRecurrenceClusterSize(v *int) *ManufacturingCaseUpdate {
	if v != nil {
		_u.SetRecurrenceClusterSize(*v)
	}
	return _u
}

// AddRecurrenceClusterSize adds value to the "recurrence_cluster_size" field.
func (_u *ManufacturingCaseUpdate) AddRecurrenceClusterSize(v int) *ManufacturingCaseUpdate {
	_u.mutation.AddRecurrenceClusterSize(v)
	return _u
}

// SetVehicleRecurrenceCount sets the "vehicle_recurrence_count" field.
func (_u *ManufacturingCaseUpdate) SetVehicleRecurrenceCount(v int) *ManufacturingCaseUpdate {
	_u.mutation.ResetVehicleRecurrenceCount()
	_u.mutation.SetVehicleRecurrenceCount(v)
	return _u
}

// SetNillableVehicleRecurrenceCount sets the "vehicle_recurrence_count" field if the given value is not nil.
func (_u *ManufacturingCaseUpdate) SetNillableVehicleRecurrenceCount(v *int) *ManufacturingCaseUpdate {
	if v != nil {
		_u.SetVehicleRecurrenceCount(*v)
	}
	return _u
}

// AddVehicleRecurrenceCount adds value to the "vehicle_recurrence_count" field.
func (_u *ManufacturingCaseUpdate) AddVehicleRecurrenceCount(v int) *ManufacturingCaseUpdate {
	_u.mutation.AddVehicleRecurrenceCount(v)
	return _u
}

// SetAnomalyTypeRecurrenceCount sets the "anomaly_type_recurrence_count" field.
func (_u *ManufacturingCaseUpdate) SetAnomalyTypeRecurrenceCount(v int) *ManufacturingCaseUpdate {
	_u.mutation.ResetAnomalyTypeRecurrenceCount()
	_u.mutation.SetAnomalyTypeRecurrenceCount(v)
	return _u
}

// SetNillableAnomalyTypeRecurrenceCount sets the "anomaly_type_recurrence_count" field if the given value is not nil.
func (_u *ManufacturingCaseUpdate) SetNillableAnomalyTypeRecurrenceCount(v *int) *ManufacturingCaseUpdate {
	if v != nil {
		_u.SetAnomalyTypeRecurrenceCount(*v)
	}
	return _u
}

// AddAnomalyTypeRecurrenceCount adds value to the "anomaly_type_recurrence_count" field.
func (_u *ManufacturingCaseUpdate) AddAnomalyTypeRecurrenceCount(v int) *ManufacturingCaseUpdate {
	_u.mutation.AddAnomalyTypeRecurrenceCount(v)
	return _u
}

// SetComponentRecurrenceCount sets the "component_recurrence_count" field.
func (_u *ManufacturingCaseUpdate) SetComponentRecurrenceCount(v int) *ManufacturingCaseUpdate {
	_u.mutation.ResetComponentRecurrenceCount()
	_u.mutation.SetComponentRecurrenceCount(v)
	return _u
}

// SetNillableComponentRecurrenceCount sets the "component_recurrence_count" field if the given value is not nil.
func (_u *ManufacturingCaseUpdate) SetNillableComponentRecurrenceCount(v *int) *ManufacturingCaseUpdate {
	if v != nil {
		_u.SetComponentRecurrenceCount(*v)
	}
	return _u
}

// AddComponentRecurrenceCount adds value to the "component_recurrence_count" field.
func (_u *ManufacturingCaseUpdate) AddComponentRecurrenceCount(v int) *ManufacturingCaseUpdate {
	_u.mutation.AddComponentRecurrenceCount(v)
	return _u
}

// Mutation returns the ManufacturingCaseMutation object of the builder.
func (_u *ManufacturingCaseUpdate) Mutation() *ManufacturingCaseMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ManufacturingCaseUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ManufacturingCaseUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ManufacturingCaseUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ManufacturingCaseUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ManufacturingCaseUpdate) check() error {
	if v, ok := _u.mutation.Severity(); ok {
		if err := manufacturingcase.SeverityValidator(v); err != nil {
			return &ValidationError{Name: "severity", err: fmt.Errorf(`ent: validator failed for field "ManufacturingCase.severity": %w`, err)}
		}
	}
	return nil
}

func (_u *ManufacturingCaseUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(manufacturingcase.Table, manufacturingcase.Columns, sqlgraph.NewFieldSpec(manufacturingcase.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.FeedbackID(); ok {
		_spec.SetField(manufacturingcase.FieldFeedbackID, field.TypeString, value)
	}
	if value, ok := _u.mutation.CaseID(); ok {
		_spec.SetField(manufacturingcase.FieldCaseID, field.TypeString, value)
	}
	if value, ok := _u.mutation.VehicleID(); ok {
		_spec.SetField(manufacturingcase.FieldVehicleID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Issue(); ok {
		_spec.SetField(manufacturingcase.FieldIssue, field.TypeString, value)
	}
	if value, ok := _u.mutation.CapaRecommendation(); ok {
		_spec.SetField(manufacturingcase.FieldCapaRecommendation, field.TypeString, value)
	}
	if value, ok := _u.mutation.Severity(); ok {
		_spec.SetField(manufacturingcase.FieldSeverity, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.RecurrenceClusterSize(); ok {
		_spec.SetField(manufacturingcase.FieldRecurrenceClusterSize, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRecurrenceClusterSize(); ok {
		_spec.AddField(manufacturingcase.FieldRecurrenceClusterSize, field.TypeInt, value)
	}
	if value, ok := _u.mutation.VehicleRecurrenceCount(); ok {
		_spec.SetField(manufacturingcase.FieldVehicleRecurrenceCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedVehicleRecurrenceCount(); ok {
		_spec.AddField(manufacturingcase.FieldVehicleRecurrenceCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AnomalyTypeRecurrenceCount(); ok {
		_spec.SetField(manufacturingcase.FieldAnomalyTypeRecurrenceCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAnomalyTypeRecurrenceCount(); ok {
		_spec.AddField(manufacturingcase.FieldAnomalyTypeRecurrenceCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ComponentRecurrenceCount(); ok {
		_spec.SetField(manufacturingcase.FieldComponentRecurrenceCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedComponentRecurrenceCount(); ok {
		_spec.AddField(manufacturingcase.FieldComponentRecurrenceCount, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{manufacturingcase.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ManufacturingCaseUpdateOne is the builder for updating a single ManufacturingCase entity.
type ManufacturingCaseUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ManufacturingCaseMutation
}

// SetFeedbackID sets the "feedback_id" field.
func (_u *ManufacturingCaseUpdateOne) SetFeedbackID(v string) *ManufacturingCaseUpdateOne {
	_u.mutation.SetFeedbackID(v)
	return _u
}

// SetNillableFeedbackID sets the "feedback_id" field if the given value is not nil.
func (_u *ManufacturingCaseUpdateOne) SetNillableFeedbackID(v *string) *ManufacturingCaseUpdateOne {
	if v != nil {
		_u.SetFeedbackID(*v)
	}
	return _u
}

// SetCaseID sets the "case_id" field.
func (_u *ManufacturingCaseUpdateOne) SetCaseID(v string) *ManufacturingCaseUpdateOne {
	_u.mutation.SetCaseID(v)
	return _u
}

// SetNillableCaseID sets the "case_id" field if the given value is not nil.
func (_u *ManufacturingCaseUpdateOne) SetNillableCaseID(v *string) *ManufacturingCaseUpdateOne {
	if v != nil {
		_u.SetCaseID(*v)
	}
	return _u
}

// SetVehicleID sets the "vehicle_id" field.
func (_u *ManufacturingCaseUpdateOne) SetVehicleID(v string) *ManufacturingCaseUpdateOne {
	_u.mutation.SetVehicleID(v)
	return _u
}

// SetNillableVehicleID sets the "vehicle_id" field if the given value is not nil.
func (_u *ManufacturingCaseUpdateOne) SetNillableVehicleID(v *string) *ManufacturingCaseUpdateOne {
	if v != nil {
		_u.SetVehicleID(*v)
	}
	return _u
}

// SetIssue sets the "issue" field.
func (_u *ManufacturingCaseUpdateOne) SetIssue(v string) *ManufacturingCaseUpdateOne {
	_u.mutation.SetIssue(v)
	return _u
}

// SetNillableIssue sets the "issue" field if the given value is not nil.
func (_u *ManufacturingCaseUpdateOne) SetNillableIssue(v *string) *ManufacturingCaseUpdateOne {
	if v != nil {
		_u.SetIssue(*v)
	}
	return _u
}

// SetCapaRecommendation sets the "capa_recommendation" field.
func (_u *ManufacturingCaseUpdateOne) SetCapaRecommendation(v string) *ManufacturingCaseUpdateOne {
	_u.mutation.SetCapaRecommendation(v)
	return _u
}

// SetNillableCapaRecommendation sets the "capa_recommendation" field if the given value is not nil.
func (_u *ManufacturingCaseUpdateOne) SetNillableCapaRecommendation(v *string) *ManufacturingCaseUpdateOne {
	if v != nil {
		_u.SetCapaRecommendation(*v)
	}
	return _u
}

// SetSeverity sets the "severity" field.
func (_u *ManufacturingCaseUpdateOne) SetSeverity(v manufacturingcase.Severity) *ManufacturingCaseUpdateOne {
	_u.mutation.SetSeverity(v)
	return _u
}

// SetNillableSeverity sets the "severity" field if the given value is not nil.
func (_u *ManufacturingCaseUpdateOne) SetNillableSeverity(v *manufacturingcase.Severity) *ManufacturingCaseUpdateOne {
	if v != nil {
		_u.SetSeverity(*v)
	}
	return _u
}

// SetRecurrenceClusterSize sets the "recurrence_cluster_size" field.
func (_u *ManufacturingCaseUpdateOne) SetRecurrenceClusterSize(v int) *ManufacturingCaseUpdateOne {
	_u.mutation.ResetRecurrenceClusterSize()
	_u.mutation.SetRecurrenceClusterSize(v)
	return _u
}

// SetNillableRecurrenceClusterSize sets the "recurrence_cluster_size" field if the given value is not nil.
func (_u *ManufacturingCaseUpdateOne) SetNillableRecurrenceClusterSize(v *int) *ManufacturingCaseUpdateOne {
	if v != nil {
		_u.SetRecurrenceClusterSize(*v)
	}
	return _u
}

// AddRecurrenceClusterSize adds value to the "recurrence_cluster_size" field.
func (_u *ManufacturingCaseUpdateOne) AddRecurrenceClusterSize(v int) *ManufacturingCaseUpdateOne {
	_u.mutation.AddRecurrenceClusterSize(v)
	return _u
}

// SetVehicleRecurrenceCount sets the "vehicle_recurrence_count" field.
func (_u *ManufacturingCaseUpdateOne) SetVehicleRecurrenceCount(v int) *ManufacturingCaseUpdateOne {
	_u.mutation.ResetVehicleRecurrenceCount()
	_u.mutation.SetVehicleRecurrenceCount(v)
	return _u
}

// SetNillableVehicleRecurrenceCount sets the "vehicle_recurrence_count" field if the given value is not nil.
func (_u *ManufacturingCaseUpdateOne) SetNillableVehicleRecurrenceCount(v *int) *ManufacturingCaseUpdateOne {
	if v != nil {
		_u.SetVehicleRecurrenceCount(*v)
	}
	return _u
}

// AddVehicleRecurrenceCount adds value to the "vehicle_recurrence_count" field.
func (_u *ManufacturingCaseUpdateOne) AddVehicleRecurrenceCount(v int) *ManufacturingCaseUpdateOne {
	_u.mutation.AddVehicleRecurrenceCount(v)
	return _u
}

// SetAnomalyTypeRecurrenceCount sets the "anomaly_type_recurrence_count" field.
func (_u *ManufacturingCaseUpdateOne) SetAnomalyTypeRecurrenceCount(v int) *ManufacturingCaseUpdateOne {
	_u.mutation.ResetAnomalyTypeRecurrenceCount()
	_u.mutation.SetAnomalyTypeRecurrenceCount(v)
	return _u
}

// SetNillableAnomalyTypeRecurrenceCount sets the "anomaly_type_recurrence_count" field if the given value is not nil.
func (_u *ManufacturingCaseUpdateOne) SetNillableAnomalyTypeRecurrenceCount(v *int) *ManufacturingCaseUpdateOne {
	if v != nil {
		_u.SetAnomalyTypeRecurrenceCount(*v)
	}
	return _u
}

// AddAnomalyTypeRecurrenceCount adds value to the "anomaly_type_recurrence_count" field.
func (_u *ManufacturingCaseUpdateOne) AddAnomalyTypeRecurrenceCount(v int) *ManufacturingCaseUpdateOne {
	_u.mutation.AddAnomalyTypeRecurrenceCount(v)
	return _u
}

// SetComponentRecurrenceCount sets the "component_recurrence_count" field.
func (_u *ManufacturingCaseUpdateOne) SetComponentRecurrenceCount(v int) *ManufacturingCaseUpdateOne {
	_u.mutation.ResetComponentRecurrenceCount()
	_u.mutation.SetComponentRecurrenceCount(v)
	return _u
}

// SetNillableComponentRecurrenceCount sets the "component_recurrence_count" field if the given value is not nil.
func (_u *ManufacturingCaseUpdateOne) SetNillableComponentRecurrenceCount(v *int) *ManufacturingCaseUpdateOne {
	if v != nil {
		_u.SetComponentRecurrenceCount(*v)
	}
	return _u
}

// AddComponentRecurrenceCount adds value to the "component_recurrence_count" field.
func (_u *ManufacturingCaseUpdateOne) AddComponentRecurrenceCount(v int) *ManufacturingCaseUpdateOne {
	_u.mutation.AddComponentRecurrenceCount(v)
	return _u
}

// Mutation returns the ManufacturingCaseMutation object of the builder.
func (_u *ManufacturingCaseUpdateOne) Mutation() *ManufacturingCaseMutation {
	return _u.mutation
}

// Where appends a list predicates to the ManufacturingCaseUpdate builder.
func (_u *ManufacturingCaseUpdateOne) Where(ps ...predicate.ManufacturingCase) *ManufacturingCaseUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ManufacturingCaseUpdateOne) Select(field string, fields ...string) *ManufacturingCaseUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ManufacturingCase entity.
func (_u *ManufacturingCaseUpdateOne) Save(ctx context.Context) (*ManufacturingCase, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ManufacturingCaseUpdateOne) SaveX(ctx context.Context) *ManufacturingCase {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ManufacturingCaseUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ManufacturingCaseUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ManufacturingCaseUpdateOne) check() error {
	if v, ok := _u.mutation.Severity(); ok {
		if err := manufacturingcase.SeverityValidator(v); err != nil {
			return &ValidationError{Name: "severity", err: fmt.Errorf(`ent: validator failed for field "ManufacturingCase.severity": %w`, err)}
		}
	}
	return nil
}

func (_u *ManufacturingCaseUpdateOne) sqlSave(ctx context.Context) (_node *ManufacturingCase, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(manufacturingcase.Table, manufacturingcase.Columns, sqlgraph.NewFieldSpec(manufacturingcase.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ManufacturingCase.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, manufacturingcase.FieldID)
		for _, f := range fields {
			if !manufacturingcase.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != manufacturingcase.FieldID {
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
	if value, ok := _u.mutation.FeedbackID(); ok {
		_spec.SetField(manufacturingcase.FieldFeedbackID, field.TypeString, value)
	}
	if value, ok := _u.mutation.CaseID(); ok {
		_spec.SetField(manufacturingcase.FieldCaseID, field.TypeString, value)
	}
	if value, ok := _u.mutation.VehicleID(); ok {
		_spec.SetField(manufacturingcase.FieldVehicleID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Issue(); ok {
		_spec.SetField(manufacturingcase.FieldIssue, field.TypeString, value)
	}
	if value, ok := _u.mutation.CapaRecommendation(); ok {
		_spec.SetField(manufacturingcase.FieldCapaRecommendation, field.TypeString, value)
	}
	if value, ok := _u.mutation.Severity(); ok {
		_spec.SetField(manufacturingcase.FieldSeverity, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.RecurrenceClusterSize(); ok {
		_spec.SetField(manufacturingcase.FieldRecurrenceClusterSize, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRecurrenceClusterSize(); ok {
		_spec.AddField(manufacturingcase.FieldRecurrenceClusterSize, field.TypeInt, value)
	}
	if value, ok := _u.mutation.VehicleRecurrenceCount(); ok {
		_spec.SetField(manufacturingcase.FieldVehicleRecurrenceCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedVehicleRecurrenceCount(); ok {
		_spec.AddField(manufacturingcase.FieldVehicleRecurrenceCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AnomalyTypeRecurrenceCount(); ok {
		_spec.SetField(manufacturingcase.FieldAnomalyTypeRecurrenceCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAnomalyTypeRecurrenceCount(); ok {
		_spec.AddField(manufacturingcase.FieldAnomalyTypeRecurrenceCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ComponentRecurrenceCount(); ok {
		_spec.SetField(manufacturingcase.FieldComponentRecurrenceCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedComponentRecurrenceCount(); ok {
		_spec.AddField(manufacturingcase.FieldComponentRecurrenceCount, field.TypeInt, value)
	}
	_node = &ManufacturingCase{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{manufacturingcase.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
